package components

// CarouselComponent 首页轮播状态
//
// 不变量：0 <= CurrentIndex < SlideCount（SlideCount > 0 时）
type CarouselComponent struct {
	CurrentIndex  int // 当前幻灯片
	PreviousIndex int // 上一张幻灯片，用于淡出
	SlideCount    int // 幻灯片总数

	// TransitionAge 自上次切换以来的时间（秒），仅用于淡入淡出，不影响状态
	TransitionAge float64
}
