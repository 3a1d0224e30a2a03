package components

// RevealComponent 滚动揭示目标
//
// 元素在页面坐标系中的位置由 Bounds* 字段给出；Visible 由 RevealSystem 根据
// 相交回调写入，RevealedAt 记录最近一次变为可见的时刻（秒，基于 RevealSystem 时钟）。
type RevealComponent struct {
	ID string // 唯一标识，如 "service-card-0"

	BoundsX, BoundsY float64
	BoundsW, BoundsH float64

	Delay    float64 // 过渡延迟（秒）
	Duration float64 // 过渡时长（秒）

	Visible    bool
	RevealedAt float64
}
