package components

// TimerComponent 通用计时器组件
// 用于处理需要时间延迟的行为（如轮播自动切换）
type TimerComponent struct {
	Name        string  // 计时器名称，如 "carousel_autoplay"
	TargetTime  float64 // 目标时间（秒）
	CurrentTime float64 // 当前已过时间（秒）
	IsReady     bool    // 计时器是否已完成
	Paused      bool    // 暂停时不累计时间
	Generation  int     // 每次重置递增，用于确认旧计时器已作废
}

// timerEpsilon 按帧累加 dt（如 1/60）产生的浮点误差容限
const timerEpsilon = 1e-9

// Expired 判断是否已到达目标时间
func (t *TimerComponent) Expired() bool {
	return t.CurrentTime >= t.TargetTime-timerEpsilon
}

// Reset 重新开始一个完整周期
func (t *TimerComponent) Reset() {
	t.CurrentTime = 0
	t.IsReady = false
	t.Generation++
}

// Remaining 返回距离触发还剩的时间（秒）
func (t *TimerComponent) Remaining() float64 {
	r := t.TargetTime - t.CurrentTime
	if r < 0 {
		return 0
	}
	return r
}
