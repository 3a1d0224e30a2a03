package game

// FrameHandle 标识一次已请求的帧回调，0 为无效句柄
type FrameHandle uint64

// FrameCallback 帧回调，dt 为本帧时间（秒）
type FrameCallback func(dt float64)

type frameRequest struct {
	handle   FrameHandle
	callback FrameCallback
}

// FrameScheduler 每帧回调调度器
//
// 语义与浏览器的 requestAnimationFrame 一致：每次 Request 只触发一次，
// 在 Run 期间请求的回调要等到下一次 Run 才会执行，持续动画需要在回调里重新请求。
// 所有调用都必须发生在游戏循环所在的 goroutine 上。
type FrameScheduler struct {
	nextHandle FrameHandle
	queue      []frameRequest
	live       map[FrameHandle]bool
}

// NewFrameScheduler 创建调度器
func NewFrameScheduler() *FrameScheduler {
	return &FrameScheduler{
		live: make(map[FrameHandle]bool),
	}
}

// Request 登记一个在下一帧执行的回调
func (fs *FrameScheduler) Request(callback FrameCallback) FrameHandle {
	fs.nextHandle++
	h := fs.nextHandle
	fs.queue = append(fs.queue, frameRequest{handle: h, callback: callback})
	fs.live[h] = true
	return h
}

// Cancel 取消尚未执行的回调，返回是否确实取消了一个待执行回调
func (fs *FrameScheduler) Cancel(h FrameHandle) bool {
	if !fs.live[h] {
		return false
	}
	delete(fs.live, h)
	return true
}

// Run 执行本帧之前登记的所有回调，返回实际执行的数量
func (fs *FrameScheduler) Run(dt float64) int {
	batch := fs.queue
	fs.queue = nil

	ran := 0
	for _, req := range batch {
		// 可能已在之前的回调中被取消
		if !fs.live[req.handle] {
			continue
		}
		delete(fs.live, req.handle)
		req.callback(dt)
		ran++
	}
	return ran
}

// Pending 返回待执行回调数量
func (fs *FrameScheduler) Pending() int {
	return len(fs.live)
}

// IsPending 检查句柄是否仍待执行
func (fs *FrameScheduler) IsPending(h FrameHandle) bool {
	return fs.live[h]
}
