// Package safe_close coordinates graceful shutdown of attached goroutines
// Package safe_close 协调附加协程的优雅关闭
package safe_close

import (
	"sync"
)

// SafeClose broadcasts a close signal to attached goroutines and waits for
// all of them to finish
// SafeClose 向附加的协程广播关闭信号并等待它们全部结束
type SafeClose struct {
	mu        sync.Mutex
	closeOnce sync.Once
	closeCh   chan struct{}
	wg        sync.WaitGroup
	err       error
}

// NewSafeClose 创建 SafeClose 实例
func NewSafeClose() *SafeClose {
	return &SafeClose{
		closeCh: make(chan struct{}),
	}
}

// Attach runs f in a goroutine. f must call done when it has finished and
// must return after closeSignal fires.
// Attach 在协程中运行 f。f 完成时必须调用 done，并在 closeSignal 触发后返回。
func (s *SafeClose) Attach(f func(done func(), closeSignal <-chan struct{})) {
	s.wg.Add(1)
	var doneOnce sync.Once
	done := func() {
		doneOnce.Do(s.wg.Done)
	}
	go f(done, s.closeCh)
}

// SendCloseSignal triggers shutdown. The first non-nil error is kept.
// SendCloseSignal 触发关闭，保留第一个非 nil 错误。
func (s *SafeClose) SendCloseSignal(err error) {
	s.mu.Lock()
	if s.err == nil {
		s.err = err
	}
	s.mu.Unlock()

	s.closeOnce.Do(func() {
		close(s.closeCh)
	})
}

// WaitClosed blocks until all attached goroutines have called done
// WaitClosed 阻塞直到所有附加的协程调用 done
func (s *SafeClose) WaitClosed() error {
	s.wg.Wait()
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
