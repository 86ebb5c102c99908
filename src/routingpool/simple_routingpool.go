// 通过channel发送任务（task）的协程池实现
// 提交方永不阻塞：TrySubmit在队列满时直接返回false
// 任务的panic/错误由任务自身兜底，池不做恢复处理
// NOTE: 没有处理worker崩溃、需要重启等问题
package routingpool

import (
	"context"
	"sync"
)

type SimpleRoutingPool struct {
	wg sync.WaitGroup

	ctx   context.Context
	size  uint32
	tasks chan func(context.Context)
}

func NewSimpleRoutingPool(ctx context.Context, size uint32, queueSize uint32) RoutingPool {
	return &SimpleRoutingPool{
		ctx:   ctx,
		size:  size,
		tasks: make(chan func(context.Context), queueSize),
	}
}

func (s *SimpleRoutingPool) Start() error {
	var i uint32
	for ; i != s.size; i++ {
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			for {
				select {
				case <-s.ctx.Done():
					return
				case task := <-s.tasks:
					task(s.ctx)
				}
			}
		}()
	}
	return nil
}

func (s *SimpleRoutingPool) TrySubmit(task func(context.Context)) bool {
	select {
	case s.tasks <- task:
		return true
	default:
		return false
	}
}

func (s *SimpleRoutingPool) Stop() {
	s.wg.Wait()
}
