package routingpool

import (
	"context"
)

type RoutingPool interface {
	Start() error
	// 非阻塞提交，队列满时返回false由调用方决定丢弃或记录
	TrySubmit(task func(context.Context)) bool
	Stop()
}
