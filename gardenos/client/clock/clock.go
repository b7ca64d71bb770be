// Package clock is the task-side API of the clock service.
package clock

import (
	"garden/gardenos/kernel"
	"garden/gardenos/proto"
)

// Subscribe registers replyCap for one MsgClockTick per wall-clock second.
func Subscribe(ctx *kernel.Context, clockCap, replyCap kernel.Capability) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrBadCap
	}
	return ctx.SendCap(clockCap, uint16(proto.MsgClockSubscribe), nil, replyCap)
}
