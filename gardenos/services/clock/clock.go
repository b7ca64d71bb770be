// Package clock turns the wall clock into one message per second for
// subscribed tasks.
package clock

import (
	"garden/gardenos/kernel"
	"garden/gardenos/proto"
	"garden/hal"
)

const maxSubscribers = 8

type subscriber struct {
	reply kernel.Capability
	// owed is set when a minute-crossing tick could not be delivered;
	// the flag then rides on the next tick that does get through.
	owed bool
}

type Service struct {
	clock hal.Clock
	ep    kernel.Capability

	subs  [maxSubscribers]subscriber
	nsubs int

	started bool
	last    proto.ClockTick
}

func New(c hal.Clock, ep kernel.Capability) *Service {
	return &Service{clock: c, ep: ep}
}

func (s *Service) Step(ctx *kernel.Context) {
	s.acceptSubscribers(ctx)
	s.poll(ctx)
	ctx.BlockOnTick()
}

func (s *Service) acceptSubscribers(ctx *kernel.Context) {
	for {
		msg, ok := ctx.TryRecv(s.ep)
		if !ok {
			return
		}
		if proto.Kind(msg.Kind) != proto.MsgClockSubscribe || !msg.Cap.Valid() {
			continue
		}
		if s.nsubs >= maxSubscribers {
			payload := proto.ErrorPayload(proto.ErrOverflow, proto.MsgClockSubscribe, nil)
			_ = ctx.Send(msg.Cap, uint16(proto.MsgError), payload)
			continue
		}
		s.subs[s.nsubs] = subscriber{reply: msg.Cap}
		s.nsubs++
	}
}

func (s *Service) poll(ctx *kernel.Context) {
	if s.clock == nil {
		return
	}
	h, m, sec := s.clock.Now().Clock()
	now := proto.ClockTick{Hour: uint8(h), Minute: uint8(m), Second: uint8(sec)}
	if s.started && now.Hour == s.last.Hour && now.Minute == s.last.Minute && now.Second == s.last.Second {
		return
	}
	// The first tick never crosses: subscribers reset on start-up already.
	now.MinuteCrossed = s.started && (now.Minute != s.last.Minute || now.Hour != s.last.Hour)
	s.started = true
	s.last = now

	for i := 0; i < s.nsubs; i++ {
		sub := &s.subs[i]
		tick := now
		tick.MinuteCrossed = now.MinuteCrossed || sub.owed
		res := ctx.Send(sub.reply, uint16(proto.MsgClockTick), proto.ClockTickPayload(tick))
		sub.owed = res != kernel.SendOK && tick.MinuteCrossed
	}
}
