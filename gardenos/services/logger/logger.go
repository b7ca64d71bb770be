// Package logger forwards MsgLogLine messages to the HAL logger.
package logger

import (
	"garden/gardenos/kernel"
	"garden/gardenos/proto"
	"garden/hal"
)

const warnPrefix = "warn: "

type Service struct {
	out hal.Logger
	ep  kernel.Capability

	line [len(warnPrefix) + kernel.MaxMessageBytes]byte
}

func New(out hal.Logger, ep kernel.Capability) *Service {
	s := &Service{out: out, ep: ep}
	copy(s.line[:], warnPrefix)
	return s
}

func (s *Service) Step(ctx *kernel.Context) {
	for {
		msg, ok := ctx.Recv(s.ep)
		if !ok {
			return
		}
		if s.out == nil || proto.Kind(msg.Kind) != proto.MsgLogLine {
			continue
		}
		level, text, ok := proto.DecodeLogLine(msg.Payload())
		if !ok {
			continue
		}
		if level == proto.LevelWarn {
			n := copy(s.line[len(warnPrefix):], text)
			s.out.WriteLineBytes(s.line[:len(warnPrefix)+n])
			continue
		}
		s.out.WriteLineBytes(text)
	}
}
