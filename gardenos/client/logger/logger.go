// Package logger is the task-side API of the logger service. Sends are
// best-effort: a full queue drops the line.
package logger

import (
	"fmt"
	"unicode/utf8"

	"garden/gardenos/kernel"
	"garden/gardenos/proto"
)

const maxLine = kernel.MaxMessageBytes - 1

func send(ctx *kernel.Context, logCap kernel.Capability, level proto.Level, line string) kernel.SendResult {
	if ctx == nil {
		return kernel.SendErrBadCap
	}
	return ctx.Send(logCap, uint16(proto.MsgLogLine), proto.LogLinePayload(level, truncate(line)))
}

// truncate cuts line to fit one message without splitting a rune.
func truncate(line string) string {
	if len(line) <= maxLine {
		return line
	}
	n := maxLine
	for n > 0 && !utf8.RuneStart(line[n]) {
		n--
	}
	return line[:n]
}

// Log sends an info line, truncated to fit one message.
func Log(ctx *kernel.Context, logCap kernel.Capability, line string) kernel.SendResult {
	return send(ctx, logCap, proto.LevelInfo, line)
}

func Logf(ctx *kernel.Context, logCap kernel.Capability, format string, args ...any) kernel.SendResult {
	return send(ctx, logCap, proto.LevelInfo, fmt.Sprintf(format, args...))
}

// Warnf sends a formatted warning.
func Warnf(ctx *kernel.Context, logCap kernel.Capability, format string, args ...any) kernel.SendResult {
	return send(ctx, logCap, proto.LevelWarn, fmt.Sprintf(format, args...))
}
