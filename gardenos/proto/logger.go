package proto

// Level is the severity carried by a MsgLogLine.
type Level uint8

const (
	LevelInfo Level = iota
	LevelWarn
)

func (l Level) String() string {
	if l == LevelWarn {
		return "warn"
	}
	return "info"
}

// LogLinePayload encodes a MsgLogLine: one level byte followed by the
// UTF-8 line without a trailing newline.
func LogLinePayload(level Level, line string) []byte {
	buf := make([]byte, 1+len(line))
	buf[0] = byte(level)
	copy(buf[1:], line)
	return buf
}

// DecodeLogLine splits a MsgLogLine payload. The returned line aliases payload.
func DecodeLogLine(payload []byte) (Level, []byte, bool) {
	if len(payload) == 0 || Level(payload[0]) > LevelWarn {
		return 0, nil, false
	}
	return Level(payload[0]), payload[1:], true
}
