package proto

import "fmt"

// ClockTick is one wall-clock second delivered to clock subscribers.
type ClockTick struct {
	Hour   uint8
	Minute uint8
	Second uint8
	// MinuteCrossed is set on the first tick of a new minute.
	MinuteCrossed bool
}

// String formats the tick as HH:MM:SS.
func (t ClockTick) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour, t.Minute, t.Second)
}

// ClockTickPayload encodes a MsgClockTick payload.
//
// Layout:
//   - u8: hour (0-23)
//   - u8: minute (0-59)
//   - u8: second (0-59)
//   - u8: flags (bit0 = minute boundary crossed)
func ClockTickPayload(t ClockTick) []byte {
	var flags byte
	if t.MinuteCrossed {
		flags |= 1
	}
	return []byte{t.Hour, t.Minute, t.Second, flags}
}

// DecodeClockTickPayload decodes a ClockTickPayload.
func DecodeClockTickPayload(b []byte) (ClockTick, bool) {
	if len(b) != 4 {
		return ClockTick{}, false
	}
	if b[0] > 23 || b[1] > 59 || b[2] > 59 {
		return ClockTick{}, false
	}
	return ClockTick{
		Hour:          b[0],
		Minute:        b[1],
		Second:        b[2],
		MinuteCrossed: b[3]&1 != 0,
	}, true
}
