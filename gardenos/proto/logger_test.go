package proto

import "testing"

func TestLogLineRoundTripKeepsLevel(t *testing.T) {
	level, line, ok := DecodeLogLine(LogLinePayload(LevelWarn, "low battery"))
	if !ok || level != LevelWarn || string(line) != "low battery" {
		t.Fatalf("unexpected decode %v %q %v", level, line, ok)
	}
}

func TestDecodeLogLineRejectsGarbage(t *testing.T) {
	if _, _, ok := DecodeLogLine(nil); ok {
		t.Fatal("expected empty payload to fail")
	}
	if _, _, ok := DecodeLogLine([]byte{9, 'x'}); ok {
		t.Fatal("expected unknown level to fail")
	}
}
