package buildinfo

import "testing"

func TestShortFallsBackToCommit(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "abc123"
	if got := Short(); got != "abc123" {
		t.Fatalf("expected commit, got %q", got)
	}
	Version = "v1.2.0"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("expected version, got %q", got)
	}
	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("expected dev, got %q", got)
	}
}
