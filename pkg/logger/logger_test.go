package logger

import "testing"

func TestNewModes(t *testing.T) {
	for _, mode := range []string{"release", "debug", ""} {
		l, err := New(mode)
		if err != nil {
			t.Fatalf("mode %q: %v", mode, err)
		}
		if l == nil {
			t.Fatalf("mode %q: nil logger", mode)
		}
	}
}

func TestReleaseSkipsDebug(t *testing.T) {
	l, err := New("release")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if l.Core().Enabled(-1) {
		t.Fatal("release logger should not log debug")
	}
}
