package cleanup

import (
	"errors"
	"strings"
	"testing"
)

func TestRunAllLIFO(t *testing.T) {
	var order []string
	Register("first", func() error { order = append(order, "first"); return nil })
	Register("second", func() error { order = append(order, "second"); return nil })
	Register("nil", nil)

	if got := Pending(); got != 2 {
		t.Fatalf("Pending() = %d, want 2", got)
	}
	if err := RunAll(); err != nil {
		t.Fatalf("RunAll() = %v", err)
	}
	if strings.Join(order, ",") != "second,first" {
		t.Fatalf("order = %v, want [second first]", order)
	}
	if got := Pending(); got != 0 {
		t.Fatalf("hooks should be drained, Pending() = %d", got)
	}
}

func TestRunAllJoinsErrors(t *testing.T) {
	sentinel := errors.New("texture busy")
	ran := false
	Register("watermark", func() error { return sentinel })
	Register("other", func() error { ran = true; return nil })

	err := RunAll()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !errors.Is(err, sentinel) {
		t.Fatalf("expected sentinel in chain: %v", err)
	}
	if !strings.Contains(err.Error(), "watermark") {
		t.Fatalf("expected hook name in error: %v", err)
	}
	if !ran {
		t.Fatalf("a failing hook must not stop the others")
	}
}
