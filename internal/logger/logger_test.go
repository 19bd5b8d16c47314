package logger

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"strings"
	"testing"
)

func TestPrettyHandler_Structural(t *testing.T) {
	var buf bytes.Buffer
	h := NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelDebug}, false)
	l := slog.New(h)

	t.Run("WithAttrs", func(t *testing.T) {
		buf.Reset()
		l.With("page", "ADB").Info("page selected", "open", true)

		output := buf.String()
		if !strings.Contains(output, "page=ADB") {
			t.Errorf("output missing persistent attr: %q", output)
		}
		if !strings.Contains(output, "open=true") {
			t.Errorf("output missing record attr: %q", output)
		}
	})

	t.Run("WithGroup", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("panel").With("width", 160).Info("toggled", "open", true)

		output := buf.String()
		if !strings.Contains(output, "panel.width=160") {
			t.Errorf("output missing grouped persistent attr: %q", output)
		}
		if !strings.Contains(output, "panel.open=true") {
			t.Errorf("output missing grouped record attr: %q", output)
		}
	})

	t.Run("NestedGroups", func(t *testing.T) {
		buf.Reset()
		l.WithGroup("outer").WithGroup("inner").With("key", "val").Info("msg")

		if output := buf.String(); !strings.Contains(output, "outer.inner.key=val") {
			t.Errorf("output missing nested grouped attr: %q", output)
		}
	})
}

func TestPrettyHandler_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	l := slog.New(NewPrettyHandler(&buf, &slog.HandlerOptions{Level: LevelWarn}, false))
	l.Info("hidden")
	l.Warn("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info record should be filtered: %q", out)
	}
	if !strings.Contains(out, "WARN") || !strings.Contains(out, "shown") {
		t.Fatalf("warn record missing: %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{in: "debug", want: LevelDebug},
		{in: "INFO", want: LevelInfo},
		{in: "", want: LevelInfo},
		{in: "warning", want: LevelWarn},
		{in: " error ", want: LevelError},
		{in: "trace", want: LevelInfo, wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseLevel(tc.in)
		if (err != nil) != tc.wantErr {
			t.Fatalf("ParseLevel(%q) err = %v, wantErr %v", tc.in, err, tc.wantErr)
		}
		if got != tc.want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func captureStderr(t *testing.T, fn func()) string {
	t.Helper()
	prevStderr := os.Stderr
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("pipe: %v", err)
	}
	os.Stderr = w
	defer func() { os.Stderr = prevStderr }()

	fn()

	_ = w.Close()
	out, _ := io.ReadAll(r)
	return string(out)
}

func TestInit_NoColorWhenNotTTY(t *testing.T) {
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return false }
	defer func() { isTerminal = prevIsTerminal }()

	out := captureStderr(t, func() {
		Init(LevelInfo, nil)
		Info("test message", "key", "value")
	})
	if strings.Contains(out, "\033[") {
		t.Fatalf("unexpected ANSI codes in output: %q", out)
	}
	if !strings.Contains(out, "run=") {
		t.Fatalf("expected run id attribute: %q", out)
	}
}

func TestInit_LogFileReceivesJSON(t *testing.T) {
	prevIsTerminal := isTerminal
	isTerminal = func(_ int) bool { return true }
	defer func() { isTerminal = prevIsTerminal }()

	var logBuf bytes.Buffer
	out := captureStderr(t, func() {
		Init(LevelInfo, &logBuf)
		Info("watermark loaded", "width", 256)
	})
	defer Init(LevelInfo, nil)

	if strings.Contains(out, "\033[") {
		t.Fatalf("unexpected ANSI codes in console output when a log file is set: %q", out)
	}

	var rec map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(logBuf.Bytes()), &rec); err != nil {
		t.Fatalf("log file is not JSON: %v (%q)", err, logBuf.String())
	}
	if rec["msg"] != "watermark loaded" {
		t.Fatalf("msg = %v, want %q", rec["msg"], "watermark loaded")
	}
	if _, ok := rec["run"]; !ok {
		t.Fatalf("expected run attribute in %v", rec)
	}
}

func TestFatalExits(t *testing.T) {
	prevExit := exit
	code := -1
	exit = func(c int) { code = c }
	defer func() { exit = prevExit }()

	_ = captureStderr(t, func() {
		Init(LevelInfo, nil)
		Fatal("startup failed")
	})
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}
}
