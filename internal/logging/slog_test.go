package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func newTestLogger(t *testing.T) (*SlogLogger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	l := slog.New(slog.NewTextHandler(&buf, nil))
	return NewSlogLogger(l), &buf
}

func TestSlogLogger_Levels(t *testing.T) {
	log, buf := newTestLogger(t)
	ctx := context.Background()

	log.Info(ctx, "inf", "a", 1)
	log.Warn(ctx, "wrn", "b", 2)
	log.Error(ctx, "err", "c", 3)

	out := buf.String()
	for _, want := range []string{
		"level=INFO", "msg=inf", "a=1",
		"level=WARN", "msg=wrn", "b=2",
		"level=ERROR", "msg=err", "c=3",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestSlogLogger_With(t *testing.T) {
	log, buf := newTestLogger(t)

	child := log.With("module", "http")
	child.Info(context.Background(), "ready", "addr", ":8080")

	out := buf.String()
	for _, want := range []string{"module=http", "msg=ready", "addr=:8080"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
