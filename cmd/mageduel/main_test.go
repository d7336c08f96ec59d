package main

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestRunPlaysSession(t *testing.T) {
	t.Setenv("MAGEDUEL_SEED", "7")
	t.Setenv("MAGEDUEL_TELEMETRY", "false")

	var out bytes.Buffer
	if err := run(context.Background(), strings.NewReader("g\n"), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Alas, you have been defeated in battle.") {
		t.Errorf("output missing game over line:\n%s", out.String())
	}
	if strings.Contains(out.String(), "\x1b[") {
		t.Error("a buffer is not a terminal; output should be plain")
	}
}

type brokenWriter struct{}

func (brokenWriter) Write([]byte) (int, error) { return 0, errors.New("pipe closed") }

func TestRunReturnsOutputError(t *testing.T) {
	t.Setenv("MAGEDUEL_TELEMETRY", "false")

	err := run(context.Background(), strings.NewReader("g\n"), brokenWriter{})
	if err == nil || !strings.Contains(err.Error(), "pipe closed") {
		t.Errorf("run error = %v, want the write failure", err)
	}
}

func TestRunRejectsBadConfig(t *testing.T) {
	t.Setenv("MAGEDUEL_SEED", "seven")

	if err := run(context.Background(), strings.NewReader(""), &bytes.Buffer{}); err == nil {
		t.Error("run should fail on a bad seed")
	}
}
