package client

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestZerologLogger(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := NewZerologLogger(zerolog.New(&buf))

	logger.Errorf("failed with status %d", 500)
	logger.Warnf("retrying %s", "GET")
	logger.Debugf("token = %s", "tok-1")

	out := buf.String()

	if !strings.Contains(out, `"level":"error"`) || !strings.Contains(out, "failed with status 500") {
		t.Errorf("expected error line, got %s", out)
	}

	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "retrying GET") {
		t.Errorf("expected warn line, got %s", out)
	}

	if !strings.Contains(out, `"level":"debug"`) || !strings.Contains(out, "token = tok-1") {
		t.Errorf("expected debug line, got %s", out)
	}
}
