package cli

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestSimpleProgress(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressReporter(&buf, "files")

	p.Start(4)
	p.Update(2)
	if !strings.Contains(buf.String(), "50.0% (2/4)") {
		t.Errorf("missing midway progress in %q", buf.String())
	}
	if !strings.Contains(buf.String(), "files/s") {
		t.Errorf("missing rate unit in %q", buf.String())
	}

	p.Finish()
	if !strings.Contains(buf.String(), "100.0% (4/4)") {
		t.Errorf("missing completion in %q", buf.String())
	}

	p.Error(errors.New("disk full"))
	if !strings.Contains(buf.String(), "Error: disk full") {
		t.Errorf("missing error in %q", buf.String())
	}
}

func TestSimpleProgressZeroTotal(t *testing.T) {
	var buf bytes.Buffer
	p := NewProgressReporter(&buf, "")
	p.Start(0)
	p.Update(1)
	if buf.Len() != 0 {
		t.Errorf("expected no output for zero total, got %q", buf.String())
	}
}
