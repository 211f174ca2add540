package errors

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestAppErrorString(t *testing.T) {
	err := New(CodeCaptureFailed, "frame read failed").WithMetadata("shot", "2")

	s := err.Error()
	if !strings.Contains(s, "[CAPTURE_FAILED]") {
		t.Errorf("Error() = %q, want code prefix", s)
	}
	if !strings.Contains(s, "shot:2") {
		t.Errorf("Error() = %q, want metadata", s)
	}
}

func TestWrapUnwrap(t *testing.T) {
	err := Wrap(io.ErrUnexpectedEOF, CodeExportFailed, "write png")

	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Error("wrapped error should match its cause")
	}
	if !strings.Contains(err.Error(), "caused by") {
		t.Errorf("Error() = %q, want cause", err.Error())
	}
}

func TestIsCodeThroughChain(t *testing.T) {
	inner := New(CodeCameraUnavailable, "no device")
	outer := fmt.Errorf("start session: %w", Wrap(inner, CodeSessionFailed, "capture"))

	if !IsCode(outer, CodeSessionFailed) {
		t.Error("IsCode should find SESSION_FAILED")
	}
	if !IsCode(outer, CodeCameraUnavailable) {
		t.Error("IsCode should find nested CAMERA_UNAVAILABLE")
	}
	if IsCode(outer, CodeNotReady) {
		t.Error("IsCode should not find NOT_READY")
	}
	if IsCode(nil, CodeUnknown) {
		t.Error("IsCode(nil) should be false")
	}
}

func TestCodeOf(t *testing.T) {
	if got := CodeOf(Newf(CodeNotReady, "state %s", "idle")); got != CodeNotReady {
		t.Errorf("CodeOf = %v, want NOT_READY", got)
	}
	if got := CodeOf(io.EOF); got != CodeUnknown {
		t.Errorf("CodeOf(plain) = %v, want UNKNOWN", got)
	}
}

func TestIsRetryable(t *testing.T) {
	tests := []struct {
		err  error
		want bool
	}{
		{New(CodeCameraUnavailable, ""), true},
		{New(CodeSessionBusy, ""), true},
		{New(CodeComposeFailed, ""), false},
		{io.EOF, false},
	}
	for _, tt := range tests {
		if got := IsRetryable(tt.err); got != tt.want {
			t.Errorf("IsRetryable(%v) = %v, want %v", tt.err, got, tt.want)
		}
	}
}

func TestCodeStringUnknown(t *testing.T) {
	if got := Code(99).String(); got != "CODE(99)" {
		t.Errorf("String() = %q", got)
	}
}
