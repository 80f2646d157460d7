package dto

import (
	"errors"
	"testing"
	"time"
)

func TestErrorResponse_Error(t *testing.T) {
	e := ErrorResponse{Message: "series not found"}
	if e.Error() != "series not found" {
		t.Fatalf("want 'series not found' got %q", e.Error())
	}
	e2 := ErrorResponse{Message: "invalid request", ErrorDetails: "limit must be positive"}
	if e2.Error() != "invalid request: limit must be positive" {
		t.Fatalf("want 'invalid request: limit must be positive' got %q", e2.Error())
	}
}

func TestNewErrorResponse(t *testing.T) {
	// without inner error
	e := NewErrorResponse("msg", nil)
	if e.Message != "msg" || e.ErrorDetails != "" {
		t.Fatalf("unexpected %+v", e)
	}
	if e.Timestamp.IsZero() || time.Since(e.Timestamp) > time.Second {
		t.Fatalf("timestamp not set")
	}

	// with inner error
	err := errors.New("upstream timeout")
	e2 := NewErrorResponse("msg", err)
	if e2.ErrorDetails != "upstream timeout" || e2.Message != "msg" {
		t.Fatalf("unexpected %+v", e2)
	}
}
