package logger

import (
	"context"
	"net/http/httptest"
	"testing"
)

func TestNewLogger(t *testing.T) {
	l := NewLogger("test-role")
	if l == nil {
		t.Fatal("expected a logger, got nil")
	}
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop()
	l.Info().Str("key", "value").Msg("discarded")
	l.Err(nil).Msg("also discarded")
}

func TestFromContext_WithoutLogger(t *testing.T) {
	// zerolog falls back to its global logger when the context carries none
	l := FromContext(context.Background())
	if l == nil {
		t.Fatal("expected a logger, got nil")
	}
	l.Debug().Msg("must not panic")
}

func TestFromRequest(t *testing.T) {
	base := Nop()
	req := httptest.NewRequest("GET", "/", nil)
	req = req.WithContext(base.Logger.WithContext(req.Context()))

	l := FromRequest(req)
	if l == nil {
		t.Fatal("expected a logger, got nil")
	}
	l.Info().Msg("must not panic")
}

func TestGetChildLogger(t *testing.T) {
	parent := Nop()
	child := parent.GetChildLogger()
	if child == nil {
		t.Fatal("expected a child logger, got nil")
	}
	if child == parent {
		t.Error("child must be a distinct instance")
	}
}
