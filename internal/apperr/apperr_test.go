package apperr

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

func TestValidation(t *testing.T) {
	t.Parallel()

	err := Validation("Unsupported language: %s", "klingon")
	if !IsValidation(err) || IsUpstream(err) {
		t.Fatalf("expected validation error, got %v", err)
	}
	if err.Error() != "Unsupported language: klingon" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
}

func TestUpstreamWrapsCause(t *testing.T) {
	t.Parallel()

	err := Upstream("Translation failed", context.DeadlineExceeded)
	if !IsUpstream(err) {
		t.Fatalf("expected upstream error, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if err.Error() != "Translation failed: context deadline exceeded" {
		t.Fatalf("unexpected message: %q", err.Error())
	}
	if PublicMessage(err) != "Translation failed" {
		t.Fatalf("cause leaked into public message: %q", PublicMessage(err))
	}
}

func TestUpstreamKeepsClassifiedErrors(t *testing.T) {
	t.Parallel()

	v := Validation("Text cannot be empty")
	if got := Upstream("Translation failed", v); got != v {
		t.Fatalf("expected validation error unchanged, got %v", got)
	}

	wrapped := fmt.Errorf("engine: %w", v)
	if !IsValidation(Upstream("Translation failed", wrapped)) {
		t.Fatal("wrapped validation error must stay a validation error")
	}
}

func TestUnclassified(t *testing.T) {
	t.Parallel()

	err := errors.New("boom")
	if _, ok := KindOf(err); ok {
		t.Fatal("plain errors have no kind")
	}
	if PublicMessage(err) != "Internal server error" {
		t.Fatalf("unexpected public message: %q", PublicMessage(err))
	}
}
