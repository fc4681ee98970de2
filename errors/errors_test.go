package errors

import (
	"fmt"
	"testing"
)

func TestError(t *testing.T) {
	// Test basic error creation
	err := New(ErrCodeStoreCorrupt, "store corrupt")
	if err.Code != ErrCodeStoreCorrupt {
		t.Errorf("expected code %s, got %s", ErrCodeStoreCorrupt, err.Code)
	}

	// Test error wrapping
	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeStoreWrite, "write failed")

	if wrapped.Unwrap() != cause {
		t.Error("Unwrap should return the cause")
	}

	// Test Is function
	if !Is(wrapped, ErrCodeStoreWrite) {
		t.Error("Is should return true for matching code")
	}

	if Is(wrapped, ErrCodeStoreCorrupt) {
		t.Error("Is should return false for non-matching code")
	}

	// Test WithDetail
	detailed := err.WithDetail("path", "/tmp/storage.json").WithDetail("size", 12)
	if detailed.Details["path"] != "/tmp/storage.json" {
		t.Error("WithDetail should add details")
	}
}

func TestIsLooksThroughNestedErrors(t *testing.T) {
	inner := StoreWrite("/tmp/storage.json", fmt.Errorf("disk full"))
	outer := EventSourceClosed(fmt.Errorf("loop: %w", inner))

	if !Is(outer, ErrCodeEventSourceClosed) {
		t.Error("Is should match the outer code")
	}
	if !Is(outer, ErrCodeStoreWrite) {
		t.Error("Is should match a nested structured code")
	}
	if GetCode(outer) != ErrCodeEventSourceClosed {
		t.Errorf("GetCode should return the outermost code, got %s", GetCode(outer))
	}
}

func TestAs(t *testing.T) {
	base := ConfigCreated("/tmp/config.toml")
	wrapped := fmt.Errorf("startup: %w", base)

	got, ok := As(wrapped)
	if !ok {
		t.Fatal("As should find the structured error")
	}
	if got.Details["path"] != "/tmp/config.toml" {
		t.Errorf("unexpected details: %v", got.Details)
	}

	if _, ok := As(fmt.Errorf("plain")); ok {
		t.Error("As should not match a plain error")
	}
}

func TestIsFatal(t *testing.T) {
	if IsFatal(nil) {
		t.Error("nil is not fatal")
	}
	if IsFatal(InvalidInput("x", "bad")) {
		t.Error("input errors are recoverable")
	}
	if IsFatal(OffsetParse("+x", fmt.Errorf("nope"))) {
		t.Error("offset errors are recoverable")
	}
	if !IsFatal(StoreCorrupt("/tmp/s.json", fmt.Errorf("eof"))) {
		t.Error("corrupt store is fatal")
	}
	if !IsFatal(fmt.Errorf("unknown")) {
		t.Error("unstructured errors are fatal")
	}
}

func TestErrorConstructors(t *testing.T) {
	err := ConfigNotFound("/home/u/.config/tzclock/config.toml")
	if err.Code != ErrCodeConfigNotFound {
		t.Errorf("expected code %s, got %s", ErrCodeConfigNotFound, err.Code)
	}
	if err.Details["path"] != "/home/u/.config/tzclock/config.toml" {
		t.Error("ConfigNotFound should include path detail")
	}

	err = InvalidInput("NoCommaHere", "user/offset not formatted properly")
	if err.Code != ErrCodeInvalidInput {
		t.Errorf("expected code %s, got %s", ErrCodeInvalidInput, err.Code)
	}
	if err.Details["input"] != "NoCommaHere" {
		t.Error("InvalidInput should include input detail")
	}
}
