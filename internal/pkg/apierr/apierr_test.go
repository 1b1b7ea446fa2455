package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	cases := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusBadRequest},
		{KindNotFound, http.StatusNotFound},
		{KindUnavailable, http.StatusServiceUnavailable},
		{KindInternal, http.StatusInternalServerError},
	}
	for _, c := range cases {
		got := New(c.kind, "msg", nil).Status()
		if got != c.want {
			t.Fatalf("Status for %s: got %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestAsThroughWrapping(t *testing.T) {
	inner := NotFound("trip not found", nil)
	wrapped := fmt.Errorf("get trip: %w", inner)

	e := As(wrapped)
	if e == nil {
		t.Fatalf("As: expected to find *Error in chain")
	}
	if e.Kind != KindNotFound {
		t.Fatalf("As: got kind %s, want %s", e.Kind, KindNotFound)
	}
	if !IsKind(wrapped, KindNotFound) {
		t.Fatalf("IsKind: expected true")
	}
}

func TestWrapPreservesAndConverts(t *testing.T) {
	v := Validation("limit cannot exceed 100 items", nil)
	if got := Wrap(v, "list trips"); got != v {
		t.Fatalf("Wrap: expected existing *Error to pass through")
	}

	cause := errors.New("connection reset")
	got := Wrap(cause, "create trip")
	if got.Kind != KindInternal {
		t.Fatalf("Wrap: got kind %s, want %s", got.Kind, KindInternal)
	}
	if !errors.Is(got, cause) {
		t.Fatalf("Wrap: cause not preserved in chain")
	}
	if Wrap(nil, "noop") != nil {
		t.Fatalf("Wrap(nil) should be nil")
	}
}
