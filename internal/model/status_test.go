package model

import (
	"encoding/json"
	"testing"
)

// TestCheckStatusString tests the string representation of statuses.
func TestCheckStatusString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status CheckStatus
		want   string
	}{
		{StatusOK, "OK"},
		{StatusWarning, "WARNING"},
		{StatusError, "ERROR"},
		{StatusSkipped, "SKIPPED"},
		{CheckStatus(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("CheckStatus(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

// TestCheckStatusJSON tests JSON round-tripping of statuses.
func TestCheckStatusJSON(t *testing.T) {
	t.Parallel()

	t.Run("marshals as string", func(t *testing.T) {
		t.Parallel()

		data, err := json.Marshal(StatusWarning)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(data) != `"WARNING"` {
			t.Errorf("expected %q, got %q", `"WARNING"`, string(data))
		}
	})

	t.Run("unmarshals known values", func(t *testing.T) {
		t.Parallel()

		var s CheckStatus
		if err := json.Unmarshal([]byte(`"SKIPPED"`), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != StatusSkipped {
			t.Errorf("expected StatusSkipped, got %v", s)
		}
	})

	t.Run("unknown values map to error", func(t *testing.T) {
		t.Parallel()

		var s CheckStatus
		if err := json.Unmarshal([]byte(`"SOMETHING_NEW"`), &s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if s != StatusError {
			t.Errorf("expected StatusError, got %v", s)
		}
	})
}
