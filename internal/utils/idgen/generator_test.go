package idgen

import (
	"strings"
	"testing"
)

func TestGenerateSecureID(t *testing.T) {
	tests := []struct {
		name       string
		prefix     string
		length     int
		wantErr    bool
		wantPrefix string
	}{
		{name: "error code", prefix: "err", length: 16, wantPrefix: "err_"},
		{name: "short id", prefix: "req", length: 4, wantPrefix: "req_"},
		{name: "zero length", prefix: "bad", length: 0, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateSecureID(tt.prefix, tt.length)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !strings.HasPrefix(got, tt.wantPrefix) {
				t.Errorf("expected prefix %q, got %q", tt.wantPrefix, got)
			}
			suffix := strings.TrimPrefix(got, tt.wantPrefix)
			if len(suffix) != tt.length {
				t.Errorf("expected %d random chars, got %d", tt.length, len(suffix))
			}
			for _, r := range suffix {
				if !strings.ContainsRune(alphabet, r) {
					t.Errorf("unexpected character %q in %q", r, got)
				}
			}
		})
	}
}

func TestErrorCodeUnique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		code := ErrorCode()
		if _, dup := seen[code]; dup {
			t.Fatalf("duplicate error code %q", code)
		}
		seen[code] = struct{}{}
	}
}
