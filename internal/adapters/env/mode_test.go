package env

import (
	"testing"

	"github.com/3-lines-studio/folio/internal/core"
)

func TestModeFrom(t *testing.T) {
	tests := []struct {
		value string
		want  core.Mode
	}{
		{"", core.ModeProd},
		{"0", core.ModeProd},
		{"1", core.ModeDev},
		{"true", core.ModeDev},
	}

	for _, tt := range tests {
		got := ModeFrom(func(string) string { return tt.value })
		if got != tt.want {
			t.Errorf("ModeFrom(%q) = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestDetectMode(t *testing.T) {
	t.Setenv(DevVar, "1")
	if DetectMode() != core.ModeDev {
		t.Error("expected dev mode")
	}
}
