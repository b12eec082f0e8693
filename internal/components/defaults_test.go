package components

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/3-lines-studio/folio/internal/registry"
	"github.com/3-lines-studio/folio/internal/types"
)

func TestDefaultsCoverStandardNames(t *testing.T) {
	table, _ := stubLayouts()
	entries, err := Defaults(Options{Layouts: table})
	if err != nil {
		t.Fatalf("Defaults() error = %v", err)
	}

	reg, err := registry.NewStandard(entries)
	if err != nil {
		t.Fatalf("NewStandard() error = %v", err)
	}

	want := []string{"BlogNewsletterForm", "Figure", "Image", "TOCInline", "a", "pre", "wrapper"}
	if diff := cmp.Diff(want, reg.Names()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}

	seen := map[types.Component]string{}
	for name, c := range entries {
		if c == nil {
			t.Errorf("%s is nil", name)
			continue
		}
		if other, dup := seen[c]; dup {
			t.Errorf("%s and %s share an implementation", name, other)
		}
		seen[c] = name
	}
}

func TestDefaultsRequireLayouts(t *testing.T) {
	if _, err := Defaults(Options{}); err == nil {
		t.Fatal("expected error without layouts")
	}
}
