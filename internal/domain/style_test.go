package domain

import "testing"

func TestStyleByID(t *testing.T) {
	style, ok := StyleByID("modern-farmhouse")
	if !ok {
		t.Fatalf("modern-farmhouse missing from catalog")
	}
	if style.Name != "Modern Farmhouse" || style.Mode != RenderModeExterior {
		t.Fatalf("style = %+v", style)
	}

	if _, ok := StyleByID("no-such-style"); ok {
		t.Fatalf("unknown id resolved")
	}
}

func TestStyleCatalogIDsUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range StyleCatalog {
		if s.ID == "" {
			t.Fatalf("style %q has empty id", s.Name)
		}
		if seen[s.ID] {
			t.Fatalf("duplicate style id %q", s.ID)
		}
		seen[s.ID] = true
		if s.Mode != RenderModeExterior && s.Mode != RenderModeInterior {
			t.Fatalf("style %q has mode %q", s.ID, s.Mode)
		}
		if s.DNA == "" {
			t.Fatalf("style %q has empty DNA", s.ID)
		}
	}
}

func TestStylesForModePartitionsCatalog(t *testing.T) {
	ext := StylesForMode(RenderModeExterior)
	interior := StylesForMode(RenderModeInterior)
	if len(ext) == 0 || len(interior) == 0 {
		t.Fatalf("mode partition empty: exterior %d interior %d", len(ext), len(interior))
	}
	if len(ext)+len(interior) != len(StyleCatalog) {
		t.Fatalf("partition %d+%d does not cover catalog of %d", len(ext), len(interior), len(StyleCatalog))
	}
	for _, s := range interior {
		if s.Mode != RenderModeInterior {
			t.Fatalf("style %q leaked into interior listing", s.ID)
		}
	}
}
