package prompt

import (
	"strings"
	"testing"

	"archviz/internal/domain"
)

func interiorRequest() domain.GenerationRequest {
	req := domain.GenerationRequest{
		Style:    domain.StyleDirective{ID: "modern-minimalist", Name: "Modern Minimalist", DNA: "clean lines, matte finishes", Mode: domain.RenderModeInterior},
		Mode:     domain.RenderModeInterior,
		RoomType: domain.RoomType("Kitchen"),
	}
	req.Normalize()
	return req
}

func exteriorRequest() domain.GenerationRequest {
	req := domain.GenerationRequest{
		Style: domain.StyleDirective{ID: "modern-farmhouse", Name: "Modern Farmhouse", DNA: "board and batten, metal roof accents", Mode: domain.RenderModeExterior},
		Mode:  domain.RenderModeExterior,
	}
	req.Normalize()
	return req
}

func sampleInventory() domain.StructuralInventory {
	var inv domain.StructuralInventory
	inv.Windows.Count = 3
	inv.Doors.Count = 1
	inv.Sink.Present = true
	inv.Sink.Count = 1
	return inv
}

func TestComposeSectionOrder(t *testing.T) {
	out := Compose(interiorRequest(), sampleInventory(), "")

	inventoryAt := strings.Index(out, "STRUCTURE INVENTORY")
	bindingAt := strings.Index(out, "IMAGE GEOMETRY BINDING")
	zeroAt := strings.Index(out, "ZERO TOLERANCE VIOLATIONS")
	styleAt := strings.Index(out, "DNA: clean lines, matte finishes")
	finalAt := strings.Index(out, "FINAL CHECK")

	for name, at := range map[string]int{
		"inventory": inventoryAt, "binding": bindingAt, "zero tolerance": zeroAt,
		"style DNA": styleAt, "final check": finalAt,
	} {
		if at < 0 {
			t.Fatalf("section %q missing from prompt:\n%s", name, out)
		}
	}
	if !strings.HasPrefix(out, "#####") || inventoryAt > bindingAt {
		t.Fatalf("inventory section does not open the prompt, starts at %d", inventoryAt)
	}
	if !(bindingAt < zeroAt && zeroAt < styleAt) {
		t.Fatalf("hard constraints do not precede style DNA: binding=%d zero=%d style=%d", bindingAt, zeroAt, styleAt)
	}
	if finalAt < styleAt {
		t.Fatalf("closing restatement precedes style section: final=%d style=%d", finalAt, styleAt)
	}
}

func TestComposeEmbedsInventoryJSON(t *testing.T) {
	out := Compose(interiorRequest(), sampleInventory(), "")
	if !strings.Contains(out, `"count":3`) {
		t.Fatalf("prompt missing window count from inventory JSON:\n%s", out)
	}
	if !strings.Contains(out, "YOUR OUTPUT MUST HAVE:") {
		t.Fatalf("prompt missing inventory checklist")
	}
}

func TestComposeRoomOverlays(t *testing.T) {
	cases := []struct {
		room domain.RoomType
		want string
	}{
		{domain.RoomType("Kitchen"), "KITCHEN HARD RULES"},
		{domain.RoomType("Laundry Room"), "LAUNDRY ROOM HARD RULES"},
		{domain.RoomType("Primary Bathroom"), "BATHROOM HARD RULES"},
	}
	for _, tc := range cases {
		req := interiorRequest()
		req.RoomType = tc.room
		out := Compose(req, sampleInventory(), "")
		if !strings.Contains(out, tc.want) {
			t.Fatalf("room %q: overlay %q missing", tc.room, tc.want)
		}
	}

	req := interiorRequest()
	req.RoomType = domain.RoomType("Living Room")
	out := Compose(req, sampleInventory(), "")
	if strings.Contains(out, "HARD RULES") {
		t.Fatalf("living room prompt carries a room overlay:\n%s", out)
	}
}

func TestComposeExteriorOmitsInteriorOverlays(t *testing.T) {
	out := Compose(exteriorRequest(), sampleInventory(), "")
	if strings.Contains(out, "KITCHEN HARD RULES") {
		t.Fatalf("exterior prompt carries a kitchen overlay")
	}
	if !strings.Contains(out, "HARD BUILD features") {
		t.Fatalf("exterior prompt missing hard-build feature list")
	}
	if !strings.Contains(out, "Changing the garage bay count = FAILURE") {
		t.Fatalf("exterior prompt missing exterior zero-tolerance list")
	}
	if !strings.Contains(out, "VIEWPOINT: "+string(domain.CameraFront)) {
		t.Fatalf("exterior prompt missing viewpoint directive")
	}
}

func TestComposeInteriorIsTextureSwap(t *testing.T) {
	out := Compose(interiorRequest(), sampleInventory(), "")
	if !strings.Contains(out, "TEXTURE/MATERIAL SWAP") {
		t.Fatalf("interior prompt missing texture-swap framing")
	}
	if strings.Contains(out, "VIEWPOINT:") {
		t.Fatalf("interior prompt carries the exterior viewpoint directive")
	}
}

func TestComposeOverridesAndColors(t *testing.T) {
	req := interiorRequest()
	req.Materials = domain.MaterialOverrides{Flooring: "wide-plank white oak", Countertops: "honed quartzite"}
	req.CustomColors = []domain.SavedColor{{Name: "Hale Navy", Hex: "#434C56"}}

	out := Compose(req, sampleInventory(), "")
	if !strings.Contains(out, "- Flooring: wide-plank white oak") {
		t.Fatalf("prompt missing flooring override")
	}
	if !strings.Contains(out, "- Countertops: honed quartzite") {
		t.Fatalf("prompt missing countertop override")
	}
	if strings.Contains(out, "- Backsplash:") {
		t.Fatalf("prompt lists an empty backsplash override")
	}
	if !strings.Contains(out, "- Hale Navy: #434C56") {
		t.Fatalf("prompt missing custom color")
	}

	bare := Compose(interiorRequest(), sampleInventory(), "")
	if strings.Contains(bare, "MATERIALS TO USE:") || strings.Contains(bare, "CUSTOM COLORS TO APPLY:") {
		t.Fatalf("prompt without overrides still carries override sections")
	}
}

func TestComposeCustomInstructionFallbacks(t *testing.T) {
	out := Compose(interiorRequest(), sampleInventory(), "")
	if !strings.Contains(out, DefaultInstructionInterior) {
		t.Fatalf("interior prompt missing default instruction")
	}

	out = Compose(exteriorRequest(), sampleInventory(), "")
	if !strings.Contains(out, DefaultInstructionExterior) {
		t.Fatalf("exterior prompt missing default instruction")
	}

	req := interiorRequest()
	req.CustomInstruction = "  keep the brass hardware  "
	out = Compose(req, sampleInventory(), "")
	if !strings.Contains(out, "keep the brass hardware") {
		t.Fatalf("prompt missing user instruction")
	}
	if strings.Contains(out, DefaultInstructionInterior) {
		t.Fatalf("default instruction present alongside user instruction")
	}
}

func TestComposeFixNotePlacement(t *testing.T) {
	note := "Your previous output FAILED structure compliance.\n- Windows: expected 3, got 5. Input has 3, you MUST have exactly 3."
	out := Compose(interiorRequest(), sampleInventory(), note)

	at := strings.Index(out, "=== FIX MISMATCH (MANDATORY) ===")
	if at < 0 {
		t.Fatalf("fix-note section missing:\n%s", out)
	}
	if !strings.Contains(out[at:], "you MUST have exactly 3") {
		t.Fatalf("fix-note body not carried into prompt")
	}
	if at < strings.Index(out, "FINAL CHECK") {
		t.Fatalf("fix-note section is not the final section")
	}

	clean := Compose(interiorRequest(), sampleInventory(), "")
	if strings.Contains(clean, "FIX MISMATCH") {
		t.Fatalf("fix-note section present without a note")
	}
}
