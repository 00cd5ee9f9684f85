// Package prompt builds the generation instruction for the render model. The
// composer is pure text construction: no network calls, no state.
package prompt

import (
	"encoding/json"
	"fmt"
	"strings"

	"archviz/internal/domain"
)

// DefaultInstructionInterior is the fallback custom instruction for interior
// renders when the user supplied none.
const DefaultInstructionInterior = "Apply style through finishes only. Do not modify room structure."

// DefaultInstructionExterior is the exterior equivalent.
const DefaultInstructionExterior = "Apply style faithfully while preserving all structural elements."

// Compose merges the structural inventory, hard-constraint rules, style DNA,
// user overrides, and optional fix-note into one instruction block.
//
// Section order is load-bearing: the inventory checklist opens the prompt,
// the hard constraints precede the style DNA, and the constraints are
// restated after the style text. The restatement is deliberate redundancy
// against instruction-following drift, so the style DNA can never outrank
// the structural rules.
func Compose(req domain.GenerationRequest, inventory domain.StructuralInventory, fixNote string) string {
	var b strings.Builder

	writeInventorySection(&b, inventory)
	writeGeometryBinding(&b, req.Mode)
	writeRuleOverlay(&b, req)
	writeZeroTolerance(&b, req.Mode)
	writeStyleSection(&b, req)
	writeOverrides(&b, req)
	writeRenderingDirectives(&b, req)
	writeCustomInstruction(&b, req)
	writeClosingRestatement(&b, req.Mode)

	if fixNote != "" {
		b.WriteString("\n=== FIX MISMATCH (MANDATORY) ===\n")
		b.WriteString(fixNote)
		b.WriteString("\n")
	}

	return b.String()
}

func writeInventorySection(b *strings.Builder, inventory domain.StructuralInventory) {
	encoded, err := json.Marshal(inventory)
	if err != nil {
		encoded = []byte("{}")
	}
	b.WriteString("######################################################################\n")
	b.WriteString("#           STRUCTURE INVENTORY - YOU MUST MATCH THIS EXACTLY        #\n")
	b.WriteString("######################################################################\n\n")
	b.WriteString("The following structure was detected in the input image:\n")
	b.Write(encoded)
	b.WriteString("\n\nYOUR OUTPUT MUST HAVE:\n")
	b.WriteString("- The EXACT same number of windows in the EXACT same positions\n")
	b.WriteString("- The EXACT same number of doors in the EXACT same positions\n")
	b.WriteString("- The EXACT same number of sinks/faucets in the EXACT same positions\n")
	b.WriteString("- All appliances and fixtures in their EXACT original positions\n")
	b.WriteString("- NO new openings, benches, nooks, or bays\n\n")
	b.WriteString("If your output does not match this inventory, it is INVALID.\n\n")
}

func writeGeometryBinding(b *strings.Builder, mode domain.RenderMode) {
	b.WriteString("######################################################################\n")
	b.WriteString("#                    IMAGE GEOMETRY BINDING                          #\n")
	b.WriteString("######################################################################\n\n")
	b.WriteString("The input image is ground-truth geometry.\n")
	if mode == domain.RenderModeInterior {
		b.WriteString("You are NOT allowed to redesign, reinterpret, or improve the room layout.\n")
		b.WriteString("You are performing an in-place finish and material upgrade on the exact photographed room.\n")
		b.WriteString("Every wall plane, window, opening, cabinet run, alcove, and ceiling plane must remain in exactly the same position and shape as shown in the photo.\n\n")
		b.WriteString("This is a TEXTURE/MATERIAL SWAP, not a redesign.\n")
		b.WriteString("Think of it as re-skinning a 3D model - geometry stays locked, only surfaces change.\n\n")
		return
	}
	b.WriteString("You are NOT allowed to redesign, reinterpret, or improve the building massing.\n")
	b.WriteString("The following elements are HARD BUILD features and must be preserved EXACTLY as shown in the input:\n")
	b.WriteString("- Window positions, sizes, and quantities\n")
	b.WriteString("- Door positions and sizes\n")
	b.WriteString("- Roof shape, pitch, and ridge lines\n")
	b.WriteString("- Dormers (position, size, quantity)\n")
	b.WriteString("- Gables and their positions\n")
	b.WriteString("- Garage doors (position, size, number of bays)\n")
	b.WriteString("- Overall building footprint and massing\n")
	b.WriteString("- Number of stories/floors\n")
	b.WriteString("- Chimney positions\n")
	b.WriteString("- Porch/entry positions and proportions\n")
	b.WriteString("- Structural columns and posts\n\n")
	b.WriteString("DO NOT add, remove, or relocate ANY of these hard elements.\n\n")
}

func writeRuleOverlay(b *strings.Builder, req domain.GenerationRequest) {
	if req.Mode != domain.RenderModeInterior {
		return
	}
	switch {
	case req.RoomType.IsKitchen():
		b.WriteString("=== KITCHEN HARD RULES ===\n")
		b.WriteString("- Do NOT add a second sink or move the existing sink.\n")
		b.WriteString("- Do NOT add or move the range/cooktop.\n")
		b.WriteString("- Do NOT add an island if none exists.\n")
		b.WriteString("- Do NOT add a window above the sink if none exists.\n")
		b.WriteString("- Keep all appliances in their exact positions.\n\n")
	case req.RoomType.IsLaundry():
		b.WriteString("=== LAUNDRY ROOM HARD RULES ===\n")
		b.WriteString("- Do NOT add a mudroom bench, window seat, bay nook, or banquette.\n")
		b.WriteString("- Do NOT add additional windows beyond what exists.\n")
		b.WriteString("- Do NOT add a second sink or move sink location.\n")
		b.WriteString("- Do NOT add a pantry door or extra doorway.\n")
		b.WriteString("- Keep washer/dryer exactly in-place if present.\n")
		b.WriteString("- This room does NOT need beautification with extra features - keep it functional.\n\n")
	case req.RoomType.IsBathroom():
		b.WriteString("=== BATHROOM HARD RULES ===\n")
		b.WriteString("- Do NOT add a window if none exists.\n")
		b.WriteString("- Do NOT add a second vanity or sink.\n")
		b.WriteString("- Do NOT move the toilet, tub, or shower.\n")
		b.WriteString("- Do NOT add a freestanding tub if none exists.\n")
		b.WriteString("- Keep all plumbing fixtures in exact positions.\n\n")
	}
}

func writeZeroTolerance(b *strings.Builder, mode domain.RenderMode) {
	b.WriteString("=== ZERO TOLERANCE VIOLATIONS ===\n")
	b.WriteString("- Adding a window = FAILURE\n")
	b.WriteString("- Adding a door = FAILURE\n")
	b.WriteString("- Adding a skylight = FAILURE\n")
	if mode == domain.RenderModeInterior {
		b.WriteString("- Adding a bench/nook/bay = FAILURE\n")
		b.WriteString("- Moving any sink = FAILURE\n")
		b.WriteString("- Moving any appliance = FAILURE\n")
		b.WriteString("- Changing room shape = FAILURE\n")
	} else {
		b.WriteString("- Changing the roof shape = FAILURE\n")
		b.WriteString("- Adding or removing a dormer = FAILURE\n")
		b.WriteString("- Changing the garage bay count = FAILURE\n")
		b.WriteString("- Moving a chimney = FAILURE\n")
		b.WriteString("- Changing the story count = FAILURE\n")
	}
	b.WriteString("- Changing the camera angle = FAILURE\n\n")
	b.WriteString("If you cannot follow these constraints perfectly, do NOT invent anything.\n")
	b.WriteString("Output the same structure with minimal finish changes only.\n\n")
}

func writeStyleSection(b *strings.Builder, req domain.GenerationRequest) {
	if req.Mode == domain.RenderModeInterior {
		b.WriteString("=== STYLE APPLICATION (SURFACES ONLY) ===\n")
	} else {
		b.WriteString("=== STYLE APPLICATION (EXTERIOR FINISHES ONLY) ===\n")
	}
	fmt.Fprintf(b, "Style: %s\n", req.Style.Name)
	fmt.Fprintf(b, "DNA: %s\n\n", req.Style.DNA)

	if req.Mode == domain.RenderModeInterior {
		if req.RoomType != "" {
			fmt.Fprintf(b, "ROOM TYPE: %s\n\n", req.RoomType)
		}
		b.WriteString("=== WHAT YOU MAY CHANGE ===\n")
		b.WriteString("- Wall paint/color/texture (not wall positions)\n")
		b.WriteString("- Flooring material (not room shape)\n")
		b.WriteString("- Cabinet door style and color (not cabinet positions)\n")
		b.WriteString("- Countertop material (not counter layout)\n")
		b.WriteString("- Hardware and fixture finishes (not fixture locations)\n")
		b.WriteString("- Decor, furniture, rugs, window treatments\n")
		b.WriteString("- Lighting fixture style (not positions or count)\n\n")
		return
	}
	b.WriteString("=== WHAT YOU MAY CHANGE ===\n")
	b.WriteString("- Siding/cladding materials and colors\n")
	b.WriteString("- Roof material and color (but NOT shape)\n")
	b.WriteString("- Window trim and frame colors (but NOT positions)\n")
	b.WriteString("- Door style and color (but NOT position)\n")
	b.WriteString("- Exterior paint colors\n")
	b.WriteString("- Stone/brick veneer application\n")
	b.WriteString("- Shutters, trim, and decorative elements\n")
	b.WriteString("- Landscaping and hardscape\n\n")
}

func writeOverrides(b *strings.Builder, req domain.GenerationRequest) {
	if !req.Materials.IsZero() {
		b.WriteString("MATERIALS TO USE:\n")
		if req.Materials.Flooring != "" {
			fmt.Fprintf(b, "- Flooring: %s\n", req.Materials.Flooring)
		}
		if req.Materials.Cabinets != "" {
			fmt.Fprintf(b, "- Cabinets: %s\n", req.Materials.Cabinets)
		}
		if req.Materials.Countertops != "" {
			fmt.Fprintf(b, "- Countertops: %s\n", req.Materials.Countertops)
		}
		if req.Materials.Backsplash != "" {
			fmt.Fprintf(b, "- Backsplash: %s\n", req.Materials.Backsplash)
		}
		b.WriteString("\n")
	}
	if len(req.CustomColors) > 0 {
		b.WriteString("CUSTOM COLORS TO APPLY:\n")
		for _, c := range req.CustomColors {
			fmt.Fprintf(b, "- %s: %s\n", c.Name, c.Hex)
		}
		b.WriteString("\n")
	}
}

func writeRenderingDirectives(b *strings.Builder, req domain.GenerationRequest) {
	b.WriteString("=== CAMERA & RENDERING ===\n")
	fmt.Fprintf(b, "- LIGHTING: %s - the sky, shadows, and ambient light must clearly reflect %s\n", req.Lighting, req.Lighting)
	if req.Mode == domain.RenderModeExterior {
		fmt.Fprintf(b, "- VIEWPOINT: %s\n", req.Camera)
		fmt.Fprintf(b, "- ENVIRONMENT: %s setting with realistic context\n", req.Environment)
	}
	b.WriteString("- Maintain the EXACT same camera angle, position, and perspective as the input photo\n")
	b.WriteString("- No dramatic angles or artistic reframing\n")
	b.WriteString("- QUALITY: Ultra photorealistic, 8K architectural photography quality\n")
	b.WriteString("- NO stylized sketches, paper backgrounds, or artistic interpretations\n\n")
}

func writeCustomInstruction(b *strings.Builder, req domain.GenerationRequest) {
	b.WriteString("=== CUSTOM INSTRUCTIONS ===\n")
	instruction := strings.TrimSpace(req.CustomInstruction)
	if instruction == "" {
		if req.Mode == domain.RenderModeInterior {
			instruction = DefaultInstructionInterior
		} else {
			instruction = DefaultInstructionExterior
		}
	}
	b.WriteString(instruction)
	b.WriteString("\n\n")
}

func writeClosingRestatement(b *strings.Builder, mode domain.RenderMode) {
	b.WriteString("=== FINAL CHECK ===\n")
	b.WriteString("Before finalizing, verify:\n")
	b.WriteString("1. All windows are in their original positions\n")
	b.WriteString("2. All doors are in their original positions\n")
	if mode == domain.RenderModeInterior {
		b.WriteString("3. All sinks, faucets, and appliances are unchanged\n")
		b.WriteString("4. Room shape and ceiling planes are identical to the input\n")
		b.WriteString("5. Only finishes, materials, and decor have been modified\n\n")
		b.WriteString("Generate a photorealistic finish upgrade that could be achieved WITHOUT construction changes.\n")
		b.WriteString("The room geometry must be IDENTICAL to the input photo.\n")
		return
	}
	b.WriteString("3. Roof shape matches the input exactly\n")
	b.WriteString("4. Garage configuration is unchanged\n")
	b.WriteString("5. Building footprint and massing is identical\n")
	b.WriteString("6. Only exterior materials/colors have been modified\n\n")
	b.WriteString("OUTPUT: Photorealistic architectural visualization ready for client presentation.\n")
}
