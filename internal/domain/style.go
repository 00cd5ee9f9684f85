package domain

// Tier gates catalog entries by subscription level. Gating itself is enforced
// by the embedding application; the catalog only carries the label.
type Tier string

const (
	TierStandard   Tier = "STANDARD"
	TierPro        Tier = "PRO"
	TierEnterprise Tier = "ENTERPRISE"
)

// RenderMode distinguishes the two generation pipelines.
type RenderMode string

const (
	RenderModeExterior RenderMode = "EXTERIOR"
	RenderModeInterior RenderMode = "INTERIOR"
)

// StyleDirective is a named design style from the static catalog. DNA is a
// free-text description of material and finish characteristics; it steers
// finish-only changes and must never override structural constraints.
type StyleDirective struct {
	ID   string
	Name string
	DNA  string
	Tier Tier
	Mode RenderMode
}

// StyleByID looks a style up in the static catalog.
func StyleByID(id string) (StyleDirective, bool) {
	for _, s := range StyleCatalog {
		if s.ID == id {
			return s, true
		}
	}
	return StyleDirective{}, false
}

// StylesForMode returns the catalog entries available for a render mode,
// preserving catalog order.
func StylesForMode(mode RenderMode) []StyleDirective {
	out := make([]StyleDirective, 0, len(StyleCatalog))
	for _, s := range StyleCatalog {
		if s.Mode == mode {
			out = append(out, s)
		}
	}
	return out
}

// StyleCatalog is the full static style catalog. Order matters: entries are
// grouped by mode and tier and rendered in this order by the catalog endpoint.
var StyleCatalog = []StyleDirective{
	// Exterior, standard tier.
	{ID: "original", Name: "Original Structure", DNA: "Preserve form exactly as-is. Apply photorealistic materials and textures.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "traditional-english", Name: "Traditional English", DNA: "Classic red/brown brick, white timber accents, small-pane windows, slate roof.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "cape-cod", Name: "Cape Cod", DNA: "Symmetrical facade, cedar shingle siding, steep gabled roof, central chimney, dormer windows.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "colonial", Name: "Colonial", DNA: "Two-story symmetrical, brick or clapboard, portico entry with columns, black shutters, multi-pane windows.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "modern", Name: "Modern", DNA: "Flat roofs, clean geometric lines, floor-to-ceiling glass, white stucco, minimal ornamentation.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "modern-farmhouse", Name: "Modern Farmhouse", DNA: "White board-and-batten siding, black metal-frame windows, standing seam metal roof accents, wraparound porch.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "scandinavian", Name: "Scandinavian", DNA: "Light natural wood cladding, minimalist design, large windows, black or charcoal accents, simple gabled roof.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "craftsman", Name: "Craftsman", DNA: "Exposed rafter tails, tapered porch columns on stone bases, shingle siding, low-pitched roof with wide eaves.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "industrial", Name: "Industrial", DNA: "Exposed steel beams, brick walls, large factory-style windows, metal cladding, raw concrete elements.", Tier: TierStandard, Mode: RenderModeExterior},
	{ID: "ranch", Name: "Ranch", DNA: "Single-story, long horizontal profile, low-pitched roof, attached garage, brick or wood siding.", Tier: TierStandard, Mode: RenderModeExterior},

	// Exterior, pro tier.
	{ID: "tudor", Name: "Tudor Revival", DNA: "Decorative half-timbering, steep cross-gabled roof, tall chimneys, casement windows, stucco and brick.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "french-country", Name: "French Country", DNA: "Cream limestone or stucco, hipped roof with flared eaves, arched windows and doors, copper accents.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "mediterranean", Name: "Mediterranean", DNA: "Warm stucco walls, terracotta clay tile roof, arched openings, wrought iron details, courtyard orientation.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "spanish-colonial", Name: "Spanish Colonial", DNA: "White stucco walls, red clay barrel tile roof, ornate wooden doors, wrought iron balconies, arched walkways.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "tuscan", Name: "Tuscan Villa", DNA: "Rustic stone and stucco, terracotta roof tiles, pergolas, arched loggias, warm earth tones, cypress trees.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "japandi", Name: "Japandi", DNA: "Zen minimalism, natural wood slat screens, clean lines, muted earth tones, indoor-outdoor flow.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "prairie", Name: "Prairie Style", DNA: "Strong horizontal lines, flat or hipped roof with broad overhangs, ribbon windows, natural materials.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "victorian", Name: "Victorian", DNA: "Ornate decorative trim, wrap-around porch, bay windows, steep roof with multiple gables, colorful paint scheme.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "log-cabin", Name: "Luxury Log", DNA: "Massive hand-hewn timber logs, large stone chimney, exposed beam ceilings, rustic mountain lodge aesthetic.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "georgian", Name: "Georgian", DNA: "Symmetrical brick facade, centered door with pediment, multi-pane sash windows, hip roof, dentil molding.", Tier: TierPro, Mode: RenderModeExterior},
	{ID: "mid-century", Name: "Mid-Century Modern", DNA: "Post-and-beam construction, floor-to-ceiling glass, integration with nature, flat planes, organic shapes.", Tier: TierPro, Mode: RenderModeExterior},

	// Exterior, enterprise tier.
	{ID: "modern-english", Name: "Modern English", DNA: "Steep gables, cream or painted brick, black window frames, slate roof, formal symmetry with modern touches.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "brutalist", Name: "Brutalist", DNA: "Raw exposed concrete, bold geometric forms, minimal windows, monolithic appearance.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "organic", Name: "Organic", DNA: "Flowing curved shapes, integration with landscape, natural materials, Frank Lloyd Wright influence.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "bristol", Name: "Bristol Transitional", DNA: "Modern clean textures on traditional massing, mix of stone and smooth stucco, updated classic proportions.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "desert-modern", Name: "Desert Modern", DNA: "Low-profile silhouette, sand and earth tones, rammed earth or stucco, seamless indoor-outdoor living.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "post-modern", Name: "Post-Modern", DNA: "Playful geometry, bold colors, ironic classical references, asymmetry, unexpected material combinations.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "a-frame", Name: "A-Frame", DNA: "Dramatic triangular silhouette, steeply pitched roof to ground, large front glass wall, wood or shingle exterior.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "art-deco", Name: "Art Deco", DNA: "Geometric patterns, stepped facades, bold vertical lines, sunburst motifs, chrome and glass accents.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "pueblo", Name: "Pueblo Revival", DNA: "Adobe walls with rounded edges, flat roof with parapet, exposed vigas wooden beams, earth tones.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "mountain-lodge", Name: "Mountain Lodge", DNA: "Heavy timber frame, large stone base, expansive windows, steep roof for snow, rustic luxury materials.", Tier: TierEnterprise, Mode: RenderModeExterior},
	{ID: "coastal-contemporary", Name: "Coastal Contemporary", DNA: "Light and airy, large glass expanses, weathered wood, white and blue palette, elevated on pilings.", Tier: TierEnterprise, Mode: RenderModeExterior},

	// Interior, pro tier and above.
	{ID: "int-modern", Name: "Modern", DNA: "Clean lines, minimalist furniture, neutral palette with bold accents, open floor plan, polished surfaces.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-farmhouse", Name: "Farmhouse", DNA: "Shiplap walls, barn doors, apron sink, reclaimed wood, white and natural tones, vintage accents.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-scandinavian", Name: "Scandinavian", DNA: "Light woods, white walls, cozy textiles, functional furniture, hygge atmosphere, natural light.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-traditional", Name: "Traditional", DNA: "Rich wood tones, crown molding, classic furniture, symmetry, warm colors, elegant fabrics.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-industrial", Name: "Industrial", DNA: "Exposed brick, metal fixtures, concrete floors, open ductwork, Edison bulbs, raw materials.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-coastal", Name: "Coastal", DNA: "Blue and white palette, natural textures, rattan furniture, nautical accents, airy and relaxed.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-transitional", Name: "Transitional", DNA: "Blend of traditional and contemporary, neutral palette, comfortable elegance, timeless appeal.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-minimalist", Name: "Minimalist", DNA: "Bare essentials, monochromatic palette, hidden storage, clean surfaces, purposeful design.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-rustic", Name: "Rustic", DNA: "Natural wood beams, stone fireplace, leather furniture, warm earth tones, handcrafted elements.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-mediterranean", Name: "Mediterranean", DNA: "Terracotta tiles, wrought iron, arched doorways, warm colors, textured walls, mosaic accents.", Tier: TierPro, Mode: RenderModeInterior},
	{ID: "int-contemporary", Name: "Contemporary", DNA: "Current trends, mixed materials, statement lighting, bold art, sophisticated and curated.", Tier: TierEnterprise, Mode: RenderModeInterior},
	{ID: "int-luxury", Name: "Luxury", DNA: "High-end materials, marble surfaces, gold accents, designer furniture, opulent finishes, grand scale.", Tier: TierEnterprise, Mode: RenderModeInterior},
}
