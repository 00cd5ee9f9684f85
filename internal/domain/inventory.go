package domain

// StructuralInventory is a normalized snapshot of the hard geometry visible in
// a single photo: openings, plumbing, and fixed built-ins. One inventory is
// produced per audited image and never persisted beyond the generation call.
//
// The zero value is the all-default inventory (every count 0, every presence
// false) and is what the auditor substitutes when extraction fails, so
// downstream code can always rely on a fully populated schema.
type StructuralInventory struct {
	Windows      WindowInventory  `json:"windows"`
	Doors        DoorInventory    `json:"doors"`
	Skylights    CountInventory   `json:"skylights"`
	Sink         FixtureInventory `json:"sink"`
	Faucets      CountInventory   `json:"faucets"`
	WasherDryer  PlacedPresence   `json:"washerDryer"`
	Range        Presence         `json:"range"`
	Island       Presence         `json:"island"`
	Fireplace    Presence         `json:"fireplace"`
	BuiltInBench Presence         `json:"builtInBench"`
	CameraAngle  string           `json:"cameraAngle"`
}

// WindowInventory breaks window counts down per wall. The per-wall breakdown
// and notes are advisory, only the total count is compliance-gated.
type WindowInventory struct {
	Count  int            `json:"count"`
	ByWall map[string]int `json:"byWall,omitempty"`
	Notes  string         `json:"notes,omitempty"`
}

type DoorInventory struct {
	Count     int      `json:"count"`
	Positions []string `json:"positions,omitempty"`
}

type CountInventory struct {
	Count int `json:"count"`
}

type FixtureInventory struct {
	Present  bool   `json:"present"`
	Count    int    `json:"count"`
	Position string `json:"position,omitempty"`
}

type PlacedPresence struct {
	Present  bool   `json:"present"`
	Position string `json:"position,omitempty"`
}

type Presence struct {
	Present bool `json:"present"`
}
