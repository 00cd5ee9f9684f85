package domain

import "strings"

// LightingMode selects the lighting conditions requested from the renderer.
type LightingMode string

const (
	LightingMorning  LightingMode = "Morning Mist"
	LightingMidday   LightingMode = "High Noon"
	LightingGolden   LightingMode = "Golden Hour"
	LightingTwilight LightingMode = "Blue Hour"
	LightingOvercast LightingMode = "Soft Overcast"
)

// EnvironmentMode selects the site context for exterior renders.
type EnvironmentMode string

const (
	EnvironmentExisting      EnvironmentMode = "Original Site"
	EnvironmentEstate        EnvironmentMode = "Manicured Estate"
	EnvironmentAlps          EnvironmentMode = "Alpine Peaks"
	EnvironmentCoastal       EnvironmentMode = "Coastal Bluff"
	EnvironmentDesert        EnvironmentMode = "Modern Desert"
	EnvironmentForest        EnvironmentMode = "Dense Forest"
	EnvironmentFoothills     EnvironmentMode = "Ridge Foothills"
	EnvironmentUrban         EnvironmentMode = "Metro Context"
	EnvironmentSuburban      EnvironmentMode = "Suburban Street"
	EnvironmentVineyard      EnvironmentMode = "Vineyard Estate"
	EnvironmentLakefront     EnvironmentMode = "Lakefront"
	EnvironmentMeadow        EnvironmentMode = "Mountain Meadow"
	EnvironmentTropical      EnvironmentMode = "Tropical Paradise"
	EnvironmentMediterranean EnvironmentMode = "Mediterranean Coast"
)

// CameraAngle is the requested viewpoint for exterior renders.
type CameraAngle string

const (
	CameraFront    CameraAngle = "Direct POV"
	CameraSide     CameraAngle = "Side POV"
	CameraAngled   CameraAngle = "3/4 POV"
	CameraBirdseye CameraAngle = "Aerial POV"
)

// RoomType classifies interior render requests. The classifier drives which
// room-specific hard-rule overlay the prompt composer emits.
type RoomType string

const (
	RoomKitchen  RoomType = "Kitchen"
	RoomLiving   RoomType = "Living Room"
	RoomBedroom  RoomType = "Primary Bedroom"
	RoomBathroom RoomType = "Bathroom"
	RoomOffice   RoomType = "Home Office"
	RoomDining   RoomType = "Dining Room"
	RoomBasement RoomType = "Basement"
	RoomLaundry  RoomType = "Laundry Room"
	RoomMudroom  RoomType = "Mudroom"
	RoomPantry   RoomType = "Pantry"
)

// IsKitchen reports whether the room type falls under kitchen hard rules.
func (r RoomType) IsKitchen() bool { return containsFold(string(r), "kitchen") }

// IsLaundry reports whether the room type falls under laundry-room hard rules.
func (r RoomType) IsLaundry() bool { return containsFold(string(r), "laundry") }

// IsBathroom reports whether the room type falls under bathroom hard rules.
func (r RoomType) IsBathroom() bool { return containsFold(string(r), "bath") }

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(strings.TrimSpace(s)), substr)
}
