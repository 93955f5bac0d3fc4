package snow

// Snow field defaults.
const (
	DefaultCrystals = 100

	CrystalMinSize      = 3
	CrystalMaxSize      = 8
	CrystalMinFall      = 0.5 // px/frame
	CrystalMaxFall      = 2.0
	CrystalMaxDrift     = 0.3 // px/frame, symmetric
	CrystalMaxSpin      = 2.0 // deg/frame, symmetric
	CrystalBranches     = 6
	CrystalSideRatio    = 0.5  // side branch length relative to Size
	CrystalSideAngle    = 30.0 // degrees either side of the main branch
	CrystalLineWidth    = 1
	CrystalBranchDegree = 360.0 / CrystalBranches
)

// Sleigh overlay.
const (
	SleighWidth    = 160
	SleighHeight   = 80
	SleighSpeed    = 2.5 // px/frame
	SleighMinY     = 100
	SleighMaxY     = 250
	AppearInterval = 5000 // ms between cue firings
)

// Backdrop.
const (
	TreeWidth   = 80
	TreeHeight  = 120
	TreeSpacing = 120 // distance between tree origins
	BannerText  = "Merry Christmas!"
	BannerY     = 24
	BannerSize  = 48 // font size in points
)

var (
	Background = RGB{R: 0, G: 0, B: 50}
	White      = RGB{R: 255, G: 255, B: 255}
	BannerCol  = RGB{R: 255, G: 220, B: 120}
)
