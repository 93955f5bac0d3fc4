package game

// Window defaults.
const (
	WindowWidth  = 800
	WindowHeight = 600
	WindowTitle  = "Wintery Snowfall Simulation"
	TargetFPS    = 60
)

// Asset locations, relative to the working directory.
const (
	AssetDir        = "assets"
	TreeImage       = AssetDir + "/tree.png"
	SleighImage     = AssetDir + "/sleigh.png"
	AmbientTrack    = AssetDir + "/winter_ambient.mp3"
	WindTrack       = AssetDir + "/gentle_wind.wav"
	SleighBellsClip = AssetDir + "/sleigh_bells.wav"
)

// Mixer levels.
const (
	MusicVolume = 0.3
	WindVolume  = 0.2
	CueVolume   = 0.6
)

// Render buffers.
const (
	MaxLineVertices = 8192 // 100 crystals * 18 segments * 2 vertices fits with room
	LineStride      = 6    // x, y, r, g, b, a
	QuadStride      = 8    // x, y, u, v, r, g, b, a
)
