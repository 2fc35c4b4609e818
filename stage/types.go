package stage

// SpawnPoint places a fighter at round start. X/Y anchor the fighter's
// feet, Facing is -1 or 1.
type SpawnPoint struct {
	Index  int
	X      float64
	Y      float64
	Facing float64
}

// SolidRect is a static collision rectangle (floor or wall).
type SolidRect struct {
	X, Y, W, H float64
}

// Stage holds everything parsed from one arena TMX file.
type Stage struct {
	Name      string
	MapWidth  int
	MapHeight int
	GroundY   float64 // top of the lowest full-width solid
	Solids    []SolidRect
	Spawns    []SpawnPoint
}
