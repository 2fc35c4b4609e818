package stage

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Load parses an arena TMX file. It takes an fs.FS so callers can pass
// the embedded stages or os.DirFS for external files.
func Load(fsys fs.FS, tmxPath string) (*Stage, error) {
	arenaMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	s := &Stage{
		Name:      strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		MapWidth:  arenaMap.Width * arenaMap.TileWidth,
		MapHeight: arenaMap.Height * arenaMap.TileHeight,
	}

	for _, og := range arenaMap.ObjectGroups {
		switch og.Name {
		case "Collision":
			for _, o := range og.Objects {
				s.Solids = append(s.Solids, SolidRect{
					X: o.X,
					Y: o.Y,
					W: o.Width,
					H: o.Height,
				})
			}
		case "Spawns":
			for _, o := range og.Objects {
				facing := float64(o.Properties.GetInt("facing"))
				if facing == 0 {
					facing = 1
				}
				s.Spawns = append(s.Spawns, SpawnPoint{
					Index:  o.Properties.GetInt("spawnIndex"),
					X:      o.X,
					Y:      o.Y,
					Facing: facing,
				})
			}
		}
	}

	if len(s.Spawns) < 2 {
		return nil, fmt.Errorf("stage %s: need 2 spawn points, got %d", s.Name, len(s.Spawns))
	}

	// Sort spawns by index for consistent player assignment
	sort.Slice(s.Spawns, func(i, j int) bool {
		return s.Spawns[i].Index < s.Spawns[j].Index
	})

	// The ground is the top of the widest solid. Full-width floors win
	// over side walls, which are tall and narrow.
	for _, r := range s.Solids {
		if r.W >= float64(s.MapWidth)/2 && (s.GroundY == 0 || r.Y < s.GroundY) {
			s.GroundY = r.Y
		}
	}
	if s.GroundY == 0 {
		return nil, fmt.Errorf("stage %s: no floor solid found", s.Name)
	}

	return s, nil
}
