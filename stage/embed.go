package stage

import "embed"

//go:embed stages
var FS embed.FS
