// Package assets embeds the portal stylesheet served under /ui/static/.
package assets

import "embed"

//go:embed static
var staticFS embed.FS

func StaticFS() embed.FS {
	return staticFS
}
