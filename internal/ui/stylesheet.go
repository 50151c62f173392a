package ui

import (
	"encoding/json"
	"io/fs"
	"path"
	"strings"
	"sync"

	"codemap-portal/internal/ui/assets"
)

const staticPrefix = "/ui/static/"

var (
	manifestMu sync.Mutex
	manifests  = map[string]map[string]string{}
)

// assetHref returns the URL of an embedded asset under static/<dir>/,
// preferring the fingerprinted name from static/<dir>/manifest.json.
func assetHref(dir, name string) string {
	manifestMu.Lock()
	manifest, ok := manifests[dir]
	if !ok {
		manifest = readManifest(dir)
		manifests[dir] = manifest
	}
	manifestMu.Unlock()

	target := name
	if hashed := strings.TrimSpace(manifest[name]); hashed != "" && path.Base(hashed) == hashed && path.Ext(hashed) == path.Ext(name) {
		target = hashed
	}
	return staticPrefix + dir + "/" + target
}

func readManifest(dir string) map[string]string {
	manifest := map[string]string{}
	raw, err := fs.ReadFile(assets.StaticFS(), "static/"+dir+"/manifest.json")
	if err != nil {
		return manifest
	}
	if err := json.Unmarshal(raw, &manifest); err != nil {
		return map[string]string{}
	}
	return manifest
}

func uiStylesheetHref() string {
	return assetHref("css", "app.css")
}
