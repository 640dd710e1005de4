//go:build linux

package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// ArtURL resolves an item's cover reference to a URL an MPRIS client can
// load. A local copy under mediaRoot wins over the served asset. Returns ""
// when the reference is empty or cannot be resolved.
func ArtURL(ref string, opts Options) string {
	ref = strings.TrimSpace(ref)
	switch {
	case ref == "":
		return ""
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return ref
	}

	if opts.MediaRoot != "" {
		path := filepath.Join(opts.MediaRoot, filepath.FromSlash(strings.TrimPrefix(ref, "/")))
		if _, err := os.Stat(path); err == nil {
			if abs, err := filepath.Abs(path); err == nil {
				return "file://" + abs
			}
		}
	}
	if opts.AssetsBase != "" {
		return strings.TrimSuffix(opts.AssetsBase, "/") + "/" + strings.TrimPrefix(ref, "/")
	}
	return ""
}
