package clothingschema

import (
	"embed"
	"io/fs"
)

//go:embed pkg/runtime/assets/*.js
var embeddedRuntimeAssets embed.FS

// RuntimeAssetsFS exposes the browser behaviour script for rendered forms:
// slug generation from the source field and tag list normalisation.
//
// Typical mount:
//
//	mux.Handle("/runtime/",
//	  http.StripPrefix("/runtime/",
//	    http.FileServerFS(clothingschema.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	sub, err := fs.Sub(embeddedRuntimeAssets, "pkg/runtime/assets")
	if err != nil {
		return embeddedRuntimeAssets
	}
	return sub
}
