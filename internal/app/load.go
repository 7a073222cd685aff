package app

import (
	"path/filepath"

	"github.com/vk/behaviorgo/internal/config"
	"github.com/vk/behaviorgo/internal/hcl"
	"github.com/vk/behaviorgo/internal/yamlcfg"
)

// SelectLoader picks the definition loader matching the path's file
// extension. Directories and .hcl files use the HCL loader; .yaml and .yml
// files use the YAML loader.
func SelectLoader(path string) config.Loader {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return yamlcfg.NewLoader()
	default:
		return hcl.NewLoader()
	}
}
