package config

import "path/filepath"

// FileName is the optional config file at the package root.
const FileName = "htm.toml"

// Path returns the config file path for a package root.
func Path(root string) string {
	return filepath.Join(root, FileName)
}
