// Package config manages user-level settings stored at ~/.matforge/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the assets root, the uber template file name, and the manifest file name.
package config
