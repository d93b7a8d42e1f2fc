// Package config manages user-level settings stored at ~/.magicbox/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the template repository URL and the default prompt settings file.
package config
