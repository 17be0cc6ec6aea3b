// Package config holds the browser configuration: defaults, the YAML
// configuration file, and validation.
//
// Configuration is resolved in three layers, later layers winning:
// built-in defaults, the configuration file (explicit --config path, or
// .gemini in the current directory, or in the home directory), and CLI
// flags. The resulting Config travels by dependency injection; there is
// no global configuration state.
package config
