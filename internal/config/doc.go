// Package config loads grantctl settings.
//
// Settings come from a YAML file (by default
// $XDG_CONFIG_HOME/grantctl/config.yaml), then GRANTCTL_* environment
// variables, then defaults for anything still unset. The result is checked
// with [Config.Validate]. Timeouts are read from the environment only, see
// [LoadTimeouts].
package config
