// Package paths resolves every file location fontweak touches.
//
// # Locations
//
//   - fonts.conf: $XDG_CONFIG_HOME/fontconfig/fonts.conf
//   - legacy file: $HOME/.fonts.conf, migrated on first use
//   - app directory: $XDG_CONFIG_HOME/fontweak (config.toml, state.toml, scheme/)
//   - state directory: $XDG_STATE_HOME/fontweak (fontweak.log)
//
// # Environment Variables
//
//   - FONTWEAK_CONFIG_FILE: fonts.conf location
//   - FONTWEAK_LEGACY_FILE: legacy file location
//   - FONTWEAK_CONFIG_DIR: app directory
//   - FONTWEAK_STATE_DIR: state directory
//
// A leading ~ in any override is expanded to the home directory.
package paths
