// Package testutil provides utilities for testing fontweak components.
//
// Key components:
//   - TestEnvironment: a fonts.conf location, an application directory and
//     the filesystem behind them, either in memory or in a temp directory
//   - Store and SchemeManager: the objects commands operate on, wired to the
//     environment
//
// Usage guidelines:
//   - Most tests should use EnvMemoryOnly for speed and isolation
//   - EnvIsolated also points the FONTWEAK_* and XDG variables at the temp
//     directory, for tests that run the CLI
//   - Each test should be completely isolated with no shared state
package testutil
