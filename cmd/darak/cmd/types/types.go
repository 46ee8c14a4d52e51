// Package types holds the context keys shared between the command tree and
// its root.
package types

type contextKey string

// AppKey is where the root command parks the wired application for
// subcommands to pick up.
const AppKey contextKey = "app"
