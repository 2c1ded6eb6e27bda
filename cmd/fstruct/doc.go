// Package main hosts the fstruct entrypoint and command graph.
//
// Running fstruct without a subcommand opens the terminal UI: a form for base
// path, show, shot and artist next to a live preview of the shot tree. The
// subcommands expose the same builder to scripts (create, preview, versions)
// plus preflight checks and configuration scaffolding. Configuration
// resolution and logger setup live here so subcommands stay declarative.
package main
