// Package cli implements the easidesk command-line interface.
//
// The package is organized around Cobra commands, with each command
// delegating to a small command function for the actual work. The general
// structure follows a clean separation between:
//
//   - Command definitions (cobra.Command instances)
//   - Command functions (shellCommand, serveCommand, initCommand)
//   - Implementation details (in other internal packages)
//
// # Command Structure
//
// The root command is "easidesk"; run with no subcommand it opens the
// dashboard shell. Subcommands:
//
//	easidesk init       - Create .easidesk.yaml config
//	easidesk serve      - Run a local stub FastLogin service
//	easidesk version    - Print version information
//	easidesk completion - Generate shell completion scripts
//
// # Flag Handling
//
// Global flags (--config, --no-color) are defined on the root command and
// available to all subcommands. Command-specific flags like --force and
// --port are defined on individual commands.
package cli
