// Package commands defines the adg CLI.
//
// Commands
//
//   - generate   Derive every valid diagram of a configuration with its expression
//
// # Configuration
//
// A YAML run file (--config) provides defaults for every generate flag; flags
// given explicitly on the command line take precedence. Reports are written as
// plain text or YAML (--format).
package commands
