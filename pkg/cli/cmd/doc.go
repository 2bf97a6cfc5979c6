// Package cmd provides the command-line interface of backtool.
//
// The root command generates a project; subcommands:
//   - doctor: checks the local toolchain
//   - schema: prints the JSON schema of .backtool.yaml
package cmd
