// Package configmanager loads generation settings from command-line flags, BACKTOOL_*
// environment variables and an optional .backtool.yaml file, in that order of precedence.
package configmanager
