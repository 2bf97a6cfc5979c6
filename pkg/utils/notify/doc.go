// Package notify writes styled, single-line status messages for CLI users.
//
// Message types include success (✔), error (✗), warning (⚠), info (ℹ), activity (►),
// generate (✚), and titles prefixed by an emoji. [StageSeparatingWriter] inserts a
// blank line before each title after the first.
package notify
