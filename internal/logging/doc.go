// Package logger provides leveled, colored output for the lsbsteg CLI.
//
// # Verbosity Levels
//
//   - --verbose: shows info messages
//   - --debug: shows info and debug messages
//
// Warnings and errors are always shown on the error stream.
//
// # Usage
//
//	log := logger.New(cmd.OutOrStdout(), cmd.ErrOrStderr(), verbose, debug)
//	log.Infof("embedded %d bits", n)
package logger
