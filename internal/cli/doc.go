// Package cli parses command-line flags and KEYCHAIN_* environment settings
// into a Config, validating user input and mapping usage mistakes to exit codes.
package cli
