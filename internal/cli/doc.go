// Package cli turns command-line arguments into an app.Config and owns
// process-level concerns such as exit codes.
package cli
