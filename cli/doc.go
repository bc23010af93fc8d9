// Package cli implements the posreview command line tool.
//
// Options can be given as flags or in a YAML config file (any afs URL); flags
// take precedence. The session token is kept in the configured storage, a
// file under the user home directory by default, so that login, list and
// create can run as separate invocations.
package cli
