//go:build !serde_nomsg

package serde

import "fmt"

// message formats a human-readable error message. This is the only place in
// the module that formats on a failure path; building with -tags serde_nomsg
// replaces it with a stub that discards the text and keeps only the Kind.
func message(format string, args ...any) string {
	return fmt.Sprintf(format, args...)
}
