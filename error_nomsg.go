//go:build serde_nomsg

package serde

// message discards the would-be error text. Errors built in this
// configuration carry their Kind only; Error() falls back to the fixed
// per-kind string.
func message(string, ...any) string {
	return ""
}
