package httpserver

import "strings"

// errMessage drops the leading error-class tag ("validation: ", ...) so the
// client sees only the human-readable part.
func errMessage(err error) string {
	msg := err.Error()
	if i := strings.Index(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
