package base64

import "strings"

// GetContentType extracts the MIME type from a data URI payload.
func GetContentType(file string) string {
	start := len("data:")
	end := strings.Index(file, ";base64,")

	if end == -1 || end < start {
		return ""
	}

	return file[start:end]
}
