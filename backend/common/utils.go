package common

import (
	"fmt"
	"path/filepath"
	"regexp"
	"time"
)

var unsafeFilenameChars = regexp.MustCompile(`[^A-Za-z0-9.-]`)

// SanitizeFilename strips any directory part and replaces every character
// outside [A-Za-z0-9.-] with an underscore, so the result is safe to join
// under the upload directory.
func SanitizeFilename(name string) string {
	base := filepath.Base(name)
	if base == "." || base == string(filepath.Separator) {
		base = "file"
	}
	return unsafeFilenameChars.ReplaceAllString(base, "_")
}

// UploadFilename builds the stored name for an uploaded file:
// <millisecond-timestamp>-<sanitized-original-name>.
func UploadFilename(original string, now time.Time) string {
	return fmt.Sprintf("%d-%s", now.UnixMilli(), SanitizeFilename(original))
}
