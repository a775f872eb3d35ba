package storage

import (
	"fmt"
	"regexp"
)

var unsafeFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9.\-_]`)

// SanitizeFilename replaces every character outside [A-Za-z0-9.-_] with an
// underscore so the name is safe in storage keys and URLs.
func SanitizeFilename(name string) string {
	return unsafeFilenameChars.ReplaceAllString(name, "_")
}

// ReportKey builds the storage key for a project report. Keys are
// partitioned by organization and project, which keeps same-named files from
// different tenants from colliding.
func ReportKey(organizationID, projectID, filename string) string {
	return fmt.Sprintf("%s/%s/%s", organizationID, projectID, SanitizeFilename(filename))
}
