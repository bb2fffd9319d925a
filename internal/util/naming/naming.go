package naming

import (
	"regexp"
	"strings"
	"time"
)

// Untitled is the slug of a draft without a usable title.
const Untitled = "untitled"

// SnapshotTimeFormat is the UTC timestamp layout used in snapshot keys.
const SnapshotTimeFormat = "20060102T150405Z"

var slugUnsafe = regexp.MustCompile(`[^a-z0-9]+`)

// Slug lowercases title and joins its alphanumeric runs with dashes.
func Slug(title string) string {
	slug := strings.Trim(slugUnsafe.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if slug == "" {
		return Untitled
	}
	return slug
}

// DraftSnapshot returns the object key of a snapshot of a draft titled title
// taken at t. prefix is used as given.
func DraftSnapshot(prefix, title string, t time.Time) string {
	return prefix + Slug(title) + "/" + t.UTC().Format(SnapshotTimeFormat) + ".yaml"
}
