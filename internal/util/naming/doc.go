// Package naming provides consistent names for archived draft objects.
//
// Snapshot keys follow the pattern {prefix}{slug}/{timestamp}.yaml so every
// snapshot of one grant lists together and sorts oldest first.
package naming
