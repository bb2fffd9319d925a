// Package archive uploads draft snapshots to S3-compatible object storage.
//
// Each snapshot is the YAML draft file under
// <prefix><title-slug>/<UTC timestamp>.yaml, so snapshots of one grant sort
// chronologically.
package archive
