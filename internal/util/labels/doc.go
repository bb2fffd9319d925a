// Package labels provides consistent metadata for archived draft objects.
//
// All keys use the grantctl- prefix and follow a builder pattern for
// constructing label sets with manager, category, slug and publish mode.
// S3 stores them as x-amz-meta-* headers, so keys are lowercase and values
// are kept to printable ASCII.
package labels
