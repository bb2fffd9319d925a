// Package retry repeats idempotent operations with exponential backoff.
//
// [WithExponentialBackoff] is used for GrantThrive API reads, which are safe
// to repeat. Grant submissions are never retried automatically. Errors
// wrapped with [Fatal] stop the loop at once.
package retry
