// Package async runs independent tasks concurrently.
//
// [RunParallel] starts every task, waits for all of them, and returns the
// first error. grantctl uses it for preflight checks that hit several API
// endpoints at once.
package async
