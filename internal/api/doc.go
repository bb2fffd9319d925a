// Package api is a client for the GrantThrive REST API.
//
// Every request carries the bearer token from the configured TokenStore.
// A 401 response clears the stored token and returns ErrUnauthorized.
// Idempotent GET requests are retried with exponential backoff. Grant
// submissions are sent once and carry an Idempotency-Key header.
//
// *Client implements wizard.Submitter.
package api
