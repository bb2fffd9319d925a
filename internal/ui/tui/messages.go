// Package tui renders the grant wizard and submission progress with
// Bubble Tea and Lip Gloss.
package tui

import "github.com/grantthrive/grantctl/internal/wizard"

// ResultMsg carries the outcome of a submission.
type ResultMsg struct{ Result wizard.Result }

// TickMsg is sent periodically to animate the spinner.
type TickMsg struct{}

// ErrMsg carries an error that ends the program.
type ErrMsg struct{ Err error }
