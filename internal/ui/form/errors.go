package form

import "errors"

// ErrAborted is returned when the user cancels a form.
var ErrAborted = errors.New("wizard cancelled")

// Input errors shown inline by the forms.
var (
	errAmountInvalid = errors.New("enter an amount such as 5000 or $5,000.00")
	errWeeksInvalid  = errors.New("enter a whole number of weeks")
	errDateInvalid   = errors.New("enter a date as YYYY-MM-DD")
	errEmailInvalid  = errors.New("enter a valid email address")
	errRequired      = errors.New("this field is required")
)
