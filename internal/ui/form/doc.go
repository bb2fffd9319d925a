// Package form drives the grant wizard interactively with huh forms.
//
// Each wizard step is one huh form. The form edits a string buffer that is
// parsed back into the draft after the user confirms the step, so wizard
// validation always runs on the draft and never on half-typed input.
package form
