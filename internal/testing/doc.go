// Package testing provides builders and fixtures shared by the package tests.
//
// This package centralizes the grant drafts tests start from so each package
// does not keep its own copy:
//   - DraftBuilder: Fluent builder for creating test drafts
//   - ReadyDraft: A draft that passes validation on every wizard step
//   - WriteDraftFile: Writes a draft to a temporary YAML file
//
// Usage:
//
//	d := testing.NewDraftBuilder().
//	    WithTitle("Youth Arts Fund").
//	    WithoutReviewers().
//	    Build()
//
//	path := testing.WriteDraftFile(t, testing.ReadyDraft())
//
// The package imports only the grant package, so the wizard tests can use it
// without an import cycle.
package testing
