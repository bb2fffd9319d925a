// Package wizard implements the four-step grant creation wizard.
//
// State is an immutable value: every transition (UpdateField, Advance,
// Retreat, BeginSave, BeginPublish, Complete) returns a new State and leaves
// the receiver untouched. Forward navigation is gated by ValidateStep;
// backward navigation is not.
//
// Controller wraps a State for callers that run the save and publish calls
// asynchronously. Each call is guarded by its own in-flight flag, carries a
// timeout and an idempotency key, and never blocks further edits.
package wizard
