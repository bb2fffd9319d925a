// Package grant defines the grant-program Draft edited by the creation wizard.
//
// A Draft is a plain value split into four sections, one per wizard step:
// BasicDetails, FundingDates, ApplicationForm and ReviewPublish. Every
// operation on a Draft returns a new value; list fields are copied so the
// result never shares backing arrays with the receiver.
//
// Draft files are YAML (LoadFile, WriteFile). On the wire a Draft is
// flattened into camelCase JSON fields.
package grant
