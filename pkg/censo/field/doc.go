// Package field checks a single raw field value against its schema rule.
//
// The checks run in a fixed order: effective requiredness (the rule's own
// flag or its conditional), then length, pattern and semantic type. An empty
// value stops the checks: it is either a required_field error or fine.
// Length, pattern and type failures are independent and all reported.
package field
