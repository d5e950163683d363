// Package record reads census text into lines and typed records.
//
// Input is decoded (UTF-8 with a Latin-1 fallback, NFC normalised), split
// into ParsedLine values on LF or CRLF, and each line is cut on the pipe
// separator. Blank lines are skipped; line numbers always refer to the
// physical line in the submitted file.
//
// New turns a ParsedLine into one of the typed records (School, Person,
// ManagerBond, ...). Consumers dispatch over them with a Visitor:
//
//	type counter struct{ managers int }
//
//	func (c *counter) VisitManagerBond(*record.ManagerBond) error { c.managers++; return nil }
//	// ... one method per record type
//
//	err := record.Walk(records, &counter{})
package record
