// Package rules is the record-level evaluator.
//
// Evaluator.Validate checks a single record in isolation: the field count
// first, then every FieldRule of the record's layout.Schema (presence,
// length, pattern, type and conditional presence), then the business
// predicates of the record type. Business predicates look at several
// positions of the same record, for example "at least one weekday" on a
// class or "the CPF check digits" on a person; anything that needs another
// record belongs to the crossref package.
//
// Codes that live in reference tables (municipalities, knowledge areas,
// stages) are checked through a reference.Lookup when one is configured.
// A table that is not loaded skips the check.
package rules
