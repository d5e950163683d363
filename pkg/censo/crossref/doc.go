// Package crossref is the second pass of the two-pass validation.
//
// Validator.Validate resolves the school, person and class codes a record
// carries against a harvest.Contexts built beforehand for the whole file,
// then applies the rules whose outcome depends on the referenced entity:
// functional status is required only in public schools, a distance class
// only takes distance teaching functions, a teacher's knowledge areas must
// be offered by the class, and so on.
//
// Duplicate bonds are found through a BondAccumulator, the only state the
// pass mutates. Lines must be fed to it in file order so that "already
// declared on line N" always points at the same line.
package crossref
