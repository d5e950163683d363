// Package harvest is the context builder of the two-pass validation.
//
// Build walks every line of a file once and collects a SchoolContext, one
// PersonContext per person code and one ClassContext per class code, plus
// the bond facts the second pass needs (who is staff, who is enrolled
// where, which students already have a phase-two situation). The result
// does not depend on the physical order of the lines: entity records may
// come before or after the bonds that reference them.
//
// Duplicate person or class codes keep the first record and are reported
// on the later line. Extra School records are reported as warnings and
// resolved by the configured SchoolPolicy.
package harvest
