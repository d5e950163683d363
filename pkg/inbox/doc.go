// Package inbox turns a directory into a drop folder: every census file
// written into it is validated once it stops changing, its JSON report is
// written as <name>.report.json and the run is recorded in the history
// store.
package inbox
