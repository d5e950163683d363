// Censo validates Educacenso migration files before they are submitted.
//
// Files are pipe-separated text, one record per line, in either the
// enrollment layout (records 00 to 60) or the student situation layout
// (records 89 to 91), both ending with a 99 record.
//
// Usage:
//
//	# Validate one or more files
//	censo validate escola.txt
//
//	# Machine-readable output
//	censo validate --format json escola.txt
//
//	# Validate every file dropped into a directory
//	censo watch --dir /srv/inbox
//
//	# Load reference tables into the sqlite store
//	censo reference import --file tables.yaml
//
//	# Inspect the record layouts
//	censo layout 30
package main

func main() {
	Execute()
}
