// Package validator orchestrates a full validation run over one census
// file.
//
// A run decodes the input, splits it into lines and then makes two passes.
// The first pass harvests the school, class and person contexts of the whole
// file. The second evaluates every line's record rules on a pool of workers
// and resolves cross-references sequentially against the harvested view.
// Diagnostics from all stages are merged, ordered by line and returned as a
// Result.
//
// A panic while checking one line is recovered and reported as a
// line_processing_error for that line; the rest of the file is still
// validated.
package validator
