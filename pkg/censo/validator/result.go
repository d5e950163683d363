package validator

import (
	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

// Result is the outcome of validating one file. It is assembled once and
// not modified afterwards.
type Result struct {
	IsValid          bool                          `json:"isValid"`
	Errors           []censoErrors.ValidationError `json:"errors"`
	Warnings         []censoErrors.ValidationError `json:"warnings"`
	TotalRecords     int                           `json:"totalRecords"`
	ProcessedRecords int                           `json:"processedRecords"`
	ProcessingTimeMs int64                         `json:"processingTimeMs"`
	FileMetadata     FileMetadata                  `json:"fileMetadata"`
}

// FileMetadata describes the submitted input.
type FileMetadata struct {
	FileName      string         `json:"fileName"`
	SchemaVersion string         `json:"schemaVersion"`
	Phase         layout.Phase   `json:"phase,omitempty"`
	Encoding      string         `json:"encoding,omitempty"`
	SizeBytes     int            `json:"sizeBytes"`
	TotalLines    int            `json:"totalLines"`
	BlankLines    int            `json:"blankLines"`
	SHA256        string         `json:"sha256,omitempty"`
	RecordCounts  map[string]int `json:"recordCounts"`
}

// Diagnostics returns errors and warnings merged back into line order.
func (r *Result) Diagnostics() []censoErrors.ValidationError {
	list := censoErrors.NewErrorList()
	list.Append(r.Errors...)
	list.Append(r.Warnings...)
	list.Sort()
	return list.Errors
}

// partition splits diagnostics by severity. Info diagnostics travel with
// the warnings and keep their severity.
func partition(all []censoErrors.ValidationError) (errs, warnings []censoErrors.ValidationError) {
	errs = make([]censoErrors.ValidationError, 0)
	warnings = make([]censoErrors.ValidationError, 0)
	for _, d := range all {
		if d.IsError() {
			errs = append(errs, d)
		} else {
			warnings = append(warnings, d)
		}
	}
	return errs, warnings
}
