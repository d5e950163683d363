package errors

// Rule names shared across packages. Record-specific business rules name
// themselves where they are declared.
const (
	// Structural
	RuleEmptyFile                = "empty_file"
	RuleUnreadableFile           = "unreadable_file"
	RuleFileTooLarge             = "file_too_large"
	RuleUnsupportedSchemaVersion = "unsupported_schema_version"
	RuleMalformedLine            = "malformed_line"
	RuleInvalidRecordType        = "invalid_record_type"
	RuleInvalidFieldCount        = "invalid_field_count"
	RuleFileEndRecord            = "file_end_record"
	RuleDuplicateFileEnd         = "duplicate_file_end"
	RuleMissingSchoolRecord      = "missing_school_record"
	RuleSituationHeaderRequired  = "situation_header_required"
	RuleMixedPhaseRecords        = "mixed_phase_records"
	RuleCharacterizationRequired = "characterization_record_required"
	RuleMultipleSchoolRecords    = "multiple_school_records"
	RuleLatin1Encoding           = "latin1_encoding"
	RuleLineProcessingError      = "line_processing_error"

	// Field level
	RuleRequiredField         = "required_field"
	RuleMinLength             = "min_length"
	RuleMaxLength             = "max_length"
	RuleExactLength           = "exact_length"
	RulePatternValidation     = "pattern_validation"
	RuleNumericValidation     = "numeric_validation"
	RuleDateValidation        = "date_validation"
	RuleConditionalNotAllowed = "conditional_not_allowed"

	// Reference lookups
	RuleInvalidReferenceCode  = "invalid_reference_code"
	RuleReferenceLookupFailed = "reference_lookup_failed"

	// Context builder
	RuleDuplicatePersonCode = "duplicate_person_code"
	RuleDuplicateClassCode  = "duplicate_class_code"

	// Cross-reference
	RuleSchoolCodeMismatch         = "school_code_mismatch"
	RulePersonNotFound             = "person_not_found"
	RulePersonINEPMismatch         = "person_inep_mismatch"
	RuleClassNotFound              = "class_not_found"
	RuleClassINEPMismatch          = "class_inep_mismatch"
	RuleDuplicateManagerBond       = "duplicate_manager_bond"
	RuleDuplicateProfessional      = "duplicate_professional_bond"
	RuleDuplicateEnrollment        = "duplicate_student_enrollment"
	RuleDuplicateSituation         = "duplicate_student_situation"
	RuleDirectorMissing            = "director_missing"
	RuleFunctionalStatusRequired   = "functional_status_required"
	RuleFunctionalStatusNotAllowed = "functional_status_not_allowed"
)
