package layout

import "fmt"

// RecordType identifies the schema of one census line. The set is closed:
// every value is known at compile time and dispatch over it goes through
// record.Visitor, which gains a method whenever a type is added here.
type RecordType uint8

const (
	// Unrecognized marks a line whose first field is not a known code.
	Unrecognized RecordType = iota
	// School is record 00 (school identification).
	School
	// Characterization is record 10 (school characterization and infrastructure).
	Characterization
	// Class is record 20 (class/turma).
	Class
	// Person is record 30 (natural person).
	Person
	// ManagerBond is record 40 (school manager bond).
	ManagerBond
	// ProfessionalBond is record 50 (school professional in a class).
	ProfessionalBond
	// StudentEnrollment is record 60 (student enrollment in a class).
	StudentEnrollment
	// SituationHeader is record 89 (phase-two manager header).
	SituationHeader
	// StudentSituation is record 90 (phase-two student situation).
	StudentSituation
	// AdmittedStudent is record 91 (phase-two student admitted after the reference date).
	AdmittedStudent
	// FileEnd is record 99 (file terminator).
	FileEnd

	numRecordTypes
)

// Phase is the census collection phase a record type belongs to.
type Phase string

const (
	// PhaseNone is used for record types that belong to both phases (99) or none.
	PhaseNone Phase = ""
	// PhaseInitial is the enrollment collection (records 00 to 60).
	PhaseInitial Phase = "initial"
	// PhaseSituation is the student situation collection (records 89 to 91).
	PhaseSituation Phase = "situation"
)

var recordTypeCodes = [numRecordTypes]string{
	Unrecognized:      "",
	School:            "00",
	Characterization:  "10",
	Class:             "20",
	Person:            "30",
	ManagerBond:       "40",
	ProfessionalBond:  "50",
	StudentEnrollment: "60",
	SituationHeader:   "89",
	StudentSituation:  "90",
	AdmittedStudent:   "91",
	FileEnd:           "99",
}

var recordTypeNames = [numRecordTypes]string{
	Unrecognized:      "unrecognized",
	School:            "school",
	Characterization:  "school_characterization",
	Class:             "class",
	Person:            "person",
	ManagerBond:       "manager_bond",
	ProfessionalBond:  "professional_bond",
	StudentEnrollment: "student_enrollment",
	SituationHeader:   "situation_header",
	StudentSituation:  "student_situation",
	AdmittedStudent:   "admitted_student",
	FileEnd:           "file_end",
}

var codeToRecordType = func() map[string]RecordType {
	m := make(map[string]RecordType, numRecordTypes)
	for rt := School; rt < numRecordTypes; rt++ {
		m[recordTypeCodes[rt]] = rt
	}
	return m
}()

// ParseRecordType maps a two-character code to its RecordType.
func ParseRecordType(code string) (RecordType, bool) {
	rt, ok := codeToRecordType[code]
	return rt, ok
}

// RecordTypes returns every known record type in code order.
func RecordTypes() []RecordType {
	out := make([]RecordType, 0, numRecordTypes-1)
	for rt := School; rt < numRecordTypes; rt++ {
		out = append(out, rt)
	}
	return out
}

// Code returns the two-character code ("00", "40", ...). Unrecognized has no code.
func (rt RecordType) Code() string {
	if rt >= numRecordTypes {
		return ""
	}
	return recordTypeCodes[rt]
}

// Name returns a stable snake_case name for the record type.
func (rt RecordType) Name() string {
	if rt >= numRecordTypes {
		return recordTypeNames[Unrecognized]
	}
	return recordTypeNames[rt]
}

// String implements fmt.Stringer.
func (rt RecordType) String() string {
	if rt == Unrecognized || rt >= numRecordTypes {
		return "unrecognized"
	}
	return fmt.Sprintf("%s (%s)", rt.Code(), rt.Name())
}

// Phase reports which collection phase the record type belongs to.
func (rt RecordType) Phase() Phase {
	switch rt {
	case School, Characterization, Class, Person, ManagerBond, ProfessionalBond, StudentEnrollment:
		return PhaseInitial
	case SituationHeader, StudentSituation, AdmittedStudent:
		return PhaseSituation
	default:
		return PhaseNone
	}
}

// IsContextSource reports whether lines of this type feed the Context Builder
// with an entity (school, person or class).
func (rt RecordType) IsContextSource() bool {
	return rt == School || rt == Person || rt == Class || rt == SituationHeader
}
