package record

// Visitor dispatches over the closed set of record types. Adding a record
// type adds a method here, so every implementation stops compiling until it
// handles the new type.
type Visitor interface {
	VisitSchool(*School) error
	VisitCharacterization(*Characterization) error
	VisitClass(*Class) error
	VisitPerson(*Person) error
	VisitManagerBond(*ManagerBond) error
	VisitProfessionalBond(*ProfessionalBond) error
	VisitStudentEnrollment(*StudentEnrollment) error
	VisitSituationHeader(*SituationHeader) error
	VisitStudentSituation(*StudentSituation) error
	VisitAdmittedStudent(*AdmittedStudent) error
	VisitFileEnd(*FileEnd) error
}

// Walk visits records in order. It returns the first error encountered, or
// nil if traversal completes.
func Walk(records []Record, v Visitor) error {
	for _, r := range records {
		if err := r.Accept(v); err != nil {
			return err
		}
	}
	return nil
}
