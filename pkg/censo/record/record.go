package record

import (
	"strings"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

// Record is a typed census record. The set of implementations is closed;
// dispatch goes through Visitor.
type Record interface {
	LineNumber() int
	Type() layout.RecordType
	// Get returns the trimmed value at a 1-based position, "" past the end.
	Get(position int) string
	Values() []string
	Accept(v Visitor) error

	sealed()
}

// Base carries what every record shares: its line and its raw fields.
type Base struct {
	Line   int
	Fields []string
}

// LineNumber returns the physical line the record was read from.
func (b Base) LineNumber() int { return b.Line }

// Get returns the trimmed value at a 1-based position.
func (b Base) Get(position int) string {
	if position < 1 || position > len(b.Fields) {
		return ""
	}
	return strings.TrimSpace(b.Fields[position-1])
}

// Values returns the raw field slice. Callers must not modify it.
func (b Base) Values() []string { return b.Fields }

// IsSet reports whether the value at position is non-empty.
func (b Base) IsSet(position int) bool { return b.Get(position) != "" }

// IsOne reports whether the flag at position equals "1".
func (b Base) IsOne(position int) bool { return b.Get(position) == "1" }

func (Base) sealed() {}

// School is record 00.
type School struct {
	Base
	Code                     string
	OperatingStatus          string
	YearStart                string
	YearEnd                  string
	Name                     string
	Municipality             string
	AdministrativeDependency string
	DifferentiatedLocation   string
	LinkedUnit               string
}

// Characterization is record 10.
type Characterization struct {
	Base
	SchoolCode  string
	SchoolMeals string
}

// Class is record 20.
type Class struct {
	Base
	SchoolCode             string
	Code                   string
	INEPCode               string
	Mediation              string
	TypeSchooling          string
	TypeComplementary      string
	TypeAEE                string
	FormativeItinerary     string
	DifferentiatedLocation string
	Modality               string
	Stage                  string
	ProfessionalItinerary  string
	AreaOfferings          [layout.KnowledgeAreaCount]string
}

// Person is record 30.
type Person struct {
	Base
	SchoolCode       string
	Code             string
	INEPID           string
	CPF              string
	Name             string
	BirthDate        string
	Nationality      string
	Disability       string
	ResidenceCountry string
	Schooling        string
}

// ManagerBond is record 40.
type ManagerBond struct {
	Base
	SchoolCode       string
	PersonCode       string
	INEPID           string
	Role             string
	AccessCriteria   string
	FunctionalStatus string
}

// ProfessionalBond is record 50.
type ProfessionalBond struct {
	Base
	SchoolCode       string
	PersonCode       string
	INEPID           string
	ClassCode        string
	ClassINEPCode    string
	Function         string
	FunctionalStatus string
	KnowledgeAreas   []string // non-empty slots, in field order
}

// StudentEnrollment is record 60.
type StudentEnrollment struct {
	Base
	SchoolCode         string
	PersonCode         string
	INEPID             string
	ClassCode          string
	ClassINEPCode      string
	EnrollmentCode     string
	Stage              string
	SchoolingElsewhere string
	PublicTransport    string
}

// SituationHeader is record 89.
type SituationHeader struct {
	Base
	SchoolCode   string
	ManagerCPF   string
	ManagerName  string
	ManagerRole  string
	ManagerEmail string
}

// StudentSituation is record 90.
type StudentSituation struct {
	Base
	SchoolCode     string
	ClassCode      string
	ClassINEPCode  string
	StudentINEPID  string
	EnrollmentCode string
	Situation      string
}

// AdmittedStudent is record 91.
type AdmittedStudent struct {
	Base
	SchoolCode     string
	ClassCode      string
	ClassINEPCode  string
	StudentINEPID  string
	EnrollmentCode string
	Mediation      string
	Modality       string
	Stage          string
	Situation      string
}

// FileEnd is record 99.
type FileEnd struct {
	Base
}

func (*School) Type() layout.RecordType            { return layout.School }
func (*Characterization) Type() layout.RecordType  { return layout.Characterization }
func (*Class) Type() layout.RecordType             { return layout.Class }
func (*Person) Type() layout.RecordType            { return layout.Person }
func (*ManagerBond) Type() layout.RecordType       { return layout.ManagerBond }
func (*ProfessionalBond) Type() layout.RecordType  { return layout.ProfessionalBond }
func (*StudentEnrollment) Type() layout.RecordType { return layout.StudentEnrollment }
func (*SituationHeader) Type() layout.RecordType   { return layout.SituationHeader }
func (*StudentSituation) Type() layout.RecordType  { return layout.StudentSituation }
func (*AdmittedStudent) Type() layout.RecordType   { return layout.AdmittedStudent }
func (*FileEnd) Type() layout.RecordType           { return layout.FileEnd }

func (r *School) Accept(v Visitor) error            { return v.VisitSchool(r) }
func (r *Characterization) Accept(v Visitor) error  { return v.VisitCharacterization(r) }
func (r *Class) Accept(v Visitor) error             { return v.VisitClass(r) }
func (r *Person) Accept(v Visitor) error            { return v.VisitPerson(r) }
func (r *ManagerBond) Accept(v Visitor) error       { return v.VisitManagerBond(r) }
func (r *ProfessionalBond) Accept(v Visitor) error  { return v.VisitProfessionalBond(r) }
func (r *StudentEnrollment) Accept(v Visitor) error { return v.VisitStudentEnrollment(r) }
func (r *SituationHeader) Accept(v Visitor) error   { return v.VisitSituationHeader(r) }
func (r *StudentSituation) Accept(v Visitor) error  { return v.VisitStudentSituation(r) }
func (r *AdmittedStudent) Accept(v Visitor) error   { return v.VisitAdmittedStudent(r) }
func (r *FileEnd) Accept(v Visitor) error           { return v.VisitFileEnd(r) }

// New builds the typed record for a parsed line. It returns false for
// unrecognized record types. Missing trailing fields read as empty, so a
// line with a wrong field count still yields a record.
func New(line ParsedLine) (Record, bool) {
	b := Base{Line: line.LineNumber, Fields: line.Fields}

	switch line.Type {
	case layout.School:
		return &School{
			Base:                     b,
			Code:                     b.Get(layout.SchoolCode),
			OperatingStatus:          b.Get(layout.SchoolOperatingStatus),
			YearStart:                b.Get(layout.SchoolYearStart),
			YearEnd:                  b.Get(layout.SchoolYearEnd),
			Name:                     b.Get(layout.SchoolName),
			Municipality:             b.Get(layout.SchoolMunicipality),
			AdministrativeDependency: b.Get(layout.SchoolAdministrativeDependency),
			DifferentiatedLocation:   b.Get(layout.SchoolDifferentiatedLocation),
			LinkedUnit:               b.Get(layout.SchoolLinkedUnit),
		}, true
	case layout.Characterization:
		return &Characterization{
			Base:        b,
			SchoolCode:  b.Get(layout.CharSchoolCode),
			SchoolMeals: b.Get(layout.CharSchoolMeals),
		}, true
	case layout.Class:
		c := &Class{
			Base:                   b,
			SchoolCode:             b.Get(layout.ClassSchoolCode),
			Code:                   b.Get(layout.ClassCode),
			INEPCode:               b.Get(layout.ClassINEPCode),
			Mediation:              b.Get(layout.ClassMediation),
			TypeSchooling:          b.Get(layout.ClassTypeSchooling),
			TypeComplementary:      b.Get(layout.ClassTypeComplementary),
			TypeAEE:                b.Get(layout.ClassTypeAEE),
			FormativeItinerary:     b.Get(layout.ClassStructureFormativeItinerary),
			DifferentiatedLocation: b.Get(layout.ClassDifferentiatedLocation),
			Modality:               b.Get(layout.ClassModality),
			Stage:                  b.Get(layout.ClassStage),
			ProfessionalItinerary:  b.Get(layout.ClassProfessionalItinerary),
		}
		for i := range c.AreaOfferings {
			c.AreaOfferings[i] = b.Get(layout.ClassArea1 + i)
		}
		return c, true
	case layout.Person:
		return &Person{
			Base:             b,
			SchoolCode:       b.Get(layout.PersonSchoolCode),
			Code:             b.Get(layout.PersonCode),
			INEPID:           b.Get(layout.PersonINEPID),
			CPF:              b.Get(layout.PersonCPF),
			Name:             b.Get(layout.PersonName),
			BirthDate:        b.Get(layout.PersonBirthDate),
			Nationality:      b.Get(layout.PersonNationality),
			Disability:       b.Get(layout.PersonDisability),
			ResidenceCountry: b.Get(layout.PersonResidenceCountry),
			Schooling:        b.Get(layout.PersonSchooling),
		}, true
	case layout.ManagerBond:
		return &ManagerBond{
			Base:             b,
			SchoolCode:       b.Get(layout.ManagerSchoolCode),
			PersonCode:       b.Get(layout.ManagerPersonCode),
			INEPID:           b.Get(layout.ManagerINEPID),
			Role:             b.Get(layout.ManagerRole),
			AccessCriteria:   b.Get(layout.ManagerAccessCriteria),
			FunctionalStatus: b.Get(layout.ManagerFunctionalStatus),
		}, true
	case layout.ProfessionalBond:
		p := &ProfessionalBond{
			Base:             b,
			SchoolCode:       b.Get(layout.ProfSchoolCode),
			PersonCode:       b.Get(layout.ProfPersonCode),
			INEPID:           b.Get(layout.ProfINEPID),
			ClassCode:        b.Get(layout.ProfClassCode),
			ClassINEPCode:    b.Get(layout.ProfClassINEPCode),
			Function:         b.Get(layout.ProfFunction),
			FunctionalStatus: b.Get(layout.ProfFunctionalStatus),
		}
		for _, pos := range layout.ProfessionalAreaGroup.Positions() {
			if v := b.Get(pos); v != "" {
				p.KnowledgeAreas = append(p.KnowledgeAreas, v)
			}
		}
		return p, true
	case layout.StudentEnrollment:
		return &StudentEnrollment{
			Base:               b,
			SchoolCode:         b.Get(layout.EnrollSchoolCode),
			PersonCode:         b.Get(layout.EnrollPersonCode),
			INEPID:             b.Get(layout.EnrollINEPID),
			ClassCode:          b.Get(layout.EnrollClassCode),
			ClassINEPCode:      b.Get(layout.EnrollClassINEPCode),
			EnrollmentCode:     b.Get(layout.EnrollINEPCode),
			Stage:              b.Get(layout.EnrollStage),
			SchoolingElsewhere: b.Get(layout.EnrollSchoolingElsewhere),
			PublicTransport:    b.Get(layout.EnrollPublicTransport),
		}, true
	case layout.SituationHeader:
		return &SituationHeader{
			Base:         b,
			SchoolCode:   b.Get(layout.HeaderSchoolCode),
			ManagerCPF:   b.Get(layout.HeaderManagerCPF),
			ManagerName:  b.Get(layout.HeaderManagerName),
			ManagerRole:  b.Get(layout.HeaderManagerRole),
			ManagerEmail: b.Get(layout.HeaderManagerEmail),
		}, true
	case layout.StudentSituation:
		return &StudentSituation{
			Base:           b,
			SchoolCode:     b.Get(layout.SituationSchoolCode),
			ClassCode:      b.Get(layout.SituationClassCode),
			ClassINEPCode:  b.Get(layout.SituationClassINEPCode),
			StudentINEPID:  b.Get(layout.SituationStudentINEPID),
			EnrollmentCode: b.Get(layout.SituationEnrollmentCode),
			Situation:      b.Get(layout.SituationCode),
		}, true
	case layout.AdmittedStudent:
		return &AdmittedStudent{
			Base:           b,
			SchoolCode:     b.Get(layout.AdmittedSchoolCode),
			ClassCode:      b.Get(layout.AdmittedClassCode),
			ClassINEPCode:  b.Get(layout.AdmittedClassINEPCode),
			StudentINEPID:  b.Get(layout.AdmittedStudentINEPID),
			EnrollmentCode: b.Get(layout.AdmittedEnrollmentCode),
			Mediation:      b.Get(layout.AdmittedMediation),
			Modality:       b.Get(layout.AdmittedModality),
			Stage:          b.Get(layout.AdmittedStage),
			Situation:      b.Get(layout.AdmittedSituation),
		}, true
	case layout.FileEnd:
		return &FileEnd{Base: b}, true
	default:
		return nil, false
	}
}
