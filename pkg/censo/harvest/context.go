package harvest

import (
	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

// SchoolContext summarises the School record (00) of a file.
type SchoolContext struct {
	Line                     int
	Code                     string
	OperatingStatus          string
	AdministrativeDependency string
	DifferentiatedLocation   string
	ResidenceCountryDefault  string
}

// Active reports whether the school is in activity.
func (s *SchoolContext) Active() bool { return s.OperatingStatus == layout.StatusActive }

// Private reports whether the school has private administrative dependency.
func (s *SchoolContext) Private() bool {
	return s.AdministrativeDependency == layout.DependencyPrivate
}

// Public reports whether the school is federal, state or municipal.
func (s *SchoolContext) Public() bool {
	switch s.AdministrativeDependency {
	case layout.DependencyFederal, layout.DependencyState, layout.DependencyMunicipal:
		return true
	}
	return false
}

// PersonContext summarises one Person record (30) together with the bond
// facts harvested for its person code.
type PersonContext struct {
	Line       int
	Code       string
	INEPID     string
	CPF        string
	BirthDate  string
	Disability bool
	Schooling  string

	// Staff is set when a 40 or 50 record names the person.
	Staff bool
	// EnrolledClassCodes lists the classes of the person's 60 records, in
	// line order and without repeats.
	EnrolledClassCodes []string
}

// EnrolledIn reports whether the person has a 60 record for classCode.
func (p *PersonContext) EnrolledIn(classCode string) bool {
	for _, c := range p.EnrolledClassCodes {
		if c == classCode {
			return true
		}
	}
	return false
}

// ClassContext summarises one Class record (20).
type ClassContext struct {
	Line                          int
	Code                          string
	INEPCode                      string
	TeachingMediation             string
	IsRegular                     bool
	IsComplementaryActivity       bool
	SpecializedEducationalService bool
	Modality                      string
	Stage                         string
	HasFormativeItinerary         bool
	HasProfessionalItinerary      bool
	DifferentiatedLocation        string
	SubjectAreaOfferings          [layout.KnowledgeAreaCount]string
}

// InPerson reports whether the class is taught in person.
func (c *ClassContext) InPerson() bool { return c.TeachingMediation == layout.MediationInPerson }

// Distance reports whether the class is taught at a distance.
func (c *ClassContext) Distance() bool { return c.TeachingMediation == layout.MediationDistance }

// Professional reports whether the class offers professional education,
// through its stage, its modality or a professional itinerary.
func (c *ClassContext) Professional() bool {
	return layout.ProfessionalStages.Has(c.Stage) || c.Modality == "4" || c.HasProfessionalItinerary
}

// EarlyChildhood reports whether the class stage is in early childhood education.
func (c *ClassContext) EarlyChildhood() bool { return layout.EarlyChildhoodStages.Has(c.Stage) }

// Offering returns the offering declared for a knowledge-area code, or ""
// when the code is out of range.
func (c *ClassContext) Offering(area int) string {
	if area < 1 || area > layout.KnowledgeAreaCount {
		return ""
	}
	return c.SubjectAreaOfferings[area-1]
}

// HeaderContext summarises the phase-two header (89).
type HeaderContext struct {
	Line       int
	SchoolCode string
}

// AdmittedClass is the first 91 record seen for a class; later admissions
// to the same class must agree with it.
type AdmittedClass struct {
	Line      int
	Mediation string
	Modality  string
	Stage     string
}

// Contexts is the output of the context builder. It is built once per file
// and only read afterwards.
type Contexts struct {
	School  *SchoolContext
	Persons map[string]*PersonContext
	Classes map[string]*ClassContext

	// Counters used by the structural checks.
	SchoolRecords           int
	CharacterizationRecords int
	HasDirector             bool

	Header *HeaderContext
	// SituationStudents maps a student INEP id to the first 90 line naming it.
	SituationStudents map[string]int
	AdmittedClasses   map[string]*AdmittedClass

	// Diagnostics raised while harvesting: duplicate codes and extra
	// School records, in line order.
	Diagnostics []censoErrors.ValidationError
}

// NewContexts returns empty contexts.
func NewContexts() *Contexts {
	return &Contexts{
		Persons:           make(map[string]*PersonContext),
		Classes:           make(map[string]*ClassContext),
		SituationStudents: make(map[string]int),
		AdmittedClasses:   make(map[string]*AdmittedClass),
	}
}

// Person returns the context for a person code.
func (c *Contexts) Person(code string) (*PersonContext, bool) {
	p, ok := c.Persons[code]
	return p, ok
}

// Class returns the context for a class code.
func (c *Contexts) Class(code string) (*ClassContext, bool) {
	cl, ok := c.Classes[code]
	return cl, ok
}
