package harvest

import (
	"context"
	"fmt"
	"log/slog"

	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
)

// SchoolPolicy chooses which School record supplies the school context when
// a file carries more than one.
type SchoolPolicy string

const (
	LastWins  SchoolPolicy = "last_wins"
	FirstWins SchoolPolicy = "first_wins"
)

// ParseSchoolPolicy parses a policy name. The empty string is LastWins.
func ParseSchoolPolicy(s string) (SchoolPolicy, error) {
	switch SchoolPolicy(s) {
	case "", LastWins:
		return LastWins, nil
	case FirstWins:
		return FirstWins, nil
	default:
		return "", fmt.Errorf("unknown multiple school policy %q (want %s or %s)", s, LastWins, FirstWins)
	}
}

// Builder is the context builder: one forward pass over every line of a
// file. Entity lines may appear before or after the lines that reference
// them; bond facts are attached to persons once the pass is over.
type Builder struct {
	policy SchoolPolicy
	logger *slog.Logger
}

// NewBuilder creates a builder with the LastWins policy.
func NewBuilder() *Builder {
	return &Builder{
		policy: LastWins,
		logger: slog.Default().With("component", "censo.harvest"),
	}
}

// WithSchoolPolicy sets the multiple-School policy.
func (b *Builder) WithSchoolPolicy(p SchoolPolicy) *Builder {
	if p != "" {
		b.policy = p
	}
	return b
}

// WithLogger sets the logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	if logger != nil {
		b.logger = logger
	}
	return b
}

// Build harvests the contexts of a file. Unrecognized lines and lines with
// the wrong field count are skipped; they are reported elsewhere.
func (b *Builder) Build(ctx context.Context, lines []record.ParsedLine) *Contexts {
	h := &harvester{
		policy:   b.policy,
		out:      NewContexts(),
		staff:    make(map[string]bool),
		enrolled: make(map[string][]string),
	}

	for _, line := range lines {
		if line.Type == layout.School {
			h.out.SchoolRecords++
		}
		if line.Type == layout.Unrecognized || len(line.Fields) != layout.FieldCount(line.Type) {
			continue
		}
		rec, ok := record.New(line)
		if !ok {
			continue
		}
		b.visit(ctx, rec, h)
	}
	h.attachBonds()

	b.logger.DebugContext(ctx, "contexts harvested",
		"school_records", h.out.SchoolRecords,
		"persons", len(h.out.Persons),
		"classes", len(h.out.Classes),
		"diagnostics", len(h.out.Diagnostics),
	)
	return h.out
}

// visit dispatches rec to v. A failing visit loses that record's facts
// only, so it is logged and the pass goes on.
func (b *Builder) visit(ctx context.Context, rec record.Record, v record.Visitor) {
	if err := rec.Accept(v); err != nil {
		b.logger.WarnContext(ctx, "context harvest skipped a record",
			"line", rec.LineNumber(), "record_type", rec.Type().Code(), "error", err)
	}
}

// harvester is the record.Visitor of the context pass.
type harvester struct {
	policy      SchoolPolicy
	out         *Contexts
	firstSchool int
	staff       map[string]bool
	enrolled    map[string][]string
}

func (h *harvester) flag(r record.Record, position int, rule, format string, args ...any) {
	b := censoErrors.NewBuilder(r.LineNumber(), r.Type(), censoErrors.CategoryCrossRef, r.Values())
	h.out.Diagnostics = append(h.out.Diagnostics, b.Field(position, rule, format, args...))
}

func (h *harvester) VisitSchool(r *record.School) error {
	sc := &SchoolContext{
		Line:                     r.Line,
		Code:                     r.Code,
		OperatingStatus:          r.OperatingStatus,
		AdministrativeDependency: r.AdministrativeDependency,
		DifferentiatedLocation:   r.DifferentiatedLocation,
		ResidenceCountryDefault:  layout.CountryBrazil,
	}
	if h.out.School == nil {
		h.firstSchool = r.Line
		h.out.School = sc
		return nil
	}

	used := "last"
	if h.policy == FirstWins {
		used = "first"
	} else {
		h.out.School = sc
	}
	b := censoErrors.NewBuilder(r.Line, layout.School, censoErrors.CategoryStructural, r.Fields)
	h.out.Diagnostics = append(h.out.Diagnostics, b.RecordWarning(censoErrors.RuleMultipleSchoolRecords,
		"a school record was already declared on line %d; the %s one is used", h.firstSchool, used))
	return nil
}

func (h *harvester) VisitCharacterization(*record.Characterization) error {
	h.out.CharacterizationRecords++
	return nil
}

func (h *harvester) VisitClass(r *record.Class) error {
	if r.Code == "" {
		return nil
	}
	if first, dup := h.out.Classes[r.Code]; dup {
		h.flag(r, layout.ClassCode, censoErrors.RuleDuplicateClassCode,
			"class code %s is already used on line %d", r.Code, first.Line)
		return nil
	}
	h.out.Classes[r.Code] = &ClassContext{
		Line:                          r.Line,
		Code:                          r.Code,
		INEPCode:                      r.INEPCode,
		TeachingMediation:             r.Mediation,
		IsRegular:                     r.TypeSchooling == "1",
		IsComplementaryActivity:       r.TypeComplementary == "1",
		SpecializedEducationalService: r.TypeAEE == "1",
		Modality:                      r.Modality,
		Stage:                         r.Stage,
		HasFormativeItinerary:         r.FormativeItinerary == "1",
		HasProfessionalItinerary:      r.ProfessionalItinerary == "1",
		DifferentiatedLocation:        r.DifferentiatedLocation,
		SubjectAreaOfferings:          r.AreaOfferings,
	}
	return nil
}

func (h *harvester) VisitPerson(r *record.Person) error {
	if r.Code == "" {
		return nil
	}
	if first, dup := h.out.Persons[r.Code]; dup {
		h.flag(r, layout.PersonCode, censoErrors.RuleDuplicatePersonCode,
			"person code %s is already used on line %d", r.Code, first.Line)
		return nil
	}
	h.out.Persons[r.Code] = &PersonContext{
		Line:       r.Line,
		Code:       r.Code,
		INEPID:     r.INEPID,
		CPF:        r.CPF,
		BirthDate:  r.BirthDate,
		Disability: r.Disability == "1",
		Schooling:  r.Schooling,
	}
	return nil
}

func (h *harvester) VisitManagerBond(r *record.ManagerBond) error {
	h.staff[r.PersonCode] = true
	if r.Role == layout.RoleDirector {
		h.out.HasDirector = true
	}
	return nil
}

func (h *harvester) VisitProfessionalBond(r *record.ProfessionalBond) error {
	h.staff[r.PersonCode] = true
	return nil
}

func (h *harvester) VisitStudentEnrollment(r *record.StudentEnrollment) error {
	if r.PersonCode == "" || r.ClassCode == "" {
		return nil
	}
	for _, c := range h.enrolled[r.PersonCode] {
		if c == r.ClassCode {
			return nil
		}
	}
	h.enrolled[r.PersonCode] = append(h.enrolled[r.PersonCode], r.ClassCode)
	return nil
}

func (h *harvester) VisitSituationHeader(r *record.SituationHeader) error {
	if h.out.Header == nil {
		h.out.Header = &HeaderContext{Line: r.Line, SchoolCode: r.SchoolCode}
	}
	return nil
}

func (h *harvester) VisitStudentSituation(r *record.StudentSituation) error {
	if _, seen := h.out.SituationStudents[r.StudentINEPID]; !seen && r.StudentINEPID != "" {
		h.out.SituationStudents[r.StudentINEPID] = r.Line
	}
	return nil
}

func (h *harvester) VisitAdmittedStudent(r *record.AdmittedStudent) error {
	if _, seen := h.out.AdmittedClasses[r.ClassCode]; !seen && r.ClassCode != "" {
		h.out.AdmittedClasses[r.ClassCode] = &AdmittedClass{
			Line:      r.Line,
			Mediation: r.Mediation,
			Modality:  r.Modality,
			Stage:     r.Stage,
		}
	}
	return nil
}

func (h *harvester) VisitFileEnd(*record.FileEnd) error { return nil }

func (h *harvester) attachBonds() {
	for code, p := range h.out.Persons {
		p.Staff = h.staff[code]
		p.EnrolledClassCodes = h.enrolled[code]
	}
}
