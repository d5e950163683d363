package crossref

import (
	"strconv"
	"time"

	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/field"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/harvest"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/rules"
)

// Record 40, 50 and 60 rules.
const (
	RuleAccessCriteriaRequiredDirector   = "access_criteria_required_director"
	RuleAccessCriteriaNotAllowed         = "access_criteria_not_allowed_non_director"
	RuleManagerBondInactiveSchool        = "manager_bond_inactive_school"
	RuleFunctionRequiresComplementary    = "function_requires_complementary_activity_class"
	RuleFunctionRequiresDistance         = "function_requires_distance_class"
	RuleFunctionNotAllowedDistance       = "function_not_allowed_distance_class"
	RuleFunctionRequiresProfessional     = "function_requires_professional_class"
	RuleFunctionNotAllowedAEE            = "function_not_allowed_aee_class"
	RuleKnowledgeAreaRequired            = "knowledge_area_required"
	RuleKnowledgeAreaNotOffered          = "knowledge_area_not_offered_by_class"
	RuleProfessionalStudentConflict      = "professional_student_conflict"
	RulePublicTransportRequired          = "public_transport_required"
	RulePublicTransportNotAllowed        = "public_transport_not_allowed_distance_class"
	RuleEnrollmentStageRequired          = "enrollment_stage_required"
	RuleEnrollmentStageNotAllowed        = "enrollment_stage_not_allowed"
	RuleEnrollmentStageIncompatible      = "enrollment_stage_incompatible"
	RuleAEEServiceTypeRequired           = "aee_service_type_required"
	RuleAEEServiceTypeNotAllowed         = "aee_service_type_not_allowed"
	RuleFormativeItineraryTypeRequired   = "formative_itinerary_type_required"
	RuleFormativeItineraryTypeNotAllowed = "formative_itinerary_type_not_allowed"
	RuleProfessionalItineraryNotOffered  = "professional_itinerary_not_offered"
	RuleSchoolingElsewhereRequired       = "schooling_elsewhere_required"
	RuleSchoolingElsewhereNotAllowed     = "schooling_elsewhere_not_allowed"
	RulePrisonUnitStudentUnderage        = "prison_unit_student_underage"
	RuleMultipleRegularEnrollments       = "multiple_regular_enrollments"
)

// Functions that carry a functional status in public schools.
var statusFunctions = map[string]bool{
	layout.FunctionTeacher:             true,
	layout.FunctionDistanceLeadTeacher: true,
	layout.FunctionDistanceTutor:       true,
}

// Functions allowed in AEE classes.
var aeeFunctions = map[string]bool{
	layout.FunctionTeacher:           true,
	layout.FunctionLibrasInterpreter: true,
	layout.FunctionGuideInterpreter:  true,
	layout.FunctionDisabilitySupport: true,
}

// Age of majority for students in prison units.
const adultAge = 18

func (c *checker) functionalStatus(p int, status string) {
	s := c.view.School
	if s == nil {
		return
	}
	switch {
	case s.Public() && status == "":
		c.fail(p, censoErrors.RuleFunctionalStatusRequired,
			"%s is required in public schools", c.desc(p))
	case s.Private() && status != "":
		c.fail(p, censoErrors.RuleFunctionalStatusNotAllowed,
			"%s must be empty in private schools", c.desc(p))
	}
}

func (c *checker) VisitManagerBond(r *record.ManagerBond) error {
	c.school(layout.ManagerSchoolCode)
	c.person(layout.ManagerPersonCode, layout.ManagerINEPID)

	switch {
	case r.Role == layout.RoleDirector && r.AccessCriteria == "":
		c.fail(layout.ManagerAccessCriteria, RuleAccessCriteriaRequiredDirector,
			"the director must declare the access criteria to the role")
	case r.Role != layout.RoleDirector && r.AccessCriteria != "":
		c.fail(layout.ManagerAccessCriteria, RuleAccessCriteriaNotAllowed,
			"access criteria is only declared for the director")
	}

	if s := c.view.School; s != nil && !s.Active() {
		c.failRecord(RuleManagerBondInactiveSchool,
			"school %s is not in activity and must not declare manager bonds", s.Code)
	}
	c.functionalStatus(layout.ManagerFunctionalStatus, r.FunctionalStatus)

	c.duplicate(ManagerBonds, r.PersonCode, layout.ManagerPersonCode, censoErrors.RuleDuplicateManagerBond,
		"a manager bond for person "+r.PersonCode)
	return nil
}

func (c *checker) VisitProfessionalBond(r *record.ProfessionalBond) error {
	c.school(layout.ProfSchoolCode)
	person, personOK := c.person(layout.ProfPersonCode, layout.ProfINEPID)
	class, classOK := c.class(layout.ProfClassCode, layout.ProfClassINEPCode)

	if classOK {
		c.functionInClass(r, class)
		if rules.TeachingFunctions[r.Function] {
			c.knowledgeAreas(r, class)
		}
	}
	if statusFunctions[r.Function] {
		c.functionalStatus(layout.ProfFunctionalStatus, r.FunctionalStatus)
	}
	if personOK && person.EnrolledIn(r.ClassCode) {
		c.fail(layout.ProfPersonCode, RuleProfessionalStudentConflict,
			"person %s is enrolled as a student in class %s", r.PersonCode, r.ClassCode)
	}

	c.duplicate(ProfessionalBonds, bondKey(r.PersonCode, r.ClassCode), layout.ProfPersonCode,
		censoErrors.RuleDuplicateProfessional, "a bond for person "+r.PersonCode+" in class "+r.ClassCode)
	return nil
}

func (c *checker) functionInClass(r *record.ProfessionalBond, class *harvest.ClassContext) {
	p := layout.ProfFunction
	distanceFunction := r.Function == layout.FunctionDistanceLeadTeacher || r.Function == layout.FunctionDistanceTutor

	switch {
	case distanceFunction && !class.Distance():
		c.fail(p, RuleFunctionRequiresDistance, "function %s is only allowed in distance classes", r.Function)
	case !distanceFunction && class.Distance():
		c.fail(p, RuleFunctionNotAllowedDistance, "distance classes only take lead teachers and tutors")
	}
	if r.Function == layout.FunctionActivityMonitor && !class.IsComplementaryActivity {
		c.fail(p, RuleFunctionRequiresComplementary, "activity monitors need a complementary activity class")
	}
	if r.Function == layout.FunctionProfessionalInstructor && !class.Professional() {
		c.fail(p, RuleFunctionRequiresProfessional, "professional instructors need a professional education class")
	}
	if class.SpecializedEducationalService && !aeeFunctions[r.Function] {
		c.fail(p, RuleFunctionNotAllowedAEE, "function %s is not allowed in AEE classes", r.Function)
	}
}

func (c *checker) knowledgeAreas(r *record.ProfessionalBond, class *harvest.ClassContext) {
	if len(r.KnowledgeAreas) == 0 {
		if class.IsRegular && !class.EarlyChildhood() {
			c.fail(layout.ProfessionalAreaGroup.First, RuleKnowledgeAreaRequired,
				"teachers of regular classes must declare at least one knowledge area")
		}
		return
	}
	for _, p := range layout.ProfessionalAreaGroup.Positions() {
		v := c.get(p)
		if v == "" {
			continue
		}
		area, err := strconv.Atoi(v)
		if err != nil {
			continue
		}
		if class.Offering(area) != "1" {
			c.fail(p, RuleKnowledgeAreaNotOffered,
				"knowledge area %s is not offered by class %s", v, class.Code)
		}
	}
}

func (c *checker) VisitStudentEnrollment(r *record.StudentEnrollment) error {
	c.school(layout.EnrollSchoolCode)
	person, personOK := c.person(layout.EnrollPersonCode, layout.EnrollINEPID)
	class, classOK := c.class(layout.EnrollClassCode, layout.EnrollClassINEPCode)

	if classOK {
		c.enrollmentInClass(r, class)
		if personOK {
			c.prisonUnit(person, class)
		}
	}

	dup := c.duplicate(Enrollments, bondKey(r.PersonCode, r.ClassCode), layout.EnrollClassCode,
		censoErrors.RuleDuplicateEnrollment, "an enrollment of person "+r.PersonCode+" in class "+r.ClassCode)
	if !dup && classOK && class.IsRegular {
		if first, again := c.acc.Observe(RegularEnrollments, r.PersonCode, c.b.Line); again {
			c.fail(layout.EnrollClassCode, RuleMultipleRegularEnrollments,
				"person %s is already enrolled in a regular class on line %d", r.PersonCode, first)
		}
	}
	return nil
}

func (c *checker) enrollmentInClass(r *record.StudentEnrollment, class *harvest.ClassContext) {
	switch {
	case class.InPerson() && r.PublicTransport == "":
		c.fail(layout.EnrollPublicTransport, RulePublicTransportRequired,
			"%s is required for in-person classes", c.desc(layout.EnrollPublicTransport))
	case class.Distance() && r.PublicTransport != "":
		c.fail(layout.EnrollPublicTransport, RulePublicTransportNotAllowed,
			"%s must be empty for distance classes", c.desc(layout.EnrollPublicTransport))
	}

	members, multi := layout.MultiStages[class.Stage]
	switch {
	case multi && r.Stage == "":
		c.fail(layout.EnrollStage, RuleEnrollmentStageRequired,
			"class %s is multi-stage (%s); the student stage is required", class.Code, class.Stage)
	case !multi && r.Stage != "":
		c.fail(layout.EnrollStage, RuleEnrollmentStageNotAllowed,
			"student stage is only declared for multi-stage classes")
	case multi && !members.Has(r.Stage):
		c.fail(layout.EnrollStage, RuleEnrollmentStageIncompatible,
			"stage %s is not part of multi-stage %s", r.Stage, class.Stage)
	}

	aee := layout.AEEServiceGroup.Positions()
	if class.SpecializedEducationalService {
		if !c.anyOne(aee...) {
			c.fail(aee[0], RuleAEEServiceTypeRequired, "students of AEE classes must mark at least one AEE service")
		}
	} else if p, ok := c.anySet(aee...); ok {
		c.fail(p, RuleAEEServiceTypeNotAllowed, "%s is only declared for AEE classes", c.desc(p))
	}

	itineraries := layout.FormativeItineraryGroup.Positions()
	if class.HasFormativeItinerary {
		if !c.anyOne(itineraries...) {
			c.fail(itineraries[0], RuleFormativeItineraryTypeRequired,
				"students of formative itinerary classes must mark at least one itinerary")
		}
	} else if p, ok := c.anySet(itineraries...); ok {
		c.fail(p, RuleFormativeItineraryTypeNotAllowed, "%s is only declared for formative itinerary classes", c.desc(p))
	}
	if c.base.IsOne(layout.EnrollItineraryProfessional) && !class.HasProfessionalItinerary {
		c.fail(layout.EnrollItineraryProfessional, RuleProfessionalItineraryNotOffered,
			"class %s does not offer a professional itinerary", class.Code)
	}

	regularInPerson := class.IsRegular && class.InPerson()
	switch {
	case regularInPerson && r.SchoolingElsewhere == "":
		c.fail(layout.EnrollSchoolingElsewhere, RuleSchoolingElsewhereRequired,
			"%s is required for regular in-person classes", c.desc(layout.EnrollSchoolingElsewhere))
	case !regularInPerson && r.SchoolingElsewhere != "":
		c.fail(layout.EnrollSchoolingElsewhere, RuleSchoolingElsewhereNotAllowed,
			"%s is only declared for regular in-person classes", c.desc(layout.EnrollSchoolingElsewhere))
	}
}

func (c *checker) prisonUnit(person *harvest.PersonContext, class *harvest.ClassContext) {
	if class.DifferentiatedLocation != "1" || c.v.referenceYear == 0 {
		return
	}
	born, ok := field.ParseDate(person.BirthDate)
	if !ok {
		return
	}
	ref := ReferenceDate(c.v.referenceYear)
	if age := ageAt(born, ref); age < adultAge {
		c.fail(layout.EnrollClassCode, RulePrisonUnitStudentUnderage,
			"class %s is in a prison unit and person %s is %d years old on %s",
			class.Code, person.Code, age, ref.Format("02/01/2006"))
	}
}

func ageAt(born, at time.Time) int {
	age := at.Year() - born.Year()
	if at.Month() < born.Month() || (at.Month() == born.Month() && at.Day() < born.Day()) {
		age--
	}
	return age
}
