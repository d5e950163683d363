package crossref

import (
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
)

// Record 10, 20 and 30 rules that depend on other records.
const (
	RuleSchoolMealsRequiredPublic           = "school_meals_required_public"
	RuleCharacterizationNotAllowedInactive  = "characterization_not_allowed_inactive_school"
	RuleCPFRequiredForStaff                 = "cpf_required_for_staff"
	RuleSchoolingRequiredForStaff           = "schooling_required_for_staff"
	RuleContinuingEducationRequiredForStaff = "continuing_education_required_for_staff"
	RuleExamResourcesRequired               = "exam_resources_required"
)

func (c *checker) VisitSchool(*record.School) error { return nil }

func (c *checker) VisitCharacterization(r *record.Characterization) error {
	c.school(layout.CharSchoolCode)
	s := c.view.School
	if s == nil {
		return nil
	}
	if !s.Active() {
		c.failRecord(RuleCharacterizationNotAllowedInactive,
			"school %s is not in activity and must not declare a characterization record", s.Code)
		return nil
	}
	if s.Public() && r.SchoolMeals == "0" {
		c.fail(layout.CharSchoolMeals, RuleSchoolMealsRequiredPublic,
			"public schools in activity must offer school meals")
	}
	return nil
}

func (c *checker) VisitClass(*record.Class) error {
	c.school(layout.ClassSchoolCode)
	return nil
}

func (c *checker) VisitPerson(r *record.Person) error {
	c.school(layout.PersonSchoolCode)
	p, ok := c.view.Person(r.Code)
	if !ok {
		return nil
	}

	if p.Staff {
		if r.CPF == "" {
			c.fail(layout.PersonCPF, RuleCPFRequiredForStaff,
				"CPF is required for school managers and professionals")
		}
		if r.Schooling == "" {
			c.fail(layout.PersonSchooling, RuleSchoolingRequiredForStaff,
				"highest schooling is required for school managers and professionals")
		}
		if !c.anyOne(layout.ContinuingEducationGroup.Span()...) {
			c.fail(layout.ContinuingEducationGroup.First, RuleContinuingEducationRequiredForStaff,
				"school managers and professionals must mark a continuing education course or none")
		}
	}

	if r.Disability == "1" && c.inAEEClass(p.EnrolledClassCodes) && !c.anyOne(layout.ResourceGroup.Span()...) {
		c.fail(layout.ResourceGroup.First, RuleExamResourcesRequired,
			"students with disability enrolled in AEE classes must mark an exam resource or none")
	}
	return nil
}

func (c *checker) inAEEClass(codes []string) bool {
	for _, code := range codes {
		if cl, ok := c.view.Class(code); ok && cl.SpecializedEducationalService {
			return true
		}
	}
	return false
}
