package rules

import (
	"strings"
	"unicode/utf8"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// Record 30 rules. The exam-resource, postgraduate and continuing-education
// groups also report <group>_none_exclusive, and postgraduate_required applies
// to higher education.
const (
	RuleInvalidCPF                     = "invalid_cpf"
	RuleNameRepeatedCharacters         = "name_repeated_characters"
	RuleNameSingleWord                 = "name_single_word"
	RuleBirthDateInFuture              = "birth_date_in_future"
	RuleBirthDateTooOld                = "birth_date_too_old"
	RuleParentNameRequired             = "parent_name_required"
	RuleParentNameNotAllowed           = "parent_name_not_allowed"
	RuleDuplicateParentName            = "duplicate_parent_name"
	RuleParentNameSameAsPerson         = "parent_name_same_as_person"
	RuleNationalityCountryMismatch     = "nationality_country_mismatch"
	RuleDisabilityTypeRequired         = "disability_type_required"
	RuleDisabilityTypesIncompatible    = "disability_types_incompatible"
	RuleExamResourceNotAllowed         = "exam_resource_not_allowed"
	RuleResourceIncompatibleDisability = "resource_incompatible_disability"
	RuleEnlargedFontExclusive          = "enlarged_font_exclusive"
	RuleResidenceCEPNotAllowed         = "residence_cep_not_allowed"
	RuleCourseYearRequired             = "course_year_required"
	RuleCourseInstitutionRequired      = "course_institution_required"
	RuleCourseDataNotAllowed           = "course_data_not_allowed"
	RuleCourseNotAllowed               = "course_not_allowed"
	RuleCourseYearOutOfRange           = "course_year_out_of_range"
	RuleDuplicateCourse                = "duplicate_course"
)

// MaxAge is the oldest age a birth date may imply.
const MaxAge = 120

// OldestCourseYear is the earliest accepted higher-education completion year.
const OldestCourseYear = 1940

// A run of this many identical letters marks a placeholder name.
const repeatedRun = 4

// disabilityConflicts are disability types that cannot be declared together.
var disabilityConflicts = [][2]int{
	{layout.PersonDisabilityBlindness, layout.PersonDisabilityLowVision},
	{layout.PersonDisabilityBlindness, layout.PersonDisabilityMonocularVision},
	{layout.PersonDisabilityBlindness, layout.PersonDisabilityDeafness},
	{layout.PersonDisabilityBlindness, layout.PersonDisabilityDeafBlindness},
	{layout.PersonDisabilityLowVision, layout.PersonDisabilityMonocularVision},
	{layout.PersonDisabilityLowVision, layout.PersonDisabilityDeafBlindness},
	{layout.PersonDisabilityDeafness, layout.PersonDisabilityHearingImpairment},
	{layout.PersonDisabilityDeafness, layout.PersonDisabilityDeafBlindness},
	{layout.PersonDisabilityHearingImpairment, layout.PersonDisabilityDeafBlindness},
}

var (
	visualDisabilities  = []int{layout.PersonDisabilityBlindness, layout.PersonDisabilityDeafBlindness}
	hearingDisabilities = []int{layout.PersonDisabilityDeafness, layout.PersonDisabilityHearingImpairment, layout.PersonDisabilityDeafBlindness}
	hearingResources    = []int{
		layout.PersonResourceLibrasInterpreter, layout.PersonResourceLipReading,
		layout.PersonResourceVideoLibras, layout.PersonResourcePortuguese2ndLanguage,
	}
)

func (c *checker) VisitPerson(r *record.Person) error {
	c.cpf(layout.PersonCPF)
	c.personName(layout.PersonName)
	c.personName(layout.PersonParent1)
	c.personName(layout.PersonParent2)
	if r.Name != "" && !strings.Contains(r.Name, " ") {
		c.warn(layout.PersonName, RuleNameSingleWord, "name %q has a single word", r.Name)
	}
	c.birthDate()

	c.requireAny(c.one(layout.PersonParentage), []int{layout.PersonParent1, layout.PersonParent2},
		RuleParentNameRequired, RuleParentNameNotAllowed, "parentage is declared")
	c.notEqual(layout.PersonParent1, layout.PersonParent2, RuleDuplicateParentName)
	c.notEqual(layout.PersonName, layout.PersonParent1, RuleParentNameSameAsPerson)
	c.notEqual(layout.PersonName, layout.PersonParent2, RuleParentNameSameAsPerson)

	c.nationality(r.Nationality)
	c.lookup(reference.Municipality, layout.PersonBirthMunicipality)

	c.disability(r.Disability == "1")

	if r.ResidenceCountry != "" && r.ResidenceCountry != layout.CountryBrazil && c.set(layout.PersonResidenceCEP) {
		c.fail(layout.PersonResidenceCEP, RuleResidenceCEPNotAllowed, "a residence CEP is only informed for residents of Brazil")
	}
	c.lookup(reference.Municipality, layout.PersonResidenceMunicipality)

	c.courses(r.Schooling == layout.SchoolingHigherEducation)
	if r.Schooling == layout.SchoolingHigherEducation {
		c.groupRequired(layout.PostgraduateGroup)
	}
	c.noneExclusive(layout.PostgraduateGroup)
	c.noneExclusive(layout.ContinuingEducationGroup)
	return nil
}

func (c *checker) personName(p int) {
	v := c.get(p)
	run, last := 0, rune(0)
	for _, ch := range v {
		if ch == last && ch != ' ' {
			run++
		} else {
			run, last = 1, ch
		}
		if run >= repeatedRun {
			c.fail(p, RuleNameRepeatedCharacters, "%s cannot repeat the same character %d times in a row", c.desc(p), repeatedRun)
			return
		}
	}
}

func (c *checker) birthDate() {
	t, ok := c.date(layout.PersonBirthDate)
	if !ok {
		return
	}
	now := c.e.now()
	switch {
	case t.After(now):
		c.fail(layout.PersonBirthDate, RuleBirthDateInFuture, "birth date %s is in the future", c.get(layout.PersonBirthDate))
	case t.Before(now.AddDate(-MaxAge, 0, 0)):
		c.fail(layout.PersonBirthDate, RuleBirthDateTooOld, "birth date %s implies an age over %d", c.get(layout.PersonBirthDate), MaxAge)
	}
}

// nationality checks the country against the declared nationality: Brazilians
// and naturalised citizens carry country 076, foreigners any other.
func (c *checker) nationality(nat string) {
	country := c.get(layout.PersonCountry)
	if nat == "" || utf8.RuneCountInString(country) != 3 {
		return
	}
	brazilian := nat == layout.NationalityBrazilian || nat == layout.NationalityNaturalised
	if brazilian != (country == layout.CountryBrazil) {
		c.fail(layout.PersonCountry, RuleNationalityCountryMismatch,
			"country %s does not match nationality %s", country, nat)
	}
}

func (c *checker) disability(declared bool) {
	types := layout.DisabilityGroup.Positions()
	if declared && c.allSet(types...) && !c.anyOne(types...) {
		c.fail(types[0], RuleDisabilityTypeRequired, "at least one disability type must be marked when a disability is declared")
	}
	for _, pair := range disabilityConflicts {
		c.incompatible(pair[0], pair[1], RuleDisabilityTypesIncompatible)
	}

	resources := layout.ResourceGroup.Span()
	if !declared {
		for _, p := range resources {
			if c.set(p) {
				c.fail(p, RuleExamResourceNotAllowed, "%s must be empty unless a disability is declared", c.desc(p))
			}
		}
		return
	}
	c.noneExclusive(layout.ResourceGroup)

	if c.one(layout.PersonResourceBraille) && !c.anyOne(visualDisabilities...) {
		c.fail(layout.PersonResourceBraille, RuleResourceIncompatibleDisability,
			"braille requires blindness or deafblindness")
	}
	if c.one(layout.PersonDisabilityBlindness) {
		for _, p := range []int{layout.PersonResourceFont18, layout.PersonResourceFont24} {
			if c.one(p) {
				c.fail(p, RuleResourceIncompatibleDisability, "%s cannot be requested for blindness", c.desc(p))
			}
		}
	}
	for _, p := range hearingResources {
		if c.one(p) && !c.anyOne(hearingDisabilities...) {
			c.fail(p, RuleResourceIncompatibleDisability, "%s requires deafness, hearing impairment or deafblindness", c.desc(p))
		}
	}
	c.incompatible(layout.PersonResourceFont18, layout.PersonResourceFont24, RuleEnlargedFontExclusive)
}

// courses checks the three higher-education course slots. The first code's
// requiredness belongs to the field rules.
func (c *checker) courses(higher bool) {
	codes := make([]int, 0, len(layout.CoursePositions))
	for i, slot := range layout.CoursePositions {
		code, year, inst := slot[0], slot[1], slot[2]
		codes = append(codes, code)

		if c.set(code) {
			if !higher && i > 0 {
				c.fail(code, RuleCourseNotAllowed, "%s must be empty unless schooling is higher education", c.desc(code))
			}
			if !c.set(year) {
				c.fail(year, RuleCourseYearRequired, "%s is required when the course is informed", c.desc(year))
			}
			if !c.set(inst) {
				c.fail(inst, RuleCourseInstitutionRequired, "%s is required when the course is informed", c.desc(inst))
			}
		} else {
			for _, p := range []int{year, inst} {
				if c.set(p) {
					c.fail(p, RuleCourseDataNotAllowed, "%s must be empty when no course is informed", c.desc(p))
				}
			}
		}

		if y, ok := c.number(year); ok && len(c.get(year)) == 4 {
			if y < OldestCourseYear || y > c.e.now().Year() {
				c.fail(year, RuleCourseYearOutOfRange, "%s must be between %d and %d", c.desc(year), OldestCourseYear, c.e.now().Year())
			}
		}
	}
	c.noDuplicates(codes, RuleDuplicateCourse)
}
