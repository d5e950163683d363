package rules

import (
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
)

// Record 10 rules. The grouped sections report <group>_required and
// <group>_none_exclusive, named after layout.CharacterizationGroups.
const (
	RuleSharedSchoolCodeRequired             = "shared_school_code_required"
	RuleSharedSchoolCodeNotAllowed           = "shared_school_code_not_allowed"
	RuleDuplicateSharedSchoolCode            = "duplicate_shared_school_code"
	RuleSharedSchoolCodeSameAsSchool         = "shared_school_code_same_as_school"
	RuleClassroomsTotalZero                  = "classrooms_total_zero"
	RuleClassroomsAirConditionedExceedsTotal = "classrooms_air_conditioned_exceeds_total"
	RuleClassroomsAccessibleExceedsTotal     = "classrooms_accessible_exceeds_total"
	RuleStudentComputersRequired             = "student_computers_required"
	RuleStudentComputersNotAllowed           = "student_computers_not_allowed"
	RuleStudentInternetDeviceRequired        = "student_internet_device_required"
	RuleStaffNoneExclusive                   = "staff_none_exclusive"
	RuleStaffCountRequired                   = "staff_count_required"
	RuleStaffCountZero                       = "staff_count_zero"
	RuleIndigenousLanguageCodeRequired       = "indigenous_language_code_required"
	RuleIndigenousLanguageCodeNotAllowed     = "indigenous_language_code_not_allowed"
	RuleDuplicateIndigenousLanguage          = "duplicate_indigenous_language"
	RuleTeachingLanguageRequired             = "teaching_language_required"
)

func (c *checker) VisitCharacterization(r *record.Characterization) error {
	for _, g := range layout.CharacterizationGroups {
		c.groupRequired(g)
		c.noneExclusive(g)
	}

	c.sharedBuilding(r.SchoolCode)
	c.classrooms()

	c.requireAny(c.one(layout.CharEquipmentComputers), layout.StudentComputerPositions,
		RuleStudentComputersRequired, RuleStudentComputersNotAllowed, "the school has computers")

	devices := []int{layout.CharDeviceSchoolComputers, layout.CharDevicePersonal}
	if c.one(layout.CharInternetStudents) && c.allSet(devices...) && !c.anyOne(devices...) {
		c.fail(layout.CharDeviceSchoolComputers, RuleStudentInternetDeviceRequired,
			"at least one student internet device must be marked when students use the internet")
	}

	c.staff()
	c.indigenousEducation()

	if c.one(layout.CharSelectionExam) {
		c.groupRequired(layout.QuotaGroup)
		c.noneExclusive(layout.QuotaGroup)
	}
	return nil
}

func (c *checker) sharedBuilding(schoolCode string) {
	c.requireAny(c.one(layout.CharSharedBuilding), layout.SharedSchoolPositions,
		RuleSharedSchoolCodeRequired, RuleSharedSchoolCodeNotAllowed, "the building is shared")
	c.noDuplicates(layout.SharedSchoolPositions, RuleDuplicateSharedSchoolCode)
	for _, p := range layout.SharedSchoolPositions {
		if schoolCode != "" && c.get(p) == schoolCode {
			c.fail(p, RuleSharedSchoolCodeSameAsSchool, "a school cannot share its building with itself")
		}
	}
}

func (c *checker) classrooms() {
	inside, okIn := c.number(layout.CharClassroomsInside)
	outside, okOut := c.number(layout.CharClassroomsOutside)
	if !okIn && !okOut {
		return
	}
	total := inside + outside
	if total == 0 {
		p := layout.CharClassroomsInside
		if !okIn {
			p = layout.CharClassroomsOutside
		}
		c.fail(p, RuleClassroomsTotalZero, "the school must have at least one classroom when classroom counts are informed")
		return
	}
	if n, ok := c.number(layout.CharClassroomsAirConditioned); ok && n > total {
		c.fail(layout.CharClassroomsAirConditioned, RuleClassroomsAirConditionedExceedsTotal,
			"%d air-conditioned classrooms exceed the %d classrooms in use", n, total)
	}
	if n, ok := c.number(layout.CharClassroomsAccessible); ok && n > total {
		c.fail(layout.CharClassroomsAccessible, RuleClassroomsAccessibleExceedsTotal,
			"%d accessible classrooms exceed the %d classrooms in use", n, total)
	}
}

func (c *checker) staff() {
	counts := layout.StaffGroup.Positions()
	informed := c.anySet(counts...)

	switch {
	case c.one(layout.CharStaffNone) && informed:
		c.fail(layout.CharStaffNone, RuleStaffNoneExclusive, "staff counts cannot be informed when no staff is declared")
	case c.get(layout.CharStaffNone) == "0" && !informed:
		c.fail(counts[0], RuleStaffCountRequired, "at least one staff count is required unless no staff is declared")
	}
	for _, p := range counts {
		if n, ok := c.number(p); ok && n == 0 {
			c.fail(p, RuleStaffCountZero, "%s must be empty or greater than zero", c.desc(p))
		}
	}
}

func (c *checker) indigenousEducation() {
	indigenous := c.one(layout.CharIndigenousEducation)
	languages := []int{layout.CharLanguageIndigenous, layout.CharLanguagePortuguese}
	if indigenous && c.allSet(languages...) && !c.anyOne(languages...) {
		c.fail(layout.CharLanguageIndigenous, RuleTeachingLanguageRequired,
			"at least one teaching language must be marked for indigenous education")
	}

	c.requireAny(indigenous && c.one(layout.CharLanguageIndigenous), layout.IndigenousLanguagePositions,
		RuleIndigenousLanguageCodeRequired, RuleIndigenousLanguageCodeNotAllowed, "teaching happens in an indigenous language")
	c.noDuplicates(layout.IndigenousLanguagePositions, RuleDuplicateIndigenousLanguage)
}
