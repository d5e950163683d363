package rules

import (
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// Record 20 rules.
const (
	RuleWeekdayRequired                 = "weekday_required"
	RuleClassScheduleInvalid            = "class_schedule_invalid"
	RuleClassTypeRequired               = "class_type_required"
	RuleAEEClassExclusive               = "aee_class_exclusive"
	RuleDistanceClassTypeNotAllowed     = "distance_class_type_not_allowed"
	RuleComplementaryActivityNotAllowed = "complementary_activity_not_allowed"
	RuleDuplicateComplementaryActivity  = "duplicate_complementary_activity"
	RuleCurricularStructureRequired     = "curricular_structure_required"
	RuleStructureNotApplicableExclusive = "curricular_structure_not_applicable_exclusive"
	RuleProfessionalCourseRequired      = "professional_course_required"
	RuleProfessionalCourseNotAllowed    = "professional_course_not_allowed"
	RuleStageModalityIncompatible       = "stage_modality_incompatible"
	RuleKnowledgeAreaOfferingRequired   = "knowledge_area_offering_required"
	RuleKnowledgeAreaOfferingNotAllowed = "knowledge_area_offering_not_allowed"
)

func (c *checker) VisitClass(r *record.Class) error {
	schooling := r.TypeSchooling == "1"
	complementary := r.TypeComplementary == "1"
	aee := r.TypeAEE == "1"

	if r.Mediation == layout.MediationInPerson {
		if c.allSet(layout.WeekdayPositions...) && !c.anyOne(layout.WeekdayPositions...) {
			c.fail(layout.ClassSunday, RuleWeekdayRequired, "an in-person class must meet on at least one weekday")
		}
		c.schedule()
	}

	c.atLeastOne(layout.ClassTypePositions, RuleClassTypeRequired, "class type")
	if aee && (schooling || complementary) {
		c.fail(layout.ClassTypeAEE, RuleAEEClassExclusive, "an AEE class cannot also be a schooling or complementary activity class")
	}
	if r.Mediation == layout.MediationDistance {
		for _, p := range []int{layout.ClassTypeComplementary, layout.ClassTypeAEE} {
			if c.one(p) {
				c.fail(p, RuleDistanceClassTypeNotAllowed, "a distance class cannot be marked as %s", c.desc(p))
			}
		}
	}

	for _, p := range layout.ActivityPositions[1:] {
		if !complementary && c.set(p) {
			c.fail(p, RuleComplementaryActivityNotAllowed, "%s must be empty unless the class is a complementary activity", c.desc(p))
		}
	}
	c.noDuplicates(layout.ActivityPositions, RuleDuplicateComplementaryActivity)
	for _, p := range layout.ActivityPositions {
		c.lookup(reference.ComplementaryActivity, p)
	}

	if schooling {
		c.atLeastOne(layout.StructurePositions, RuleCurricularStructureRequired, "curricular structure")
		if c.one(layout.ClassStructureNotApplicable) &&
			c.anyOne(layout.ClassStructureGeneralBasic, layout.ClassStructureFormativeItinerary) {
			c.fail(layout.ClassStructureNotApplicable, RuleStructureNotApplicableExclusive,
				"curricular structure 'not applicable' cannot be marked with another structure")
		}
	}

	professional := schooling && layout.ProfessionalStages.Has(r.Stage)
	c.requireAll(professional, []int{layout.ClassProfessionalCourse},
		RuleProfessionalCourseRequired, RuleProfessionalCourseNotAllowed, "the class is in a professional stage")

	if schooling && r.Stage != "" {
		if stages, ok := layout.ModalityStages[r.Modality]; ok && !stages.Has(r.Stage) {
			c.fail(layout.ClassStage, RuleStageModalityIncompatible,
				"stage %s is not offered in modality %s", r.Stage, r.Modality)
		}
		c.lookup(reference.Step, layout.ClassStage)
	}

	c.areaOfferings(schooling && r.Stage != "" && !layout.EarlyChildhoodStages.Has(r.Stage))
	return nil
}

// schedule checks that a class ends after it starts. Values the field rules
// reject are skipped.
func (c *checker) schedule() {
	sh, ok1 := c.number(layout.ClassStartHour)
	sm, ok2 := c.number(layout.ClassStartMinute)
	eh, ok3 := c.number(layout.ClassEndHour)
	em, ok4 := c.number(layout.ClassEndMinute)
	if !ok1 || !ok2 || !ok3 || !ok4 {
		return
	}
	if eh*60+em <= sh*60+sm {
		c.fail(layout.ClassEndHour, RuleClassScheduleInvalid,
			"class end %02d:%02d must be after its start %02d:%02d", eh, em, sh, sm)
	}
}

// areaOfferings is the knowledge-area block: every offering field is
// required, and at least one area offered, for schooling classes past early
// childhood; otherwise the block must be empty.
func (c *checker) areaOfferings(required bool) {
	positions := layout.KnowledgeAreaGroup.Positions()
	c.requireAll(required, positions, RuleKnowledgeAreaOfferingRequired, RuleKnowledgeAreaOfferingNotAllowed,
		"the class is a schooling class past early childhood")
	if !required || !c.allSet(positions...) {
		return
	}
	for _, p := range positions {
		if v := c.get(p); v == "1" || v == "2" {
			return
		}
	}
	c.fail(positions[0], RuleKnowledgeAreaOfferingRequired, "at least one knowledge area must be offered")
}
