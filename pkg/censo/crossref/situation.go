package crossref

import (
	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
)

// Phase-two rules.
const (
	RuleStudentSituationConflict = "student_situation_conflict"
	RuleStageModalityMismatch    = "stage_modality_mismatch"
)

// header checks a phase-two school code against the 89 record.
func (c *checker) header(p int) {
	h := c.view.Header
	if h == nil {
		return
	}
	if code := c.get(p); code != h.SchoolCode {
		c.fail(p, censoErrors.RuleSchoolCodeMismatch,
			"school code %s does not match the situation header on line %d (%s)", code, h.Line, h.SchoolCode)
	}
}

func (c *checker) VisitSituationHeader(*record.SituationHeader) error { return nil }

func (c *checker) VisitStudentSituation(r *record.StudentSituation) error {
	c.header(layout.SituationSchoolCode)
	c.duplicate(Situations, bondKey(r.StudentINEPID, r.ClassINEPCode), layout.SituationStudentINEPID,
		censoErrors.RuleDuplicateSituation, "a situation for student "+r.StudentINEPID+" in class "+r.ClassINEPCode)
	return nil
}

func (c *checker) VisitAdmittedStudent(r *record.AdmittedStudent) error {
	c.header(layout.AdmittedSchoolCode)

	if line, ok := c.view.SituationStudents[r.StudentINEPID]; ok {
		c.fail(layout.AdmittedStudentINEPID, RuleStudentSituationConflict,
			"student %s already has a situation record on line %d", r.StudentINEPID, line)
	}

	if first, ok := c.view.AdmittedClasses[r.ClassCode]; ok && first.Line != c.b.Line {
		pairs := []struct {
			pos         int
			got, wanted string
		}{
			{layout.AdmittedMediation, r.Mediation, first.Mediation},
			{layout.AdmittedModality, r.Modality, first.Modality},
			{layout.AdmittedStage, r.Stage, first.Stage},
		}
		for _, p := range pairs {
			if p.got != p.wanted {
				c.fail(p.pos, RuleStageModalityMismatch,
					"%s %q differs from %q declared for class %s on line %d", c.desc(p.pos), p.got, p.wanted, r.ClassCode, first.Line)
			}
		}
	}

	c.duplicate(Situations, bondKey(r.StudentINEPID, r.ClassINEPCode), layout.AdmittedStudentINEPID,
		censoErrors.RuleDuplicateSituation, "a situation for student "+r.StudentINEPID+" in class "+r.ClassINEPCode)
	return nil
}
