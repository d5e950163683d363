package rules

import (
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// Record 50, 60, 89 and 91 rules. Manager bonds (40) have no record-level
// predicates; their rules need the school and person contexts.
const (
	RuleKnowledgeAreaNotAllowed  = "knowledge_area_not_allowed"
	RuleDuplicateKnowledgeArea   = "duplicate_knowledge_area"
	RuleVehicleRequired          = "vehicle_required"
	RuleEnrollmentCodeNotAllowed = "enrollment_code_not_allowed"
)

// TeachingFunctions are the professional functions that teach knowledge areas.
var TeachingFunctions = map[string]bool{
	layout.FunctionTeacher:             true,
	layout.FunctionDistanceLeadTeacher: true,
}

func (c *checker) VisitManagerBond(*record.ManagerBond) error { return nil }

func (c *checker) VisitProfessionalBond(r *record.ProfessionalBond) error {
	areas := layout.ProfessionalAreaGroup.Positions()
	if r.Function != "" && !TeachingFunctions[r.Function] {
		for _, p := range areas {
			if c.set(p) {
				c.fail(p, RuleKnowledgeAreaNotAllowed, "%s is only informed for teaching functions", c.desc(p))
			}
		}
	}
	c.noDuplicates(areas, RuleDuplicateKnowledgeArea)
	for _, p := range areas {
		c.lookup(reference.KnowledgeArea, p)
	}
	return nil
}

func (c *checker) VisitStudentEnrollment(r *record.StudentEnrollment) error {
	vehicles := layout.VehicleGroup.Positions()
	if r.PublicTransport == "1" && c.allSet(vehicles...) && !c.anyOne(vehicles...) {
		c.fail(vehicles[0], RuleVehicleRequired, "at least one vehicle must be marked when public transport is used")
	}
	return nil
}

func (c *checker) VisitSituationHeader(*record.SituationHeader) error {
	c.cpf(layout.HeaderManagerCPF)
	return nil
}

func (c *checker) VisitStudentSituation(*record.StudentSituation) error { return nil }

func (c *checker) VisitAdmittedStudent(r *record.AdmittedStudent) error {
	if r.EnrollmentCode != "" {
		c.fail(layout.AdmittedEnrollmentCode, RuleEnrollmentCodeNotAllowed,
			"admitted students have no enrollment INEP code yet")
	}
	if r.Stage != "" {
		if stages, ok := layout.ModalityStages[r.Modality]; ok && !stages.Has(r.Stage) {
			c.fail(layout.AdmittedStage, RuleStageModalityIncompatible,
				"stage %s is not offered in modality %s", r.Stage, r.Modality)
		}
		c.lookup(reference.Step, layout.AdmittedStage)
	}
	return nil
}

func (c *checker) VisitFileEnd(*record.FileEnd) error { return nil }
