package validator

import (
	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/harvest"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
)

// structure is the outcome of the structural pre-checks.
type structure struct {
	phase       layout.Phase
	diagnostics []censoErrors.ValidationError
	// skip marks lines (by index) that cannot be tokenised and must not
	// reach the per-line passes.
	skip map[int]bool
}

func checkStructure(lines []record.ParsedLine, view *harvest.Contexts) structure {
	st := structure{skip: make(map[int]bool)}
	add := func(d censoErrors.ValidationError) { st.diagnostics = append(st.diagnostics, d) }

	var initial, situation bool
	firstEnd := 0
	for i, l := range lines {
		if l.Type != layout.FileEnd && !l.HasSeparator() {
			add(censoErrors.Structural(l.LineNumber, l.Code, censoErrors.RuleMalformedLine, censoErrors.SeverityError,
				"line has no %q separator", record.Separator))
			st.skip[i] = true
			continue
		}
		switch l.Type.Phase() {
		case layout.PhaseInitial:
			initial = true
		case layout.PhaseSituation:
			situation = true
		}
		if l.Type == layout.FileEnd {
			if firstEnd == 0 {
				firstEnd = l.LineNumber
			} else {
				add(censoErrors.Structural(l.LineNumber, l.Code, censoErrors.RuleDuplicateFileEnd, censoErrors.SeverityError,
					"file end record already declared on line %d", firstEnd))
			}
		}
	}

	if last := lines[len(lines)-1]; last.Type != layout.FileEnd {
		add(censoErrors.Structural(last.LineNumber, last.Code, censoErrors.RuleFileEndRecord, censoErrors.SeverityError,
			"the last record of the file must be %s", layout.FileEnd.Code()))
	}

	st.phase = layout.PhaseInitial
	if situation && !initial {
		st.phase = layout.PhaseSituation
	}
	if situation && initial {
		add(censoErrors.FileLevel(censoErrors.RuleMixedPhaseRecords, censoErrors.SeverityError,
			"the file mixes enrollment records (00 to 60) with situation records (89 to 91)"))
	}

	switch st.phase {
	case layout.PhaseInitial:
		switch {
		case view.SchoolRecords == 0:
			add(censoErrors.FileLevel(censoErrors.RuleMissingSchoolRecord, censoErrors.SeverityError,
				"the file has no school record (%s)", layout.School.Code()))
		case view.School != nil && view.School.Active() && view.CharacterizationRecords == 0:
			add(censoErrors.FileLevel(censoErrors.RuleCharacterizationRequired, censoErrors.SeverityError,
				"school %s is in activity and must declare a characterization record (%s)",
				view.School.Code, layout.Characterization.Code()))
		}
	case layout.PhaseSituation:
		if first := lines[0]; first.Type != layout.SituationHeader {
			add(censoErrors.Structural(first.LineNumber, first.Code, censoErrors.RuleSituationHeaderRequired, censoErrors.SeverityError,
				"a situation file must start with the %s header", layout.SituationHeader.Code()))
		}
	}
	return st
}
