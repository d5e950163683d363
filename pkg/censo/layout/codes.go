package layout

// Stage codes group the teaching stages (etapas) referenced by records 20, 60 and 91.
var (
	EarlyChildhoodStages = codeSet("1", "2", "3")
	ElementaryStages     = codeSet("14", "15", "16", "17", "18", "19", "20", "21", "41", "22", "23", "24")
	HighSchoolStages     = codeSet("25", "26", "27", "28", "29", "30", "31", "32", "33", "34", "35", "36", "37", "38")
	ProfessionalStages   = codeSet("30", "31", "32", "33", "34", "39", "40", "64", "68", "73", "74")
	EJAStages            = codeSet("67", "69", "70", "71", "72", "73", "74")
)

// MultiStages maps a multi-stage class stage to the stages its students may
// declare in record 60.
var MultiStages = map[string]CodeSet{
	"3":  codeSet("1", "2"),
	"22": codeSet("14", "15", "16", "17", "18"),
	"23": codeSet("19", "20", "21", "41"),
	"24": codeSet("14", "15", "16", "17", "18", "19", "20", "21", "41"),
	"56": codeSet("1", "2", "14", "15", "16", "17", "18", "19", "20", "21", "41"),
	"64": codeSet("39", "40"),
	"72": codeSet("69", "70"),
}

// ModalityStages lists the stages each class modality admits.
var ModalityStages = map[string]CodeSet{
	"1": union(EarlyChildhoodStages, ElementaryStages, HighSchoolStages, codeSet("56")),
	"2": union(EarlyChildhoodStages, ElementaryStages, HighSchoolStages, EJAStages, codeSet("56")),
	"3": EJAStages,
	"4": codeSet("30", "31", "32", "33", "34", "39", "40", "64", "68", "73", "74"),
}

// DefaultStages is the built-in stage table used when no reference store is configured.
var DefaultStages = union(EarlyChildhoodStages, ElementaryStages, HighSchoolStages, ProfessionalStages, EJAStages, codeSet("56"))

// KnowledgeAreaNames are the knowledge areas indexed by code.
var KnowledgeAreaNames = [KnowledgeAreaCount + 1]string{
	1:  "chemistry",
	2:  "physics",
	3:  "mathematics",
	4:  "biology",
	5:  "sciences",
	6:  "portuguese",
	7:  "english",
	8:  "spanish",
	9:  "other_foreign_language",
	10: "arts",
	11: "physical_education",
	12: "history",
	13: "geography",
	14: "philosophy",
	15: "computing",
	16: "professional_areas",
	17: "libras",
	18: "pedagogical_subjects",
	19: "religious_education",
	20: "indigenous_language",
	21: "sociology",
	22: "other_areas",
}

// CodeSet is an immutable set of string codes.
type CodeSet map[string]struct{}

// Has reports whether code is in the set.
func (s CodeSet) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// Codes returns the members in no particular order.
func (s CodeSet) Codes() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

func codeSet(codes ...string) CodeSet {
	s := make(CodeSet, len(codes))
	for _, c := range codes {
		s[c] = struct{}{}
	}
	return s
}

func union(sets ...CodeSet) CodeSet {
	out := CodeSet{}
	for _, s := range sets {
		for c := range s {
			out[c] = struct{}{}
		}
	}
	return out
}
