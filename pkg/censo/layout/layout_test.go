package layout

import (
	"testing"
)

func TestFieldCount(t *testing.T) {
	tests := []struct {
		rt   RecordType
		want int
	}{
		{School, 42},
		{Characterization, 172},
		{Class, 56},
		{Person, 77},
		{ManagerBond, 7},
		{ProfessionalBond, 23},
		{StudentEnrollment, 38},
		{SituationHeader, 6},
		{StudentSituation, 7},
		{AdmittedStudent, 10},
		{FileEnd, 1},
		{Unrecognized, 0},
	}

	for _, tt := range tests {
		t.Run(tt.rt.Name(), func(t *testing.T) {
			if got := FieldCount(tt.rt); got != tt.want {
				t.Errorf("FieldCount(%s) = %d, want %d", tt.rt, got, tt.want)
			}
		})
	}
}

func TestParseRecordType(t *testing.T) {
	for _, rt := range RecordTypes() {
		got, ok := ParseRecordType(rt.Code())
		if !ok || got != rt {
			t.Errorf("ParseRecordType(%q) = %v, %v; want %v", rt.Code(), got, ok, rt)
		}
	}

	for _, code := range []string{"", "0", "01", "100", "ab", " 00"} {
		if _, ok := ParseRecordType(code); ok {
			t.Errorf("ParseRecordType(%q) should fail", code)
		}
	}
}

func TestRecordTypePhase(t *testing.T) {
	tests := []struct {
		rt   RecordType
		want Phase
	}{
		{School, PhaseInitial},
		{StudentEnrollment, PhaseInitial},
		{SituationHeader, PhaseSituation},
		{AdmittedStudent, PhaseSituation},
		{FileEnd, PhaseNone},
		{Unrecognized, PhaseNone},
	}
	for _, tt := range tests {
		if got := tt.rt.Phase(); got != tt.want {
			t.Errorf("%s.Phase() = %q, want %q", tt.rt, got, tt.want)
		}
	}
}

func TestSchemasAreConsistent(t *testing.T) {
	for _, rt := range RecordTypes() {
		t.Run(rt.Name(), func(t *testing.T) {
			s, ok := SchemaFor(rt)
			if !ok {
				t.Fatalf("no schema for %s", rt)
			}
			if s.Type != rt {
				t.Errorf("schema type = %s, want %s", s.Type, rt)
			}
			rt0, _ := s.Field(1)
			if rt0.Name != "record_type" || !rt0.Required {
				t.Errorf("position 1 = %+v, want required record_type", rt0)
			}
			if !rt0.Pattern.MatchString(rt.Code()) {
				t.Errorf("record_type pattern does not accept %q", rt.Code())
			}
			for i, r := range s.Fields {
				if r.Position != i+1 {
					t.Errorf("field %q position = %d, want %d", r.Name, r.Position, i+1)
				}
				if r.Description == "" {
					t.Errorf("field %q has no description", r.Name)
				}
				if r.When == nil {
					continue
				}
				idx, andIdx := r.When.Indices()
				if idx < 0 || idx >= len(s.Fields) {
					t.Errorf("field %q condition index %d out of range", r.Name, idx)
				}
				if s.Fields[idx].Name != r.When.Field {
					t.Errorf("field %q condition resolved to %q, want %q", r.Name, s.Fields[idx].Name, r.When.Field)
				}
				if r.When.AndField != "" && s.Fields[andIdx].Name != r.When.AndField {
					t.Errorf("field %q second clause resolved to %q, want %q", r.Name, s.Fields[andIdx].Name, r.When.AndField)
				}
			}
		})
	}
}

func TestFieldsForReturnsCopy(t *testing.T) {
	rules := FieldsFor(ManagerBond)
	rules[0].Name = "changed"

	if got := FieldName(ManagerBond, 1); got != "record_type" {
		t.Errorf("registry mutated through FieldsFor: position 1 = %q", got)
	}
}

func TestLookup(t *testing.T) {
	s, _ := SchemaFor(ManagerBond)

	r, ok := s.Lookup("access_criteria")
	if !ok {
		t.Fatal("access_criteria not found")
	}
	if r.Position != ManagerAccessCriteria {
		t.Errorf("access_criteria position = %d, want %d", r.Position, ManagerAccessCriteria)
	}
	if _, ok := s.Lookup("does_not_exist"); ok {
		t.Error("Lookup of unknown field should fail")
	}
	if _, ok := s.Field(0); ok {
		t.Error("Field(0) should fail")
	}
	if _, ok := s.Field(8); ok {
		t.Error("Field(8) should fail")
	}
}

func TestConditionalHolds(t *testing.T) {
	s, _ := SchemaFor(School)
	cnpj, _ := s.Field(SchoolMaintainerCNPJ)

	fields := make([]string, s.FieldCount())
	fields[SchoolAdministrativeDependency-1] = DependencyPrivate
	fields[SchoolOperatingStatus-1] = StatusActive

	if !cnpj.When.Holds(fields) {
		t.Error("maintainer_cnpj should be required for an active private school")
	}

	fields[SchoolOperatingStatus-1] = StatusExtinct
	if cnpj.When.Holds(fields) {
		t.Error("maintainer_cnpj should not be required for an extinct school")
	}

	fields[SchoolOperatingStatus-1] = StatusActive
	fields[SchoolAdministrativeDependency-1] = DependencyState
	if cnpj.When.Holds(fields) {
		t.Error("maintainer_cnpj should not be required for a public school")
	}

	if cnpj.When.Holds(nil) {
		t.Error("condition over missing fields should not hold")
	}
}

func TestKnowledgeAreaPosition(t *testing.T) {
	tests := []struct {
		code int
		want int
	}{
		{0, 0},
		{1, ClassArea1},
		{13, ClassArea13},
		{22, ClassArea22},
		{23, 0},
	}
	for _, tt := range tests {
		if got := KnowledgeAreaPosition(tt.code); got != tt.want {
			t.Errorf("KnowledgeAreaPosition(%d) = %d, want %d", tt.code, got, tt.want)
		}
	}
	for code := 1; code <= KnowledgeAreaCount; code++ {
		if KnowledgeAreaNames[code] == "" {
			t.Errorf("knowledge area %d has no name", code)
		}
	}
}

func TestGroupsStayInsideSchema(t *testing.T) {
	groups := map[RecordType][]Group{
		Characterization:  append([]Group{QuotaGroup, StaffGroup}, CharacterizationGroups...),
		Class:             {KnowledgeAreaGroup},
		Person:            {DisabilityGroup, ResourceGroup, PostgraduateGroup, ContinuingEducationGroup},
		ProfessionalBond:  {ProfessionalAreaGroup},
		StudentEnrollment: {AEEServiceGroup, FormativeItineraryGroup, VehicleGroup},
	}
	for rt, gs := range groups {
		n := FieldCount(rt)
		for _, g := range gs {
			if g.First < 2 || g.Last > n || g.First > g.Last {
				t.Errorf("%s group %s has bad range %d..%d", rt, g.Name, g.First, g.Last)
			}
			if g.None != 0 && (g.None <= g.Last || g.None > n) {
				t.Errorf("%s group %s has bad none position %d", rt, g.Name, g.None)
			}
		}
	}
}

func TestMultiStagesAreKnownStages(t *testing.T) {
	for multi, members := range MultiStages {
		if !DefaultStages.Has(multi) {
			t.Errorf("multi-stage %s missing from default stages", multi)
		}
		for _, s := range members.Codes() {
			if !DefaultStages.Has(s) {
				t.Errorf("stage %s (member of %s) missing from default stages", s, multi)
			}
		}
	}
}

func TestParseSchemaVersion(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 2025, false},
		{"2024", 2024, false},
		{"2025", 2025, false},
		{"2019", 0, true},
		{"latest", 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSchemaVersion(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %d, want %d", got, tt.want)
			}
		})
	}
}
