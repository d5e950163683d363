package harvest

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"reflect"
	"strings"
	"testing"

	"github.com/oyurisousa/validador-censo-sub000/internal/censotest"
	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
)

func build(t *testing.T, b *Builder, lines ...string) *Contexts {
	t.Helper()
	parsed, _ := record.SplitLines(lines)
	return b.Build(context.Background(), parsed)
}

func TestBuild_PhaseOne(t *testing.T) {
	got := build(t, NewBuilder(), censotest.PhaseOne()...)

	if got.School == nil || got.School.Code != censotest.SchoolCode {
		t.Fatalf("School = %+v", got.School)
	}
	if !got.School.Active() || !got.School.Public() || got.School.Private() {
		t.Errorf("school status/dependency = %s/%s", got.School.OperatingStatus, got.School.AdministrativeDependency)
	}
	if got.SchoolRecords != 1 || got.CharacterizationRecords != 1 {
		t.Errorf("SchoolRecords=%d CharacterizationRecords=%d", got.SchoolRecords, got.CharacterizationRecords)
	}
	if len(got.Persons) != 3 || len(got.Classes) != 1 {
		t.Fatalf("persons=%d classes=%d", len(got.Persons), len(got.Classes))
	}
	if !got.HasDirector {
		t.Error("HasDirector = false")
	}
	if len(got.Diagnostics) != 0 {
		t.Errorf("Diagnostics = %v", got.Diagnostics)
	}

	student, _ := got.Person(censotest.StudentCode)
	if student.Staff || !reflect.DeepEqual(student.EnrolledClassCodes, []string{censotest.ClassCode}) {
		t.Errorf("student = %+v", student)
	}
	if !student.EnrolledIn(censotest.ClassCode) || student.EnrolledIn("T999") {
		t.Error("EnrolledIn")
	}
	for _, code := range []string{censotest.TeacherCode, censotest.DirectorCode} {
		if p, _ := got.Person(code); !p.Staff {
			t.Errorf("person %s is not marked as staff", code)
		}
	}

	class, ok := got.Class(censotest.ClassCode)
	if !ok {
		t.Fatal("class not harvested")
	}
	if !class.IsRegular || !class.InPerson() || class.Professional() || class.EarlyChildhood() {
		t.Errorf("class = %+v", class)
	}
	if class.Offering(3) != "1" || class.Offering(1) != "0" || class.Offering(23) != "" {
		t.Errorf("offerings = %v", class.SubjectAreaOfferings)
	}
}

// Entity lines may come after the bonds that reference them.
func TestBuild_OrderIndependent(t *testing.T) {
	lines := censotest.PhaseOne()
	reversed := make([]string, len(lines))
	for i, l := range lines {
		reversed[len(lines)-1-i] = l
	}

	a := build(t, NewBuilder(), lines...)
	b := build(t, NewBuilder(), reversed...)

	if a.School.Code != b.School.Code || a.HasDirector != b.HasDirector {
		t.Fatal("school context differs")
	}
	for code, pa := range a.Persons {
		pb, ok := b.Persons[code]
		if !ok {
			t.Fatalf("person %s missing", code)
		}
		if pa.Staff != pb.Staff || !reflect.DeepEqual(pa.EnrolledClassCodes, pb.EnrolledClassCodes) {
			t.Errorf("person %s: %+v vs %+v", code, pa, pb)
		}
	}
	for code := range a.Classes {
		if _, ok := b.Classes[code]; !ok {
			t.Errorf("class %s missing", code)
		}
	}
}

func TestBuild_DuplicateCodes(t *testing.T) {
	got := build(t, NewBuilder(),
		censotest.Line(layout.School),
		censotest.Line(layout.Class),
		censotest.Line(layout.Person),
		censotest.Line(layout.Person, censotest.Set(layout.PersonName, "OUTRA PESSOA")),
		censotest.Line(layout.Class, censotest.Set(layout.ClassName, "TURMA 2B")),
	)

	if len(got.Diagnostics) != 2 {
		t.Fatalf("Diagnostics = %v", got.Diagnostics)
	}
	want := []struct {
		line int
		rule string
	}{
		{4, censoErrors.RuleDuplicatePersonCode},
		{5, censoErrors.RuleDuplicateClassCode},
	}
	for i, w := range want {
		d := got.Diagnostics[i]
		if d.LineNumber != w.line || d.RuleName != w.rule || !d.IsError() {
			t.Errorf("diagnostic %d = %+v, want line %d %s", i, d, w.line, w.rule)
		}
	}
	if p, _ := got.Person(censotest.StudentCode); p.Line != 3 {
		t.Errorf("person kept line %d, want the first (3)", p.Line)
	}
	if c, _ := got.Class(censotest.ClassCode); c.Line != 2 {
		t.Errorf("class kept line %d, want the first (2)", c.Line)
	}
}

func TestBuild_MultipleSchools(t *testing.T) {
	lines := []string{
		censotest.Line(layout.School),
		censotest.Line(layout.School, censotest.Set(layout.SchoolCode, "87654321")),
	}

	tests := []struct {
		policy SchoolPolicy
		want   string
	}{
		{LastWins, "87654321"},
		{FirstWins, censotest.SchoolCode},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			got := build(t, NewBuilder().WithSchoolPolicy(tt.policy), lines...)
			if got.School.Code != tt.want {
				t.Errorf("School.Code = %s, want %s", got.School.Code, tt.want)
			}
			if got.SchoolRecords != 2 {
				t.Errorf("SchoolRecords = %d", got.SchoolRecords)
			}
			if len(got.Diagnostics) != 1 {
				t.Fatalf("Diagnostics = %v", got.Diagnostics)
			}
			d := got.Diagnostics[0]
			if d.RuleName != censoErrors.RuleMultipleSchoolRecords || d.Severity != censoErrors.SeverityWarning || d.LineNumber != 2 {
				t.Errorf("diagnostic = %+v", d)
			}
		})
	}
}

func TestBuild_SkipsMalformedLines(t *testing.T) {
	got := build(t, NewBuilder(),
		"00|12345678|1",
		"XX|whatever",
		censotest.Line(layout.Person),
	)
	if got.School != nil {
		t.Errorf("School = %+v, want nil for a short line", got.School)
	}
	if got.SchoolRecords != 1 {
		t.Errorf("SchoolRecords = %d, want 1", got.SchoolRecords)
	}
	if len(got.Persons) != 1 {
		t.Errorf("persons = %d", len(got.Persons))
	}
}

func TestBuild_PhaseTwo(t *testing.T) {
	got := build(t, NewBuilder(), censotest.PhaseTwo()...)
	if got.Header == nil || got.Header.SchoolCode != censotest.SchoolCode || got.Header.Line != 1 {
		t.Fatalf("Header = %+v", got.Header)
	}
	if line := got.SituationStudents[censotest.StudentINEPID]; line != 2 {
		t.Errorf("SituationStudents = %v", got.SituationStudents)
	}
	adm, ok := got.AdmittedClasses[censotest.ClassCode]
	if !ok || adm.Line != 3 || adm.Stage != "14" {
		t.Errorf("AdmittedClasses = %+v", got.AdmittedClasses)
	}
}

func TestParseSchoolPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    SchoolPolicy
		wantErr bool
	}{
		{"", LastWins, false},
		{"last_wins", LastWins, false},
		{"first_wins", FirstWins, false},
		{"random", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseSchoolPolicy(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

type failingVisitor struct {
	record.Visitor
}

func (failingVisitor) VisitSchool(*record.School) error { return errors.New("school unavailable") }

func TestBuilder_VisitLogsErrors(t *testing.T) {
	var buf bytes.Buffer
	b := NewBuilder().WithLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	parsed, _ := record.SplitLines([]string{censotest.Line(layout.School)})
	rec, ok := record.New(parsed[0])
	if !ok {
		t.Fatal("school line did not build a record")
	}
	b.visit(context.Background(), rec, failingVisitor{})

	out := buf.String()
	for _, want := range []string{"level=WARN", "line=1", "record_type=00", "school unavailable"} {
		if !strings.Contains(out, want) {
			t.Errorf("log %q does not contain %q", out, want)
		}
	}
}
