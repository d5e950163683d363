package rules

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/oyurisousa/validador-censo-sub000/internal/censotest"
	censoErrors "github.com/oyurisousa/validador-censo-sub000/pkg/censo/errors"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestEvaluator() *Evaluator {
	return NewEvaluator().
		WithReferenceYear(2025).
		WithClock(func() time.Time { return fixedNow }).
		WithLookup(reference.NewDefaultMemoryStore())
}

func ruleNames(errs []censoErrors.ValidationError) []string {
	names := make([]string, 0, len(errs))
	for _, e := range errs {
		names = append(names, e.RuleName)
	}
	return names
}

type ruleCase struct {
	name      string
	overrides []censotest.Override
	want      []string
}

func runCases(t *testing.T, rt layout.RecordType, tests []ruleCase) {
	t.Helper()
	e := newTestEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := censotest.Fields(rt, tt.overrides...)
			got := ruleNames(e.Validate(context.Background(), rt, fields, 1))
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rules = %v, want %v", got, tt.want)
			}
		})
	}
}

func set(p int, v string) censotest.Override { return censotest.Set(p, v) }

func TestFixturesAreClean(t *testing.T) {
	e := newTestEvaluator()
	for _, rt := range layout.RecordTypes() {
		t.Run(rt.Name(), func(t *testing.T) {
			errs := e.Validate(context.Background(), rt, censotest.Fields(rt), 1)
			if len(errs) != 0 {
				t.Errorf("fixture for %s is not clean: %v", rt, errs)
			}
		})
	}
}

func TestValidate_Structure(t *testing.T) {
	e := newTestEvaluator()

	t.Run("wrong field count", func(t *testing.T) {
		errs := e.Validate(context.Background(), layout.ManagerBond, []string{"40", "12345678"}, 7)
		if len(errs) != 1 || errs[0].RuleName != censoErrors.RuleInvalidFieldCount {
			t.Fatalf("errors = %v, want one invalid_field_count", errs)
		}
		if errs[0].LineNumber != 7 {
			t.Errorf("LineNumber = %d, want 7", errs[0].LineNumber)
		}
	})

	t.Run("unknown record type", func(t *testing.T) {
		errs := e.Validate(context.Background(), layout.Unrecognized, []string{"77", "x"}, 3)
		if len(errs) != 1 || errs[0].RuleName != censoErrors.RuleInvalidRecordType {
			t.Fatalf("errors = %v, want one invalid_record_type", errs)
		}
	})

	t.Run("diagnostics carry field metadata", func(t *testing.T) {
		fields := censotest.Fields(layout.Person, set(layout.PersonCPF, "52998224724"))
		errs := e.Validate(context.Background(), layout.Person, fields, 12)
		if len(errs) != 1 {
			t.Fatalf("errors = %v, want one", errs)
		}
		got := errs[0]
		if got.FieldPosition != layout.PersonCPF || got.FieldName != "cpf" || got.FieldValue != "52998224724" {
			t.Errorf("diagnostic = %+v", got)
		}
		if got.Category != censoErrors.CategoryBusiness || got.Severity != censoErrors.SeverityError {
			t.Errorf("category/severity = %s/%s", got.Category, got.Severity)
		}
	})
}

// Every conditional field is required when its condition holds and, unless
// optional otherwise, rejected when it does not.
func TestValidate_ConditionalFields(t *testing.T) {
	e := newTestEvaluator()
	for _, rt := range layout.RecordTypes() {
		for _, r := range layout.FieldsFor(rt) {
			if r.When == nil {
				continue
			}
			r := r
			index, andIndex := r.When.Indices()

			t.Run(rt.Name()+"/"+r.Name+"/holds", func(t *testing.T) {
				fields := censotest.Fields(rt)
				fields[index] = r.When.In[0]
				if andIndex >= 0 {
					fields[andIndex] = r.When.AndIn[0]
				}
				fields[r.Index()] = ""
				if !hasRuleAt(e.Validate(context.Background(), rt, fields, 1), r.Position, censoErrors.RuleRequiredField) {
					t.Errorf("%s empty while %s: no required_field", r.Name, r.When)
				}
			})

			if r.OptionalOtherwise {
				continue
			}
			t.Run(rt.Name()+"/"+r.Name+"/does not hold", func(t *testing.T) {
				fields := censotest.Fields(rt)
				fields[index] = ""
				fields[r.Index()] = "1"
				if !hasRuleAt(e.Validate(context.Background(), rt, fields, 1), r.Position, censoErrors.RuleConditionalNotAllowed) {
					t.Errorf("%s set while not %s: no conditional_not_allowed", r.Name, r.When)
				}
			})
		}
	}
}

func hasRuleAt(errs []censoErrors.ValidationError, position int, rule string) bool {
	for _, e := range errs {
		if e.FieldPosition == position && e.RuleName == rule {
			return true
		}
	}
	return false
}

func TestSchoolRules(t *testing.T) {
	private := []censotest.Override{
		set(layout.SchoolAdministrativeDependency, layout.DependencyPrivate),
		set(layout.SchoolMaintainerCompany, "1"),
		set(layout.SchoolMaintainerUnion, "0"),
		set(layout.SchoolMaintainerNGO, "0"),
		set(layout.SchoolMaintainerNonProfit, "0"),
		set(layout.SchoolMaintainerSystemS, "0"),
		set(layout.SchoolMaintainerOSCIP, "0"),
		set(layout.SchoolPrivateCategory, "1"),
		set(layout.SchoolMaintainerCNPJ, "11222333000181"),
		set(layout.SchoolAgencyEducation, ""),
		set(layout.SchoolAgencySecurity, ""),
		set(layout.SchoolAgencyHealth, ""),
		set(layout.SchoolAgencyOther, ""),
	}
	with := func(base []censotest.Override, extra ...censotest.Override) []censotest.Override {
		return append(append([]censotest.Override{}, base...), extra...)
	}

	runCases(t, layout.School, []ruleCase{
		{"end before start", []censotest.Override{set(layout.SchoolYearEnd, "01/02/2025")}, []string{RuleSchoolYearEndBeforeStart}},
		{"start outside reference year", []censotest.Override{set(layout.SchoolYearStart, "03/02/2024")}, []string{RuleSchoolYearStartOutOfRange}},
		{"end two years later", []censotest.Override{set(layout.SchoolYearEnd, "10/01/2027")}, []string{RuleSchoolYearEndOutOfRange}},
		{"phone without area code", []censotest.Override{set(layout.SchoolAreaCode, "")}, []string{RuleAreaCodeRequired}},
		{"area code without phone", []censotest.Override{set(layout.SchoolPhone, "")}, []string{RuleAreaCodeNotAllowed}},
		{"same phone twice", []censotest.Override{set(layout.SchoolOtherPhone, "33334444")}, []string{RuleDuplicatePhone}},
		{"private school", private, nil},
		{"private without maintainer", with(private, set(layout.SchoolMaintainerCompany, "0")), []string{RulePrivateMaintainerRequired}},
		{"private maintainer missing", with(private, set(layout.SchoolMaintainerOSCIP, "")), []string{RulePrivateMaintainerRequired}},
		{"invalid maintainer cnpj", with(private, set(layout.SchoolMaintainerCNPJ, "11222333000180")), []string{RuleInvalidCNPJ}},
		{"invalid school cnpj", []censotest.Override{set(layout.SchoolCNPJ, "11222333000191")}, []string{RuleInvalidCNPJ}},
		{"public school with maintainer", []censotest.Override{set(layout.SchoolMaintainerNGO, "1")}, []string{RulePrivateMaintainerNotAllowed}},
		{"public school agreement", []censotest.Override{set(layout.SchoolPublicAgreement, "1")}, []string{RulePublicAgreementNotAllowed}},
		{"private school agency", with(private, set(layout.SchoolAgencyHealth, "1")), []string{RulePublicAgencyNotAllowed}},
		{"no public agency", []censotest.Override{set(layout.SchoolAgencyEducation, "0")}, []string{RulePublicAgencyRequired}},
		{"public agency missing", []censotest.Override{set(layout.SchoolAgencyEducation, "")}, []string{RulePublicAgencyRequired}},
		{"no regulatory sphere", []censotest.Override{set(layout.SchoolSphereState, "0")}, []string{RuleRegulatorySphereRequired}},
		{"host school is itself", []censotest.Override{
			set(layout.SchoolLinkedUnit, "1"),
			set(layout.SchoolHostSchoolCode, censotest.SchoolCode),
		}, []string{RuleHostSchoolSameAsSchool}},
		{"host school without link", []censotest.Override{set(layout.SchoolHostSchoolCode, "87654321")}, []string{censoErrors.RuleConditionalNotAllowed}},
	})
}

func TestCharacterizationRules(t *testing.T) {
	indigenous := func(extra ...censotest.Override) []censotest.Override {
		return append([]censotest.Override{
			set(layout.CharIndigenousEducation, "1"),
			set(layout.CharLanguageIndigenous, "1"),
			set(layout.CharLanguagePortuguese, "0"),
		}, extra...)
	}

	runCases(t, layout.Characterization, []ruleCase{
		{"no water supply", []censotest.Override{set(layout.CharWaterPublicNetwork, "0")}, []string{"water_supply_required"}},
		{"water none with supply", []censotest.Override{set(layout.CharWaterNone, "1")}, []string{"water_supply_none_exclusive"}},
		{"no operating location", []censotest.Override{
			set(layout.CharBuildingLocation, "0"),
			set(layout.CharBuildingOccupancy, ""),
			set(layout.CharSharedBuilding, ""),
			set(layout.CharClassroomsInside, ""),
			set(layout.CharClassroomsOutside, ""),
		}, []string{"operating_location_required"}},
		{"shared building without schools", []censotest.Override{set(layout.CharSharedBuilding, "1")}, []string{RuleSharedSchoolCodeRequired}},
		{"schools without shared building", []censotest.Override{set(layout.CharSharedSchool1, "87654321")}, []string{RuleSharedSchoolCodeNotAllowed}},
		{"shared school repeated", []censotest.Override{
			set(layout.CharSharedBuilding, "1"),
			set(layout.CharSharedSchool1, "87654321"),
			set(layout.CharSharedSchool2, "87654321"),
		}, []string{RuleDuplicateSharedSchoolCode}},
		{"shares with itself", []censotest.Override{
			set(layout.CharSharedBuilding, "1"),
			set(layout.CharSharedSchool1, censotest.SchoolCode),
		}, []string{RuleSharedSchoolCodeSameAsSchool}},
		{"no classrooms", []censotest.Override{set(layout.CharClassroomsInside, "0")}, []string{RuleClassroomsTotalZero}},
		{"air conditioned exceeds total", []censotest.Override{set(layout.CharClassroomsAirConditioned, "11")}, []string{RuleClassroomsAirConditionedExceedsTotal}},
		{"accessible exceeds total", []censotest.Override{set(layout.CharClassroomsAccessible, "11")}, []string{RuleClassroomsAccessibleExceedsTotal}},
		{"outside classrooms count", []censotest.Override{set(layout.CharClassroomsOutside, "2"), set(layout.CharClassroomsAccessible, "12")}, nil},
		{"computers without student devices", []censotest.Override{set(layout.CharStudentDesktops, "")}, []string{RuleStudentComputersRequired}},
		{"student devices without computers", []censotest.Override{
			set(layout.CharEquipmentComputers, "0"),
			set(layout.CharEquipmentCopier, "1"),
		}, []string{RuleStudentComputersNotAllowed}},
		{"student internet without device", []censotest.Override{
			set(layout.CharInternetStudents, "1"),
			set(layout.CharDeviceSchoolComputers, "0"),
			set(layout.CharDevicePersonal, "0"),
		}, []string{RuleStudentInternetDeviceRequired}},
		{"no staff with counts", []censotest.Override{set(layout.CharStaffNone, "1")}, []string{RuleStaffNoneExclusive}},
		{"no staff counts", []censotest.Override{set(layout.CharStaffAdministrative, "")}, []string{RuleStaffCountRequired}},
		{"zero staff count", []censotest.Override{set(layout.CharStaffAdministrative, "0")}, []string{RuleStaffCountZero}},
		{"indigenous language without code", indigenous(), []string{RuleIndigenousLanguageCodeRequired}},
		{"indigenous language with code", indigenous(set(layout.CharIndigenousLanguage1, "123")), nil},
		{"indigenous language repeated", indigenous(
			set(layout.CharIndigenousLanguage1, "123"),
			set(layout.CharIndigenousLanguage2, "123"),
		), []string{RuleDuplicateIndigenousLanguage}},
		{"indigenous without teaching language", []censotest.Override{
			set(layout.CharIndigenousEducation, "1"),
			set(layout.CharLanguageIndigenous, "0"),
			set(layout.CharLanguagePortuguese, "0"),
		}, []string{RuleTeachingLanguageRequired}},
		{"language code outside indigenous education", []censotest.Override{set(layout.CharIndigenousLanguage1, "123")}, []string{RuleIndigenousLanguageCodeNotAllowed}},
		{"selection exam without reserved places", []censotest.Override{
			set(layout.CharSelectionExam, "1"),
			set(layout.CharQuotaEthnic, "0"),
			set(layout.CharQuotaIncome, "0"),
			set(layout.CharQuotaPublicSchool, "0"),
			set(layout.CharQuotaDisability, "0"),
			set(layout.CharQuotaOther, "0"),
			set(layout.CharQuotaNone, "0"),
		}, []string{"reserved_places_required"}},
	})
}

func TestClassRules(t *testing.T) {
	complementary := func(extra ...censotest.Override) []censotest.Override {
		o := []censotest.Override{
			set(layout.ClassTypeSchooling, "0"),
			set(layout.ClassTypeComplementary, "1"),
			set(layout.ClassStructureGeneralBasic, ""),
			set(layout.ClassStructureFormativeItinerary, ""),
			set(layout.ClassStructureNotApplicable, ""),
			set(layout.ClassModality, ""),
			set(layout.ClassStage, ""),
			set(layout.ClassActivity1, "11002"),
		}
		for p := layout.ClassArea1; p <= layout.ClassArea22; p++ {
			o = append(o, set(p, ""))
		}
		return append(o, extra...)
	}
	distance := []censotest.Override{
		set(layout.ClassMediation, layout.MediationDistance),
		set(layout.ClassStartHour, ""),
		set(layout.ClassStartMinute, ""),
		set(layout.ClassEndHour, ""),
		set(layout.ClassEndMinute, ""),
	}
	for _, p := range layout.WeekdayPositions {
		distance = append(distance, set(p, ""))
	}
	earlyChildhood := []censotest.Override{set(layout.ClassStage, "1")}
	for p := layout.ClassArea1; p <= layout.ClassArea22; p++ {
		earlyChildhood = append(earlyChildhood, set(p, ""))
	}

	noWeekdays := make([]censotest.Override, 0, len(layout.WeekdayPositions))
	for _, p := range layout.WeekdayPositions {
		noWeekdays = append(noWeekdays, set(p, "0"))
	}

	runCases(t, layout.Class, []ruleCase{
		{"no weekday", noWeekdays, []string{RuleWeekdayRequired}},
		{"ends before it starts", []censotest.Override{set(layout.ClassEndHour, "07"), set(layout.ClassEndMinute, "00")}, []string{RuleClassScheduleInvalid}},
		{"complementary activity class", complementary(), nil},
		{"complementary activity repeated", complementary(set(layout.ClassActivity2, "11002")), []string{RuleDuplicateComplementaryActivity}},
		{"no class type", complementary(set(layout.ClassTypeComplementary, "0"), set(layout.ClassActivity1, "")), []string{RuleClassTypeRequired}},
		{"aee with schooling", []censotest.Override{set(layout.ClassTypeAEE, "1")}, []string{RuleAEEClassExclusive}},
		{"distance complementary class", complementary(distance...), []string{RuleDistanceClassTypeNotAllowed}},
		{"activity on a schooling class", []censotest.Override{set(layout.ClassActivity2, "11002")}, []string{RuleComplementaryActivityNotAllowed}},
		{"no curricular structure", []censotest.Override{set(layout.ClassStructureGeneralBasic, "0")}, []string{RuleCurricularStructureRequired}},
		{"not applicable with structure", []censotest.Override{set(layout.ClassStructureNotApplicable, "1")}, []string{RuleStructureNotApplicableExclusive}},
		{"professional stage without course", []censotest.Override{set(layout.ClassStage, "30")}, []string{RuleProfessionalCourseRequired}},
		{"professional stage with course", []censotest.Override{set(layout.ClassStage, "30"), set(layout.ClassProfessionalCourse, "12345")}, nil},
		{"course outside professional stage", []censotest.Override{set(layout.ClassProfessionalCourse, "12345")}, []string{RuleProfessionalCourseNotAllowed}},
		{"stage outside modality", []censotest.Override{set(layout.ClassModality, "3")}, []string{RuleStageModalityIncompatible}},
		{"no knowledge area offered", []censotest.Override{set(layout.ClassArea3, "0"), set(layout.ClassArea6, "0")}, []string{RuleKnowledgeAreaOfferingRequired}},
		{"area offered without teacher", []censotest.Override{set(layout.ClassArea3, "0"), set(layout.ClassArea6, "2")}, nil},
		{"area offering missing", []censotest.Override{set(layout.ClassArea22, "")}, []string{RuleKnowledgeAreaOfferingRequired}},
		{"early childhood class", earlyChildhood, nil},
		{"early childhood with area", append(earlyChildhood, set(layout.ClassArea1, "0")), []string{RuleKnowledgeAreaOfferingNotAllowed}},
	})
}

func TestPersonRules(t *testing.T) {
	higher := func(extra ...censotest.Override) []censotest.Override {
		return append([]censotest.Override{
			set(layout.PersonSchooling, layout.SchoolingHigherEducation),
			set(layout.PersonCourse1Code, "145F01"),
			set(layout.PersonCourse1Year, "2010"),
			set(layout.PersonCourse1Institution, "123"),
			set(layout.PersonPostgraduateSpecialization, "1"),
			set(layout.PersonPostgraduateMasters, "0"),
			set(layout.PersonPostgraduateDoctorate, "0"),
			set(layout.PersonPostgraduateNone, "0"),
		}, extra...)
	}
	disability := func(extra ...censotest.Override) []censotest.Override {
		o := []censotest.Override{set(layout.PersonDisability, "1")}
		for _, p := range layout.DisabilityGroup.Positions() {
			o = append(o, set(p, "0"))
		}
		return append(o, extra...)
	}

	runCases(t, layout.Person, []ruleCase{
		{"invalid cpf", []censotest.Override{set(layout.PersonCPF, "52998224724")}, []string{RuleInvalidCPF}},
		{"repeated characters", []censotest.Override{set(layout.PersonName, "MARIAAAA SILVA")}, []string{RuleNameRepeatedCharacters}},
		{"single word name", []censotest.Override{set(layout.PersonName, "MARIA")}, []string{RuleNameSingleWord}},
		{"born in the future", []censotest.Override{set(layout.PersonBirthDate, "15/03/2030")}, []string{RuleBirthDateInFuture}},
		{"born too long ago", []censotest.Override{set(layout.PersonBirthDate, "15/03/1900")}, []string{RuleBirthDateTooOld}},
		{"parentage without names", []censotest.Override{set(layout.PersonParent1, "")}, []string{RuleParentNameRequired}},
		{"names without parentage", []censotest.Override{set(layout.PersonParentage, "0")}, []string{RuleParentNameNotAllowed}},
		{"same parent twice", []censotest.Override{set(layout.PersonParent2, "ANA DA SILVA")}, []string{RuleDuplicateParentName}},
		{"parent is the person", []censotest.Override{set(layout.PersonParent1, "MARIA DA SILVA")}, []string{RuleParentNameSameAsPerson}},
		{"foreigner with brazilian country", []censotest.Override{
			set(layout.PersonNationality, layout.NationalityForeign),
			set(layout.PersonBirthMunicipality, ""),
		}, []string{RuleNationalityCountryMismatch}},
		{"foreigner", []censotest.Override{
			set(layout.PersonNationality, layout.NationalityForeign),
			set(layout.PersonCountry, "032"),
			set(layout.PersonBirthMunicipality, ""),
		}, nil},
		{"disability without type", disability(), []string{RuleDisabilityTypeRequired}},
		{"blindness and low vision", disability(
			set(layout.PersonDisabilityBlindness, "1"),
			set(layout.PersonDisabilityLowVision, "1"),
		), []string{RuleDisabilityTypesIncompatible}},
		{"resource without disability", []censotest.Override{set(layout.PersonResourceReader, "1")}, []string{RuleExamResourceNotAllowed}},
		{"no resource with resource", disability(
			set(layout.PersonDisabilityBlindness, "1"),
			set(layout.PersonResourceReader, "1"),
			set(layout.PersonResourceNone, "1"),
		), []string{"exam_resources_none_exclusive"}},
		{"braille without visual disability", disability(
			set(layout.PersonDisabilityLowVision, "1"),
			set(layout.PersonResourceBraille, "1"),
		), []string{RuleResourceIncompatibleDisability}},
		{"enlarged font for blindness", disability(
			set(layout.PersonDisabilityBlindness, "1"),
			set(layout.PersonResourceFont18, "1"),
		), []string{RuleResourceIncompatibleDisability}},
		{"libras without hearing disability", disability(
			set(layout.PersonDisabilityPhysical, "1"),
			set(layout.PersonResourceLibrasInterpreter, "1"),
		), []string{RuleResourceIncompatibleDisability}},
		{"both enlarged fonts", disability(
			set(layout.PersonDisabilityLowVision, "1"),
			set(layout.PersonResourceFont18, "1"),
			set(layout.PersonResourceFont24, "1"),
		), []string{RuleEnlargedFontExclusive}},
		{"residence location missing", []censotest.Override{set(layout.PersonResidenceLocation, "")}, []string{censoErrors.RuleRequiredField}},
		{"residence location abroad", []censotest.Override{
			set(layout.PersonResidenceCountry, "840"),
			set(layout.PersonResidenceCEP, ""),
			set(layout.PersonResidenceMunicipality, ""),
			set(layout.PersonResidenceZone, ""),
		}, nil},
		{"cep abroad", []censotest.Override{
			set(layout.PersonResidenceCountry, "840"),
			set(layout.PersonResidenceMunicipality, ""),
			set(layout.PersonResidenceZone, ""),
		}, []string{RuleResidenceCEPNotAllowed}},
		{"higher education", higher(), nil},
		{"course without year", higher(set(layout.PersonCourse1Year, "")), []string{RuleCourseYearRequired}},
		{"course without institution", higher(set(layout.PersonCourse1Institution, "")), []string{RuleCourseInstitutionRequired}},
		{"course year too old", higher(set(layout.PersonCourse1Year, "1900")), []string{RuleCourseYearOutOfRange}},
		{"course year in the future", higher(set(layout.PersonCourse1Year, "2030")), []string{RuleCourseYearOutOfRange}},
		{"same course twice", higher(
			set(layout.PersonCourse2Code, "145F01"),
			set(layout.PersonCourse2Year, "2012"),
			set(layout.PersonCourse2Institution, "123"),
		), []string{RuleDuplicateCourse}},
		{"no postgraduate option", higher(set(layout.PersonPostgraduateSpecialization, "0")), []string{"postgraduate_required"}},
		{"no postgraduate with postgraduate", higher(set(layout.PersonPostgraduateNone, "1")), []string{"postgraduate_none_exclusive"}},
		{"second course without higher education", []censotest.Override{
			set(layout.PersonSchooling, layout.SchoolingHighSchool),
			set(layout.PersonHighSchoolType, "1"),
			set(layout.PersonCourse2Code, "145F01"),
			set(layout.PersonCourse2Year, "2012"),
			set(layout.PersonCourse2Institution, "123"),
		}, []string{RuleCourseNotAllowed}},
		{"course year without course", []censotest.Override{set(layout.PersonCourse1Year, "2010")}, []string{RuleCourseDataNotAllowed}},
		{"no continuing education with other", []censotest.Override{
			set(layout.PersonContinuingOther, "1"),
			set(layout.PersonContinuingNone, "1"),
		}, []string{"continuing_education_none_exclusive"}},
	})
}

func TestBondRules(t *testing.T) {
	t.Run("professional", func(t *testing.T) {
		runCases(t, layout.ProfessionalBond, []ruleCase{
			{"areas for a non-teaching function", []censotest.Override{
				set(layout.ProfFunction, layout.FunctionAssistant),
				set(layout.ProfArea2, ""),
			}, []string{RuleKnowledgeAreaNotAllowed}},
			{"area repeated", []censotest.Override{set(layout.ProfArea2, "3")}, []string{RuleDuplicateKnowledgeArea}},
			{"unknown area", []censotest.Override{set(layout.ProfArea2, "99")}, []string{censoErrors.RuleInvalidReferenceCode}},
		})
	})

	t.Run("enrollment", func(t *testing.T) {
		o := []censotest.Override{
			set(layout.EnrollPublicTransport, "1"),
			set(layout.EnrollTransportAuthority, "1"),
		}
		for _, p := range layout.VehicleGroup.Positions() {
			o = append(o, set(p, "0"))
		}
		runCases(t, layout.StudentEnrollment, []ruleCase{
			{"transport without vehicle", o, []string{RuleVehicleRequired}},
			{"transport by bus", append(o, set(layout.EnrollVehicleBus, "1")), nil},
		})
	})

	t.Run("situation header", func(t *testing.T) {
		runCases(t, layout.SituationHeader, []ruleCase{
			{"invalid manager cpf", []censotest.Override{set(layout.HeaderManagerCPF, "52998224724")}, []string{RuleInvalidCPF}},
		})
	})

	t.Run("admitted student", func(t *testing.T) {
		runCases(t, layout.AdmittedStudent, []ruleCase{
			{"enrollment code informed", []censotest.Override{set(layout.AdmittedEnrollmentCode, "123")}, []string{RuleEnrollmentCodeNotAllowed}},
			{"stage outside modality", []censotest.Override{set(layout.AdmittedModality, "3")}, []string{RuleStageModalityIncompatible}},
			{"unknown stage", []censotest.Override{set(layout.AdmittedStage, "999")}, []string{RuleStageModalityIncompatible, censoErrors.RuleInvalidReferenceCode}},
		})
	})
}

func TestLookup(t *testing.T) {
	errBackend := errors.New("connection refused")

	tests := []struct {
		name     string
		lookup   reference.LookupFunc
		want     []string
		severity censoErrors.Severity
	}{
		{
			name: "unknown municipality",
			lookup: func(_ context.Context, table reference.Table, _ string) (bool, error) {
				return table != reference.Municipality, nil
			},
			want:     []string{censoErrors.RuleInvalidReferenceCode},
			severity: censoErrors.SeverityError,
		},
		{
			name: "backend failure is a warning",
			lookup: func(_ context.Context, table reference.Table, _ string) (bool, error) {
				if table == reference.Municipality {
					return false, errBackend
				}
				return true, nil
			},
			want:     []string{censoErrors.RuleReferenceLookupFailed},
			severity: censoErrors.SeverityWarning,
		},
		{
			name: "table not loaded is skipped",
			lookup: func(context.Context, reference.Table, string) (bool, error) {
				return false, reference.ErrTableNotLoaded
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEvaluator().WithReferenceYear(2025).WithLookup(tt.lookup)
			errs := e.Validate(context.Background(), layout.School, censotest.Fields(layout.School), 1)
			got := ruleNames(errs)
			if len(tt.want) == 0 {
				if len(got) != 0 {
					t.Fatalf("rules = %v, want none", got)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("rules = %v, want %v", got, tt.want)
			}
			if errs[0].Severity != tt.severity || errs[0].FieldPosition != layout.SchoolMunicipality {
				t.Errorf("diagnostic = %+v", errs[0])
			}
		})
	}
}
