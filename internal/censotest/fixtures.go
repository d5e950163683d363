// Package censotest builds census lines that pass every record-level rule,
// so tests can change one position and observe exactly what it breaks.
package censotest

import (
	"strings"

	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
)

// SchoolCode is the school every fixture belongs to.
const SchoolCode = "12345678"

// Fixture identifiers shared across record types.
const (
	ClassCode      = "T001"
	ClassINEPCode  = "1234567890"
	StudentCode    = "P001"
	StudentINEPID  = "123456789012"
	TeacherCode    = "P002"
	TeacherINEPID  = "123456789013"
	DirectorCode   = "P003"
	DirectorINEPID = "123456789014"
	AdmittedINEPID = "123456789015"
	ValidCPF       = "52998224725"
	OtherValidCPF  = "39053344705"
)

// Override sets one position of a fixture line.
type Override struct {
	Position int
	Value    string
}

// Set is shorthand for an Override.
func Set(position int, value string) Override {
	return Override{Position: position, Value: value}
}

// Fields returns a valid field slice for rt with the overrides applied.
// Required flags default to "0"; everything else not listed below is empty.
func Fields(rt layout.RecordType, overrides ...Override) []string {
	schema, ok := layout.SchemaFor(rt)
	if !ok {
		return nil
	}
	out := make([]string, schema.FieldCount())
	for _, r := range schema.Fields {
		if r.Required && r.Pattern != nil && r.Pattern.String() == "^[01]$" {
			out[r.Index()] = "0"
		}
	}
	out[0] = rt.Code()
	for pos, v := range defaults[rt] {
		out[pos-1] = v
	}
	for _, o := range overrides {
		if o.Position >= 1 && o.Position <= len(out) {
			out[o.Position-1] = o.Value
		}
	}
	return out
}

// Line is Fields joined with the separator.
func Line(rt layout.RecordType, overrides ...Override) string {
	return strings.Join(Fields(rt, overrides...), "|")
}

// File joins lines and appends the 99 terminator.
func File(lines ...string) string {
	return strings.Join(append(lines, "99"), "\n") + "\n"
}

// PhaseOne returns a complete valid phase-one file: school, characterization,
// one class, a student, a teacher and a director with their bonds.
func PhaseOne() []string {
	return []string{
		Line(layout.School),
		Line(layout.Characterization),
		Line(layout.Class),
		Line(layout.Person),
		Line(layout.Person,
			Set(layout.PersonCode, TeacherCode),
			Set(layout.PersonINEPID, TeacherINEPID),
			Set(layout.PersonCPF, OtherValidCPF),
			Set(layout.PersonName, "JOAO PEREIRA"),
			Set(layout.PersonBirthDate, "20/08/1980"),
			Set(layout.PersonSchooling, layout.SchoolingHighSchool),
			Set(layout.PersonHighSchoolType, "2"),
			Set(layout.PersonContinuingOther, "1"),
		),
		Line(layout.Person,
			Set(layout.PersonCode, DirectorCode),
			Set(layout.PersonINEPID, DirectorINEPID),
			Set(layout.PersonCPF, "12345678909"),
			Set(layout.PersonName, "CARLA SOUZA"),
			Set(layout.PersonBirthDate, "02/05/1975"),
			Set(layout.PersonSchooling, layout.SchoolingHighSchool),
			Set(layout.PersonHighSchoolType, "1"),
			Set(layout.PersonContinuingManagement, "1"),
		),
		Line(layout.ManagerBond),
		Line(layout.ProfessionalBond),
		Line(layout.StudentEnrollment),
	}
}

// PhaseTwo returns a complete valid situation file.
func PhaseTwo() []string {
	return []string{
		Line(layout.SituationHeader),
		Line(layout.StudentSituation),
		Line(layout.AdmittedStudent),
	}
}

var defaults = map[layout.RecordType]map[int]string{
	layout.School: {
		layout.SchoolCode:                     SchoolCode,
		layout.SchoolOperatingStatus:          layout.StatusActive,
		layout.SchoolYearStart:                "03/02/2025",
		layout.SchoolYearEnd:                  "19/12/2025",
		layout.SchoolName:                     "ESCOLA ESTADUAL CENTRAL",
		layout.SchoolCEP:                      "01001000",
		layout.SchoolMunicipality:             "3550308",
		layout.SchoolDistrict:                 "05",
		layout.SchoolAddress:                  "RUA DAS FLORES",
		layout.SchoolAddressNumber:            "100",
		layout.SchoolNeighborhood:             "CENTRO",
		layout.SchoolAreaCode:                 "11",
		layout.SchoolPhone:                    "33334444",
		layout.SchoolEmail:                    "escola@example.com",
		layout.SchoolLocationZone:             "1",
		layout.SchoolDifferentiatedLocation:   "7",
		layout.SchoolAdministrativeDependency: layout.DependencyState,
		layout.SchoolRegulation:               "1",
		layout.SchoolSphereFederal:            "0",
		layout.SchoolSphereState:              "1",
		layout.SchoolSphereMunicipal:          "0",
		layout.SchoolLinkedUnit:               "0",
		layout.SchoolAgencyEducation:          "1",
		layout.SchoolAgencySecurity:           "0",
		layout.SchoolAgencyHealth:             "0",
		layout.SchoolAgencyOther:              "0",
	},
	layout.Characterization: {
		layout.CharSchoolCode:               SchoolCode,
		layout.CharBuildingLocation:         "1",
		layout.CharBuildingOccupancy:        "1",
		layout.CharSharedBuilding:           "0",
		layout.CharDrinkingWater:            "1",
		layout.CharWaterPublicNetwork:       "1",
		layout.CharEnergyPublicNetwork:      "1",
		layout.CharSewagePublicNetwork:      "1",
		layout.CharWasteCollection:          "1",
		layout.CharTreatmentSeparation:      "1",
		layout.CharFacilityBathroom:         "1",
		layout.CharAccessibilityRamps:       "1",
		layout.CharClassroomsInside:         "10",
		layout.CharClassroomsOutside:        "0",
		layout.CharClassroomsAirConditioned: "2",
		layout.CharClassroomsAccessible:     "3",
		layout.CharEquipmentComputers:       "1",
		layout.CharStudentDesktops:          "20",
		layout.CharInternetAdministrative:   "1",
		layout.CharInternetTeaching:         "1",
		layout.CharBroadband:                "1",
		layout.CharLocalNetworkWired:        "1",
		layout.CharStaffAdministrative:      "5",
		layout.CharSchoolMeals:              "1",
		layout.CharMaterialMultimedia:       "1",
		layout.CharCollegiateSchoolCouncil:  "1",
		layout.CharPedagogicalProject:       "1",
	},
	layout.Class: {
		layout.ClassSchoolCode:                  SchoolCode,
		layout.ClassCode:                        ClassCode,
		layout.ClassINEPCode:                    ClassINEPCode,
		layout.ClassName:                        "TURMA 1A",
		layout.ClassMediation:                   layout.MediationInPerson,
		layout.ClassStartHour:                   "07",
		layout.ClassStartMinute:                 "30",
		layout.ClassEndHour:                     "12",
		layout.ClassEndMinute:                   "00",
		layout.ClassSunday:                      "0",
		layout.ClassMonday:                      "1",
		layout.ClassTuesday:                     "1",
		layout.ClassWednesday:                   "1",
		layout.ClassThursday:                    "1",
		layout.ClassFriday:                      "1",
		layout.ClassSaturday:                    "0",
		layout.ClassTypeSchooling:               "1",
		layout.ClassStructureGeneralBasic:       "1",
		layout.ClassStructureFormativeItinerary: "0",
		layout.ClassStructureNotApplicable:      "0",
		layout.ClassDifferentiatedLocation:      "0",
		layout.ClassModality:                    "1",
		layout.ClassStage:                       "14",
		layout.ClassArea1:                       "0",
		layout.ClassArea2:                       "0",
		layout.ClassArea3:                       "1",
		layout.ClassArea4:                       "0",
		layout.ClassArea5:                       "0",
		layout.ClassArea6:                       "1",
		layout.ClassArea7:                       "0",
		layout.ClassArea8:                       "0",
		layout.ClassArea9:                       "0",
		layout.ClassArea10:                      "0",
		layout.ClassArea11:                      "0",
		layout.ClassArea12:                      "0",
		layout.ClassArea13:                      "0",
		layout.ClassArea14:                      "0",
		layout.ClassArea15:                      "0",
		layout.ClassArea16:                      "0",
		layout.ClassArea17:                      "0",
		layout.ClassArea18:                      "0",
		layout.ClassArea19:                      "0",
		layout.ClassArea20:                      "0",
		layout.ClassArea21:                      "0",
		layout.ClassArea22:                      "0",
	},
	layout.Person: {
		layout.PersonSchoolCode:            SchoolCode,
		layout.PersonCode:                  StudentCode,
		layout.PersonINEPID:                StudentINEPID,
		layout.PersonCPF:                   ValidCPF,
		layout.PersonName:                  "MARIA DA SILVA",
		layout.PersonBirthDate:             "15/03/2015",
		layout.PersonParentage:             "1",
		layout.PersonParent1:               "ANA DA SILVA",
		layout.PersonSex:                   "2",
		layout.PersonRace:                  "3",
		layout.PersonNationality:           layout.NationalityBrazilian,
		layout.PersonCountry:               layout.CountryBrazil,
		layout.PersonBirthMunicipality:     "3550308",
		layout.PersonResidenceCountry:      layout.CountryBrazil,
		layout.PersonResidenceCEP:          "01001000",
		layout.PersonResidenceMunicipality: "3550308",
		layout.PersonResidenceZone:         "1",
		layout.PersonResidenceLocation:     "8",
	},
	layout.ManagerBond: {
		layout.ManagerSchoolCode:       SchoolCode,
		layout.ManagerPersonCode:       DirectorCode,
		layout.ManagerINEPID:           DirectorINEPID,
		layout.ManagerRole:             layout.RoleDirector,
		layout.ManagerAccessCriteria:   "4",
		layout.ManagerFunctionalStatus: "1",
	},
	layout.ProfessionalBond: {
		layout.ProfSchoolCode:       SchoolCode,
		layout.ProfPersonCode:       TeacherCode,
		layout.ProfINEPID:           TeacherINEPID,
		layout.ProfClassCode:        ClassCode,
		layout.ProfClassINEPCode:    ClassINEPCode,
		layout.ProfFunction:         layout.FunctionTeacher,
		layout.ProfFunctionalStatus: "1",
		layout.ProfArea1:            "3",
		layout.ProfArea2:            "6",
	},
	layout.StudentEnrollment: {
		layout.EnrollSchoolCode:         SchoolCode,
		layout.EnrollPersonCode:         StudentCode,
		layout.EnrollINEPID:             StudentINEPID,
		layout.EnrollClassCode:          ClassCode,
		layout.EnrollClassINEPCode:      ClassINEPCode,
		layout.EnrollSchoolingElsewhere: "3",
		layout.EnrollPublicTransport:    "0",
	},
	layout.SituationHeader: {
		layout.HeaderSchoolCode:   SchoolCode,
		layout.HeaderManagerCPF:   ValidCPF,
		layout.HeaderManagerName:  "CARLA SOUZA",
		layout.HeaderManagerRole:  layout.RoleDirector,
		layout.HeaderManagerEmail: "direcao@example.com",
	},
	layout.StudentSituation: {
		layout.SituationSchoolCode:     SchoolCode,
		layout.SituationClassCode:      ClassCode,
		layout.SituationClassINEPCode:  ClassINEPCode,
		layout.SituationStudentINEPID:  StudentINEPID,
		layout.SituationEnrollmentCode: "987654321",
		layout.SituationCode:           layout.SituationApproved,
	},
	layout.AdmittedStudent: {
		layout.AdmittedSchoolCode:    SchoolCode,
		layout.AdmittedClassCode:     ClassCode,
		layout.AdmittedClassINEPCode: ClassINEPCode,
		layout.AdmittedStudentINEPID: AdmittedINEPID,
		layout.AdmittedMediation:     layout.MediationInPerson,
		layout.AdmittedModality:      "1",
		layout.AdmittedStage:         "14",
		layout.AdmittedSituation:     layout.SituationApproved,
	},
}
