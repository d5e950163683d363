package layout

// Record 20 (Class) field positions.
const (
	ClassRecordType = iota + 1
	ClassSchoolCode
	ClassCode
	ClassINEPCode
	ClassName
	ClassMediation
	ClassStartHour
	ClassStartMinute
	ClassEndHour
	ClassEndMinute
	ClassSunday
	ClassMonday
	ClassTuesday
	ClassWednesday
	ClassThursday
	ClassFriday
	ClassSaturday
	ClassTypeSchooling
	ClassTypeComplementary
	ClassTypeAEE
	ClassStructureGeneralBasic
	ClassStructureFormativeItinerary
	ClassStructureNotApplicable
	ClassActivity1
	ClassActivity2
	ClassActivity3
	ClassActivity4
	ClassActivity5
	ClassActivity6
	ClassDifferentiatedLocation
	ClassModality
	ClassStage
	ClassProfessionalCourse
	ClassProfessionalItinerary
	ClassArea1
	ClassArea2
	ClassArea3
	ClassArea4
	ClassArea5
	ClassArea6
	ClassArea7
	ClassArea8
	ClassArea9
	ClassArea10
	ClassArea11
	ClassArea12
	ClassArea13
	ClassArea14
	ClassArea15
	ClassArea16
	ClassArea17
	ClassArea18
	ClassArea19
	ClassArea20
	ClassArea21
	ClassArea22
)

// Teaching mediation codes.
const (
	MediationInPerson = "1"
	MediationBlended  = "2"
	MediationDistance = "3"
)

// KnowledgeAreaCount is the number of knowledge areas a class can offer.
// Knowledge-area code N is offered through field ClassArea1+N-1.
const KnowledgeAreaCount = 22

// KnowledgeAreaPosition returns the record 20 position of the offering for a
// knowledge-area code, or 0 when the code is outside 1..KnowledgeAreaCount.
func KnowledgeAreaPosition(code int) int {
	if code < 1 || code > KnowledgeAreaCount {
		return 0
	}
	return ClassArea1 + code - 1
}

// Position runs of record 20.
var (
	WeekdayPositions   = []int{ClassSunday, ClassMonday, ClassTuesday, ClassWednesday, ClassThursday, ClassFriday, ClassSaturday}
	ClassTypePositions = []int{ClassTypeSchooling, ClassTypeComplementary, ClassTypeAEE}
	StructurePositions = []int{ClassStructureGeneralBasic, ClassStructureFormativeItinerary, ClassStructureNotApplicable}
	ActivityPositions  = []int{ClassActivity1, ClassActivity2, ClassActivity3, ClassActivity4, ClassActivity5, ClassActivity6}
	KnowledgeAreaGroup = Group{Name: "knowledge_areas", First: ClassArea1, Last: ClassArea22}
)

var classSchema = register(Class, []FieldRule{
	f(ClassRecordType, "record_type", "Record type", required(), oneOf("20")),
	f(ClassSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(ClassCode, "class_code", "Class code in the school's own system", required(), maxLen(20), matches(reAlnum)),
	f(ClassINEPCode, "class_inep_code", "Class INEP code", maxLen(10), matches(reDigits)),
	f(ClassName, "class_name", "Class name", required(), length(4, 80), matches(reUpperName)),
	f(ClassMediation, "teaching_mediation", "Teaching mediation (1 in-person, 2 blended, 3 distance)", required(), oneOf("1", "2", "3")),
	f(ClassStartHour, "start_hour", "Start time: hour", exact(2), matches(reHour), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassStartMinute, "start_minute", "Start time: minute", exact(2), matches(reMinute), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassEndHour, "end_hour", "End time: hour", exact(2), matches(reHour), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassEndMinute, "end_minute", "End time: minute", exact(2), matches(reMinute), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassSunday, "weekday_sunday", "Meets on Sunday", flag(), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassMonday, "weekday_monday", "Meets on Monday", flag(), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassTuesday, "weekday_tuesday", "Meets on Tuesday", flag(), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassWednesday, "weekday_wednesday", "Meets on Wednesday", flag(), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassThursday, "weekday_thursday", "Meets on Thursday", flag(), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassFriday, "weekday_friday", "Meets on Friday", flag(), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassSaturday, "weekday_saturday", "Meets on Saturday", flag(), requiredWhen(when("teaching_mediation", MediationInPerson))),
	f(ClassTypeSchooling, "type_schooling", "Class type: schooling", required(), flag()),
	f(ClassTypeComplementary, "type_complementary_activity", "Class type: complementary activity", required(), flag()),
	f(ClassTypeAEE, "type_aee", "Class type: specialized educational service (AEE)", required(), flag()),
	f(ClassStructureGeneralBasic, "structure_general_basic", "Curricular structure: general basic education", flag(), requiredWhen(when("type_schooling", "1"))),
	f(ClassStructureFormativeItinerary, "structure_formative_itinerary", "Curricular structure: formative itinerary", flag(), requiredWhen(when("type_schooling", "1"))),
	f(ClassStructureNotApplicable, "structure_not_applicable", "Curricular structure: not applicable", flag(), requiredWhen(when("type_schooling", "1"))),
	f(ClassActivity1, "complementary_activity_1", "Complementary activity code 1", exact(5), matches(reDigits), requiredWhen(when("type_complementary_activity", "1"))),
	f(ClassActivity2, "complementary_activity_2", "Complementary activity code 2", exact(5), matches(reDigits)),
	f(ClassActivity3, "complementary_activity_3", "Complementary activity code 3", exact(5), matches(reDigits)),
	f(ClassActivity4, "complementary_activity_4", "Complementary activity code 4", exact(5), matches(reDigits)),
	f(ClassActivity5, "complementary_activity_5", "Complementary activity code 5", exact(5), matches(reDigits)),
	f(ClassActivity6, "complementary_activity_6", "Complementary activity code 6", exact(5), matches(reDigits)),
	f(ClassDifferentiatedLocation, "differentiated_location", "Differentiated location (0 none, 1 prison unit, 2 socio-educational unit, 3 hospital)", required(), oneOf("0", "1", "2", "3")),
	f(ClassModality, "modality", "Modality (1 regular, 2 special, 3 EJA, 4 professional)", oneOf("1", "2", "3", "4"), requiredWhen(when("type_schooling", "1"))),
	f(ClassStage, "stage", "Teaching stage", maxLen(3), matches(reDigits), requiredWhen(when("type_schooling", "1"))),
	f(ClassProfessionalCourse, "professional_course_code", "Professional course code", maxLen(8), matches(reDigits)),
	f(ClassProfessionalItinerary, "professional_itinerary", "Formative itinerary includes professional training", flag(), requiredWhen(when("structure_formative_itinerary", "1"))),
	f(ClassArea1, "area_1", "Knowledge area 1 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea2, "area_2", "Knowledge area 2 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea3, "area_3", "Knowledge area 3 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea4, "area_4", "Knowledge area 4 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea5, "area_5", "Knowledge area 5 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea6, "area_6", "Knowledge area 6 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea7, "area_7", "Knowledge area 7 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea8, "area_8", "Knowledge area 8 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea9, "area_9", "Knowledge area 9 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea10, "area_10", "Knowledge area 10 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea11, "area_11", "Knowledge area 11 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea12, "area_12", "Knowledge area 12 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea13, "area_13", "Knowledge area 13 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea14, "area_14", "Knowledge area 14 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea15, "area_15", "Knowledge area 15 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea16, "area_16", "Knowledge area 16 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea17, "area_17", "Knowledge area 17 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea18, "area_18", "Knowledge area 18 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea19, "area_19", "Knowledge area 19 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea20, "area_20", "Knowledge area 20 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea21, "area_21", "Knowledge area 21 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
	f(ClassArea22, "area_22", "Knowledge area 22 offering (0 not offered, 1 with teacher, 2 without teacher)", oneOf("0", "1", "2")),
})
