package layout

// Record 50 (Professional bond) field positions.
const (
	ProfRecordType = iota + 1
	ProfSchoolCode
	ProfPersonCode
	ProfINEPID
	ProfClassCode
	ProfClassINEPCode
	ProfFunction
	ProfFunctionalStatus
	ProfArea1
	ProfArea2
	ProfArea3
	ProfArea4
	ProfArea5
	ProfArea6
	ProfArea7
	ProfArea8
	ProfArea9
	ProfArea10
	ProfArea11
	ProfArea12
	ProfArea13
	ProfArea14
	ProfArea15
)

// Professional function codes.
const (
	FunctionTeacher                = "1"
	FunctionAssistant              = "2"
	FunctionActivityMonitor        = "3"
	FunctionLibrasInterpreter      = "4"
	FunctionDistanceLeadTeacher    = "5"
	FunctionDistanceTutor          = "6"
	FunctionGuideInterpreter       = "7"
	FunctionDisabilitySupport      = "8"
	FunctionProfessionalInstructor = "9"
)

// ProfessionalAreaGroup is the run of knowledge-area code slots of record 50.
var ProfessionalAreaGroup = Group{Name: "knowledge_areas", First: ProfArea1, Last: ProfArea15}

var professionalSchema = register(ProfessionalBond, []FieldRule{
	f(ProfRecordType, "record_type", "Record type", required(), oneOf("50")),
	f(ProfSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(ProfPersonCode, "person_code", "Person code in the school's own system", required(), maxLen(20), matches(reAlnum)),
	f(ProfINEPID, "inep_id", "Person INEP identification", digits(12)),
	f(ProfClassCode, "class_code", "Class code in the school's own system", required(), maxLen(20), matches(reAlnum)),
	f(ProfClassINEPCode, "class_inep_code", "Class INEP code", maxLen(10), matches(reDigits)),
	f(ProfFunction, "function", "Function in the class", required(), oneOf("1", "2", "3", "4", "5", "6", "7", "8", "9")),
	f(ProfFunctionalStatus, "functional_status", "Functional status (1 statutory, 2 temporary, 3 outsourced, 4 CLT)", oneOf("1", "2", "3", "4")),
	f(ProfArea1, "knowledge_area_1", "Knowledge area taught 1", maxLen(2), matches(reDigits)),
	f(ProfArea2, "knowledge_area_2", "Knowledge area taught 2", maxLen(2), matches(reDigits)),
	f(ProfArea3, "knowledge_area_3", "Knowledge area taught 3", maxLen(2), matches(reDigits)),
	f(ProfArea4, "knowledge_area_4", "Knowledge area taught 4", maxLen(2), matches(reDigits)),
	f(ProfArea5, "knowledge_area_5", "Knowledge area taught 5", maxLen(2), matches(reDigits)),
	f(ProfArea6, "knowledge_area_6", "Knowledge area taught 6", maxLen(2), matches(reDigits)),
	f(ProfArea7, "knowledge_area_7", "Knowledge area taught 7", maxLen(2), matches(reDigits)),
	f(ProfArea8, "knowledge_area_8", "Knowledge area taught 8", maxLen(2), matches(reDigits)),
	f(ProfArea9, "knowledge_area_9", "Knowledge area taught 9", maxLen(2), matches(reDigits)),
	f(ProfArea10, "knowledge_area_10", "Knowledge area taught 10", maxLen(2), matches(reDigits)),
	f(ProfArea11, "knowledge_area_11", "Knowledge area taught 11", maxLen(2), matches(reDigits)),
	f(ProfArea12, "knowledge_area_12", "Knowledge area taught 12", maxLen(2), matches(reDigits)),
	f(ProfArea13, "knowledge_area_13", "Knowledge area taught 13", maxLen(2), matches(reDigits)),
	f(ProfArea14, "knowledge_area_14", "Knowledge area taught 14", maxLen(2), matches(reDigits)),
	f(ProfArea15, "knowledge_area_15", "Knowledge area taught 15", maxLen(2), matches(reDigits)),
})
