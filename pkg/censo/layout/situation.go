package layout

// Record 89 (Situation header) field positions.
const (
	HeaderRecordType = iota + 1
	HeaderSchoolCode
	HeaderManagerCPF
	HeaderManagerName
	HeaderManagerRole
	HeaderManagerEmail
)

// Record 90 (Student situation) field positions.
const (
	SituationRecordType = iota + 1
	SituationSchoolCode
	SituationClassCode
	SituationClassINEPCode
	SituationStudentINEPID
	SituationEnrollmentCode
	SituationCode
)

// Record 91 (Admitted student) field positions.
const (
	AdmittedRecordType = iota + 1
	AdmittedSchoolCode
	AdmittedClassCode
	AdmittedClassINEPCode
	AdmittedStudentINEPID
	AdmittedEnrollmentCode
	AdmittedMediation
	AdmittedModality
	AdmittedStage
	AdmittedSituation
)

// Student situation codes.
const (
	SituationTransferred   = "1"
	SituationDroppedOut    = "2"
	SituationDeceased      = "3"
	SituationFailed        = "4"
	SituationApproved      = "5"
	SituationApprovedFinal = "6"
	SituationInProgress    = "7"
)

var situationHeaderSchema = register(SituationHeader, []FieldRule{
	f(HeaderRecordType, "record_type", "Record type", required(), oneOf("89")),
	f(HeaderSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(HeaderManagerCPF, "manager_cpf", "Manager CPF", required(), digits(11)),
	f(HeaderManagerName, "manager_name", "Manager name", required(), length(2, 100), matches(rePersonName)),
	f(HeaderManagerRole, "manager_role", "Manager role (1 director, 2 other manager)", required(), oneOf("1", "2")),
	f(HeaderManagerEmail, "manager_email", "Manager e-mail", required(), maxLen(50), matches(reEmail)),
})

var studentSituationSchema = register(StudentSituation, []FieldRule{
	f(SituationRecordType, "record_type", "Record type", required(), oneOf("90")),
	f(SituationSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(SituationClassCode, "class_code", "Class code in the school's own system", maxLen(20), matches(reAlnum)),
	f(SituationClassINEPCode, "class_inep_code", "Class INEP code", required(), maxLen(10), matches(reDigits)),
	f(SituationStudentINEPID, "student_inep_id", "Student INEP identification", required(), digits(12)),
	f(SituationEnrollmentCode, "enrollment_inep_code", "Enrollment INEP code", required(), maxLen(12), matches(reDigits)),
	f(SituationCode, "situation", "Student situation", required(), oneOf("1", "2", "3", "4", "5", "6", "7")),
})

var admittedStudentSchema = register(AdmittedStudent, []FieldRule{
	f(AdmittedRecordType, "record_type", "Record type", required(), oneOf("91")),
	f(AdmittedSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(AdmittedClassCode, "class_code", "Class code in the school's own system", maxLen(20), matches(reAlnum)),
	f(AdmittedClassINEPCode, "class_inep_code", "Class INEP code", required(), maxLen(10), matches(reDigits)),
	f(AdmittedStudentINEPID, "student_inep_id", "Student INEP identification", required(), digits(12)),
	f(AdmittedEnrollmentCode, "enrollment_inep_code", "Enrollment INEP code (always empty for admitted students)", maxLen(12), matches(reDigits)),
	f(AdmittedMediation, "teaching_mediation", "Teaching mediation", required(), oneOf("1", "2", "3")),
	f(AdmittedModality, "modality", "Modality", required(), oneOf("1", "2", "3", "4")),
	f(AdmittedStage, "stage", "Teaching stage", required(), maxLen(3), matches(reDigits)),
	f(AdmittedSituation, "situation", "Student situation", required(), oneOf("1", "2", "3", "4", "5", "6", "7")),
})
