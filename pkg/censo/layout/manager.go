package layout

// Record 40 (Manager bond) field positions.
const (
	ManagerRecordType = iota + 1
	ManagerSchoolCode
	ManagerPersonCode
	ManagerINEPID
	ManagerRole
	ManagerAccessCriteria
	ManagerFunctionalStatus
)

// Manager role codes.
const (
	RoleDirector = "1"
	RoleOther    = "2"
)

var managerSchema = register(ManagerBond, []FieldRule{
	f(ManagerRecordType, "record_type", "Record type", required(), oneOf("40")),
	f(ManagerSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(ManagerPersonCode, "person_code", "Person code in the school's own system", required(), maxLen(20), matches(reAlnum)),
	f(ManagerINEPID, "inep_id", "Person INEP identification", digits(12)),
	f(ManagerRole, "role", "Role (1 director, 2 other manager)", required(), oneOf("1", "2")),
	f(ManagerAccessCriteria, "access_criteria", "Access criteria to the role", oneOf("1", "2", "3", "4", "5", "6", "7")),
	f(ManagerFunctionalStatus, "functional_status", "Functional status (1 statutory, 2 temporary, 3 outsourced, 4 CLT)", oneOf("1", "2", "3", "4")),
})
