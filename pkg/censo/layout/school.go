package layout

// Record 00 (School) field positions.
const (
	SchoolRecordType = iota + 1
	SchoolCode
	SchoolOperatingStatus
	SchoolYearStart
	SchoolYearEnd
	SchoolName
	SchoolCEP
	SchoolMunicipality
	SchoolDistrict
	SchoolAddress
	SchoolAddressNumber
	SchoolAddressComplement
	SchoolNeighborhood
	SchoolAreaCode
	SchoolPhone
	SchoolOtherPhone
	SchoolEmail
	SchoolRegionalAgency
	SchoolLocationZone
	SchoolDifferentiatedLocation
	SchoolAdministrativeDependency
	SchoolMaintainerCompany
	SchoolMaintainerUnion
	SchoolMaintainerNGO
	SchoolMaintainerNonProfit
	SchoolMaintainerSystemS
	SchoolMaintainerOSCIP
	SchoolPrivateCategory
	SchoolPublicAgreement
	SchoolMaintainerCNPJ
	SchoolCNPJ
	SchoolRegulation
	SchoolSphereFederal
	SchoolSphereState
	SchoolSphereMunicipal
	SchoolLinkedUnit
	SchoolHostSchoolCode
	SchoolHigherEducationCode
	SchoolAgencyEducation
	SchoolAgencySecurity
	SchoolAgencyHealth
	SchoolAgencyOther
)

// Operating status and administrative dependency codes used across rules.
const (
	StatusActive    = "1"
	StatusParalysed = "2"
	StatusExtinct   = "3"

	DependencyFederal   = "1"
	DependencyState     = "2"
	DependencyMunicipal = "3"
	DependencyPrivate   = "4"
)

var schoolSchema = register(School, []FieldRule{
	f(SchoolRecordType, "record_type", "Record type", required(), oneOf("00")),
	f(SchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(SchoolOperatingStatus, "operating_status", "Operating status (1 active, 2 paralysed, 3 extinct)", required(), oneOf("1", "2", "3")),
	f(SchoolYearStart, "school_year_start", "School year start date", date(), requiredWhen(when("operating_status", StatusActive))),
	f(SchoolYearEnd, "school_year_end", "School year end date", date(), requiredWhen(when("operating_status", StatusActive))),
	f(SchoolName, "school_name", "School name", required(), length(4, 100), matches(reUpperName)),
	f(SchoolCEP, "cep", "Postal code (CEP)", required(), digits(8)),
	f(SchoolMunicipality, "municipality_code", "Municipality IBGE code", required(), digits(7)),
	f(SchoolDistrict, "district_code", "District code", required(), digits(2)),
	f(SchoolAddress, "address", "Street address", required(), length(1, 100), matches(reAddress)),
	f(SchoolAddressNumber, "address_number", "Address number", maxLen(10), matches(reAddress)),
	f(SchoolAddressComplement, "address_complement", "Address complement", maxLen(20), matches(reAddress)),
	f(SchoolNeighborhood, "neighborhood", "Neighbourhood", maxLen(50), matches(reAddress)),
	f(SchoolAreaCode, "area_code", "Telephone area code (DDD)", digits(2)),
	f(SchoolPhone, "phone", "Telephone", matches(rePhone)),
	f(SchoolOtherPhone, "other_phone", "Other telephone", matches(rePhone)),
	f(SchoolEmail, "email", "E-mail", maxLen(50), matches(reEmail)),
	f(SchoolRegionalAgency, "regional_agency_code", "Regional education agency code", maxLen(5), matches(reDigits)),
	f(SchoolLocationZone, "location_zone", "Location zone (1 urban, 2 rural)", required(), oneOf("1", "2")),
	f(SchoolDifferentiatedLocation, "differentiated_location", "Differentiated location", oneOf("1", "2", "3", "7", "8"), requiredWhen(when("operating_status", StatusActive)), optionalOtherwise()),
	f(SchoolAdministrativeDependency, "administrative_dependency", "Administrative dependency", required(), oneOf("1", "2", "3", "4")),
	f(SchoolMaintainerCompany, "maintainer_company", "Private maintainer: company or business group", flag()),
	f(SchoolMaintainerUnion, "maintainer_union", "Private maintainer: union or association", flag()),
	f(SchoolMaintainerNGO, "maintainer_ngo", "Private maintainer: non-governmental organisation", flag()),
	f(SchoolMaintainerNonProfit, "maintainer_nonprofit", "Private maintainer: non-profit institution", flag()),
	f(SchoolMaintainerSystemS, "maintainer_system_s", "Private maintainer: S system", flag()),
	f(SchoolMaintainerOSCIP, "maintainer_oscip", "Private maintainer: OSCIP", flag()),
	f(SchoolPrivateCategory, "private_category", "Private school category", oneOf("1", "2", "3", "4"), requiredWhen(when("administrative_dependency", DependencyPrivate).And("operating_status", StatusActive))),
	f(SchoolPublicAgreement, "public_agreement", "Public authority of the partnership agreement", oneOf("1", "2", "3")),
	f(SchoolMaintainerCNPJ, "maintainer_cnpj", "Maintainer CNPJ", digits(14), requiredWhen(when("administrative_dependency", DependencyPrivate).And("operating_status", StatusActive))),
	f(SchoolCNPJ, "school_cnpj", "School CNPJ", digits(14)),
	f(SchoolRegulation, "regulation", "Regulation by the education council (0 no, 1 yes, 2 in progress)", oneOf("0", "1", "2"), requiredWhen(when("operating_status", StatusActive))),
	f(SchoolSphereFederal, "sphere_federal", "Regulatory sphere: federal", flag(), requiredWhen(when("regulation", "1", "2"))),
	f(SchoolSphereState, "sphere_state", "Regulatory sphere: state", flag(), requiredWhen(when("regulation", "1", "2"))),
	f(SchoolSphereMunicipal, "sphere_municipal", "Regulatory sphere: municipal", flag(), requiredWhen(when("regulation", "1", "2"))),
	f(SchoolLinkedUnit, "linked_unit", "Linked unit (0 no, 1 basic education school, 2 higher education institution)", oneOf("0", "1", "2"), requiredWhen(when("operating_status", StatusActive))),
	f(SchoolHostSchoolCode, "host_school_code", "Host school INEP code", digits(8), requiredWhen(when("linked_unit", "1"))),
	f(SchoolHigherEducationCode, "higher_education_code", "Higher education institution code", maxLen(14), matches(reDigits), requiredWhen(when("linked_unit", "2"))),
	f(SchoolAgencyEducation, "agency_education", "Public agency: education secretariat", flag()),
	f(SchoolAgencySecurity, "agency_security", "Public agency: public security", flag()),
	f(SchoolAgencyHealth, "agency_health", "Public agency: health", flag()),
	f(SchoolAgencyOther, "agency_other", "Public agency: other", flag()),
})

// PrivateMaintainerPositions lists the private-maintainer flags of record 00.
var PrivateMaintainerPositions = []int{
	SchoolMaintainerCompany, SchoolMaintainerUnion, SchoolMaintainerNGO,
	SchoolMaintainerNonProfit, SchoolMaintainerSystemS, SchoolMaintainerOSCIP,
}

// SpherePositions lists the regulatory-sphere flags of record 00.
var SpherePositions = []int{SchoolSphereFederal, SchoolSphereState, SchoolSphereMunicipal}

// PublicAgencyPositions lists the public-agency flags of record 00.
var PublicAgencyPositions = []int{SchoolAgencyEducation, SchoolAgencySecurity, SchoolAgencyHealth, SchoolAgencyOther}
