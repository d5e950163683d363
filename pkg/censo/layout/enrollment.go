package layout

// Record 60 (Student enrollment) field positions.
const (
	EnrollRecordType = iota + 1
	EnrollSchoolCode
	EnrollPersonCode
	EnrollINEPID
	EnrollClassCode
	EnrollClassINEPCode
	EnrollINEPCode
	EnrollStage
	EnrollAEEBraille
	EnrollAEEOpticalResources
	EnrollAEECognitive
	EnrollAEELifeActivities
	EnrollAEELibras
	EnrollAEEWrittenPortuguese
	EnrollAEESoroban
	EnrollAEEAccessibleCommunication
	EnrollAEEComputing
	EnrollAEEMobility
	EnrollAEEEnrichment
	EnrollItineraryLanguages
	EnrollItineraryMathematics
	EnrollItineraryNaturalSciences
	EnrollItineraryHumanSciences
	EnrollItineraryProfessional
	EnrollProfessionalItineraryType
	EnrollSchoolingElsewhere
	EnrollPublicTransport
	EnrollTransportAuthority
	EnrollVehicleVan
	EnrollVehicleMicroBus
	EnrollVehicleBus
	EnrollVehicleBicycle
	EnrollVehicleAnimalTraction
	EnrollVehicleOtherRoad
	EnrollVehicleBoat5
	EnrollVehicleBoat15
	EnrollVehicleBoat35
	EnrollVehicleBoatOver35
)

// Groups of record 60.
var (
	AEEServiceGroup         = Group{Name: "aee_services", First: EnrollAEEBraille, Last: EnrollAEEEnrichment}
	FormativeItineraryGroup = Group{Name: "formative_itinerary", First: EnrollItineraryLanguages, Last: EnrollItineraryProfessional}
	VehicleGroup            = Group{Name: "vehicles", First: EnrollVehicleVan, Last: EnrollVehicleBoatOver35}
)

var enrollmentSchema = register(StudentEnrollment, []FieldRule{
	f(EnrollRecordType, "record_type", "Record type", required(), oneOf("60")),
	f(EnrollSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(EnrollPersonCode, "person_code", "Person code in the school's own system", required(), maxLen(20), matches(reAlnum)),
	f(EnrollINEPID, "inep_id", "Person INEP identification", digits(12)),
	f(EnrollClassCode, "class_code", "Class code in the school's own system", required(), maxLen(20), matches(reAlnum)),
	f(EnrollClassINEPCode, "class_inep_code", "Class INEP code", maxLen(10), matches(reDigits)),
	f(EnrollINEPCode, "enrollment_inep_code", "Enrollment INEP code", maxLen(12), matches(reDigits)),
	f(EnrollStage, "stage", "Student stage in a multi-stage class", maxLen(3), matches(reDigits)),
	f(EnrollAEEBraille, "aee_braille", "AEE service: braille", flag()),
	f(EnrollAEEOpticalResources, "aee_optical_resources", "AEE service: optical resources", flag()),
	f(EnrollAEECognitive, "aee_cognitive", "AEE service: cognitive", flag()),
	f(EnrollAEELifeActivities, "aee_life_activities", "AEE service: life activities", flag()),
	f(EnrollAEELibras, "aee_libras", "AEE service: libras", flag()),
	f(EnrollAEEWrittenPortuguese, "aee_written_portuguese", "AEE service: written portuguese", flag()),
	f(EnrollAEESoroban, "aee_soroban", "AEE service: soroban", flag()),
	f(EnrollAEEAccessibleCommunication, "aee_accessible_communication", "AEE service: accessible communication", flag()),
	f(EnrollAEEComputing, "aee_computing", "AEE service: computing", flag()),
	f(EnrollAEEMobility, "aee_orientation_mobility", "AEE service: orientation mobility", flag()),
	f(EnrollAEEEnrichment, "aee_curriculum_enrichment", "AEE service: curriculum enrichment", flag()),
	f(EnrollItineraryLanguages, "itinerary_languages", "Formative itinerary: languages", flag()),
	f(EnrollItineraryMathematics, "itinerary_mathematics", "Formative itinerary: mathematics", flag()),
	f(EnrollItineraryNaturalSciences, "itinerary_natural_sciences", "Formative itinerary: natural sciences", flag()),
	f(EnrollItineraryHumanSciences, "itinerary_human_sciences", "Formative itinerary: human sciences", flag()),
	f(EnrollItineraryProfessional, "itinerary_professional", "Formative itinerary: professional", flag()),
	f(EnrollProfessionalItineraryType, "professional_itinerary_type", "Professional itinerary type (1 technical course, 2 professional qualification)", oneOf("1", "2"), requiredWhen(when("itinerary_professional", "1"))),
	f(EnrollSchoolingElsewhere, "schooling_elsewhere", "Schooling in another space (1 hospital, 2 home, 3 none)", oneOf("1", "2", "3")),
	f(EnrollPublicTransport, "public_transport", "Uses public school transport", flag()),
	f(EnrollTransportAuthority, "transport_authority", "Transport authority (1 state, 2 municipal)", oneOf("1", "2"), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleVan, "vehicle_road_van", "Vehicle: road van", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleMicroBus, "vehicle_road_micro_bus", "Vehicle: road micro bus", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleBus, "vehicle_road_bus", "Vehicle: road bus", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleBicycle, "vehicle_road_bicycle", "Vehicle: road bicycle", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleAnimalTraction, "vehicle_road_animal_traction", "Vehicle: road animal traction", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleOtherRoad, "vehicle_road_other", "Vehicle: road other", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleBoat5, "vehicle_water_up_to_5", "Vehicle: water up to 5", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleBoat15, "vehicle_water_5_to_15", "Vehicle: water 5 to 15", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleBoat35, "vehicle_water_15_to_35", "Vehicle: water 15 to 35", flag(), requiredWhen(when("public_transport", "1"))),
	f(EnrollVehicleBoatOver35, "vehicle_water_over_35", "Vehicle: water over 35", flag(), requiredWhen(when("public_transport", "1"))),
})
