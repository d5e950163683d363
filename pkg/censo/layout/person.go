package layout

// Record 30 (Person) field positions.
const (
	PersonRecordType = iota + 1
	PersonSchoolCode
	PersonCode
	PersonINEPID
	PersonCPF
	PersonName
	PersonBirthDate
	PersonParentage
	PersonParent1
	PersonParent2
	PersonSex
	PersonRace
	PersonNationality
	PersonCountry
	PersonBirthMunicipality
	PersonDisability
	PersonDisabilityBlindness
	PersonDisabilityLowVision
	PersonDisabilityMonocularVision
	PersonDisabilityDeafness
	PersonDisabilityHearingImpairment
	PersonDisabilityDeafBlindness
	PersonDisabilityPhysical
	PersonDisabilityIntellectual
	PersonDisabilityMultiple
	PersonDisabilityAutism
	PersonDisabilityHighAbilities
	PersonResourceReader
	PersonResourceTranscriber
	PersonResourceInterpreter
	PersonResourceLibrasInterpreter
	PersonResourceLipReading
	PersonResourceFont18
	PersonResourceFont24
	PersonResourceAudioTest
	PersonResourceBraille
	PersonResourceVideoLibras
	PersonResourcePortuguese2ndLanguage
	PersonResourceNone
	PersonResidenceCountry
	PersonResidenceCEP
	PersonResidenceMunicipality
	PersonResidenceZone
	PersonResidenceLocation
	PersonSchooling
	PersonHighSchoolType
	PersonCourse1Code
	PersonCourse1Year
	PersonCourse1Institution
	PersonCourse2Code
	PersonCourse2Year
	PersonCourse2Institution
	PersonCourse3Code
	PersonCourse3Year
	PersonCourse3Institution
	PersonPostgraduateSpecialization
	PersonPostgraduateMasters
	PersonPostgraduateDoctorate
	PersonPostgraduateNone
	PersonContinuingCreche
	PersonContinuingPreSchool
	PersonContinuingEarlyYears
	PersonContinuingFinalYears
	PersonContinuingHighSchool
	PersonContinuingEJA
	PersonContinuingSpecialEducation
	PersonContinuingIndigenousEducation
	PersonContinuingRuralEducation
	PersonContinuingQuilombolaEducation
	PersonContinuingHumanRights
	PersonContinuingEthnicRacial
	PersonContinuingManagement
	PersonContinuingTechnology
	PersonContinuingEnvironment
	PersonContinuingOther
	PersonContinuingNone
	PersonEmail
)

// CountryBrazil is the country code for Brazil in nationality and residence fields.
const CountryBrazil = "076"

// Person code values used across rules.
const (
	NationalityBrazilian   = "1"
	NationalityNaturalised = "2"
	NationalityForeign     = "3"

	SchoolingIncompleteElementary = "1"
	SchoolingElementary           = "2"
	SchoolingHighSchool           = "3"
	SchoolingHigherEducation      = "4"
)

// Groups and runs of record 30.
var (
	DisabilityGroup          = Group{Name: "disability_types", First: PersonDisabilityBlindness, Last: PersonDisabilityHighAbilities}
	ResourceGroup            = Group{Name: "exam_resources", First: PersonResourceReader, Last: PersonResourcePortuguese2ndLanguage, None: PersonResourceNone}
	PostgraduateGroup        = Group{Name: "postgraduate", First: PersonPostgraduateSpecialization, Last: PersonPostgraduateDoctorate, None: PersonPostgraduateNone}
	ContinuingEducationGroup = Group{Name: "continuing_education", First: PersonContinuingCreche, Last: PersonContinuingOther, None: PersonContinuingNone}
	CoursePositions          = [3][3]int{
		{PersonCourse1Code, PersonCourse1Year, PersonCourse1Institution},
		{PersonCourse2Code, PersonCourse2Year, PersonCourse2Institution},
		{PersonCourse3Code, PersonCourse3Year, PersonCourse3Institution},
	}
)

var personSchema = register(Person, []FieldRule{
	f(PersonRecordType, "record_type", "Record type", required(), oneOf("30")),
	f(PersonSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(PersonCode, "person_code", "Person code in the school's own system", required(), maxLen(20), matches(reAlnum)),
	f(PersonINEPID, "inep_id", "Person INEP identification", digits(12)),
	f(PersonCPF, "cpf", "CPF", digits(11)),
	f(PersonName, "name", "Full name", required(), length(2, 100), matches(rePersonName)),
	f(PersonBirthDate, "birth_date", "Birth date", required(), date()),
	f(PersonParentage, "parentage", "Parentage declared (0 not declared, 1 declared)", required(), flag()),
	f(PersonParent1, "parent1_name", "Parent 1 name", maxLen(100), matches(rePersonName)),
	f(PersonParent2, "parent2_name", "Parent 2 name", maxLen(100), matches(rePersonName)),
	f(PersonSex, "sex", "Sex (1 male, 2 female)", required(), oneOf("1", "2")),
	f(PersonRace, "race", "Colour/race (0 not declared, 1 white, 2 black, 3 brown, 4 yellow, 5 indigenous)", required(), oneOf("0", "1", "2", "3", "4", "5")),
	f(PersonNationality, "nationality", "Nationality (1 Brazilian, 2 naturalised, 3 foreign)", required(), oneOf("1", "2", "3")),
	f(PersonCountry, "nationality_country", "Country of nationality", required(), exact(3), matches(reDigits)),
	f(PersonBirthMunicipality, "birth_municipality", "Birth municipality IBGE code", digits(7), requiredWhen(when("nationality", "1"))),
	f(PersonDisability, "disability", "Has disability, autism or high abilities", required(), flag()),
	f(PersonDisabilityBlindness, "disability_blindness", "Disability type: blindness", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityLowVision, "disability_low_vision", "Disability type: low vision", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityMonocularVision, "disability_monocular_vision", "Disability type: monocular vision", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityDeafness, "disability_deafness", "Disability type: deafness", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityHearingImpairment, "disability_hearing_impairment", "Disability type: hearing impairment", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityDeafBlindness, "disability_deafblindness", "Disability type: deafblindness", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityPhysical, "disability_physical", "Disability type: physical", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityIntellectual, "disability_intellectual", "Disability type: intellectual", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityMultiple, "disability_multiple", "Disability type: multiple", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityAutism, "disability_autism", "Disability type: autism", flag(), requiredWhen(when("disability", "1"))),
	f(PersonDisabilityHighAbilities, "disability_high_abilities", "Disability type: high abilities", flag(), requiredWhen(when("disability", "1"))),
	f(PersonResourceReader, "resource_reader", "Exam resource: reader", flag()),
	f(PersonResourceTranscriber, "resource_transcriber", "Exam resource: transcriber", flag()),
	f(PersonResourceInterpreter, "resource_interpreter", "Exam resource: interpreter", flag()),
	f(PersonResourceLibrasInterpreter, "resource_libras_interpreter", "Exam resource: libras interpreter", flag()),
	f(PersonResourceLipReading, "resource_lip_reading", "Exam resource: lip reading", flag()),
	f(PersonResourceFont18, "resource_font_18", "Exam resource: font 18", flag()),
	f(PersonResourceFont24, "resource_font_24", "Exam resource: font 24", flag()),
	f(PersonResourceAudioTest, "resource_audio_test", "Exam resource: audio test", flag()),
	f(PersonResourceBraille, "resource_braille", "Exam resource: braille", flag()),
	f(PersonResourceVideoLibras, "resource_video_libras", "Exam resource: video libras", flag()),
	f(PersonResourcePortuguese2ndLanguage, "resource_portuguese_second_language", "Exam resource: portuguese second language", flag()),
	f(PersonResourceNone, "resource_none", "Exam resource: none", flag()),
	f(PersonResidenceCountry, "residence_country", "Country of residence", required(), exact(3), matches(reDigits)),
	f(PersonResidenceCEP, "residence_cep", "Residence postal code", digits(8)),
	f(PersonResidenceMunicipality, "residence_municipality", "Residence municipality IBGE code", digits(7), requiredWhen(when("residence_country", CountryBrazil))),
	f(PersonResidenceZone, "residence_zone", "Residence zone (1 urban, 2 rural)", oneOf("1", "2"), requiredWhen(when("residence_country", CountryBrazil))),
	f(PersonResidenceLocation, "residence_differentiated_location", "Residence differentiated location", oneOf("1", "2", "3", "7", "8"), requiredWhen(when("residence_country", CountryBrazil)), optionalOtherwise()),
	f(PersonSchooling, "schooling", "Highest schooling (1 incomplete elementary, 2 elementary, 3 high school, 4 higher education)", oneOf("1", "2", "3", "4")),
	f(PersonHighSchoolType, "high_school_type", "High school type (1 general, 2 teacher training, 3 technical, 4 indigenous teacher training)", oneOf("1", "2", "3", "4"), requiredWhen(when("schooling", "3"))),
	f(PersonCourse1Code, "course_1_code", "Higher education course 1: code", exact(6), matches(reCourseCode), requiredWhen(when("schooling", "4"))),
	f(PersonCourse1Year, "course_1_year", "Higher education course 1: completion year", exact(4), matches(reYear)),
	f(PersonCourse1Institution, "course_1_institution", "Higher education course 1: institution code", maxLen(14), matches(reDigits)),
	f(PersonCourse2Code, "course_2_code", "Higher education course 2: code", exact(6), matches(reCourseCode)),
	f(PersonCourse2Year, "course_2_year", "Higher education course 2: completion year", exact(4), matches(reYear)),
	f(PersonCourse2Institution, "course_2_institution", "Higher education course 2: institution code", maxLen(14), matches(reDigits)),
	f(PersonCourse3Code, "course_3_code", "Higher education course 3: code", exact(6), matches(reCourseCode)),
	f(PersonCourse3Year, "course_3_year", "Higher education course 3: completion year", exact(4), matches(reYear)),
	f(PersonCourse3Institution, "course_3_institution", "Higher education course 3: institution code", maxLen(14), matches(reDigits)),
	f(PersonPostgraduateSpecialization, "postgraduate_specialization", "Postgraduate: specialization", flag(), requiredWhen(when("schooling", "4"))),
	f(PersonPostgraduateMasters, "postgraduate_masters", "Postgraduate: masters", flag(), requiredWhen(when("schooling", "4"))),
	f(PersonPostgraduateDoctorate, "postgraduate_doctorate", "Postgraduate: doctorate", flag(), requiredWhen(when("schooling", "4"))),
	f(PersonPostgraduateNone, "postgraduate_none", "Postgraduate: none", flag(), requiredWhen(when("schooling", "4"))),
	f(PersonContinuingCreche, "continuing_creche", "Continuing education: creche", flag()),
	f(PersonContinuingPreSchool, "continuing_pre_school", "Continuing education: pre school", flag()),
	f(PersonContinuingEarlyYears, "continuing_early_years", "Continuing education: early years", flag()),
	f(PersonContinuingFinalYears, "continuing_final_years", "Continuing education: final years", flag()),
	f(PersonContinuingHighSchool, "continuing_high_school", "Continuing education: high school", flag()),
	f(PersonContinuingEJA, "continuing_eja", "Continuing education: eja", flag()),
	f(PersonContinuingSpecialEducation, "continuing_special_education", "Continuing education: special education", flag()),
	f(PersonContinuingIndigenousEducation, "continuing_indigenous_education", "Continuing education: indigenous education", flag()),
	f(PersonContinuingRuralEducation, "continuing_rural_education", "Continuing education: rural education", flag()),
	f(PersonContinuingQuilombolaEducation, "continuing_quilombola_education", "Continuing education: quilombola education", flag()),
	f(PersonContinuingHumanRights, "continuing_human_rights", "Continuing education: human rights", flag()),
	f(PersonContinuingEthnicRacial, "continuing_ethnic_racial", "Continuing education: ethnic racial", flag()),
	f(PersonContinuingManagement, "continuing_management", "Continuing education: management", flag()),
	f(PersonContinuingTechnology, "continuing_technology", "Continuing education: technology", flag()),
	f(PersonContinuingEnvironment, "continuing_environment", "Continuing education: environment", flag()),
	f(PersonContinuingOther, "continuing_other", "Continuing education: other", flag()),
	f(PersonContinuingNone, "continuing_none", "Continuing education: none", flag()),
	f(PersonEmail, "email", "E-mail", maxLen(50), matches(reEmail)),
})
