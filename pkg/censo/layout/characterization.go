package layout

// Record 10 (School characterization) field positions.
const (
	CharRecordType = iota + 1
	CharSchoolCode
	CharBuildingLocation
	CharOtherSchoolRoom
	CharShed
	CharPrisonUnit
	CharSocioeducationalUnit
	CharOtherLocation
	CharBuildingOccupancy
	CharSharedBuilding
	CharSharedSchool1
	CharSharedSchool2
	CharSharedSchool3
	CharSharedSchool4
	CharSharedSchool5
	CharSharedSchool6
	CharDrinkingWater
	CharWaterPublicNetwork
	CharWaterArtesianWell
	CharWaterCistern
	CharWaterRiver
	CharWaterNone
	CharEnergyPublicNetwork
	CharEnergyGenerator
	CharEnergyRenewable
	CharEnergyNone
	CharSewagePublicNetwork
	CharSewageSepticTank
	CharSewageRudimentaryPit
	CharSewageNone
	CharWasteCollection
	CharWasteBurns
	CharWasteBuries
	CharWastePublicDisposal
	CharWasteOther
	CharTreatmentSeparation
	CharTreatmentReuse
	CharTreatmentRecycling
	CharTreatmentNone
	CharFacilityWarehouse
	CharFacilityGreenArea
	CharFacilityAuditorium
	CharFacilityBathroom
	CharFacilityBathroomChild
	CharFacilityBathroomAccessible
	CharFacilityBathroomStaff
	CharFacilityBathroomShower
	CharFacilityLibrary
	CharFacilityKitchen
	CharFacilityPantry
	CharFacilityStudentDorm
	CharFacilityTeacherDorm
	CharFacilityScienceLab
	CharFacilityComputerLab
	CharFacilityProfessionalLab
	CharFacilityPlayground
	CharFacilityCoveredPatio
	CharFacilityUncoveredPatio
	CharFacilityPool
	CharFacilityCoveredCourt
	CharFacilityUncoveredCourt
	CharFacilityCafeteria
	CharFacilityArtRoom
	CharFacilityMusicRoom
	CharFacilityDanceRoom
	CharFacilityMultipurposeRoom
	CharFacilityGreenhouse
	CharFacilityWorkshop
	CharFacilityReadingRoom
	CharFacilityGym
	CharFacilitySecretary
	CharFacilityPrincipalOffice
	CharFacilityTeachersRoom
	CharFacilityAEERoom
	CharFacilityStaffRoom
	CharFacilityGarden
	CharFacilityVegetableGarden
	CharFacilityNone
	CharAccessibilityHandrail
	CharAccessibilityElevator
	CharAccessibilityTactileFloor
	CharAccessibilityWideDoors
	CharAccessibilityRamps
	CharAccessibilitySoundSignal
	CharAccessibilityTactileSignal
	CharAccessibilityVisualSignal
	CharAccessibilityNone
	CharClassroomsInside
	CharClassroomsOutside
	CharClassroomsAirConditioned
	CharClassroomsAccessible
	CharEquipmentSatelliteDish
	CharEquipmentComputers
	CharEquipmentCopier
	CharEquipmentPrinter
	CharEquipmentMultifunctionPrinter
	CharEquipmentScanner
	CharEquipmentNone
	CharQtyDVDPlayers
	CharQtySoundSystems
	CharQtyTVs
	CharQtyDigitalBoards
	CharQtyProjectors
	CharStudentDesktops
	CharStudentLaptops
	CharStudentTablets
	CharInternetAdministrative
	CharInternetTeaching
	CharInternetStudents
	CharInternetCommunity
	CharInternetNone
	CharDeviceSchoolComputers
	CharDevicePersonal
	CharBroadband
	CharLocalNetworkWired
	CharLocalNetworkWireless
	CharLocalNetworkNone
	CharStaffAgronomists
	CharStaffAdministrative
	CharStaffLibrarians
	CharStaffFirefighters
	CharStaffCoordinators
	CharStaffSpeechTherapists
	CharStaffNutritionists
	CharStaffPsychologists
	CharStaffCooks
	CharStaffSupport
	CharStaffSecretaries
	CharStaffSecurity
	CharStaffMonitors
	CharStaffManagement
	CharStaffSocialWorkers
	CharStaffLibrasTranslators
	CharStaffCaretakers
	CharStaffNone
	CharSchoolMeals
	CharMaterialMultimedia
	CharMaterialEarlyChildhood
	CharMaterialScientific
	CharMaterialSoundAmplification
	CharMaterialGames
	CharMaterialArtistic
	CharMaterialProfessional
	CharMaterialMusicInstruments
	CharMaterialSports
	CharMaterialBilingualDeaf
	CharMaterialIndigenous
	CharMaterialEthnicRacial
	CharMaterialNone
	CharIndigenousEducation
	CharLanguageIndigenous
	CharLanguagePortuguese
	CharIndigenousLanguage1
	CharIndigenousLanguage2
	CharIndigenousLanguage3
	CharSelectionExam
	CharQuotaEthnic
	CharQuotaIncome
	CharQuotaPublicSchool
	CharQuotaDisability
	CharQuotaOther
	CharQuotaNone
	CharWebsite
	CharCommunitySharing
	CharSurroundingSpaces
	CharCollegiateParentsAssociation
	CharCollegiateParentsTeachers
	CharCollegiateSchoolCouncil
	CharCollegiateStudentGuild
	CharCollegiateOther
	CharCollegiateNone
	CharPedagogicalProject
)

var characterizationSchema = register(Characterization, []FieldRule{
	f(CharRecordType, "record_type", "Record type", required(), oneOf("10")),
	f(CharSchoolCode, "school_code", "School INEP code", required(), digits(8)),
	f(CharBuildingLocation, "loc_school_building", "Operating location: school building", required(), flag()),
	f(CharOtherSchoolRoom, "loc_other_school_room", "Operating location: room in another school", required(), flag()),
	f(CharShed, "loc_shed", "Operating location: shed, warehouse or barn", required(), flag()),
	f(CharPrisonUnit, "loc_prison_unit", "Operating location: prison unit", required(), flag()),
	f(CharSocioeducationalUnit, "loc_socioeducational_unit", "Operating location: socio-educational unit", required(), flag()),
	f(CharOtherLocation, "loc_other", "Operating location: other", required(), flag()),
	f(CharBuildingOccupancy, "building_occupancy", "Building occupancy (1 own, 2 rented, 3 ceded)", oneOf("1", "2", "3"), requiredWhen(when("loc_school_building", "1"))),
	f(CharSharedBuilding, "shared_building", "Building shared with other schools", flag(), requiredWhen(when("loc_school_building", "1"))),
	f(CharSharedSchool1, "shared_school_code_1", "Shared building school code 1", digits(8)),
	f(CharSharedSchool2, "shared_school_code_2", "Shared building school code 2", digits(8)),
	f(CharSharedSchool3, "shared_school_code_3", "Shared building school code 3", digits(8)),
	f(CharSharedSchool4, "shared_school_code_4", "Shared building school code 4", digits(8)),
	f(CharSharedSchool5, "shared_school_code_5", "Shared building school code 5", digits(8)),
	f(CharSharedSchool6, "shared_school_code_6", "Shared building school code 6", digits(8)),
	f(CharDrinkingWater, "drinking_water", "Drinking water for students", required(), flag()),
	f(CharWaterPublicNetwork, "water_public_network", "Water supply: public network", required(), flag()),
	f(CharWaterArtesianWell, "water_artesian_well", "Water supply: artesian well", required(), flag()),
	f(CharWaterCistern, "water_cistern", "Water supply: cistern or cacimba", required(), flag()),
	f(CharWaterRiver, "water_river", "Water supply: river, stream or lake", required(), flag()),
	f(CharWaterNone, "water_none", "Water supply: none", required(), flag()),
	f(CharEnergyPublicNetwork, "energy_public_network", "Energy: public network", required(), flag()),
	f(CharEnergyGenerator, "energy_generator", "Energy: fossil fuel generator", required(), flag()),
	f(CharEnergyRenewable, "energy_renewable", "Energy: renewable sources", required(), flag()),
	f(CharEnergyNone, "energy_none", "Energy: none", required(), flag()),
	f(CharSewagePublicNetwork, "sewage_public_network", "Sewage: public network", required(), flag()),
	f(CharSewageSepticTank, "sewage_septic_tank", "Sewage: septic tank", required(), flag()),
	f(CharSewageRudimentaryPit, "sewage_rudimentary_pit", "Sewage: rudimentary pit", required(), flag()),
	f(CharSewageNone, "sewage_none", "Sewage: none", required(), flag()),
	f(CharWasteCollection, "waste_collection", "Waste: periodic collection", required(), flag()),
	f(CharWasteBurns, "waste_burns", "Waste: burned", required(), flag()),
	f(CharWasteBuries, "waste_buries", "Waste: buried", required(), flag()),
	f(CharWastePublicDisposal, "waste_public_disposal", "Waste: licensed public disposal", required(), flag()),
	f(CharWasteOther, "waste_other", "Waste: other destination", required(), flag()),
	f(CharTreatmentSeparation, "treatment_separation", "Waste treatment: separation", required(), flag()),
	f(CharTreatmentReuse, "treatment_reuse", "Waste treatment: reuse", required(), flag()),
	f(CharTreatmentRecycling, "treatment_recycling", "Waste treatment: recycling", required(), flag()),
	f(CharTreatmentNone, "treatment_none", "Waste treatment: none", required(), flag()),
	f(CharFacilityWarehouse, "fac_warehouse", "Facility: warehouse", required(), flag()),
	f(CharFacilityGreenArea, "fac_green_area", "Facility: green area", required(), flag()),
	f(CharFacilityAuditorium, "fac_auditorium", "Facility: auditorium", required(), flag()),
	f(CharFacilityBathroom, "fac_bathroom", "Facility: bathroom", required(), flag()),
	f(CharFacilityBathroomChild, "fac_bathroom_child", "Facility: bathroom child", required(), flag()),
	f(CharFacilityBathroomAccessible, "fac_bathroom_accessible", "Facility: bathroom accessible", required(), flag()),
	f(CharFacilityBathroomStaff, "fac_bathroom_staff", "Facility: bathroom staff", required(), flag()),
	f(CharFacilityBathroomShower, "fac_bathroom_shower", "Facility: bathroom shower", required(), flag()),
	f(CharFacilityLibrary, "fac_library", "Facility: library", required(), flag()),
	f(CharFacilityKitchen, "fac_kitchen", "Facility: kitchen", required(), flag()),
	f(CharFacilityPantry, "fac_pantry", "Facility: pantry", required(), flag()),
	f(CharFacilityStudentDorm, "fac_student_dorm", "Facility: student dorm", required(), flag()),
	f(CharFacilityTeacherDorm, "fac_teacher_dorm", "Facility: teacher dorm", required(), flag()),
	f(CharFacilityScienceLab, "fac_science_lab", "Facility: science lab", required(), flag()),
	f(CharFacilityComputerLab, "fac_computer_lab", "Facility: computer lab", required(), flag()),
	f(CharFacilityProfessionalLab, "fac_professional_lab", "Facility: professional lab", required(), flag()),
	f(CharFacilityPlayground, "fac_playground", "Facility: playground", required(), flag()),
	f(CharFacilityCoveredPatio, "fac_covered_patio", "Facility: covered patio", required(), flag()),
	f(CharFacilityUncoveredPatio, "fac_uncovered_patio", "Facility: uncovered patio", required(), flag()),
	f(CharFacilityPool, "fac_pool", "Facility: pool", required(), flag()),
	f(CharFacilityCoveredCourt, "fac_covered_court", "Facility: covered court", required(), flag()),
	f(CharFacilityUncoveredCourt, "fac_uncovered_court", "Facility: uncovered court", required(), flag()),
	f(CharFacilityCafeteria, "fac_cafeteria", "Facility: cafeteria", required(), flag()),
	f(CharFacilityArtRoom, "fac_art_room", "Facility: art room", required(), flag()),
	f(CharFacilityMusicRoom, "fac_music_room", "Facility: music room", required(), flag()),
	f(CharFacilityDanceRoom, "fac_dance_room", "Facility: dance room", required(), flag()),
	f(CharFacilityMultipurposeRoom, "fac_multipurpose_room", "Facility: multipurpose room", required(), flag()),
	f(CharFacilityGreenhouse, "fac_greenhouse", "Facility: greenhouse", required(), flag()),
	f(CharFacilityWorkshop, "fac_workshop", "Facility: workshop", required(), flag()),
	f(CharFacilityReadingRoom, "fac_reading_room", "Facility: reading room", required(), flag()),
	f(CharFacilityGym, "fac_gym", "Facility: gym", required(), flag()),
	f(CharFacilitySecretary, "fac_secretary", "Facility: secretary", required(), flag()),
	f(CharFacilityPrincipalOffice, "fac_principal_office", "Facility: principal office", required(), flag()),
	f(CharFacilityTeachersRoom, "fac_teachers_room", "Facility: teachers room", required(), flag()),
	f(CharFacilityAEERoom, "fac_aee_room", "Facility: aee room", required(), flag()),
	f(CharFacilityStaffRoom, "fac_staff_room", "Facility: staff room", required(), flag()),
	f(CharFacilityGarden, "fac_garden", "Facility: garden", required(), flag()),
	f(CharFacilityVegetableGarden, "fac_vegetable_garden", "Facility: vegetable garden", required(), flag()),
	f(CharFacilityNone, "fac_none", "Facility: none of the listed", required(), flag()),
	f(CharAccessibilityHandrail, "acc_handrail", "Accessibility: handrail", required(), flag()),
	f(CharAccessibilityElevator, "acc_elevator", "Accessibility: elevator", required(), flag()),
	f(CharAccessibilityTactileFloor, "acc_tactile_floor", "Accessibility: tactile floor", required(), flag()),
	f(CharAccessibilityWideDoors, "acc_wide_doors", "Accessibility: wide doors", required(), flag()),
	f(CharAccessibilityRamps, "acc_ramps", "Accessibility: ramps", required(), flag()),
	f(CharAccessibilitySoundSignal, "acc_sound_signal", "Accessibility: sound signal", required(), flag()),
	f(CharAccessibilityTactileSignal, "acc_tactile_signal", "Accessibility: tactile signal", required(), flag()),
	f(CharAccessibilityVisualSignal, "acc_visual_signal", "Accessibility: visual signal", required(), flag()),
	f(CharAccessibilityNone, "acc_none", "Accessibility: none", required(), flag()),
	f(CharClassroomsInside, "classrooms_inside", "Classrooms inside the building", count(4), requiredWhen(when("loc_school_building", "1"))),
	f(CharClassroomsOutside, "classrooms_outside", "Classrooms outside the building", count(4)),
	f(CharClassroomsAirConditioned, "classrooms_air_conditioned", "Air-conditioned classrooms", count(4)),
	f(CharClassroomsAccessible, "classrooms_accessible", "Accessible classrooms", count(4)),
	f(CharEquipmentSatelliteDish, "eq_satellite_dish", "Equipment: satellite dish", required(), flag()),
	f(CharEquipmentComputers, "eq_computers", "Equipment: computers", required(), flag()),
	f(CharEquipmentCopier, "eq_copier", "Equipment: copier", required(), flag()),
	f(CharEquipmentPrinter, "eq_printer", "Equipment: printer", required(), flag()),
	f(CharEquipmentMultifunctionPrinter, "eq_multifunction_printer", "Equipment: multifunction printer", required(), flag()),
	f(CharEquipmentScanner, "eq_scanner", "Equipment: scanner", required(), flag()),
	f(CharEquipmentNone, "eq_none", "Equipment: none", required(), flag()),
	f(CharQtyDVDPlayers, "qty_dvd_players", "Equipment quantity: dvd players", count(4)),
	f(CharQtySoundSystems, "qty_sound_systems", "Equipment quantity: sound systems", count(4)),
	f(CharQtyTVs, "qty_tvs", "Equipment quantity: tvs", count(4)),
	f(CharQtyDigitalBoards, "qty_digital_boards", "Equipment quantity: digital boards", count(4)),
	f(CharQtyProjectors, "qty_projectors", "Equipment quantity: projectors", count(4)),
	f(CharStudentDesktops, "student_desktops", "Student desktop computers", count(4)),
	f(CharStudentLaptops, "student_laptops", "Student laptops", count(4)),
	f(CharStudentTablets, "student_tablets", "Student tablets", count(4)),
	f(CharInternetAdministrative, "net_administrative", "Internet use: administrative", required(), flag()),
	f(CharInternetTeaching, "net_teaching", "Internet use: teaching", required(), flag()),
	f(CharInternetStudents, "net_students", "Internet use: students", required(), flag()),
	f(CharInternetCommunity, "net_community", "Internet use: community", required(), flag()),
	f(CharInternetNone, "net_none", "Internet use: none", required(), flag()),
	f(CharDeviceSchoolComputers, "device_school_computers", "Student internet access through school devices", flag(), requiredWhen(when("net_students", "1"))),
	f(CharDevicePersonal, "device_personal", "Student internet access through personal devices", flag(), requiredWhen(when("net_students", "1"))),
	f(CharBroadband, "broadband", "Broadband internet", flag(), requiredWhen(when("net_none", "0"))),
	f(CharLocalNetworkWired, "lan_wired", "Local network: wired", required(), flag()),
	f(CharLocalNetworkWireless, "lan_wireless", "Local network: wireless", required(), flag()),
	f(CharLocalNetworkNone, "lan_none", "Local network: none", required(), flag()),
	f(CharStaffAgronomists, "staff_agronomists", "Staff count: agronomists", count(4)),
	f(CharStaffAdministrative, "staff_administrative", "Staff count: administrative", count(4)),
	f(CharStaffLibrarians, "staff_librarians", "Staff count: librarians", count(4)),
	f(CharStaffFirefighters, "staff_firefighters", "Staff count: firefighters", count(4)),
	f(CharStaffCoordinators, "staff_coordinators", "Staff count: coordinators", count(4)),
	f(CharStaffSpeechTherapists, "staff_speech_therapists", "Staff count: speech therapists", count(4)),
	f(CharStaffNutritionists, "staff_nutritionists", "Staff count: nutritionists", count(4)),
	f(CharStaffPsychologists, "staff_psychologists", "Staff count: psychologists", count(4)),
	f(CharStaffCooks, "staff_cooks", "Staff count: cooks", count(4)),
	f(CharStaffSupport, "staff_support", "Staff count: support", count(4)),
	f(CharStaffSecretaries, "staff_secretaries", "Staff count: secretaries", count(4)),
	f(CharStaffSecurity, "staff_security", "Staff count: security", count(4)),
	f(CharStaffMonitors, "staff_monitors", "Staff count: monitors", count(4)),
	f(CharStaffManagement, "staff_management", "Staff count: management", count(4)),
	f(CharStaffSocialWorkers, "staff_social_workers", "Staff count: social workers", count(4)),
	f(CharStaffLibrasTranslators, "staff_libras_translators", "Staff count: libras translators", count(4)),
	f(CharStaffCaretakers, "staff_caretakers", "Staff count: caretakers", count(4)),
	f(CharStaffNone, "staff_none", "No staff in the listed functions", required(), flag()),
	f(CharSchoolMeals, "school_meals", "Offers school meals", required(), flag()),
	f(CharMaterialMultimedia, "mat_multimedia", "Pedagogical material: multimedia", required(), flag()),
	f(CharMaterialEarlyChildhood, "mat_early_childhood", "Pedagogical material: early childhood", required(), flag()),
	f(CharMaterialScientific, "mat_scientific", "Pedagogical material: scientific", required(), flag()),
	f(CharMaterialSoundAmplification, "mat_sound_amplification", "Pedagogical material: sound amplification", required(), flag()),
	f(CharMaterialGames, "mat_games", "Pedagogical material: games", required(), flag()),
	f(CharMaterialArtistic, "mat_artistic", "Pedagogical material: artistic", required(), flag()),
	f(CharMaterialProfessional, "mat_professional", "Pedagogical material: professional", required(), flag()),
	f(CharMaterialMusicInstruments, "mat_music_instruments", "Pedagogical material: music instruments", required(), flag()),
	f(CharMaterialSports, "mat_sports", "Pedagogical material: sports", required(), flag()),
	f(CharMaterialBilingualDeaf, "mat_bilingual_deaf", "Pedagogical material: bilingual deaf", required(), flag()),
	f(CharMaterialIndigenous, "mat_indigenous", "Pedagogical material: indigenous", required(), flag()),
	f(CharMaterialEthnicRacial, "mat_ethnic_racial", "Pedagogical material: ethnic racial", required(), flag()),
	f(CharMaterialNone, "mat_none", "Pedagogical material: none", required(), flag()),
	f(CharIndigenousEducation, "indigenous_education", "Indigenous school education", required(), flag()),
	f(CharLanguageIndigenous, "language_indigenous", "Teaching language: indigenous", flag(), requiredWhen(when("indigenous_education", "1"))),
	f(CharLanguagePortuguese, "language_portuguese", "Teaching language: Portuguese", flag(), requiredWhen(when("indigenous_education", "1"))),
	f(CharIndigenousLanguage1, "indigenous_language_1", "Indigenous language code 1", maxLen(5), matches(reDigits)),
	f(CharIndigenousLanguage2, "indigenous_language_2", "Indigenous language code 2", maxLen(5), matches(reDigits)),
	f(CharIndigenousLanguage3, "indigenous_language_3", "Indigenous language code 3", maxLen(5), matches(reDigits)),
	f(CharSelectionExam, "selection_exam", "Admission by selection exam", required(), flag()),
	f(CharQuotaEthnic, "quota_ethnic", "Reserved places: ethnic", flag(), requiredWhen(when("selection_exam", "1"))),
	f(CharQuotaIncome, "quota_income", "Reserved places: income", flag(), requiredWhen(when("selection_exam", "1"))),
	f(CharQuotaPublicSchool, "quota_public_school", "Reserved places: public school", flag(), requiredWhen(when("selection_exam", "1"))),
	f(CharQuotaDisability, "quota_disability", "Reserved places: disability", flag(), requiredWhen(when("selection_exam", "1"))),
	f(CharQuotaOther, "quota_other", "Reserved places: other", flag(), requiredWhen(when("selection_exam", "1"))),
	f(CharQuotaNone, "quota_none", "Reserved places: none", flag(), requiredWhen(when("selection_exam", "1"))),
	f(CharWebsite, "website", "School has a website", required(), flag()),
	f(CharCommunitySharing, "community_sharing", "Shares spaces with the community", required(), flag()),
	f(CharSurroundingSpaces, "surrounding_spaces", "Uses surrounding spaces for activities", required(), flag()),
	f(CharCollegiateParentsAssociation, "collegiate_parents_association", "Collegiate body: parents association", required(), flag()),
	f(CharCollegiateParentsTeachers, "collegiate_parents_teachers", "Collegiate body: parents teachers", required(), flag()),
	f(CharCollegiateSchoolCouncil, "collegiate_school_council", "Collegiate body: school council", required(), flag()),
	f(CharCollegiateStudentGuild, "collegiate_student_guild", "Collegiate body: student guild", required(), flag()),
	f(CharCollegiateOther, "collegiate_other", "Collegiate body: other", required(), flag()),
	f(CharCollegiateNone, "collegiate_none", "Collegiate body: none", required(), flag()),
	f(CharPedagogicalProject, "pedagogical_project", "Pedagogical project updated in the last 12 months (0 no, 1 yes, 2 no pedagogical project)", required(), oneOf("0", "1", "2")),
})

// CharacterizationGroups are the "mark at least one" sections of record 10.
var CharacterizationGroups = []Group{
	{Name: "operating_location", First: CharBuildingLocation, Last: CharOtherLocation},
	{Name: "water_supply", First: CharWaterPublicNetwork, Last: CharWaterRiver, None: CharWaterNone},
	{Name: "energy_source", First: CharEnergyPublicNetwork, Last: CharEnergyRenewable, None: CharEnergyNone},
	{Name: "sewage", First: CharSewagePublicNetwork, Last: CharSewageRudimentaryPit, None: CharSewageNone},
	{Name: "waste_disposal", First: CharWasteCollection, Last: CharWasteOther},
	{Name: "waste_treatment", First: CharTreatmentSeparation, Last: CharTreatmentRecycling, None: CharTreatmentNone},
	{Name: "facilities", First: CharFacilityWarehouse, Last: CharFacilityVegetableGarden, None: CharFacilityNone},
	{Name: "accessibility", First: CharAccessibilityHandrail, Last: CharAccessibilityVisualSignal, None: CharAccessibilityNone},
	{Name: "equipment", First: CharEquipmentSatelliteDish, Last: CharEquipmentScanner, None: CharEquipmentNone},
	{Name: "internet_use", First: CharInternetAdministrative, Last: CharInternetCommunity, None: CharInternetNone},
	{Name: "local_network", First: CharLocalNetworkWired, Last: CharLocalNetworkWireless, None: CharLocalNetworkNone},
	{Name: "pedagogical_materials", First: CharMaterialMultimedia, Last: CharMaterialEthnicRacial, None: CharMaterialNone},
	{Name: "collegiate_bodies", First: CharCollegiateParentsAssociation, Last: CharCollegiateOther, None: CharCollegiateNone},
}

// Other position runs of record 10.
var (
	SharedSchoolPositions       = []int{CharSharedSchool1, CharSharedSchool2, CharSharedSchool3, CharSharedSchool4, CharSharedSchool5, CharSharedSchool6}
	IndigenousLanguagePositions = []int{CharIndigenousLanguage1, CharIndigenousLanguage2, CharIndigenousLanguage3}
	QuotaGroup                  = Group{Name: "reserved_places", First: CharQuotaEthnic, Last: CharQuotaOther, None: CharQuotaNone}
	StaffGroup                  = Group{Name: "staff", First: CharStaffAgronomists, Last: CharStaffCaretakers, None: CharStaffNone}
	StudentComputerPositions    = []int{CharStudentDesktops, CharStudentLaptops, CharStudentTablets}
)
