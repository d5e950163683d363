package rules

import (
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/layout"
	"github.com/oyurisousa/validador-censo-sub000/pkg/censo/record"
	"github.com/oyurisousa/validador-censo-sub000/pkg/reference"
)

// Record 00 rules.
const (
	RuleSchoolYearEndBeforeStart    = "school_year_end_before_start"
	RuleSchoolYearStartOutOfRange   = "school_year_start_out_of_range"
	RuleSchoolYearEndOutOfRange     = "school_year_end_out_of_range"
	RuleAreaCodeRequired            = "area_code_required"
	RuleAreaCodeNotAllowed          = "area_code_not_allowed"
	RuleDuplicatePhone              = "duplicate_phone"
	RulePrivateMaintainerRequired   = "private_maintainer_required"
	RulePrivateMaintainerNotAllowed = "private_maintainer_not_allowed"
	RulePublicAgreementNotAllowed   = "public_agreement_not_allowed"
	RuleInvalidCNPJ                 = "invalid_cnpj"
	RulePublicAgencyRequired        = "public_agency_required"
	RulePublicAgencyNotAllowed      = "public_agency_not_allowed"
	RuleRegulatorySphereRequired    = "regulatory_sphere_required"
	RuleHostSchoolSameAsSchool      = "host_school_same_as_school"
)

func (c *checker) VisitSchool(r *record.School) error {
	active := r.OperatingStatus == layout.StatusActive
	private := r.AdministrativeDependency == layout.DependencyPrivate
	public := r.AdministrativeDependency != "" && !private

	c.schoolYear()

	c.requireAll(c.anySet(layout.SchoolPhone, layout.SchoolOtherPhone), []int{layout.SchoolAreaCode},
		RuleAreaCodeRequired, RuleAreaCodeNotAllowed, "a telephone is informed")
	c.notEqual(layout.SchoolPhone, layout.SchoolOtherPhone, RuleDuplicatePhone)

	privateActive := private && active
	c.requireAll(privateActive, layout.PrivateMaintainerPositions,
		RulePrivateMaintainerRequired, RulePrivateMaintainerNotAllowed, "the school is private and active")
	if privateActive {
		c.atLeastOne(layout.PrivateMaintainerPositions, RulePrivateMaintainerRequired, "private maintainer")
	}

	if !private && c.set(layout.SchoolPublicAgreement) {
		c.fail(layout.SchoolPublicAgreement, RulePublicAgreementNotAllowed,
			"%s is only informed by private schools", c.desc(layout.SchoolPublicAgreement))
	}
	c.cnpj(layout.SchoolMaintainerCNPJ)
	c.cnpj(layout.SchoolCNPJ)

	publicActive := public && active
	c.requireAll(publicActive, layout.PublicAgencyPositions,
		RulePublicAgencyRequired, RulePublicAgencyNotAllowed, "the school is public and active")
	if publicActive {
		c.atLeastOne(layout.PublicAgencyPositions, RulePublicAgencyRequired, "public agency")
	}

	if reg := c.get(layout.SchoolRegulation); reg == "1" || reg == "2" {
		c.atLeastOne(layout.SpherePositions, RuleRegulatorySphereRequired, "regulatory sphere")
	}

	c.notEqual(layout.SchoolCode, layout.SchoolHostSchoolCode, RuleHostSchoolSameAsSchool)
	c.lookup(reference.Municipality, layout.SchoolMunicipality)
	return nil
}

// schoolYear checks the order of the school-year dates and, when a
// reference year is configured, that they belong to that census.
func (c *checker) schoolYear() {
	start, okStart := c.date(layout.SchoolYearStart)
	end, okEnd := c.date(layout.SchoolYearEnd)

	if okStart && okEnd && !end.After(start) {
		c.fail(layout.SchoolYearEnd, RuleSchoolYearEndBeforeStart,
			"school year end %s must be after its start %s", c.get(layout.SchoolYearEnd), c.get(layout.SchoolYearStart))
	}

	year := c.e.referenceYear
	if year <= 0 {
		return
	}
	if okStart && start.Year() != year {
		c.fail(layout.SchoolYearStart, RuleSchoolYearStartOutOfRange,
			"school year must start in %d", year)
	}
	if okEnd && (end.Year() < year || end.Year() > year+1) {
		c.fail(layout.SchoolYearEnd, RuleSchoolYearEndOutOfRange,
			"school year must end in %d or %d", year, year+1)
	}
}

// cnpj checks the check digits of a well-formed CNPJ. Malformed values are
// left to the field rules.
func (c *checker) cnpj(p int) {
	v := c.get(p)
	if _, ok := digitsOf(v, 14); !ok {
		return
	}
	if !ValidCNPJ(v) {
		c.fail(p, RuleInvalidCNPJ, "%s %s has invalid check digits", c.desc(p), v)
	}
}

// cpf is cnpj for 11-digit CPF values.
func (c *checker) cpf(p int) {
	v := c.get(p)
	if _, ok := digitsOf(v, 11); !ok {
		return
	}
	if !ValidCPF(v) {
		c.fail(p, RuleInvalidCPF, "%s %s has invalid check digits", c.desc(p), v)
	}
}
