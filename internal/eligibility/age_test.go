package eligibility

import (
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type AgeRequirementSuite struct {
	suite.Suite
	today time.Time
}

func TestAgeRequirementSuite(t *testing.T) {
	suite.Run(t, new(AgeRequirementSuite))
}

func (s *AgeRequirementSuite) SetupTest() {
	s.today = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
}

func dob(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}

func (s *AgeRequirementSuite) TestNoJurisdictionAlwaysMet() {
	v := CheckAgeRequirements("", dob(2010, 1, 1), dob(2011, 1, 1), s.today)
	s.True(v.Met)
}

func (s *AgeRequirementSuite) TestBothOfAge() {
	v := CheckAgeRequirements("CA", dob(1990, 3, 2), dob(1992, 8, 30), s.today)
	s.True(v.Met)
}

func (s *AgeRequirementSuite) TestSponsorReportedFirst() {
	// Both under Mississippi's 21 floor; only the sponsor is reported.
	v := CheckAgeRequirements("MS", dob(2006, 1, 1), dob(2007, 1, 1), s.today)
	s.False(v.Met)
	s.Equal(PersonSponsor, v.Person)
	s.Equal(19, v.Age)
	s.Equal(21, v.RequiredAge)
}

func (s *AgeRequirementSuite) TestBeneficiaryReportedWhenSponsorPasses() {
	v := CheckAgeRequirements("NE", dob(1990, 1, 1), dob(2007, 1, 1), s.today)
	s.False(v.Met)
	s.Equal(PersonBeneficiary, v.Person)
	s.Equal(19, v.RequiredAge)
}

func (s *AgeRequirementSuite) TestBirthdayBoundary() {
	// 18th birthday falls exactly on the reference date: requirement met.
	v := CheckAgeRequirements("CA", dob(2007, 6, 15), dob(1990, 1, 1), s.today)
	s.True(v.Met)

	// One day short.
	v = CheckAgeRequirements("CA", dob(2007, 6, 16), dob(1990, 1, 1), s.today)
	s.False(v.Met)
	s.Equal(17, v.Age)
}

func (s *AgeRequirementSuite) TestLeapDayBirthdate() {
	// A February 29 birthday rolls to March 1 in non-leap years: still 17 on
	// February 28, 2026, of age on March 1.
	leapDOB := dob(2008, 2, 29)
	adult := dob(1990, 1, 1)

	v := CheckAgeRequirements("CA", leapDOB, adult, dob(2026, 2, 28))
	s.False(v.Met)
	s.Equal(17, v.Age)

	v = CheckAgeRequirements("CA", leapDOB, adult, dob(2026, 3, 1))
	s.True(v.Met)
}

func (s *AgeRequirementSuite) TestZeroBirthDatesSkipped() {
	v := CheckAgeRequirements("CA", time.Time{}, time.Time{}, s.today)
	s.True(v.Met, "missing DOBs are incompleteness, not an age failure")
}
