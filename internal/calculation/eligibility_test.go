package calculation

import (
	"testing"
	"time"

	"github.com/rgehrsitz/rpgo-intake/internal/domain"
	"github.com/rgehrsitz/rpgo-intake/pkg/dateutil"
	"github.com/stretchr/testify/assert"
)

func ymd(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestComputeEligibility(t *testing.T) {
	tests := []struct {
		name         string
		birthDate    time.Time
		retireDate   time.Time
		scd          time.Time
		expectedType domain.RetirementType
		expectedTier domain.StatusTier
	}{
		{
			name:         "MRA with exactly 30 years",
			birthDate:    ymd(1960, time.January, 1),
			retireDate:   ymd(2016, time.January, 1),
			scd:          ymd(1986, time.January, 1),
			expectedType: domain.RetirementRegular,
			expectedTier: domain.TierFavorable,
		},
		{
			name:         "MRA with 29 years 11 months",
			birthDate:    ymd(1960, time.January, 1),
			retireDate:   ymd(2016, time.January, 1),
			scd:          ymd(1986, time.February, 1),
			expectedType: domain.RetirementMRA10,
			expectedTier: domain.TierConditional,
		},
		{
			name:         "MRA with under 10 years",
			birthDate:    ymd(1960, time.January, 1),
			retireDate:   ymd(2016, time.January, 1),
			scd:          ymd(2010, time.January, 1),
			expectedType: domain.RetirementNotEligible,
			expectedTier: domain.TierUnmet,
		},
		{
			name:         "Age 62 with exactly 5 years",
			birthDate:    ymd(1963, time.June, 15),
			retireDate:   ymd(2025, time.July, 1),
			scd:          ymd(2020, time.July, 1),
			expectedType: domain.RetirementRegular,
			expectedTier: domain.TierFavorable,
		},
		{
			name:         "Age 62 with 4 years 11 months",
			birthDate:    ymd(1963, time.June, 15),
			retireDate:   ymd(2025, time.July, 1),
			scd:          ymd(2020, time.August, 1),
			expectedType: domain.RetirementNotEligible,
			expectedTier: domain.TierUnmet,
		},
		{
			name:         "Age 60 with exactly 20 years",
			birthDate:    ymd(1965, time.March, 1),
			retireDate:   ymd(2025, time.March, 1),
			scd:          ymd(2005, time.March, 1),
			expectedType: domain.RetirementRegular,
			expectedTier: domain.TierFavorable,
		},
		{
			name:         "Age 60 with 19 years 11 months falls to MRA+10",
			birthDate:    ymd(1965, time.March, 1),
			retireDate:   ymd(2025, time.March, 1),
			scd:          ymd(2005, time.April, 1),
			expectedType: domain.RetirementMRA10,
			expectedTier: domain.TierConditional,
		},
		{
			name:         "One day short of MRA",
			birthDate:    ymd(1970, time.May, 15),
			retireDate:   ymd(2027, time.May, 14),
			scd:          ymd(1990, time.January, 1),
			expectedType: domain.RetirementNotEligible,
			expectedTier: domain.TierUnmet,
		},
		{
			name:         "On the MRA anniversary",
			birthDate:    ymd(1970, time.May, 15),
			retireDate:   ymd(2027, time.May, 15),
			scd:          ymd(1990, time.January, 1),
			expectedType: domain.RetirementRegular,
			expectedTier: domain.TierFavorable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := ComputeEligibility(tt.birthDate, tt.retireDate, tt.scd)
			assert.Equal(t, tt.expectedType, res.Type)
			assert.Equal(t, tt.expectedTier, res.Tier)
			assert.NotEmpty(t, res.Status)
			if tt.expectedType == domain.RetirementMRA10 {
				assert.Equal(t, MRA10Caveat, res.Caveat)
			} else {
				assert.Empty(t, res.Caveat)
			}
		})
	}
}

func TestComputeEligibility_ReportsAgeServiceAndMRA(t *testing.T) {
	res := ComputeEligibility(ymd(1965, time.March, 1), ymd(2027, time.June, 1), ymd(1990, time.June, 1))

	assert.Equal(t, dateutil.YearsMonths{Years: 62, Months: 3}, res.Age)
	assert.Equal(t, dateutil.YearsMonths{Years: 37}, res.Service)
	assert.Equal(t, dateutil.YearsMonths{Years: 56, Months: 2}, res.MRA)
	assert.Equal(t, domain.RetirementRegular, res.Type)
}
