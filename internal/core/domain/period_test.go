package domain_test

import (
	"testing"

	"github.com/spendwise/spendwise_backend/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPeriod_Range(t *testing.T) {
	tests := []struct {
		name      string
		period    domain.Period
		ref       string
		wantStart string
		wantEnd   string
	}{
		{
			name:      "today is a single-day window",
			period:    domain.PeriodToday,
			ref:       "2024-06-12",
			wantStart: "2024-06-12",
			wantEnd:   "2024-06-12",
		},
		{
			name:      "weekly starts on Monday",
			period:    domain.PeriodWeekly,
			ref:       "2024-06-12", // Wednesday
			wantStart: "2024-06-10",
			wantEnd:   "2024-06-16",
		},
		{
			name:      "weekly from a Sunday maps back six days",
			period:    domain.PeriodWeekly,
			ref:       "2024-06-16", // Sunday
			wantStart: "2024-06-10",
			wantEnd:   "2024-06-16",
		},
		{
			name:      "weekly from a Monday starts on itself",
			period:    domain.PeriodWeekly,
			ref:       "2024-06-10",
			wantStart: "2024-06-10",
			wantEnd:   "2024-06-16",
		},
		{
			name:      "monthly covers the whole calendar month",
			period:    domain.PeriodMonthly,
			ref:       "2024-02-15",
			wantStart: "2024-02-01",
			wantEnd:   "2024-02-29", // leap year
		},
		{
			name:      "monthly in a 30-day month",
			period:    domain.PeriodMonthly,
			ref:       "2024-04-01",
			wantStart: "2024-04-01",
			wantEnd:   "2024-04-30",
		},
		{
			name:      "quarterly snaps to the quarter bounds",
			period:    domain.PeriodQuarterly,
			ref:       "2024-05-20",
			wantStart: "2024-04-01",
			wantEnd:   "2024-06-30",
		},
		{
			name:      "quarterly in the last quarter",
			period:    domain.PeriodQuarterly,
			ref:       "2024-11-03",
			wantStart: "2024-10-01",
			wantEnd:   "2024-12-31",
		},
		{
			name:      "yearly covers the calendar year",
			period:    domain.PeriodYearly,
			ref:       "2024-07-04",
			wantStart: "2024-01-01",
			wantEnd:   "2024-12-31",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.period.Range(domain.MustParseDate(tt.ref))
			assert.Equal(t, domain.MustParseDate(tt.wantStart), got.Start)
			assert.Equal(t, domain.MustParseDate(tt.wantEnd), got.End)
		})
	}
}

func TestParsePeriod(t *testing.T) {
	tests := []struct {
		in      string
		want    domain.Period
		wantErr bool
	}{
		{in: "today", want: domain.PeriodToday},
		{in: "daily", want: domain.PeriodToday},
		{in: "Weekly", want: domain.PeriodWeekly},
		{in: "month", want: domain.PeriodMonthly},
		{in: "quarterly", want: domain.PeriodQuarterly},
		{in: "year", want: domain.PeriodYearly},
		{in: "fortnight", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := domain.ParsePeriod(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateRange_Contains(t *testing.T) {
	r := domain.DateRange{
		Start: domain.MustParseDate("2024-06-10"),
		End:   domain.MustParseDate("2024-06-16"),
	}

	assert.True(t, r.Contains(domain.MustParseDate("2024-06-10")))
	assert.True(t, r.Contains(domain.MustParseDate("2024-06-16")))
	assert.True(t, r.Contains(domain.MustParseDate("2024-06-13")))
	assert.False(t, r.Contains(domain.MustParseDate("2024-06-09")))
	assert.False(t, r.Contains(domain.MustParseDate("2024-06-17")))
}

func TestFilterEntries(t *testing.T) {
	entries := []domain.Entry{
		{EntryID: "a", Date: domain.MustParseDate("2024-06-09")},
		{EntryID: "b", Date: domain.MustParseDate("2024-06-10")},
		{EntryID: "c", Date: domain.MustParseDate("2024-06-16")},
		{EntryID: "d", Date: domain.MustParseDate("2024-06-17")},
	}
	r := domain.DateRange{
		Start: domain.MustParseDate("2024-06-10"),
		End:   domain.MustParseDate("2024-06-16"),
	}

	got := domain.FilterEntries(entries, r)

	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].EntryID)
	assert.Equal(t, "c", got[1].EntryID)
}
