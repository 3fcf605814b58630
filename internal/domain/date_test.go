package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmap/internal/domain"
)

func TestParseCalendarDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    domain.CalendarDate
		wantErr bool
	}{
		{
			name:  "valid date",
			input: "2024-07-20",
			want:  domain.CalendarDate{Year: 2024, Month: time.July, Day: 20},
		},
		{
			name:  "leap day",
			input: "2024-02-29",
			want:  domain.CalendarDate{Year: 2024, Month: time.February, Day: 29},
		},
		{
			name:    "non-leap february 29",
			input:   "2023-02-29",
			wantErr: true,
		},
		{
			name:    "month out of range",
			input:   "2024-13-01",
			wantErr: true,
		},
		{
			name:    "not a date",
			input:   "yesterday",
			wantErr: true,
		},
		{
			name:    "missing components",
			input:   "2024-07",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := domain.ParseCalendarDate(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

// The calendar day must survive formatting regardless of the process
// timezone: a naive time.Parse in UTC renders "2024-07-20" as July 19 for
// viewers west of Greenwich.
func TestCalendarDate_TimezoneProof(t *testing.T) {
	date, err := domain.ParseCalendarDate("2024-07-20")
	require.NoError(t, err)

	for _, tz := range []string{"UTC", "America/Sao_Paulo", "Pacific/Kiritimati"} {
		loc, err := time.LoadLocation(tz)
		require.NoError(t, err)

		restore := time.Local
		time.Local = loc

		assert.Equal(t, "2024-07-20", date.String(), "tz %s", tz)
		assert.Equal(t, "20 Jul 2024", date.Display(), "tz %s", tz)

		time.Local = restore
	}
}

func TestCalendarDate_JSON(t *testing.T) {
	date, err := domain.ParseCalendarDate("2023-12-15")
	require.NoError(t, err)

	encoded, err := json.Marshal(date)
	require.NoError(t, err)
	assert.Equal(t, `"2023-12-15"`, string(encoded))

	var decoded domain.CalendarDate
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, date, decoded)

	assert.Error(t, json.Unmarshal([]byte(`"15/12/2023"`), &decoded))
}

func TestToday(t *testing.T) {
	now := time.Now()
	today := domain.Today()

	assert.Equal(t, now.Year(), today.Year)
	assert.Equal(t, now.Month(), today.Month)
	// Day may legitimately differ across a midnight boundary; accept both.
	assert.InDelta(t, now.Day(), today.Day, 1)
}
