package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/travelmap/internal/domain"
)

func date(t *testing.T, s string) *domain.CalendarDate {
	t.Helper()
	d, err := domain.ParseCalendarDate(s)
	require.NoError(t, err)
	return &d
}

func TestPlace_Identity(t *testing.T) {
	both := domain.Place{BackendID: "b1", LocalID: "l1"}
	assert.Equal(t, "b1", both.Identity())
	assert.True(t, both.Matches("b1"))
	assert.True(t, both.Matches("l1"))
	assert.False(t, both.Matches("other"))
	assert.False(t, both.Matches(""))

	legacyOnly := domain.Place{LocalID: "l2"}
	assert.Equal(t, "l2", legacyOnly.Identity())
	assert.True(t, legacyOnly.Matches("l2"))
}

func TestPlace_Transitions(t *testing.T) {
	place := domain.Place{
		Name:        "Gramado",
		Description: "Charming town in the mountains.",
		Status:      domain.StatusPlanned,
		PlannedDate: date(t, "2024-07-20"),
	}
	require.NoError(t, place.CheckInvariant())

	visitDate, err := domain.ParseCalendarDate("2024-08-02")
	require.NoError(t, err)

	place.MarkVisited(visitDate, "Wonderful trip")
	assert.Equal(t, domain.StatusVisited, place.Status)
	assert.Nil(t, place.PlannedDate)
	assert.Equal(t, "Wonderful trip", place.VisitDescription)
	require.NotNil(t, place.VisitDate)
	assert.Equal(t, visitDate, *place.VisitDate)
	assert.NoError(t, place.CheckInvariant())

	plannedDate, err := domain.ParseCalendarDate("2025-01-10")
	require.NoError(t, err)

	place.MarkPlanned(plannedDate)
	assert.Equal(t, domain.StatusPlanned, place.Status)
	assert.Nil(t, place.VisitDate)
	assert.Empty(t, place.VisitDescription)
	require.NotNil(t, place.PlannedDate)
	assert.Equal(t, plannedDate, *place.PlannedDate)
	assert.NoError(t, place.CheckInvariant())
}

func TestPlace_MarkVisitedEmptyNarrativeFallsBack(t *testing.T) {
	place := domain.Place{
		Description: "Tech hub of the Paraíba valley.",
		Status:      domain.StatusPlanned,
		PlannedDate: date(t, "2024-09-10"),
	}

	place.MarkVisited(domain.Today(), "")
	assert.Equal(t, "Tech hub of the Paraíba valley.", place.VisitDescription)
}

func TestPlace_CheckInvariant(t *testing.T) {
	tests := []struct {
		name    string
		place   domain.Place
		wantErr bool
	}{
		{
			name:  "planned with planned date only",
			place: domain.Place{Name: "a", Status: domain.StatusPlanned, PlannedDate: date(t, "2024-07-20")},
		},
		{
			name: "visited with visit fields only",
			place: domain.Place{
				Name: "b", Status: domain.StatusVisited,
				VisitDate: date(t, "2023-12-15"), VisitDescription: "great",
			},
		},
		{
			name: "planned carrying visit date",
			place: domain.Place{
				Name: "c", Status: domain.StatusPlanned,
				PlannedDate: date(t, "2024-07-20"), VisitDate: date(t, "2023-12-15"),
			},
			wantErr: true,
		},
		{
			name: "visited carrying planned date",
			place: domain.Place{
				Name: "d", Status: domain.StatusVisited,
				VisitDate: date(t, "2023-12-15"), PlannedDate: date(t, "2024-07-20"),
			},
			wantErr: true,
		},
		{
			name:    "unknown status",
			place:   domain.Place{Name: "e", Status: "archived"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.place.CheckInvariant()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCoordinates_JSONTuple(t *testing.T) {
	place := domain.Place{
		Name:        "Natal",
		Description: "Beaches",
		Coordinates: domain.Coordinates{Lat: -5.7945, Lon: -35.211},
		Status:      domain.StatusVisited,
		VisitDate:   date(t, "2023-12-15"),
	}

	encoded, err := json.Marshal(place)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"coordinates":[-5.7945,-35.211]`)

	var decoded domain.Place
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, place.Coordinates, decoded.Coordinates)
}

func TestCoordinates_RejectsOutOfRange(t *testing.T) {
	var c domain.Coordinates
	assert.Error(t, json.Unmarshal([]byte(`[91, 0]`), &c))
	assert.Error(t, json.Unmarshal([]byte(`[0, -181]`), &c))
	assert.Error(t, json.Unmarshal([]byte(`"not a pair"`), &c))
	assert.NoError(t, json.Unmarshal([]byte(`[-14.235, -51.9253]`), &c))
}

func TestFilterByStatusAndFindByID(t *testing.T) {
	places := []domain.Place{
		{BackendID: "1", Name: "Natal", Status: domain.StatusVisited, VisitDate: date(t, "2023-12-15")},
		{LocalID: "2", Name: "Gramado", Status: domain.StatusPlanned, PlannedDate: date(t, "2024-07-20")},
		{BackendID: "3", Name: "Recife", Status: domain.StatusVisited, VisitDate: date(t, "2024-01-05")},
	}

	visited := domain.FilterByStatus(places, domain.StatusVisited)
	require.Len(t, visited, 2)
	assert.Equal(t, "Natal", visited[0].Name)
	assert.Equal(t, "Recife", visited[1].Name)

	planned := domain.FilterByStatus(places, domain.StatusPlanned)
	require.Len(t, planned, 1)
	assert.Equal(t, "Gramado", planned[0].Name)

	found, ok := domain.FindByID(places, "2")
	require.True(t, ok)
	assert.Equal(t, "Gramado", found.Name)

	_, ok = domain.FindByID(places, "missing")
	assert.False(t, ok)
}

func TestPlace_Narrative(t *testing.T) {
	visited := domain.Place{
		Description:      "base",
		Status:           domain.StatusVisited,
		VisitDescription: "the real story",
	}
	assert.Equal(t, "the real story", visited.Narrative())

	visitedNoStory := domain.Place{Description: "base", Status: domain.StatusVisited}
	assert.Equal(t, "base", visitedNoStory.Narrative())

	planned := domain.Place{Description: "base", Status: domain.StatusPlanned}
	assert.Equal(t, "base", planned.Narrative())
}

func TestPlace_StatusDate(t *testing.T) {
	d := date(t, "2024-07-20")
	planned := domain.Place{Status: domain.StatusPlanned, PlannedDate: d}
	require.NotNil(t, planned.StatusDate())
	assert.Equal(t, time.July, planned.StatusDate().Month)

	visited := domain.Place{Status: domain.StatusVisited, VisitDate: d}
	assert.Equal(t, d, visited.StatusDate())

	assert.Nil(t, domain.Place{Status: domain.StatusPlanned}.StatusDate())
}
