package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travelrequests/internal/models"
)

func validInput() *models.CreateTravelRequestInput {
	now := time.Now()
	return &models.CreateTravelRequestInput{
		Origin:        "Bogotá",
		Destination:   "Medellín",
		DepartureDate: now.AddDate(0, 0, 7),
		ReturnDate:    now.AddDate(0, 0, 14),
		Justification: "Client meeting",
	}
}

func TestCreate_Success(t *testing.T) {
	svc := NewTravelRequestService(newFakeTravelRequestRepo())

	input := validInput()
	resp, err := svc.Create(input, 42)

	require.NoError(t, err)
	assert.Equal(t, "Pending", resp.Status)
	assert.Equal(t, 42, resp.UserID)
	assert.Equal(t, input.DepartureDate.Format("2006-01-02"), resp.DepartureDate)
	assert.Equal(t, input.ReturnDate.Format("2006-01-02"), resp.ReturnDate)
	assert.NotZero(t, resp.ID)
}

func TestCreate_SameOriginAndDestination(t *testing.T) {
	svc := NewTravelRequestService(newFakeTravelRequestRepo())

	cases := []struct{ origin, destination string }{
		{"Bogotá", "Bogotá"},
		{"bogotá", "BOGOTÁ"},
		{"Medellin", "medellin"},
	}
	for _, tc := range cases {
		input := validInput()
		input.Origin = tc.origin
		input.Destination = tc.destination

		_, err := svc.Create(input, 1)

		require.ErrorIs(t, err, ErrInvalidRequest)
		assert.Contains(t, err.Error(), "origin and destination must differ")
	}
}

func TestCreate_ReturnDateNotAfterDeparture(t *testing.T) {
	svc := NewTravelRequestService(newFakeTravelRequestRepo())
	departure := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name       string
		returnDate time.Time
	}{
		{"before departure", departure.AddDate(0, 0, -1)},
		{"equal to departure", departure},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			input.DepartureDate = departure
			input.ReturnDate = tc.returnDate

			_, err := svc.Create(input, 1)

			require.ErrorIs(t, err, ErrInvalidRequest)
			assert.Contains(t, err.Error(), "return date must exceed departure date")
		})
	}
}

func TestChangeStatus_NonApproverForbidden(t *testing.T) {
	repo := newFakeTravelRequestRepo()
	svc := NewTravelRequestService(repo)

	resp, err := svc.Create(validInput(), 1)
	require.NoError(t, err)

	// existing request
	_, err = svc.ChangeStatus(resp.ID, "Approved", models.RoleRequester)
	assert.ErrorIs(t, err, ErrForbidden)

	// nonexistent request still forbidden first
	_, err = svc.ChangeStatus(9999, "Approved", models.RoleRequester)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestChangeStatus_ApproveAndReject(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"Approved", "Approved"},
		{"Aprobada", "Approved"},
		{"rejected", "Rejected"},
		{"Rechazada", "Rejected"},
	}
	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			svc := NewTravelRequestService(newFakeTravelRequestRepo())
			created, err := svc.Create(validInput(), 1)
			require.NoError(t, err)

			resp, err := svc.ChangeStatus(created.ID, tc.input, models.RoleApprover)

			require.NoError(t, err)
			assert.Equal(t, tc.want, resp.Status)
		})
	}
}

func TestChangeStatus_RevertToPendingBlocked(t *testing.T) {
	repo := newFakeTravelRequestRepo()
	svc := NewTravelRequestService(repo)

	created, err := svc.Create(validInput(), 1)
	require.NoError(t, err)

	for _, status := range []string{"Pending", "Pendiente"} {
		_, err := svc.ChangeStatus(created.ID, status, models.RoleApprover)
		require.ErrorIs(t, err, ErrInvalidRequest)
		assert.Contains(t, err.Error(), "cannot revert to Pending")
	}

	// still blocked once the request is decided
	_, err = svc.ChangeStatus(created.ID, "Approved", models.RoleApprover)
	require.NoError(t, err)
	_, err = svc.ChangeStatus(created.ID, "Pendiente", models.RoleApprover)
	assert.ErrorIs(t, err, ErrInvalidRequest)
}

func TestChangeStatus_UnknownStatus(t *testing.T) {
	svc := NewTravelRequestService(newFakeTravelRequestRepo())
	created, err := svc.Create(validInput(), 1)
	require.NoError(t, err)

	_, err = svc.ChangeStatus(created.ID, "Postponed", models.RoleApprover)

	require.ErrorIs(t, err, ErrInvalidRequest)
	assert.Contains(t, err.Error(), "invalid status")
}

func TestChangeStatus_NotFound(t *testing.T) {
	svc := NewTravelRequestService(newFakeTravelRequestRepo())

	_, err := svc.ChangeStatus(1234, "Approved", models.RoleApprover)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByUser_OwnRequestsNewestFirst(t *testing.T) {
	repo := newFakeTravelRequestRepo()
	svc := NewTravelRequestService(repo)

	base := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	seed := []*models.TravelRequest{
		{Origin: "Bogotá", Destination: "Cali", Status: models.StatusPending, CreatedAt: base, UserID: 1},
		{Origin: "Bogotá", Destination: "Cartagena", Status: models.StatusPending, CreatedAt: base.Add(2 * time.Hour), UserID: 1},
		{Origin: "Cali", Destination: "Medellín", Status: models.StatusPending, CreatedAt: base.Add(time.Hour), UserID: 2},
	}
	for _, r := range seed {
		require.NoError(t, repo.Create(r))
	}

	mine, err := svc.ListByUser(1)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "Cartagena", mine[0].Destination)
	assert.Equal(t, "Cali", mine[1].Destination)

	all, err := svc.ListAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Cartagena", all[0].Destination)
	assert.Equal(t, "Medellín", all[1].Destination)
	assert.Equal(t, "Cali", all[2].Destination)
}
