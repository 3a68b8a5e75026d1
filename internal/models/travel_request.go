package models

import "time"

type TravelRequest struct {
	ID            int           `json:"id"`
	Origin        string        `json:"origin"`
	Destination   string        `json:"destination"`
	DepartureDate time.Time     `json:"departure_date"`
	ReturnDate    time.Time     `json:"return_date"`
	Justification string        `json:"justification"`
	Status        RequestStatus `json:"status"`
	CreatedAt     time.Time     `json:"created_at"`
	UserID        int           `json:"user_id"`

	// Owner display name, populated by joined reads.
	UserName string `json:"user_name,omitempty"`
}

// CreateTravelRequestRequest is the wire shape; dates come in as
// YYYY-MM-DD strings and are parsed at the boundary.
type CreateTravelRequestRequest struct {
	Origin        string `json:"origin" binding:"required,max=100"`
	Destination   string `json:"destination" binding:"required,max=100"`
	DepartureDate string `json:"departure_date" binding:"required,datetime=2006-01-02"`
	ReturnDate    string `json:"return_date" binding:"required,datetime=2006-01-02"`
	Justification string `json:"justification" binding:"required,max=500"`
}

// CreateTravelRequestInput is what the service layer consumes once the
// boundary has parsed the dates.
type CreateTravelRequestInput struct {
	Origin        string
	Destination   string
	DepartureDate time.Time
	ReturnDate    time.Time
	Justification string
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type TravelRequestResponse struct {
	ID            int    `json:"id"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureDate string `json:"departure_date"`
	ReturnDate    string `json:"return_date"`
	Justification string `json:"justification"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	UserID        int    `json:"user_id"`
	UserName      string `json:"user_name"`
}
