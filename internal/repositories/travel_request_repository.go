package repositories

import (
	"database/sql"
	"errors"

	"travelrequests/internal/models"
)

type TravelRequestRepository interface {
	Create(request *models.TravelRequest) error
	GetByID(id int) (*models.TravelRequest, error)
	ListByUser(userID int) ([]*models.TravelRequest, error)
	ListAll() ([]*models.TravelRequest, error)
	Update(request *models.TravelRequest) error
}

type travelRequestRepository struct {
	DB *sql.DB
}

func NewTravelRequestRepository(db *sql.DB) TravelRequestRepository {
	return &travelRequestRepository{DB: db}
}

const travelRequestColumns = `
	tr.id, tr.origin, tr.destination, tr.departure_date, tr.return_date,
	tr.justification, tr.status, tr.created_at, tr.user_id, u.name
`

func (r *travelRequestRepository) Create(request *models.TravelRequest) error {
	const q = `
		INSERT INTO travel_requests (
			origin, destination, departure_date, return_date,
			justification, status, created_at, user_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	return r.DB.QueryRow(q,
		request.Origin,
		request.Destination,
		request.DepartureDate,
		request.ReturnDate,
		request.Justification,
		string(request.Status),
		request.CreatedAt,
		request.UserID,
	).Scan(&request.ID)
}

func (r *travelRequestRepository) GetByID(id int) (*models.TravelRequest, error) {
	q := `
		SELECT ` + travelRequestColumns + `
		FROM travel_requests tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.id = $1
	`
	tr := &models.TravelRequest{}
	var status string
	err := r.DB.QueryRow(q, id).Scan(
		&tr.ID, &tr.Origin, &tr.Destination, &tr.DepartureDate, &tr.ReturnDate,
		&tr.Justification, &status, &tr.CreatedAt, &tr.UserID, &tr.UserName,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	tr.Status = models.RequestStatus(status)
	return tr, nil
}

func (r *travelRequestRepository) ListByUser(userID int) ([]*models.TravelRequest, error) {
	q := `
		SELECT ` + travelRequestColumns + `
		FROM travel_requests tr
		JOIN users u ON u.id = tr.user_id
		WHERE tr.user_id = $1
		ORDER BY tr.created_at DESC
	`
	rows, err := r.DB.Query(q, userID)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *travelRequestRepository) ListAll() ([]*models.TravelRequest, error) {
	q := `
		SELECT ` + travelRequestColumns + `
		FROM travel_requests tr
		JOIN users u ON u.id = tr.user_id
		ORDER BY tr.created_at DESC
	`
	rows, err := r.DB.Query(q)
	if err != nil {
		return nil, err
	}
	return r.collect(rows)
}

func (r *travelRequestRepository) Update(request *models.TravelRequest) error {
	const q = `
		UPDATE travel_requests
		SET origin = $1, destination = $2, departure_date = $3, return_date = $4,
		    justification = $5, status = $6
		WHERE id = $7
	`
	_, err := r.DB.Exec(q,
		request.Origin,
		request.Destination,
		request.DepartureDate,
		request.ReturnDate,
		request.Justification,
		string(request.Status),
		request.ID,
	)
	return err
}

func (r *travelRequestRepository) collect(rows *sql.Rows) ([]*models.TravelRequest, error) {
	defer rows.Close()

	var requests []*models.TravelRequest
	for rows.Next() {
		tr := &models.TravelRequest{}
		var status string
		if err := rows.Scan(
			&tr.ID, &tr.Origin, &tr.Destination, &tr.DepartureDate, &tr.ReturnDate,
			&tr.Justification, &status, &tr.CreatedAt, &tr.UserID, &tr.UserName,
		); err != nil {
			return nil, err
		}
		tr.Status = models.RequestStatus(status)
		requests = append(requests, tr)
	}
	return requests, rows.Err()
}
