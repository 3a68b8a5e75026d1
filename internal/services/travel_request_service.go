package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"travelrequests/internal/models"
	"travelrequests/internal/repositories"
)

type TravelRequestService interface {
	Create(input *models.CreateTravelRequestInput, userID int) (*models.TravelRequestResponse, error)
	ListByUser(userID int) ([]*models.TravelRequestResponse, error)
	ListAll() ([]*models.TravelRequestResponse, error)
	ChangeStatus(id int, status string, actingRole models.Role) (*models.TravelRequestResponse, error)
}

type travelRequestService struct {
	repo repositories.TravelRequestRepository
}

func NewTravelRequestService(repo repositories.TravelRequestRepository) TravelRequestService {
	return &travelRequestService{repo: repo}
}

func (s *travelRequestService) Create(input *models.CreateTravelRequestInput, userID int) (*models.TravelRequestResponse, error) {
	if strings.EqualFold(input.Origin, input.Destination) {
		return nil, fmt.Errorf("%w: origin and destination must differ", ErrInvalidRequest)
	}
	// equal dates fail too
	if !input.ReturnDate.After(input.DepartureDate) {
		return nil, fmt.Errorf("%w: return date must exceed departure date", ErrInvalidRequest)
	}

	request := &models.TravelRequest{
		Origin:        input.Origin,
		Destination:   input.Destination,
		DepartureDate: input.DepartureDate,
		ReturnDate:    input.ReturnDate,
		Justification: input.Justification,
		Status:        models.StatusPending,
		CreatedAt:     time.Now(),
		UserID:        userID,
	}
	if err := s.repo.Create(request); err != nil {
		return nil, err
	}

	log.Printf("[requests][create] created id=%d user_id=%d", request.ID, userID)
	return mapTravelRequest(request), nil
}

func (s *travelRequestService) ListByUser(userID int) ([]*models.TravelRequestResponse, error) {
	requests, err := s.repo.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	return mapTravelRequests(requests), nil
}

func (s *travelRequestService) ListAll() ([]*models.TravelRequestResponse, error) {
	requests, err := s.repo.ListAll()
	if err != nil {
		return nil, err
	}
	return mapTravelRequests(requests), nil
}

func (s *travelRequestService) ChangeStatus(id int, status string, actingRole models.Role) (*models.TravelRequestResponse, error) {
	if actingRole != models.RoleApprover {
		return nil, fmt.Errorf("%w: approver role required", ErrForbidden)
	}

	request, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if request == nil {
		return nil, fmt.Errorf("%w: travel request not found", ErrNotFound)
	}

	newStatus, ok := models.ParseRequestStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: invalid status, must be Approved or Rejected", ErrInvalidRequest)
	}
	// decided requests stay decided; nothing goes back to Pending
	if newStatus == models.StatusPending {
		return nil, fmt.Errorf("%w: cannot revert to Pending", ErrInvalidRequest)
	}

	request.Status = newStatus
	if err := s.repo.Update(request); err != nil {
		return nil, err
	}

	log.Printf("[requests][status] id=%d changed to %s", id, newStatus)
	return mapTravelRequest(request), nil
}

func mapTravelRequest(r *models.TravelRequest) *models.TravelRequestResponse {
	return &models.TravelRequestResponse{
		ID:            r.ID,
		Origin:        r.Origin,
		Destination:   r.Destination,
		DepartureDate: r.DepartureDate.Format("2006-01-02"),
		ReturnDate:    r.ReturnDate.Format("2006-01-02"),
		Justification: r.Justification,
		Status:        r.Status.String(),
		CreatedAt:     r.CreatedAt.Format("2006-01-02 15:04"),
		UserID:        r.UserID,
		UserName:      r.UserName,
	}
}

func mapTravelRequests(requests []*models.TravelRequest) []*models.TravelRequestResponse {
	out := make([]*models.TravelRequestResponse, 0, len(requests))
	for _, r := range requests {
		out = append(out, mapTravelRequest(r))
	}
	return out
}
