package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"travelrequests/internal/models"
	"travelrequests/internal/services"
)

const dateLayout = "2006-01-02"

type TravelRequestHandler struct {
	service services.TravelRequestService
}

func NewTravelRequestHandler(service services.TravelRequestService) *TravelRequestHandler {
	return &TravelRequestHandler{service: service}
}

// @Summary      Create a travel request
// @Description  Creates a travel request owned by the authenticated user, status Pending
// @Tags         TravelRequests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      models.CreateTravelRequestRequest  true  "Travel request data"
// @Success      201      {object}  models.TravelRequestResponse
// @Failure      400      {object}  map[string]string
// @Failure      401      {object}  map[string]string
// @Router       /solicitudes [post]
func (h *TravelRequestHandler) Create(c *gin.Context) {
	var req models.CreateTravelRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// formats already checked by binding
	departure, _ := time.Parse(dateLayout, req.DepartureDate)
	ret, _ := time.Parse(dateLayout, req.ReturnDate)

	userID, _ := getUserAndRole(c)
	input := &models.CreateTravelRequestInput{
		Origin:        req.Origin,
		Destination:   req.Destination,
		DepartureDate: departure,
		ReturnDate:    ret,
		Justification: req.Justification,
	}

	request, err := h.service.Create(input, userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// @Summary      List my travel requests
// @Description  Returns the authenticated user's requests, newest first
// @Tags         TravelRequests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.TravelRequestResponse
// @Failure      401  {object}  map[string]string
// @Router       /solicitudes/mis-solicitudes [get]
func (h *TravelRequestHandler) ListMine(c *gin.Context) {
	userID, _ := getUserAndRole(c)

	requests, err := h.service.ListByUser(userID)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// @Summary      List all travel requests
// @Description  Returns every request, newest first. Approver role only.
// @Tags         TravelRequests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   models.TravelRequestResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /solicitudes [get]
func (h *TravelRequestHandler) ListAll(c *gin.Context) {
	requests, err := h.service.ListAll()
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// @Summary      Change request status
// @Description  Approves or rejects a pending travel request. Approver role only.
// @Tags         TravelRequests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      int                         true  "Request id"
// @Param        status  body      models.ChangeStatusRequest  true  "Target status"
// @Success      200     {object}  models.TravelRequestResponse
// @Failure      400     {object}  map[string]string
// @Failure      403     {object}  map[string]string
// @Failure      404     {object}  map[string]string
// @Router       /solicitudes/{id}/estado [patch]
func (h *TravelRequestHandler) ChangeStatus(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}

	var req models.ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	_, role := getUserAndRole(c)
	request, err := h.service.ChangeStatus(id, req.Status, role)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
