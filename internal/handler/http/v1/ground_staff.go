package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary Add ground staff
// @Description Register a ground staff member for the authenticated agency
// @Tags GroundStaff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staff body AddGroundStaffRequest true "Ground staff data"
// @Success 201 {object} AddGroundStaffResponse "Ground staff added"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized or agency mismatch"
// @Failure 404 {object} ErrorResponse "Agency not found"
// @Failure 409 {object} ErrorResponse "Number already registered"
// @Router /agency/addgroundstaff [post]
func (h *Handler) addGroundStaff(c *gin.Context) {
	log := h.logger.WithField("handler", "addGroundStaff")

	var req AddGroundStaffRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	agencyID := claimsFrom(c).AgencyID
	if req.AgencyID != "" && !requireSelf(c, req.AgencyID) {
		return
	}

	id, err := h.groundStaff.Add(c.Request.Context(), models.AddGroundStaffInput{
		Name:     req.Name,
		Number:   req.Number,
		Address:  req.Address,
		AgencyID: agencyID,
		Password: req.Password,
	})
	if err != nil {
		h.respondError(c, log.WithField("agency_id", agencyID), err)
		return
	}

	c.JSON(http.StatusCreated, AddGroundStaffResponse{
		Success:       true,
		Message:       "Ground staff added successfully",
		GroundStaffID: id,
	})
}

// @Summary List ground staff
// @Description List ground staff of the authenticated agency
// @Tags GroundStaff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agency ID"
// @Success 200 {object} DataResponse{data=[]GroundStaffResponse} "Ground staff"
// @Failure 401 {object} ErrorResponse "Unauthorized or agency mismatch"
// @Router /agencies/{id}/groundstaff [get]
func (h *Handler) listGroundStaff(c *gin.Context) {
	agencyID := c.Param("id")
	log := h.logger.WithFields(logrus.Fields{"handler": "listGroundStaff", "agency_id": agencyID})

	if !requireSelf(c, agencyID) {
		return
	}

	staff, err := h.groundStaff.ListByAgency(c.Request.Context(), agencyID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: ModelsToGroundStaffResponses(staff)})
}

// @Summary Ground staff login
// @Description Authenticate a ground staff member by number and password
// @Tags GroundStaff
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} GroundStaffLoginResponse "Login successful"
// @Failure 401 {object} ErrorResponse "Invalid mobile number or password"
// @Failure 429 {object} ErrorResponse "Too many login attempts"
// @Router /groundstaff/login [post]
func (h *Handler) loginGroundStaff(c *gin.Context) {
	log := h.logger.WithField("handler", "loginGroundStaff")

	var req LoginRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	result, err := h.groundStaff.Login(c.Request.Context(), req.MobileNumber, req.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, GroundStaffLoginResponse{
		Success:     true,
		Message:     "Login successful",
		Token:       result.Token,
		ExpiresAt:   result.ExpiresAt,
		GroundStaff: ModelToGroundStaffResponse(result.Staff),
	})
}

// @Summary Ground staff tasks
// @Description Events of the agency assigned to the authenticated ground staff member
// @Tags GroundStaff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agency ID"
// @Success 200 {object} DataResponse "Assigned events"
// @Failure 401 {object} ErrorResponse "Unauthorized or agency mismatch"
// @Router /agencies/{id}/groundstaff/tasks [get]
func (h *Handler) groundStaffTasks(c *gin.Context) {
	agencyID := c.Param("id")
	claims := claimsFrom(c)
	log := h.logger.WithFields(logrus.Fields{
		"handler":         "groundStaffTasks",
		"agency_id":       agencyID,
		"ground_staff_id": claims.GroundStaffID,
	})

	if !requireSelf(c, agencyID) {
		return
	}

	events, err := h.groundStaff.TasksFor(c.Request.Context(), agencyID, claims.GroundStaffID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if events == nil {
		events = []*models.Event{}
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: events})
}
