package v1

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/agency_dispatch_system/internal/geo"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// @Summary Register a new agency
// @Description Register an agency with location, tags and optional jurisdiction polygon
// @Tags Agencies
// @Accept json
// @Produce json
// @Param agency body CreateAgencyRequest true "Agency data"
// @Success 201 {object} CreateAgencyResponse "Agency created"
// @Failure 400 {object} ErrorResponse "Invalid request body or validation error"
// @Failure 409 {object} ErrorResponse "Mobile number already registered"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /agency [post]
func (h *Handler) createAgency(c *gin.Context) {
	log := h.logger.WithField("handler", "createAgency")

	var req CreateAgencyRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	agencyID, err := h.agencies.Create(c.Request.Context(), DTOToCreateAgencyInput(req))
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusCreated, CreateAgencyResponse{
		Success:  true,
		Message:  "Agency created successfully",
		AgencyID: agencyID,
	})
}

// @Summary Agency login
// @Description Authenticate an agency by mobile number and password
// @Tags Agencies
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} AgencyLoginResponse "Login successful"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Invalid mobile number or password"
// @Failure 429 {object} ErrorResponse "Too many login attempts"
// @Router /agency/login [post]
func (h *Handler) loginAgency(c *gin.Context) {
	log := h.logger.WithField("handler", "loginAgency")

	var req LoginRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	result, err := h.agencies.Authenticate(c.Request.Context(), req.MobileNumber, req.Password)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	c.JSON(http.StatusOK, AgencyLoginResponse{
		Success:   true,
		Message:   "Login successful",
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		AgencyID:  result.Agency.AgencyID,
		Agency:    ModelToAgencyResponse(result.Agency),
	})
}

// @Summary Agency logout
// @Description Revoke the presented agency token
// @Tags Agencies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} MessageResponse "Logged out"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /agency/logout [post]
func (h *Handler) logoutAgency(c *gin.Context) {
	log := h.logger.WithField("handler", "logoutAgency")

	if err := h.agencies.Logout(c.Request.Context(), claimsFrom(c)); err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Logged out successfully"})
}

// @Summary Reset agency password
// @Description Replace the password of the authenticated agency
// @Tags Agencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body ResetPasswordRequest true "New password"
// @Success 200 {object} MessageResponse "Password updated"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized or agency mismatch"
// @Failure 404 {object} ErrorResponse "Agency not found"
// @Router /agencies/reset-password [post]
func (h *Handler) resetPassword(c *gin.Context) {
	log := h.logger.WithField("handler", "resetPassword")

	var req ResetPasswordRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	agencyID := claimsFrom(c).AgencyID
	if req.AgencyID != "" && !requireSelf(c, req.AgencyID) {
		return
	}

	if err := h.agencies.ResetPassword(c.Request.Context(), agencyID, req.NewPassword); err != nil {
		h.respondError(c, log.WithField("agency_id", agencyID), err)
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Password updated successfully"})
}

// @Summary List agencies
// @Description List agencies, optionally filtered by responsibility tag and type
// @Tags Agencies
// @Produce json
// @Param eventResponsibleFor query string false "Responsibility tag (case-insensitive)"
// @Param type query string false "Agency type" Enums(location, jurisdiction)
// @Success 200 {object} DataResponse{data=[]AgencyResponse} "List of agencies"
// @Failure 400 {object} ErrorResponse "Invalid filter"
// @Router /agencies [get]
func (h *Handler) listAgencies(c *gin.Context) {
	log := h.logger.WithField("handler", "listAgencies")

	filter := models.AgencyFilter{
		Tag:  c.Query("eventResponsibleFor"),
		Type: c.Query("type"),
	}
	if filter.Type != "" && filter.Type != models.AgencyTypeLocation && filter.Type != models.AgencyTypeJurisdiction {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "type must be location or jurisdiction"})
		return
	}

	agencies, err := h.agencies.List(c.Request.Context(), filter)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: ModelsToAgencyResponses(agencies)})
}

// @Summary Find agencies by point
// @Description Find agencies near a point (mode=location) or whose jurisdiction covers it (mode=jurisdiction)
// @Tags Agencies
// @Produce json
// @Param lat query number true "Latitude"
// @Param lng query number true "Longitude"
// @Param radius query number false "Search radius in meters" default(1000)
// @Param mode query string false "Search mode" Enums(location, jurisdiction) default(location)
// @Param eventResponsibleFor query string false "Responsibility tag"
// @Param limit query int false "Max results" default(50)
// @Success 200 {object} DataResponse{data=[]AgencyResponse} "Matching agencies"
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Router /agencies/search [get]
func (h *Handler) searchAgencies(c *gin.Context) {
	log := h.logger.WithField("handler", "searchAgencies")

	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lng, errLng := strconv.ParseFloat(c.Query("lng"), 64)
	if errLat != nil || errLng != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "lat and lng query parameters are required numbers"})
		return
	}

	// radius и limit необязательны; значения по умолчанию задает сервис
	var radius float64
	if raw := c.Query("radius"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "radius must be a number"})
			return
		}
		radius = parsed
	}
	var limit int
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		limit = parsed
	}

	search := models.PointSearch{
		Point:        geo.Point{Latitude: lat, Longitude: lng},
		RadiusMeters: radius,
		Mode:         c.DefaultQuery("mode", models.SearchModeLocation),
		Tag:          c.Query("eventResponsibleFor"),
		Limit:        limit,
	}

	matches, err := h.agencies.FindByPoint(c.Request.Context(), search)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: MatchesToAgencyResponses(matches)})
}

// @Summary Get agency
// @Description Get an agency by its AgencyId
// @Tags Agencies
// @Produce json
// @Param id path string true "Agency ID"
// @Success 200 {object} DataResponse{data=AgencyResponse} "Agency"
// @Failure 404 {object} ErrorResponse "Agency not found"
// @Router /agencies/{id} [get]
func (h *Handler) getAgency(c *gin.Context) {
	agencyID := c.Param("id")
	log := h.logger.WithFields(logrus.Fields{"handler": "getAgency", "agency_id": agencyID})

	agency, err := h.agencies.Get(c.Request.Context(), agencyID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: ModelToAgencyResponse(agency)})
}

// @Summary Update agency
// @Description Partially update the authenticated agency. "jurisdiction": null removes the polygon.
// @Tags Agencies
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Agency ID"
// @Param agency body UpdateAgencyRequest true "Fields to change"
// @Success 200 {object} UpdateAgencyResponse "Update result"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 401 {object} ErrorResponse "Unauthorized or agency mismatch"
// @Failure 404 {object} ErrorResponse "Agency not found"
// @Failure 409 {object} ErrorResponse "Mobile number already registered"
// @Router /agencies/{id} [put]
func (h *Handler) updateAgency(c *gin.Context) {
	agencyID := c.Param("id")
	log := h.logger.WithFields(logrus.Fields{"handler": "updateAgency", "agency_id": agencyID})

	if !requireSelf(c, agencyID) {
		return
	}

	var req UpdateAgencyRequest
	if !h.bindJSON(c, log, &req) {
		return
	}
	input, err := DTOToUpdateAgencyInput(req)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	modified, err := h.agencies.Update(c.Request.Context(), agencyID, input)
	if err != nil {
		h.respondError(c, log, err)
		return
	}

	message := "Agency updated successfully"
	if !modified {
		message = "No changes applied"
	}
	c.JSON(http.StatusOK, UpdateAgencyResponse{Success: true, Message: message, Modified: modified})
}

// @Summary Delete agency
// @Description Delete an agency and its ground staff
// @Tags Agencies
// @Produce json
// @Security ApiKeyAuth
// @Param id path string true "Agency ID"
// @Success 200 {object} MessageResponse "Agency deleted"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Agency not found"
// @Router /agencies/{id} [delete]
func (h *Handler) deleteAgency(c *gin.Context) {
	agencyID := c.Param("id")
	log := h.logger.WithFields(logrus.Fields{"handler": "deleteAgency", "agency_id": agencyID})

	deleted, err := h.agencies.Delete(c.Request.Context(), agencyID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "agency not found"})
		return
	}
	c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Agency deleted successfully"})
}

// @Summary Agency dashboard
// @Description Events assigned to the agency with resolved images
// @Tags Agencies
// @Produce json
// @Security BearerAuth
// @Param agencyId path string true "Agency ID"
// @Success 200 {object} models.Dashboard "Dashboard"
// @Failure 401 {object} ErrorResponse "Unauthorized or agency mismatch"
// @Failure 404 {object} ErrorResponse "Agency not found"
// @Router /agency-dashboard/{agencyId} [get]
func (h *Handler) agencyDashboard(c *gin.Context) {
	agencyID := c.Param("agencyId")
	log := h.logger.WithFields(logrus.Fields{"handler": "agencyDashboard", "agency_id": agencyID})

	if !requireSelf(c, agencyID) {
		return
	}

	dashboard, err := h.events.Dashboard(c.Request.Context(), agencyID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, dashboard)
}
