package v1

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/agency_dispatch_system/internal/models"
	"github.com/sirupsen/logrus"
)

// parseFields разбирает ?fields=a,b,c; пустой параметр означает "все поля"
func parseFields(raw string) []string {
	if raw == "" {
		return nil
	}
	fields := make([]string, 0)
	for _, f := range strings.Split(raw, ",") {
		if f = strings.TrimSpace(f); f != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// includeImageURL включен по умолчанию; выключается только явным false
func includeImageURL(c *gin.Context) bool {
	include, err := strconv.ParseBool(c.DefaultQuery("includeImageUrl", "true"))
	return err != nil || include
}

// @Summary Get event
// @Description Get an event projected to the requested fields
// @Tags Events
// @Produce json
// @Param event_id path string true "Event ID"
// @Param fields query string false "Comma separated list of fields"
// @Param includeImageUrl query bool false "Resolve the first incident image to a data URI" default(true)
// @Success 200 {object} DataResponse "Event"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /events/{event_id} [get]
func (h *Handler) getEvent(c *gin.Context) {
	eventID := c.Param("event_id")
	log := h.logger.WithFields(logrus.Fields{"handler": "getEvent", "event_id": eventID})

	event, err := h.events.GetByID(c.Request.Context(), eventID, parseFields(c.Query("fields")), includeImageURL(c))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: event})
}

// @Summary Update event status
// @Description Move an event along pending -> Accepted -> Assigned -> Resolved
// @Tags Events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event_id path string true "Event ID"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} DataResponse "Number of updated events"
// @Failure 400 {object} ErrorResponse "Invalid status or missing fields"
// @Failure 401 {object} ErrorResponse "Agency mismatch"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Failure 409 {object} ErrorResponse "Illegal transition"
// @Router /events/status/{event_id} [put]
func (h *Handler) updateEventStatus(c *gin.Context) {
	eventID := c.Param("event_id")
	log := h.logger.WithFields(logrus.Fields{"handler": "updateEventStatus", "event_id": eventID})

	var req UpdateStatusRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	// агентство берется из токена; чужой agencyId в теле отклоняется
	claims := claimsFrom(c)
	if req.AgencyID != "" && !requireSelf(c, req.AgencyID) {
		return
	}

	updated, err := h.events.UpdateStatus(c.Request.Context(), models.StatusUpdate{
		EventID:         eventID,
		Status:          req.Status,
		AgencyID:        claims.AgencyID,
		GroundStaffName: req.GroundStaffName,
		GroundStaffID:   req.GroundStaffID,
	})
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Event status updated", "modifiedCount": updated})
}

// @Summary Event report
// @Description Detailed report of an event with incidents and bounding boxes
// @Tags Events
// @Produce json
// @Security BearerAuth
// @Param event_id path string true "Event ID"
// @Param fields query string false "Comma separated list of extra fields"
// @Param includeImageUrl query bool false "Resolve incident images" default(true)
// @Success 200 {object} EventReportResponse "Report"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /event-report/{event_id} [get]
func (h *Handler) eventReport(c *gin.Context) {
	eventID := c.Param("event_id")
	log := h.logger.WithFields(logrus.Fields{"handler": "eventReport", "event_id": eventID})

	report, err := h.events.GetReport(c.Request.Context(), eventID, parseFields(c.Query("fields")), includeImageURL(c), claimsFrom(c).AgencyID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, EventReportResponse{Success: true, EventReport: report})
}

// @Summary Incident images
// @Description All incidents of an event with resolved images
// @Tags Events
// @Produce json
// @Param event_id path string true "Event ID"
// @Success 200 {object} IncidentImagesResponse "Incidents"
// @Failure 404 {object} ErrorResponse "Event not found"
// @Router /incident-images/{event_id} [get]
func (h *Handler) incidentImages(c *gin.Context) {
	eventID := c.Param("event_id")
	log := h.logger.WithFields(logrus.Fields{"handler": "incidentImages", "event_id": eventID})

	incidents, err := h.events.ListIncidentImages(c.Request.Context(), eventID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	if incidents == nil {
		incidents = []models.IncidentView{}
	}
	c.JSON(http.StatusOK, IncidentImagesResponse{EventID: eventID, Incidents: incidents})
}
