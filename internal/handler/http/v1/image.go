package v1

import (
	"net/http"
	"path"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// @Summary Stream image
// @Description Stream raw image bytes from object storage
// @Tags Images
// @Produce octet-stream
// @Param bucket path string true "Bucket"
// @Param year path string true "Year prefix"
// @Param filename path string true "Object name"
// @Success 200 {file} file "Image bytes"
// @Failure 404 {object} ErrorResponse "Image not found"
// @Router /images/{bucket}/{year}/{filename} [get]
func (h *Handler) streamImage(c *gin.Context) {
	bucket := c.Param("bucket")
	filename := strings.TrimPrefix(c.Param("filename"), "/")
	key := path.Join(c.Param("year"), filename)
	log := h.logger.WithFields(logrus.Fields{"handler": "streamImage", "bucket": bucket, "key": key})

	if filename == "" || strings.Contains(filename, "..") {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid image path"})
		return
	}

	data, err := h.images.GetObject(c.Request.Context(), bucket, key)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.Data(http.StatusOK, http.DetectContentType(data), data)
}

// @Summary Latest images
// @Description Most recent ingestion records
// @Tags Images
// @Produce json
// @Param limit query int false "Max records" default(3)
// @Success 200 {object} DataResponse "Images"
// @Router /images/latest [get]
func (h *Handler) latestImages(c *gin.Context) {
	log := h.logger.WithField("handler", "latestImages")

	var limit int
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "limit must be an integer"})
			return
		}
		limit = parsed
	}

	images, err := h.images.Latest(c.Request.Context(), limit)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, DataResponse{Success: true, Data: images})
}

// @Summary Upload image
// @Description Accept a base64 image and publish it to the queue of the active model
// @Tags Images
// @Accept json
// @Produce json
// @Param image body UploadImageRequest true "Image"
// @Success 200 {object} UploadImageResponse "Accepted"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Queue or storage failure"
// @Router /upload-image [post]
func (h *Handler) uploadImage(c *gin.Context) {
	log := h.logger.WithField("handler", "uploadImage")

	if h.cfg.MaxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, int64(h.cfg.MaxUploadBytes))
	}

	var req UploadImageRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	result, err := h.images.Upload(c.Request.Context(), DTOToUploadInput(req))
	if err != nil {
		h.respondError(c, log.WithField("user_id", req.UserID), err)
		return
	}
	c.JSON(http.StatusOK, UploadImageResponse{ImageID: result.ImageID, IncidentID: result.IncidentID})
}

// @Summary Active model
// @Description Currently active detection model and its queue
// @Tags Models
// @Produce json
// @Success 200 {object} ActiveModelResponse "Active model"
// @Router /active-model [get]
func (h *Handler) activeModel(c *gin.Context) {
	log := h.logger.WithField("handler", "activeModel")

	setting, err := h.modelConfig.ActiveQueue(c.Request.Context())
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToActiveModelResponse(setting))
}

// @Summary Switch model
// @Description Set the active detection model
// @Tags Models
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SwitchModelRequest true "Model"
// @Success 200 {object} ActiveModelResponse "Active model"
// @Failure 400 {object} ErrorResponse "Unknown model"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /switch-model [post]
func (h *Handler) switchModel(c *gin.Context) {
	log := h.logger.WithField("handler", "switchModel")

	var req SwitchModelRequest
	if !h.bindJSON(c, log, &req) {
		return
	}

	setting, err := h.modelConfig.SetActiveModel(c.Request.Context(), req.Model)
	if err != nil {
		h.respondError(c, log.WithField("model", req.Model), err)
		return
	}
	c.JSON(http.StatusOK, ModelToActiveModelResponse(setting))
}
