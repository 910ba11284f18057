package v1

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shenikar/agency_dispatch_system/internal/apperror"
	"github.com/shenikar/agency_dispatch_system/internal/auth"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/shenikar/agency_dispatch_system/internal/service"
	"github.com/sirupsen/logrus"
)

// TokenParser проверяет подпись и срок действия токена
type TokenParser interface {
	Parse(raw string) (*auth.Claims, error)
}

// RevocationChecker сообщает, отозван ли токен
type RevocationChecker interface {
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}

// Services - сервисы, которые обслуживает HTTP слой
type Services struct {
	Agencies    service.AgencyService
	Events      service.EventService
	GroundStaff service.GroundStaffService
	Images      service.ImageService
	ModelConfig service.ModelConfigService
	Users       service.UserService
}

type Handler struct {
	agencies    service.AgencyService
	events      service.EventService
	groundStaff service.GroundStaffService
	images      service.ImageService
	modelConfig service.ModelConfigService
	users       service.UserService
	tokens      TokenParser
	revocations RevocationChecker
	logger      *logrus.Logger
	validate    *validator.Validate
	cfg         *config.Config
}

func NewHandler(services Services, tokens TokenParser, revocations RevocationChecker, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		agencies:    services.Agencies,
		events:      services.Events,
		groundStaff: services.GroundStaff,
		images:      services.Images,
		modelConfig: services.ModelConfig,
		users:       services.Users,
		tokens:      tokens,
		revocations: revocations,
		logger:      logger,
		validate:    validator.New(),
		cfg:         cfg,
	}
}

// bindJSON читает тело и проверяет теги validate. При ошибке ответ уже отправлен.
func (h *Handler) bindJSON(c *gin.Context, log *logrus.Entry, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
		return false
	}
	if err := h.validate.Struct(dst); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return false
	}
	return true
}

// respondError переводит класс ошибки в HTTP статус. Детали сбоев хранилища
// и зависимостей только логируются.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	kind := apperror.KindOf(err)
	entry := log.WithError(err).WithField("kind", kind.String())

	switch kind {
	case apperror.KindValidation:
		entry.Warn("Request rejected")
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: apperror.MessageOf(err)})
	case apperror.KindAuth:
		entry.Warn("Request unauthorized")
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: apperror.MessageOf(err)})
	case apperror.KindNotFound:
		entry.Info("Resource not found")
		c.JSON(http.StatusNotFound, ErrorResponse{Error: apperror.MessageOf(err)})
	case apperror.KindConflict:
		entry.Warn("Request conflicts with current state")
		c.JSON(http.StatusConflict, ErrorResponse{Error: apperror.MessageOf(err)})
	default:
		entry.Error("Request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
