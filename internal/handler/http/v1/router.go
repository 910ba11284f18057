package v1

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	loginLimiter := NewLoginRateLimiter(h.cfg.LoginRateLimit, h.cfg.LoginRateBurst)
	apiKey := APIKeyAuthMiddleware(h.cfg, h.logger)
	agencyAuth := h.AgencyAuth()

	// Реестр агентств
	api.POST("/agency", h.createAgency)
	api.POST("/agency/login", loginLimiter.Middleware(), h.loginAgency)
	api.POST("/agency/logout", agencyAuth, h.logoutAgency)
	api.POST("/agency/addgroundstaff", agencyAuth, h.addGroundStaff)
	api.GET("/agency-dashboard/:agencyId", agencyAuth, h.agencyDashboard)

	agencies := api.Group("/agencies")
	{
		agencies.GET("", h.listAgencies)
		agencies.GET("/search", h.searchAgencies)
		agencies.POST("/reset-password", agencyAuth, h.resetPassword)
		agencies.GET("/:id", h.getAgency)
		agencies.PUT("/:id", agencyAuth, h.updateAgency)
		agencies.DELETE("/:id", apiKey, h.deleteAgency)
		agencies.GET("/:id/groundstaff", agencyAuth, h.listGroundStaff)
		agencies.GET("/:id/groundstaff/tasks", h.GroundStaffAuth(), h.groundStaffTasks)
	}

	// Сотрудники
	api.POST("/groundstaff/login", loginLimiter.Middleware(), h.loginGroundStaff)

	// Пользователи, присылающие снимки
	users := api.Group("/users")
	{
		users.POST("/register", h.registerUser)
		users.POST("/login", loginLimiter.Middleware(), h.loginUser)
	}

	// События
	api.GET("/events/:event_id", h.getEvent)
	api.PUT("/events/status/:event_id", agencyAuth, h.updateEventStatus)
	api.GET("/event-report/:event_id", agencyAuth, h.eventReport)
	api.GET("/incident-images/:event_id", h.incidentImages)

	// Снимки и модели
	api.GET("/images/latest", h.latestImages)
	api.GET("/images/:bucket/:year/*filename", h.streamImage)
	api.POST("/upload-image", h.uploadImage)
	api.GET("/active-model", h.activeModel)
	api.POST("/switch-model", apiKey, h.switchModel)

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}

// NewRouter собирает gin.Engine с общими middleware и маршрутами API
func NewRouter(h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), AccessLog(h.logger))

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-API-Key", requestIDHeader},
		ExposeHeaders:    []string{requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(h.cfg.CORSAllowedOrigins) == 0 || (len(h.cfg.CORSAllowedOrigins) == 1 && h.cfg.CORSAllowedOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = h.cfg.CORSAllowedOrigins
	}
	router.Use(cors.New(corsCfg))

	h.RegisterRoutes(router.Group(h.cfg.APIBasePath))
	return router
}
