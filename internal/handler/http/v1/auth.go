package v1

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/agency_dispatch_system/internal/auth"
	"github.com/shenikar/agency_dispatch_system/internal/config"
	"github.com/sirupsen/logrus"
)

const claimsContextKey = "auth_claims"

// APIKeyAuthMiddleware - middleware для административных маршрутов (X-API-Key)
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) == 1 {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "Invalid API key"})
			return
		}

		c.Next()
	}
}

// AgencyAuth пропускает запросы с действующим токеном агентства
func (h *Handler) AgencyAuth() gin.HandlerFunc {
	return h.tokenAuth(auth.RoleAgency)
}

// GroundStaffAuth пропускает запросы с действующим токеном сотрудника
func (h *Handler) GroundStaffAuth() gin.HandlerFunc {
	return h.tokenAuth(auth.RoleGroundStaff)
}

// tokenAuth проверяет Bearer токен: подпись, срок, роль и отзыв
func (h *Handler) tokenAuth(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := h.logger.WithFields(logrus.Fields{"middleware": "tokenAuth", "role": role})

		raw, ok := bearerToken(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "authorization token required"})
			return
		}

		claims, err := h.tokens.Parse(raw)
		if err != nil {
			log.WithError(err).Warn("Invalid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
			return
		}
		if claims.Role != role {
			log.WithField("token_role", claims.Role).Warn("Token role mismatch")
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "invalid or expired token"})
			return
		}

		revoked, err := h.revocations.IsRevoked(c.Request.Context(), claims.ID)
		if err != nil {
			log.WithError(err).Error("Failed to check token revocation")
			c.AbortWithStatusJSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
			return
		}
		if revoked {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ErrorResponse{Error: "token has been revoked"})
			return
		}

		c.Set(claimsContextKey, claims)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	return token, token != ""
}

// claimsFrom возвращает claims, сохраненные tokenAuth
func claimsFrom(c *gin.Context) *auth.Claims {
	value, ok := c.Get(claimsContextKey)
	if !ok {
		return nil
	}
	claims, _ := value.(*auth.Claims)
	return claims
}

// requireSelf проверяет, что агентство из токена совпадает с agencyID запроса
func requireSelf(c *gin.Context, agencyID string) bool {
	claims := claimsFrom(c)
	if claims == nil || claims.AgencyID != agencyID {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Agency mismatch"})
		return false
	}
	return true
}
