package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"portfolio-backend/internal/shared/response"
	"portfolio-backend/pkg/jwt"
)

// Context keys
const (
	ContextAdminID    = "admin_id"
	ContextAdminEmail = "admin_email"
)

// TokenValidator là phần của jwt.Manager mà middleware cần
type TokenValidator interface {
	ValidateAccessToken(token string) (*jwt.Claims, error)
}

// AuthMiddleware - Middleware xác thực JWT token của admin.
// Không có identity hợp lệ thì trả 401 trước mọi logic khác.
func AuthMiddleware(tokens TokenValidator) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing authorization header")
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid authorization header format")
			return
		}

		// 3. Verify và parse JWT
		claims, err := tokens.ValidateAccessToken(parts[1])
		if err != nil {
			log.Debug().Err(err).Str("request_id", c.GetString(ContextRequestID)).Msg("Rejected access token")
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid token")
			return
		}

		// 4. user_id phải là UUID của admin_users
		if _, err := uuid.Parse(claims.UserID); err != nil {
			response.Abort(c, http.StatusUnauthorized, "UNAUTHORIZED", "invalid user ID in token")
			return
		}

		c.Set(ContextAdminID, claims.UserID)
		c.Set(ContextAdminEmail, claims.Email)
		c.Next()
	}
}

// ActorID trả về id của admin đã xác thực ("" nếu route không qua AuthMiddleware)
func ActorID(c *gin.Context) string {
	return c.GetString(ContextAdminID)
}
