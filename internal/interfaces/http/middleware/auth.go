package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/supporthub/supporthub/internal/domain/user"
	"github.com/supporthub/supporthub/internal/infrastructure/auth"
	"github.com/supporthub/supporthub/internal/shared/constants"
	"github.com/supporthub/supporthub/internal/shared/logger"
	"github.com/supporthub/supporthub/internal/shared/utils"
)

type TokenVerifier interface {
	Verify(token string) (*auth.Claims, error)
}

// AuthMiddleware accepts bearer tokens whose subject is an active user. The
// role and display name come from the stored user, not the token.
type AuthMiddleware struct {
	verifier TokenVerifier
	userRepo user.Repository
	logger   logger.Interface
}

func NewAuthMiddleware(verifier TokenVerifier, userRepo user.Repository, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		verifier: verifier,
		userRepo: userRepo,
		logger:   logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader(constants.HeaderAuthorization)
		if authHeader == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid authorization header format")
			c.Abort()
			return
		}

		claims, err := m.verifier.Verify(strings.TrimSpace(parts[1]))
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		u, err := m.userRepo.GetByID(c.Request.Context(), claims.Subject)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				utils.ErrorResponse(c, http.StatusUnauthorized, "unknown user")
				c.Abort()
				return
			}
			m.logger.Errorw("failed to load user for token", "user_id", claims.Subject, "error", err)
			utils.ErrorResponse(c, http.StatusInternalServerError, constants.ErrMsgInternalServerError)
			c.Abort()
			return
		}
		if !u.IsActive() {
			utils.ErrorResponse(c, http.StatusUnauthorized, "user is deactivated")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, u.ID())
		c.Set(constants.ContextKeyUserRole, u.Role().String())
		c.Set(constants.ContextKeyUserName, u.Name())

		c.Next()
	}
}
