package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/internal/service"
	"github.com/BloggingApp/story-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

// authenticate accepts a bearer token only while the login that issued it is the
// session's active one. Logging out or logging in again invalidates older tokens.
func (h *Handler) authenticate(c *gin.Context, session *service.Session) (model.User, bool) {
	header := c.GetHeader("Authorization")
	if !strings.HasPrefix(header, "Bearer ") {
		abortWithError(c, http.StatusUnauthorized, errNotAuthorized)
		return model.User{}, false
	}

	accessToken := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if accessToken == "" {
		abortWithError(c, http.StatusUnauthorized, errNotAuthorized)
		return model.User{}, false
	}

	claims, err := utils.DecodeJWT(accessToken, h.auth.AccessSecret)
	if err != nil {
		abortWithError(c, http.StatusUnauthorized, errNotAuthorized)
		return model.User{}, false
	}

	id, _ := claims["id"].(string)
	sid, _ := claims["sid"].(string)
	variant, _ := claims["variant"].(string)
	user, ok := session.Verify(sid)
	if !ok || id == "" || user.ID != id || variant != session.Variant().Name {
		abortWithError(c, http.StatusUnauthorized, errNotAuthorized)
		return model.User{}, false
	}

	c.Set("user", user)
	return user, true
}

func (h *Handler) authMiddleware(session *service.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := h.authenticate(c, session); !ok {
			return
		}
		c.Next()
	}
}

func (h *Handler) adminMiddleware(session *service.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := h.authenticate(c, session)
		if !ok {
			return
		}

		if !user.IsAdmin() {
			abortWithError(c, http.StatusForbidden, errNoAccess)
			return
		}

		c.Next()
	}
}
