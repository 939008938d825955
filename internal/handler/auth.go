package handler

import (
	"net/http"

	"github.com/BloggingApp/story-service/internal/dto"
	"github.com/BloggingApp/story-service/internal/service"
	"github.com/BloggingApp/story-service/pkg/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

func (h *Handler) login(session *service.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input dto.LoginRequest
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
			return
		}

		ok, err := session.Login(c.Request.Context(), input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err))
			return
		}
		if !ok {
			c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errInvalidCredentials))
			return
		}

		user, sid, _ := session.Active()
		token, err := utils.NewAccessToken(jwt.MapClaims{
			"id":       user.ID,
			"sid":      sid,
			"username": user.Username,
			"role":     string(user.Role),
			"variant":  session.Variant().Name,
		}, h.auth.AccessSecret, h.auth.TokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(service.ErrInternal))
			return
		}

		c.JSON(http.StatusOK, dto.LoginResponse{
			AccessToken: token,
			User:        user,
		})
	}
}

func (h *Handler) logout(session *service.Session) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := session.Logout(c.Request.Context()); err != nil {
			c.JSON(http.StatusInternalServerError, dto.NewErrorResponse(err))
			return
		}

		c.JSON(http.StatusOK, dto.NewBasicResponse(true, "logged out"))
	}
}

func (h *Handler) me(c *gin.Context) {
	user := h.getUserFromRequest(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errNotAuthorized))
		return
	}

	c.JSON(http.StatusOK, *user)
}
