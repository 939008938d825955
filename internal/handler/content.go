package handler

import (
	"net/http"
	"strings"

	"github.com/BloggingApp/story-service/internal/dto"
	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/internal/service"
	"github.com/gin-gonic/gin"
)

// The handlers below serve any content variant; param names the path parameter
// holding the item id.

func contentID(c *gin.Context, param string) (string, bool) {
	id := strings.TrimSpace(c.Param(param))
	if id == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse(errInvalidID))
		return "", false
	}
	return id, true
}

func listContent[T model.Content[T, P], P any](store *service.ContentStore[T, P]) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
			c.JSON(http.StatusOK, store.FilterByTag(tag))
			return
		}

		c.JSON(http.StatusOK, store.List())
	}
}

func getContent[T model.Content[T, P], P any](store *service.ContentStore[T, P], param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := contentID(c, param)
		if !ok {
			return
		}

		item, ok := store.Get(id)
		writeContent(c, item, ok)
	}
}

// writeContent answers with item, or 404 when it is gone.
func writeContent[T any](c *gin.Context, item T, ok bool) {
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(service.ErrItemNotFound))
		return
	}

	c.JSON(http.StatusOK, item)
}

func removeContent[T model.Content[T, P], P any](store *service.ContentStore[T, P], param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := contentID(c, param)
		if !ok {
			return
		}

		if err := store.Remove(c.Request.Context(), id); err != nil {
			c.JSON(statusFromError(err), dto.NewErrorResponse(err))
			return
		}

		c.JSON(http.StatusOK, dto.NewBasicResponse(true, "deleted"))
	}
}

func clapContent[T model.Content[T, P], P any](store *service.ContentStore[T, P], param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, ok := contentID(c, param)
		if !ok {
			return
		}

		if err := store.IncrementEngagement(c.Request.Context(), id); err != nil {
			c.JSON(statusFromError(err), dto.NewErrorResponse(err))
			return
		}

		item, ok := store.Get(id)
		writeContent(c, item, ok)
	}
}

// editableContent loads the item and checks that the requesting user wrote it or is an admin.
func editableContent[T model.Content[T, P], P any](c *gin.Context, store *service.ContentStore[T, P], user *model.User, param string) (T, bool) {
	var zero T

	id, ok := contentID(c, param)
	if !ok {
		return zero, false
	}

	item, ok := store.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(service.ErrItemNotFound))
		return zero, false
	}

	if user == nil || !user.CanEdit(item.GetAuthorID()) {
		c.JSON(http.StatusForbidden, dto.NewErrorResponse(errNoAccess))
		return zero, false
	}

	return item, true
}
