package handler

import (
	"net/http"

	"github.com/BloggingApp/story-service/internal/dto"
	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

func (h *Handler) postsCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreatePostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	createdPost, err := h.services.Posts.Create(c.Request.Context(), &model.Post{
		Title:    input.Title,
		Content:  input.Content,
		Author:   user.Username,
		AuthorID: user.ID,
		Tags:     utils.ParseTags(input.Tags),
	})
	if err != nil {
		c.JSON(statusFromError(err), dto.NewErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, createdPost)
}

func (h *Handler) postsEdit(c *gin.Context) {
	post, ok := editableContent(c, h.services.Posts, h.getUserFromRequest(c), "postID")
	if !ok {
		return
	}

	var input dto.EditPostRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	patch := model.PostPatch{
		Title:   input.Title,
		Content: input.Content,
	}
	if input.Tags != nil {
		tags := utils.ParseTags(*input.Tags)
		patch.Tags = &tags
	}

	if err := h.services.Posts.Update(c.Request.Context(), post.ID, patch); err != nil {
		c.JSON(statusFromError(err), dto.NewErrorResponse(err))
		return
	}

	updatedPost, ok := h.services.Posts.Get(post.ID)
	writeContent(c, updatedPost, ok)
}
