package handler

import (
	"net/http"

	"github.com/BloggingApp/story-service/internal/dto"
	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/pkg/utils"
	"github.com/gin-gonic/gin"
)

const defaultAvatar = "👤"

func (h *Handler) storiesCreate(c *gin.Context) {
	user := h.getUserFromRequest(c)

	var input dto.CreateStoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	avatar := user.Avatar
	if avatar == "" {
		avatar = defaultAvatar
	}

	createdStory, err := h.services.Stories.Create(c.Request.Context(), &model.Story{
		Title:        input.Title,
		Subtitle:     input.Subtitle,
		Content:      input.Content,
		Author:       user.Username,
		AuthorID:     user.ID,
		AuthorAvatar: avatar,
		ReadTime:     utils.ReadTime(input.Content),
		Tags:         utils.ParseTags(input.Tags),
	})
	if err != nil {
		c.JSON(statusFromError(err), dto.NewErrorResponse(err))
		return
	}

	c.JSON(http.StatusCreated, createdStory)
}

func (h *Handler) storiesEdit(c *gin.Context) {
	story, ok := editableContent(c, h.services.Stories, h.getUserFromRequest(c), "storyID")
	if !ok {
		return
	}

	var input dto.EditStoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewBasicResponse(false, err.Error()))
		return
	}

	patch := model.StoryPatch{
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Content:  input.Content,
	}
	if input.Content != nil {
		readTime := utils.ReadTime(*input.Content)
		patch.ReadTime = &readTime
	}
	if input.Tags != nil {
		tags := utils.ParseTags(*input.Tags)
		patch.Tags = &tags
	}

	if err := h.services.Stories.Update(c.Request.Context(), story.ID, patch); err != nil {
		c.JSON(statusFromError(err), dto.NewErrorResponse(err))
		return
	}

	updatedStory, ok := h.services.Stories.Get(story.ID)
	writeContent(c, updatedStory, ok)
}
