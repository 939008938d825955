package dto

type CreatePostRequest struct {
	Title   string `json:"title" binding:"required,min=2"`
	Content string `json:"content" binding:"required"`
	Tags    string `json:"tags"`
}

type EditPostRequest struct {
	Title   *string `json:"title" binding:"omitempty,min=2"`
	Content *string `json:"content" binding:"omitempty,min=1"`
	Tags    *string `json:"tags"`
}
