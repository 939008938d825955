package dto

// Tags are a comma separated list, as typed into the editor.
type CreateStoryRequest struct {
	Title    string `json:"title" binding:"required,min=2"`
	Subtitle string `json:"subtitle"`
	Content  string `json:"content" binding:"required"`
	Tags     string `json:"tags"`
}

type EditStoryRequest struct {
	Title    *string `json:"title" binding:"omitempty,min=2"`
	Subtitle *string `json:"subtitle"`
	Content  *string `json:"content" binding:"omitempty,min=1"`
	Tags     *string `json:"tags"`
}
