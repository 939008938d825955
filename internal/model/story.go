package model

import "time"

// Story is a medium-style post. PublishedAt plays the role of a creation timestamp.
type Story struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Subtitle     string    `json:"subtitle"`
	Content      string    `json:"content"`
	Author       string    `json:"author"`
	AuthorID     string    `json:"authorId"`
	AuthorAvatar string    `json:"authorAvatar"`
	ReadTime     int       `json:"readTime"`
	Tags         []string  `json:"tags"`
	Claps        int64     `json:"claps"`
	PublishedAt  time.Time `json:"publishedAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

type StoryPatch struct {
	Title    *string
	Subtitle *string
	Content  *string
	ReadTime *int
	Tags     *[]string
}

func (s *Story) GetID() string       { return s.ID }
func (s *Story) GetAuthorID() string { return s.AuthorID }

func (s *Story) Stamp(id string, now time.Time) {
	s.ID = id
	s.Claps = 0
	s.PublishedAt = now
	s.UpdatedAt = now
	if s.Tags == nil {
		s.Tags = []string{}
	}
}

func (s *Story) Apply(patch StoryPatch, now time.Time) {
	if patch.Title != nil {
		s.Title = *patch.Title
	}
	if patch.Subtitle != nil {
		s.Subtitle = *patch.Subtitle
	}
	if patch.Content != nil {
		s.Content = *patch.Content
	}
	if patch.ReadTime != nil {
		s.ReadTime = *patch.ReadTime
	}
	if patch.Tags != nil {
		s.Tags = cloneTags(*patch.Tags)
	}
	s.UpdatedAt = now
}

// Clap does not touch UpdatedAt.
func (s *Story) Clap() {
	s.Claps++
}

func (s *Story) HasTag(tag string) bool {
	return hasTag(s.Tags, tag)
}

func (s *Story) Clone() *Story {
	c := *s
	c.Tags = cloneTags(s.Tags)
	return &c
}
