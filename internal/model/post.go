package model

import "time"

type Post struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    string    `json:"author"`
	AuthorID  string    `json:"authorId"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type PostPatch struct {
	Title   *string
	Content *string
	Tags    *[]string
}

func (p *Post) GetID() string       { return p.ID }
func (p *Post) GetAuthorID() string { return p.AuthorID }

func (p *Post) Stamp(id string, now time.Time) {
	p.ID = id
	p.CreatedAt = now
	p.UpdatedAt = now
	if p.Tags == nil {
		p.Tags = []string{}
	}
}

func (p *Post) Apply(patch PostPatch, now time.Time) {
	if patch.Title != nil {
		p.Title = *patch.Title
	}
	if patch.Content != nil {
		p.Content = *patch.Content
	}
	if patch.Tags != nil {
		p.Tags = cloneTags(*patch.Tags)
	}
	p.UpdatedAt = now
}

func (p *Post) HasTag(tag string) bool {
	return hasTag(p.Tags, tag)
}

func (p *Post) Clone() *Post {
	c := *p
	c.Tags = cloneTags(p.Tags)
	return &c
}
