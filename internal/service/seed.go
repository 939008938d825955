package service

import (
	_ "embed"
	"time"

	"github.com/BloggingApp/story-service/internal/model"
	"gopkg.in/yaml.v3"
)

var (
	//go:embed seed/blog_posts.yaml
	blogSeedYAML []byte
	//go:embed seed/medium_stories.yaml
	mediumSeedYAML []byte
)

const day = 24 * time.Hour

type seedPost struct {
	ID       string   `yaml:"id"`
	Title    string   `yaml:"title"`
	Content  string   `yaml:"content"`
	Author   string   `yaml:"author"`
	AuthorID string   `yaml:"author_id"`
	Tags     []string `yaml:"tags"`
	AgeDays  int      `yaml:"age_days"`
}

type seedStory struct {
	ID           string   `yaml:"id"`
	Title        string   `yaml:"title"`
	Subtitle     string   `yaml:"subtitle"`
	Content      string   `yaml:"content"`
	Author       string   `yaml:"author"`
	AuthorID     string   `yaml:"author_id"`
	AuthorAvatar string   `yaml:"author_avatar"`
	ReadTime     int      `yaml:"read_time"`
	Tags         []string `yaml:"tags"`
	Claps        int64    `yaml:"claps"`
	AgeDays      int      `yaml:"age_days"`
}

// BlogSeed returns the sample posts, dated relative to now.
func BlogSeed(now time.Time) ([]*model.Post, error) {
	var rows []seedPost
	if err := yaml.Unmarshal(blogSeedYAML, &rows); err != nil {
		return nil, err
	}

	posts := make([]*model.Post, 0, len(rows))
	for _, r := range rows {
		at := now.Add(-time.Duration(r.AgeDays) * day)
		posts = append(posts, &model.Post{
			ID:        r.ID,
			Title:     r.Title,
			Content:   r.Content,
			Author:    r.Author,
			AuthorID:  r.AuthorID,
			Tags:      seedTags(r.Tags),
			CreatedAt: at,
			UpdatedAt: at,
		})
	}
	return posts, nil
}

// MediumSeed returns the sample stories, dated relative to now.
func MediumSeed(now time.Time) ([]*model.Story, error) {
	var rows []seedStory
	if err := yaml.Unmarshal(mediumSeedYAML, &rows); err != nil {
		return nil, err
	}

	stories := make([]*model.Story, 0, len(rows))
	for _, r := range rows {
		at := now.Add(-time.Duration(r.AgeDays) * day)
		stories = append(stories, &model.Story{
			ID:           r.ID,
			Title:        r.Title,
			Subtitle:     r.Subtitle,
			Content:      r.Content,
			Author:       r.Author,
			AuthorID:     r.AuthorID,
			AuthorAvatar: r.AuthorAvatar,
			ReadTime:     r.ReadTime,
			Tags:         seedTags(r.Tags),
			Claps:        r.Claps,
			PublishedAt:  at,
			UpdatedAt:    at,
		})
	}
	return stories, nil
}

func seedTags(tags []string) []string {
	if tags == nil {
		return []string{}
	}
	return tags
}
