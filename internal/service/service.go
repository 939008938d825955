package service

import (
	"context"

	"github.com/BloggingApp/story-service/internal/config"
	"github.com/BloggingApp/story-service/internal/metrics"
	"github.com/BloggingApp/story-service/internal/model"
	"github.com/BloggingApp/story-service/internal/repository"
	"go.uber.org/zap"
)

type PostStore = ContentStore[*model.Post, model.PostPatch]
type StoryStore = ContentStore[*model.Story, model.StoryPatch]

// Service wires one client context: a session and a content store per variant.
type Service struct {
	BlogAuth   *Session
	Posts      *PostStore
	MediumAuth *Session
	Stories    *StoryStore
}

func New(logger *zap.Logger, repo *repository.Repository, cfg config.StorageConfig, m *metrics.Metrics) *Service {
	blog := BlogVariant(cfg.Namespace)
	blogUsers := BlogCredentials()

	medium := MediumVariant(cfg.Namespace)
	mediumUsers := MediumCredentials()

	return &Service{
		BlogAuth:   NewSession(logger, repo.Storage, blogUsers, blog, m),
		Posts:      NewContentStore[*model.Post, model.PostPatch](logger, repo.Storage, blogUsers, blog, BlogSeed, m),
		MediumAuth: NewSession(logger, repo.Storage, mediumUsers, medium, m),
		Stories:    NewContentStore[*model.Story, model.StoryPatch](logger, repo.Storage, mediumUsers, medium, MediumSeed, m),
	}
}

// Init restores both sessions and loads or seeds both collections.
func (s *Service) Init(ctx context.Context) error {
	s.BlogAuth.Restore(ctx)
	s.MediumAuth.Restore(ctx)

	if err := s.Posts.Initialize(ctx); err != nil {
		return err
	}
	return s.Stories.Initialize(ctx)
}
