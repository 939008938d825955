package service

import "github.com/BloggingApp/story-service/internal/repository"

const (
	VariantBlog   = "blog"
	VariantMedium = "medium"
)

// Variant names a content flavour and the storage keys it owns.
type Variant struct {
	Name          string
	SessionKey    string
	CollectionKey string
}

func BlogVariant(namespace string) Variant {
	return Variant{
		Name:          VariantBlog,
		SessionKey:    repository.Key(namespace, repository.BLOG_SESSION_KEY),
		CollectionKey: repository.Key(namespace, repository.BLOG_POSTS_KEY),
	}
}

func MediumVariant(namespace string) Variant {
	return Variant{
		Name:          VariantMedium,
		SessionKey:    repository.Key(namespace, repository.MEDIUM_SESSION_KEY),
		CollectionKey: repository.Key(namespace, repository.MEDIUM_STORIES_KEY),
	}
}
