package repository

const (
	BLOG_SESSION_KEY   = "user"
	BLOG_POSTS_KEY     = "blogPosts"
	MEDIUM_SESSION_KEY = "medium_user"
	MEDIUM_STORIES_KEY = "medium_stories"
)

// Key scopes key to a client namespace. An empty namespace leaves the key unchanged.
func Key(namespace string, key string) string {
	if namespace == "" {
		return key
	}
	return namespace + ":" + key
}
