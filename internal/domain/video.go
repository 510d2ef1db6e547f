package domain

import (
	"context"
	"net/url"
)

// Video is the first usable search candidate for a topic.
type Video struct {
	ID    string `json:"videoId"`
	Title string `json:"title,omitempty"`
}

// VideoSearcher finds an illustrative video for a topic. Implementations
// return a NOT_FOUND DomainError when no candidate is usable.
type VideoSearcher interface {
	Search(ctx context.Context, topic string) (*Video, error)
}

const watchURLPrefix = "https://www.youtube.com/watch?v="

// VideoURL derives the canonical watch URL for a video id without any network access.
func VideoURL(videoID string) string {
	return watchURLPrefix + url.QueryEscape(videoID)
}
