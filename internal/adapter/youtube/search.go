// Package youtube finds an illustrative video for a topic through the
// YouTube Data API v3.
package youtube

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"go.uber.org/zap"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	yt "google.golang.org/api/youtube/v3"

	"craftify/internal/config"
	"craftify/internal/domain"
	"craftify/internal/logger"
)

const (
	videoDuration   = "medium"
	videoEmbeddable = "true"
	resultType      = "video"
)

// Searcher implements domain.VideoSearcher.
type Searcher struct {
	service    *yt.Service
	apiKey     string
	qualifier  string
	maxResults int64
}

// NewSearcher creates the YouTube client. The API key travels as the "key"
// query parameter since a custom HTTP client disables option.WithAPIKey.
func NewSearcher(ctx context.Context, cfg config.YouTubeConfig, httpClient *http.Client) (*Searcher, error) {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	opts := []option.ClientOption{option.WithHTTPClient(httpClient)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithEndpoint(cfg.BaseURL))
	}

	service, err := yt.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube client: %w", err)
	}

	maxResults := cfg.MaxResults
	if maxResults <= 0 {
		maxResults = 3
	}

	return &Searcher{
		service:    service,
		apiKey:     cfg.APIKey,
		qualifier:  cfg.LanguageQualifier,
		maxResults: maxResults,
	}, nil
}

// Query appends the language qualifier to topic.
func (s *Searcher) Query(topic string) string {
	topic = strings.TrimSpace(topic)
	if s.qualifier == "" {
		return topic
	}
	return topic + " " + s.qualifier
}

// Search returns the first candidate carrying a video id.
func (s *Searcher) Search(ctx context.Context, topic string) (*domain.Video, error) {
	call := s.service.Search.List([]string{"id", "snippet"}).
		Q(s.Query(topic)).
		Type(resultType).
		VideoDuration(videoDuration).
		VideoEmbeddable(videoEmbeddable).
		MaxResults(s.maxResults).
		Context(ctx)

	resp, err := call.Do(googleapi.QueryParameter("key", s.apiKey))
	if err != nil {
		logger.Get().Error("YouTube search failed", zap.String("topic", topic), zap.Error(err))
		return nil, domain.NewUpstreamError("youtube", err)
	}

	for _, item := range resp.Items {
		if item == nil || item.Id == nil || item.Id.VideoId == "" {
			continue
		}
		video := &domain.Video{ID: item.Id.VideoId}
		if item.Snippet != nil {
			video.Title = item.Snippet.Title
		}
		return video, nil
	}

	logger.Get().Warn("YouTube search returned no usable videos",
		zap.String("topic", topic), zap.Int("candidates", len(resp.Items)))
	return nil, domain.NewNotFoundError(fmt.Sprintf("no video found for topic %q", topic))
}
