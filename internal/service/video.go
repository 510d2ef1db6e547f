package service

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"craftify/internal/cache"
	"craftify/internal/config"
	"craftify/internal/domain"
	"craftify/internal/dto"
	"craftify/internal/logger"
)

// VideoService finds an illustrative video for a topic.
type VideoService interface {
	GetVideo(ctx context.Context, topic string) (*dto.VideoResponse, error)
}

type videoService struct {
	searcher domain.VideoSearcher
	cache    domain.Cache
	ttl      time.Duration
	sfGroup  singleflight.Group
}

func NewVideoService(searcher domain.VideoSearcher, c domain.Cache, cfg *config.Config) VideoService {
	return &videoService{
		searcher: searcher,
		cache:    c,
		ttl:      cfg.ParseTTLStringOrDefault(cfg.CacheTTLs.Video, 7*24*time.Hour),
	}
}

func (s *videoService) GetVideo(ctx context.Context, topic string) (*dto.VideoResponse, error) {
	key := cache.GenerateCacheKey("video", "search", cache.TopicIdentifier(topic))

	video, ok := getCached[domain.Video](ctx, s.cache, key)
	if !ok {
		callCtx := context.WithoutCancel(ctx)
		v, err, _ := s.sfGroup.Do(key, func() (interface{}, error) {
			found, err := s.searcher.Search(callCtx, topic)
			if err != nil {
				return nil, err
			}
			putCached(callCtx, s.cache, key, found, s.ttl)
			return found, nil
		})
		if err != nil {
			return nil, err
		}
		video = v.(*domain.Video)
	}

	logger.Get().Info("Video resolved", zap.String("topic", topic), zap.String("video_id", video.ID), zap.Bool("cached", ok))
	return &dto.VideoResponse{
		VideoURL: domain.VideoURL(video.ID),
		VideoID:  video.ID,
		Title:    video.Title,
	}, nil
}
