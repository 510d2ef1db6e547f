package service

import (
	"context"

	"go.uber.org/zap"

	"craftify/internal/domain"
	"craftify/internal/logger"
	"craftify/internal/mindmap"
)

// MindmapService derives mindmaps from course documents without any
// outbound call.
type MindmapService interface {
	GenerateMindmap(ctx context.Context, course any) (*domain.MindmapNode, error)
}

type mindmapService struct{}

func NewMindmapService() MindmapService {
	return &mindmapService{}
}

func (s *mindmapService) GenerateMindmap(_ context.Context, course any) (*domain.MindmapNode, error) {
	root, err := mindmap.Build(course)
	if err != nil {
		logger.Get().Warn("Mindmap derivation failed", zap.Error(err))
		return nil, err
	}
	logger.Get().Info("Mindmap generated",
		zap.String("course", root.Label),
		zap.Int("modules", len(root.Children)),
		zap.Int("topics", root.CountLeaves()))
	return root, nil
}
