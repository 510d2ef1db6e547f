// Package mindmap derives a root -> module -> topic tree from course data.
//
// Unlike validation.ValidateCourse, derivation is tolerant: only a missing
// course title or module list is fatal. A title of any type is accepted.
// Bad modules and topics are skipped.
package mindmap

import (
	"fmt"

	"go.uber.org/zap"

	"craftify/internal/domain"
	"craftify/internal/logger"
	"craftify/internal/validation"
)

// Build derives the mindmap for a decoded course document. A string input is
// treated as course JSON and parsed first.
func Build(doc any) (*domain.MindmapNode, error) {
	if text, ok := doc.(string); ok {
		parsed, err := validation.DecodePayload(text)
		if err != nil {
			return nil, err
		}
		doc = parsed
	}

	course, ok := doc.(map[string]any)
	if !ok {
		return nil, domain.NewSchemaViolationError([]string{"course must be a JSON object"})
	}

	rawTitle, ok := course["courseTitle"]
	if !ok {
		return nil, domain.NewSchemaViolationError([]string{"course is missing required field: courseTitle"})
	}
	title := courseLabel(rawTitle)

	rawModules, ok := course["modules"]
	if !ok {
		return nil, domain.NewSchemaViolationError([]string{"course is missing required field: modules"})
	}
	modules, ok := rawModules.([]any)
	if !ok {
		return nil, domain.NewSchemaViolationError([]string{"modules must be a list"})
	}

	root := &domain.MindmapNode{
		ID:       domain.RootNodeID,
		Kind:     domain.NodeKindRoot,
		Label:    title,
		Children: make([]*domain.MindmapNode, 0, len(modules)),
	}
	for i, m := range modules {
		if node := moduleNode(i, m); node != nil {
			root.Children = append(root.Children, node)
		}
	}
	return root, nil
}

// courseLabel renders a non-string title rather than rejecting the course.
// A null title becomes an empty label.
func courseLabel(raw any) string {
	if title, ok := raw.(string); ok {
		return title
	}
	logger.Get().Warn("courseTitle is not a string", zap.Any("course_title", raw))
	if raw == nil {
		return ""
	}
	return fmt.Sprint(raw)
}

func moduleNode(idx int, raw any) *domain.MindmapNode {
	log := logger.Get()

	module, ok := raw.(map[string]any)
	if !ok {
		log.Warn("Skipping malformed module", zap.Int("module_index", idx))
		return nil
	}
	title, ok := module["moduleTitle"].(string)
	if !ok {
		log.Warn("Skipping module without title", zap.Int("module_index", idx))
		return nil
	}

	node := &domain.MindmapNode{
		ID:       domain.ModuleNodeID(idx),
		Kind:     domain.NodeKindModule,
		Label:    title,
		Children: []*domain.MindmapNode{},
	}

	topics, ok := module["keyTopics"].([]any)
	if !ok {
		if _, present := module["keyTopics"]; present {
			log.Warn("Ignoring non-list keyTopics", zap.Int("module_index", idx))
		}
		return node
	}
	for j, t := range topics {
		topic, ok := t.(string)
		if !ok {
			log.Warn("Skipping non-string topic", zap.Int("module_index", idx), zap.Int("topic_index", j))
			continue
		}
		node.Children = append(node.Children, topicNode(idx, j, topic))
	}
	return node
}

func topicNode(moduleIdx, topicIdx int, label string) *domain.MindmapNode {
	return &domain.MindmapNode{
		ID:       domain.TopicNodeID(moduleIdx, topicIdx),
		Kind:     domain.NodeKindTopic,
		Label:    label,
		Children: []*domain.MindmapNode{},
	}
}
