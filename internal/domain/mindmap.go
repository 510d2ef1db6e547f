package domain

import "fmt"

// NodeKind is the level of a mindmap node.
type NodeKind string

const (
	NodeKindRoot   NodeKind = "root"
	NodeKindModule NodeKind = "module"
	NodeKindTopic  NodeKind = "topic"
)

// MindmapNode is a three-level tree: root -> module -> topic.
type MindmapNode struct {
	ID       string         `json:"id"`
	Kind     NodeKind       `json:"type"`
	Label    string         `json:"text"`
	Children []*MindmapNode `json:"children"`
}

const RootNodeID = "root"

// ModuleNodeID is derived from the module's 0-based position.
func ModuleNodeID(moduleIdx int) string {
	return fmt.Sprintf("module_%d", moduleIdx)
}

// TopicNodeID is derived from the module and topic 0-based positions.
func TopicNodeID(moduleIdx, topicIdx int) string {
	return fmt.Sprintf("topic_%d_%d", moduleIdx, topicIdx)
}

// CountLeaves returns the number of topic nodes below n.
func (n *MindmapNode) CountLeaves() int {
	if len(n.Children) == 0 {
		if n.Kind == NodeKindTopic {
			return 1
		}
		return 0
	}
	total := 0
	for _, child := range n.Children {
		total += child.CountLeaves()
	}
	return total
}
