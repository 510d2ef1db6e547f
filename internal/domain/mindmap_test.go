package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMindmapNodeIDs(t *testing.T) {
	assert.Equal(t, "module_0", ModuleNodeID(0))
	assert.Equal(t, "topic_2_5", TopicNodeID(2, 5))
}

func TestMindmapNode_CountLeaves(t *testing.T) {
	root := &MindmapNode{ID: RootNodeID, Kind: NodeKindRoot, Children: []*MindmapNode{
		{Kind: NodeKindModule, Children: []*MindmapNode{{Kind: NodeKindTopic}, {Kind: NodeKindTopic}}},
		{Kind: NodeKindModule},
		{Kind: NodeKindModule, Children: []*MindmapNode{{Kind: NodeKindTopic}}},
	}}
	assert.Equal(t, 3, root.CountLeaves())
}
