package config

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/bnema/kiosk/internal/domain/entity"
)

// parseBookmarks extracts the bookmarks mapping from raw YAML, keeping the
// order in which labels appear in the file.
func parseBookmarks(data []byte) (Bookmarks, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse config yaml: %w", err)
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("config root must be a mapping, got %s", kindName(root.Kind))
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		if root.Content[i].Value != "bookmarks" {
			continue
		}
		return decodeBookmarkNode(root.Content[i+1])
	}
	return nil, nil
}

func decodeBookmarkNode(node *yaml.Node) (Bookmarks, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, nil
		}
	case yaml.MappingNode:
		bookmarks := make(Bookmarks, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			var entry BookmarkEntry
			if err := node.Content[i+1].Decode(&entry); err != nil {
				return nil, fmt.Errorf("bookmark %q (line %d): %w", node.Content[i].Value, node.Content[i].Line, err)
			}
			entry.Label = node.Content[i].Value
			bookmarks = append(bookmarks, entry)
		}
		return bookmarks, nil
	}
	return nil, fmt.Errorf("bookmarks must be a mapping of label to {url, description} (line %d)", node.Line)
}

// MarshalYAML writes bookmarks back as an ordered mapping.
func (b Bookmarks) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, entry := range b {
		value := &yaml.Node{}
		if err := value.Encode(entry); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: entry.Label},
			value,
		)
	}
	return node, nil
}

// Entities converts bookmarks to domain values.
func (b Bookmarks) Entities() []entity.Bookmark {
	out := make([]entity.Bookmark, 0, len(b))
	for _, entry := range b {
		out = append(out, entity.Bookmark{
			Label:       entry.Label,
			URL:         entry.URL,
			Description: entry.Description,
		})
	}
	return out
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}
