package xchange

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tree converts the assembled document into its generic JSON tree
// (maps, slices, and primitives), the form [Prune] operates on.
func Tree(doc *Document) (map[string]any, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal document: %w", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(raw, &tree); err != nil {
		return nil, fmt.Errorf("rebuild document tree: %w", err)
	}
	return tree, nil
}

// Prune removes empty values from the tree, bottom-up: children are pruned
// before the parent is tested, so a mapping whose every entry prunes away
// is itself removed. Empty means nil, "", an empty list, or an empty
// mapping. Numbers and booleans are never empty: false and 0 survive.
// Prune returns a new tree and is idempotent.
func Prune(v any) any {
	switch node := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(node))
		for key, val := range node {
			if pruned := Prune(val); !isEmpty(pruned) {
				out[key] = pruned
			}
		}
		return out
	case []any:
		out := make([]any, 0, len(node))
		for _, val := range node {
			if pruned := Prune(val); !isEmpty(pruned) {
				out = append(out, pruned)
			}
		}
		return out
	default:
		return v
	}
}

func isEmpty(v any) bool {
	switch node := v.(type) {
	case nil:
		return true
	case string:
		return node == ""
	case map[string]any:
		return len(node) == 0
	case []any:
		return len(node) == 0
	default:
		return false
	}
}

// Encode serializes a pruned tree with two-space indentation, the format
// the converted catalog is delivered in.
func Encode(tree any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(tree); err != nil {
		return nil, fmt.Errorf("encode document: %w", err)
	}
	return buf.Bytes(), nil
}
