package nodeutil

import (
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
)

// ExpectType returns an error if the node is missing or its type differs from
// the expected tree-sitter node type
func ExpectType(node *sitter.Node, expectedType string) error {
	if node == nil {
		return fmt.Errorf("expected node of type %s, got nothing", expectedType)
	}
	if node.Type() != expectedType {
		return fmt.Errorf("type of node differs from expected: %s, got: %s", expectedType, node.Type())
	}
	return nil
}
