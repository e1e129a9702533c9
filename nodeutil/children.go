package nodeutil

import (
	sitter "github.com/smacker/go-tree-sitter"
	"golang.org/x/exp/slices"
)

// Node types the Java grammar uses for comments. Older grammars emit a single
// `comment` node, newer ones split it into line and block comments
var commentTypes = []string{"comment", "line_comment", "block_comment"}

// Children returns all the named children of a node, in source order
func Children(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.NamedChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.NamedChild(i)
	}
	return children
}

// UnnamedChildren returns every child of a node, including anonymous tokens
// such as keywords and punctuation
func UnnamedChildren(node *sitter.Node) []*sitter.Node {
	if node == nil {
		return nil
	}
	count := int(node.ChildCount())
	children := make([]*sitter.Node, count)
	for i := 0; i < count; i++ {
		children[i] = node.Child(i)
	}
	return children
}

// Declarations returns the named children of a node with comments filtered out
func Declarations(node *sitter.Node) []*sitter.Node {
	decls := []*sitter.Node{}
	for _, child := range Children(node) {
		if !IsComment(child) {
			decls = append(decls, child)
		}
	}
	return decls
}

// IsComment reports whether the node is any kind of comment
func IsComment(node *sitter.Node) bool {
	return slices.Contains(commentTypes, node.Type())
}

// IsLineComment reports whether the node is a `//` comment
func IsLineComment(node *sitter.Node, source []byte) bool {
	switch node.Type() {
	case "line_comment":
		return true
	case "comment":
		content := node.Content(source)
		return len(content) >= 2 && content[:2] == "//"
	}
	return false
}

// FirstChildOfType returns the first direct child with the given type, or nil
func FirstChildOfType(node *sitter.Node, nodeType string) *sitter.Node {
	for _, child := range UnnamedChildren(node) {
		if child.Type() == nodeType {
			return child
		}
	}
	return nil
}
