package parsing

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/NickyBoy89/ifacereport/nodeutil"
	log "github.com/sirupsen/logrus"
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
)

// SourceUnit is a single parsed Java file. It is not modified after Load
// returns it
type SourceUnit struct {
	Name   string
	Source []byte
	Tree   *sitter.Tree
}

// Root returns the `program` node of the unit
func (unit *SourceUnit) Root() *sitter.Node {
	return unit.Tree.RootNode()
}

// Load reads the file at the given path and parses it as Java source
//
// Files that are missing, are not regular files, or cannot be opened fail
// with ErrNotFound before the parser is involved. Read failures and sources
// that contain syntax errors fail with ErrParseFailure
func Load(ctx context.Context, pathname string) (*SourceUnit, error) {
	info, err := os.Stat(pathname)
	if err != nil {
		return nil, notFound(pathname, err)
	}
	if !info.Mode().IsRegular() {
		return nil, notFound(pathname, errors.New("not a regular file"))
	}

	file, err := os.Open(pathname)
	if err != nil {
		return nil, notFound(pathname, err)
	}
	defer file.Close()

	source, err := io.ReadAll(file)
	if err != nil {
		return nil, parseFailure(pathname, err)
	}

	unit, err := Parse(ctx, pathname, source)
	if err != nil {
		return nil, err
	}

	log.WithFields(log.Fields{
		"source": pathname,
		"bytes":  len(source),
	}).Debug("Loaded source unit")

	return unit, nil
}

// Parse parses Java source that has already been read into memory. The name
// is only used to identify the unit in errors
func Parse(ctx context.Context, name string, source []byte) (*SourceUnit, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, parseFailure(name, err)
	}

	root := tree.RootNode()
	if err := nodeutil.ExpectType(root, "program"); err != nil {
		return nil, parseFailure(name, err)
	}
	if root.HasError() {
		return nil, parseFailure(name, syntaxError(root))
	}

	return &SourceUnit{Name: name, Source: source, Tree: tree}, nil
}

// syntaxError locates the first error or missing node in the tree, and
// describes where it is
func syntaxError(node *sitter.Node) error {
	if node.IsMissing() {
		point := node.StartPoint()
		return fmt.Errorf("missing %s at line %d, column %d", node.Type(), point.Row+1, point.Column+1)
	}
	if node.Type() == "ERROR" {
		point := node.StartPoint()
		return fmt.Errorf("syntax error at line %d, column %d", point.Row+1, point.Column+1)
	}
	for _, child := range nodeutil.UnnamedChildren(node) {
		if child.HasError() {
			return syntaxError(child)
		}
	}
	return errors.New("syntax error")
}
