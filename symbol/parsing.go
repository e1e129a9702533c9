package symbol

import (
	"strings"

	"github.com/NickyBoy89/ifacereport/nodeutil"
	sitter "github.com/smacker/go-tree-sitter"
)

// ExtractDefinitions generates the declarations for a single source file,
// given the root `program` node of its tree
func ExtractDefinitions(root *sitter.Node, source []byte) *FileScope {
	scope := &FileScope{Types: []*TypeScope{}}
	for _, node := range nodeutil.Declarations(root) {
		if node.Type() == "package_declaration" {
			// Annotations may come before the name, so the name is the last node
			decls := nodeutil.Declarations(node)
			if len(decls) > 0 {
				scope.Package = decls[len(decls)-1].Content(source)
			}
			continue
		}
		if kind, ok := declarationKinds[node.Type()]; ok {
			scope.Types = append(scope.Types, parseTypeScope(node, kind, source))
		}
	}
	return scope
}

func parseTypeScope(node *sitter.Node, kind Kind, source []byte) *TypeScope {
	scope := &TypeScope{
		Kind:    kind,
		Members: []Member{},
	}
	if name := node.ChildByFieldName("name"); name != nil {
		scope.Name = name.Content(source)
	}

	for _, decl := range attachComments(bodyDeclarations(node.ChildByFieldName("body")), source) {
		scope.Members = append(scope.Members, parseMember(decl, source))
	}

	return scope
}

// bodyDeclarations returns the nodes directly inside a type's body, comments
// included. An enum's constants and its declarations after the `;` are
// flattened into one list
func bodyDeclarations(body *sitter.Node) []*sitter.Node {
	nodes := []*sitter.Node{}
	for _, child := range nodeutil.Children(body) {
		if child.Type() == "enum_body_declarations" {
			nodes = append(nodes, nodeutil.Children(child)...)
			continue
		}
		nodes = append(nodes, child)
	}
	return nodes
}

// A declaration in a body, along with the comment that belongs to it
type commentedNode struct {
	node    *sitter.Node
	comment *sitter.Node
}

// attachComments pairs every declaration with its comment
//
// A declaration owns the closest comment that comes before it, unless an
// empty line separates the two. A `//` comment
// that starts on the line a declaration ends on belongs to that declaration
// if it does not already have one, and never to the next declaration
func attachComments(nodes []*sitter.Node, source []byte) []commentedNode {
	decls := []commentedNode{}
	var pending *sitter.Node
	for _, node := range nodes {
		if !nodeutil.IsComment(node) {
			// A blank line between a comment and a declaration leaves the
			// comment unattached
			if pending != nil && node.StartPoint().Row > pending.EndPoint().Row+1 {
				pending = nil
			}
			decls = append(decls, commentedNode{node: node, comment: pending})
			pending = nil
			continue
		}

		if last := len(decls) - 1; last >= 0 && pending == nil &&
			nodeutil.IsLineComment(node, source) &&
			node.StartPoint().Row == decls[last].node.EndPoint().Row {
			if decls[last].comment == nil {
				decls[last].comment = node
			}
			continue
		}
		pending = node
	}
	return decls
}

func parseMember(decl commentedNode, source []byte) Member {
	if decl.node.Type() == "method_declaration" {
		method := parseMethod(decl.node, source)
		if decl.comment != nil {
			method.Comment = Some(strings.TrimRight(decl.comment.Content(source), " \t\r\n"))
		}
		return method
	}

	return &OtherMember{
		Kind: decl.node.Type(),
		Name: memberName(decl.node, source),
	}
}

func parseMethod(node *sitter.Node, source []byte) *Method {
	method := &Method{
		Name:       node.ChildByFieldName("name").Content(source),
		ReturnType: NormalizeType(node.ChildByFieldName("type").Content(source)),
		Parameters: []Parameter{},
		Exceptions: []string{},
	}
	// Array dimensions can be written after the parameter list, as in
	// `int values()[]`
	if dimensions := node.ChildByFieldName("dimensions"); dimensions != nil {
		method.ReturnType += NormalizeType(dimensions.Content(source))
	}

	for _, parameter := range nodeutil.Declarations(node.ChildByFieldName("parameters")) {
		switch parameter.Type() {
		case "formal_parameter":
			method.Parameters = append(method.Parameters, parseFormalParameter(parameter, source))
		case "spread_parameter":
			method.Parameters = append(method.Parameters, parseSpreadParameter(parameter, source))
		}
		// A `receiver_parameter` (`Foo this`) is not a parameter of the call
	}

	if throws := nodeutil.FirstChildOfType(node, "throws"); throws != nil {
		for _, exception := range nodeutil.Declarations(throws) {
			method.Exceptions = append(method.Exceptions, NormalizeType(exception.Content(source)))
		}
	}

	return method
}

// A formal parameter is of the form `final Type name[]`, where the trailing
// dimensions are part of the type
func parseFormalParameter(node *sitter.Node, source []byte) Parameter {
	param := Parameter{
		Type: NormalizeType(node.ChildByFieldName("type").Content(source)),
		Name: node.ChildByFieldName("name").Content(source),
	}
	if dimensions := node.ChildByFieldName("dimensions"); dimensions != nil {
		param.Type += NormalizeType(dimensions.Content(source))
	}
	return param
}

// A spread parameter (`String... names`) has no field names, so it is made up
// of optional modifiers, the element type, and a declarator with the name.
// The element type is reported, without the ellipsis
func parseSpreadParameter(node *sitter.Node, source []byte) Parameter {
	var param Parameter
	for _, child := range nodeutil.Declarations(node) {
		switch child.Type() {
		case "modifiers":
		case "variable_declarator":
			param.Name = child.ChildByFieldName("name").Content(source)
		default:
			if param.Type == "" {
				param.Type = NormalizeType(child.Content(source))
			}
		}
	}
	return param
}

// memberName finds the name of a non-method member. Nested types and
// constructors name themselves, while fields and constants name their first
// declarator
func memberName(node *sitter.Node, source []byte) string {
	if name := node.ChildByFieldName("name"); name != nil {
		return name.Content(source)
	}
	if declarator := node.ChildByFieldName("declarator"); declarator != nil {
		if name := declarator.ChildByFieldName("name"); name != nil {
			return name.Content(source)
		}
	}
	return ""
}
