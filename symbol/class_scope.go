package symbol

import "fmt"

// Kind is the kind of a type declaration
type Kind int

const (
	Class Kind = iota
	Interface
	Enum
	Record
	Annotation
)

// Maps the tree-sitter declaration node types to their kinds
var declarationKinds = map[string]Kind{
	"class_declaration":           Class,
	"interface_declaration":       Interface,
	"enum_declaration":            Enum,
	"record_declaration":          Record,
	"annotation_type_declaration": Annotation,
}

func (k Kind) String() string {
	switch k {
	case Class:
		return "class"
	case Interface:
		return "interface"
	case Enum:
		return "enum"
	case Record:
		return "record"
	case Annotation:
		return "annotation"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// TypeScope represents a single declared type, and the declarations in its body
type TypeScope struct {
	Name string
	Kind Kind
	// Every declaration in the body, in source order
	Members []Member
}

// Methods returns only the method members of the type, in source order
func (ts *TypeScope) Methods() []*Method {
	methods := []*Method{}
	for _, member := range ts.Members {
		if method, ok := member.(*Method); ok {
			methods = append(methods, method)
		}
	}
	return methods
}

func (ts TypeScope) String() string {
	return fmt.Sprintf("Name: %s Kind: %v Members: %d", ts.Name, ts.Kind, len(ts.Members))
}
