package symbol

import "fmt"

// Member is a single declaration directly inside a type's body. It is either a
// *Method or an *OtherMember
type Member interface {
	// MemberName is the declared name of the member, empty if it has none
	MemberName() string
	isMember()
}

// Method represents a method declared in a type's body, with or without a body
type Method struct {
	Name string
	// The return type, as written in the source, such as `List<String>`
	ReturnType string
	// Parameters in declaration order
	Parameters []Parameter
	// Exception types from the `throws` clause, in declaration order
	Exceptions []string
	// The comment attached to the method, if any
	Comment Optional[string]
}

func (m *Method) MemberName() string { return m.Name }
func (*Method) isMember()            {}

func (m Method) String() string {
	return fmt.Sprintf("Name: %s Type: %s Parameters: %v Exceptions: %v", m.Name, m.ReturnType, m.Parameters, m.Exceptions)
}

// Parameter is a single formal parameter of a method
type Parameter struct {
	Type string
	Name string
}

func (p Parameter) String() string {
	return fmt.Sprintf("%s %s", p.Type, p.Name)
}

// OtherMember is any member that is not a method: constants, fields,
// constructors, initializers and nested types
type OtherMember struct {
	// The tree-sitter node type of the declaration, such as `constant_declaration`
	Kind string
	Name string
}

func (o *OtherMember) MemberName() string { return o.Name }
func (*OtherMember) isMember()            {}

func (o OtherMember) String() string {
	return fmt.Sprintf("Name: %s Kind: %s", o.Name, o.Kind)
}
