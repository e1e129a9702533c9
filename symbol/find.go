package symbol

// Finder represents an object that can search through its contents for a given
// list of type declarations that match a certain criteria
type Finder interface {
	By(criteria func(ts *TypeScope) bool) []*TypeScope
	ByName(name string) []*TypeScope
	ByKind(kind Kind) []*TypeScope
}
