package symbol

// FileScope represents the declarations in a single source file
type FileScope struct {
	// The package that the file is located in, empty for the default package
	Package string
	// Every top-level type declared in the file, in source order
	Types []*TypeScope
}

// FindType searches through the file's top-level types
func (fs *FileScope) FindType() Finder {
	tf := typeFinder(*fs)
	return &tf
}

// FindInterface returns every top-level interface with exactly the given
// name, in source order
func (fs *FileScope) FindInterface(name string) []*TypeScope {
	return fs.FindType().By(func(ts *TypeScope) bool {
		return ts.Kind == Interface && ts.Name == name
	})
}

type typeFinder FileScope

func (tf *typeFinder) By(criteria func(ts *TypeScope) bool) []*TypeScope {
	results := []*TypeScope{}
	for _, typ := range tf.Types {
		if criteria(typ) {
			results = append(results, typ)
		}
	}
	return results
}

func (tf *typeFinder) ByName(name string) []*TypeScope {
	return tf.By(func(ts *TypeScope) bool {
		return ts.Name == name
	})
}

func (tf *typeFinder) ByKind(kind Kind) []*TypeScope {
	return tf.By(func(ts *TypeScope) bool {
		return ts.Kind == kind
	})
}
