package report

import (
	"strconv"

	"github.com/NickyBoy89/ifacereport/parsing"
	"github.com/NickyBoy89/ifacereport/symbol"
	log "github.com/sirupsen/logrus"
)

// Build reports on the top-level interface with the given name in the unit
//
// The name must match exactly. If more than one top-level interface has the
// name, the first one in the source is used
func Build(unit *parsing.SourceUnit, interfaceName string) (Report, error) {
	scope := symbol.ExtractDefinitions(unit.Root(), unit.Source)

	matches := scope.FindInterface(interfaceName)
	if len(matches) == 0 {
		logMissingInterface(unit, scope, interfaceName)
		return nil, &NotFoundError{Name: interfaceName}
	}
	if len(matches) > 1 {
		log.WithFields(log.Fields{
			"source":    unit.Name,
			"interface": interfaceName,
			"matches":   len(matches),
		}).Warn("Multiple interfaces share the name, using the first one")
	}

	log.WithFields(log.Fields{
		"package":     scope.Package,
		"declaration": matches[0],
	}).Debug("Located interface")

	return FromDeclaration(matches[0]), nil
}

// logMissingInterface explains a failed lookup, listing the interfaces that
// do exist and any other kind of type that has the requested name
func logMissingInterface(unit *parsing.SourceUnit, scope *symbol.FileScope, interfaceName string) {
	available := []string{}
	for _, iface := range scope.FindType().ByKind(symbol.Interface) {
		available = append(available, iface.Name)
	}
	entry := log.WithFields(log.Fields{
		"source":     unit.Name,
		"interface":  interfaceName,
		"interfaces": available,
	})
	for _, other := range scope.FindType().ByName(interfaceName) {
		entry.WithField("kind", other.Kind.String()).Warn("Type with the requested name is not an interface")
	}
	entry.Debug("Interface not found")
}

// FromDeclaration builds the report for an already located declaration
//
// Every member is counted, but only methods are described. Each method has
// its name and type, a type and name line for each parameter, a line for each
// thrown exception, and always exactly one comment line
func FromDeclaration(decl *symbol.TypeScope) Report {
	report := Report{}
	report.add(InterfaceName, decl.Name)
	report.add(MemberCount, strconv.Itoa(len(decl.Members)))

	for _, member := range decl.Members {
		switch member := member.(type) {
		case *symbol.Method:
			report.addMethod(member)
		case *symbol.OtherMember:
			// Counted above, but not described
		}
	}

	return report
}

func (r *Report) addMethod(method *symbol.Method) {
	r.add(MethodName, method.Name)
	r.add(MethodType, method.ReturnType)
	for _, param := range method.Parameters {
		r.add(ParamType, param.Type)
		r.add(ParamName, param.Name)
	}
	for _, exception := range method.Exceptions {
		r.add(MethodException, exception)
	}
	r.add(MethodComment, method.Comment.OrElse(""))
}
