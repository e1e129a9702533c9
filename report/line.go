package report

// Descriptions used for every line of a report
const (
	InterfaceName     = "interface name"
	MemberCount       = "interface has member count"
	MethodName        = "·method name"
	MethodType        = "·method type"
	ParamType         = "··param type"
	ParamName         = "··param name"
	MethodException   = "··method exception"
	MethodComment     = "·method comment"
	descriptionSuffix = ": "
)

// Line is a single labeled value in a report
type Line struct {
	Description string `json:"description" yaml:"description"`
	Value       string `json:"value" yaml:"value"`
}

// String formats the line the way it is printed, `description: value`
func (l Line) String() string {
	return l.Description + descriptionSuffix + l.Value
}

// Report is the ordered list of lines describing one interface. The order is
// the order the declarations appear in the source
type Report []Line

func (r *Report) add(description, value string) {
	*r = append(*r, Line{Description: description, Value: value})
}

// Strings returns every line of the report in its printed form
func (r Report) Strings() []string {
	lines := make([]string, len(r))
	for i, line := range r {
		lines[i] = line.String()
	}
	return lines
}
