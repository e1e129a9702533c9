package symbol

import "strings"

// NormalizeType rewrites a type as written in the source into a canonical
// form, so that formatting differences do not show up in the output
//
// Ex: `Map< String ,List <Integer> >` -> `Map<String, List<Integer>>`
func NormalizeType(descriptor string) string {
	collapsed := strings.Join(strings.Fields(descriptor), " ")

	var result strings.Builder
	var last byte
	for i := 0; i < len(collapsed); i++ {
		char := collapsed[i]
		if char == ' ' {
			var next byte
			if i+1 < len(collapsed) {
				next = collapsed[i+1]
			}
			if strings.IndexByte("<[.( ,", last) != -1 || strings.IndexByte("<>[].,)", next) != -1 {
				continue
			}
		}
		result.WriteByte(char)
		last = char
		if char == ',' {
			result.WriteByte(' ')
			last = ' '
		}
	}
	return result.String()
}
