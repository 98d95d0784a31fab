package values

// MatchesAnnotation checks a value against one of the `let x as <tag>`
// annotation tags spec §4.3 names: int, float, string, bool, list, map.
func MatchesAnnotation(v Value, tag string) bool {
	switch tag {
	case "int":
		return v.Type() == IntType
	case "float":
		return v.Type() == FloatType
	case "string":
		return v.Type() == StringType
	case "bool":
		return v.Type() == BoolType
	case "list":
		return v.Type() == ListType
	case "map":
		return v.Type() == MapType
	default:
		return true // unknown tags are not enforced
	}
}
