package typeddata

import "strings"

// GetDependencies resolves the set of declared struct types reachable from
// root, in discovery order with root first. Array types count as their
// element type. Under Active, an enum field pulls in its variant holder
// and a parenthesized type string is looked up by its inner text.
// Undeclared names are skipped. An unknown root yields an empty list.
func GetDependencies(types Types, root string, rev Revision) []string {
	var deps []string
	seen := make(map[string]bool)

	var visit func(name, contains string)
	visit = func(name, contains string) {
		if strings.HasSuffix(name, "*") {
			name = strings.TrimSuffix(name, "*")
		} else if rev == RevisionActive {
			if name == "enum" {
				name = contains
			} else if isEnclosedTuple(name) {
				name = name[1 : len(name)-1]
			}
		}

		if seen[name] {
			return
		}
		fields, ok := types[name]
		if !ok {
			return
		}
		seen[name] = true
		deps = append(deps, name)
		for _, f := range fields {
			visit(f.Type, f.Contains)
		}
	}
	visit(root, "")

	return deps
}

// isEnclosedTuple reports whether a type string is wrapped in parentheses,
// the form enum variant payloads are declared in.
func isEnclosedTuple(s string) bool {
	return len(s) >= 2 && s[0] == '(' && s[len(s)-1] == ')'
}
