package typeddata

import (
	"sort"
	"strings"

	"github.com/NethermindEth/juno/core/crypto"
	"github.com/NethermindEth/juno/core/felt"
)

// EncodeType renders the canonical signature of a struct type: the type's
// own block followed by the blocks of its dependencies sorted by name,
// concatenated without separators. Under Active the preset types join the
// universe (shadowing same-named declarations) and every name is
// double-quoted. An unknown root renders as the empty string.
func EncodeType(types Types, name string, rev Revision) string {
	universe := types
	if presets := rev.presetTypes(); len(presets) > 0 {
		universe = make(Types, len(types)+len(presets))
		for n, fields := range types {
			universe[n] = fields
		}
		for n, fields := range presets {
			universe[n] = fields
		}
	}

	deps := GetDependencies(universe, name, rev)
	if len(deps) == 0 {
		return ""
	}
	rest := append([]string(nil), deps[1:]...)
	sort.Strings(rest)
	ordered := append([]string{deps[0]}, rest...)

	var b strings.Builder
	for _, dep := range ordered {
		fields := universe[dep]
		parts := make([]string, len(fields))
		for i, f := range fields {
			target := f.Type
			if rev == RevisionActive && f.Type == "enum" {
				target = f.Contains
			}
			parts[i] = rev.escapeTypeName(f.Name) + ":" + renderTypeRef(target, rev)
		}
		b.WriteString(rev.escapeTypeName(dep))
		b.WriteString("(")
		b.WriteString(strings.Join(parts, ","))
		b.WriteString(")")
	}
	return b.String()
}

// renderTypeRef renders a field's type reference. Parenthesized type
// strings keep their parentheses and escape each comma-separated element
// individually, with empty elements left untouched.
func renderTypeRef(t string, rev Revision) string {
	if !isEnclosedTuple(t) {
		return rev.escapeTypeName(t)
	}
	elems := strings.Split(t[1:len(t)-1], ",")
	for i, e := range elems {
		if e != "" {
			elems[i] = rev.escapeTypeName(e)
		}
	}
	return "(" + strings.Join(elems, ",") + ")"
}

// GetTypeHash hashes a type's canonical signature with Starknet Keccak.
func GetTypeHash(types Types, name string, rev Revision) *felt.Felt {
	return crypto.StarknetKeccak([]byte(EncodeType(types, name, rev)))
}
