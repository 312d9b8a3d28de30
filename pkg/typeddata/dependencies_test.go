package typeddata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDependencies(t *testing.T) {
	mail := mustParse(t, legacyMailJSON).Types

	t.Run("root comes first, shared types listed once", func(t *testing.T) {
		deps := GetDependencies(mail, "Mail", RevisionLegacy)
		assert.Equal(t, []string{"Mail", "Person"}, deps)
	})

	t.Run("unknown root yields nothing", func(t *testing.T) {
		assert.Empty(t, GetDependencies(mail, "Postcard", RevisionLegacy))
	})

	t.Run("discovery order is depth first", func(t *testing.T) {
		types := Types{
			"A": {{Name: "b", Type: "B"}, {Name: "c", Type: "C"}},
			"B": {{Name: "d", Type: "D"}},
			"C": {{Name: "d", Type: "D"}},
			"D": {{Name: "x", Type: "felt"}},
		}
		assert.Equal(t, []string{"A", "B", "D", "C"}, GetDependencies(types, "A", RevisionLegacy))
	})

	t.Run("array fields count as their element type", func(t *testing.T) {
		types := Types{
			"Thread": {{Name: "posts", Type: "Post*"}},
			"Post":   {{Name: "title", Type: "felt"}},
		}
		assert.Equal(t, []string{"Thread", "Post"}, GetDependencies(types, "Thread", RevisionLegacy))
	})

	t.Run("self reference terminates", func(t *testing.T) {
		types := Types{
			"Node": {{Name: "next", Type: "Node"}, {Name: "value", Type: "felt"}},
		}
		assert.Equal(t, []string{"Node"}, GetDependencies(types, "Node", RevisionLegacy))
	})

	t.Run("enum contains resolves under Active only", func(t *testing.T) {
		types := mustParse(t, activeEnumJSON).Types

		assert.Equal(t, []string{"Example", "My Enum"}, GetDependencies(types, "Example", RevisionActive))
		assert.Equal(t, []string{"Example"}, GetDependencies(types, "Example", RevisionLegacy))
	})

	t.Run("parenthesized type resolves by inner text under Active only", func(t *testing.T) {
		types := Types{
			"Wrapper": {{Name: "inner", Type: "(Payload)"}},
			"Payload": {{Name: "x", Type: "felt"}},
		}
		assert.Equal(t, []string{"Wrapper", "Payload"}, GetDependencies(types, "Wrapper", RevisionActive))
		assert.Equal(t, []string{"Wrapper"}, GetDependencies(types, "Wrapper", RevisionLegacy))
	})

	t.Run("array suffix wins over tuple form", func(t *testing.T) {
		types := Types{
			"Holder":    {{Name: "items", Type: "(Payload)*"}},
			"(Payload)": {{Name: "x", Type: "felt"}},
			"Payload":   {{Name: "x", Type: "felt"}},
		}
		// Stripping the suffix leaves the literal "(Payload)", which is
		// declared here and must not be unwrapped further.
		assert.Equal(t, []string{"Holder", "(Payload)"}, GetDependencies(types, "Holder", RevisionActive))
	})
}
