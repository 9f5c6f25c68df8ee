package properties_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/latticedb/planner/properties"
)

func TestThing(t *testing.T) {
	var zero properties.Thing
	require.False(t, zero.HasIID())
	require.False(t, zero.HasTypes())
	require.False(t, zero.HasEqualityPredicate())

	withIID := properties.Thing{IID: "0xAB"}
	require.True(t, withIID.HasIID())

	withTypes := properties.Thing{
		Types:      []string{"person"},
		Predicates: []properties.Predicate{{Kind: properties.PredicateEQ, Value: "bob"}},
	}
	require.True(t, withTypes.HasTypes())
	require.True(t, withTypes.HasEqualityPredicate())

	withIneq := properties.Thing{
		Types:      []string{"person"},
		Predicates: []properties.Predicate{{Kind: properties.PredicateGT, Value: 10}},
	}
	require.False(t, withIneq.HasEqualityPredicate())
}

func TestType(t *testing.T) {
	var zero properties.Type
	require.False(t, zero.HasLabel())
	require.False(t, zero.HasValueConstraint())

	labeled := properties.Type{Label: "person"}
	require.True(t, labeled.HasLabel())

	abstract := properties.Type{IsAbstract: true}
	require.False(t, abstract.HasLabel())

	valued := properties.Type{ValueType: "long"}
	require.True(t, valued.HasValueConstraint())

	regexed := properties.Type{Regex: "^[a-z]+$"}
	require.True(t, regexed.HasValueConstraint())
}
