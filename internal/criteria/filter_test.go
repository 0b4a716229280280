package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild_EmptyCriteriaMeansNoFilter(t *testing.T) {
	assert.Nil(t, Build(nil))
	assert.Nil(t, Build([]Criterion{}))
}

func TestBuild_PreservesParseOrder(t *testing.T) {
	criteria := []Criterion{
		{Field: "country", Operator: OpEquals, Value: "England"},
		{Field: "firstName", Operator: OpNotEquals, Value: "Joe"},
	}

	filter := Build(criteria)

	require.NotNil(t, filter)
	assert.Equal(t, criteria, filter.Criteria())
}

func TestBuild_CopiesInput(t *testing.T) {
	criteria := []Criterion{
		{Field: "country", Operator: OpEquals, Value: "England"},
	}

	filter := Build(criteria)
	criteria[0].Value = "Spain"

	require.NotNil(t, filter)
	assert.Equal(t, "England", filter.Criteria()[0].Value)
}
