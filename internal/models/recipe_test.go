package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONBStringArrayValue(t *testing.T) {
	value, err := JSONBStringArray{"pasta", "salt"}.Value()
	require.NoError(t, err)
	assert.JSONEq(t, `["pasta","salt"]`, string(value.([]byte)))

	// Empty and nil arrays serialize as an empty JSON array, never null
	value, err = JSONBStringArray{}.Value()
	require.NoError(t, err)
	assert.Equal(t, "[]", value)
}

func TestJSONBStringArrayScan(t *testing.T) {
	var arr JSONBStringArray
	require.NoError(t, arr.Scan([]byte(`["a","b"]`)))
	assert.Equal(t, JSONBStringArray{"a", "b"}, arr)

	require.NoError(t, arr.Scan(`["c"]`))
	assert.Equal(t, JSONBStringArray{"c"}, arr)

	require.NoError(t, arr.Scan(nil))
	assert.Empty(t, arr)
}
