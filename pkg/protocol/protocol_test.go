package protocol

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequestIDString(t *testing.T) {
	assert.Equal(t, "abc", NewRequestID("abc").String())
	assert.Equal(t, "42", NewNumericRequestID(42).String())
	assert.Equal(t, "", RequestID{}.String())
}

func TestRequestIDRoundTrip(t *testing.T) {
	for _, raw := range []string{`"req-1"`, `7`, `3.5`, `null`} {
		var id RequestID
		require.NoError(t, json.Unmarshal([]byte(raw), &id), raw)
		out, err := json.Marshal(id)
		require.NoError(t, err)
		assert.JSONEq(t, raw, string(out))
	}

	var id RequestID
	assert.Error(t, json.Unmarshal([]byte(`{"nested":1}`), &id))
}

func TestRequestIDNullStaysNull(t *testing.T) {
	var id RequestID
	require.NoError(t, json.Unmarshal([]byte(`null`), &id))
	assert.Equal(t, "", id.String())

	out, err := json.Marshal(id)
	require.NoError(t, err)
	assert.Equal(t, "null", string(out))
}

func TestResultHelpers(t *testing.T) {
	ok := TextResult("hello")
	require.Len(t, ok.Content, 1)
	assert.Equal(t, "text", ok.Content[0].Type)
	assert.False(t, ok.IsError)

	bad := ErrorResult("it broke")
	require.Len(t, bad.Content, 1)
	assert.Equal(t, "it broke", bad.Content[0].Text)
	assert.True(t, bad.IsError)
}
