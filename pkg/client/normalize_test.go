package client

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize_UnwrapsData(t *testing.T) {
	res := Normalize(http.StatusOK, []byte(`{"data": [1, 2]}`), false)
	require.True(t, res.Success)
	assert.JSONEq(t, `[1, 2]`, string(res.Data))
}

func TestNormalize_KeepEnvelope(t *testing.T) {
	body := `{"total_grand": 3600000, "data": [{"id": 1}]}`
	res := Normalize(http.StatusOK, []byte(body), true)
	require.True(t, res.Success)
	assert.JSONEq(t, body, string(res.Data))
}

func TestNormalize_NoDataMember(t *testing.T) {
	res := Normalize(http.StatusOK, []byte(`{"id": 42, "name": "x"}`), false)
	require.True(t, res.Success)
	assert.JSONEq(t, `{"id": 42, "name": "x"}`, string(res.Data))
}

func TestNormalize_NullData(t *testing.T) {
	res := Normalize(http.StatusOK, []byte(`{"data": null}`), false)
	require.True(t, res.Success)
	assert.Equal(t, "null", string(res.Data))

	v, err := res.Value()
	require.NoError(t, err)
	assert.Nil(t, v)
}

func TestNormalize_TopLevelArray(t *testing.T) {
	res := Normalize(http.StatusOK, []byte(` [{"data": 1}] `), false)
	require.True(t, res.Success)
	assert.JSONEq(t, `[{"data": 1}]`, string(res.Data))
}

func TestNormalize_EmptyBody(t *testing.T) {
	res := Normalize(http.StatusOK, []byte("  \n"), false)
	assert.True(t, res.Success)
	assert.Nil(t, res.Data)

	var target map[string]any
	require.NoError(t, res.Decode(&target))
	assert.Nil(t, target)
}

func TestNormalize_MalformedJSON(t *testing.T) {
	res := Normalize(http.StatusOK, []byte(`{"data": `), false)
	assert.False(t, res.Success)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	assert.Contains(t, res.Message, "decoding response")
}

func TestNormalize_Non200(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"body text", http.StatusNotFound, "not found\n", "not found"},
		{"status text", http.StatusUnauthorized, "", "Unauthorized"},
		{"unknown status", 599, "", "unexpected status 599"},
		{"json body kept verbatim", http.StatusBadRequest, `{"error":"bad"}`, `{"error":"bad"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Normalize(tt.status, []byte(tt.body), false)
			assert.False(t, res.Success)
			assert.Equal(t, tt.status, res.StatusCode)
			assert.Equal(t, tt.want, res.Message)
			assert.Nil(t, res.Data)
		})
	}
}

func TestResult_DecodeFailure(t *testing.T) {
	res := Failure(http.StatusNotFound, "gone")

	var v map[string]any
	err := res.Decode(&v)
	require.Error(t, err)
	assert.Equal(t, "toggl API error 404: gone", err.Error())
}

func TestResult_DecodeTypeMismatch(t *testing.T) {
	res := Normalize(http.StatusOK, []byte(`"text"`), false)

	_, err := As[[]Tag](res)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding payload")
}

func TestTimeEntry_Running(t *testing.T) {
	res := Normalize(http.StatusOK, []byte(`{"id": 1, "start": "2024-03-01T09:00:00Z", "duration": -1709283600}`), false)

	entry, err := As[TimeEntry](res)
	require.NoError(t, err)
	assert.True(t, entry.Running())
	assert.Equal(t, "1h0m0s", entry.Elapsed(entry.Start.Add(time.Hour)).String())
}
