package globus

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestResultCodeHelpers(t *testing.T) {
	res := &Result{StatusCode: http.StatusOK, Code: "Activated.MyProxyCredential", JSON: true}
	require.True(t, res.OK())
	require.True(t, res.IsActivated())
	require.True(t, res.HasCodePrefix(CodeActivatedPrefix))
	require.False(t, res.IsDeleted())

	res = &Result{StatusCode: http.StatusNotFound, Code: CodeAccessRuleNotFound}
	require.False(t, res.OK())
	require.True(t, res.IsDeleted())
	require.True(t, res.HasCode(CodeDeleted, CodeAccessRuleNotFound))

	var nilResult *Result
	require.False(t, nilResult.OK())
	require.False(t, nilResult.HasCode(CodeDeleted))
	require.False(t, nilResult.HasCodePrefix(CodeActivatedPrefix))
}

func TestResultDecode(t *testing.T) {
	res := &Result{Raw: []byte(`{"DATA_TYPE":"endpoint","display_name":"lab"}`), JSON: true}
	doc, err := res.Document()
	require.NoError(t, err)
	require.Equal(t, "lab", doc["display_name"])

	raw := &Result{Raw: []byte("plain"), JSON: false}
	require.Error(t, raw.Decode(&doc))
}

func TestResultValue(t *testing.T) {
	res := &Result{Raw: []byte(`{"value":"sub-1"}`), JSON: true}
	value, err := res.Value()
	require.NoError(t, err)
	require.Equal(t, "sub-1", value)

	_, err = (&Result{Raw: []byte(`{}`), JSON: true}).Value()
	require.Error(t, err)
}

func TestResultUserID(t *testing.T) {
	res := &Result{Raw: []byte(`{"id":"user-1"}`), JSON: true}
	id, err := res.UserID()
	require.NoError(t, err)
	require.Equal(t, "user-1", id)

	res = &Result{Raw: []byte(`{"items":[{"id":"user-2"}]}`), JSON: true}
	id, err = res.UserID()
	require.NoError(t, err)
	require.Equal(t, "user-2", id)

	res = &Result{Raw: []byte(`{"items":[]}`), JSON: true, Code: "NotFound"}
	_, err = res.UserID()
	require.Error(t, err)
}
