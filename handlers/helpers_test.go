package handlers

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Madhav-Gupta-28/primecart-backend-go/middleware"
	"github.com/Madhav-Gupta-28/primecart-backend-go/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

type testRequest struct {
	method      string
	target      string
	body        io.Reader
	contentType string
	params      [][2]string
	user        *models.User
}

func jsonBody(s string) (io.Reader, string) {
	return strings.NewReader(s), echo.MIMEApplicationJSON
}

func serve(t *testing.T, handler echo.HandlerFunc, tr testRequest) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(tr.method, tr.target, tr.body)
	if tr.contentType != "" {
		req.Header.Set(echo.HeaderContentType, tr.contentType)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	names := make([]string, 0, len(tr.params))
	values := make([]string, 0, len(tr.params))
	for _, p := range tr.params {
		names = append(names, p[0])
		values = append(values, p[1])
	}
	c.SetParamNames(names...)
	c.SetParamValues(values...)

	if tr.user != nil {
		middleware.SetCurrentUser(c, tr.user)
	}

	require.NoError(t, handler(c))
	return rec
}

func decodeMap(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	msg, _ := decodeMap(t, rec)["error"].(string)
	return msg
}
