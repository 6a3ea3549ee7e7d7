package mockserver

import (
	"embed"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/yonasBSD/solidtime/internal/config"
	appErrors "github.com/yonasBSD/solidtime/internal/errors"
	"github.com/yonasBSD/solidtime/internal/middleware"
	"github.com/yonasBSD/solidtime/internal/solidtime"
)

//go:embed test_data/fixtures.json
var testDataFS embed.FS

const token = "secret"

// ServerTestSuite exercises the stub server through its http.Handler.
type ServerTestSuite struct {
	suite.Suite
	server *Server
}

func (suite *ServerTestSuite) SetupTest() {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	suite.server = New(&config.Config{APIToken: token, Port: "0"}, logger, solidtime.API())
}

func (suite *ServerTestSuite) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	suite.server.Handler().ServeHTTP(w, req)
	return w
}

func (suite *ServerTestSuite) api(method, path, body string) *httptest.ResponseRecorder {
	return suite.do(method, APIPrefix+path, body, map[string]string{"Authorization": "Bearer " + token})
}

func (suite *ServerTestSuite) decode(w *httptest.ResponseRecorder) map[string]any {
	var out map[string]any
	require.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

func (suite *ServerTestSuite) TestHealthz() {
	w := suite.do(http.MethodGet, "/healthz", "", nil)
	assert.Equal(suite.T(), http.StatusOK, w.Code)
	body := suite.decode(w)
	assert.Equal(suite.T(), "ok", body["status"])
	assert.Equal(suite.T(), 44.0, body["endpoints"])
}

func (suite *ServerTestSuite) TestBearerTokenIsRequired() {
	suite.server.StubExamples()

	w := suite.do(http.MethodGet, APIPrefix+"/v1/users/me", "", nil)
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)
	assert.Equal(suite.T(), middleware.Unauthenticated, suite.decode(w)["message"])

	w = suite.do(http.MethodGet, APIPrefix+"/v1/users/me", "", map[string]string{"Authorization": "Bearer wrong"})
	assert.Equal(suite.T(), http.StatusUnauthorized, w.Code)

	w = suite.api(http.MethodGet, "/v1/users/me", "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ServerTestSuite) TestUnstubbedEndpoint() {
	w := suite.api(http.MethodGet, "/v1/users/me", "")
	assert.Equal(suite.T(), http.StatusNotImplemented, w.Code)
	assert.Contains(suite.T(), suite.decode(w)["message"], solidtime.AliasGetMe)
}

func (suite *ServerTestSuite) TestExamplesAnswerEveryShape() {
	suite.server.StubExamples()

	w := suite.api(http.MethodGet, "/v1/organizations/org-1/projects", "")
	require.Equal(suite.T(), http.StatusOK, w.Code)
	body := suite.decode(w)
	assert.Contains(suite.T(), body, "data")
	assert.Contains(suite.T(), body, "links")
	assert.Contains(suite.T(), body, "meta")

	w = suite.api(http.MethodDelete, "/v1/organizations/org-1/tags/t1", "")
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
	assert.Empty(suite.T(), w.Body.String())

	w = suite.api(http.MethodGet, "/v1/organizations/org-1/time-entries/aggregate?group=project", "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ServerTestSuite) TestInvalidBodyAnswers422() {
	suite.server.StubExamples()

	w := suite.api(http.MethodPost, "/v1/organizations/org-1/tags", `{"name":""}`)
	require.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	body := suite.decode(w)
	assert.NotEmpty(suite.T(), body["message"])
	assert.Contains(suite.T(), body["errors"], "name")

	w = suite.api(http.MethodPost, "/v1/organizations/org-1/projects", `{}`)
	require.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	body = suite.decode(w)
	assert.Contains(suite.T(), body["message"], "(and 2 more errors)")
	errs := body["errors"].(map[string]any)
	assert.Len(suite.T(), errs, 3)

	w = suite.api(http.MethodPost, "/v1/organizations/org-1/tags", `not json`)
	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
}

func (suite *ServerTestSuite) TestInvalidQueryAnswers422() {
	suite.server.StubExamples()

	w := suite.api(http.MethodGet, "/v1/organizations/org-1/time-entries?limit=0", "")
	require.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)
	assert.Contains(suite.T(), suite.decode(w)["errors"], "limit")

	w = suite.api(http.MethodGet, "/v1/organizations/org-1/time-entries?project_ids[]=not-a-uuid", "")
	assert.Equal(suite.T(), http.StatusUnprocessableEntity, w.Code)

	w = suite.api(http.MethodGet, "/v1/organizations/org-1/time-entries?limit=5&active=true", "")
	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ServerTestSuite) TestResponderSeesValidatedRequest() {
	var seen *Request
	require.NoError(suite.T(), suite.server.Stub(solidtime.AliasCreateClient, func(req *Request) Reply {
		seen = req
		return Reply{Status: http.StatusCreated, Body: map[string]any{"data": map[string]any{
			"id": "c1", "name": "Acme", "is_archived": false, "created_at": "now", "updated_at": "now",
		}}}
	}))

	w := suite.api(http.MethodPost, "/v1/organizations/org-1/clients", `{"name":"Acme","note":"kept"}`)
	require.Equal(suite.T(), http.StatusCreated, w.Code)
	require.NotNil(suite.T(), seen)
	assert.Equal(suite.T(), "org-1", seen.Path["organization"])
	assert.Equal(suite.T(), map[string]any{"name": "Acme", "note": "kept"}, seen.Body)
}

func (suite *ServerTestSuite) TestBrokenStubAnswers500() {
	require.NoError(suite.T(), suite.server.Stub(solidtime.AliasGetMe, Static(http.StatusOK, map[string]any{"data": map[string]any{}})))

	w := suite.api(http.MethodGet, "/v1/users/me", "")
	assert.Equal(suite.T(), http.StatusInternalServerError, w.Code)
}

func (suite *ServerTestSuite) TestStubUnknownAlias() {
	err := suite.server.Stub("getInvoices", Static(http.StatusOK, nil))
	assert.ErrorIs(suite.T(), err, appErrors.ErrUnknownEndpoint)

	err = suite.server.StubFixtures(map[string]Reply{"getInvoices": {}})
	assert.ErrorIs(suite.T(), err, appErrors.ErrUnknownEndpoint)
}

func (suite *ServerTestSuite) TestFixtures() {
	data, err := testDataFS.ReadFile("test_data/fixtures.json")
	require.NoError(suite.T(), err)
	fixtures, err := ParseFixtures(data)
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), suite.server.StubFixtures(fixtures))

	w := suite.api(http.MethodGet, "/v1/users/me", "")
	require.Equal(suite.T(), http.StatusOK, w.Code)
	me := suite.decode(w)["data"].(map[string]any)
	assert.Equal(suite.T(), "Europe/Vienna", me["timezone"])

	w = suite.api(http.MethodGet, "/v1/users/me/time-entries/active", "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)

	w = suite.api(http.MethodDelete, "/v1/organizations/org-1/tags/t1", "")
	assert.Equal(suite.T(), http.StatusNoContent, w.Code)

	suite.server.Reset()
	w = suite.api(http.MethodGet, "/v1/users/me", "")
	assert.Equal(suite.T(), http.StatusNotImplemented, w.Code)
}

func (suite *ServerTestSuite) TestWebEntryRedirect() {
	w := suite.do(http.MethodGet, "/", "", nil)
	assert.Equal(suite.T(), http.StatusFound, w.Code)
	assert.Equal(suite.T(), "/login", w.Header().Get("Location"))

	w = suite.do(http.MethodGet, "/", "", map[string]string{"Authorization": "Bearer " + token})
	assert.Equal(suite.T(), "/dashboard", w.Header().Get("Location"))

	w = suite.do(http.MethodGet, "/", "", map[string]string{"Cookie": SessionCookie + "=abc"})
	assert.Equal(suite.T(), "/dashboard", w.Header().Get("Location"))
}

func (suite *ServerTestSuite) TestUnknownRoute() {
	w := suite.api(http.MethodGet, "/v1/invoices", "")
	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Equal(suite.T(), "Not Found", suite.decode(w)["message"])
}

func (suite *ServerTestSuite) TestRequestIDAndMetrics() {
	suite.server.StubExamples()

	w := suite.do(http.MethodGet, APIPrefix+"/v1/users/me", "", map[string]string{
		"Authorization":            "Bearer " + token,
		middleware.RequestIDHeader: "req-42",
	})
	assert.Equal(suite.T(), "req-42", w.Header().Get(middleware.RequestIDHeader))

	w = suite.do(http.MethodGet, "/metrics", "", nil)
	require.Equal(suite.T(), http.StatusOK, w.Code)
	assert.Contains(suite.T(), w.Body.String(), `solidtime_mock_requests_total{alias="getMe",status="200"} 1`)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func TestLoadFixtures(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "fixtures.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"getTags":{"body":{"data":[]}}}`), 0o600))

	fixtures, err := LoadFixtures(path)
	require.NoError(t, err)
	require.Contains(t, fixtures, solidtime.AliasGetTags)
	assert.Equal(t, http.StatusOK, fixtures[solidtime.AliasGetTags].status())

	_, err = LoadFixtures(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	_, err = ParseFixtures([]byte(`[]`))
	assert.Error(t, err)
}

func TestReplyStatus(t *testing.T) {
	assert.Equal(t, http.StatusNoContent, Reply{}.status())
	assert.Equal(t, http.StatusOK, Reply{Body: map[string]any{}}.status())
	assert.Equal(t, http.StatusAccepted, Reply{Status: http.StatusAccepted}.status())
}

func TestSummary(t *testing.T) {
	one := []appErrors.Issue{{Field: "name", Message: "name is required"}}
	assert.Equal(t, "name is required", summary(one))
	assert.Equal(t, "name is required (and 1 more error)", summary(append(one, appErrors.Issue{})))
	assert.Equal(t, "name is required (and 2 more errors)", summary(append(one, appErrors.Issue{}, appErrors.Issue{})))
}
