package main

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yonasBSD/solidtime/internal/config"
	"github.com/yonasBSD/solidtime/internal/mockserver"
	"github.com/yonasBSD/solidtime/internal/solidtime"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetArgs(args)
	cmd.SetErr(io.Discard)
	err := cmd.Execute()
	return out.String(), err
}

func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	for _, key := range []string{"SOLIDTIME_BASE_URL", "SOLIDTIME_API_TOKEN", "SOLIDTIME_ORGANIZATION", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}
	t.Setenv("ENV", "test")
}

func stubServer(t *testing.T) string {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	s := mockserver.New(&config.Config{APIToken: "secret"}, logger, solidtime.API())
	s.StubExamples()
	require.NoError(t, s.Stub(solidtime.AliasGetTags, mockserver.Static(http.StatusOK, map[string]any{
		"data": []map[string]any{
			{"id": "t1", "name": "Urgent", "created_at": "now", "updated_at": "now"},
		},
	})))
	server := httptest.NewServer(s.Handler())
	t.Cleanup(server.Close)
	return server.URL + mockserver.APIPrefix
}

func TestEndpointsCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "endpoints")
	require.NoError(t, err)
	assert.Contains(t, out, "ALIAS")
	assert.Regexp(t, `createClient\s+POST\s+/v1/organizations/:organization/clients`, out)
	assert.Regexp(t, `getMe\s+GET\s+/v1/users/me`, out)
}

func TestSchemaCommand(t *testing.T) {
	isolate(t)

	out, err := run(t, "schema")
	require.NoError(t, err)
	assert.Contains(t, out, "ClientStoreRequest")

	out, err = run(t, "schema", "ClientStoreRequest")
	require.NoError(t, err)
	var doc map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "object", doc["type"])

	_, err = run(t, "schema", "Invoice")
	assert.Error(t, err)
}

func TestTagsListAgainstStubServer(t *testing.T) {
	isolate(t)
	base := stubServer(t)

	out, err := run(t, "tags", "list", "--base-url", base, "--token", "secret", "-o", "org-1")
	require.NoError(t, err)
	assert.Regexp(t, `t1\s+Urgent`, out)

	_, err = run(t, "tags", "list", "--base-url", base, "--token", "wrong", "-o", "org-1")
	assert.ErrorContains(t, err, "401")
}

func TestOrganizationIsRequired(t *testing.T) {
	isolate(t)

	_, err := run(t, "tags", "list", "--base-url", "http://127.0.0.1:1/api")
	assert.ErrorContains(t, err, "organization is required")
}

func TestCallFillsOrganization(t *testing.T) {
	isolate(t)
	base := stubServer(t)
	t.Setenv("SOLIDTIME_API_TOKEN", "secret")

	out, err := run(t, "call", "getTags", "--base-url", base, "-o", "org-1")
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Len(t, body["data"], 1)

	_, err = run(t, "call", "createTag", "--base-url", base, "-o", "org-1", "--body", `{"name":""}`)
	assert.ErrorContains(t, err, "name")

	_, err = run(t, "call", "getInvoices", "--base-url", base)
	assert.ErrorContains(t, err, "unknown endpoint")
}

func TestParseCallArgs(t *testing.T) {
	dir := t.TempDir()
	bodyFile := filepath.Join(dir, "body.json")
	require.NoError(t, os.WriteFile(bodyFile, []byte(`{"name":"Acme"}`), 0o600))

	args, err := parseCallArgs(
		[]string{"organization=org-1", "client=c=1"},
		[]string{"project_ids[]=a", "project_ids[]=b", "limit=5"},
		"@"+bodyFile,
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"organization": "org-1", "client": "c=1"}, args.Path)
	assert.Equal(t, []string{"a", "b"}, args.Query["project_ids[]"])
	assert.Equal(t, "5", args.Query.Get("limit"))
	assert.JSONEq(t, `{"name":"Acme"}`, string(args.Body.(json.RawMessage)))

	_, err = parseCallArgs([]string{"organization"}, nil, "")
	assert.Error(t, err)
	_, err = parseCallArgs(nil, []string{"limit"}, "")
	assert.Error(t, err)
	_, err = parseCallArgs(nil, nil, "{not json")
	assert.Error(t, err)
	_, err = parseCallArgs(nil, nil, "@"+filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	empty, err := parseCallArgs(nil, nil, "")
	require.NoError(t, err)
	assert.Nil(t, empty.Body)
	assert.Nil(t, empty.Query)
}
