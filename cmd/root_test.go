package cmd

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbcloud/bbctl/internal/bitbucket"
	"github.com/bbcloud/bbctl/internal/config"
)

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

// startServer records every request and replies with the given status and an
// empty JSON object.
func startServer(t *testing.T, status int) (*httptest.Server, *[]recordedRequest) {
	t.Helper()

	var requests []recordedRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
		if data, err := io.ReadAll(r.Body); err == nil && len(data) > 0 {
			_ = json.Unmarshal(data, &rec.Body)
		}
		requests = append(requests, rec)

		w.WriteHeader(status)
		_, _ = w.Write([]byte("{}"))
	}))
	t.Cleanup(server.Close)

	return server, &requests
}

func setTestEnv(t *testing.T, apiURL string) {
	t.Helper()
	t.Setenv("BITBUCKET_API_URL", apiURL)
	t.Setenv("BITBUCKET_WORKSPACE", "test-workspace")
	t.Setenv("BITBUCKET_TOKEN", "test-token")
	t.Setenv("BITBUCKET_USERNAME", "")
	t.Setenv("BITBUCKET_APP_PASSWORD", "")
}

func execute(args ...string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestAddUserDefaultsToReadPermission(t *testing.T) {
	server, requests := startServer(t, http.StatusOK)
	setTestEnv(t, server.URL)

	err := execute("users", "add-user", "--repo-slug", "my-test-repo", "--username", "jdoe")
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	require.Equal(t, http.MethodPut, req.Method)
	require.Equal(t, "/repositories/test-workspace/my-test-repo/permissions-config/users/jdoe", req.Path)
	require.Equal(t, "read", req.Body["permission"])
}

func TestAddUserExplicitPermission(t *testing.T) {
	server, requests := startServer(t, http.StatusOK)
	setTestEnv(t, server.URL)

	err := execute("users", "add-user", "--repo-slug", "my-test-repo", "--username", "jdoe", "--permission", "admin")
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	require.Equal(t, "admin", (*requests)[0].Body["permission"])
}

func TestAddUserRejectsUnknownPermission(t *testing.T) {
	server, requests := startServer(t, http.StatusOK)
	setTestEnv(t, server.URL)

	err := execute("users", "add-user", "--repo-slug", "my-test-repo", "--username", "jdoe", "--permission", "owner")
	require.Error(t, err)
	require.Empty(t, *requests)
}

func TestCreateRepoPrivateFlag(t *testing.T) {
	server, requests := startServer(t, http.StatusCreated)
	setTestEnv(t, server.URL)

	err := execute("repos", "create-repo", "--repo-slug", "my-test-repo", "--project-key", "TESTPROJ", "--is-private")
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "/repositories/test-workspace/my-test-repo", req.Path)
	require.Equal(t, true, req.Body["is_private"])
	require.Equal(t, "git", req.Body["scm"])
}

func TestCreateRepoMissingFlags(t *testing.T) {
	server, requests := startServer(t, http.StatusCreated)
	setTestEnv(t, server.URL)

	err := execute("repos", "create-repo", "--repo-slug", "my-test-repo")
	require.Error(t, err)
	require.Empty(t, *requests)
}

func TestMissingWorkspaceIsConfigurationError(t *testing.T) {
	server, requests := startServer(t, http.StatusOK)
	setTestEnv(t, server.URL)
	t.Setenv("BITBUCKET_WORKSPACE", "")

	err := execute("users", "remove-user", "--repo-slug", "my-test-repo", "--username", "jdoe")
	require.Error(t, err)

	var cfgErr *config.Error
	require.True(t, errors.As(err, &cfgErr))
	require.Empty(t, *requests)
}

func TestNotFoundSurfacesAsAPIError(t *testing.T) {
	server, _ := startServer(t, http.StatusNotFound)
	setTestEnv(t, server.URL)

	err := execute("repos", "delete-repo", "--repo-slug", "missing-repo")
	require.Error(t, err)

	var apiErr *bitbucket.APIError
	require.True(t, errors.As(err, &apiErr))
	require.Equal(t, http.StatusNotFound, apiErr.Status)
}

func TestExemptDefaultsToMasterPattern(t *testing.T) {
	server, requests := startServer(t, http.StatusCreated)
	setTestEnv(t, server.URL)

	err := execute("branches", "exempt", "--repo-slug", "my-test-repo", "--username", "jdoe")
	require.NoError(t, err)

	require.Len(t, *requests, 1)
	req := (*requests)[0]
	require.Equal(t, http.MethodPost, req.Method)
	require.Equal(t, "/repositories/test-workspace/my-test-repo/branch-restrictions", req.Path)
	require.Equal(t, "push", req.Body["kind"])
	require.Equal(t, "glob", req.Body["branch_match_kind"])
	require.Equal(t, "master", req.Body["pattern"])
}

func TestRequestsAreDeterministic(t *testing.T) {
	server, requests := startServer(t, http.StatusOK)
	setTestEnv(t, server.URL)

	for i := 0; i < 2; i++ {
		err := execute("users", "add-user", "--repo-slug", "my-test-repo", "--username", "jdoe", "--permission", "write")
		require.NoError(t, err)
	}

	require.Len(t, *requests, 2)
	require.Equal(t, (*requests)[0], (*requests)[1])
}
