package bitbucket

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bbcloud/bbctl/internal/models"
)

func TestGrantUserPermissionRequest(t *testing.T) {
	client := newTestClient(t, basicConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPut, r.Method)
		require.Equal(t, "/repositories/test-workspace/my-test-repo/permissions-config/users/jdoe", r.URL.Path)

		_, _, ok := r.BasicAuth()
		require.True(t, ok)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		require.Equal(t, map[string]string{"permission": "write"}, body)

		_ = json.NewEncoder(w).Encode(models.UserPermission{
			Permission: "write",
			User:       &models.Account{Username: "jdoe"},
		})
	}))

	granted, err := client.GrantUserPermission(context.Background(), "my-test-repo", "jdoe", "write")
	require.NoError(t, err)
	require.Equal(t, "write", granted.Permission)
	require.Equal(t, "jdoe", granted.User.Username)
}

func TestGrantUserPermissionRejectsUnknownLevel(t *testing.T) {
	client := newTestClient(t, basicConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected")
	}))

	_, err := client.GrantUserPermission(context.Background(), "my-test-repo", "jdoe", "owner")
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid permission")
}

func TestRevokeUserPermissionRequest(t *testing.T) {
	client := newTestClient(t, basicConfig(), http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodDelete, r.Method)
		require.Equal(t, "/repositories/test-workspace/my-test-repo/permissions-config/users/jdoe", r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.RevokeUserPermission(context.Background(), "my-test-repo", "jdoe"))
}

func TestValidPermission(t *testing.T) {
	require.True(t, ValidPermission(PermissionRead))
	require.True(t, ValidPermission(PermissionWrite))
	require.True(t, ValidPermission(PermissionAdmin))
	require.False(t, ValidPermission(""))
	require.False(t, ValidPermission("owner"))
}
