package bitbucket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bbcloud/bbctl/internal/models"
)

// Permission levels accepted by the repository permissions-config API.
const (
	PermissionRead  = "read"
	PermissionWrite = "write"
	PermissionAdmin = "admin"
)

// ValidPermission reports whether p is a known permission level.
func ValidPermission(p string) bool {
	switch p {
	case PermissionRead, PermissionWrite, PermissionAdmin:
		return true
	}
	return false
}

func permissionPath(workspace, slug, username string) string {
	return fmt.Sprintf("/repositories/%s/%s/permissions-config/users/%s",
		url.PathEscape(workspace), url.PathEscape(slug), url.PathEscape(username))
}

// GrantUserPermission grants a user the given permission level on a
// repository, replacing any existing grant.
func (c *Client) GrantUserPermission(ctx context.Context, slug, username, permission string) (*models.UserPermission, error) {
	if slug == "" {
		return nil, fmt.Errorf("repository slug is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if !ValidPermission(permission) {
		return nil, fmt.Errorf("invalid permission %q: must be one of read, write, admin", permission)
	}

	payload := models.UserPermission{Permission: permission}

	var granted models.UserPermission
	if err := c.do(ctx, http.MethodPut, permissionPath(c.cfg.Workspace, slug, username), payload, &granted); err != nil {
		return nil, err
	}

	c.logger.Info("Granted permission", "slug", slug, "username", username, "permission", permission)
	return &granted, nil
}

// RevokeUserPermission removes a user's permission grant from a repository.
func (c *Client) RevokeUserPermission(ctx context.Context, slug, username string) error {
	if slug == "" {
		return fmt.Errorf("repository slug is required")
	}
	if username == "" {
		return fmt.Errorf("username is required")
	}

	if err := c.do(ctx, http.MethodDelete, permissionPath(c.cfg.Workspace, slug, username), nil, nil); err != nil {
		return err
	}

	c.logger.Info("Revoked permission", "slug", slug, "username", username)
	return nil
}
