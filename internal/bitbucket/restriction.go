package bitbucket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bbcloud/bbctl/internal/models"
)

func restrictionsPath(workspace, slug string) string {
	return fmt.Sprintf("/repositories/%s/%s/branch-restrictions",
		url.PathEscape(workspace), url.PathEscape(slug))
}

// ExemptUserFromPush creates a push-kind branch restriction listing the user,
// exempting them from the pull-request requirement on matching branches.
func (c *Client) ExemptUserFromPush(ctx context.Context, slug, username, pattern string) (*models.BranchRestriction, error) {
	if slug == "" {
		return nil, fmt.Errorf("repository slug is required")
	}
	if username == "" {
		return nil, fmt.Errorf("username is required")
	}
	if pattern == "" {
		return nil, fmt.Errorf("branch pattern is required")
	}

	payload := models.BranchRestriction{
		Kind:            "push",
		BranchMatchKind: "glob",
		Pattern:         pattern,
		Users: []models.Account{
			{Type: "user", Username: username},
		},
	}

	var created models.BranchRestriction
	if err := c.do(ctx, http.MethodPost, restrictionsPath(c.cfg.Workspace, slug), payload, &created); err != nil {
		return nil, err
	}

	c.logger.Info("Exempted user from push restriction", "slug", slug, "username", username, "pattern", pattern)
	return &created, nil
}

// ListBranchRestrictions fetches the first page of branch restrictions for a
// repository.
func (c *Client) ListBranchRestrictions(ctx context.Context, slug string) ([]models.BranchRestriction, error) {
	if slug == "" {
		return nil, fmt.Errorf("repository slug is required")
	}

	var page models.BranchRestrictionPage
	if err := c.do(ctx, http.MethodGet, restrictionsPath(c.cfg.Workspace, slug), nil, &page); err != nil {
		return nil, err
	}
	return page.Values, nil
}
