package bitbucket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bbcloud/bbctl/internal/models"
)

// CreateRepository creates a repository under a project in the configured
// workspace. The SCM is always git.
func (c *Client) CreateRepository(ctx context.Context, slug string, projectKey string, isPrivate bool) (*models.Repository, error) {
	if slug == "" {
		return nil, fmt.Errorf("repository slug is required")
	}
	if projectKey == "" {
		return nil, fmt.Errorf("project key is required")
	}

	path := fmt.Sprintf("/repositories/%s/%s", url.PathEscape(c.cfg.Workspace), url.PathEscape(slug))
	payload := models.Repository{
		SCM:       "git",
		IsPrivate: isPrivate,
		Project:   &models.ProjectRef{Key: projectKey},
	}

	var created models.Repository
	if err := c.do(ctx, http.MethodPost, path, payload, &created); err != nil {
		return nil, err
	}

	c.logger.Info("Created repository", "slug", slug, "project", projectKey, "private", isPrivate)
	return &created, nil
}

// GetRepository fetches a repository by slug.
func (c *Client) GetRepository(ctx context.Context, slug string) (*models.Repository, error) {
	if slug == "" {
		return nil, fmt.Errorf("repository slug is required")
	}

	path := fmt.Sprintf("/repositories/%s/%s", url.PathEscape(c.cfg.Workspace), url.PathEscape(slug))

	var repo models.Repository
	if err := c.do(ctx, http.MethodGet, path, nil, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// DeleteRepository deletes a repository by slug.
func (c *Client) DeleteRepository(ctx context.Context, slug string) error {
	if slug == "" {
		return fmt.Errorf("repository slug is required")
	}

	path := fmt.Sprintf("/repositories/%s/%s", url.PathEscape(c.cfg.Workspace), url.PathEscape(slug))

	if err := c.do(ctx, http.MethodDelete, path, nil, nil); err != nil {
		return err
	}

	c.logger.Info("Deleted repository", "slug", slug)
	return nil
}
