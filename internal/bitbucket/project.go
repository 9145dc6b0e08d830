package bitbucket

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bbcloud/bbctl/internal/models"
)

// CreateProject creates a single project in the configured workspace.
func (c *Client) CreateProject(ctx context.Context, project models.Project) (*models.Project, error) {
	if project.Key == "" {
		return nil, fmt.Errorf("project key is required")
	}
	if project.Name == "" {
		return nil, fmt.Errorf("project name is required")
	}

	path := fmt.Sprintf("/workspaces/%s/projects", url.PathEscape(c.cfg.Workspace))

	var created models.Project
	if err := c.do(ctx, http.MethodPost, path, project, &created); err != nil {
		return nil, err
	}

	c.logger.Info("Created project", "key", created.Key, "workspace", c.cfg.Workspace)
	return &created, nil
}

// CreateProjects creates multiple projects sequentially.
func (c *Client) CreateProjects(ctx context.Context, projects []models.Project) error {
	var errorsCount int
	for _, p := range projects {
		if _, err := c.CreateProject(ctx, p); err != nil {
			c.logger.Error("Failed to create project", "key", p.Key, "error", err)
			errorsCount++
		}
	}
	if errorsCount > 0 {
		return fmt.Errorf("failed to create %d out of %d projects", errorsCount, len(projects))
	}
	return nil
}

// GetProject fetches a project by key.
func (c *Client) GetProject(ctx context.Context, key string) (*models.Project, error) {
	if key == "" {
		return nil, fmt.Errorf("project key is required")
	}

	path := fmt.Sprintf("/workspaces/%s/projects/%s", url.PathEscape(c.cfg.Workspace), url.PathEscape(key))

	var project models.Project
	if err := c.do(ctx, http.MethodGet, path, nil, &project); err != nil {
		return nil, err
	}
	return &project, nil
}
