package repsona

import "context"

// GetProjects lists the projects the caller belongs to.
func (c *Client) GetProjects(ctx context.Context) (any, error) {
	return c.get(ctx, "/me/project", nil)
}

func (c *Client) GetProject(ctx context.Context, projectID string) (any, error) {
	return c.get(ctx, "/project/"+seg(projectID), nil)
}

func (c *Client) CreateProject(ctx context.Context, project Body) (any, error) {
	return c.post(ctx, "/project", project)
}

func (c *Client) UpdateProject(ctx context.Context, projectID string, changes Body) (any, error) {
	return c.patch(ctx, "/project/"+seg(projectID), changes)
}

func (c *Client) GetProjectUsers(ctx context.Context, projectID string) (any, error) {
	return c.get(ctx, "/project/"+seg(projectID)+"/users", nil)
}

func (c *Client) GetProjectActivity(ctx context.Context, projectID string, p Page) (any, error) {
	return c.get(ctx, "/activity/project/"+seg(projectID), p.query())
}

func (c *Client) GetProjectStatuses(ctx context.Context, projectID string) (any, error) {
	return c.get(ctx, "/project/"+seg(projectID)+"/status", nil)
}

func (c *Client) GetProjectMilestones(ctx context.Context, projectID string) (any, error) {
	return c.get(ctx, "/project/"+seg(projectID)+"/milestone", nil)
}
