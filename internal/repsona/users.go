package repsona

import "context"

func (c *Client) GetMe(ctx context.Context) (any, error) {
	return c.get(ctx, "/me", nil)
}

func (c *Client) UpdateMe(ctx context.Context, changes Body) (any, error) {
	return c.patch(ctx, "/me", changes)
}

// GetMyTasks lists one of the caller's task lists: responsible, ballHolding
// or following.
func (c *Client) GetMyTasks(ctx context.Context, listType string) (any, error) {
	return c.get(ctx, "/me/task/"+seg(listType), nil)
}

func (c *Client) GetMyTasksCount(ctx context.Context, listType string) (any, error) {
	return c.get(ctx, "/me/task/"+seg(listType)+"/count", nil)
}

func (c *Client) GetMyProjects(ctx context.Context) (any, error) {
	return c.get(ctx, "/me/project", nil)
}

func (c *Client) GetFeed(ctx context.Context, p Page) (any, error) {
	return c.get(ctx, "/feed", p.query())
}

// GetMembers returns the caller's own profile. The API as integrated has no
// member listing endpoint, so this reads /me.
func (c *Client) GetMembers(ctx context.Context) (any, error) {
	return c.get(ctx, "/me", nil)
}

func (c *Client) UpdateUserRole(ctx context.Context, userID, role string) (any, error) {
	return c.patch(ctx, "/user/"+seg(userID)+"/role", Body{"role": role})
}

func (c *Client) GetSpaceInfo(ctx context.Context) (any, error) {
	return c.get(ctx, "/space/base", nil)
}

func (c *Client) InviteToSpace(ctx context.Context, invitation Body) (any, error) {
	return c.post(ctx, "/space/invite", invitation)
}

func (c *Client) GetAllTags(ctx context.Context) (any, error) {
	return c.get(ctx, "/tag/all", nil)
}
