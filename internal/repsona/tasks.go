package repsona

import "context"

func (c *Client) GetTasks(ctx context.Context, projectID string, f TaskFilter) (any, error) {
	return c.get(ctx, "/project/"+seg(projectID)+"/task", f.query())
}

// GetTask uses the plural "projects" segment; that is the path the API serves.
func (c *Client) GetTask(ctx context.Context, projectID, taskID string) (any, error) {
	return c.get(ctx, "/projects/"+seg(projectID)+"/task/"+seg(taskID), nil)
}

func (c *Client) CreateTask(ctx context.Context, projectID string, task Body) (any, error) {
	return c.post(ctx, "/project/"+seg(projectID)+"/task", task)
}

func (c *Client) UpdateTask(ctx context.Context, projectID, taskID string, changes Body) (any, error) {
	return c.patch(ctx, "/project/"+seg(projectID)+"/task/"+seg(taskID), changes)
}

func (c *Client) DeleteTask(ctx context.Context, projectID, taskID string) (any, error) {
	return c.delete(ctx, "/project/"+seg(projectID)+"/task/"+seg(taskID))
}

func (c *Client) GetTaskComments(ctx context.Context, projectID, taskID string) (any, error) {
	return c.get(ctx, "/project/"+seg(projectID)+"/task/"+seg(taskID)+"/comment/in_tree", nil)
}

func (c *Client) CreateTaskComment(ctx context.Context, projectID, taskID string, comment Body) (any, error) {
	return c.post(ctx, "/project/"+seg(projectID)+"/task/"+seg(taskID)+"/task_comment", comment)
}

func (c *Client) UpdateTaskComment(ctx context.Context, projectID, commentID string, changes Body) (any, error) {
	return c.patch(ctx, "/project/"+seg(projectID)+"/task_comment/"+seg(commentID), changes)
}

func (c *Client) DeleteTaskComment(ctx context.Context, projectID, commentID string) (any, error) {
	return c.delete(ctx, "/project/"+seg(projectID)+"/task_comment/"+seg(commentID))
}

func (c *Client) GetTaskActivityLog(ctx context.Context, projectID, taskID string, p Page) (any, error) {
	return c.get(ctx, "/activity/project/"+seg(projectID)+"/Task/"+seg(taskID), p.query())
}

func (c *Client) GetTaskHistory(ctx context.Context, projectID, taskID string) (any, error) {
	return c.get(ctx, "/history/project/"+seg(projectID)+"/Task/"+seg(taskID), nil)
}

func (c *Client) GetTaskSubtasks(ctx context.Context, projectID, taskID string) (any, error) {
	return c.get(ctx, "/project/"+seg(projectID)+"/task/"+seg(taskID)+"/children", nil)
}
