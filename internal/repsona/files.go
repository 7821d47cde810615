package repsona

import "context"

func (c *Client) DownloadFile(ctx context.Context, hash string) (any, error) {
	return c.get(ctx, "/file/"+seg(hash)+"/download", nil)
}

// UploadFile posts fileData as the JSON request body.
func (c *Client) UploadFile(ctx context.Context, projectID string, fileData any) (any, error) {
	return c.post(ctx, "/project/"+seg(projectID)+"/file", fileData)
}

// attachmentPath addresses a file on a task, task_comment, note or
// note_comment.
func attachmentPath(projectID, model, modelID, fileID string) string {
	return "/project/" + seg(projectID) + "/" + seg(model) + "/" + seg(modelID) + "/files/" + seg(fileID)
}

func (c *Client) AttachFile(ctx context.Context, projectID, model, modelID, fileID string) (any, error) {
	return c.put(ctx, attachmentPath(projectID, model, modelID, fileID), nil)
}

func (c *Client) DetachFile(ctx context.Context, projectID, model, modelID, fileID string) (any, error) {
	return c.delete(ctx, attachmentPath(projectID, model, modelID, fileID))
}

func (c *Client) DeleteFile(ctx context.Context, hash string) (any, error) {
	return c.delete(ctx, "/file/"+seg(hash))
}
