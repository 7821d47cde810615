package repsona

import "context"

func notePath(projectID string) string {
	return "/project/" + seg(projectID) + "/note"
}

func (c *Client) GetNotes(ctx context.Context, projectID string) (any, error) {
	return c.get(ctx, notePath(projectID), nil)
}

func (c *Client) GetNote(ctx context.Context, projectID, noteID string) (any, error) {
	return c.get(ctx, notePath(projectID)+"/"+seg(noteID), nil)
}

func (c *Client) CreateNote(ctx context.Context, projectID string, note Body) (any, error) {
	return c.post(ctx, notePath(projectID), note)
}

func (c *Client) UpdateNote(ctx context.Context, projectID, noteID string, changes Body) (any, error) {
	return c.patch(ctx, notePath(projectID)+"/"+seg(noteID), changes)
}

func (c *Client) DeleteNote(ctx context.Context, projectID, noteID string) (any, error) {
	return c.delete(ctx, notePath(projectID)+"/"+seg(noteID))
}

func (c *Client) GetNoteChildren(ctx context.Context, projectID, noteID string) (any, error) {
	return c.get(ctx, notePath(projectID)+"/"+seg(noteID)+"/children", nil)
}

func (c *Client) GetNoteComments(ctx context.Context, projectID, noteID string) (any, error) {
	return c.get(ctx, notePath(projectID)+"/"+seg(noteID)+"/comment/in_tree", nil)
}

func (c *Client) CreateNoteComment(ctx context.Context, projectID, noteID string, comment Body) (any, error) {
	return c.post(ctx, notePath(projectID)+"/"+seg(noteID)+"/note_comment", comment)
}

func (c *Client) UpdateNoteComment(ctx context.Context, projectID, commentID string, changes Body) (any, error) {
	return c.patch(ctx, "/project/"+seg(projectID)+"/note_comment/"+seg(commentID), changes)
}

func (c *Client) DeleteNoteComment(ctx context.Context, projectID, commentID string) (any, error) {
	return c.delete(ctx, "/project/"+seg(projectID)+"/note_comment/"+seg(commentID))
}

func (c *Client) GetNoteActivityLog(ctx context.Context, projectID, noteID string, p Page) (any, error) {
	return c.get(ctx, "/activity/project/"+seg(projectID)+"/Note/"+seg(noteID), p.query())
}

func (c *Client) GetNoteHistory(ctx context.Context, projectID, noteID string) (any, error) {
	return c.get(ctx, "/history/project/"+seg(projectID)+"/Note/"+seg(noteID), nil)
}
