package tools

import (
	"context"
	"encoding/json"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

var projectNoteSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "noteId": {"type": ["string", "number"], "description": "Note ID"}
  },
  "required": ["projectId", "noteId"]
}`)

var noteCommentSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "noteCommentId": {"type": ["string", "number"], "description": "Comment ID"}
  },
  "required": ["projectId", "noteCommentId"]
}`)

func noteOperations() []Operation {
	return []Operation{
		{
			Name:        "get_project_notes",
			Description: "List the notes of a project",
			Category:    catNotes,
			Schema:      projectIDSchema,
			Routing:     []string{"projectId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetNotes(ctx, in.Route("projectId"))
			},
		},
		{
			Name:        "get_project_note",
			Description: "Get the details of one note in a project",
			Category:    catNotes,
			Schema:      projectNoteSchema,
			Routing:     []string{"projectId", "noteId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetNote(ctx, in.Route("projectId"), in.Route("noteId"))
			},
		},
		{
			Name:        "create_project_note",
			Description: "Create a note in a project",
			Category:    catNotes,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "name": {"type": "string", "description": "Note name"},
    "description": {"type": "string", "description": "Note body"},
    "tags": {"type": "array", "items": {"type": "number"}, "description": "Tag IDs"},
    "parent": {"type": "number", "description": "Parent note ID"},
    "addToBottom": {"type": "boolean", "description": "Add the note at the bottom of the list"}
  },
  "required": ["projectId", "name"]
}`),
			Routing: []string{"projectId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.CreateNote(ctx, in.Route("projectId"), in.Payload)
			},
			Confirm: confirmf("Note created in project %s", "projectId"),
		},
		{
			Name:        "update_project_note",
			Description: "Update a note in a project. Only the given fields change.",
			Category:    catNotes,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "noteId": {"type": ["string", "number"], "description": "Note ID"},
    "name": {"type": "string", "description": "Note name"},
    "description": {"type": "string", "description": "Note body"},
    "tags": {"type": "array", "items": {"type": "number"}, "description": "Tag IDs"},
    "parent": {"type": "number", "description": "Parent note ID"}
  },
  "required": ["projectId", "noteId"]
}`),
			Routing: []string{"projectId", "noteId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UpdateNote(ctx, in.Route("projectId"), in.Route("noteId"), in.Payload)
			},
			Confirm: confirmf("Note %s updated", "noteId"),
		},
		{
			Name:        "delete_project_note",
			Description: "Delete a note in a project",
			Category:    catNotes,
			Schema:      projectNoteSchema,
			Routing:     []string{"projectId", "noteId"},
			Mutates:     true,
			Destructive: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.DeleteNote(ctx, in.Route("projectId"), in.Route("noteId"))
			},
			Confirm: confirmf("Note %s deleted.", "noteId"),
			Quiet:   true,
		},
		{
			Name:        "get_project_note_children",
			Description: "List the child notes of a note",
			Category:    catNotes,
			Schema:      projectNoteSchema,
			Routing:     []string{"projectId", "noteId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetNoteChildren(ctx, in.Route("projectId"), in.Route("noteId"))
			},
		},
		{
			Name:        "get_project_note_comments",
			Description: "List the comments of a note",
			Category:    catNoteComments,
			Schema:      projectNoteSchema,
			Routing:     []string{"projectId", "noteId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetNoteComments(ctx, in.Route("projectId"), in.Route("noteId"))
			},
		},
		{
			Name:        "create_project_note_comment",
			Description: "Post a comment on a note",
			Category:    catNoteComments,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "noteId": {"type": ["string", "number"], "description": "Note ID"},
    "comment": {"type": "string", "description": "Comment text"},
    "parent": {"type": "number", "description": "Parent comment ID when replying"}
  },
  "required": ["projectId", "noteId", "comment"]
}`),
			Routing: []string{"projectId", "noteId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.CreateNoteComment(ctx, in.Route("projectId"), in.Route("noteId"), in.Payload)
			},
			Confirm: confirmf("Comment posted on note %s", "noteId"),
		},
		{
			Name:        "update_project_note_comment",
			Description: "Edit a note comment",
			Category:    catNoteComments,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "noteCommentId": {"type": ["string", "number"], "description": "Comment ID"},
    "comment": {"type": "string", "description": "Comment text"}
  },
  "required": ["projectId", "noteCommentId", "comment"]
}`),
			Routing: []string{"projectId", "noteCommentId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UpdateNoteComment(ctx, in.Route("projectId"), in.Route("noteCommentId"), in.Payload)
			},
			Confirm: confirmf("Note comment %s updated", "noteCommentId"),
		},
		{
			Name:        "delete_project_note_comment",
			Description: "Delete a note comment",
			Category:    catNoteComments,
			Schema:      noteCommentSchema,
			Routing:     []string{"projectId", "noteCommentId"},
			Mutates:     true,
			Destructive: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.DeleteNoteComment(ctx, in.Route("projectId"), in.Route("noteCommentId"))
			},
			Confirm: confirmf("Note comment %s deleted.", "noteCommentId"),
			Quiet:   true,
		},
		{
			Name:        "get_project_note_activity_log",
			Description: "Get the activity log of a note",
			Category:    catNotes,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "noteId": {"type": ["string", "number"], "description": "Note ID"},
    "page": {"type": "number", "description": "Page number, starting at 1"}
  },
  "required": ["projectId", "noteId"]
}`),
			Routing: []string{"projectId", "noteId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				var p repsona.Page
				if err := in.Decode(&p); err != nil {
					return nil, err
				}
				return c.GetNoteActivityLog(ctx, in.Route("projectId"), in.Route("noteId"), p)
			},
		},
		{
			Name:        "get_project_note_history",
			Description: "Get the change history of a note",
			Category:    catNotes,
			Schema:      projectNoteSchema,
			Routing:     []string{"projectId", "noteId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetNoteHistory(ctx, in.Route("projectId"), in.Route("noteId"))
			},
		},
	}
}
