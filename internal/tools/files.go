package tools

import (
	"context"
	"encoding/json"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

var fileHashSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "hash": {"type": "string", "description": "File hash"}
  },
  "required": ["hash"]
}`)

var attachmentSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "model": {"type": "string", "enum": ["task", "task_comment", "note", "note_comment"], "description": "Kind of item the file is attached to"},
    "modelId": {"type": ["string", "number"], "description": "ID of the task, note or comment"},
    "fileId": {"type": ["string", "number"], "description": "File ID"}
  },
  "required": ["projectId", "model", "modelId", "fileId"]
}`)

var attachmentRouting = []string{"projectId", "model", "modelId", "fileId"}

func fileOperations() []Operation {
	return []Operation{
		{
			Name:        "download_file",
			Description: "Download a file by its hash",
			Category:    catFiles,
			Schema:      fileHashSchema,
			Routing:     []string{"hash"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.DownloadFile(ctx, in.Route("hash"))
			},
		},
		{
			Name:        "upload_file",
			Description: "Upload a file to a project",
			Category:    catFiles,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "fileData": {"type": "object", "description": "File data"}
  },
  "required": ["projectId", "fileData"]
}`),
			Routing: []string{"projectId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UploadFile(ctx, in.Route("projectId"), in.Field("fileData"))
			},
			Confirm: confirmf("File uploaded to project %s", "projectId"),
		},
		{
			Name:        "attach_file",
			Description: "Attach a file to a task, note or comment",
			Category:    catFiles,
			Schema:      attachmentSchema,
			Routing:     attachmentRouting,
			Mutates:     true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.AttachFile(ctx, in.Route("projectId"), in.Route("model"), in.Route("modelId"), in.Route("fileId"))
			},
			Confirm: confirmf("File %s attached to %s %s", "fileId", "model", "modelId"),
		},
		{
			Name:        "detach_file",
			Description: "Detach a file from a task, note or comment",
			Category:    catFiles,
			Schema:      attachmentSchema,
			Routing:     attachmentRouting,
			Mutates:     true,
			Destructive: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.DetachFile(ctx, in.Route("projectId"), in.Route("model"), in.Route("modelId"), in.Route("fileId"))
			},
			Confirm: confirmf("File %s detached from %s %s", "fileId", "model", "modelId"),
		},
		{
			Name:        "delete_file",
			Description: "Delete a file by its hash. Only the uploader may do this.",
			Category:    catFiles,
			Schema:      fileHashSchema,
			Routing:     []string{"hash"},
			Mutates:     true,
			Destructive: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.DeleteFile(ctx, in.Route("hash"))
			},
			Confirm: confirmf("File %s deleted", "hash"),
		},
	}
}
