package tools

import (
	"context"
	"encoding/json"

	"github.com/golovatskygroup/repsona-mcp/internal/repsona"
)

func taskOperations() []Operation {
	return []Operation{
		{
			Name:        "get_tasks",
			Description: "List the tasks of a project. All filters are optional and sent only when given.",
			Category:    catTasks,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "page": {"type": "string", "description": "Page to start the listing from"},
    "keywords": {"type": "string", "description": "Keywords"},
    "tags": {"type": "string", "description": "Tag IDs"},
    "statuses": {"type": "string", "description": "Status IDs"},
    "milestones": {"type": "string", "description": "Milestone IDs"},
    "priorities": {"type": "string", "description": "Priorities"},
    "responsible_users": {"type": "string", "description": "User IDs of the responsible users"},
    "ball_holding_users": {"type": "string", "description": "User IDs of the ball holders"},
    "due_date_gte": {"type": "string", "description": "Earliest due date"},
    "due_date_lte": {"type": "string", "description": "Latest due date"},
    "is_expired": {"type": "boolean", "description": "Show overdue tasks"},
    "is_closed": {"type": "boolean", "description": "Show closed tasks"}
  },
  "required": ["projectId"]
}`),
			Routing: []string{"projectId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				var f repsona.TaskFilter
				if err := in.Decode(&f); err != nil {
					return nil, err
				}
				return c.GetTasks(ctx, in.Route("projectId"), f)
			},
		},
		{
			Name:        "get_task",
			Description: "Get the details of one task",
			Category:    catTasks,
			Schema:      projectTaskSchema,
			Routing:     []string{"projectId", "taskId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetTask(ctx, in.Route("projectId"), in.Route("taskId"))
			},
		},
		{
			Name:        "create_task",
			Description: "Create a new task",
			Category:    catTasks,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "name": {"type": "string", "description": "Task name"},
    "description": {"type": "string", "description": "Task body"},
    "startDate": {"type": "number", "description": "Start date and time"},
    "dueDate": {"type": "number", "description": "Due date"},
    "status": {"type": "number", "description": "Status ID"},
    "tags": {"type": "array", "items": {"type": "number"}, "description": "Tag IDs"},
    "priority": {"type": "number", "enum": [1, 2, 3], "description": "Priority"},
    "milestone": {"type": "number", "description": "Milestone ID"},
    "parent": {"type": "number", "description": "Parent task ID"},
    "addToBottom": {"type": "boolean", "description": "Add the task at the bottom of the list"},
    "responsibleUser": {"type": "number", "description": "Responsible user ID"},
    "ballHoldingUser": {"type": "number", "description": "Ball holder user ID"}
  },
  "required": ["projectId", "name"]
}`),
			Routing: []string{"projectId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.CreateTask(ctx, in.Route("projectId"), in.Payload)
			},
			Confirm: confirmf("Task created in project %s", "projectId"),
		},
		{
			Name:        "update_task",
			Description: "Update a task. Only the given fields change.",
			Category:    catTasks,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "taskId": {"type": ["string", "number"], "description": "Task ID"},
    "name": {"type": "string", "description": "Task name"},
    "description": {"type": "string", "description": "Task body"},
    "startDate": {"type": "number", "description": "Start date and time"},
    "dueDate": {"type": "number", "description": "Due date"},
    "status": {"type": "number", "description": "Status ID"},
    "tags": {"type": "array", "items": {"type": "number"}, "description": "Tag IDs"},
    "priority": {"type": "number", "enum": [1, 2, 3], "description": "Priority"},
    "milestone": {"type": "number", "description": "Milestone ID"},
    "parent": {"type": "number", "description": "Parent task ID"},
    "responsibleUser": {"type": "number", "description": "Responsible user ID"},
    "ballHoldingUser": {"type": "number", "description": "Ball holder user ID"}
  },
  "required": ["projectId", "taskId"]
}`),
			Routing: []string{"projectId", "taskId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UpdateTask(ctx, in.Route("projectId"), in.Route("taskId"), in.Payload)
			},
			Confirm: confirmf("Task %s updated", "taskId"),
		},
		{
			Name:        "delete_task",
			Description: "Delete a task",
			Category:    catTasks,
			Schema:      projectTaskSchema,
			Routing:     []string{"projectId", "taskId"},
			Mutates:     true,
			Destructive: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.DeleteTask(ctx, in.Route("projectId"), in.Route("taskId"))
			},
			Confirm: confirmf("Task %s deleted.", "taskId"),
			Quiet:   true,
		},
	}
}

// taskDetailOperations covers comments, activity, history and subtasks.
func taskDetailOperations() []Operation {
	return []Operation{
		{
			Name:        "get_task_comments",
			Description: "List the comments of a task",
			Category:    catTaskComments,
			Schema:      projectTaskSchema,
			Routing:     []string{"projectId", "taskId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetTaskComments(ctx, in.Route("projectId"), in.Route("taskId"))
			},
		},
		{
			Name:        "create_task_comment",
			Description: "Post a comment on a task",
			Category:    catTaskComments,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "taskId": {"type": ["string", "number"], "description": "Task ID"},
    "comment": {"type": "string", "description": "Comment text"},
    "parent": {"type": "number", "description": "Parent comment ID when replying"}
  },
  "required": ["projectId", "taskId", "comment"]
}`),
			Routing: []string{"projectId", "taskId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.CreateTaskComment(ctx, in.Route("projectId"), in.Route("taskId"), in.Payload)
			},
			Confirm: confirmf("Comment posted on task %s", "taskId"),
		},
		{
			Name:        "update_task_comment",
			Description: "Edit a task comment",
			Category:    catTaskComments,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "taskCommentId": {"type": ["string", "number"], "description": "Comment ID"},
    "comment": {"type": "string", "description": "Comment text"}
  },
  "required": ["projectId", "taskCommentId", "comment"]
}`),
			Routing: []string{"projectId", "taskCommentId"},
			Mutates: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.UpdateTaskComment(ctx, in.Route("projectId"), in.Route("taskCommentId"), in.Payload)
			},
			Confirm: confirmf("Task comment %s updated", "taskCommentId"),
		},
		{
			Name:        "delete_task_comment",
			Description: "Delete a task comment",
			Category:    catTaskComments,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "taskCommentId": {"type": ["string", "number"], "description": "Comment ID"}
  },
  "required": ["projectId", "taskCommentId"]
}`),
			Routing:     []string{"projectId", "taskCommentId"},
			Mutates:     true,
			Destructive: true,
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.DeleteTaskComment(ctx, in.Route("projectId"), in.Route("taskCommentId"))
			},
			Confirm: confirmf("Task comment %s deleted.", "taskCommentId"),
			Quiet:   true,
		},
		{
			Name:        "get_task_activity_log",
			Description: "Get the activity log of a task",
			Category:    catTasks,
			Schema: json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "taskId": {"type": ["string", "number"], "description": "Task ID"},
    "page": {"type": "number", "description": "Page number, starting at 1"}
  },
  "required": ["projectId", "taskId"]
}`),
			Routing: []string{"projectId", "taskId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				var p repsona.Page
				if err := in.Decode(&p); err != nil {
					return nil, err
				}
				return c.GetTaskActivityLog(ctx, in.Route("projectId"), in.Route("taskId"), p)
			},
		},
		{
			Name:        "get_task_history",
			Description: "Get the change history of a task",
			Category:    catTasks,
			Schema:      projectTaskSchema,
			Routing:     []string{"projectId", "taskId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetTaskHistory(ctx, in.Route("projectId"), in.Route("taskId"))
			},
		},
		{
			Name:        "get_task_subtasks",
			Description: "List the subtasks of a task",
			Category:    catTasks,
			Schema:      projectTaskSchema,
			Routing:     []string{"projectId", "taskId"},
			Call: func(ctx context.Context, c *repsona.Client, in Input) (any, error) {
				return c.GetTaskSubtasks(ctx, in.Route("projectId"), in.Route("taskId"))
			},
		},
	}
}

var projectTaskSchema = json.RawMessage(`{
  "type": "object",
  "properties": {
    "projectId": {"type": ["string", "number"], "description": "Project ID"},
    "taskId": {"type": ["string", "number"], "description": "Task ID"}
  },
  "required": ["projectId", "taskId"]
}`)
