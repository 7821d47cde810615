package tools

import (
	"fmt"

	"github.com/golovatskygroup/repsona-mcp/internal/registry"
)

// Catalog returns the operation table in listing order.
func Catalog() []Operation {
	var ops []Operation
	ops = append(ops, taskOperations()...)
	ops = append(ops, noteOperations()...)
	ops = append(ops, fileOperations()...)
	ops = append(ops, memberOperations()...)
	ops = append(ops, projectOperations()...)
	ops = append(ops, spaceOperations()...)
	ops = append(ops, inboxOperations()...)
	ops = append(ops, taskDetailOperations()...)
	return ops
}

const (
	catTasks        = "tasks"
	catTaskComments = "task_comments"
	catNotes        = "notes"
	catNoteComments = "note_comments"
	catFiles        = "files"
	catMe           = "me"
	catMembers      = "members"
	catProjects     = "projects"
	catSpace        = "space"
	catInbox        = "inbox"
)

// Categories groups the catalog for the server instructions and for
// suggestions.
func Categories() []registry.Category {
	return []registry.Category{
		{Name: catTasks, Description: "Tasks, subtasks, task activity and history", Keywords: []string{"task", "subtask", "todo"}},
		{Name: catTaskComments, Description: "Comments on tasks", Keywords: []string{"comment", "task"}},
		{Name: catNotes, Description: "Project notes, child notes, note activity and history", Keywords: []string{"note", "wiki", "document"}},
		{Name: catNoteComments, Description: "Comments on notes", Keywords: []string{"comment", "note"}},
		{Name: catFiles, Description: "File upload, download and attachments", Keywords: []string{"file", "attachment", "upload"}},
		{Name: catMe, Description: "The authenticated user, their tasks, projects and feed", Keywords: []string{"me", "my", "feed"}},
		{Name: catMembers, Description: "Space members and roles", Keywords: []string{"member", "user", "role"}},
		{Name: catProjects, Description: "Projects, their users, statuses, milestones and activity", Keywords: []string{"project", "status", "milestone"}},
		{Name: catSpace, Description: "Space information, invitations and tags", Keywords: []string{"space", "invite", "tag"}},
		{Name: catInbox, Description: "Inbox items and unread counts", Keywords: []string{"inbox", "notification", "unread"}},
	}
}

// confirmf returns a Confirm func that formats routing values into msg.
func confirmf(msg string, keys ...string) func(Input) string {
	return func(in Input) string {
		args := make([]any, len(keys))
		for i, k := range keys {
			args[i] = in.Route(k)
		}
		return fmt.Sprintf(msg, args...)
	}
}

// confirm returns a Confirm func with a fixed message.
func confirm(msg string) func(Input) string {
	return func(Input) string { return msg }
}
