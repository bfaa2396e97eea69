package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/utils"
	"github.com/projectpulse/projectpulse/pkg/logger"
)

// TaskStore owns the task collection. It talks to the raw document server
// (probing HEAD on the tasks collection) and applies status updates and
// deletes client-authoritatively: local state changes first, the sync is
// best-effort and never rolled back.
type TaskStore struct {
	client  *Client
	session *SessionStore

	mu      sync.Mutex
	tasks   []models.Task
	loading bool
	offline bool
	err     string
}

func NewTaskStore(c *Client, session *SessionStore) *TaskStore {
	return &TaskStore{client: c, session: session}
}

// TaskFilter narrows FetchTasks. Zero fields are ignored.
type TaskFilter struct {
	ProjectID  int64
	AssignedTo int64
}

// FetchTasks loads tasks matching the filter, falling back to the seed
// fixtures when the document server is unreachable.
func (s *TaskStore) FetchTasks(ctx context.Context, f TaskFilter) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	defer func() { s.loading = false }()
	s.err = ""

	s.offline = !s.client.probeCollection(ctx, "tasks")
	if !s.offline {
		url := s.client.dataURL("/tasks")
		switch {
		case f.ProjectID != 0 && f.AssignedTo != 0:
			url = fmt.Sprintf("%s?projectId=%d&assignedTo=%d", url, f.ProjectID, f.AssignedTo)
		case f.ProjectID != 0:
			url = fmt.Sprintf("%s?projectId=%d", url, f.ProjectID)
		case f.AssignedTo != 0:
			url = fmt.Sprintf("%s?assignedTo=%d", url, f.AssignedTo)
		}
		var tasks []models.Task
		if err := s.client.getJSON(ctx, url, &tasks); err == nil {
			s.tasks = tasks
			return true
		}
		s.offline = true
		s.err = "Showing sample data; the server is unreachable"
	}

	s.tasks = filterTasks(copyTasks(), f)
	return true
}

// CreateTask adds a task. Admins only; the actor check happens before any
// network traffic.
func (s *TaskStore) CreateTask(ctx context.Context, projectID int64, title, description, priority string, assignedTo int64) *models.Task {
	actor := s.session.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""

	if actor == nil || actor.Role != models.RoleAdmin {
		s.err = "Only admins can create tasks"
		return nil
	}

	if priority == "" {
		priority = models.PriorityMedium
	}
	task := models.Task{
		ID:          utils.NewID(),
		ProjectID:   projectID,
		Title:       title,
		Description: description,
		Status:      models.TaskPending,
		Priority:    priority,
		AssignedTo:  assignedTo,
		CreatedAt:   utils.NowISO(),
	}

	s.offline = !s.client.probeCollection(ctx, "tasks")
	if !s.offline {
		var created models.Task
		err := s.client.sendJSON(ctx, "POST", s.client.dataURL("/tasks"), task, &created)
		if err == nil {
			task = created
		} else {
			s.offline = true
			s.err = "Saved locally; the server is unreachable"
		}
	}

	s.tasks = append(s.tasks, task)
	return &task
}

// UpdateTaskStatus sets a task's status locally, then syncs best-effort.
// Status is an open set here: any string overwrites any other, and a failed
// sync is logged but never rolled back.
func (s *TaskStore) UpdateTaskStatus(ctx context.Context, id int64, status string) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.err = "Task not found"
		s.mu.Unlock()
		return false
	}
	s.err = ""
	s.tasks[idx].Status = status
	s.mu.Unlock()

	url := s.client.dataURL(fmt.Sprintf("/tasks/%d", id))
	patch := map[string]string{"status": status}
	if err := s.client.sendJSON(ctx, "PUT", url, patch, nil); err != nil {
		s.mu.Lock()
		s.offline = true
		s.mu.Unlock()
		logger.Warn().
			Err(err).
			Int64("task_id", id).
			Str("consistency", ClientAuthoritative.String()).
			Msg("task status not synced")
	}
	return true
}

// DeleteTask removes a task locally, then syncs best-effort. The task is
// never reinserted on sync failure.
func (s *TaskStore) DeleteTask(ctx context.Context, id int64) bool {
	s.mu.Lock()
	idx := -1
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.err = "Task not found"
		s.mu.Unlock()
		return false
	}
	s.err = ""
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	s.mu.Unlock()

	if err := s.client.deleteJSON(ctx, s.client.dataURL(fmt.Sprintf("/tasks/%d", id))); err != nil {
		s.mu.Lock()
		s.offline = true
		s.mu.Unlock()
		logger.Warn().
			Err(err).
			Int64("task_id", id).
			Str("consistency", ClientAuthoritative.String()).
			Msg("task delete not synced")
	}
	return true
}

// Tasks returns a copy of the loaded task list.
func (s *TaskStore) Tasks() []models.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Task(nil), s.tasks...)
}

// OfflineMode reports whether the last operation fell back or failed to
// sync.
func (s *TaskStore) OfflineMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offline
}

// Err returns the last operation's error message, empty on success.
func (s *TaskStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func filterTasks(tasks []models.Task, f TaskFilter) []models.Task {
	out := tasks[:0]
	for _, t := range tasks {
		if f.ProjectID != 0 && t.ProjectID != f.ProjectID {
			continue
		}
		if f.AssignedTo != 0 && t.AssignedTo != f.AssignedTo {
			continue
		}
		out = append(out, t)
	}
	return out
}
