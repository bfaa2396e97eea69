package services

import (
	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/internal/utils"
)

type TaskService struct {
	store *store.Store
}

func NewTaskService(s *store.Store) *TaskService {
	return &TaskService{store: s}
}

type CreateTaskRequest struct {
	ProjectID   int64  `json:"projectId" binding:"required"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description" binding:"required"`
	Status      string `json:"status"`
	Priority    string `json:"priority"`
	AssignedTo  int64  `json:"assignedTo"`
}

// TaskFilter narrows List results. Zero fields are ignored.
type TaskFilter struct {
	ProjectID  int64
	AssignedTo int64
}

// List returns tasks matching the filter.
func (s *TaskService) List(f TaskFilter) ([]models.Task, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	out := make([]models.Task, 0, len(doc.Tasks))
	for _, t := range doc.Tasks {
		if f.ProjectID != 0 && t.ProjectID != f.ProjectID {
			continue
		}
		if f.AssignedTo != 0 && t.AssignedTo != f.AssignedTo {
			continue
		}
		out = append(out, t)
	}
	return out, nil
}

// GetByID returns a single task or ErrNotFound.
func (s *TaskService) GetByID(id int64) (*models.Task, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Tasks {
		if doc.Tasks[i].ID == id {
			t := doc.Tasks[i]
			return &t, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a task, defaulting status and priority when omitted.
func (s *TaskService) Create(req *CreateTaskRequest) (*models.Task, error) {
	status := req.Status
	if status == "" {
		status = models.TaskPending
	}
	priority := req.Priority
	if priority == "" {
		priority = models.PriorityMedium
	}

	task := models.Task{
		ID:          utils.NewID(),
		ProjectID:   req.ProjectID,
		Title:       req.Title,
		Description: req.Description,
		Status:      status,
		Priority:    priority,
		AssignedTo:  req.AssignedTo,
		CreatedAt:   utils.NowISO(),
	}

	err := s.store.Update(func(doc *store.Document) error {
		doc.Tasks = append(doc.Tasks, task)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Merge applies a shallow JSON merge to the stored task. Status values are
// not validated; any string overwrites any other.
func (s *TaskService) Merge(id int64, patch []byte) (*models.Task, error) {
	var updated models.Task
	err := s.store.Update(func(doc *store.Document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID != id {
				continue
			}
			if err := mergeJSON(doc.Tasks[i], patch, &updated); err != nil {
				return err
			}
			doc.Tasks[i] = updated
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// Delete removes a task. ErrNotFound if the id is absent. Tasks are the
// only entity with a delete operation.
func (s *TaskService) Delete(id int64) error {
	return s.store.Update(func(doc *store.Document) error {
		for i := range doc.Tasks {
			if doc.Tasks[i].ID == id {
				doc.Tasks = append(doc.Tasks[:i], doc.Tasks[i+1:]...)
				return nil
			}
		}
		return ErrNotFound
	})
}
