package services

import (
	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/internal/utils"
)

type ProjectService struct {
	store *store.Store
}

func NewProjectService(s *store.Store) *ProjectService {
	return &ProjectService{store: s}
}

type CreateProjectRequest struct {
	Name        string   `json:"name" binding:"required"`
	Budget      string   `json:"budget" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Timeline    string   `json:"timeline" binding:"required"`
	Goals       string   `json:"goals" binding:"required"`
	CustomerID  int64    `json:"customerId" binding:"required"`
	Files       []string `json:"files"`
}

// List returns projects, optionally narrowed to one customer.
func (s *ProjectService) List(customerID int64) ([]models.Project, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	if customerID == 0 {
		return doc.Projects, nil
	}

	out := make([]models.Project, 0, len(doc.Projects))
	for _, p := range doc.Projects {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID returns a single project or ErrNotFound.
func (s *ProjectService) GetByID(id int64) (*models.Project, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Projects {
		if doc.Projects[i].ID == id {
			p := doc.Projects[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new pending project, stamping id and createdAt.
func (s *ProjectService) Create(req *CreateProjectRequest) (*models.Project, error) {
	project := models.Project{
		ID:          utils.NewID(),
		Name:        req.Name,
		Budget:      req.Budget,
		Description: req.Description,
		Timeline:    req.Timeline,
		Goals:       req.Goals,
		Status:      models.ProjectPending,
		CustomerID:  req.CustomerID,
		CreatedAt:   utils.NowISO(),
		Files:       req.Files,
	}

	err := s.store.Update(func(doc *store.Document) error {
		doc.Projects = append(doc.Projects, project)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// Merge applies a shallow JSON merge to the stored project and returns the
// result. ErrNotFound if the id is absent.
func (s *ProjectService) Merge(id int64, patch []byte) (*models.Project, error) {
	var updated models.Project
	err := s.store.Update(func(doc *store.Document) error {
		for i := range doc.Projects {
			if doc.Projects[i].ID != id {
				continue
			}
			if err := mergeJSON(doc.Projects[i], patch, &updated); err != nil {
				return err
			}
			doc.Projects[i] = updated
			return nil
		}
		return ErrNotFound
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}
