package services

import (
	"encoding/json"

	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/internal/utils"
)

type ProposalService struct {
	store *store.Store
}

func NewProposalService(s *store.Store) *ProposalService {
	return &ProposalService{store: s}
}

type CreateProposalRequest struct {
	ProjectID    int64    `json:"projectId" binding:"required"`
	AdminID      int64    `json:"adminId" binding:"required"`
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Price        float64  `json:"price" binding:"required"`
	Timeline     string   `json:"timeline" binding:"required"`
	Deliverables []string `json:"deliverables" binding:"required"`
}

// List returns proposals, optionally narrowed to one project.
func (s *ProposalService) List(projectID int64) ([]models.Proposal, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}

	if projectID == 0 {
		return doc.Proposals, nil
	}

	out := make([]models.Proposal, 0, len(doc.Proposals))
	for _, p := range doc.Proposals {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out, nil
}

// GetByID returns a single proposal or ErrNotFound.
func (s *ProposalService) GetByID(id int64) (*models.Proposal, error) {
	doc, err := s.store.Read()
	if err != nil {
		return nil, err
	}
	for i := range doc.Proposals {
		if doc.Proposals[i].ID == id {
			p := doc.Proposals[i]
			return &p, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends a new pending proposal, stamping id and createdAt.
func (s *ProposalService) Create(req *CreateProposalRequest) (*models.Proposal, error) {
	proposal := models.Proposal{
		ID:           utils.NewID(),
		ProjectID:    req.ProjectID,
		AdminID:      req.AdminID,
		Title:        req.Title,
		Description:  req.Description,
		Price:        req.Price,
		Timeline:     req.Timeline,
		Deliverables: req.Deliverables,
		Status:       models.ProposalPending,
		CreatedAt:    utils.NowISO(),
	}

	err := s.store.Update(func(doc *store.Document) error {
		doc.Proposals = append(doc.Proposals, proposal)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// Merge applies a shallow JSON merge to the stored proposal. When the patch
// sets status to accepted, the parent project is flipped to in_progress and
// records the accepted proposal id in the same document write, so the two
// updates cannot be observed apart.
func (s *ProposalService) Merge(id int64, patch []byte) (*models.Proposal, error) {
	var updated models.Proposal
	err := s.store.Update(func(doc *store.Document) error {
		idx := -1
		for i := range doc.Proposals {
			if doc.Proposals[i].ID == id {
				idx = i
				break
			}
		}
		if idx == -1 {
			return ErrNotFound
		}

		if err := mergeJSON(doc.Proposals[idx], patch, &updated); err != nil {
			return err
		}
		doc.Proposals[idx] = updated

		if patchSetsAccepted(patch) {
			for i := range doc.Projects {
				if doc.Projects[i].ID == updated.ProjectID {
					doc.Projects[i].Status = models.ProjectInProgress
					doc.Projects[i].AcceptedProposalID = id
					break
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// patchSetsAccepted reports whether the raw body carries status=accepted.
// Only an explicit status in the body triggers the cascade, matching the
// original PUT handler.
func patchSetsAccepted(patch []byte) bool {
	var probe struct {
		Status *string `json:"status"`
	}
	if err := json.Unmarshal(patch, &probe); err != nil {
		return false
	}
	return probe.Status != nil && *probe.Status == models.ProposalAccepted
}
