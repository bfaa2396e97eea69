package services

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()
	return store.Open(filepath.Join(t.TempDir(), "db.json"))
}

func seedProjectWithProposal(t *testing.T, s *store.Store) (int64, int64) {
	t.Helper()
	projectID := int64(1001)
	proposalID := int64(2001)
	err := s.Update(func(doc *store.Document) error {
		doc.Projects = append(doc.Projects, models.Project{
			ID:         projectID,
			Name:       "Website redesign",
			Status:     models.ProjectPending,
			CustomerID: 3,
		})
		doc.Proposals = append(doc.Proposals, models.Proposal{
			ID:        proposalID,
			ProjectID: projectID,
			AdminID:   1,
			Title:     "Redesign plan",
			Status:    models.ProposalPending,
		})
		return nil
	})
	if err != nil {
		t.Fatalf("seed: %v", err)
	}
	return projectID, proposalID
}

func TestProposalMergeAcceptCascades(t *testing.T) {
	s := newTestStore(t)
	projectID, proposalID := seedProjectWithProposal(t, s)

	svc := NewProposalService(s)
	updated, err := svc.Merge(proposalID, []byte(`{"status":"accepted"}`))
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if updated.Status != models.ProposalAccepted {
		t.Fatalf("proposal status = %q, want accepted", updated.Status)
	}

	doc, err := s.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	project := doc.Projects[0]
	if project.ID != projectID {
		t.Fatalf("unexpected project %d in document", project.ID)
	}
	if project.Status != models.ProjectInProgress {
		t.Errorf("project status = %q, want in_progress", project.Status)
	}
	if project.AcceptedProposalID != proposalID {
		t.Errorf("acceptedProposalId = %d, want %d", project.AcceptedProposalID, proposalID)
	}
}

func TestProposalMergeWithoutStatusLeavesProject(t *testing.T) {
	s := newTestStore(t)
	_, proposalID := seedProjectWithProposal(t, s)

	svc := NewProposalService(s)
	updated, err := svc.Merge(proposalID, []byte(`{"title":"Revised plan"}`))
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}
	if updated.Title != "Revised plan" {
		t.Errorf("title = %q, want Revised plan", updated.Title)
	}
	if updated.Status != models.ProposalPending {
		t.Errorf("status = %q, want pending", updated.Status)
	}

	doc, _ := s.Read()
	if doc.Projects[0].Status != models.ProjectPending {
		t.Errorf("project status = %q, want pending untouched", doc.Projects[0].Status)
	}
	if doc.Projects[0].AcceptedProposalID != 0 {
		t.Errorf("acceptedProposalId = %d, want unset", doc.Projects[0].AcceptedProposalID)
	}
}

func TestProposalMergeUnknownID(t *testing.T) {
	s := newTestStore(t)
	svc := NewProposalService(s)
	if _, err := svc.Merge(42, []byte(`{"status":"accepted"}`)); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestProposalListFiltersByProject(t *testing.T) {
	s := newTestStore(t)
	projectID, _ := seedProjectWithProposal(t, s)
	s.Update(func(doc *store.Document) error {
		doc.Proposals = append(doc.Proposals, models.Proposal{ID: 2002, ProjectID: 9999})
		return nil
	})

	svc := NewProposalService(s)
	got, err := svc.List(projectID)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 1 || got[0].ProjectID != projectID {
		t.Fatalf("got %d proposals, want 1 for project %d", len(got), projectID)
	}

	all, _ := svc.List(0)
	if len(all) != 2 {
		t.Fatalf("got %d proposals unfiltered, want 2", len(all))
	}
}

func TestProposalCreateStampsDefaults(t *testing.T) {
	s := newTestStore(t)
	svc := NewProposalService(s)
	p, err := svc.Create(&CreateProposalRequest{
		ProjectID:    7,
		AdminID:      1,
		Title:        "Plan",
		Description:  "Scope",
		Price:        4500,
		Timeline:     "6 weeks",
		Deliverables: []string{"Design", "Build"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if p.ID == 0 {
		t.Error("id not stamped")
	}
	if p.Status != models.ProposalPending {
		t.Errorf("status = %q, want pending", p.Status)
	}
	if p.CreatedAt == "" {
		t.Error("createdAt not stamped")
	}
}
