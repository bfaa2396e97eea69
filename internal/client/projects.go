package client

import (
	"context"
	"fmt"
	"sync"

	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/utils"
	"github.com/projectpulse/projectpulse/pkg/logger"
)

// ProjectStore owns projects plus the views that hang off the currently
// selected project: its proposals and its message thread. It probes the
// application API's health route before each operation and falls back to
// the seed fixtures when the backend is unreachable.
type ProjectStore struct {
	client  *Client
	session *SessionStore

	mu             sync.Mutex
	projects       []models.Project
	currentProject *models.Project
	proposals      []models.Proposal
	messages       []models.Message
	loading        bool
	offline        bool
	err            string
}

func NewProjectStore(c *Client, session *SessionStore) *ProjectStore {
	return &ProjectStore{client: c, session: session}
}

// FetchProjects loads the project list visible to the current user:
// customers see their own projects, admins and team members see all.
func (s *ProjectStore) FetchProjects(ctx context.Context) bool {
	actor := s.session.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	defer func() { s.loading = false }()
	s.err = ""

	var customerID int64
	if actor != nil && actor.Role == models.RoleCustomer {
		customerID = actor.ID
	}

	s.offline = !s.client.probeHealth(ctx)
	if !s.offline {
		url := s.client.apiURL("/projects")
		if customerID != 0 {
			url = fmt.Sprintf("%s?customerId=%d", url, customerID)
		}
		var projects []models.Project
		if err := s.client.getJSON(ctx, url, &projects); err == nil {
			s.projects = projects
			return true
		}
		s.offline = true
		s.err = "Showing sample data; the server is unreachable"
	}

	s.projects = filterProjects(copyProjects(), customerID)
	return true
}

// FetchProjectByID loads one project into currentProject.
func (s *ProjectStore) FetchProjectByID(ctx context.Context, id int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	defer func() { s.loading = false }()
	s.err = ""

	s.offline = !s.client.probeHealth(ctx)
	if !s.offline {
		var project models.Project
		err := s.client.getJSON(ctx, s.client.apiURL(fmt.Sprintf("/projects/%d", id)), &project)
		if err == nil {
			s.currentProject = &project
			return true
		}
		s.offline = true
	}

	for _, p := range seedProjects {
		if p.ID == id {
			project := p
			s.currentProject = &project
			return true
		}
	}
	s.err = "Project not found"
	return false
}

// SubmitProject creates a project request. Customers only; any other role
// gets an error and no network call. The record is appended to local state
// on every path so the view shows it immediately.
func (s *ProjectStore) SubmitProject(ctx context.Context, name, budget, description, timeline, goals string) *models.Project {
	actor := s.session.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""

	if actor == nil || actor.Role != models.RoleCustomer {
		s.err = "Only customers can submit projects"
		return nil
	}

	project := models.Project{
		ID:          utils.NewID(),
		Name:        name,
		Budget:      budget,
		Description: description,
		Timeline:    timeline,
		Goals:       goals,
		Status:      models.ProjectPending,
		CustomerID:  actor.ID,
		CreatedAt:   utils.NowISO(),
	}

	s.offline = !s.client.probeHealth(ctx)
	if !s.offline {
		var created models.Project
		err := s.client.sendJSON(ctx, "POST", s.client.apiURL("/projects"), project, &created)
		if err == nil {
			project = created
		} else {
			s.offline = true
			s.err = "Saved locally; the server is unreachable"
		}
	}

	s.projects = append(s.projects, project)
	return &project
}

// FetchProposals loads the proposals for one project.
func (s *ProjectStore) FetchProposals(ctx context.Context, projectID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	defer func() { s.loading = false }()
	s.err = ""

	s.offline = !s.client.probeHealth(ctx)
	if !s.offline {
		url := s.client.apiURL(fmt.Sprintf("/proposals?projectId=%d", projectID))
		var proposals []models.Proposal
		if err := s.client.getJSON(ctx, url, &proposals); err == nil {
			s.proposals = proposals
			return true
		}
		s.offline = true
	}

	s.proposals = filterProposals(copyProposals(), projectID)
	return true
}

// SubmitProposal creates a proposal against a project. Admins only.
func (s *ProjectStore) SubmitProposal(ctx context.Context, projectID int64, title, description string, price float64, timeline string, deliverables []string) *models.Proposal {
	actor := s.session.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""

	if actor == nil || actor.Role != models.RoleAdmin {
		s.err = "Only admins can submit proposals"
		return nil
	}

	proposal := models.Proposal{
		ID:           utils.NewID(),
		ProjectID:    projectID,
		AdminID:      actor.ID,
		Title:        title,
		Description:  description,
		Price:        price,
		Timeline:     timeline,
		Deliverables: deliverables,
		Status:       models.ProposalPending,
		CreatedAt:    utils.NowISO(),
	}

	s.offline = !s.client.probeHealth(ctx)
	if !s.offline {
		var created models.Proposal
		err := s.client.sendJSON(ctx, "POST", s.client.apiURL("/proposals"), proposal, &created)
		if err == nil {
			proposal = created
		} else {
			s.offline = true
			s.err = "Saved locally; the server is unreachable"
		}
	}

	s.proposals = append(s.proposals, proposal)
	return &proposal
}

// AcceptProposal is the one cross-entity mutation: the proposal flips to
// accepted and the owning project to in_progress. It is server-confirmed:
// when online, both PUTs must succeed before local state changes; a failure
// on either leaves local state untouched. Nothing un-accepts a previously
// accepted proposal for the same project; callers (and the backing data)
// tolerate that gap.
func (s *ProjectStore) AcceptProposal(ctx context.Context, proposalID int64) bool {
	actor := s.session.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""

	if actor == nil || actor.Role != models.RoleCustomer {
		s.err = "Only customers can accept proposals"
		return false
	}

	idx := -1
	for i := range s.proposals {
		if s.proposals[i].ID == proposalID {
			idx = i
			break
		}
	}
	if idx == -1 {
		s.err = "Proposal not found"
		return false
	}
	proposal := s.proposals[idx]

	if s.currentProject == nil || s.currentProject.ID != proposal.ProjectID {
		s.err = "Project not loaded"
		return false
	}
	if s.currentProject.CustomerID != actor.ID {
		s.err = "You do not own this project"
		return false
	}

	updatedProposal := proposal
	updatedProposal.Status = models.ProposalAccepted
	updatedProject := *s.currentProject
	updatedProject.Status = models.ProjectInProgress
	updatedProject.AcceptedProposalID = proposal.ID

	s.offline = !s.client.probeHealth(ctx)
	if !s.offline {
		proposalURL := s.client.apiURL(fmt.Sprintf("/proposals/%d", proposal.ID))
		if err := s.client.sendJSON(ctx, "PUT", proposalURL, updatedProposal, nil); err != nil {
			s.err = "Could not save the acceptance. Please try again."
			s.offline = true
			return false
		}
		projectURL := s.client.apiURL(fmt.Sprintf("/projects/%d", updatedProject.ID))
		if err := s.client.sendJSON(ctx, "PUT", projectURL, updatedProject, nil); err != nil {
			s.err = "Could not save the acceptance. Please try again."
			s.offline = true
			return false
		}
	}

	s.proposals[idx] = updatedProposal
	s.currentProject = &updatedProject
	for i := range s.projects {
		if s.projects[i].ID == updatedProject.ID {
			s.projects[i] = updatedProject
			break
		}
	}

	logger.Debug().
		Int64("proposal_id", proposal.ID).
		Int64("project_id", updatedProject.ID).
		Str("consistency", ServerConfirmed.String()).
		Bool("offline", s.offline).
		Msg("proposal accepted")
	return true
}

// FetchMessages loads the message thread for one project.
func (s *ProjectStore) FetchMessages(ctx context.Context, projectID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = true
	defer func() { s.loading = false }()
	s.err = ""

	s.offline = !s.client.probeHealth(ctx)
	if !s.offline {
		url := s.client.apiURL(fmt.Sprintf("/messages?projectId=%d", projectID))
		var messages []models.Message
		if err := s.client.getJSON(ctx, url, &messages); err == nil {
			s.messages = messages
			return true
		}
		s.offline = true
	}

	s.messages = filterMessages(copyMessages(), projectID)
	return true
}

// SendMessage appends a message to the loaded project's thread, stamping
// the sender from the current session. Requires an authenticated user and a
// loaded project.
func (s *ProjectStore) SendMessage(ctx context.Context, receiverID int64, content string) *models.Message {
	actor := s.session.CurrentUser()

	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""

	if actor == nil {
		s.err = "You must be signed in to send messages"
		return nil
	}
	if s.currentProject == nil {
		s.err = "Project not loaded"
		return nil
	}

	message := models.Message{
		ID:         utils.NewID(),
		ProjectID:  s.currentProject.ID,
		SenderID:   actor.ID,
		SenderName: actor.Name,
		SenderRole: actor.Role,
		ReceiverID: receiverID,
		Content:    content,
		CreatedAt:  utils.NowISO(),
		Read:       false,
	}

	s.offline = !s.client.probeHealth(ctx)
	if !s.offline {
		var created models.Message
		err := s.client.sendJSON(ctx, "POST", s.client.apiURL("/messages"), message, &created)
		if err == nil {
			message = created
		} else {
			s.offline = true
			s.err = "Saved locally; the server is unreachable"
		}
	}

	s.messages = append(s.messages, message)
	return &message
}

// Projects returns a copy of the loaded project list.
func (s *ProjectStore) Projects() []models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Project(nil), s.projects...)
}

// CurrentProject returns a copy of the loaded project, or nil.
func (s *ProjectStore) CurrentProject() *models.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.currentProject == nil {
		return nil
	}
	p := *s.currentProject
	return &p
}

// Proposals returns a copy of the loaded proposal list.
func (s *ProjectStore) Proposals() []models.Proposal {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Proposal(nil), s.proposals...)
}

// Messages returns a copy of the loaded message thread.
func (s *ProjectStore) Messages() []models.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Message(nil), s.messages...)
}

// OfflineMode reports whether the last operation fell back to seed data.
func (s *ProjectStore) OfflineMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.offline
}

// Err returns the last operation's error message, empty on success.
func (s *ProjectStore) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func filterProjects(projects []models.Project, customerID int64) []models.Project {
	if customerID == 0 {
		return projects
	}
	out := projects[:0]
	for _, p := range projects {
		if p.CustomerID == customerID {
			out = append(out, p)
		}
	}
	return out
}

func filterProposals(proposals []models.Proposal, projectID int64) []models.Proposal {
	if projectID == 0 {
		return proposals
	}
	out := proposals[:0]
	for _, p := range proposals {
		if p.ProjectID == projectID {
			out = append(out, p)
		}
	}
	return out
}

func filterMessages(messages []models.Message, projectID int64) []models.Message {
	if projectID == 0 {
		return messages
	}
	out := messages[:0]
	for _, m := range messages {
		if m.ProjectID == projectID {
			out = append(out, m)
		}
	}
	return out
}
