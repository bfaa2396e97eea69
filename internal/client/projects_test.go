package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"

	"github.com/projectpulse/projectpulse/internal/models"
	"github.com/projectpulse/projectpulse/internal/store"
)

func loginAs(t *testing.T, session *SessionStore, email string) {
	t.Helper()
	if !session.Login(context.Background(), email, "12345678") {
		t.Fatalf("login %s failed: %s", email, session.Err())
	}
}

func TestFetchProjectsIdempotent(t *testing.T) {
	srv, backing := newBackend(t)
	backing.Update(func(doc *store.Document) error {
		doc.Projects = append(doc.Projects,
			models.Project{ID: 1, Name: "One", CustomerID: 3, Status: models.ProjectPending},
			models.Project{ID: 2, Name: "Two", CustomerID: 3, Status: models.ProjectPending},
		)
		return nil
	})

	c := New(onlineConfig(t, srv))
	session := NewSessionStore(c)
	loginAs(t, session, "customer@example.com")
	projects := NewProjectStore(c, session)

	if !projects.FetchProjects(context.Background()) {
		t.Fatalf("fetch: %s", projects.Err())
	}
	first := projects.Projects()
	if !projects.FetchProjects(context.Background()) {
		t.Fatalf("refetch: %s", projects.Err())
	}
	second := projects.Projects()

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("fetch not idempotent:\nfirst  %v\nsecond %v", first, second)
	}
	if len(first) != 2 {
		t.Fatalf("got %d projects, want 2", len(first))
	}
}

func TestOfflineFetchServesSeedData(t *testing.T) {
	c := New(offlineConfig(t))
	session := NewSessionStore(c)
	loginAs(t, session, "customer@example.com")
	projects := NewProjectStore(c, session)

	if !projects.FetchProjects(context.Background()) {
		t.Fatalf("fetch: %s", projects.Err())
	}
	if !projects.OfflineMode() {
		t.Fatal("offlineMode = false against an unroutable backend")
	}
	want := filterProjects(copyProjects(), 3)
	if !reflect.DeepEqual(projects.Projects(), want) {
		t.Fatalf("offline projects = %v, want the filtered seed set", projects.Projects())
	}

	if !projects.FetchProposals(context.Background(), 101) {
		t.Fatalf("fetch proposals: %s", projects.Err())
	}
	got := projects.Proposals()
	if len(got) != 1 || got[0].ID != 201 {
		t.Fatalf("offline proposals = %v, want seed proposal 201", got)
	}

	if !projects.FetchMessages(context.Background(), 102) {
		t.Fatalf("fetch messages: %s", projects.Err())
	}
	if len(projects.Messages()) != 2 {
		t.Fatalf("offline messages = %v, want the seed thread", projects.Messages())
	}
}

func TestSubmitProposalRoleGated(t *testing.T) {
	srv, _ := newBackend(t)
	c := New(onlineConfig(t, srv))
	session := NewSessionStore(c)
	loginAs(t, session, "customer@example.com")
	projects := NewProjectStore(c, session)

	before := projects.Proposals()
	created := projects.SubmitProposal(context.Background(), 1, "Plan", "Scope", 1000, "2 weeks", []string{"Build"})
	if created != nil {
		t.Fatal("customer was allowed to submit a proposal")
	}
	if projects.Err() == "" {
		t.Error("expected a role error message")
	}
	if !reflect.DeepEqual(before, projects.Proposals()) {
		t.Error("proposals collection changed on a rejected submit")
	}
}

func TestSubmitProjectRoleGated(t *testing.T) {
	srv, _ := newBackend(t)
	c := New(onlineConfig(t, srv))
	session := NewSessionStore(c)
	loginAs(t, session, "admin@example.com")
	projects := NewProjectStore(c, session)

	if p := projects.SubmitProject(context.Background(), "X", "1000", "d", "1 week", "g"); p != nil {
		t.Fatal("admin was allowed to submit a project")
	}
}

func seedAcceptScenario(t *testing.T, backing *store.Store, customerID int64) {
	t.Helper()
	backing.Update(func(doc *store.Document) error {
		doc.Projects = append(doc.Projects, models.Project{
			ID: 1, Name: "Scenario", CustomerID: customerID, Status: models.ProjectPending,
		})
		doc.Proposals = append(doc.Proposals, models.Proposal{
			ID: 1, ProjectID: 1, AdminID: 1, Status: models.ProposalPending,
		})
		return nil
	})
}

func TestAcceptProposalCascade(t *testing.T) {
	srv, backing := newBackend(t)
	seedAcceptScenario(t, backing, 3)

	c := New(onlineConfig(t, srv))
	session := NewSessionStore(c)
	loginAs(t, session, "customer@example.com")
	projects := NewProjectStore(c, session)

	ctx := context.Background()
	if !projects.FetchProjectByID(ctx, 1) {
		t.Fatalf("fetch project: %s", projects.Err())
	}
	if !projects.FetchProposals(ctx, 1) {
		t.Fatalf("fetch proposals: %s", projects.Err())
	}

	if !projects.AcceptProposal(ctx, 1) {
		t.Fatalf("accept: %s", projects.Err())
	}

	// The combined postcondition: accepted proposal AND in_progress project.
	got := projects.Proposals()
	if len(got) != 1 || got[0].Status != models.ProposalAccepted {
		t.Fatalf("proposals = %v, want proposal 1 accepted", got)
	}
	current := projects.CurrentProject()
	if current == nil || current.Status != models.ProjectInProgress || current.AcceptedProposalID != 1 {
		t.Fatalf("currentProject = %+v, want in_progress with acceptedProposalId 1", current)
	}

	doc, _ := backing.Read()
	if doc.Proposals[0].Status != models.ProposalAccepted {
		t.Error("proposal acceptance not persisted")
	}
	if doc.Projects[0].Status != models.ProjectInProgress {
		t.Error("project transition not persisted")
	}

	// A repeat accept is a no-op success.
	if !projects.AcceptProposal(ctx, 1) {
		t.Fatalf("second accept: %s", projects.Err())
	}
}

func TestAcceptProposalOwnershipCheck(t *testing.T) {
	srv, backing := newBackend(t)
	seedAcceptScenario(t, backing, 999)

	c := New(onlineConfig(t, srv))
	session := NewSessionStore(c)
	loginAs(t, session, "customer@example.com")
	projects := NewProjectStore(c, session)

	ctx := context.Background()
	projects.FetchProjectByID(ctx, 1)
	projects.FetchProposals(ctx, 1)

	if projects.AcceptProposal(ctx, 1) {
		t.Fatal("accept succeeded for a foreign project")
	}
	if projects.Err() == "" {
		t.Error("expected a permission error message")
	}

	if got := projects.Proposals(); got[0].Status != models.ProposalPending {
		t.Error("local proposal mutated on rejected accept")
	}
	doc, _ := backing.Read()
	if doc.Projects[0].Status != models.ProjectPending {
		t.Error("project mutated on rejected accept")
	}
}

func TestAcceptProposalRequiresCustomerRole(t *testing.T) {
	srv, backing := newBackend(t)
	seedAcceptScenario(t, backing, 3)

	c := New(onlineConfig(t, srv))
	session := NewSessionStore(c)
	loginAs(t, session, "admin@example.com")
	projects := NewProjectStore(c, session)

	ctx := context.Background()
	projects.FetchProjectByID(ctx, 1)
	projects.FetchProposals(ctx, 1)
	if projects.AcceptProposal(ctx, 1) {
		t.Fatal("admin was allowed to accept a proposal")
	}
}

// A backend that probes healthy but rejects writes: server-confirmed
// acceptance must fail without touching local state.
func TestAcceptProposalServerFailureLeavesStateAlone(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health-check", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/projects/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(models.Project{ID: 1, CustomerID: 3, Status: models.ProjectPending})
	})
	mux.HandleFunc("GET /api/proposals", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]models.Proposal{{ID: 1, ProjectID: 1, Status: models.ProposalPending}})
	})
	mux.HandleFunc("PUT /api/proposals/1", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"write refused"}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := offlineConfig(t)
	cfg.APIBaseURL = srv.URL + "/api"
	c := New(cfg)

	session := NewSessionStore(c)
	loginAs(t, session, "customer@example.com") // offline login against seed users
	projects := NewProjectStore(c, session)

	ctx := context.Background()
	if !projects.FetchProjectByID(ctx, 1) {
		t.Fatalf("fetch project: %s", projects.Err())
	}
	if !projects.FetchProposals(ctx, 1) {
		t.Fatalf("fetch proposals: %s", projects.Err())
	}

	if projects.AcceptProposal(ctx, 1) {
		t.Fatal("accept reported success despite a failing backend write")
	}
	if got := projects.Proposals(); got[0].Status != models.ProposalPending {
		t.Error("local proposal mutated after failed server confirmation")
	}
	if current := projects.CurrentProject(); current.Status != models.ProjectPending {
		t.Error("local project mutated after failed server confirmation")
	}
}

// A health endpoint that answers but is not JSON is treated as unavailable.
func TestHealthProbeRequiresJSONContentType(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health-check", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	cfg := offlineConfig(t)
	cfg.APIBaseURL = srv.URL + "/api"
	c := New(cfg)

	session := NewSessionStore(c)
	loginAs(t, session, "customer@example.com")
	projects := NewProjectStore(c, session)

	if !projects.FetchProjects(context.Background()) {
		t.Fatalf("fetch: %s", projects.Err())
	}
	if !projects.OfflineMode() {
		t.Fatal("offlineMode = false against a non-JSON health endpoint")
	}
}

func TestSendMessageStampsSender(t *testing.T) {
	srv, backing := newBackend(t)
	seedAcceptScenario(t, backing, 3)

	c := New(onlineConfig(t, srv))
	session := NewSessionStore(c)
	loginAs(t, session, "customer@example.com")
	projects := NewProjectStore(c, session)

	ctx := context.Background()
	projects.FetchProjectByID(ctx, 1)

	msg := projects.SendMessage(ctx, 1, "When can we start?")
	if msg == nil {
		t.Fatalf("send failed: %s", projects.Err())
	}
	if msg.SenderName != "Customer" || msg.SenderRole != models.RoleCustomer {
		t.Errorf("sender stamp = %q/%q", msg.SenderName, msg.SenderRole)
	}
	if msg.Read {
		t.Error("new message must start unread")
	}

	doc, _ := backing.Read()
	if len(doc.Messages) != 1 {
		t.Fatalf("got %d persisted messages, want 1", len(doc.Messages))
	}
}

func TestSendMessageRequiresAuth(t *testing.T) {
	srv, _ := newBackend(t)
	c := New(onlineConfig(t, srv))
	session := NewSessionStore(c)
	projects := NewProjectStore(c, session)

	if msg := projects.SendMessage(context.Background(), 1, "hi"); msg != nil {
		t.Fatal("message sent without a session")
	}
}
