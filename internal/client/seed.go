package client

import "github.com/projectpulse/projectpulse/internal/models"

// Offline seed data. When the backend is unreachable the stores serve and
// mutate copies of these fixtures so the UI stays demonstrable. The user
// list mirrors the server's boot seed so an offline login survives the
// backend coming back.

var seedUsers = []models.User{
	{ID: 1, Name: "Admin User", Email: "admin@example.com", Password: "12345678", Role: models.RoleAdmin},
	{ID: 2, Name: "Team Member", Email: "team@example.com", Password: "12345678", Role: models.RoleTeamMember},
	{ID: 3, Name: "Customer", Email: "customer@example.com", Password: "12345678", Role: models.RoleCustomer},
}

var seedProjects = []models.Project{
	{
		ID:          101,
		Name:        "E-commerce Website",
		Budget:      "5000-10000",
		Description: "Online storefront with product catalog and checkout",
		Timeline:    "3 months",
		Goals:       "Launch before the holiday season",
		Status:      models.ProjectPending,
		CustomerID:  3,
		CreatedAt:   "2025-01-15T10:00:00.000Z",
	},
	{
		ID:                 102,
		Name:               "Mobile App Redesign",
		Budget:             "10000-20000",
		Description:        "Refresh of the existing customer app",
		Timeline:           "2 months",
		Goals:              "Improve onboarding conversion",
		Status:             models.ProjectInProgress,
		CustomerID:         3,
		CreatedAt:          "2025-02-01T09:30:00.000Z",
		AcceptedProposalID: 202,
	},
}

var seedProposals = []models.Proposal{
	{
		ID:           201,
		ProjectID:    101,
		AdminID:      1,
		Title:        "Storefront build, phased delivery",
		Description:  "Catalog first, checkout second, analytics last",
		Price:        8500,
		Timeline:     "12 weeks",
		Deliverables: []string{"Product catalog", "Checkout flow", "Admin dashboard"},
		Status:       models.ProposalPending,
		CreatedAt:    "2025-01-16T14:00:00.000Z",
	},
	{
		ID:           202,
		ProjectID:    102,
		AdminID:      1,
		Title:        "App redesign sprint plan",
		Description:  "Four two-week sprints with usability testing",
		Price:        15000,
		Timeline:     "8 weeks",
		Deliverables: []string{"Design system", "Onboarding flow", "Release build"},
		Status:       models.ProposalAccepted,
		CreatedAt:    "2025-02-02T11:00:00.000Z",
	},
}

var seedMessages = []models.Message{
	{
		ID:         301,
		ProjectID:  102,
		SenderID:   1,
		SenderName: "Admin User",
		SenderRole: models.RoleAdmin,
		ReceiverID: 3,
		Content:    "Sprint one is underway, designs land Friday.",
		CreatedAt:  "2025-02-05T16:20:00.000Z",
		Read:       true,
	},
	{
		ID:         302,
		ProjectID:  102,
		SenderID:   3,
		SenderName: "Customer",
		SenderRole: models.RoleCustomer,
		ReceiverID: 1,
		Content:    "Great, looking forward to the preview.",
		CreatedAt:  "2025-02-05T17:05:00.000Z",
		Read:       false,
	},
}

var seedTasks = []models.Task{
	{
		ID:          401,
		ProjectID:   102,
		Title:       "Design system audit",
		Description: "Inventory existing components and flag inconsistencies",
		Status:      models.TaskCompleted,
		Priority:    models.PriorityHigh,
		AssignedTo:  2,
		CreatedAt:   "2025-02-03T09:00:00.000Z",
	},
	{
		ID:          402,
		ProjectID:   102,
		Title:       "Onboarding wireframes",
		Description: "New first-run flow, three variants for testing",
		Status:      models.TaskInProgress,
		Priority:    models.PriorityMedium,
		AssignedTo:  2,
		CreatedAt:   "2025-02-04T10:15:00.000Z",
	},
	{
		ID:          403,
		ProjectID:   102,
		Title:       "Release checklist",
		Description: "Store listing assets and rollout plan",
		Status:      models.TaskPending,
		Priority:    models.PriorityLow,
		CreatedAt:   "2025-02-04T10:20:00.000Z",
	},
}

func copyProjects() []models.Project {
	return append([]models.Project(nil), seedProjects...)
}

func copyProposals() []models.Proposal {
	return append([]models.Proposal(nil), seedProposals...)
}

func copyMessages() []models.Message {
	return append([]models.Message(nil), seedMessages...)
}

func copyTasks() []models.Task {
	return append([]models.Task(nil), seedTasks...)
}
