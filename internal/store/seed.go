package store

import (
	"errors"
	"os"

	"github.com/projectpulse/projectpulse/internal/models"
)

// defaultUsers are the demo accounts every fresh deployment starts with.
// They intentionally mirror the client's offline seed list so that a login
// performed offline stays valid once the backend comes up.
var defaultUsers = []models.User{
	{ID: 1, Name: "Admin User", Email: "admin@example.com", Password: "12345678", Role: models.RoleAdmin},
	{ID: 2, Name: "Team Member", Email: "team@example.com", Password: "12345678", Role: models.RoleTeamMember},
	{ID: 3, Name: "Customer", Email: "customer@example.com", Password: "12345678", Role: models.RoleCustomer},
}

// Seed creates the document file with the default users if it does not
// exist yet. An existing file, even a corrupt one, is left alone.
func (s *Store) Seed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := os.Stat(s.path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	doc := &Document{Users: append([]models.User(nil), defaultUsers...)}
	return s.write(doc)
}
