package services

import (
	"time"

	"github.com/robfig/cron/v3"

	"github.com/projectpulse/projectpulse/internal/store"
	"github.com/projectpulse/projectpulse/internal/utils"
	"github.com/projectpulse/projectpulse/pkg/logger"
)

// CleanupService purges expired reset-token records. The reset flow deletes
// consumed tokens but abandoned ones would otherwise accumulate in the
// document forever.
type CleanupService struct {
	store         *store.Store
	cronScheduler *cron.Cron
}

func NewCleanupService(s *store.Store) *CleanupService {
	return &CleanupService{store: s}
}

// StartScheduler runs PurgeExpiredResetTokens every hour until StopScheduler.
func (s *CleanupService) StartScheduler() {
	s.cronScheduler = cron.New()
	s.cronScheduler.AddFunc("@hourly", func() {
		if n, err := s.PurgeExpiredResetTokens(time.Now()); err != nil {
			logger.Warn().Err(err).Msg("reset token cleanup failed")
		} else if n > 0 {
			logger.Info().Int("purged", n).Msg("expired reset tokens removed")
		}
	})
	s.cronScheduler.Start()
}

// StopScheduler stops the cron scheduler if running.
func (s *CleanupService) StopScheduler() {
	if s.cronScheduler != nil {
		s.cronScheduler.Stop()
	}
}

// PurgeExpiredResetTokens removes tokens whose expiry is before now and
// returns how many were dropped. Unparseable expiry stamps are treated as
// expired.
func (s *CleanupService) PurgeExpiredResetTokens(now time.Time) (int, error) {
	purged := 0
	err := s.store.Update(func(doc *store.Document) error {
		kept := doc.ResetTokens[:0]
		for _, rt := range doc.ResetTokens {
			exp, err := utils.ParseISO(rt.Expires)
			if err == nil && exp.After(now) {
				kept = append(kept, rt)
				continue
			}
			purged++
		}
		doc.ResetTokens = kept
		return nil
	})
	if err != nil {
		return 0, err
	}
	return purged, nil
}
