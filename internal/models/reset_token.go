package models

// ResetToken is a persisted password-reset grant. Expires holds an ISO
// timestamp; consumed tokens are deleted, abandoned ones are purged by the
// cleanup scheduler.
type ResetToken struct {
	ID      int64  `json:"id"`
	UserID  int64  `json:"userId"`
	Token   string `json:"token"`
	Expires string `json:"expires"`
}
