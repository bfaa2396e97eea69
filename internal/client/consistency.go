package client

// Consistency classifies how a mutating store operation relates local state
// to the backend. The two policies coexist deliberately and must not be
// conflated:
//
//   - ServerConfirmed: persist remotely first, commit locally only after the
//     backend accepted the writes (proposal acceptance).
//   - ClientAuthoritative: commit locally first, sync best-effort, never
//     roll back on failure (task status update, task delete).
type Consistency int

const (
	ServerConfirmed Consistency = iota
	ClientAuthoritative
)

func (c Consistency) String() string {
	switch c {
	case ServerConfirmed:
		return "server_confirmed"
	case ClientAuthoritative:
		return "client_authoritative"
	default:
		return "unknown"
	}
}
