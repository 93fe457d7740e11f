package postgres

import "github.com/heartmarshall/reviso-backend/internal/domain"

// StatusValues converts statuses to the text stored in status columns.
func StatusValues(statuses []domain.RequestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}

// TerminalStatusValues is StatusValues(domain.TerminalStatuses).
func TerminalStatusValues() []string {
	return StatusValues(domain.TerminalStatuses)
}
