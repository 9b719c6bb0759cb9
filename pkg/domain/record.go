package domain

import "time"

// RunRecord is the persisted summary of a finished run.
// Only final outcomes are recorded; intermediate execution state is never stored.
type RunRecord struct {
	ID         string    `json:"id"`
	Machine    string    `json:"machine"`
	Tape       string    `json:"tape,omitempty"`
	Result     Result    `json:"result"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
}
