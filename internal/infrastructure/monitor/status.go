package monitor

import "time"

type Status struct {
	RecordCount int       `json:"record_count"`
	Currencies  int       `json:"currencies"`
	StartedAt   time.Time `json:"started_at"`
	LastCheck   time.Time `json:"last_check"`
}
