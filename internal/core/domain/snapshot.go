package domain

// Snapshot is a full point-in-time copy of the three persisted
// collections, used for backup and restore. ExportDate is an ISO-8601
// timestamp. All three collection keys must be present for an import to
// be accepted; any other keys in imported data are ignored.
type Snapshot struct {
	Users        []User        `json:"users"`
	Services     []Service     `json:"services"`
	Appointments []Appointment `json:"appointments"`
	ExportDate   string        `json:"exportDate"`
}
