package domain

// Snapshot is the full entity-store payload exchanged with the remote
// mirror and handed to the assistant bridge. Collections are never nil in a
// snapshot produced by the store.
type Snapshot struct {
	Accounts     []Account     `json:"accounts"`
	Incomes      []Income      `json:"incomes"`
	Notes        []Note        `json:"notes"`
	Appointments []Appointment `json:"appointments"`
}
