package models

import "time"

// ClientRef is the client identity copied into an appointment when it is
// booked. It is never refreshed from the client record.
type ClientRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Appointment struct {
	ID       string    `json:"id"`
	Day      string    `json:"day"`
	Time     string    `json:"time"`
	Duration int       `json:"duration"`
	Location string    `json:"location"`
	Client   ClientRef `json:"client"`
	Note     string    `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
