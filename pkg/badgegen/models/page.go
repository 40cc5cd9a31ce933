package models

// PagePlan describes one output document before it is rendered.
type PagePlan struct {
	// Index is the page number (1-based).
	Index int `json:"index"`
	// File is the output file name.
	File string `json:"file"`
	// Attendees holds the batch in slot-source order, padding included.
	Attendees []Attendee `json:"attendees"`
}
