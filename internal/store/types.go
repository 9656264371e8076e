package store

// Departure is one train departure joined with its group's train number.
// It is resolved at the repository boundary so the renderer never sees raw
// rows.
type Departure struct {
	// Punkt is the destination.
	Punkt string

	// Nomer is the train number as stored in the group title.
	Nomer string

	// Time is the departure time, free-form text.
	Time string
}
