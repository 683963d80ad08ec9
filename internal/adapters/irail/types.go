package irail

// Payload is the liveboard document returned by the iRail API.
// Only the fields this service consumes are mapped; everything else the
// upstream sends is dropped at decode time
type Payload struct {
	Station    string     `json:"station"`
	Departures Departures `json:"departures"`
}

// Departures wraps the departure list
type Departures struct {
	Number    string      `json:"number"`
	Departure []Departure `json:"departure"`
}

// Departure is a single entry on the liveboard.
// Time is the raw epoch value as the upstream sends it (a decimal string)
type Departure struct {
	Station  string `json:"station"`
	Vehicle  string `json:"vehicle"`
	Time     string `json:"time"`
	Platform string `json:"platform"`
	Delay    string `json:"delay"`
	Canceled string `json:"canceled"`
}
