// Package connection drives the connect control through its four states
// while a single asynchronous pairing attempt runs.
package connection

// Status is the state of the connect control.
type Status int

const (
	Idle Status = iota
	Connecting
	Connected
	Failed
)

func (s Status) String() string {
	switch s {
	case Idle:
		return "Idle"
	case Connecting:
		return "Connecting"
	case Connected:
		return "Connected"
	case Failed:
		return "Failed"
	default:
		return "Unknown"
	}
}

// Label returns the text shown on the connect control.
func (s Status) Label() string {
	switch s {
	case Connecting:
		return "Connecting..."
	case Connected:
		return "Connected"
	case Failed:
		return "Error - please click to retry."
	default:
		return "Click Here To Connect"
	}
}

// CanActivate reports whether activating the control starts a new attempt.
func (s Status) CanActivate() bool {
	return s == Idle || s == Failed
}
