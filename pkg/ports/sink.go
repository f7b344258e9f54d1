package ports

// Severity classifies an output line.
type Severity int

const (
	SeverityInfo    Severity = iota // Reports and confirmations
	SeverityWarning                 // Non-fatal repairs and duplicates
	SeverityError                   // Rejected input, nothing applied
)

func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "info"
	}
}

// Message is a single line of engine output.
type Message struct {
	Severity Severity
	Text     string
}

// String renders the message as plain text, prefixed by its severity when not informational.
func (m Message) String() string {
	switch m.Severity {
	case SeverityWarning:
		return "Warning: " + m.Text
	case SeverityError:
		return "Error: " + m.Text
	default:
		return m.Text
	}
}

// Sink receives engine output one line at a time.
type Sink interface {
	WriteLine(msg Message)
}

// SinkFunc adapts a function to the Sink interface.
type SinkFunc func(msg Message)

func (f SinkFunc) WriteLine(msg Message) { f(msg) }

// Transcript is the write-through session log controlled by the LOG command.
// At most one target is open at a time.
type Transcript interface {
	// Start closes any open target and begins logging to name.
	Start(name string) error

	// Stop closes the current target. It reports false if nothing was open.
	Stop() (bool, error)

	// Target returns the current target name, or "" when inactive.
	Target() string
}
