package portfolio

// Severity splits notifications into unobtrusive read-path notices and
// blocking write-path errors the user must acknowledge or retry.
type Severity int

const (
	// SeverityRead marks a fetch problem: worth showing, not worth blocking.
	SeverityRead Severity = iota
	// SeverityWrite marks a failed create, update, delete or upload.
	SeverityWrite
)

// Notification is one user-facing message.
type Notification struct {
	Severity Severity
	Message  string
}

// Notifier is the single funnel for user-facing error messages. Read-severity
// publishes are lossy when nobody is consuming; write-severity publishes
// block until delivered.
type Notifier struct {
	ch chan Notification
}

// NewNotifier creates a notifier with the given read-path buffer size.
func NewNotifier(buffer int) *Notifier {
	if buffer <= 0 {
		buffer = 8
	}
	return &Notifier{ch: make(chan Notification, buffer)}
}

// Publish delivers a notification according to its severity.
func (n *Notifier) Publish(note Notification) {
	if note.Severity == SeverityWrite {
		n.ch <- note
		return
	}
	select {
	case n.ch <- note:
	default:
	}
}

// C returns the consumption channel.
func (n *Notifier) C() <-chan Notification {
	return n.ch
}
