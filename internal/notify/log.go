package notify

// DefaultLogCap is the number of messages a Log keeps when no cap is given.
const DefaultLogCap = 50

// Log records notifications in memory, oldest first. Once Cap messages are
// held the oldest are dropped. A Cap of zero or less keeps everything.
type Log struct {
	Cap      int
	messages []string
}

// NewLog returns a Log holding at most max messages.
func NewLog(max int) *Log {
	return &Log{Cap: max}
}

func (l *Log) Notify(msg string) {
	l.messages = append(l.messages, msg)
	if l.Cap > 0 && len(l.messages) > l.Cap {
		l.messages = l.messages[len(l.messages)-l.Cap:]
	}
}

// Messages returns the retained messages. The slice must not be modified.
func (l *Log) Messages() []string { return l.messages }

// Last returns the newest message, or "" when the log is empty.
func (l *Log) Last() string {
	if len(l.messages) == 0 {
		return ""
	}
	return l.messages[len(l.messages)-1]
}

// Len returns the number of retained messages.
func (l *Log) Len() int { return len(l.messages) }

// Reset forgets every message.
func (l *Log) Reset() { l.messages = nil }
