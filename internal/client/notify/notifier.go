// Package notify implements the transient user notification channel: a
// single message with a severity kind, auto-dismissed after a fixed delay.
package notify

import (
	"sync"
	"time"
)

// Kind is the severity of a notification.
type Kind string

const (
	Success Kind = "success"
	Error   Kind = "error"
	Info    Kind = "info"
	Warning Kind = "warning"
)

// DefaultTimeout is how long a notification stays visible before it is
// dismissed automatically.
const DefaultTimeout = 3000 * time.Millisecond

// State is the currently displayed notification.
type State struct {
	Message string
	Kind    Kind
	Visible bool
}

// Notifier holds at most one visible notification. Showing a new one
// supersedes the current message and restarts the dismissal timer.
type Notifier struct {
	mu      sync.Mutex
	state   State
	timer   *time.Timer
	timeout time.Duration

	// onShow, when set, is called synchronously for every shown
	// notification. The view layer uses it to print the message.
	onShow func(State)
}

func NewNotifier(opts ...Option) *Notifier {
	n := &Notifier{timeout: DefaultTimeout}
	for _, opt := range opts {
		opt(n)
	}
	return n
}

type Option func(*Notifier)

// WithTimeout overrides the auto-dismiss delay.
func WithTimeout(d time.Duration) Option {
	return func(n *Notifier) { n.timeout = d }
}

// WithOnShow registers a callback invoked for every shown notification.
func WithOnShow(fn func(State)) Option {
	return func(n *Notifier) { n.onShow = fn }
}

// Show displays a notification, replacing any visible one. The pending
// dismissal timer is cancelled and rescheduled.
func (n *Notifier) Show(message string, kind Kind) {
	n.mu.Lock()
	if n.timer != nil {
		n.timer.Stop()
	}
	n.state = State{Message: message, Kind: kind, Visible: true}
	n.timer = time.AfterFunc(n.timeout, n.Hide)
	st := n.state
	onShow := n.onShow
	n.mu.Unlock()

	if onShow != nil {
		onShow(st)
	}
}

// Hide dismisses the current notification. Safe to call when nothing is
// visible.
func (n *Notifier) Hide() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.state.Visible = false
}

// Current returns the notification state as of now.
func (n *Notifier) Current() State {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.state
}

// Close cancels any pending dismissal timer.
func (n *Notifier) Close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
}
