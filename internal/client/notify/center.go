package notify

import (
	"sort"
	"sync"
	"time"
)

// DefaultTTL is how long a notification stays visible when no ttl is given
const DefaultTTL = 3 * time.Second

// Level is the severity of a notification
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ID identifies a notification within a Center
type ID uint64

// Notification is a message shown to the user for a limited time
type Notification struct {
	CreatedAt time.Time
	Message   string
	TTL       time.Duration
	ID        ID
	Level     Level
}

// Event is delivered to the sink when a notification appears or goes away
type Event struct {
	Notification
	Dismissed bool
}

// Sink receives events. It is called without the Center lock held.
type Sink func(Event)

// Center shows notifications and dismisses them after their ttl.
// Every pending timer is owned by the Center and stopped by Dismiss or Close,
// so no callback fires after teardown.
type Center struct {
	timers map[ID]*time.Timer
	active map[ID]Notification
	sink   Sink
	mu     sync.Mutex
	nextID ID
	closed bool
}

// NewCenter creates a center. sink may be nil.
func NewCenter(sink Sink) *Center {
	return &Center{
		timers: make(map[ID]*time.Timer),
		active: make(map[ID]Notification),
		sink:   sink,
	}
}

// Show displays msg and arms its auto-dismiss timer.
// A ttl of zero or less means DefaultTTL. After Close, Show does nothing and returns 0.
func (c *Center) Show(level Level, msg string, ttl time.Duration) ID {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return 0
	}

	c.nextID++
	n := Notification{
		ID:        c.nextID,
		Level:     level,
		Message:   msg,
		TTL:       ttl,
		CreatedAt: time.Now(),
	}
	c.active[n.ID] = n
	c.timers[n.ID] = time.AfterFunc(ttl, func() {
		c.Dismiss(n.ID)
	})
	c.mu.Unlock()

	c.emit(Event{Notification: n})
	return n.ID
}

// Info shows an info notification with the default ttl
func (c *Center) Info(msg string) ID {
	return c.Show(LevelInfo, msg, 0)
}

// Success shows a success notification with the default ttl
func (c *Center) Success(msg string) ID {
	return c.Show(LevelSuccess, msg, 0)
}

// Error shows an error notification with the default ttl
func (c *Center) Error(msg string) ID {
	return c.Show(LevelError, msg, 0)
}

// Dismiss removes the notification and disarms its timer.
// Returns false if it was already gone.
func (c *Center) Dismiss(id ID) bool {
	c.mu.Lock()
	n, ok := c.active[id]
	if !ok {
		c.mu.Unlock()
		return false
	}
	delete(c.active, id)
	if timer, ok := c.timers[id]; ok {
		timer.Stop()
		delete(c.timers, id)
	}
	c.mu.Unlock()

	c.emit(Event{Notification: n, Dismissed: true})
	return true
}

// Active returns visible notifications, oldest first
func (c *Center) Active() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]Notification, 0, len(c.active))
	for _, n := range c.active {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Close disarms every timer and drops visible notifications without events.
func (c *Center) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
	c.active = make(map[ID]Notification)
	c.closed = true
}

func (c *Center) emit(e Event) {
	if c.sink != nil {
		c.sink(e)
	}
}
