package eventbus

import (
	"errors"
	"sync"
	"time"

	"github.com/Rorical/eventlist/internal/event"
)

var (
	ErrQueueFull   = errors.New("event queue is full")
	ErrQueueClosed = errors.New("event queue is closed")
)

// QueueError represents a rejected event
type QueueError struct {
	Operation string
	Event     event.Event
	Err       error
	Timestamp time.Time
}

func (e *QueueError) Error() string {
	return e.Operation + " " + e.Event.Kind.String() + ": " + e.Err.Error()
}

func (e *QueueError) Unwrap() error {
	return e.Err
}

// Queue buffers input events between the terminal reader and the main loop.
// Posting never blocks; a full queue rejects the event.
type Queue struct {
	events        chan event.Event
	errorCallback func(QueueError)

	closeOnce sync.Once
	mu        sync.RWMutex
	closed    bool
}

func NewQueue(size int) *Queue {
	return &Queue{
		events: make(chan event.Event, size),
	}
}

func (q *Queue) SetErrorCallback(callback func(QueueError)) {
	q.errorCallback = callback
}

func (q *Queue) reportError(operation string, e event.Event, err error) error {
	qErr := &QueueError{
		Operation: operation,
		Event:     e,
		Err:       err,
		Timestamp: time.Now(),
	}
	if q.errorCallback != nil {
		q.errorCallback(*qErr)
	}
	return qErr
}

func (q *Queue) Post(e event.Event) error {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		return q.reportError("Post", e, ErrQueueClosed)
	}

	select {
	case q.events <- e:
		return nil
	default:
		return q.reportError("Post", e, ErrQueueFull)
	}
}

// Drain returns every event pending at the time of the call, oldest first
func (q *Queue) Drain() []event.Event {
	var batch []event.Event
	for {
		select {
		case e, ok := <-q.events:
			if !ok {
				return batch
			}
			batch = append(batch, e)
		default:
			return batch
		}
	}
}

func (q *Queue) Len() int {
	return len(q.events)
}

func (q *Queue) Close() {
	q.closeOnce.Do(func() {
		q.mu.Lock()
		defer q.mu.Unlock()
		q.closed = true
		close(q.events)
	})
}
