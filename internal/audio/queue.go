package audio

import "nitrocart/internal/debug"

// queueCapacity bounds the number of pending tone commands. A cart that
// issues tone() faster than the audio thread drains them starts dropping
// the newest command rather than blocking the frame loop.
const queueCapacity = 64

// Queue is the bounded single-producer/single-consumer channel carrying
// tone commands from the frame-loop thread to the audio collaborator.
// Enqueue never blocks: a full queue drops the command and logs it.
type Queue struct {
	ch     chan Command
	logger *debug.Logger
}

func NewQueue(logger *debug.Logger) *Queue {
	return &Queue{
		ch:     make(chan Command, queueCapacity),
		logger: logger,
	}
}

// Enqueue submits a tone command, dropping it if the queue is full.
func (q *Queue) Enqueue(cmd Command) {
	select {
	case q.ch <- cmd:
	default:
		if q.logger != nil {
			q.logger.LogAudiof(debug.LogLevelWarning, "tone queue full, dropping command (channel=%d)", cmd.Channel())
		}
	}
}

// Dequeue returns the next pending command, or ok=false if none is
// queued. Used by a Device's render callback to drain commands without
// blocking.
func (q *Queue) Dequeue() (Command, bool) {
	select {
	case cmd := <-q.ch:
		return cmd, true
	default:
		return Command{}, false
	}
}
