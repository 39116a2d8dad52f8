package task

import "time"

// Repeating executes a function in a fixed interval on its own goroutine
type Repeating struct {
	fn       func()
	interval time.Duration

	running bool
	stop    chan struct{}
}

// NewRepeating creates a new repeating asynchronous task
func NewRepeating(fn func(), interval time.Duration) *Repeating {
	return &Repeating{
		fn:       fn,
		interval: interval,
	}
}

// Start starts the repeating task.
// If the task is already running, this is a no-op.
func (task *Repeating) Start() {
	if task.running {
		return
	}
	task.running = true
	task.stop = make(chan struct{})
	go func(stop <-chan struct{}) {
		ticker := time.NewTicker(task.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				task.fn()
			case <-stop:
				return
			}
		}
	}(task.stop)
}

// Stop stops the repeating task.
// If the task is not running, this is a no-op.
func (task *Repeating) Stop() {
	if !task.running {
		return
	}
	close(task.stop)
	task.running = false
}
