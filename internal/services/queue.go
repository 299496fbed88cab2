package services

import (
	"sync"

	"github.com/emirpasic/gods/queues/linkedlistqueue"
)

type dirJob struct {
	path     string
	segments []string
	rules    ignoreRules
}

// dirQueue hands each directory to exactly one worker. A directory is only
// pushed by the worker that read its parent, and the queue drains once no
// directory is queued or being visited.
type dirQueue struct {
	mu      sync.Mutex
	cond    *sync.Cond
	jobs    *linkedlistqueue.Queue
	pending int
	done    bool
}

func newDirQueue() *dirQueue {
	queue := &dirQueue{jobs: linkedlistqueue.New()}
	queue.cond = sync.NewCond(&queue.mu)
	return queue
}

func (queue *dirQueue) push(job dirJob) {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	if queue.done {
		return
	}
	queue.pending++
	queue.jobs.Enqueue(job)
	queue.cond.Signal()
}

// pop blocks until a job is available. It returns false once the walk is
// finished or aborted.
func (queue *dirQueue) pop() (dirJob, bool) {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	for queue.jobs.Empty() && !queue.done {
		queue.cond.Wait()
	}
	if queue.done {
		return dirJob{}, false
	}
	value, _ := queue.jobs.Dequeue()
	return value.(dirJob), true
}

// finish marks a popped job as fully visited.
func (queue *dirQueue) finish() {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	queue.pending--
	if queue.pending == 0 {
		queue.done = true
		queue.cond.Broadcast()
	}
}

func (queue *dirQueue) abort() {
	queue.mu.Lock()
	defer queue.mu.Unlock()
	queue.done = true
	queue.jobs.Clear()
	queue.cond.Broadcast()
}
