// Package orchestrator schedules frame-extraction commands across a
// bounded worker pool.
//
// Tasks may complete in any order; ordering of the final sprite sheet is
// carried entirely by each task's Index, never by completion time. The
// first task failure is fatal to the batch: queued tasks are skipped,
// in-flight tasks drain, and their results are discarded.
package orchestrator

import (
	"fmt"
	"sync"
	"time"

	"spritegen/command"
	"spritegen/ffmpeg"
	"spritegen/models"
)

// Worker count bounds for the extraction pool.
const (
	MinWorkers = 2
	MaxWorkers = 8
)

// Workers clamps an available processing capacity (typically the host CPU
// count) into the pool's worker bounds. It is a pure function so callers
// can inject any capacity value.
func Workers(capacity int) int {
	if capacity < MinWorkers {
		return MinWorkers
	}
	if capacity > MaxWorkers {
		return MaxWorkers
	}
	return capacity
}

// Task represents one unit of extraction work: a command plus the logical
// sample index its output occupies in the sprite grid.
type Task struct {
	ID        string
	Index     uint
	Command   command.Command
	Status    TaskStatus
	Error     error
	Result    *models.ExtractResult
	StartTime time.Time
	EndTime   time.Time
}

// TaskStatus represents the current state of a task.
type TaskStatus int

const (
	TaskPending TaskStatus = iota
	TaskRunning
	TaskCompleted
	TaskFailed
	TaskSkipped // Never ran because an earlier task failed
)

// Pool executes tasks with a fixed number of concurrent workers.
type Pool struct {
	workers int
	runner  ffmpeg.Runner

	tasks   []*Task
	taskIDs map[string]struct{}

	// Progress tracking
	onProgress func(completed, total int, task *Task)
}

// NewPool creates a pool with the given worker count and runner.
func NewPool(workers int, runner ffmpeg.Runner) *Pool {
	if workers < 1 {
		workers = 1
	}
	return &Pool{
		workers: workers,
		runner:  runner,
		taskIDs: make(map[string]struct{}),
	}
}

// AddTask adds a task to the pool.
func (p *Pool) AddTask(task *Task) error {
	if _, exists := p.taskIDs[task.ID]; exists {
		return fmt.Errorf("task %s already exists", task.ID)
	}

	task.Status = TaskPending
	p.taskIDs[task.ID] = struct{}{}
	p.tasks = append(p.tasks, task)
	return nil
}

// SetProgressCallback sets a callback invoked after each successful task.
// The callback is best-effort and must not block.
func (p *Pool) SetProgressCallback(callback func(completed, total int, task *Task)) {
	p.onProgress = callback
}

// Execute runs all tasks and returns their results in task-submission
// order. On failure it returns the first error encountered; results of
// other tasks are discarded and the pool is fully drained before
// returning.
func (p *Pool) Execute() ([]*models.ExtractResult, error) {
	total := len(p.tasks)
	if total == 0 {
		return nil, nil
	}

	taskCh := make(chan *Task)
	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	completed := 0

	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range taskCh {
				mu.Lock()
				failed := firstErr != nil
				if failed {
					task.Status = TaskSkipped
				} else {
					task.Status = TaskRunning
					task.StartTime = time.Now()
				}
				mu.Unlock()

				if failed {
					continue
				}

				err := p.runner.Run(task.Command)

				var result *models.ExtractResult
				if err == nil {
					result, err = models.NewExtractResultSuccess(task.Index, task.Command.GetOutputPath())
				}
				if err != nil {
					result, _ = models.NewExtractResultFailure(task.Index, err)
				}

				mu.Lock()
				task.EndTime = time.Now()
				task.Result = result
				if err != nil {
					task.Status = TaskFailed
					task.Error = err
					if firstErr == nil {
						firstErr = fmt.Errorf("task %s: %w", task.ID, err)
					}
				} else {
					task.Status = TaskCompleted
					completed++
					if p.onProgress != nil {
						p.onProgress(completed, total, task)
					}
				}
				mu.Unlock()
			}
		}()
	}

	for _, task := range p.tasks {
		taskCh <- task
	}
	close(taskCh)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	results := make([]*models.ExtractResult, 0, total)
	for _, task := range p.tasks {
		results = append(results, task.Result)
	}
	return results, nil
}

// Tasks returns the pool's tasks in submission order. Useful after a
// failed Execute to inspect which task failed.
func (p *Pool) Tasks() []*Task {
	return p.tasks
}

// Stats returns a count of tasks per status.
func (p *Pool) Stats() map[TaskStatus]int {
	stats := make(map[TaskStatus]int)
	for _, task := range p.tasks {
		stats[task.Status]++
	}
	return stats
}
