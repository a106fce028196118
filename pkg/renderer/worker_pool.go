package renderer

import (
	"runtime"
	"sync"

	"github.com/df07/go-sphere-raytracer/pkg/integrator"
)

// SampleTask is a contiguous run of samples for one pixel
type SampleTask struct {
	X, Y        int                     // Pixel column and row, row 0 at the top
	PixelIndex  int                     // Row-major pixel index, seeds the sample streams
	FirstSample int                     // Index of the first sample in this task
	Results     []integrator.PathResult // One slot per sample, written by the worker
}

// SampleFunc renders every sample of a task into its result slots
type SampleFunc func(task SampleTask)

// WorkerPool runs sample tasks on a fixed set of goroutines. Tasks are
// submitted in batches and Wait joins the whole batch.
type WorkerPool struct {
	taskQueue  chan SampleTask
	render     SampleFunc
	numWorkers int
	workers    sync.WaitGroup
	pending    sync.WaitGroup
	stopOnce   sync.Once
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int, render SampleFunc) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		taskQueue:  make(chan SampleTask, numWorkers*4),
		render:     render,
		numWorkers: numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		wp.workers.Add(1)
		go wp.run()
	}
}

// Stop gracefully shuts down all workers. It is safe to call more than once.
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		close(wp.taskQueue) // No more tasks
		wp.workers.Wait()   // Wait for workers to finish
	})
}

// SubmitTask submits a sample task to the worker pool
func (wp *WorkerPool) SubmitTask(task SampleTask) {
	wp.pending.Add(1)
	wp.taskQueue <- task
}

// Wait blocks until every submitted task has finished
func (wp *WorkerPool) Wait() {
	wp.pending.Wait()
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop
func (wp *WorkerPool) run() {
	defer wp.workers.Done()

	for task := range wp.taskQueue {
		wp.render(task)
		wp.pending.Done()
	}
}
