package worker

import (
	"context"
	stderrors "errors"
	"sync"

	"github.com/nimasrn/customer-billing/pkg/logger"
	"github.com/pkg/errors"
)

type WorkerHandler[T any] func(ctx context.Context, workerIndex int, job T) error

// WorkerManager fans jobs out to a fixed number of goroutines. Jobs are
// accepted until Close, which drains the queue and waits for every worker.
type WorkerManager[T any] struct {
	numberOfWorker int
	jobChannel     chan T
	do             WorkerHandler[T]
	waiter         sync.WaitGroup

	mu   sync.Mutex
	errs []error

	// sendMu guards jobChannel against a send after close.
	sendMu sync.RWMutex
	closed bool
}

func NewWorkerManager[T any](bufferSize, numberOfWorkers int, do func(ctx context.Context, workerIndex int, job T) error) *WorkerManager[T] {
	if numberOfWorkers < 1 {
		numberOfWorkers = 1
	}
	return &WorkerManager[T]{
		numberOfWorker: numberOfWorkers,
		jobChannel:     make(chan T, bufferSize),
		do:             do,
	}
}

// Start launches the workers. A cancelled ctx stops them picking up new jobs.
func (w *WorkerManager[T]) Start(ctx context.Context) {
	w.waiter.Add(w.numberOfWorker)
	for i := 0; i < w.numberOfWorker; i++ {
		go func(index int) {
			defer w.waiter.Done()
			for {
				select {
				case <-ctx.Done():
					w.fail(ctx.Err())
					return
				case job, ok := <-w.jobChannel:
					if !ok {
						return
					}
					if err := w.do(ctx, index, job); err != nil {
						w.fail(err)
					}
				}
			}
		}(i)
	}
}

func (w *WorkerManager[T]) fail(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.errs = append(w.errs, err)
}

func (w *WorkerManager[T]) GetUnreadCount() int64 {
	return int64(len(w.jobChannel))
}

// Enqueue blocks while the buffer is full.
func (w *WorkerManager[T]) Enqueue(job T) error {
	w.sendMu.RLock()
	defer w.sendMu.RUnlock()
	if w.closed {
		return errors.New("worker manager is closed")
	}
	w.jobChannel <- job
	return nil
}

// Close stops accepting jobs, waits for the queued ones and returns every
// handler error joined together.
func (w *WorkerManager[T]) Close() error {
	w.sendMu.Lock()
	if w.closed {
		w.sendMu.Unlock()
		return nil
	}
	w.closed = true
	close(w.jobChannel)
	w.sendMu.Unlock()

	w.waiter.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	if len(w.errs) > 0 {
		logger.Warn("[worker] finished with errors", "count", len(w.errs))
	}
	return errors.WithStack(stderrors.Join(w.errs...))
}
