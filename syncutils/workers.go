package syncutils

import (
	"sync"
)

// Workers runs jobs on at most n concurrent goroutines and keeps the first
// error any of them returned.
type Workers struct {
	wg        sync.WaitGroup
	available chan struct{}

	mu  sync.Mutex
	err error
}

// Go blocks until a worker slot is free, then runs f on its own goroutine.
func (w *Workers) Go(f func() (err error)) {
	<-w.available

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer func() { w.available <- struct{}{} }()

		err := f()
		if err != nil {
			w.mu.Lock()
			if w.err == nil {
				w.err = err
			}
			w.mu.Unlock()
		}
	}()
}

// Wait blocks until every submitted job finished and returns the first error.
func (w *Workers) Wait() (err error) {
	w.wg.Wait()

	w.mu.Lock()
	defer w.mu.Unlock()
	return w.err
}

func (w *Workers) Close() (err error) {
	w.wg.Wait()
	close(w.available)
	return nil
}

func NewWorkers(n int) (w *Workers) {
	w = &Workers{
		available: make(chan struct{}, n),
	}
	for range n {
		w.available <- struct{}{}
	}
	return w
}
