// Package worker provides a worker pool for searching root moves in parallel.
package worker

import (
	"sync"

	"github.com/lgbarn/chess-ai-go/internal/chess"
)

// WorkItem is one root move to be searched.
type WorkItem struct {
	Index int          // Position in generation order
	Move  chess.Move   // The root move
	Board *chess.Board // Position after Move; owned by the worker
}

// ProcessResult is the outcome of searching one root move.
type ProcessResult struct {
	Index   int
	Move    chess.Move
	Score   int
	Nodes   uint64
	Cutoffs uint64
}

// ProcessFunc is the function signature for processing a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool manages a fixed set of goroutines fed through a buffered channel.
type Pool struct {
	numWorkers  int
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
}

// NewPool creates a new worker pool with the specified number of workers and buffer size.
func NewPool(numWorkers, bufferSize int, processFunc ProcessFunc) *Pool {
	if numWorkers < 1 {
		numWorkers = 1
	}
	if bufferSize < 1 {
		bufferSize = 1
	}
	return &Pool{
		numWorkers:  numWorkers,
		workChan:    make(chan WorkItem, bufferSize),
		resultChan:  make(chan ProcessResult, bufferSize),
		processFunc: processFunc,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		p.resultChan <- p.processFunc(item)
	}
}

// Submit queues a work item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed once the last worker returns.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// Run pushes every item through a fresh pool and returns the results
// indexed by WorkItem.Index. Items must carry distinct indices in
// [0, len(items)).
func Run(numWorkers int, items []WorkItem, processFunc ProcessFunc) []ProcessResult {
	results := make([]ProcessResult, len(items))
	if len(items) == 0 {
		return results
	}

	pool := NewPool(numWorkers, len(items), processFunc)
	pool.Start()
	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	for r := range pool.Results() {
		results[r.Index] = r
	}
	return results
}
