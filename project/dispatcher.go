package project

import (
	"strings"
	"sync"
	"sync/atomic"

	"g2rapid/common/logger"
	"g2rapid/common/utils/sys"
	"g2rapid/project/queue"

	uuid "github.com/satori/go.uuid"
)

// ConversionResult is delivered once per submitted job. Output may be
// non-empty while Err reports per-line failures.
type ConversionResult struct {
	ID     uuid.UUID
	Output string
	Lines  []string
	Trace  []Position
	Err    error
}

type conversionJob struct {
	id       uuid.UUID
	text     string
	settings *AppSettings
	callback func(ConversionResult)
}

// Dispatcher runs conversions on its own goroutine, one at a time, in
// submission order. A started job always runs to completion.
type Dispatcher struct {
	jobs    *queue.Queue[conversionJob]
	wake    chan struct{}
	done    chan struct{}
	stopped chan struct{}
	mu      sync.Mutex
	closed  bool
	worker  atomic.Uint64
}

func NewDispatcher() *Dispatcher {
	self := &Dispatcher{
		jobs:    queue.NewQueue[conversionJob](),
		wake:    make(chan struct{}, 1),
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go self.run()
	return self
}

// Submit queues text for conversion with a snapshot of settings and returns
// the job id. callback runs on the dispatcher goroutine.
func (self *Dispatcher) Submit(text string, settings *AppSettings, callback func(ConversionResult)) uuid.UUID {
	self.mu.Lock()
	if self.closed {
		self.mu.Unlock()
		if callback != nil {
			callback(ConversionResult{ID: uuid.Nil, Err: ErrDispatcherClosed})
		}
		return uuid.Nil
	}
	job := conversionJob{id: uuid.NewV4(), text: text, callback: callback}
	if settings != nil {
		job.settings = settings.Clone()
	}
	self.jobs.Put(job)
	self.mu.Unlock()

	select {
	case self.wake <- struct{}{}:
	default:
	}
	return job.id
}

// Close stops accepting jobs, finishes the queued ones and waits for the
// worker to exit. Called from a callback it only stops intake; the worker
// exits once the queue is drained.
func (self *Dispatcher) Close() {
	self.mu.Lock()
	if !self.closed {
		self.closed = true
		close(self.done)
	}
	self.mu.Unlock()
	if sys.GetGID() == self.worker.Load() {
		return
	}
	<-self.stopped
}

func (self *Dispatcher) run() {
	defer close(self.stopped)
	self.worker.Store(sys.GetGID())
	logger.Debugf("conversion worker %d running", self.worker.Load())
	for {
		select {
		case <-self.wake:
			self.drain()
		case <-self.done:
			self.drain()
			return
		}
	}
}

func (self *Dispatcher) drain() {
	for {
		job, ok := self.jobs.Get()
		if !ok {
			return
		}
		self.runJob(job)
	}
}

func (self *Dispatcher) runJob(job conversionJob) {
	result := ConversionResult{ID: job.id}
	defer func() {
		if job.callback == nil {
			return
		}
		defer sys.CatchPanic(nil)
		job.callback(result)
	}()
	defer sys.CatchPanic(func(err error) { result.Err = err })

	logger.Debugf("job %s started on goroutine %d", job.id, sys.GetGID())
	converter := NewRAPIDConverter()
	output, err := converter.GcodeToRapid(job.text, job.settings)
	result.Output = output
	if output != "" {
		result.Lines = strings.Split(output, "\n")
	}
	result.Trace = converter.Positions()
	result.Err = err
	logger.Infof("job %s converted %d motion lines", job.id, len(result.Lines))
}
