package systems

import (
	"runtime"
	"sync"

	"github.com/pthm-cable/linelife/creature"
)

// workChunk is a contiguous range of the batch for one worker.
type workChunk struct {
	batch     []member
	dt        float32
	worldSize creature.Vec2
}

// workerPool runs creature updates on persistent goroutines.
type workerPool struct {
	numWorkers int

	workChan chan workChunk // sends work to workers
	doneChan chan error     // workers report chunk completion
	stopChan chan struct{}  // signals workers to exit
	wg       sync.WaitGroup
	running  bool
}

// newWorkerPool sizes the pool; n <= 0 uses GOMAXPROCS.
func newWorkerPool(n int) *workerPool {
	if n <= 0 {
		n = runtime.GOMAXPROCS(0)
	}
	return &workerPool{numWorkers: n}
}

// start launches the worker goroutines.
func (p *workerPool) start() {
	if p.running {
		return
	}

	p.workChan = make(chan workChunk, p.numWorkers)
	p.doneChan = make(chan error, p.numWorkers)
	p.stopChan = make(chan struct{})
	p.running = true

	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// stop signals all workers to exit and waits for them.
func (p *workerPool) stop() {
	if !p.running {
		return
	}

	close(p.stopChan)
	p.wg.Wait()
	close(p.workChan)
	close(p.doneChan)
	p.running = false
}

func (p *workerPool) worker() {
	defer p.wg.Done()

	for {
		select {
		case <-p.stopChan:
			return
		case chunk, ok := <-p.workChan:
			if !ok {
				return
			}
			p.doneChan <- updateChunk(chunk.batch, chunk.dt, chunk.worldSize)
		}
	}
}

// run splits the batch into one chunk per worker and blocks until all are done.
// Returns the first chunk error.
func (p *workerPool) run(batch []member, dt float32, worldSize creature.Vec2) error {
	p.start()

	n := len(batch)
	chunkSize := (n + p.numWorkers - 1) / p.numWorkers

	dispatched := 0
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		p.workChan <- workChunk{batch: batch[start:end], dt: dt, worldSize: worldSize}
		dispatched++
	}

	var firstErr error
	for i := 0; i < dispatched; i++ {
		if err := <-p.doneChan; err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
