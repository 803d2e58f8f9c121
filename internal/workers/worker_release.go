package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-waitroom/internal/logger"
	"github.com/MKhiriev/go-waitroom/internal/service"
)

const defaultReleaseInterval = time.Second

// ReleaseWorker calls ReleaseService.ReleaseAll on a ticker.
type ReleaseWorker struct {
	releaseService service.ReleaseService
	interval       time.Duration
	logger         *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReleaseWorker returns an idle worker. A non-positive interval falls
// back to one second.
func NewReleaseWorker(releaseService service.ReleaseService, interval time.Duration, log *logger.Logger) *ReleaseWorker {
	if interval <= 0 {
		interval = defaultReleaseInterval
	}
	return &ReleaseWorker{
		releaseService: releaseService,
		interval:       interval,
		logger:         log.WithComponent("release_worker"),
	}
}

// Run stops any previous run and starts ticking.
func (w *ReleaseWorker) Run(ctx context.Context) {
	w.Stop()

	w.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	w.mu.Unlock()

	w.logger.Info().Dur("interval", w.interval).Msg("release worker started")

	go func() {
		defer w.wg.Done()
		t := time.NewTicker(w.interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				w.logger.Info().Msg("release worker stopped")
				return
			case <-t.C:
				w.tick(jobCtx)
			}
		}
	}()
}

func (w *ReleaseWorker) tick(ctx context.Context) {
	admitted, err := w.releaseService.ReleaseAll(ctx)
	if err != nil {
		if ctx.Err() == nil {
			w.logger.Err(err).Msg("release tick failed")
		}
		return
	}
	if admitted > 0 {
		w.logger.Debug().Int64("admitted", admitted).Msg("release tick")
	}
}

func (w *ReleaseWorker) Stop() {
	w.mu.Lock()
	cancel := w.cancel
	w.cancel = nil
	w.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	w.wg.Wait()
}
