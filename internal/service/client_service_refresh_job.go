package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-property-dex/internal/logger"
)

type balanceRefreshJob struct {
	wallet WalletService
	logger *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewBalanceRefreshJob creates a job that calls wallet.RefreshBalances on a
// ticker. The job is idle until Start is called.
func NewBalanceRefreshJob(wallet WalletService, logger *logger.Logger) BalanceRefreshJob {
	return &balanceRefreshJob{wallet: wallet, logger: logger}
}

// Start implements BalanceRefreshJob. It stops any previously running job,
// then launches a goroutine that refreshes the balances every interval. The
// goroutine exits when ctx is cancelled or Stop is called.
func (j *balanceRefreshJob) Start(ctx context.Context, interval time.Duration) {
	j.Stop()

	if interval <= 0 {
		return
	}

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				err := j.wallet.RefreshBalances(jobCtx)
				if err != nil && !errors.Is(err, context.Canceled) {
					j.logger.Debug().Str("func", "balanceRefreshJob.Start").Err(err).Msg("scheduled balance refresh failed")
				}
			}
		}
	}()
}

// Stop implements BalanceRefreshJob. Safe to call when the job is not
// running.
func (j *balanceRefreshJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
