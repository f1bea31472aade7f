package app

import (
	"context"
	"time"

	"gitlab.com/aungkh/finhabit/internal/logger"
)

// ProcessTimeout is the maximum time a single due-processing pass can take.
const ProcessTimeout = 2 * time.Minute

// StartPlannedProcessingLoop runs a periodic loop that materializes due
// planned transactions. It blocks until the context is cancelled.
func (s *Service) StartPlannedProcessingLoop(ctx context.Context, interval time.Duration, runOnBoot bool) {
	logger.Log.Info().
		Dur("interval", interval).
		Msg("Planned transaction processing loop started")

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	if runOnBoot {
		// Catch up on anything that came due while the process was down.
		s.runDuePass(ctx)
	}

	for {
		select {
		case <-ctx.Done():
			logger.Log.Info().Msg("Planned transaction processing loop stopped")
			return
		case <-ticker.C:
			s.runDuePass(ctx)
		}
	}
}

func (s *Service) runDuePass(ctx context.Context) {
	passCtx, cancel := context.WithTimeout(ctx, ProcessTimeout)
	defer cancel()

	if processed := s.ProcessDue(passCtx); processed > 0 {
		logger.Log.Info().Int("processed", processed).Msg("Materialized due planned transactions")
	}
}
