// Package scheduler drives the deferred parts of the lifecycle: hold
// completion and withdrawal auto-confirmation. Both run as reconciliation
// scans over persisted deadlines, so deferred work survives restarts; the
// first pass fires immediately on start to recover anything that came due
// while the process was down.
package scheduler

import (
	"context"
	"time"

	"github.com/KoshakFSB/WCWD/internal/logger"
	"github.com/KoshakFSB/WCWD/internal/service"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const scanTimeout = time.Minute

type Scheduler struct {
	accounts service.AccountService
	payouts  service.PayoutService
	cron     *cron.Cron
}

func New(accounts service.AccountService, payouts service.PayoutService) *Scheduler {
	return &Scheduler{
		accounts: accounts,
		payouts:  payouts,
		cron:     cron.New(),
	}
}

func (s *Scheduler) Start() error {
	s.runHoldScan()
	s.runConfirmScan()

	if _, err := s.cron.AddFunc("@every 30s", s.runHoldScan); err != nil {
		return err
	}
	if _, err := s.cron.AddFunc("@every 1m", s.runConfirmScan); err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
}

func (s *Scheduler) runHoldScan() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	completed, err := s.accounts.CompleteDueHolds(ctx)
	if err != nil {
		logger.Log.Error("hold completion scan failed", zap.Error(err))
		return
	}
	if completed > 0 {
		logger.Log.Info("completed due holds", zap.Int("count", completed))
	}
}

func (s *Scheduler) runConfirmScan() {
	ctx, cancel := context.WithTimeout(context.Background(), scanTimeout)
	defer cancel()

	confirmed, err := s.payouts.ConfirmDue(ctx)
	if err != nil {
		logger.Log.Error("withdrawal auto-confirm scan failed", zap.Error(err))
		return
	}
	if confirmed > 0 {
		logger.Log.Info("auto-confirmed withdrawals", zap.Int("count", confirmed))
	}
}
