package jobs

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"

	"kivulounge/internal/pkg/logger"
)

type BookingCompleter interface {
	CompleteFinished(ctx context.Context, now time.Time) (int64, error)
}

// Scheduler runs the background jobs. Currently one: sweep confirmed
// bookings whose check-out has passed into completed, once an hour.
type Scheduler struct {
	cron     *cron.Cron
	bookings BookingCompleter
}

func NewScheduler(bookings BookingCompleter) *Scheduler {
	return &Scheduler{
		cron:     cron.New(),
		bookings: bookings,
	}
}

func (s *Scheduler) Start() error {
	if _, err := s.cron.AddFunc("@hourly", s.completeFinished); err != nil {
		return err
	}
	s.cron.Start()
	logger.InfoLogger.Println("job scheduler started")
	return nil
}

func (s *Scheduler) Stop() {
	s.cron.Stop()
}

func (s *Scheduler) completeFinished() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	n, err := s.bookings.CompleteFinished(ctx, time.Now())
	if err != nil {
		logger.ErrorLogger.Errorf("auto-complete sweep failed: %v", err)
		return
	}
	if n > 0 {
		logger.InfoLogger.Printf("auto-completed %d finished bookings", n)
	}
}
