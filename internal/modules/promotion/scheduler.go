package promotion

import (
	"context"
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// StartScheduler runs the expiry reconciliation once a day shortly after
// midnight. A non-zero every overrides the cadence for local development.
// The returned scheduler is already started; Shutdown it on exit.
func StartScheduler(svc *Service, every time.Duration) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	var def gocron.JobDefinition = gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(0, 5, 0)))
	if every > 0 {
		def = gocron.DurationJob(every)
	}

	_, err = s.NewJob(def, gocron.NewTask(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		if err := svc.Reconcile(ctx, time.Now()); err != nil {
			log.Printf("promotion reconcile: %v", err)
		}
	}))
	if err != nil {
		return nil, err
	}

	s.Start()
	log.Println("promotion expiry scheduler started")
	return s, nil
}
