package worker

import (
	"context"
	"time"
)

type ContextJob func(context.Context) error

// PeriodicalJob runs job every interval until ctx is done. The first run happens after one interval.
func PeriodicalJob(job func(context.Context), every time.Duration) ContextJob {
	return func(ctx context.Context) error {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				job(ctx)
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	}
}
