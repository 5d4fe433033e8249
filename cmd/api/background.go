package main

import (
	"context"
	"time"
)

// pruneSessionsEvery deletes expired sessions on a ticker until ctx is done.
// Expired sessions are already rejected by Resolve; this only keeps the table small.
func (app *application) pruneSessionsEvery(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()

		// Run once immediately
		app.pruneSessions(ctx)

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				app.pruneSessions(ctx)
			}
		}
	}()
}

func (app *application) pruneSessions(ctx context.Context) {
	n, err := app.issuer.PruneExpired(ctx)
	if err != nil {
		app.logger.Errorf("Error pruning expired sessions: %v", err)
		return
	}
	if n > 0 {
		app.logger.Infof("Pruned %d expired sessions at %s", n, time.Now().Format(time.RFC1123))
	}
}
