package leads

import (
	"context"
	"log/slog"
	"time"

	"go.uber.org/fx"

	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

const (
	pruneInterval = 5 * time.Minute
	pruneIdle     = 15 * time.Minute
)

// Module provides the lead service, its collector client, the optional
// Mailgun notifier with its dispatcher and the per-IP rate limiter.
var Module = fx.Module("leads",
	fx.Provide(
		fx.Annotate(NewClient, fx.As(new(Sender))),
		NewNotifier,
		NewDispatcher,
		NewService,
		NewRateLimiterFromConfig,
	),
	fx.Invoke(RegisterRateLimiterJanitor, RegisterDispatcherLifecycle),
)

// RegisterRateLimiterJanitor periodically forgets idle clients.
func RegisterRateLimiterJanitor(lc fx.Lifecycle, rl *RateLimiter, log *slog.Logger) {
	log = log.With(logger.Scope("leads.ratelimit"))
	stop := make(chan struct{})
	done := make(chan struct{})

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				ticker := time.NewTicker(pruneInterval)
				defer ticker.Stop()
				for {
					select {
					case <-ticker.C:
						if n := rl.Prune(pruneIdle); n > 0 {
							log.Debug("pruned idle rate limiters", slog.Int("removed", n))
						}
					case <-stop:
						return
					}
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			close(stop)
			select {
			case <-done:
			case <-ctx.Done():
			}
			return nil
		},
	})
}
