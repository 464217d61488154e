package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/telemetry/metrics"
)

func PanicRecovery(metricsManager *metrics.Manager) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				log.Errorf("http: panic serving %s: %v\n%s", req.URL.Path, r, debug.Stack())
				sentry.CurrentHub().Recover(r)
				if metricsManager != nil {
					metricsManager.CounterHandleRequestPanic.Inc()
				}
			}()

			next.ServeHTTP(w, req)
		})
	}
}
