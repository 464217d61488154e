// Package notifications delivers push messages (PRs, milestones, the
// daily training reminder) and stores the reminder preference.
package notifications

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/bfit-app/bfit-backend/internal/telemetry/metrics"
	"github.com/bfit-app/bfit-backend/internal/telemetry/tracing"
)

// Notifier publishes to an ntfy-style push topic. An empty push URL
// disables delivery, every Notify then becomes a no-op.
type Notifier struct {
	pushURL        string // e.g. https://ntfy.sh/bfit-<user-topic>
	httpClient     *http.Client
	metricsManager *metrics.Manager
}

func NewNotifier(pushURL string, httpClient *http.Client, metricsManager *metrics.Manager) *Notifier {
	return &Notifier{
		pushURL:        pushURL,
		httpClient:     httpClient,
		metricsManager: metricsManager,
	}
}

func (n *Notifier) Notify(ctx context.Context, title, body string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "notifier.notify")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if n.pushURL == "" {
		log.Tracef("notifier disabled, dropping notification [%s]", title)
		return nil
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.pushURL, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("create push request: %w", err)
	}
	req.Header.Set("Title", title)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("push http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push response status %d: %s", resp.StatusCode, string(respBytes))
	}

	n.metricsManager.CounterNotificationsSent.Inc()
	log.Debugf("notification sent: [%s]", title)
	return nil
}
