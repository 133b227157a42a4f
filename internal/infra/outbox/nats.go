package outbox

import (
	"context"
	"log/slog"
	"time"

	"referral-pricing/internal/pkg/errs"

	"github.com/nats-io/nats.go"
)

// FlushWithContext rejects contexts without a deadline.
const flushTimeout = 5 * time.Second

// NATSPublisher publishes outcome payloads on a core NATS connection.
type NATSPublisher struct {
	conn *nats.Conn
}

func ConnectNATS(url string, logger *slog.Logger) (*NATSPublisher, error) {
	conn, err := nats.Connect(url,
		nats.Name("referral-pricing-outbox"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(2*time.Second),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn("nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(c *nats.Conn) {
			logger.Info("nats reconnected", "url", c.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, errs.Wrapf(err, "connect nats %s", url)
	}
	return &NATSPublisher{conn: conn}, nil
}

// Publish returns once the server has acknowledged the flush, so a sent job really left the process.
func (p *NATSPublisher) Publish(ctx context.Context, subject string, payload []byte) error {
	if err := p.conn.Publish(subject, payload); err != nil {
		return errs.Wrapf(err, "publish %s", subject)
	}
	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, flushTimeout)
		defer cancel()
	}
	if err := p.conn.FlushWithContext(ctx); err != nil {
		return errs.Wrapf(err, "flush %s", subject)
	}
	return nil
}

func (p *NATSPublisher) Close() error {
	return p.conn.Drain()
}
