// Package publish is the thin transport wrapper handed merge/projection
// results for delivery. The shaping core never imports it; callers wire
// a Publisher into a Notifier (or the root pipeline) themselves.
package publish

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/dual/daplug-base/ir"
	"github.com/dual/daplug-base/logging"
)

// Publisher delivers an encoded payload to a subject with optional
// message attributes.
type Publisher interface {
	Publish(ctx context.Context, subject string, body []byte, attrs map[string]string) error
}

// Notifier encodes node trees as JSON and hands them to a Publisher,
// logging the outcome.
type Notifier struct {
	pub Publisher
	log *logging.Logger
}

func NewNotifier(pub Publisher, log *logging.Logger) *Notifier {
	if log == nil {
		log = logging.Nop()
	}
	return &Notifier{pub: pub, log: log.Named("publish")}
}

// NotifyNode publishes node as a JSON message on subject.
func (n *Notifier) NotifyNode(ctx context.Context, subject string, node *ir.Node, attrs map[string]string) error {
	body, err := ir.ToJSON(node)
	if err != nil {
		return fmt.Errorf("encoding payload for %q: %w", subject, err)
	}
	if err := n.pub.Publish(ctx, subject, body, attrs); err != nil {
		n.log.Error("publish failed",
			zap.String("subject", subject),
			zap.Error(err),
		)
		return fmt.Errorf("publishing to %q: %w", subject, err)
	}
	n.log.Debug("published",
		zap.String("subject", subject),
		zap.Int("bytes", len(body)),
	)
	return nil
}
