package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/wonny/tickerpulse/internal/contracts"
	"github.com/wonny/tickerpulse/pkg/logger"
)

// EmailNotifier renders analysis results into digest emails and
// delivers them.
type EmailNotifier struct {
	renderer Renderer
	sender   Sender
	logger   *logger.Logger
}

// NewEmailNotifier creates a notifier from a renderer and sender pair.
func NewEmailNotifier(renderer Renderer, sender Sender, log *logger.Logger) *EmailNotifier {
	return &EmailNotifier{
		renderer: renderer,
		sender:   sender,
		logger:   log.WithField("module", "notify"),
	}
}

// Notify delivers a digest containing a single analysis result.
func (n *EmailNotifier) Notify(ctx context.Context, result *contracts.AnalysisResult) error {
	return n.SendDigest(ctx, []*contracts.AnalysisResult{result})
}

// SendDigest renders one email covering all results of a run and sends it.
func (n *EmailNotifier) SendDigest(ctx context.Context, results []*contracts.AnalysisResult) error {
	if len(results) == 0 {
		n.logger.Debug("No analysis results, skipping digest")
		return nil
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	msg, err := n.renderer.Render(DigestData{
		Results:     results,
		GeneratedAt: time.Now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("render digest: %w", err)
	}

	if err := n.sender.Send(msg); err != nil {
		return fmt.Errorf("send digest: %w", err)
	}

	return nil
}
