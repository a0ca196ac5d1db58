package consumer

import (
	"context"
	"encoding/json"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/saitej-a/Leave-System/internal/events"
)

// Notifier delivers a leave decision to the affected employee. The default
// implementation just logs; a mail or chat integration plugs in here.
type Notifier interface {
	NotifyLeaveDecided(ctx context.Context, event events.LeaveDecidedEvent) error
}

type LogNotifier struct {
	logger *zap.Logger
}

func NewLogNotifier(logger *zap.Logger) *LogNotifier {
	return &LogNotifier{logger: logger.Named("leave.notifier")}
}

func (n *LogNotifier) NotifyLeaveDecided(_ context.Context, event events.LeaveDecidedEvent) error {
	n.logger.Info("leave decision notification",
		zap.String("leave_request_id", event.LeaveRequestID),
		zap.String("account_email", event.AccountEmail),
		zap.String("event_type", event.EventType),
		zap.Int("days", event.Days),
		zap.String("rejection_reason", event.RejectionReason),
	)
	return nil
}

func ConsumeLeaveDecided(
	ctx context.Context,
	reader *kafkago.Reader,
	notifier Notifier,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.leave_decided")
	log.Info("leave decision consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("leave decision consumer stopped")
				return
			}
			log.Error("fetch leave decision message failed", zap.Error(err))
			continue
		}

		var event events.LeaveDecidedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			// Malformed payloads are committed, not retried forever.
			log.Error("decode leave decision event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		if err := notifier.NotifyLeaveDecided(ctx, event); err != nil {
			log.Error("notify leave decision failed",
				zap.String("leave_request_id", event.LeaveRequestID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit leave decision message failed", zap.Error(err))
			continue
		}

		log.Info("leave decision delivered",
			zap.String("leave_request_id", event.LeaveRequestID),
			zap.String("account_email", event.AccountEmail),
			zap.String("event_type", event.EventType),
		)
	}
}
