package service

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/spec-kit/roster-service/internal/config"
	"github.com/spec-kit/roster-service/internal/events"
)

// NotificationService fans roster events out to the log and to a Redis
// pub/sub channel for downstream consumers.
type NotificationService struct {
	dispatcher events.Dispatcher
	redis      *redis.Client
	logger     *zap.Logger
	cfg        config.NotificationConfig
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, redisClient *redis.Client, logger *zap.Logger, cfg config.NotificationConfig) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		redis:      redisClient,
		logger:     logger,
		cfg:        cfg,
	}
}

// RegisterHandlers subscribes to the roster event stream.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventUserRegistered, n.handle)
	n.dispatcher.Subscribe(events.EventUserSignedIn, n.handle)
	n.dispatcher.Subscribe(events.EventPlayerAssigned, n.handle)
	n.dispatcher.Subscribe(events.EventPlayerTransferred, n.handle)
	n.dispatcher.Subscribe(events.EventPlayerUnassigned, n.handle)
}

func (n *NotificationService) handle(ctx context.Context, event events.Event) error {
	n.logger.Info("roster event",
		zap.String("event_id", event.ID),
		zap.String("event_type", string(event.Type)),
		zap.Any("payload", event.Payload))

	if n.redis == nil || n.cfg.RedisChannel == "" {
		return nil
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}
	if err := n.redis.Publish(ctx, n.cfg.RedisChannel, body).Err(); err != nil {
		n.logger.Warn("failed to publish roster event", zap.Error(err))
	}
	return nil
}
