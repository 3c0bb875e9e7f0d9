package queue

import (
	"context"
	"encoding/json"
	"errors"

	"cinema-platform/internal/dto"
	"cinema-platform/internal/usecase"
	"cinema-platform/pkg/apperror"
	"cinema-platform/pkg/utils"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// UserConsumer feeds user registrations published by external systems into
// the user service.
type UserConsumer struct {
	config      utils.AmqpConfig
	userService usecase.UserService
	log         *zap.Logger

	conn    *amqp.Connection
	channel *amqp.Channel
}

func NewUserConsumer(config utils.AmqpConfig, userService usecase.UserService, log *zap.Logger) *UserConsumer {
	return &UserConsumer{
		config:      config,
		userService: userService,
		log:         log.With(zap.String("consumer", "user-registration")),
	}
}

// Start connects to the broker and consumes until the context is cancelled.
func (c *UserConsumer) Start(ctx context.Context) error {
	conn, err := amqp.Dial(c.config.URL)
	if err != nil {
		return err
	}
	c.conn = conn

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return err
	}
	c.channel = channel

	queue, err := channel.QueueDeclare(
		c.config.Queue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	)
	if err != nil {
		c.Close()
		return err
	}

	deliveries, err := channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // autoAck
		false, // exclusive
		false, // noLocal
		false, // noWait
		nil,
	)
	if err != nil {
		c.Close()
		return err
	}

	c.log.Info("Consuming user registrations", zap.String("queue", queue.Name))

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.Close()
				return
			case delivery, ok := <-deliveries:
				if !ok {
					c.log.Warn("Delivery channel closed")
					return
				}
				c.handleDelivery(ctx, delivery)
			}
		}
	}()

	return nil
}

// handleDelivery creates the user carried by the message. Malformed or
// invalid messages are rejected without requeue so they cannot loop forever.
func (c *UserConsumer) handleDelivery(ctx context.Context, delivery amqp.Delivery) {
	var user dto.UserDto
	if err := json.Unmarshal(delivery.Body, &user); err != nil {
		c.log.Warn("Dropping malformed user message", zap.Error(err))
		delivery.Reject(false)
		return
	}

	username, err := c.userService.Create(ctx, user)
	if err != nil {
		var conflict *apperror.ConflictError
		var validationErr *apperror.UserInputValidationError

		if errors.As(err, &conflict) || errors.As(err, &validationErr) {
			c.log.Warn("Dropping rejected user message",
				zap.Error(err),
				zap.String("username", user.Username),
			)
			delivery.Reject(false)
			return
		}

		c.log.Error("Failed to create user from message, requeueing",
			zap.Error(err),
			zap.String("username", user.Username),
		)
		delivery.Nack(false, true)
		return
	}

	c.log.Info("User created from registration message", zap.String("username", username))
	delivery.Ack(false)
}

func (c *UserConsumer) Close() {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		c.conn.Close()
	}
}
