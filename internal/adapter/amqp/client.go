// Package amqp publishes notification messages to RabbitMQ. The backend
// does not store or deliver notifications itself; it hands them to a
// durable queue for the notification collaborator.
package amqp

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// Client is a RabbitMQ publisher bound to one durable direct exchange and
// queue.
type Client struct {
	conn         *amqp091.Connection
	channel      *amqp091.Channel
	exchangeName string
	queueName    string
}

// NewClient dials RabbitMQ and declares the exchange, queue and binding.
func NewClient(url, exchangeName, queueName string) (*Client, error) {
	conn, err := amqp091.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial AMQP: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	client := &Client{
		conn:         conn,
		channel:      channel,
		exchangeName: exchangeName,
		queueName:    queueName,
	}

	if err := client.setup(); err != nil {
		client.Close()
		return nil, fmt.Errorf("setup exchange and queue: %w", err)
	}

	return client, nil
}

func (c *Client) setup() error {
	err := c.channel.ExchangeDeclare(
		c.exchangeName, // name
		"direct",       // type
		true,           // durable
		false,          // auto-deleted
		false,          // internal
		false,          // no-wait
		nil,            // arguments
	)
	if err != nil {
		return fmt.Errorf("declare exchange: %w", err)
	}

	_, err = c.channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("declare queue: %w", err)
	}

	err = c.channel.QueueBind(
		c.queueName,    // queue name
		c.queueName,    // routing key (same as queue name for direct exchange)
		c.exchangeName, // exchange
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("bind queue: %w", err)
	}

	return nil
}

// NotifyUser publishes a message addressed to a single employee.
func (c *Client) NotifyUser(ctx context.Context, employeeID, message string) error {
	return c.publish(ctx, NewUserNotification(employeeID, message))
}

// NotifyRole publishes a message addressed to everyone with a role.
func (c *Client) NotifyRole(ctx context.Context, role, message string) error {
	return c.publish(ctx, NewRoleNotification(role, message))
}

func (c *Client) publish(ctx context.Context, msg *NotificationMessage) error {
	body, err := msg.ToJSON()
	if err != nil {
		return fmt.Errorf("marshal message: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = c.channel.PublishWithContext(
		ctx,
		c.exchangeName, // exchange
		c.queueName,    // routing key
		false,          // mandatory
		false,          // immediate
		amqp091.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp091.Persistent,
			Timestamp:    time.Now(),
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("publish message: %w", err)
	}

	slog.DebugContext(ctx, "published notification",
		"recipient_kind", msg.RecipientKind,
		"recipient", msg.Recipient,
		"exchange", c.exchangeName,
		"queue", c.queueName)

	return nil
}

// Close shuts down the channel and connection.
func (c *Client) Close() error {
	if c.channel != nil {
		c.channel.Close()
	}
	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

// NopNotifier satisfies the services' notifier dependency when AMQP is
// disabled (local development, tests).
type NopNotifier struct{}

func (NopNotifier) NotifyUser(context.Context, string, string) error { return nil }

func (NopNotifier) NotifyRole(context.Context, string, string) error { return nil }
