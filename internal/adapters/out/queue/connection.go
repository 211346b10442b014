package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Connection owns the AMQP connection and the channel used for publishing.
type Connection struct {
	conn    *amqp.Connection
	channel *amqp.Channel
}

// Connect dials RabbitMQ, opens a channel, and declares the ride events
// topic exchange. The caller is responsible for calling Close on shutdown.
func Connect(url string) (*Connection, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("dial rabbitmq: %w", err)
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("open channel: %w", err)
	}

	if err := channel.ExchangeDeclare(
		ExchangeName,
		"topic",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		channel.Close()
		conn.Close()
		return nil, fmt.Errorf("declare exchange: %w", err)
	}

	return &Connection{conn: conn, channel: channel}, nil
}

// Channel returns the publishing channel.
func (c *Connection) Channel() *amqp.Channel {
	return c.channel
}

// Close shuts down the channel and connection.
func (c *Connection) Close() error {
	if err := c.channel.Close(); err != nil {
		c.conn.Close()
		return err
	}
	return c.conn.Close()
}
