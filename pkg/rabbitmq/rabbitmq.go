package rabbitmq

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	amqp "github.com/streadway/amqp"
)

// DefaultQueue is the queue change events are published to when Config.Queue is empty.
const DefaultQueue = "backoffice_events"

// Event describes a committed change to one entity.
type Event struct {
	ID         string    `json:"id"`
	Resource   string    `json:"resource"`
	Action     string    `json:"action"`
	EntityID   int64     `json:"entityId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// RoutingKey returns "<resource>.<action>", e.g. "orders.created".
func (e Event) RoutingKey() string {
	return e.Resource + "." + e.Action
}

// Client holds the RabbitMQ connection and channel.
type Client struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
	mu      sync.Mutex // serializes publishes on channel
}

// Config holds RabbitMQ connection details.
type Config struct {
	URL   string
	Queue string
}

// NewClient connects to RabbitMQ, opens a channel and declares the event queue.
func NewClient(cfg Config) (*Client, error) {
	queue := cfg.Queue
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := declareQueue(ch, queue); err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	log.Printf("RabbitMQ client connected and %s declared.", queue)

	return &Client{
		conn:    conn,
		channel: ch,
		queue:   queue,
	}, nil
}

func declareQueue(ch *amqp.Channel, name string) (amqp.Queue, error) {
	q, err := ch.QueueDeclare(
		name,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	)
	if err != nil {
		return q, fmt.Errorf("failed to declare %s: %w", name, err)
	}
	return q, nil
}

// Close closes the RabbitMQ connection and channel.
func (c *Client) Close() error {
	var errs []error
	if c.channel != nil {
		if err := c.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if c.conn != nil {
		if err := c.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("multiple errors occurred during RabbitMQ client close: %v", errs)
	}
	return nil
}

// PublishEvent publishes event as a persistent JSON message on the event queue.
func (c *Client) PublishEvent(event Event) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available")
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	err = c.channel.Publish(
		"",      // default exchange
		c.queue, // routing key: the queue name
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			MessageId:    event.ID,
			Type:         event.RoutingKey(),
			Timestamp:    event.OccurredAt,
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish message: %w", err)
	}
	return nil
}

// ConsumeEvents delivers every event on the queue to handler in a background goroutine.
// Messages that are not valid events are dropped; handler errors requeue the message.
func (c *Client) ConsumeEvents(handler func(Event) error) error {
	if c.channel == nil {
		return fmt.Errorf("RabbitMQ channel is not available for consumption")
	}

	queue, err := declareQueue(c.channel, c.queue)
	if err != nil {
		return err
	}

	msgs, err := c.channel.Consume(
		queue.Name,
		"",    // consumer tag
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register consumer: %w", err)
	}

	go func() {
		for msg := range msgs {
			var event Event
			if err := json.Unmarshal(msg.Body, &event); err != nil {
				log.Printf("Dropping malformed event %d: %v", msg.DeliveryTag, err)
				if nackErr := msg.Nack(false, false); nackErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, nackErr)
				}
				continue
			}
			if err := handler(event); err != nil {
				log.Printf("Error processing event %s: %v", event.ID, err)
				if nackErr := msg.Nack(false, true); nackErr != nil {
					log.Printf("Error nacking message %d: %v", msg.DeliveryTag, nackErr)
				}
				continue
			}
			if ackErr := msg.Ack(false); ackErr != nil {
				log.Printf("Error acking message %d: %v", msg.DeliveryTag, ackErr)
			}
		}
	}()

	return nil
}
