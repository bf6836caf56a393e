// Package amqp publishes assembled snapshots to a RabbitMQ exchange so
// off-board consumers can subscribe to live robot state.
package amqp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/maskor/spotlink/internal/domain"
	"github.com/maskor/spotlink/internal/ports"
)

// Config holds the connection and routing details for the snapshot exchange.
type Config struct {
	URL          string        `yaml:"url"`
	Exchange     string        `yaml:"exchange"`
	ExchangeType string        `yaml:"exchange_type"`
	RoutingKey   string        `yaml:"routing_key"`
	Durable      bool          `yaml:"durable"`
	Timeout      time.Duration `yaml:"timeout"`
}

func (c *Config) ApplyDefaults() {
	if c.Exchange == "" {
		c.Exchange = "robot-state"
	}
	if c.ExchangeType == "" {
		c.ExchangeType = "fanout"
	}
	if c.Timeout <= 0 {
		c.Timeout = 5 * time.Second
	}
}

// Publisher is a ports.Sink that fans snapshots out over AMQP. Connect must
// be called before the first WriteBatch.
type Publisher struct {
	cfg     Config
	mu      sync.Mutex
	conn    *amqp.Connection
	channel *amqp.Channel
	closed  bool
}

func NewPublisher(cfg Config) (*Publisher, error) {
	cfg.ApplyDefaults()
	if cfg.URL == "" {
		return nil, errors.New("amqp url is required")
	}
	return &Publisher{cfg: cfg}, nil
}

// Connect dials the broker and declares the snapshot exchange.
func (p *Publisher) Connect() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return errors.New("amqp publisher is closed")
	}
	if p.conn != nil {
		return nil
	}

	conn, err := amqp.Dial(p.cfg.URL)
	if err != nil {
		return fmt.Errorf("amqp dial: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return fmt.Errorf("amqp channel: %w", err)
	}

	if err := ch.ExchangeDeclare(
		p.cfg.Exchange,
		p.cfg.ExchangeType,
		p.cfg.Durable,
		false, // auto-delete
		false, // internal
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return fmt.Errorf("declare exchange %q: %w", p.cfg.Exchange, err)
	}

	p.conn = conn
	p.channel = ch
	return nil
}

func (p *Publisher) Name() string { return "amqp" }

func (p *Publisher) WriteBatch(states []*domain.RobotState) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.channel == nil {
		return errors.New("amqp publisher not connected")
	}

	ctx, cancel := context.WithTimeout(context.Background(), p.cfg.Timeout)
	defer cancel()

	for _, s := range states {
		body, err := json.Marshal(s)
		if err != nil {
			return fmt.Errorf("marshal snapshot: %w", err)
		}
		if err := p.channel.PublishWithContext(
			ctx,
			p.cfg.Exchange,
			p.cfg.RoutingKey,
			false, // mandatory
			false, // immediate
			amqp.Publishing{
				ContentType: "application/json",
				Timestamp:   s.AcquisitionTime(),
				Body:        body,
			},
		); err != nil {
			return fmt.Errorf("publish snapshot: %w", err)
		}
	}
	return nil
}

func (p *Publisher) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.closed {
		return nil
	}
	p.closed = true

	var errs []error
	if p.channel != nil {
		if err := p.channel.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if p.conn != nil {
		if err := p.conn.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

var _ ports.Sink = (*Publisher)(nil)
