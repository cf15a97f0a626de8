package sink

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-sif/ola"
	amqp "github.com/rabbitmq/amqp091-go"
)

// Publisher is the subset of *amqp.Channel used by AMQPSink
type Publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// AMQPConf configures an AMQPSink
type AMQPConf struct {
	Name         string        // The aggregator name written with each record, and used as the default routing key
	Exchange     string        // The exchange to publish to. Defaults to the default exchange.
	ExchangeType string        // If non-empty, DialAMQPSink declares the exchange with this type (e.g. "fanout")
	RoutingKey   string        // Defaults to Name
	Timeout      time.Duration // The maximum time to wait for a publish. Defaults to 5 seconds.
}

// AMQPSink publishes each Estimate as a JSON message to an AMQP exchange
type AMQPSink struct {
	conf      *AMQPConf
	publisher Publisher
	lock      sync.Mutex
	step      int
	onClose   func() error
}

// CreateAMQPSink returns a new AMQPSink which publishes through the given Publisher (usually an *amqp.Channel)
func CreateAMQPSink(publisher Publisher, conf *AMQPConf) *AMQPSink {
	c := &AMQPConf{}
	if conf != nil {
		*c = *conf
	}
	if len(c.RoutingKey) == 0 {
		c.RoutingKey = c.Name
	}
	if c.Timeout == 0 {
		c.Timeout = 5 * time.Second
	}
	return &AMQPSink{conf: c, publisher: publisher}
}

// DialAMQPSink connects to an AMQP broker and returns an AMQPSink which owns the connection
func DialAMQPSink(url string, conf *AMQPConf) (*AMQPSink, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to AMQP broker: %w", err)
	}
	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}
	if conf != nil && len(conf.ExchangeType) > 0 {
		err = ch.ExchangeDeclare(conf.Exchange, conf.ExchangeType, true, false, false, false, nil)
		if err != nil {
			ch.Close()
			conn.Close()
			return nil, fmt.Errorf("failed to declare exchange %s: %w", conf.Exchange, err)
		}
	}
	s := CreateAMQPSink(ch, conf)
	s.onClose = func() error {
		ch.Close()
		return conn.Close()
	}
	return s, nil
}

// Update publishes an Estimate
func (s *AMQPSink) Update(estimate ola.Estimate) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.step++
	body, err := encodeRecord(s.conf.Name, s.step, estimate)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.conf.Timeout)
	defer cancel()
	err = s.publisher.PublishWithContext(ctx, s.conf.Exchange, s.conf.RoutingKey, false, false, amqp.Publishing{
		ContentType: "application/json",
		Timestamp:   time.Now(),
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("failed to publish estimate %d: %w", s.step, err)
	}
	return nil
}

// Close releases the broker connection, if this AMQPSink owns one
func (s *AMQPSink) Close() error {
	if s.onClose == nil {
		return nil
	}
	return s.onClose()
}
