package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	flushTimeout = 5 * time.Second
	watchBuffer  = 64
)

// Bus publishes and watches job state changes over one NATS connection.
type Bus struct {
	nc *nats.Conn
}

// Dial connects to the NATS server at url. The connection reconnects
// forever; opts are applied after those defaults.
func Dial(url string, opts ...nats.Option) (*Bus, error) {
	all := append([]nats.Option{
		nats.Name("mcjob"),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	}, opts...)
	nc, err := nats.Connect(url, all...)
	if err != nil {
		return nil, fmt.Errorf("connecting to NATS at %s: %w", url, err)
	}
	return &Bus{nc: nc}, nil
}

// Publish sends c on c.Topic() and waits for the server to take it, so a
// short-lived CLI never exits with the change still buffered.
func (b *Bus) Publish(ctx context.Context, c JobStateChange) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encoding job state change: %w", err)
	}
	topic := c.Topic()
	if err := b.nc.Publish(topic, data); err != nil {
		return fmt.Errorf("publishing to %s: %w", topic, err)
	}
	if _, ok := ctx.Deadline(); ok {
		return b.nc.FlushWithContext(ctx)
	}
	return b.nc.FlushTimeout(flushTimeout)
}

// Watch subscribes to topic. The subscription is registered with the server
// before Watch returns. Payloads arriving faster than the caller reads are
// dropped by the client library.
func (b *Bus) Watch(ctx context.Context, topic string) (<-chan Delivery, error) {
	msgs := make(chan *nats.Msg, watchBuffer)
	sub, err := b.nc.ChanSubscribe(topic, msgs)
	if err != nil {
		return nil, fmt.Errorf("subscribing to %s: %w", topic, err)
	}
	if err := b.nc.FlushTimeout(flushTimeout); err != nil {
		_ = sub.Unsubscribe()
		return nil, fmt.Errorf("registering subscription to %s: %w", topic, err)
	}

	out := make(chan Delivery)
	go func() {
		defer close(out)
		defer sub.Unsubscribe() //nolint:errcheck
		for {
			var m *nats.Msg
			select {
			case <-ctx.Done():
				return
			case m = <-msgs:
			}
			c, err := ParseJobStateChange(m.Data)
			select {
			case out <- Delivery{Subject: m.Subject, Change: c, Err: err}:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}

// Connected reports whether the connection is currently up.
func (b *Bus) Connected() bool {
	return b.nc.IsConnected()
}

func (b *Bus) Close() error {
	b.nc.Close()
	return nil
}
