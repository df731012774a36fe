// Package bridge relays published events between cluster nodes over Redis pub/sub.
//
// Every node publishes envelopes to a single shared channel and delivers envelopes
// published by the other nodes to its local subscribers.
package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/chatwire/chat/server/logs"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	defaultChannel = "chat:events"
	publishTimeout = 2 * time.Second
	pingTimeout    = time.Second
)

// Delays between attempts to restore the subscription.
var (
	retryInitialInterval = 500 * time.Millisecond
	retryMaxInterval     = 30 * time.Second
)

// Config is the relay configuration.
type Config struct {
	// Redis address, host:port.
	Addr     string `json:"addr"`
	Password string `json:"password"`
	DB       int    `json:"db"`
	// Pub/sub channel shared by all nodes.
	Channel string `json:"channel"`
	// Name of this node. Random if not set.
	Node string `json:"node"`
}

// Local delivers relayed payloads to the subscribers of this node.
type Local interface {
	DeliverLocal(topic string, payload []byte) int
}

type envelope struct {
	Node    string          `json:"node"`
	Topic   string          `json:"topic"`
	Payload json.RawMessage `json:"payload"`
}

// Relay implements hub.Relay.
type Relay struct {
	client  *redis.Client
	channel string
	node    string
	local   Local
}

// New creates a relay connected to the configured Redis server.
func New(conf *Config, local Local) (*Relay, error) {
	if conf == nil || conf.Addr == "" {
		return nil, errors.New("bridge: redis address is not configured")
	}
	client := redis.NewClient(&redis.Options{
		Addr:     conf.Addr,
		Password: conf.Password,
		DB:       conf.DB,
	})
	return NewWithClient(client, conf.Channel, conf.Node, local), nil
}

// NewWithClient creates a relay using an existing client.
func NewWithClient(client *redis.Client, channel, node string, local Local) *Relay {
	if channel == "" {
		channel = defaultChannel
	}
	if node == "" {
		node = uuid.NewString()
	}
	return &Relay{client: client, channel: channel, node: node, local: local}
}

// Node returns the name of this node.
func (r *Relay) Node() string {
	return r.node
}

// Ping checks the connection to Redis.
func (r *Relay) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()
	return r.client.Ping(ctx).Err()
}

// Forward publishes the serialized event for other nodes.
func (r *Relay) Forward(topic string, payload []byte) error {
	data, err := json.Marshal(&envelope{Node: r.node, Topic: topic, Payload: payload})
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	return r.client.Publish(ctx, r.channel, data).Err()
}

// Run receives envelopes from other nodes until ctx is cancelled. Failed or lost
// subscriptions are retried with exponential backoff, so Run only returns once ctx is
// done.
func (r *Relay) Run(ctx context.Context) error {
	retry := backoff.NewExponentialBackOff()
	retry.InitialInterval = retryInitialInterval
	retry.MaxInterval = retryMaxInterval
	retry.MaxElapsedTime = 0
	retry.Reset()

	var lastErr error
	for {
		if ctx.Err() != nil {
			return nil
		}
		if lastErr != nil {
			next := retry.NextBackOff()
			logs.Warn.Printf("bridge: subscription to '%s' failed, retry in %s: %v", r.channel, next, lastErr)
			select {
			case <-time.After(next):
			case <-ctx.Done():
				return nil
			}
		}

		lastErr = r.receive(ctx, retry.Reset)
	}
}

// receive subscribes to the shared channel and handles envelopes until ctx is done or
// the subscription is lost. onSubscribed is called once the subscription is confirmed.
func (r *Relay) receive(ctx context.Context, onSubscribed func()) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return err
	}
	logs.Info.Printf("bridge: node '%s' subscribed to '%s'", r.node, r.channel)
	onSubscribed()

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return nil
		case msg, ok := <-ch:
			if !ok {
				return errors.New("bridge: subscription closed")
			}
			r.handle([]byte(msg.Payload))
		}
	}
}

func (r *Relay) handle(data []byte) {
	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		logs.Warn.Println("bridge: malformed envelope", err)
		return
	}
	if env.Node == r.node {
		return
	}
	if env.Topic == "" || len(env.Payload) == 0 {
		logs.Warn.Println("bridge: incomplete envelope from", env.Node)
		return
	}
	r.local.DeliverLocal(env.Topic, env.Payload)
}

// Close disconnects from Redis.
func (r *Relay) Close() error {
	return r.client.Close()
}
