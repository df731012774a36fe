// Package hub keeps track of live subscriptions and fans published events out to them.
//
// A topic maps to a set of sinks. Publishing serializes the event once, takes a snapshot
// of the subscribers under the lock and delivers outside of it, so a slow subscriber
// never blocks Join or Leave and never delays the others for longer than its own
// delivery timeout.
package hub

import (
	"encoding/json"
	"sync"

	"github.com/chatwire/chat/server/logs"
)

// Sink receives serialized events on behalf of a connected client.
type Sink interface {
	// Deliver queues the payload for sending. It must return within a bounded time,
	// false means the payload was dropped.
	Deliver(payload []byte) bool
}

// Relay forwards locally published events to other nodes of the cluster.
type Relay interface {
	Forward(topic string, payload []byte) error
	Close() error
}

// Observer is notified about publishing results, i.e. to collect metrics.
type Observer interface {
	Published(topic string, delivered, failed int)
	TopicsChanged(live int)
}

// Options configure a Registry.
type Options struct {
	// Relay to other nodes, could be nil.
	Relay Relay
	// Observer of publishing results, could be nil.
	Observer Observer
}

// Registry is a topic to subscribers map.
type Registry struct {
	mu     sync.RWMutex
	topics map[string]map[Sink]struct{}

	relay    Relay
	observer Observer
}

// NewRegistry creates an empty registry.
func NewRegistry(opts Options) *Registry {
	return &Registry{
		topics:   make(map[string]map[Sink]struct{}),
		relay:    opts.Relay,
		observer: opts.Observer,
	}
}

// SetRelay attaches a relay after the registry is created. The relay needs the registry
// for inbound traffic, so it cannot always be passed to NewRegistry.
func (r *Registry) SetRelay(relay Relay) {
	r.mu.Lock()
	r.relay = relay
	r.mu.Unlock()
}

// Join adds the sink to the topic. Joining twice has no effect.
func (r *Registry) Join(topic string, sink Sink) {
	r.mu.Lock()
	subs, ok := r.topics[topic]
	if !ok {
		subs = make(map[Sink]struct{})
		r.topics[topic] = subs
	}
	subs[sink] = struct{}{}
	live := len(r.topics)
	r.mu.Unlock()

	if !ok && r.observer != nil {
		r.observer.TopicsChanged(live)
	}
}

// Leave removes the sink from the topic. Topics without subscribers are dropped.
func (r *Registry) Leave(topic string, sink Sink) {
	r.mu.Lock()
	subs, ok := r.topics[topic]
	if !ok {
		r.mu.Unlock()
		return
	}
	delete(subs, sink)
	dropped := len(subs) == 0
	if dropped {
		delete(r.topics, topic)
	}
	live := len(r.topics)
	r.mu.Unlock()

	if dropped && r.observer != nil {
		r.observer.TopicsChanged(live)
	}
}

// Publish sends the event to every local subscriber of the topic and forwards it to the
// relay if one is configured. Returns the number of local sinks which accepted the event.
func (r *Registry) Publish(topic string, ev *Event) int {
	payload, err := json.Marshal(ev)
	if err != nil {
		logs.Err.Println("hub: failed to serialize event for", topic, err)
		return 0
	}

	r.mu.RLock()
	relay := r.relay
	r.mu.RUnlock()

	if relay != nil {
		if err := relay.Forward(topic, payload); err != nil {
			logs.Warn.Println("hub: failed to relay event to", topic, err)
		}
	}

	return r.DeliverLocal(topic, payload)
}

// DeliverLocal sends a serialized event to local subscribers only. Used for events
// which arrived from other nodes.
func (r *Registry) DeliverLocal(topic string, payload []byte) int {
	sinks := r.snapshot(topic)
	if len(sinks) == 0 {
		return 0
	}

	var delivered, failed int
	for _, sink := range sinks {
		if sink.Deliver(payload) {
			delivered++
		} else {
			failed++
		}
	}

	if failed > 0 {
		logs.Warn.Printf("hub: %d of %d deliveries to '%s' failed", failed, len(sinks), topic)
	}
	if r.observer != nil {
		r.observer.Published(topic, delivered, failed)
	}
	return delivered
}

func (r *Registry) snapshot(topic string) []Sink {
	r.mu.RLock()
	defer r.mu.RUnlock()

	subs := r.topics[topic]
	if len(subs) == 0 {
		return nil
	}
	sinks := make([]Sink, 0, len(subs))
	for sink := range subs {
		sinks = append(sinks, sink)
	}
	return sinks
}

// Subscribers returns the number of local subscribers of the topic.
func (r *Registry) Subscribers(topic string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics[topic])
}

// Topics returns the number of topics with at least one subscriber.
func (r *Registry) Topics() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.topics)
}

// Shutdown stops the relay and drops all subscriptions. Sinks are not closed, their
// owners do it.
func (r *Registry) Shutdown() {
	r.mu.Lock()
	relay := r.relay
	r.relay = nil
	r.topics = make(map[string]map[Sink]struct{})
	r.mu.Unlock()

	if relay != nil {
		if err := relay.Close(); err != nil {
			logs.Warn.Println("hub: failed to close relay", err)
		}
	}
	if r.observer != nil {
		r.observer.TopicsChanged(0)
	}
}
