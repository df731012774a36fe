package hub

import (
	"encoding/json"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type testSink struct {
	mu       sync.Mutex
	payloads [][]byte
	reject   bool
	// If not nil, Deliver waits for it to be closed.
	gate chan struct{}
}

func (s *testSink) Deliver(payload []byte) bool {
	if s.gate != nil {
		<-s.gate
	}
	if s.reject {
		return false
	}
	s.mu.Lock()
	s.payloads = append(s.payloads, payload)
	s.mu.Unlock()
	return true
}

func (s *testSink) events(t *testing.T) []Event {
	t.Helper()
	s.mu.Lock()
	defer s.mu.Unlock()
	var evs []Event
	for _, p := range s.payloads {
		var ev Event
		if err := json.Unmarshal(p, &ev); err != nil {
			t.Fatal(err)
		}
		evs = append(evs, ev)
	}
	return evs
}

type testRelay struct {
	mu        sync.Mutex
	forwarded []string
	closed    bool
}

func (r *testRelay) Forward(topic string, payload []byte) error {
	r.mu.Lock()
	r.forwarded = append(r.forwarded, topic)
	r.mu.Unlock()
	return nil
}

func (r *testRelay) Close() error {
	r.closed = true
	return nil
}

type testObserver struct {
	delivered, failed int
	live              int
}

func (o *testObserver) Published(topic string, delivered, failed int) {
	o.delivered += delivered
	o.failed += failed
}

func (o *testObserver) TopicsChanged(live int) {
	o.live = live
}

func TestJoinIdempotent(t *testing.T) {
	r := NewRegistry(Options{})
	s := &testSink{}

	r.Join("direct:3:7", s)
	r.Join("direct:3:7", s)
	if n := r.Subscribers("direct:3:7"); n != 1 {
		t.Errorf("Expected 1 subscriber, got %d", n)
	}

	if n := r.Publish("direct:3:7", &Event{Type: TypeChat, Message: "hello"}); n != 1 {
		t.Errorf("Expected exactly one delivery, got %d", n)
	}
	if len(s.events(t)) != 1 {
		t.Errorf("Sink joined twice must receive the event once, got %d", len(s.events(t)))
	}
}

func TestLeave(t *testing.T) {
	r := NewRegistry(Options{})
	a, b := &testSink{}, &testSink{}

	r.Join("group:42", a)
	r.Join("group:42", b)
	r.Leave("group:42", a)
	// Leaving a topic which was never joined is a no-op.
	r.Leave("group:43", a)

	r.Publish("group:42", &Event{Type: TypeChat, Message: "hi"})
	if len(a.events(t)) != 0 {
		t.Error("Sink which left the topic must not receive events")
	}
	if len(b.events(t)) != 1 {
		t.Error("Remaining sink must receive the event")
	}

	r.Leave("group:42", b)
	if r.Topics() != 0 {
		t.Errorf("Empty topic must be dropped, %d topics left", r.Topics())
	}
}

func TestPublishFanOut(t *testing.T) {
	r := NewRegistry(Options{})
	sinks := []*testSink{{}, {}, {}}
	for _, s := range sinks {
		r.Join("notify:7", s)
	}
	other := &testSink{}
	r.Join("notify:8", other)

	ev := &Event{Type: TypeNotification, Id: 42, Name: "Hikers", AddedToGroup: true}
	if n := r.Publish("notify:7", ev); n != 3 {
		t.Errorf("Expected 3 deliveries, got %d", n)
	}

	for i, s := range sinks {
		got := s.events(t)
		if diff := cmp.Diff([]Event{*ev}, got); diff != "" {
			t.Errorf("Sink %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	if len(other.events(t)) != 0 {
		t.Error("Subscriber of another topic must not receive the event")
	}
}

func TestPublishOrderNoDuplicates(t *testing.T) {
	r := NewRegistry(Options{})
	a, b := &testSink{}, &testSink{}
	r.Join("direct:3:7", a)
	r.Join("direct:3:7", b)
	// Joining again must not lead to a second copy.
	r.Join("direct:3:7", a)

	var want []Event
	for i := int64(1); i <= 20; i++ {
		ev := Event{Type: TypeChat, Id: i, Message: "msg " + strconv.FormatInt(i, 10)}
		want = append(want, ev)
		if n := r.Publish("direct:3:7", &ev); n != 2 {
			t.Fatalf("Event %d: expected 2 deliveries, got %d", i, n)
		}
	}

	for name, s := range map[string]*testSink{"a": a, "b": b} {
		if diff := cmp.Diff(want, s.events(t)); diff != "" {
			t.Errorf("Sink %s: sequence mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestPublishNoSubscribers(t *testing.T) {
	obs := &testObserver{}
	r := NewRegistry(Options{Observer: obs})

	if n := r.Publish("group:1", &Event{Type: TypeChat}); n != 0 {
		t.Errorf("Expected no deliveries, got %d", n)
	}
	if obs.delivered != 0 || obs.failed != 0 {
		t.Error("Publishing to an empty topic must not be reported")
	}
}

func TestPublishFailureIsolated(t *testing.T) {
	obs := &testObserver{}
	r := NewRegistry(Options{Observer: obs})
	good, bad := &testSink{}, &testSink{reject: true}
	r.Join("group:1", good)
	r.Join("group:1", bad)

	if n := r.Publish("group:1", &Event{Type: TypeChat, Message: "x"}); n != 1 {
		t.Errorf("Expected 1 successful delivery, got %d", n)
	}
	if len(good.events(t)) != 1 {
		t.Error("Healthy sink must receive the event")
	}
	if obs.delivered != 1 || obs.failed != 1 {
		t.Errorf("Observer got delivered=%d failed=%d", obs.delivered, obs.failed)
	}
}

func TestSlowSinkDoesNotBlockRegistry(t *testing.T) {
	r := NewRegistry(Options{})
	slow := &testSink{gate: make(chan struct{})}
	r.Join("group:1", slow)

	done := make(chan struct{})
	go func() {
		r.Publish("group:1", &Event{Type: TypeChat})
		close(done)
	}()

	// Publish is stuck in Deliver, the registry must stay usable.
	joined := make(chan struct{})
	go func() {
		r.Join("group:1", &testSink{})
		r.Leave("group:2", slow)
		close(joined)
	}()

	select {
	case <-joined:
	case <-time.After(time.Second):
		t.Fatal("Join blocked by an in-flight delivery")
	}

	close(slow.gate)
	<-done
}

func TestRelay(t *testing.T) {
	relay := &testRelay{}
	r := NewRegistry(Options{Relay: relay})
	s := &testSink{}
	r.Join("group:1", s)

	r.Publish("group:1", &Event{Type: TypeChat, Message: "local"})
	// Payloads which came from the relay are not forwarded back.
	r.DeliverLocal("group:1", []byte(`{"type":"chat_message","message":"remote"}`))

	if diff := cmp.Diff([]string{"group:1"}, relay.forwarded); diff != "" {
		t.Errorf("Forwarded mismatch (-want +got):\n%s", diff)
	}
	got := s.events(t)
	if len(got) != 2 || got[0].Message != "local" || got[1].Message != "remote" {
		t.Errorf("Unexpected events %+v", got)
	}

	r.Shutdown()
	if !relay.closed {
		t.Error("Shutdown must close the relay")
	}
	if r.Topics() != 0 {
		t.Error("Shutdown must drop all topics")
	}
}

func TestEventWireFormat(t *testing.T) {
	payload, err := json.Marshal(&Event{Type: TypeChat, Id: 5, Message: "hello", Username: "alice"})
	if err != nil {
		t.Fatal(err)
	}
	var got map[string]any
	if err = json.Unmarshal(payload, &got); err != nil {
		t.Fatal(err)
	}
	want := map[string]any{
		"type":     "chat_message",
		"id":       float64(5),
		"message":  "hello",
		"username": "alice",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Wire format mismatch (-want +got):\n%s", diff)
	}
}

func TestObserverTopics(t *testing.T) {
	obs := &testObserver{}
	r := NewRegistry(Options{Observer: obs})
	s := &testSink{}

	r.Join("group:1", s)
	r.Join("group:2", s)
	if obs.live != 2 {
		t.Errorf("Expected 2 live topics, got %d", obs.live)
	}
	r.Leave("group:1", s)
	if obs.live != 1 {
		t.Errorf("Expected 1 live topic, got %d", obs.live)
	}
}
