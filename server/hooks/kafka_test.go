package hooks

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/chatwire/chat/server/store/mock_store"
	"github.com/chatwire/chat/server/store/types"
	"github.com/golang/mock/gomock"
	"github.com/segmentio/kafka-go"
)

func TestApply(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mock_store.NewMockHooks(ctrl)

	hikers := &types.Group{Id: 42, Name: "Hikers", Image: "/media/h.png", Admin: 3}
	alice := &types.User{Id: 3, Username: "alice", FirstName: "Alice"}
	bob := &types.User{Id: 7, Username: "bob", Email: "bob@example.com"}

	gomock.InOrder(
		h.EXPECT().GroupMembersAdded(hikers, []types.Uid{7, 9}),
		h.EXPECT().GroupMembersRemoved(hikers, []types.User{*bob}),
		h.EXPECT().GroupPreDelete(hikers, []types.Uid{3, 7}),
		h.EXPECT().GroupRequestCreated(&types.GroupRequest{
			Id: 301, Group: 42, User: 7, GroupObj: hikers, Requester: bob,
		}),
		h.EXPECT().FriendRequestSaved(&types.FriendRequest{
			Id: 100, From: 3, To: 7, FromUser: alice, ToUser: bob,
		}, true),
		h.EXPECT().FriendRequestPreDelete(&types.FriendRequest{
			Id: 100, From: 3, To: 7, Accepted: true, FromUser: alice, ToUser: bob,
		}),
	)

	group := `{"id":42,"name":"Hikers","image":"/media/h.png","admin":3}`
	aliceJSON := `{"id":3,"username":"alice","first_name":"Alice"}`
	bobJSON := `{"id":7,"username":"bob","email":"bob@example.com"}`
	for _, rec := range []string{
		`{"kind":"group_members_added","group":` + group + `,"members":[7,9]}`,
		`{"kind":"group_members_removed","group":` + group + `,"users":[` + bobJSON + `]}`,
		`{"kind":"group_pre_delete","group":` + group + `,"members":[3,7]}`,
		`{"kind":"group_request_created","group_request":{"id":301,"group":` + group + `,"requested_user":` + bobJSON + `}}`,
		`{"kind":"friend_request_saved","created":true,"friend_request":{"id":100,"from_user":` + aliceJSON + `,"to_user":` + bobJSON + `}}`,
		`{"kind":"friend_request_pre_delete","friend_request":{"id":100,"accepted":true,"from_user":` + aliceJSON + `,"to_user":` + bobJSON + `}}`,
	} {
		if err := Apply(h, []byte(rec)); err != nil {
			t.Errorf("Apply(%s): %v", rec, err)
		}
	}
}

func TestApplyInvalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	// No calls expected.
	h := mock_store.NewMockHooks(ctrl)

	for _, tc := range []struct {
		rec string
		err error
	}{
		{`{"kind":"group_deleted","group":{"id":1}}`, errUnknownKind},
		{`{"kind":"group_pre_delete"}`, errIncomplete},
		{`{"kind":"group_members_added","members":[1]}`, errIncomplete},
		{`{"kind":"group_request_created","group_request":{"id":1}}`, errIncomplete},
		{`{"kind":"friend_request_saved","friend_request":{"id":1,"from_user":{"id":3}}}`, errIncomplete},
	} {
		if err := Apply(h, []byte(tc.rec)); !errors.Is(err, tc.err) {
			t.Errorf("Apply(%s): expected %v, got %v", tc.rec, tc.err, err)
		}
	}
	if err := Apply(h, []byte(`{"kind":`)); err == nil {
		t.Error("Broken JSON must be rejected")
	}
}

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []int64
	closed    bool
	cancel    context.CancelFunc
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		// Drained, stop the consumer.
		r.cancel()
		return kafka.Message{}, ctx.Err()
	}
	msg := r.msgs[0]
	r.msgs = r.msgs[1:]
	return msg, nil
}

func (r *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, m := range msgs {
		r.committed = append(r.committed, m.Offset)
	}
	return nil
}

func (r *fakeReader) Close() error {
	r.closed = true
	return nil
}

func TestConsumerRun(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	h := mock_store.NewMockHooks(ctrl)
	h.EXPECT().GroupPreDelete(&types.Group{Id: 42, Name: "Hikers", Admin: 3}, []types.Uid{3})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	r := &fakeReader{
		msgs: []kafka.Message{
			{Offset: 1, Value: []byte(`not json`)},
			{Offset: 2, Value: []byte(`{"kind":"group_pre_delete","group":{"id":42,"name":"Hikers","admin":3},"members":[3]}`)},
		},
		cancel: cancel,
	}
	c := &Consumer{reader: r, hooks: h}

	if err := c.Run(ctx); err != nil {
		t.Fatal(err)
	}
	if len(r.committed) != 2 {
		t.Errorf("Both records must be committed, got %v", r.committed)
	}
	if !r.closed {
		t.Error("Reader must be closed")
	}
}

func TestNewConsumerConfig(t *testing.T) {
	if _, err := NewConsumer(&Config{Topic: "mutations"}, nil); err == nil {
		t.Error("Missing brokers must be rejected")
	}
	if _, err := NewConsumer(&Config{Brokers: []string{"localhost:9092"}}, nil); err == nil {
		t.Error("Missing topic must be rejected")
	}
	c, err := NewConsumer(&Config{Brokers: []string{"localhost:9092"}, Topic: "mutations"}, nil)
	if err != nil {
		t.Fatal(err)
	}
	c.reader.Close()
}
