package model

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"

	"github.com/benbeisheim/hotseat-chess/internal/ws"
	"github.com/google/go-cmp/cmp"
)

type recordingSubscriber struct {
	mu       sync.Mutex
	messages []ws.Message
	err      error
}

func (r *recordingSubscriber) WriteJSON(v interface{}) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.messages = append(r.messages, v.(ws.Message))
	return nil
}

func (r *recordingSubscriber) states(t *testing.T) []GameState {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	states := make([]GameState, 0, len(r.messages))
	for _, msg := range r.messages {
		if msg.Type != ws.MessageTypeGameState {
			t.Fatalf("unexpected message type: %s", msg.Type)
		}
		var s GameState
		if err := json.Unmarshal(msg.Payload, &s); err != nil {
			t.Fatalf("decode snapshot: %v", err)
		}
		states = append(states, s)
	}
	return states
}

func TestGamePublishesOneSnapshotPerOperation(t *testing.T) {
	t.Parallel()
	game := NewGame("g1")
	sub := &recordingSubscriber{}
	if err := game.RegisterConnection("viewer", sub); err != nil {
		t.Fatalf("register: %v", err)
	}

	game.Start()
	game.SelectSquare(pos(6, 4))
	game.SelectSquare(pos(4, 4))
	game.SelectSquare(pos(1, 4))
	game.Reset()

	states := sub.states(t)
	if len(states) != 6 {
		t.Fatalf("unexpected snapshot count: got=%d want=6", len(states))
	}
	if states[0].GameStarted {
		t.Error("initial snapshot should not be started")
	}
	if !states[1].GameStarted {
		t.Error("start snapshot should be started")
	}
	if states[2].SelectedPosition == nil || *states[2].SelectedPosition != pos(6, 4) {
		t.Errorf("unexpected selection snapshot: %+v", states[2].SelectedPosition)
	}
	if states[3].CurrentPlayer != Black || len(states[3].Moves) != 1 {
		t.Errorf("unexpected move snapshot: player=%s moves=%d", states[3].CurrentPlayer, len(states[3].Moves))
	}
	if states[4].SelectedPosition == nil || *states[4].SelectedPosition != pos(1, 4) {
		t.Errorf("unexpected black selection snapshot: %+v", states[4].SelectedPosition)
	}
	if diff := cmp.Diff(NewGameState(), states[5]); diff != "" {
		t.Errorf("reset snapshot mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(NewGameState(), game.GetState()); diff != "" {
		t.Errorf("current state mismatch (-want +got):\n%s", diff)
	}
}

func TestGameDropsFailingSubscriber(t *testing.T) {
	t.Parallel()
	game := NewGame("g2")
	healthy := &recordingSubscriber{}
	broken := &recordingSubscriber{}
	if err := game.RegisterConnection("healthy", healthy); err != nil {
		t.Fatalf("register healthy: %v", err)
	}
	if err := game.RegisterConnection("broken", broken); err != nil {
		t.Fatalf("register broken: %v", err)
	}

	broken.mu.Lock()
	broken.err = errors.New("connection reset")
	broken.mu.Unlock()

	game.SelectSquare(pos(6, 4))
	if n := game.ConnectionCount(); n != 1 {
		t.Errorf("unexpected connection count: got=%d want=1", n)
	}
	if n := len(healthy.states(t)); n != 2 {
		t.Errorf("healthy subscriber missed snapshots: got=%d want=2", n)
	}
}

func TestGameRejectsDuplicateSubscriber(t *testing.T) {
	t.Parallel()
	game := NewGame("g3")
	if err := game.RegisterConnection("viewer", &recordingSubscriber{}); err != nil {
		t.Fatalf("register: %v", err)
	}
	err := game.RegisterConnection("viewer", &recordingSubscriber{})
	if !errors.Is(err, ErrSubscriberExists) {
		t.Errorf("unexpected error: got=%v want=%v", err, ErrSubscriberExists)
	}

	game.UnregisterConnection("viewer")
	if n := game.ConnectionCount(); n != 0 {
		t.Errorf("unexpected connection count after unregister: %d", n)
	}
	if err := game.RegisterConnection("viewer", &recordingSubscriber{}); err != nil {
		t.Errorf("re-register after unregister: %v", err)
	}
}

func TestGameStateReturnedMatchesPublished(t *testing.T) {
	t.Parallel()
	game := NewGame("g4")
	got := game.SelectSquare(pos(6, 4))
	if diff := cmp.Diff(got, game.GetState()); diff != "" {
		t.Errorf("returned and stored snapshots differ (-want +got):\n%s", diff)
	}
}
