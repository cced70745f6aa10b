package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewNotifyListener(t *testing.T) {
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=crewd", manager)

	assert.NotNil(t, listener)
	assert.Equal(t, "host=localhost dbname=crewd", listener.connString)
	assert.NotNil(t, listener.active)
	assert.Equal(t, manager, listener.manager)
}

func TestNotifyListenerBeforeStart(t *testing.T) {
	// No Start() means no connection; the statement path must fail cleanly
	// instead of blocking.
	manager := NewConnectionManager(&mockCatchupQuerier{}, 0)
	listener := NewNotifyListener("host=localhost dbname=crewd", manager)

	t.Run("subscribe fails", func(t *testing.T) {
		err := listener.Subscribe(t.Context(), "team:team-1")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "not established")
	})

	t.Run("unsubscribe of unknown channel is a no-op", func(t *testing.T) {
		err := listener.Unsubscribe(t.Context(), "team:team-1")
		assert.NoError(t, err)
	})
}
