package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServer(t *testing.T) {
	t.Run("nil library service returns error", func(t *testing.T) {
		ports := &Ports{Chat: &mockChatService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingLibraryService)
	})

	t.Run("nil chat service returns error", func(t *testing.T) {
		ports := &Ports{Library: &mockLibraryService{}}
		server, err := NewServer(ports)
		require.Error(t, err)
		assert.Nil(t, server)
		assert.ErrorIs(t, err, ErrMissingChatService)
	})

	t.Run("valid ports creates server", func(t *testing.T) {
		ports := &Ports{
			Library: &mockLibraryService{},
			Chat:    &mockChatService{},
		}
		server, err := NewServer(ports)
		require.NoError(t, err)
		assert.NotNil(t, server)
	})
}

func TestPorts_Validate(t *testing.T) {
	t.Run("empty ports returns error", func(t *testing.T) {
		ports := &Ports{}
		err := ports.Validate()
		assert.ErrorIs(t, err, ErrMissingLibraryService)
	})

	t.Run("all ports is valid", func(t *testing.T) {
		ports := &Ports{
			Library: &mockLibraryService{},
			Chat:    &mockChatService{},
		}
		err := ports.Validate()
		assert.NoError(t, err)
	})
}
