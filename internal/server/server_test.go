package server_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deppfellow/registration-validator/internal/config"
	"github.com/deppfellow/registration-validator/internal/server"
)

func TestNew_RequiresConfigAndLogger(t *testing.T) {
	nop := zerolog.Nop()

	_, err := server.New(nil, &nop, nil)
	assert.Error(t, err)

	_, err = server.New(config.DefaultConfig(), nil, nil)
	assert.Error(t, err)
}

func TestNew_WithoutRedis(t *testing.T) {
	nop := zerolog.Nop()

	s, err := server.New(config.DefaultConfig(), &nop, nil)
	require.NoError(t, err)
	assert.Nil(t, s.Redis)
}

func TestStart_RequiresSetup(t *testing.T) {
	nop := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &nop, nil)
	require.NoError(t, err)

	assert.Error(t, s.Start())
}

func TestShutdown_BeforeStart(t *testing.T) {
	nop := zerolog.Nop()
	s, err := server.New(config.DefaultConfig(), &nop, nil)
	require.NoError(t, err)

	assert.NoError(t, s.Shutdown(context.Background()))

	s.SetupHTTPServer(http.NotFoundHandler())
	assert.NoError(t, s.Shutdown(context.Background()))
}
