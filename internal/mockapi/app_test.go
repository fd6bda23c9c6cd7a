package mockapi

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/logging"
	"github.com/dmitrijs2005/vidmarkt/internal/mockapi/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())
	return addr
}

func TestApp_RunServesUntilCancelled(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.ListenAddr = freeAddr(t)
	cfg.ShutdownTimeout = time.Second

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	app, err := NewApp(ctx, cfg, logging.Discard())
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	assert.Eventually(t, func() bool {
		resp, err := http.Get("http://" + cfg.ListenAddr + "/health")
		if err != nil {
			return false
		}
		resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
}

func TestNewApp_GeneratesSecret(t *testing.T) {
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.SecretKey = ""

	_, err := NewApp(context.Background(), cfg, logging.Discard())
	require.NoError(t, err)
	assert.Len(t, cfg.SecretKey, 64)
}
