package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"dashboard-theme/internal/auth"
	"dashboard-theme/internal/ui"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func writeKeysFile(t *testing.T, path string, keys ...string) {
	t.Helper()
	cfg := auth.KeysConfig{}
	for _, k := range keys {
		h, err := bcrypt.GenerateFromPassword([]byte(k), bcrypt.MinCost)
		require.NoError(t, err)
		cfg.Keys = append(cfg.Keys, auth.Key{Name: k, KeyHash: string(h), Enabled: true})
	}
	data, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, data, 0o600))
}

func TestReloadKeysOnHangup(t *testing.T) {
	var logs syncBuffer
	ui.SetOutput(&logs)
	t.Cleanup(func() { ui.SetOutput(nil) })

	path := filepath.Join(t.TempDir(), "keys.json")
	writeKeysFile(t, path, "first")
	keys, err := auth.NewKeyStore(path)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	hup := make(chan os.Signal)
	done := make(chan struct{})
	go func() {
		reloadKeysOnHangup(ctx, hup, keys, path)
		close(done)
	}()

	writeKeysFile(t, path, "second", "third")
	hup <- syscall.SIGHUP
	require.Eventually(t, func() bool { return keys.Count() == 2 }, time.Second, 5*time.Millisecond)

	_, ok := keys.Validate("first")
	assert.False(t, ok)
	_, ok = keys.Validate("second")
	assert.True(t, ok)

	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))
	hup <- syscall.SIGHUP
	require.Eventually(t, func() bool {
		return strings.Contains(logs.String(), "keeping previous keys")
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, 2, keys.Count())

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("reload loop did not stop after cancel")
	}
	assert.Contains(t, logs.String(), "Reloaded 2 API keys")
}
