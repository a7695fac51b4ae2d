package xnatconf

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// watchResult 收集回调结果，避免测试 goroutine 与回调 goroutine 竞态。
type watchResult struct {
	mu       sync.Mutex
	settings Settings
	err      error
	notified chan struct{}
	once     sync.Once
}

func newWatchResult() *watchResult {
	return &watchResult{notified: make(chan struct{})}
}

func (r *watchResult) callback(settings Settings, err error) {
	r.mu.Lock()
	r.settings = settings
	r.err = err
	r.mu.Unlock()
	r.once.Do(func() { close(r.notified) })
}

func (r *watchResult) get() (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.settings, r.err
}

func TestWatchReload(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: 10.1.0.0/27\n"), 0o600))

	result := newWatchResult()
	w, err := Watch(path, result.callback, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, w.Stop())
	}()

	w.StartAsync()

	// 等监视循环就绪后修改配置文件。
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("source: 172.16.0.0/28\n"), 0o600))

	select {
	case <-result.notified:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}

	settings, cbErr := result.get()
	require.NoError(t, cbErr)
	assert.Equal(t, "172.16.0.0/28", settings.Source)
}

// 重载失败时回调收到错误，settings 为零值。
func TestWatchReloadError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("source: 10.1.0.0/27\n"), 0o600))

	result := newWatchResult()
	w, err := Watch(path, result.callback, WithDebounce(10*time.Millisecond))
	require.NoError(t, err)
	defer func() {
		assert.NoError(t, w.Stop())
	}()

	w.StartAsync()

	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte("source: not-an-ip/26\n"), 0o600))

	select {
	case <-result.notified:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for reload callback")
	}

	_, cbErr := result.get()
	assert.ErrorIs(t, cbErr, ErrInvalidSettings)
}

func TestWatchArguments(t *testing.T) {
	_, err := Watch("", func(Settings, error) {})
	assert.ErrorIs(t, err, ErrEmptyPath)

	_, err = Watch(filepath.Join(t.TempDir(), "config.toml"), func(Settings, error) {})
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	// 目录不存在时 fsnotify.Add 失败。
	_, err = Watch(filepath.Join(t.TempDir(), "missing", "config.yaml"), func(Settings, error) {})
	assert.Error(t, err)
}

func TestWatchStopIdempotent(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(""), 0o600))

	w, err := Watch(path, nil)
	require.NoError(t, err)

	w.StartAsync()
	assert.NoError(t, w.Stop())
	// 重复 Stop 是空操作。
	assert.NoError(t, w.Stop())
}
