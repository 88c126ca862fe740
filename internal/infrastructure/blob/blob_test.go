package blob

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilesystemSink_Put(t *testing.T) {
	root := filepath.Join(t.TempDir(), "backups")
	sink, err := NewFilesystemSink(root)
	require.NoError(t, err)
	assert.Equal(t, DriverFilesystem, sink.Driver())

	loc, err := sink.Put(context.Background(), "2025/snapshot.json", []byte(`{"ok":true}`), "application/json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(root, "2025", "snapshot.json"), loc)

	data, err := os.ReadFile(loc)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(data))
}

func TestFilesystemSink_RejectsEscapingKeys(t *testing.T) {
	sink, err := NewFilesystemSink(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "  ", "../x.json", "/etc/passwd"} {
		_, err := sink.Put(context.Background(), key, []byte("x"), "")
		assert.Error(t, err, key)
	}
}

func TestS3Sink_Put(t *testing.T) {
	var (
		mu     sync.Mutex
		method string
		path   string
		body   []byte
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		defer mu.Unlock()
		method = r.Method
		path = r.URL.Path
		body, _ = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	sink, err := NewS3Sink(context.Background(), S3Config{
		Bucket:          "clinic-backups",
		Prefix:          "medicita/",
		Endpoint:        srv.URL,
		AccessKeyID:     "AKIA",
		SecretAccessKey: "SECRET",
		PathStyle:       true,
	})
	require.NoError(t, err)
	assert.Equal(t, DriverS3, sink.Driver())

	loc, err := sink.Put(context.Background(), "snapshot.json", []byte(`{"ok":true}`), "application/json")
	require.NoError(t, err)
	assert.Equal(t, "s3://clinic-backups/medicita/snapshot.json", loc)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, http.MethodPut, method)
	assert.Equal(t, "/clinic-backups/medicita/snapshot.json", path)
	assert.Contains(t, string(body), `{"ok":true}`)
}

func TestNewS3Sink_RequiresBucket(t *testing.T) {
	_, err := NewS3Sink(context.Background(), S3Config{})
	assert.Error(t, err)
}
