package storage

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	shell "github.com/ipfs/go-ipfs-api"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AlexZinkM/creatorweb3/internal/apperr"
	"github.com/AlexZinkM/creatorweb3/internal/client"
	"github.com/AlexZinkM/creatorweb3/internal/model"
)

// fakeNode implements the node add API and a gateway over the same in-memory store.
type fakeNode struct {
	mu    sync.Mutex
	store map[string][]byte
	types map[string]string
}

func newFakeNode() *fakeNode {
	return &fakeNode{store: map[string][]byte{}, types: map[string]string{}}
}

func (n *fakeNode) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/api/v0/add" {
		reader, err := r.MultipartReader()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		part, err := reader.NextPart()
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		data, _ := io.ReadAll(part)
		sum := sha256.Sum256(data)
		cid := "bafy" + hex.EncodeToString(sum[:8])

		n.mu.Lock()
		n.store[cid] = data
		if json.Valid(data) {
			n.types[cid] = "application/json"
		} else {
			n.types[cid] = "text/plain; charset=utf-8"
		}
		n.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{"Name": cid, "Hash": cid, "Size": "0"})
		return
	}

	cid := strings.TrimPrefix(r.URL.Path, "/ipfs/")
	n.mu.Lock()
	data, ok := n.store[cid]
	ct := n.types[cid]
	n.mu.Unlock()
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", ct)
	w.Write(data)
}

func newTestService(t *testing.T) *Service {
	server := httptest.NewServer(newFakeNode())
	t.Cleanup(server.Close)

	sh := client.NewIPFSShell(server.URL, time.Second)
	gw := client.NewGatewayReader(server.URL+"/ipfs", time.Second)
	return NewService(sh, gw, 2)
}

func TestUploadAndFetchJSON(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	meta := model.ContentMetadata{Title: "Episode 1", Creator: "0x01", CreatedAt: "2024-01-01T00:00:00Z"}
	res, err := s.UploadJSON(ctx, meta)
	require.NoError(t, err)
	assert.NotEmpty(t, res.CID)
	assert.Equal(t, s.URL(res.CID), res.URL)

	content, err := s.Fetch(ctx, res.CID)
	require.NoError(t, err)
	assert.True(t, content.IsJSON())

	var got model.ContentMetadata
	require.NoError(t, s.FetchJSON(ctx, res.CID, &got))
	assert.Equal(t, meta, got)
}

func TestFetchText(t *testing.T) {
	s := newTestService(t)
	ctx := context.Background()

	res, err := s.UploadFile(ctx, "notes.txt", strings.NewReader("hello creators"))
	require.NoError(t, err)

	content, err := s.Fetch(ctx, res.CID)
	require.NoError(t, err)
	assert.False(t, content.IsJSON())
	assert.Equal(t, "hello creators", string(content.Body))
}

func TestFetchMissing(t *testing.T) {
	s := newTestService(t)

	_, err := s.Fetch(context.Background(), "bafymissing")
	assert.Equal(t, apperr.KindStorageFailed, apperr.KindOf(err))

	_, err = s.Fetch(context.Background(), "")
	assert.Equal(t, apperr.KindInvalidInput, apperr.KindOf(err))
}

func TestFetchTooLarge(t *testing.T) {
	s := newTestService(t)
	s.maxFetch = 8
	ctx := context.Background()

	exact, err := s.UploadFile(ctx, "exact.txt", strings.NewReader("12345678"))
	require.NoError(t, err)
	content, err := s.Fetch(ctx, exact.CID)
	require.NoError(t, err)
	assert.Equal(t, "12345678", string(content.Body))

	large, err := s.UploadFile(ctx, "large.txt", strings.NewReader("123456789"))
	require.NoError(t, err)
	_, err = s.Fetch(ctx, large.CID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorageFailed, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "content too large")
}

func TestUploadFilesKeepsOrder(t *testing.T) {
	s := newTestService(t)

	names := []string{"a.txt", "b.txt", "c.txt", "d.txt", "e.txt"}
	var files []File
	for _, name := range names {
		body := "content of " + name
		files = append(files, File{
			Name: name,
			Type: "text/plain",
			Size: int64(len(body)),
			Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(body)), nil },
		})
	}

	descriptors, err := s.UploadFiles(context.Background(), files)
	require.NoError(t, err)
	require.Len(t, descriptors, len(names))
	for i, d := range descriptors {
		assert.Equal(t, names[i], d.Name)
		assert.NotEmpty(t, d.CID)

		content, err := s.Fetch(context.Background(), d.CID)
		require.NoError(t, err)
		assert.Equal(t, "content of "+names[i], string(content.Body))
	}
}

func TestUploadFilesOpenFailure(t *testing.T) {
	s := newTestService(t)

	files := []File{
		{Name: "ok.txt", Open: func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader("ok")), nil }},
		{Name: "bad.txt", Open: func() (io.ReadCloser, error) { return nil, errors.New("disk gone") }},
	}

	_, err := s.UploadFiles(context.Background(), files)
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorageFailed, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "bad.txt")
}

type failingAdder struct{}

func (failingAdder) Add(io.Reader, ...shell.AddOpts) (string, error) {
	return "", errors.New("node offline")
}

func TestUploadFailure(t *testing.T) {
	s := NewService(failingAdder{}, client.NewGatewayReader("https://ipfs.io/ipfs", time.Second), 1)

	_, err := s.UploadJSON(context.Background(), map[string]string{"a": "b"})
	require.Error(t, err)
	assert.Equal(t, apperr.KindStorageFailed, apperr.KindOf(err))
	assert.Equal(t, "https://ipfs.io/ipfs/bafyx", s.URL("bafyx"))
}
