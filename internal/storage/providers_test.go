package storage

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"carpet-auction-house/internal/auctionerrors"
	"carpet-auction-house/internal/httpretry"

	"github.com/stretchr/testify/require"
)

func testClient() *httpretry.Client {
	return httpretry.New("storage-test", httpretry.Options{Retries: 2, Backoff: time.Millisecond, Timeout: time.Second})
}

type captured struct {
	mu          sync.Mutex
	path        string
	auth        string
	contentType string
	body        []byte
	formFile    []byte
	formName    string
}

func (c *captured) snapshot() captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	return captured{path: c.path, auth: c.auth, contentType: c.contentType, body: c.body, formFile: c.formFile, formName: c.formName}
}

func TestWeb3Storage_Upload(t *testing.T) {
	t.Parallel()
	var got captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got.mu.Lock()
		got.auth = r.Header.Get("Authorization")
		got.contentType = r.Header.Get("Content-Type")
		got.body = b
		got.mu.Unlock()
		_, _ = w.Write([]byte(`{"cid":"bafyimage"}`))
	}))
	defer srv.Close()

	w := NewWeb3Storage(srv.URL, "tok", testClient())

	cid, err := w.UploadFile(context.Background(), "rug.png", []byte("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "bafyimage", cid)
	snap := got.snapshot()
	require.Equal(t, "Bearer tok", snap.auth)
	require.Equal(t, []byte("png-bytes"), snap.body)

	cid, err = w.UploadJSON(context.Background(), map[string]string{"name": "Rug"})
	require.NoError(t, err)
	require.Equal(t, "bafyimage", cid)
	snap = got.snapshot()
	require.Equal(t, "application/json", snap.contentType)
	require.JSONEq(t, `{"name":"Rug"}`, string(snap.body))
}

func TestWeb3Storage_Errors(t *testing.T) {
	t.Parallel()

	t.Run("missing_token_makes_no_request", func(t *testing.T) {
		t.Parallel()
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
		}))
		defer srv.Close()

		_, err := NewWeb3Storage(srv.URL, " ", testClient()).UploadFile(context.Background(), "a", []byte("x"))
		require.ErrorIs(t, err, auctionerrors.ErrMissingCredential)
		require.Zero(t, atomic.LoadInt32(&calls))
	})

	t.Run("server_error_after_retries", func(t *testing.T) {
		t.Parallel()
		var calls int32
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			atomic.AddInt32(&calls, 1)
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		_, err := NewWeb3Storage(srv.URL, "tok", testClient()).UploadJSON(context.Background(), map[string]string{})
		var se *StatusError
		require.ErrorAs(t, err, &se)
		require.Equal(t, http.StatusInternalServerError, se.Status)
		require.Equal(t, StageJSON, se.Stage)
		require.Equal(t, "Web3.Storage JSON upload failed: status 500", err.Error())
		require.Equal(t, int32(3), atomic.LoadInt32(&calls))
	})

	t.Run("no_cid_in_response", func(t *testing.T) {
		t.Parallel()
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		_, err := NewWeb3Storage(srv.URL, "tok", testClient()).UploadFile(context.Background(), "a", []byte("x"))
		require.Error(t, err)
	})
}

func TestPinata_UploadFile_Multipart(t *testing.T) {
	t.Parallel()
	var got captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got.mu.Lock()
		defer got.mu.Unlock()
		got.path = r.URL.Path
		got.auth = r.Header.Get("Authorization")
		f, hdr, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		got.formFile, _ = io.ReadAll(f)
		got.formName = hdr.Filename
		_, _ = w.Write([]byte(`{"IpfsHash":"QmFile"}`))
	}))
	defer srv.Close()

	cid, err := NewPinata(srv.URL, "jwt", testClient()).UploadFile(context.Background(), "rug.png", []byte("png-bytes"))
	require.NoError(t, err)
	require.Equal(t, "QmFile", cid)

	snap := got.snapshot()
	require.Equal(t, "/pinning/pinFileToIPFS", snap.path)
	require.Equal(t, "Bearer jwt", snap.auth)
	require.Equal(t, []byte("png-bytes"), snap.formFile)
	require.Equal(t, "rug.png", snap.formName)
}

func TestPinata_UploadJSON(t *testing.T) {
	t.Parallel()
	var got captured
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		got.mu.Lock()
		got.path = r.URL.Path
		got.body = b
		got.contentType = r.Header.Get("Content-Type")
		got.mu.Unlock()
		_ = json.NewEncoder(w).Encode(map[string]string{"IpfsHash": "QmMeta"})
	}))
	defer srv.Close()

	cid, err := NewPinata(srv.URL+"/", "jwt", testClient()).UploadJSON(context.Background(), map[string]string{"name": "Rug"})
	require.NoError(t, err)
	require.Equal(t, "QmMeta", cid)

	snap := got.snapshot()
	require.Equal(t, "/pinning/pinJSONToIPFS", snap.path)
	require.Equal(t, "application/json", snap.contentType)
	require.JSONEq(t, `{"name":"Rug"}`, string(snap.body))
}

func TestPinata_MissingJWT(t *testing.T) {
	t.Parallel()
	p := NewPinata("", "", testClient())
	_, err := p.UploadFile(context.Background(), "a", []byte("x"))
	require.ErrorIs(t, err, auctionerrors.ErrMissingCredential)
	_, err = p.UploadJSON(context.Background(), map[string]string{})
	require.ErrorIs(t, err, auctionerrors.ErrMissingCredential)
}
