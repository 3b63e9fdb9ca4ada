package fetcher

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"leaguefetch/pkg/config"
	fetcherrors "leaguefetch/pkg/errors"
	"leaguefetch/pkg/logger"
)

func newTestClient() *Client {
	return NewClient(&config.HTTPConfig{
		UserAgent: "leaguefetch-test",
		Timeout:   5 * time.Second,
	}, logger.NewTestLogger())
}

func bufferSink(buf *bytes.Buffer) Sink {
	return func(body io.Reader) (int64, error) {
		return io.Copy(buf, body)
	}
}

func TestImageURL(t *testing.T) {
	assert.Equal(t, "https://static.quickgrow.net/football/leagues/1.png", ImageURL(DefaultBaseURL, 1))
	assert.Equal(t, "https://static.quickgrow.net/football/leagues/10000.png", ImageURL(DefaultBaseURL, 10000))
	assert.Equal(t, "http://host/x/5.png", ImageURL("http://host/x/", 5))
}

func TestFetchSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != "leaguefetch-test" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Write([]byte("png-bytes"))
	}))
	defer server.Close()

	var buf bytes.Buffer
	n, err := newTestClient().Fetch(server.URL+"/1.png", bufferSink(&buf))
	require.NoError(t, err)
	assert.Equal(t, int64(9), n)
	assert.Equal(t, "png-bytes", buf.String())
}

func TestFetchFollowsRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/old.png", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/new.png", http.StatusFound)
	})
	mux.HandleFunc("/new.png", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("moved"))
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	var buf bytes.Buffer
	_, err := newTestClient().Fetch(server.URL+"/old.png", bufferSink(&buf))
	require.NoError(t, err)
	assert.Equal(t, "moved", buf.String())
}

func TestFetchNonSuccessStatusSkipsSink(t *testing.T) {
	tests := []struct {
		status   int
		expected fetcherrors.ErrorType
	}{
		{http.StatusNotFound, fetcherrors.ErrorTypeNotFound},
		{http.StatusForbidden, fetcherrors.ErrorTypeClientError},
		{http.StatusServiceUnavailable, fetcherrors.ErrorTypeServerError},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte("<html>error page</html>"))
			}))
			defer server.Close()

			called := false
			_, err := newTestClient().Fetch(server.URL+"/1.png", func(io.Reader) (int64, error) {
				called = true
				return 0, nil
			})
			require.Error(t, err)
			assert.False(t, called)
			assert.Equal(t, tt.expected, fetcherrors.Classify(err))
		})
	}
}

func TestFetchConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL + "/1.png"
	server.Close()

	_, err := newTestClient().Fetch(url, bufferSink(&bytes.Buffer{}))
	require.Error(t, err)
	assert.Equal(t, fetcherrors.ErrorTypeNetwork, fetcherrors.Classify(err))
}

func TestFetchSinkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("data"))
	}))
	defer server.Close()

	_, err := newTestClient().Fetch(server.URL+"/1.png", func(io.Reader) (int64, error) {
		return 0, errors.New("disk full")
	})
	require.Error(t, err)
	assert.Equal(t, fetcherrors.ErrorTypeStorage, fetcherrors.Classify(err))
	assert.Contains(t, err.Error(), "disk full")
}
