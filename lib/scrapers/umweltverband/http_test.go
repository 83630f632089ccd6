package umweltverband

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHttpFetcher(t *testing.T) {
	var query map[string][]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "text/html; charset=iso-8859-1")
		// "Restmüll" in latin-1
		w.Write([]byte("<html><body><p class=\"tunterlegt\">15.03.2021 Restm\xfcll</p></body></html>"))
	}))
	defer srv.Close()

	fetcher, err := NewHttpFetcher(HttpFetcherOptions{BaseUrl: srv.URL})
	require.NoError(t, err)

	doc, err := fetcher.Fetch(context.Background(), DefaultPortal.Payload(timetablePayload(42, 2021)))
	require.NoError(t, err)

	require.Equal(t, []string{"15.03.2021 Restmüll"}, ExtractNotices(doc))
	require.Equal(t, []string{"42"}, query[ParamMunicipality])
	require.Equal(t, []string{"bn"}, query[ParamRegion])
}

func TestHttpFetcherStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	fetcher, err := NewHttpFetcher(HttpFetcherOptions{BaseUrl: srv.URL})
	require.NoError(t, err)

	_, err = fetcher.Fetch(context.Background(), DefaultPortal.Payload(nil))
	require.ErrorIs(t, err, ErrFetchFailure)
}

type dumpOutput struct {
	lock     sync.Mutex
	messages []string
}

func (o *dumpOutput) Write(id string, contents string) {
	o.lock.Lock()
	defer o.lock.Unlock()
	o.messages = append(o.messages, contents)
}

func TestHttpFetcherDumps(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<table><tr><td><a href="?gem_nr=42">Seestadt</a></td></tr></table>`))
	}))
	defer srv.Close()

	out := &dumpOutput{}
	fetcher, err := NewHttpFetcher(HttpFetcherOptions{
		BaseUrl:          srv.URL,
		InstrumentOutput: out,
	})
	require.NoError(t, err)

	cities, err := NewClient(fetcher, DefaultPortal).Cities(context.Background())
	require.NoError(t, err)
	require.Equal(t, []Municipality{{Id: 42, Name: "Seestadt"}}, cities)

	require.Len(t, out.messages, 1)
	require.Contains(t, out.messages[0], "GET "+srv.URL+"/?")
	require.Contains(t, out.messages[0], "vb=bn")
	require.Contains(t, out.messages[0], `<a href="?gem_nr=42">Seestadt</a>`)
}
