package telemetry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
)

func TestSetup_DisabledWithoutEndpoint(t *testing.T) {
	shutdown, err := Setup(context.Background(), "", "fooddash-test", true)
	require.NoError(t, err)
	require.NotNil(t, shutdown)
	require.NoError(t, shutdown(context.Background()))
}

// collector records the paths of OTLP export requests.
type collector struct {
	mu    sync.Mutex
	paths []string
}

func (c *collector) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	c.mu.Lock()
	c.paths = append(c.paths, r.URL.Path)
	c.mu.Unlock()
	w.WriteHeader(http.StatusOK)
}

func (c *collector) received() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]string(nil), c.paths...)
}

func TestSetup_ExportsSpans(t *testing.T) {
	tests := []struct {
		name     string
		endpoint func(srv *httptest.Server) string
	}{
		{"url", func(srv *httptest.Server) string { return srv.URL }},
		{"url with trailing slash", func(srv *httptest.Server) string { return srv.URL + "/" }},
		{"url with traces path", func(srv *httptest.Server) string { return srv.URL + "/v1/traces" }},
		{"host:port", func(srv *httptest.Server) string { return srv.Listener.Addr().String() }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &collector{}
			srv := httptest.NewServer(c)
			defer srv.Close()

			ctx := context.Background()
			shutdown, err := Setup(ctx, tt.endpoint(srv), "fooddash-test", true)
			require.NoError(t, err)

			_, span := otel.Tracer("telemetry-test").Start(ctx, "list foods")
			span.End()
			require.NoError(t, shutdown(ctx))

			paths := c.received()
			require.NotEmpty(t, paths, "collector received no export request")
			assert.Equal(t, "/v1/traces", paths[0])
		})
	}
}

func TestExporterOptions_InvalidURL(t *testing.T) {
	_, err := exporterOptions("http://", true)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "invalid OTLP endpoint"))
}
