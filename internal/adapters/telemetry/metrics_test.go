package telemetry

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/bnema/neon-boards/internal/ports"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMetricsCountsOutcomes(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	metrics, err := NewLoadMetrics(reg)
	require.NoError(t, err)

	metrics.ObserveBoardLoad(ports.LoadOutcomeOK, 20*time.Millisecond)
	metrics.ObserveBoardLoad(ports.LoadOutcomeOK, 30*time.Millisecond)
	metrics.ObserveBoardLoad(ports.LoadOutcomeStale, time.Second)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.loads.WithLabelValues("ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.loads.WithLabelValues("stale")))
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.loads.WithLabelValues("error")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.duration))
}

func TestNewLoadMetricsReusesRegisteredCollectors(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	first, err := NewLoadMetrics(reg)
	require.NoError(t, err)
	second, err := NewLoadMetrics(reg)
	require.NoError(t, err)

	second.ObserveBoardLoad(ports.LoadOutcomeError, time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(first.loads.WithLabelValues("error")))
}

func TestServeExposesMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics, err := NewLoadMetrics(reg)
	require.NoError(t, err)
	metrics.ObserveBoardLoad(ports.LoadOutcomeOK, time.Millisecond)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Serve(ctx, addr, reg, nil) }()

	var body string
	require.Eventually(t, func() bool {
		resp, err := http.Get(fmt.Sprintf("http://%s/metrics", addr))
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return false
		}
		body = string(data)
		return resp.StatusCode == http.StatusOK
	}, 2*time.Second, 20*time.Millisecond)

	assert.True(t, strings.Contains(body, `neon_panel_board_loads_total{outcome="ok"} 1`))

	cancel()
	require.NoError(t, <-done)
}
