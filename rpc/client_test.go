package rpc

import (
	"context"
	"encoding/json"
	"errors"
	"io/ioutil"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/onederx/chia-rpc/rpc/rpctest"
)

func TestExchangeSendsEmptyObjectWithoutParams(t *testing.T) {
	pki := rpctest.NewPKI(t)
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := ioutil.ReadAll(r.Body)

		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/get_blockchain_state", r.URL.Path)
		assert.Empty(t, r.URL.RawQuery)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-Id"))
		assert.Equal(t, "{}", string(body))
		require.Len(t, r.TLS.PeerCertificates, 1)
		assert.Equal(t, "Test Client", r.TLS.PeerCertificates[0].Subject.CommonName)

		w.Write([]byte(`{"success": true}`))
	}))
	client := newTestClient(t, pki, host, port, func(cfg *Config) {
		cfg.Logger = zaptest.NewLogger(t)
	})

	body, err := client.Exchange(context.Background(), "get_blockchain_state", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true}`, string(body))
}

func TestExchangeSendsParams(t *testing.T) {
	pki := rpctest.NewPKI(t)
	var received map[string]interface{}
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.Write([]byte(`{"success": true}`))
	}))
	client := newTestClient(t, pki, host, port, nil)

	_, err := client.Exchange(context.Background(), "get_block_records", Params{
		"start": 10,
		"end":   20,
		"ids":   []string{"0x01", "0x02"},
	})
	require.NoError(t, err)

	assert.Equal(t, map[string]interface{}{
		"start": float64(10),
		"end":   float64(20),
		"ids":   []interface{}{"0x01", "0x02"},
	}, received)
}

func TestExchangeBadStatus(t *testing.T) {
	pki := rpctest.NewPKI(t)
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"success": true, "space": 1}`))
	}))
	client := newTestClient(t, pki, host, port, nil)

	_, err := client.Exchange(context.Background(), "get_network_space", nil)

	var statusErr *BadStatusError
	require.True(t, errors.As(err, &statusErr), "got %T: %v", err, err)
	assert.Equal(t, 500, statusErr.Status)
	assert.Equal(t, client.URL("get_network_space"), statusErr.URL)
	assert.NotContains(t, statusErr.Error(), "space")
}

func TestExchangeResponseTooLarge(t *testing.T) {
	const limit = 1024
	pki := rpctest.NewPKI(t)
	payload := `{"success": true, "data": "` + strings.Repeat("a", 4*limit) + `"}`

	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/chunked" {
			// flushing before writing everything forces chunked encoding,
			// so size is unknown upfront
			w.Write([]byte(payload[:10]))
			w.(http.Flusher).Flush()
			w.Write([]byte(payload[10:]))
			return
		}
		w.Header().Set("Content-Length", "4200")
		w.Write([]byte(payload[:4200]))
	}))
	client := newTestClient(t, pki, host, port, func(cfg *Config) {
		cfg.MaxResponseSize = limit
	})

	for _, endpoint := range []string{"sized", "chunked"} {
		_, err := client.Exchange(context.Background(), endpoint, nil)

		var tooLarge *ResponseTooLargeError
		require.True(t, errors.As(err, &tooLarge), "%s: got %T: %v", endpoint, err, err)
		assert.Equal(t, int64(limit), tooLarge.Limit)
	}
}

func TestExchangeResponseAtLimitIsAccepted(t *testing.T) {
	pki := rpctest.NewPKI(t)
	payload := `{"success": true}`
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(payload))
	}))
	client := newTestClient(t, pki, host, port, func(cfg *Config) {
		cfg.MaxResponseSize = int64(len(payload))
	})

	body, err := client.Exchange(context.Background(), "get_network_info", nil)
	require.NoError(t, err)
	assert.Equal(t, payload, string(body))
}

func TestExchangeNetworkError(t *testing.T) {
	pki := rpctest.NewPKI(t)
	server, host, port := rpctest.NewServer(t, pki, http.NotFoundHandler())
	client := newTestClient(t, pki, host, port, nil)
	server.Close()

	_, err := client.Exchange(context.Background(), "get_blockchain_state", nil)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
	assert.Equal(t, client.URL("get_blockchain_state"), netErr.URL)
}

func TestExchangeWithDefaultTLSOptions(t *testing.T) {
	pki := rpctest.NewPKI(t)
	_, _, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))

	// server certificate names only the node, not localhost
	client, err := NewClient(Config{Host: "localhost", Port: port, SSLPath: pki.SSLPath})
	require.NoError(t, err)

	body, err := client.Exchange(context.Background(), "get_blockchain_state", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"success": true}`, string(body))
}

func TestExchangeVerifiesServerCertificate(t *testing.T) {
	pki := rpctest.NewPKI(t)
	var hits int32
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	client := newTestClient(t, pki, host, port, func(cfg *Config) {
		cfg.TLS.ServerName = "not-the-node.example"
	})

	_, err := client.Exchange(context.Background(), "get_blockchain_state", nil)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
	assert.Equal(t, int32(0), atomic.LoadInt32(&hits))

	insecure := newTestClient(t, pki, host, port, func(cfg *Config) {
		cfg.TLS.ServerName = "not-the-node.example"
		cfg.TLS.InsecureSkipVerify = true
	})
	_, err = insecure.Exchange(context.Background(), "get_blockchain_state", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestExchangeTimeout(t *testing.T) {
	pki := rpctest.NewPKI(t)
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(5 * time.Second):
		}
	}))
	client := newTestClient(t, pki, host, port, func(cfg *Config) {
		cfg.Timeout = 100 * time.Millisecond
	})

	start := time.Now()
	_, err := client.Exchange(context.Background(), "get_blockchain_state", nil)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
	assert.Less(t, time.Since(start), 4*time.Second)
}

func TestExchangeCanceledContext(t *testing.T) {
	pki := rpctest.NewPKI(t)
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success": true}`))
	}))
	client := newTestClient(t, pki, host, port, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := client.Exchange(ctx, "get_blockchain_state", nil)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestExchangeRateLimit(t *testing.T) {
	pki := rpctest.NewPKI(t)
	var hits int32
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"success": true}`))
	}))
	client := newTestClient(t, pki, host, port, func(cfg *Config) {
		cfg.RateLimit = 0.01
		cfg.RateBurst = 1
	})

	_, err := client.Exchange(context.Background(), "get_blockchain_state", nil)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = client.Exchange(ctx, "get_blockchain_state", nil)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr), "got %T: %v", err, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestExchangeMetrics(t *testing.T) {
	pki := rpctest.NewPKI(t)
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/broken" {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write([]byte(`{"success": true}`))
	}))
	registry := prometheus.NewRegistry()
	metrics, err := NewMetrics(registry)
	require.NoError(t, err)
	client := newTestClient(t, pki, host, port, func(cfg *Config) {
		cfg.Metrics = metrics
	})

	for i := 0; i < 2; i++ {
		_, err := client.Exchange(context.Background(), "get_network_info", nil)
		require.NoError(t, err)
	}
	_, err = client.Exchange(context.Background(), "broken", nil)
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("get_network_info", outcomeOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("broken", outcomeBadStatus)))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.Duration))
}

func TestNewMetricsSharesRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()

	first, err := NewMetrics(registry)
	require.NoError(t, err)
	second, err := NewMetrics(registry)
	require.NoError(t, err)
	assert.Same(t, first.Requests, second.Requests)
	assert.Same(t, first.Duration, second.Duration)

	conflicting := prometheus.NewRegistry()
	conflicting.MustRegister(prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "chia_rpc_requests_total",
		Help: "Something else",
	}))
	_, err = NewMetrics(conflicting)
	assert.Error(t, err)
}

func TestExchangeConcurrentCalls(t *testing.T) {
	const calls = 20
	pki := rpctest.NewPKI(t)
	var hits int32
	_, host, port := rpctest.NewServer(t, pki, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.Write([]byte(`{"success": true}`))
	}))
	client := newTestClient(t, pki, host, port, nil)

	errs := make(chan error, calls)
	for i := 0; i < calls; i++ {
		go func() {
			_, err := client.Exchange(context.Background(), "get_blockchain_state", nil)
			errs <- err
		}()
	}
	for i := 0; i < calls; i++ {
		require.NoError(t, <-errs)
	}
	assert.Equal(t, int32(calls), atomic.LoadInt32(&hits))
}
