package kit

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"
)

func TestRateLimiter_AllowPerKey(t *testing.T) {
	l := NewRateLimiter(0.001, 2)

	assert.True(t, l.Allow("10.0.0.1"))
	assert.True(t, l.Allow("10.0.0.1"))
	assert.False(t, l.Allow("10.0.0.1"))

	assert.True(t, l.Allow("10.0.0.2"), "buckets are per key")
}

func TestRateLimiter_DisabledAndNil(t *testing.T) {
	off := NewRateLimiter(0, 1)
	for range 100 {
		require.True(t, off.Allow("k"))
	}

	var nilLimiter *RateLimiter
	assert.True(t, nilLimiter.Allow("k"))
}

func limitedHandler(l *RateLimiter) func(remote, xff string) int {
	h := l.Middleware(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	return func(remote, xff string) int {
		req := httptest.NewRequest(http.MethodPost, "/books", nil)
		req.RemoteAddr = remote
		if xff != "" {
			req.Header.Set("X-Forwarded-For", xff)
		}
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		return rec.Code
	}
}

func TestRateLimiter_MiddlewareKeysOnRemoteAddr(t *testing.T) {
	do := limitedHandler(NewRateLimiter(0.001, 1))

	assert.Equal(t, http.StatusNoContent, do("192.0.2.1:5000", ""))
	assert.Equal(t, http.StatusTooManyRequests, do("192.0.2.1:6000", ""), "port is not part of the key")

	// A spoofed header does not buy a fresh bucket.
	assert.Equal(t, http.StatusTooManyRequests, do("192.0.2.1:7000", "203.0.113.9"))
	assert.Equal(t, http.StatusTooManyRequests, do("192.0.2.1:7001", "203.0.113.10, 10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, do("192.0.2.2:7000", "203.0.113.9"))
}

func TestRateLimiter_MiddlewareTrustsForwardedForWhenEnabled(t *testing.T) {
	l := NewRateLimiter(0.001, 1)
	l.TrustForwardedFor = true
	do := limitedHandler(l)

	assert.Equal(t, http.StatusNoContent, do("10.0.0.1:5000", "203.0.113.9, 10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, do("10.0.0.1:5001", "203.0.113.9"))
	assert.Equal(t, http.StatusNoContent, do("10.0.0.1:5002", "203.0.113.10"), "each forwarded client has its own bucket")
	assert.Equal(t, http.StatusNoContent, do("192.0.2.7:5000", ""), "falls back to RemoteAddr")
}

func TestRateLimiter_UnaryInterceptorOnlyLimitsListedMethods(t *testing.T) {
	l := NewRateLimiter(0.001, 1)
	ic := l.UnaryInterceptor("/books.BookService/Insert")

	ctx := peer.NewContext(context.Background(), &peer.Peer{
		Addr: &net.TCPAddr{IP: net.ParseIP("198.51.100.4"), Port: 4000},
	})
	handler := func(context.Context, any) (any, error) { return "ok", nil }

	call := func(method string) error {
		_, err := ic(ctx, nil, &grpc.UnaryServerInfo{FullMethod: method}, handler)
		return err
	}

	require.NoError(t, call("/books.BookService/Insert"))
	err := call("/books.BookService/Insert")
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
	assert.Equal(t, "mutation rate limit exceeded", status.Convert(err).Message())
	for range 3 {
		require.NoError(t, call("/books.BookService/List"))
	}
}

func TestClientIPHelpers(t *testing.T) {
	assert.Equal(t, "203.0.113.9", firstForwardedFor(" 203.0.113.9 , 10.0.0.1"))
	assert.Empty(t, firstForwardedFor(""))
	assert.Equal(t, "::1", hostOnly("[::1]:8080"))
	assert.Equal(t, "bufconn", hostOnly("bufconn"))
	assert.Empty(t, peerIP(context.Background()))
}
