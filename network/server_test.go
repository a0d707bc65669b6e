package network

import (
	"context"
	"net"
	"net/http"
	"testing"
	"time"

	"bounce/game"
	"bounce/protocol"
)

func TestServerServesUntilCancelled(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	s := NewServer(ln.Addr().String(), NewRouter(game.DefaultWorld()))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx, ln) }()

	res, err := http.Get("http://" + ln.Addr().String() + protocol.PathHealth)
	if err != nil {
		t.Fatalf("get health: %v", err)
	}
	res.Body.Close()
	if res.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", res.StatusCode, http.StatusOK)
	}

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("serve returned %v, want nil", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for shutdown")
	}
}

func TestServerRunBadAddr(t *testing.T) {
	s := NewServer("256.0.0.1:http-nope", nil)
	if err := s.Run(context.Background()); err == nil {
		t.Fatalf("expected listen error, got nil")
	}
}
