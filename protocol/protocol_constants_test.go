package protocol

import "testing"

func TestPathConstants(t *testing.T) {
	if PathIndex != "/" {
		t.Fatalf("PathIndex = %q, want %q", PathIndex, "/")
	}
	if PathUpdateBall != "/update_ball" {
		t.Fatalf("PathUpdateBall = %q, want %q", PathUpdateBall, "/update_ball")
	}
	if PathHealth != "/healthz" {
		t.Fatalf("PathHealth = %q, want %q", PathHealth, "/healthz")
	}
	if PathStatic != "/static" {
		t.Fatalf("PathStatic = %q, want %q", PathStatic, "/static")
	}
}

func TestBodyLimitSanity(t *testing.T) {
	// a ball with four long floats and whitespace must fit
	if MaxBodyBytes < 256 {
		t.Fatalf("MaxBodyBytes = %d, too small for an update request", MaxBodyBytes)
	}
}
