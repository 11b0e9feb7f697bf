package cache

import (
	"context"
	"testing"
	"time"
)

func TestFileCache(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}

	t.Run("MissOnEmpty", func(t *testing.T) {
		_, hit, err := c.Get(ctx, "nope")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if hit {
			t.Error("hit on empty cache")
		}
	})

	t.Run("RoundTrip", func(t *testing.T) {
		if err := c.Set(ctx, "k", []byte("value"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		data, hit, err := c.Get(ctx, "k")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if !hit || string(data) != "value" {
			t.Errorf("Get = %q, %v", data, hit)
		}
	})

	t.Run("Expiry", func(t *testing.T) {
		if err := c.Set(ctx, "ttl", []byte("x"), time.Nanosecond); err != nil {
			t.Fatalf("Set: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
		_, hit, err := c.Get(ctx, "ttl")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if hit {
			t.Error("expired entry still hit")
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := c.Set(ctx, "gone", []byte("x"), 0); err != nil {
			t.Fatalf("Set: %v", err)
		}
		if err := c.Delete(ctx, "gone"); err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if _, hit, _ := c.Get(ctx, "gone"); hit {
			t.Error("deleted entry still hit")
		}
		// Deleting again is not an error.
		if err := c.Delete(ctx, "gone"); err != nil {
			t.Errorf("Delete missing: %v", err)
		}
	})
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()

	if err := c.Set(ctx, "k", []byte("v"), 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("null cache returned a hit")
	}
}

func TestScoreKey(t *testing.T) {
	if ScoreKey("alpha", "beta") != ScoreKey("beta", "alpha") {
		t.Error("ScoreKey is not order-independent")
	}
	if ScoreKey("alpha", "beta") == ScoreKey("alpha", "gamma") {
		t.Error("ScoreKey collides across pairs")
	}
}
