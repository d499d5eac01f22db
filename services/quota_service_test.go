package services

import (
	"context"
	"errors"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func testRedis(t *testing.T) *redis.Client {
	t.Helper()
	mr := miniredis.RunT(t)
	return redis.NewClient(&redis.Options{Addr: mr.Addr()})
}

func TestQuotaConsume(t *testing.T) {
	client := testRedis(t)
	svc := NewQuotaService(client, 3)
	ctx := context.Background()

	for want := 2; want >= 0; want-- {
		remaining, err := svc.Consume(ctx, "u1")
		if err != nil {
			t.Fatalf("Consume: %v", err)
		}
		if remaining != want {
			t.Errorf("remaining = %d, want %d", remaining, want)
		}
	}

	_, err := svc.Consume(ctx, "u1")
	if !errors.Is(err, ErrQuotaExceeded) {
		t.Errorf("error = %v, want ErrQuotaExceeded", err)
	}
}

func TestQuotaIsolatedPerUser(t *testing.T) {
	client := testRedis(t)
	svc := NewQuotaService(client, 1)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "u1"); err != nil {
		t.Fatalf("Consume u1: %v", err)
	}
	if _, err := svc.Consume(ctx, "u2"); err != nil {
		t.Errorf("Consume u2: %v", err)
	}
}

func TestQuotaRemaining(t *testing.T) {
	client := testRedis(t)
	svc := NewQuotaService(client, 5)
	ctx := context.Background()

	remaining, err := svc.Remaining(ctx, "u1")
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if remaining != 5 {
		t.Errorf("remaining = %d, want 5", remaining)
	}

	if _, err := svc.Consume(ctx, "u1"); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	remaining, err = svc.Remaining(ctx, "u1")
	if err != nil {
		t.Fatalf("Remaining: %v", err)
	}
	if remaining != 4 {
		t.Errorf("remaining = %d, want 4", remaining)
	}
}

func TestQuotaReset(t *testing.T) {
	client := testRedis(t)
	svc := NewQuotaService(client, 1)
	ctx := context.Background()

	if _, err := svc.Consume(ctx, "u1"); err != nil {
		t.Fatalf("Consume: %v", err)
	}
	if _, err := svc.Consume(ctx, "u1"); !errors.Is(err, ErrQuotaExceeded) {
		t.Fatalf("error = %v, want ErrQuotaExceeded", err)
	}

	if err := svc.Reset(ctx, "u1"); err != nil {
		t.Fatalf("Reset: %v", err)
	}
	if _, err := svc.Consume(ctx, "u1"); err != nil {
		t.Errorf("Consume after reset: %v", err)
	}
}
