package ratelimit

import "testing"

func TestLimiterAllowsAllWithoutRedis(t *testing.T) {
	// No InitRedis call: the default deployment runs with no client.
	limiter := NewLimiter()
	config := DefaultConfig()

	for i := 0; i < config.MaxArguments*2; i++ {
		allowed, err := limiter.AllowArgument("debate1", "user1", config)
		if err != nil {
			t.Fatalf("Failed to check limit without redis: %v", err)
		}
		if !allowed {
			t.Fatal("Expected submissions to be allowed when redis is not configured")
		}

		if err := limiter.RecordArgument("debate1", "user1", config); err != nil {
			t.Fatalf("Failed to record submission without redis: %v", err)
		}
	}
}

func TestNilLimiterAllowsAll(t *testing.T) {
	var limiter *Limiter

	allowed, err := limiter.AllowArgument("debate1", "user1", DefaultConfig())
	if err != nil {
		t.Fatalf("Failed to check limit on nil limiter: %v", err)
	}
	if !allowed {
		t.Error("Expected nil limiter to allow submissions")
	}

	if err := limiter.RecordArgument("debate1", "user1", DefaultConfig()); err != nil {
		t.Errorf("Expected nil limiter record to be a no-op, got %v", err)
	}
}
