package services

import (
	"context"
	"testing"
)

func TestVerifyConsumesCode(t *testing.T) {
	c, _ := newTestCache(t)
	s := NewOTPService(c, nil)
	ctx := context.Background()

	if err := c.Set(ctx, "user@example.com", "123456", otpTTL); err != nil {
		t.Fatalf("failed to store code: %v", err)
	}

	ok, err := s.Verify(ctx, "user@example.com", "123456")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatal("Verify rejected the correct code")
	}

	// The code is single-use.
	ok, err = s.Verify(ctx, "user@example.com", "123456")
	if err != nil {
		t.Fatalf("second Verify failed: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted an already consumed code")
	}
}

func TestVerifyRejectsWrongCode(t *testing.T) {
	c, _ := newTestCache(t)
	s := NewOTPService(c, nil)
	ctx := context.Background()

	if err := c.Set(ctx, "user@example.com", "123456", otpTTL); err != nil {
		t.Fatalf("failed to store code: %v", err)
	}

	ok, err := s.Verify(ctx, "user@example.com", "654321")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted a wrong code")
	}

	// A wrong guess must not consume the stored code.
	ok, err = s.Verify(ctx, "user@example.com", "123456")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if !ok {
		t.Fatal("correct code no longer accepted after a wrong guess")
	}
}

func TestVerifyExpiredCode(t *testing.T) {
	c, mr := newTestCache(t)
	s := NewOTPService(c, nil)
	ctx := context.Background()

	if err := c.Set(ctx, "user@example.com", "123456", otpTTL); err != nil {
		t.Fatalf("failed to store code: %v", err)
	}
	mr.FastForward(otpTTL + 1)

	ok, err := s.Verify(ctx, "user@example.com", "123456")
	if err != nil {
		t.Fatalf("Verify failed: %v", err)
	}
	if ok {
		t.Fatal("Verify accepted an expired code")
	}
}
