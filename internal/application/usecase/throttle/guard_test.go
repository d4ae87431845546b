package throttle

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestGuard_Allow(t *testing.T) {
	guard := NewGuard(2 * time.Second)
	userID := uuid.New()

	now := time.Now()
	guard.SetNowFunc(func() time.Time { return now })

	t.Run("first request is allowed", func(t *testing.T) {
		if !guard.Allow(userID) {
			t.Error("expected first request to be allowed")
		}
	})

	t.Run("request inside the window is blocked", func(t *testing.T) {
		now = now.Add(1999 * time.Millisecond)
		if guard.Allow(userID) {
			t.Error("expected request inside the cooldown window to be blocked")
		}
	})

	t.Run("request at the window edge is allowed", func(t *testing.T) {
		now = now.Add(1 * time.Millisecond)
		if !guard.Allow(userID) {
			t.Error("expected request at the window edge to be allowed")
		}
	})

	t.Run("allowed request resets the window", func(t *testing.T) {
		now = now.Add(1 * time.Second)
		if guard.Allow(userID) {
			t.Error("expected the window to have been reset by the previous fetch")
		}
	})

	t.Run("users are independent", func(t *testing.T) {
		if !guard.Allow(uuid.New()) {
			t.Error("expected a different user to be unaffected")
		}
	})
}

func TestGuard_Retry(t *testing.T) {
	guard := NewGuard(time.Second)
	userID := uuid.New()

	t.Run("first schedule succeeds", func(t *testing.T) {
		if !guard.TryScheduleRetry(userID) {
			t.Error("expected first retry schedule to succeed")
		}
	})

	t.Run("second schedule is refused while pending", func(t *testing.T) {
		if guard.TryScheduleRetry(userID) {
			t.Error("expected second retry schedule to be refused")
		}
	})

	t.Run("clear allows a new schedule", func(t *testing.T) {
		guard.ClearRetry(userID)
		if !guard.TryScheduleRetry(userID) {
			t.Error("expected retry schedule to succeed after clear")
		}
	})

	t.Run("clear on unknown user does not panic", func(t *testing.T) {
		guard.ClearRetry(uuid.New())
	})
}

func TestGuard_Reset(t *testing.T) {
	guard := NewGuard(time.Hour)
	userID := uuid.New()

	if !guard.Allow(userID) {
		t.Fatal("expected first request to be allowed")
	}
	if guard.Allow(userID) {
		t.Fatal("expected second request to be blocked by the hour cooldown")
	}

	guard.Reset(userID)

	if !guard.Allow(userID) {
		t.Error("expected request after reset to be allowed")
	}
}
