package ratelimit

import (
	"testing"
	"time"
)

func TestWindow_AllowWithinLimit(t *testing.T) {
	w := NewWindow(3, time.Hour)

	for i := 0; i < 3; i++ {
		if !w.Allow("1.2.3.4") {
			t.Fatalf("request %d denied, want allowed", i+1)
		}
	}
	if w.Allow("1.2.3.4") {
		t.Error("request over limit allowed, want denied")
	}
}

func TestWindow_KeysIndependent(t *testing.T) {
	w := NewWindow(1, time.Hour)

	if !w.Allow("a") {
		t.Error("first request for a denied")
	}
	if !w.Allow("b") {
		t.Error("first request for b denied")
	}
	if w.Allow("a") {
		t.Error("second request for a allowed, want denied")
	}
}

func TestWindow_ExpiryFreesSlots(t *testing.T) {
	now := time.Now()
	w := NewWindow(1, time.Minute)
	w.now = func() time.Time { return now }

	if !w.Allow("k") {
		t.Fatal("first request denied")
	}
	if w.Allow("k") {
		t.Fatal("second request allowed within window")
	}

	now = now.Add(2 * time.Minute)
	if !w.Allow("k") {
		t.Error("request after window expiry denied, want allowed")
	}
}

func TestWindow_DeniedRequestsNotCounted(t *testing.T) {
	now := time.Now()
	w := NewWindow(2, time.Minute)
	w.now = func() time.Time { return now }

	w.Allow("k")
	w.Allow("k")
	// Hammering while denied must not extend the lockout.
	for i := 0; i < 10; i++ {
		w.Allow("k")
	}

	now = now.Add(61 * time.Second)
	if !w.Allow("k") {
		t.Error("request after original hits expired denied")
	}
}

func TestWindow_Prune(t *testing.T) {
	now := time.Now()
	w := NewWindow(5, time.Minute)
	w.now = func() time.Time { return now }

	w.Allow("old")
	now = now.Add(2 * time.Minute)
	w.Allow("fresh")

	w.Prune()

	st := w.Status()
	if st.ActiveKeys != 1 {
		t.Errorf("ActiveKeys = %d, want 1", st.ActiveKeys)
	}
}

func TestWindow_Defaults(t *testing.T) {
	w := NewWindow(0, 0)
	st := w.Status()
	if st.Limit != 30 {
		t.Errorf("default limit = %d, want 30", st.Limit)
	}
	if st.Window != time.Hour {
		t.Errorf("default window = %v, want 1h", st.Window)
	}
}

func TestUnlimited(t *testing.T) {
	var l Limiter = Unlimited{}
	for i := 0; i < 1000; i++ {
		if !l.Allow("any") {
			t.Fatal("Unlimited denied a request")
		}
	}
}
