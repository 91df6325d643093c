package memorylimiter

import (
	"testing"
	"time"
)

func TestAllowNamedEnforcesLimit(t *testing.T) {
	l := New(map[string]Limit{"otp_send": {Limit: 2, Window: time.Minute}})

	for i := 0; i < 2; i++ {
		ok, err := l.AllowNamed("otp_send", "ip:1.2.3.4")
		if err != nil || !ok {
			t.Fatalf("request %d: AllowNamed = (%v, %v), want allowed", i, ok, err)
		}
	}
	ok, err := l.AllowNamed("otp_send", "ip:1.2.3.4")
	if err != nil {
		t.Fatalf("AllowNamed failed: %v", err)
	}
	if ok {
		t.Fatalf("third request must be denied")
	}

	// Other keys keep their own budget.
	if ok, _ := l.AllowNamed("otp_send", "ip:5.6.7.8"); !ok {
		t.Fatalf("separate key must not share the window")
	}
}

func TestAllowNamedDefaultBucket(t *testing.T) {
	l := New(map[string]Limit{"default": {Limit: 1, Window: time.Minute}})

	if ok, _ := l.AllowNamed("unknown", "k"); !ok {
		t.Fatalf("first request must be allowed via default bucket")
	}
	if ok, _ := l.AllowNamed("unknown", "k"); ok {
		t.Fatalf("default bucket limit must apply")
	}
}

func TestAllowNamedNoConfigAllowsAll(t *testing.T) {
	l := New(nil)
	for i := 0; i < 100; i++ {
		if ok, _ := l.AllowNamed("anything", "k"); !ok {
			t.Fatalf("unconfigured limiter must allow everything")
		}
	}
}

func TestAllowNamedWindowReset(t *testing.T) {
	l := New(map[string]Limit{"b": {Limit: 1, Window: 10 * time.Millisecond}})

	if ok, _ := l.AllowNamed("b", "k"); !ok {
		t.Fatalf("first request must be allowed")
	}
	if ok, _ := l.AllowNamed("b", "k"); ok {
		t.Fatalf("second request in window must be denied")
	}
	time.Sleep(15 * time.Millisecond)
	if ok, _ := l.AllowNamed("b", "k"); !ok {
		t.Fatalf("request after window reset must be allowed")
	}
}
