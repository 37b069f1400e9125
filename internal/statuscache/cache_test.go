package statuscache

import (
	"testing"
	"time"
)

func TestCache_Labels(t *testing.T) {
	c := New(0)
	if got := c.GetLabel(0); got != "Inactive" {
		t.Fatalf("label for 0: %q", got)
	}
	if got := c.GetLabel(1); got != "Active" {
		t.Fatalf("label for 1: %q", got)
	}
	if got := c.GetLabel(42); got != UnknownLabel {
		t.Fatalf("label for 42: %q", got)
	}
	if got := c.GetLabel(-1); got != UnknownLabel {
		t.Fatalf("label for -1: %q", got)
	}
}

func TestCache_SlidingExpiration(t *testing.T) {
	now := time.Unix(1000, 0)
	c := New(time.Minute)
	c.now = func() time.Time { return now }

	c.GetLabel(0)
	first := c.expires
	if !first.Equal(now.Add(time.Minute)) {
		t.Fatalf("expires after first access: %v", first)
	}

	// каждый доступ продлевает срок жизни
	now = now.Add(50 * time.Second)
	c.GetLabel(1)
	if !c.expires.Equal(now.Add(time.Minute)) {
		t.Fatalf("expires not renewed: %v", c.expires)
	}

	// после простоя дольше TTL словарь перестраивается и продолжает работать
	now = now.Add(2 * time.Minute)
	if got := c.GetLabel(1); got != "Active" {
		t.Fatalf("label after expiry: %q", got)
	}
	if !c.expires.Equal(now.Add(time.Minute)) {
		t.Fatalf("expires after rebuild: %v", c.expires)
	}
}
