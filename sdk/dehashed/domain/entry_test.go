package domain

import (
	"errors"
	"net/netip"
	"testing"
)

func TestNormalizeEntry_EmptyFieldsBecomeAbsent(t *testing.T) {
	entry, err := NormalizeEntry(RawEntry{ID: "5"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.ID != 5 {
		t.Fatalf("expected id=5, got %d", entry.ID)
	}
	if entry.Email != nil || entry.Username != nil || entry.Password != nil ||
		entry.HashedPassword != nil || entry.IPAddress != nil || entry.Name != nil ||
		entry.Vin != nil || entry.Address != nil || entry.Phone != nil ||
		entry.DatabaseName != nil {
		t.Fatalf("expected every optional field to be nil, got %+v", entry)
	}
}

func TestNormalizeEntry_KeepsNonEmptyFields(t *testing.T) {
	entry, err := NormalizeEntry(RawEntry{
		ID:           "42",
		Email:        "joe@example.com",
		IPAddress:    "10.0.0.1",
		DatabaseName: "bigleak",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.Email == nil || *entry.Email != "joe@example.com" {
		t.Fatalf("expected email to survive, got %v", entry.Email)
	}
	if entry.DatabaseName == nil || *entry.DatabaseName != "bigleak" {
		t.Fatalf("expected database_name to survive, got %v", entry.DatabaseName)
	}
	want := netip.MustParseAddr("10.0.0.1")
	if entry.IPAddress == nil || *entry.IPAddress != want {
		t.Fatalf("expected parsed ip, got %v", entry.IPAddress)
	}
}

func TestNormalizeEntry_ParsesIPv6(t *testing.T) {
	entry, err := NormalizeEntry(RawEntry{ID: "1", IPAddress: "::1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if entry.IPAddress == nil || !entry.IPAddress.Is6() {
		t.Fatalf("expected ipv6 addr, got %v", entry.IPAddress)
	}
}

func TestNormalizeEntry_BadIPFails(t *testing.T) {
	_, err := NormalizeEntry(RawEntry{ID: "1", IPAddress: "not-an-ip"})
	if !errors.Is(err, ErrEntryIP) {
		t.Fatalf("expected ErrEntryIP, got %v", err)
	}
}

func TestNormalizeEntry_BadIDFails(t *testing.T) {
	for _, bad := range []string{"", "abc", "-1", "1.5"} {
		_, err := NormalizeEntry(RawEntry{ID: bad})
		if !errors.Is(err, ErrEntryID) {
			t.Fatalf("expected ErrEntryID for id %q, got %v", bad, err)
		}
	}
}
