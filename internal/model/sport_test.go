package model

import (
	"encoding/json"
	"testing"
)

func TestSportJSONCodes(t *testing.T) {
	tests := []struct {
		sport Sport
		wire  string
	}{
		{SportFootball, "1"},
		{SportBasketball, "2"},
	}
	for _, tt := range tests {
		data, err := json.Marshal(tt.sport)
		if err != nil {
			t.Fatalf("marshal %v: %v", tt.sport, err)
		}
		if string(data) != tt.wire {
			t.Errorf("marshal %v = %s, want %s", tt.sport, data, tt.wire)
		}
		var back Sport
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("unmarshal %s: %v", data, err)
		}
		if back != tt.sport {
			t.Errorf("roundtrip %v -> %v", tt.sport, back)
		}
	}
}

func TestSportJSONRejectsUnknownCode(t *testing.T) {
	var s Sport
	if err := json.Unmarshal([]byte("7"), &s); err == nil {
		t.Error("expected an error for unknown code 7")
	}
	if err := json.Unmarshal([]byte(`"FOOTBALL"`), &s); err == nil {
		t.Error("expected an error for a non-numeric sport")
	}
	if _, err := json.Marshal(Sport(0)); err == nil {
		t.Error("expected an error marshaling the zero value")
	}
}

func TestSportDatabaseRoundtrip(t *testing.T) {
	v, err := SportBasketball.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}
	if v != "BASKETBALL" {
		t.Errorf("column value = %v, want BASKETBALL", v)
	}

	var s Sport
	if err := s.Scan("BASKETBALL"); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if s != SportBasketball {
		t.Errorf("scanned %v, want SportBasketball", s)
	}
	if err := s.Scan([]byte("FOOTBALL")); err != nil {
		t.Fatalf("scan bytes: %v", err)
	}
	if s != SportFootball {
		t.Errorf("scanned %v, want SportFootball", s)
	}
	if err := s.Scan("CRICKET"); err == nil {
		t.Error("expected an error for an unknown name")
	}
}
