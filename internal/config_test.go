package internal

import "testing"

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestHTTPConfig_PortRange(t *testing.T) {
	cfg := HTTPConfig{Port: 0}
	if err := cfg.Validate(); err == nil {
		t.Error("port 0 should fail validation")
	}
	cfg.Port = 70000
	if err := cfg.Validate(); err == nil {
		t.Error("port 70000 should fail validation")
	}
	cfg.Port = 8080
	if err := cfg.Validate(); err != nil {
		t.Errorf("port 8080 should pass: %v", err)
	}
	if cfg.Address() != ":8080" {
		t.Errorf("address = %q", cfg.Address())
	}
}

func TestTripConfig_YearRange(t *testing.T) {
	cfg := NewDefaultConfig().Trip
	cfg.Year = 1800
	if err := cfg.Validate(); err == nil {
		t.Error("year 1800 should fail validation")
	}
}

func TestTripConfig_PathsRequired(t *testing.T) {
	cfg := NewDefaultConfig().Trip
	cfg.SourcePath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty source path should fail validation")
	}

	cfg = NewDefaultConfig().Trip
	cfg.DataPath = ""
	if err := cfg.Validate(); err == nil {
		t.Error("empty data path should fail validation")
	}
}

func TestFullConfig_TripValidationCalled(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Trip.Title = ""
	if err := cfg.Validate(); err == nil {
		t.Error("full config validate should catch trip error")
	}
}
