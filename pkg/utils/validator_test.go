package utils

import "testing"

func TestIsValidIMO(t *testing.T) {
	tests := []struct {
		name  string
		imo   int64
		valid bool
	}{
		{"known valid identifier", 9074729, true},
		{"sequential digits with matching check", 1234567, true},
		{"check digit mismatch", 9999999, false},
		{"too short", 123456, false},
		{"too long", 10000000, false},
		{"zero", 0, false},
		{"negative", -9074729, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidIMO(tt.imo); got != tt.valid {
				t.Errorf("IsValidIMO(%d) = %v, want %v", tt.imo, got, tt.valid)
			}
		})
	}
}

func TestValidateStructIMOTag(t *testing.T) {
	type payload struct {
		VesselIMO int64 `validate:"required,imo"`
	}

	if err := ValidateStruct(&payload{VesselIMO: 9074729}); err != nil {
		t.Fatalf("expected valid IMO to pass, got %v", err)
	}
	if err := ValidateStruct(&payload{VesselIMO: 9999999}); err == nil {
		t.Fatal("expected invalid IMO to fail validation")
	}
}
