package domain

import (
	"errors"
	"testing"
)

func TestValidateCedula(t *testing.T) {
	tests := []struct {
		name    string
		cedula  string
		wantErr error
	}{
		{
			name:    "valid cédula",
			cedula:  "1710034065",
			wantErr: nil,
		},
		{
			name:    "single digit perturbation flips validity",
			cedula:  "1710034066",
			wantErr: ErrCedulaChecksum,
		},
		{
			name:    "placeholder sequence fails checksum",
			cedula:  "1234567890",
			wantErr: ErrCedulaChecksum,
		},
		{
			name:    "too short",
			cedula:  "171003406",
			wantErr: ErrCedulaFormat,
		},
		{
			name:    "too long",
			cedula:  "17100340655",
			wantErr: ErrCedulaFormat,
		},
		{
			name:    "non-digit character",
			cedula:  "17100340a5",
			wantErr: ErrCedulaFormat,
		},
		{
			name:    "empty",
			cedula:  "",
			wantErr: ErrCedulaFormat,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCedula(tt.cedula)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateCedula(%q) = %v, want %v", tt.cedula, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCedulaSumMultipleOfTen(t *testing.T) {
	// Weighted sum of the first nine digits is exactly 30, so the check
	// digit must be 0. Exercises the (10 - sum mod 10) mod 10 wrap.
	if err := ValidateCedula("1710034560"); err != nil {
		t.Errorf("expected valid cédula, got %v", err)
	}
}
