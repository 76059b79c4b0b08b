package monitors

import (
	"errors"
	"testing"
)

func TestParsePosition(t *testing.T) {
	cases := []struct {
		in      string
		want    Position
		wantErr bool
	}{
		{in: "0,0", want: Position{}},
		{in: "1920,0", want: Position{X: 1920}},
		{in: " 10 , -20 ", want: Position{X: 10, Y: -20}},
		{in: "", wantErr: true},
		{in: "10", wantErr: true},
		{in: "10,", wantErr: true},
		{in: "a,b", wantErr: true},
		{in: "1,2,3", wantErr: true},
		{in: "1.5,2", wantErr: true},
	}

	for _, tc := range cases {
		got, err := ParsePosition(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidPosition) {
				t.Fatalf("ParsePosition(%q): expected ErrInvalidPosition, got %v", tc.in, err)
			}
			continue
		}
		if err != nil {
			t.Fatalf("ParsePosition(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePosition(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestValidatePosition_AllowsEmpty(t *testing.T) {
	if err := ValidatePosition("  "); err != nil {
		t.Fatalf("expected empty input to validate, got %v", err)
	}
	if err := ValidatePosition("x"); err == nil {
		t.Fatalf("expected invalid input to fail")
	}
}
