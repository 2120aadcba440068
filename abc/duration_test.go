package abc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalcDuration(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"", 4},
		{"/", 8},
		{"//", 16},
		{"///", 32},
		{"/2", 8},
		{"/4", 16},
		{"1", 4},
		{"2", 2},
		{"4", 1},
		{"3", 4.0 / 3},
		{"3/2", 8.0 / 3},
		{"1/2", 8},
		{"08", 0.5},
	}

	for _, c := range cases {
		t.Run(c.in, func(t *testing.T) {
			got, err := CalcDuration(c.in)
			assert.Nil(t, err)
			assert.InDelta(t, c.want, got, 1e-9)
		})
	}
}

func TestCalcDurationRejectsMalformed(t *testing.T) {
	for _, in := range []string{"3/", "1/0", "0", "0/2", "1/2/3", "//2", "2//", "99999999999"} {
		t.Run(in, func(t *testing.T) {
			_, err := CalcDuration(in)
			assert.ErrorIs(t, err, ErrInvalidDuration)
		})
	}
}
