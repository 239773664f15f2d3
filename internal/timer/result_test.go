package timer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0.00"},
		{9876 * time.Millisecond, "9.87"},
		{59990 * time.Millisecond, "59.99"},
		{62350 * time.Millisecond, "1:02.35"},
		{10*time.Minute + 5*time.Second, "10:05.00"},
		{time.Hour + 2*time.Minute + 3*time.Second + 40*time.Millisecond, "1:02:03.04"},
		{-time.Second, "0.00"},
		{DNFDuration, "DNF"},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, FormatDuration(tt.in), "FormatDuration(%v)", tt.in)
	}
}

func TestResult_EffectiveAndString(t *testing.T) {
	r := Result{Duration: 12340 * time.Millisecond}
	assert.Equal(t, 12340*time.Millisecond, r.Effective())
	assert.Equal(t, "12.34", r.String())
	assert.False(t, r.DNF())

	r.Penalty = PenaltyPlusTwo
	assert.Equal(t, 14340*time.Millisecond, r.Effective())
	assert.Equal(t, "14.34+", r.String())

	r.Penalty = PenaltyDNF
	assert.Equal(t, DNFDuration, r.Effective())
	assert.Equal(t, "DNF", r.String())
	assert.True(t, r.DNF())
}

func TestParsePenalty(t *testing.T) {
	for _, p := range []Penalty{PenaltyNone, PenaltyPlusTwo, PenaltyDNF} {
		got, err := ParsePenalty(string(p))
		assert.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePenalty("+4")
	assert.Error(t, err)
}
