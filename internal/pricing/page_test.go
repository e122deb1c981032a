package pricing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPageStartsMonthly(t *testing.T) {
	p := NewPage()
	assert.False(t, p.IsToggled())
	assert.Equal(t, Monthly, p.Period())
	assert.Equal(t, "Monthly", p.Label())
	assert.Equal(t, "translate-x-0", p.DotClass())
}

func TestHandleToggle(t *testing.T) {
	p := NewPage()

	p.HandleToggle()
	assert.True(t, p.IsToggled())
	assert.Equal(t, Annually, p.Period())
	assert.Equal(t, "Annually", p.Label())
	assert.Equal(t, "translate-x-full", p.DotClass())

	p.HandleToggle()
	assert.False(t, p.IsToggled())
	assert.Equal(t, "Monthly", p.Label())
}

func TestLabelIsAlwaysMonthlyOrAnnually(t *testing.T) {
	p := NewPageFor(Annually)
	for i := 0; i < 7; i++ {
		if p.IsToggled() {
			assert.Equal(t, "Annually", p.Label())
		} else {
			assert.Equal(t, "Monthly", p.Label())
		}
		p.HandleToggle()
	}
}

func TestToggleDoesNotChangePlans(t *testing.T) {
	p := NewPage()
	before := p.Plans()
	p.HandleToggle()
	assert.Equal(t, before, p.Plans())
}

func TestParseBillingPeriod(t *testing.T) {
	tests := []struct {
		in   string
		want BillingPeriod
	}{
		{"", Monthly},
		{"monthly", Monthly},
		{" Monthly ", Monthly},
		{"annually", Annually},
		{"ANNUALLY", Annually},
	}
	for _, tt := range tests {
		got, err := ParseBillingPeriod(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseBillingPeriod("weekly")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidBillingPeriod))
}

func TestBillingPeriodString(t *testing.T) {
	assert.Equal(t, "monthly", Monthly.String())
	assert.Equal(t, "annually", Annually.String())

	for _, b := range []BillingPeriod{Monthly, Annually} {
		parsed, err := ParseBillingPeriod(b.String())
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}
}
