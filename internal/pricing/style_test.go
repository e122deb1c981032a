package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStyleFor(t *testing.T) {
	tests := []struct {
		name        string
		highlighted bool
		enterprise  bool
		variant     Variant
		label       string
	}{
		{"plain", false, false, Standard, LabelGetStarted},
		{"highlighted", true, false, Emphasized, LabelGetStarted},
		{"enterprise", false, true, Standard, LabelContactSales},
		{"highlighted enterprise", true, true, Emphasized, LabelGetStarted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := StyleFor(tt.highlighted, tt.enterprise)
			assert.Equal(t, tt.variant, s.Variant)
			assert.Equal(t, tt.label, s.Label)
		})
	}
}

func TestStyleForClasses(t *testing.T) {
	emphasized := StyleFor(true, false)
	assert.Contains(t, emphasized.ContainerClass, "bg-indigo-800")
	assert.Contains(t, emphasized.ButtonClass, "bg-zinc-200")

	standard := StyleFor(false, false)
	assert.Contains(t, standard.ContainerClass, "bg-black")
	assert.Contains(t, standard.ButtonClass, "bg-indigo-500")
	assert.Contains(t, standard.PriceClass, "text-4xl")

	// price size follows the enterprise flag even when highlighted
	assert.Contains(t, StyleFor(true, true).PriceClass, "text-2xl")
	assert.Contains(t, StyleFor(false, true).PriceClass, "text-2xl")
}

func TestVariantString(t *testing.T) {
	assert.Equal(t, "standard", Standard.String())
	assert.Equal(t, "emphasized", Emphasized.String())
}
