package display

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	assert.Equal(t, "K", Lookup("ZMW").Symbol)
	assert.Equal(t, "$", Lookup("USD").Symbol)

	// Unknown and empty codes fall back to the base currency.
	assert.Equal(t, "ZMW", Lookup("XYZ").Code)
	assert.Equal(t, "ZMW", Lookup("").Code)
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "K1500.00", FormatAmount(Lookup("ZMW"), 1500))
	assert.Equal(t, "$60.00", FormatAmount(Lookup("USD"), 1500))
	assert.Equal(t, "K-25.50", FormatAmount(Lookup("ZMW"), -25.5))
}
