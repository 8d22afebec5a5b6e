package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "12,345.68", FormatAmount(decimal.NewFromFloat(12345.678)))
	assert.Equal(t, "100.00", FormatAmount(decimal.NewFromInt(100)))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
	assert.Equal(t, "-1,234.50", FormatAmount(decimal.NewFromFloat(-1234.5)))
	assert.Equal(t, "30,000.00", FormatAmount(decimal.NewFromInt(30000)))
}

func TestFormatOptionalAmount(t *testing.T) {
	assert.Equal(t, "None", FormatOptionalAmount(nil))

	d := decimal.NewFromFloat(12300)
	assert.Equal(t, "12,300.00", FormatOptionalAmount(&d))
}

func TestFormatFixed(t *testing.T) {
	assert.Equal(t, "None", FormatFixed(nil))

	d := decimal.NewFromFloat(12300.5)
	assert.Equal(t, "12300.50", FormatFixed(&d))
}
