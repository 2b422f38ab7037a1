package format_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/replenishment-api/pkg/format"
)

func TestFormatter_Ingles(t *testing.T) {
	f := format.New("en")

	assert.Equal(t, "$4,898.98", f.Money(4898.979))
	assert.Equal(t, "12,000", f.Units(12000))
	assert.Equal(t, "894", f.Units(894.43))
	assert.Equal(t, "10.0%", f.Percent(0.10))
	assert.Equal(t, "29.8", f.Decimal(29.80, 1))
}

func TestFormatter_InfinitoYEtiquetaInvalida(t *testing.T) {
	f := format.New("!!")

	assert.Equal(t, "∞", f.Money(math.Inf(1)))
	assert.Equal(t, "$1,000.00", f.Money(1000))
}
