// Package format centraliza el formateo de montos y cantidades para reportes legibles.
// El núcleo de cálculo nunca lo importa: entrega números planos y cada capa de presentación decide.
package format

import (
	"math"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter formatea números con separadores de miles según un idioma.
type Formatter struct {
	p *message.Printer
}

// New crea un formatter para la etiqueta de idioma dada ("en", "es-CO", ...).
// Una etiqueta inválida cae a inglés.
func New(tag string) *Formatter {
	t, err := language.Parse(tag)
	if err != nil {
		t = language.English
	}
	return &Formatter{p: message.NewPrinter(t)}
}

// Money formatea un monto con dos decimales y prefijo "$". +Inf se muestra como "∞".
func (f *Formatter) Money(v float64) string {
	if math.IsInf(v, 1) {
		return "∞"
	}
	return f.p.Sprintf("$%.2f", v)
}

// Units formatea una cantidad redondeada a unidades enteras.
func (f *Formatter) Units(v float64) string {
	return f.p.Sprintf("%.0f", math.Round(v))
}

// Decimal formatea con la cantidad de decimales pedida.
func (f *Formatter) Decimal(v float64, places int) string {
	return f.p.Sprintf("%."+strconv.Itoa(places)+"f", v)
}

// Percent formatea una fracción (0.10) como porcentaje ("10.0%").
func (f *Formatter) Percent(fraction float64) string {
	return f.p.Sprintf("%.1f%%", fraction*100)
}

// Sprintf expone el printer localizado para líneas compuestas.
func (f *Formatter) Sprintf(format string, args ...interface{}) string {
	return f.p.Sprintf(format, args...)
}
