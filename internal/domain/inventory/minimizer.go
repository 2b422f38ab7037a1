package inventory

import (
	"fmt"
	"math"
)

// SearchStatus indica cómo terminó una búsqueda acotada.
type SearchStatus string

const (
	// StatusConverged el intervalo se cerró alrededor de un mínimo interior.
	StatusConverged SearchStatus = "converged"
	// StatusBoundary el mejor punto es un extremo del intervalo: el óptimo real puede estar fuera.
	StatusBoundary SearchStatus = "boundary"
	// StatusMaxEvaluations se agotó el presupuesto de evaluaciones; se devuelve el mejor punto visto.
	StatusMaxEvaluations SearchStatus = "max_evaluations"
)

// Converged es verdadero solo para mínimos interiores dentro de tolerancia.
func (s SearchStatus) Converged() bool { return s == StatusConverged }

// SearchOptions controla la precisión y el costo de la búsqueda.
type SearchOptions struct {
	XTolerance     float64 // tolerancia absoluta sobre x
	MaxEvaluations int     // tope duro de evaluaciones, incluidas las de los extremos
}

// DefaultSearchOptions valores por defecto (mismos que el método acotado de referencia).
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{XTolerance: 1e-5, MaxEvaluations: 500}
}

// SearchResult punto mínimo encontrado por MinimizeBounded.
type SearchResult struct {
	X           float64
	Fx          float64
	Evaluations int
	Status      SearchStatus
}

var (
	goldenMean = 0.5 * (3 - math.Sqrt(5))
	sqrtEps    = math.Sqrt(2.2e-16)
)

// MinimizeBounded minimiza f en [lo, hi] con el método de Brent: interpolación parabólica
// cuando es confiable y sección áurea en caso contrario. No usa derivadas.
// Al terminar compara el mejor punto interior con los extremos; si un extremo es igual o mejor,
// lo devuelve con StatusBoundary. Nunca excede opts.MaxEvaluations evaluaciones.
func MinimizeBounded(f func(float64) float64, lo, hi float64, opts SearchOptions) (SearchResult, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || math.IsInf(lo, 0) || math.IsInf(hi, 0) || lo >= hi {
		return SearchResult{}, fmt.Errorf("intervalo de búsqueda inválido [%v, %v]", lo, hi)
	}
	if opts.XTolerance <= 0 {
		opts.XTolerance = DefaultSearchOptions().XTolerance
	}
	if opts.MaxEvaluations < 3 {
		opts.MaxEvaluations = 3
	}
	// Se reservan dos evaluaciones para revisar los extremos.
	budget := opts.MaxEvaluations - 2

	a, b := lo, hi
	fulc := a + goldenMean*(b-a)
	nfc, xf := fulc, fulc
	rat, e := 0.0, 0.0
	fx := f(xf)
	evals := 1
	ffulc, fnfc := fx, fx

	xm := 0.5 * (a + b)
	tol1 := sqrtEps*math.Abs(xf) + opts.XTolerance/3
	tol2 := 2 * tol1
	status := StatusConverged

	for math.Abs(xf-xm) > tol2-0.5*(b-a) {
		if evals >= budget {
			status = StatusMaxEvaluations
			break
		}
		golden := true
		if math.Abs(e) > tol1 {
			// Intento de paso parabólico con los tres mejores puntos.
			golden = false
			r := (xf - nfc) * (fx - ffulc)
			q := (xf - fulc) * (fx - fnfc)
			p := (xf-fulc)*q - (xf-nfc)*r
			q = 2 * (q - r)
			if q > 0 {
				p = -p
			}
			q = math.Abs(q)
			r = e
			e = rat

			if math.Abs(p) < math.Abs(0.5*q*r) && p > q*(a-xf) && p < q*(b-xf) {
				rat = p / q
				x := xf + rat
				if (x-a) < tol2 || (b-x) < tol2 {
					rat = tol1 * signOrOne(xm-xf)
				}
			} else {
				golden = true
			}
		}
		if golden {
			if xf >= xm {
				e = a - xf
			} else {
				e = b - xf
			}
			rat = goldenMean * e
		}

		x := xf + signOrOne(rat)*math.Max(math.Abs(rat), tol1)
		fu := f(x)
		evals++

		if fu <= fx {
			if x >= xf {
				a = xf
			} else {
				b = xf
			}
			fulc, ffulc = nfc, fnfc
			nfc, fnfc = xf, fx
			xf, fx = x, fu
		} else {
			if x < xf {
				a = x
			} else {
				b = x
			}
			if fu <= fnfc || nfc == xf {
				fulc, ffulc = nfc, fnfc
				nfc, fnfc = x, fu
			} else if fu <= ffulc || fulc == xf || fulc == nfc {
				fulc, ffulc = x, fu
			}
		}

		xm = 0.5 * (a + b)
		tol1 = sqrtEps*math.Abs(xf) + opts.XTolerance/3
		tol2 = 2 * tol1
	}

	res := SearchResult{X: xf, Fx: fx, Evaluations: evals, Status: status}

	// Un mínimo en el borde nunca "converge": Brent solo se acerca asintóticamente al extremo.
	for _, edge := range []float64{lo, hi} {
		fe := f(edge)
		res.Evaluations++
		if fe <= res.Fx {
			res.X, res.Fx, res.Status = edge, fe, StatusBoundary
		}
	}
	return res, nil
}

func signOrOne(v float64) float64 {
	if v < 0 {
		return -1
	}
	return 1
}
