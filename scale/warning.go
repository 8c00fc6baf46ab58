package scale

import (
	"fmt"
	"math"
	"sync"

	"github.com/zjrosen/prism/config"
	"github.com/zjrosen/prism/internal/log"
)

// PrecisionWarning reports an integer-domain result that the configured
// float precision cannot represent exactly. The conversion still returns
// the rounded value; the warning exists so the loss is never silent.
type PrecisionWarning struct {
	Op        string
	Value     float64
	Result    float64
	Precision config.Precision
}

func (w PrecisionWarning) String() string {
	return fmt.Sprintf("%s: %g rounds to %g beyond exact %s integer range",
		w.Op, w.Value, w.Result, w.Precision)
}

var (
	warnMu      sync.RWMutex
	warnHandler func(PrecisionWarning) = logPrecisionWarning
)

// SetWarningHandler replaces the precision warning handler. Passing nil
// restores the default handler, which logs the warning.
func SetWarningHandler(h func(PrecisionWarning)) {
	warnMu.Lock()
	defer warnMu.Unlock()
	if h == nil {
		warnHandler = logPrecisionWarning
		return
	}
	warnHandler = h
}

func logPrecisionWarning(w PrecisionWarning) {
	log.Warn(log.CatNumeric, "precision loss",
		"op", w.Op, "value", w.Value, "result", w.Result, "precision", w.Precision)
}

// checkPrecision emits a PrecisionWarning when the rounded result exceeds
// the exactly representable integer range of the configured precision.
// Suppressed entirely under the ignore-numeric-warnings mode.
func checkPrecision(op string, value, rounded float64) {
	settings := config.Current()
	if settings.IgnoreNumericWarnings {
		return
	}
	if math.Abs(rounded) <= settings.FloatPrecision.MaxExactInteger() {
		return
	}

	warnMu.RLock()
	h := warnHandler
	warnMu.RUnlock()
	h(PrecisionWarning{
		Op:        op,
		Value:     value,
		Result:    rounded,
		Precision: settings.FloatPrecision,
	})
}
