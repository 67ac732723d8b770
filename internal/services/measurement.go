package services

import (
	"github.com/max25782/server/internal/models"
)

// Measurement is the resolved length/weight pair persisted on an order line.
type Measurement struct {
	Length float64
	Weight float64
}

// resolveMeasurement determines the effective measurements for one order
// line. Per axis, independently: a supplied override wins (numeric values
// directly, strings after loose parsing inside FlexNumber); otherwise the
// catalog product's stored default applies; otherwise zero. product may be
// nil when the referenced catalog row no longer exists.
func resolveMeasurement(item OrderItemRequest, product *models.Product) Measurement {
	var catalogLength, catalogWeight *float64
	if product != nil {
		catalogLength = product.Length
		catalogWeight = product.Weight
	}
	return Measurement{
		Length: resolveAxis(item.Length, catalogLength),
		Weight: resolveAxis(item.Weight, catalogWeight),
	}
}

func resolveAxis(override models.FlexNumber, catalogDefault *float64) float64 {
	if override.IsSet() {
		// May be NaN if the client sent an unparsable string; stored as-is.
		return override.Value()
	}
	if catalogDefault != nil {
		return *catalogDefault
	}
	return 0
}
