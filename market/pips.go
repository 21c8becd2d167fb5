package market

import "math"

func pipSizeFor(c InstrumentClass) float64 {
	switch c {
	case ClassJPYForex:
		return JPYPip
	case ClassMetalEnergy:
		return MetalEnergyPip
	case ClassIndex:
		return IndexPip
	case ClassCrypto:
		return CryptoPip
	case ClassFutures:
		return FuturesPip
	default:
		return ForexPip
	}
}

// PipSize returns the price granularity of one point for symbol. It never
// fails: unknown symbols get the standard forex pip.
func PipSize(symbol string) float64 {
	return pipSizeFor(Classify(symbol))
}

// PointsBetween converts the distance between two prices into points.
// The result is not rounded.
func PointsBetween(a, b float64, symbol string) float64 {
	return math.Abs(a-b) / PipSize(symbol)
}

// PriceFromPoints moves price by points in the given direction.
func PriceFromPoints(price, points float64, symbol string, up bool) float64 {
	d := points * PipSize(symbol)
	if up {
		return price + d
	}
	return price - d
}
