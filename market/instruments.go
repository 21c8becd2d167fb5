// market/instruments.go
package market

import "strings"

// InstrumentClass is the coarse family a symbol belongs to. It decides the
// pip size used to turn price differences into points.
type InstrumentClass int

const (
	ClassForex InstrumentClass = iota
	ClassJPYForex
	ClassMetalEnergy
	ClassIndex
	ClassCrypto
	ClassFutures
)

func (c InstrumentClass) String() string {
	switch c {
	case ClassJPYForex:
		return "jpy-forex"
	case ClassMetalEnergy:
		return "metal-energy"
	case ClassIndex:
		return "index"
	case ClassCrypto:
		return "crypto"
	case ClassFutures:
		return "futures"
	default:
		return "forex"
	}
}

// Pip sizes per class.
const (
	ForexPip       = 0.0001
	JPYPip         = 0.01
	MetalEnergyPip = 0.01
	IndexPip       = 1.0
	CryptoPip      = 0.01
	FuturesPip     = 0.01
)

// InstrumentMeta describes an instrument as seen by the journal.
type InstrumentMeta struct {
	Name          string
	BaseCurrency  string
	QuoteCurrency string
	Class         InstrumentClass
	PipSize       float64
}

// The classification tables below are read-only. Symbols are compared after
// Canonical() so "XAU/USD", "xau_usd" and "XAUUSD" all match.
var (
	metalEnergySymbols = setOf(
		"XAUUSD", "GOLD", "XAGUSD", "SILVER",
		"USOIL", "WTI", "XTIUSD", "UKOIL", "BRENT", "XBRUSD",
		"NATGAS", "NGAS", "XNGUSD",
	)

	indexSymbols = setOf(
		"SPX500", "SPX", "US500", "SP500",
		"NAS100", "US100", "NDX100", "USTEC",
		"US30", "DJ30",
		"GER40", "GER30", "DE40", "DAX", "DAX40",
		"UK100", "FTSE100",
		"JPN225", "NIKKEI", "NIK225",
		"FRA40", "AUS200", "HK50", "ESP35", "EU50", "STOXX50",
	)

	cryptoSymbols = setOf(
		"BTC", "ETH", "XRP", "LTC", "BCH", "ADA",
		"BTCUSD", "ETHUSD", "XRPUSD", "LTCUSD", "BCHUSD", "ADAUSD",
		"BTCUSDT", "ETHUSDT",
	)

	// CBOT/COMEX/NYMEX/ICE roots: corn, wheat, soybeans, gold, silver,
	// platinum, palladium, crude, natural gas, cocoa, coffee, sugar, cotton.
	futuresRoots = []string{"ZC", "ZW", "ZS", "GC", "SI", "PL", "PA", "CL", "NG", "CC", "KC", "SB", "CT"}
)

const futuresMonthCodes = "FGHJKMNQUVXZ"

func setOf(names ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(names))
	for _, n := range names {
		m[n] = struct{}{}
	}
	return m
}

// Canonical upper-cases a symbol and strips the separators brokers like to
// put between base and quote.
func Canonical(symbol string) string {
	s := strings.ToUpper(strings.TrimSpace(symbol))
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '_', '-', '.', ' ':
			return -1
		}
		return r
	}, s)
}

// Classify resolves the instrument class of a symbol. Rules are applied in
// order and the first match wins; anything unrecognised is a forex pair.
func Classify(symbol string) InstrumentClass {
	s := Canonical(symbol)

	if strings.Contains(s, "JPY") {
		return ClassJPYForex
	}
	if _, ok := metalEnergySymbols[s]; ok {
		return ClassMetalEnergy
	}
	if _, ok := indexSymbols[s]; ok {
		return ClassIndex
	}
	if _, ok := cryptoSymbols[s]; ok {
		return ClassCrypto
	}
	if isFuturesCode(s) {
		return ClassFutures
	}
	return ClassForex
}

// isFuturesCode matches a bare root ("GC") or a root followed by a month
// code and a year digit anywhere in the symbol ("GCZ4", "CLF25").
func isFuturesCode(s string) bool {
	for _, root := range futuresRoots {
		if s == root {
			return true
		}
		idx := 0
		for {
			i := strings.Index(s[idx:], root)
			if i < 0 {
				break
			}
			rest := s[idx+i+len(root):]
			if len(rest) >= 2 &&
				strings.IndexByte(futuresMonthCodes, rest[0]) >= 0 &&
				rest[1] >= '0' && rest[1] <= '9' {
				return true
			}
			idx += i + 1
		}
	}
	return false
}

// Lookup returns metadata for a symbol. Six-letter forex pairs get their
// base and quote split out; everything else only carries class and pip.
func Lookup(symbol string) InstrumentMeta {
	s := Canonical(symbol)
	class := Classify(s)
	meta := InstrumentMeta{
		Name:    s,
		Class:   class,
		PipSize: pipSizeFor(class),
	}
	if (class == ClassForex || class == ClassJPYForex) && len(s) == 6 {
		meta.BaseCurrency = s[:3]
		meta.QuoteCurrency = s[3:]
	}
	return meta
}
