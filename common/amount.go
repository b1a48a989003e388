package common

import (
	"strconv"

	"github.com/btcsuite/btcd/btcutil"
)

// FormatCoin renders an amount in base units as a coin value, e.g. 380000000
// becomes "3.8 VIRIDI".
func FormatCoin(amount uint64) string {
	coins := btcutil.Amount(amount).ToBTC()
	return strconv.FormatFloat(coins, 'f', -1, 64) + " " + CURRENCY_UNIT
}

// CoinTenths returns an amount of n tenths of a coin, the unit the subsidy
// tables are written in.
func CoinTenths(n uint64) uint64 {
	return n * TENTH_COIN
}
