package common

const (
	// COIN is the number of base units in one coin.
	COIN uint64 = 100_000_000
	// TENTH_COIN is the granularity the decay schedule rounds rewards to.
	TENTH_COIN = COIN / 10

	CURRENCY_UNIT = "VIRIDI"
)

const (
	ChainMainnet  = "main"
	ChainTestnet  = "test"
	ChainRegtest  = "regtest"
	ChainUnittest = "unittest"
)
