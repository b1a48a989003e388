package common

// 1.0.0  2019.04.05   HEX hash subsidy switch points
// 1.1.0  2019.11.20   F2 decay schedule
const CHAINPARAMS_VERSION = "1.1.0"
