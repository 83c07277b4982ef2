package std

import (
	"encoding/json"
	"fmt"
)

// GenInitOptions will produce some basic options for one rich
// account and a default reward configuration, to use for dev mode
func GenInitOptions(args []string) (json.RawMessage, error) {
	// TODO: make these configurable
	addr := "0102030405060708090021222324252627282930"

	opts := fmt.Sprintf(`{
    "funds": [
      {
        "address": "%s",
        "balance": 123456789
      }
    ],
    "conf": {
      "revenuepool": {
        "owner": "%s",
        "admin": "%s"
      },
      "referral": {
        "owner": "%s",
        "authority": "%s",
        "treasury": "%s",
        "referral_bps": 5000,
        "holders_bps": 2000,
        "partners_bps": 2000,
        "treasury_bps": 1000,
        "level_bps": [5000, 700, 700, 700, 700, 700, 700],
        "activity_threshold": 1
      }
    }
  }`, addr, addr, addr, addr, addr, addr)
	return []byte(opts), nil
}
