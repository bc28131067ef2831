// Package bip38 implements BIP38 passphrase-protected private-key
// encryption for Qtum: the no-EC-multiply codec, the EC-multiply codec
// (intermediate passphrases, new-encrypted-WIF generation, confirmation
// codes), and the facade operations that tie them together.
//
// The whole state machine lives in one package on purpose, mirroring both
// the teacher's bip38/bip38.go and original_source/qtum_bip38/bip38.py:
// every operation here is a pure function over byte strings with no
// shared mutable state (spec §5).
package bip38

import (
	symlog "github.com/symphonyprotocol/log"

	"github.com/qtumproject/qtum-bip38/chaincfg"
)

var logger = symlog.GetLogger("bip38").SetLevel(symlog.INFO)

// Network selects the address/WIF prefix bytes an operation uses. It is a
// thin, closed-looking enum over the open chaincfg.Params registry: most
// callers only ever need "mainnet" or "testnet", but a third network can
// be registered with chaincfg.Register and then named here without
// changing this package.
type Network string

// MainNet and TestNet are the two Qtum network profiles named by spec §3.
const (
	MainNet Network = "mainnet"
	TestNet Network = "testnet"
)

func (n Network) params() (chaincfg.Params, error) {
	p, ok := chaincfg.ByName(string(n))
	if !ok {
		return chaincfg.Params{}, unknownNetworkError(n)
	}
	return p, nil
}
