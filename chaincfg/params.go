// Package chaincfg holds per-network address and WIF prefix bytes, in the
// spirit of btcsuite/btcd's chaincfg.Params: a registry a caller can extend
// rather than a closed enum switch buried in the codec packages.
package chaincfg

// Params groups the prefix bytes a BIP38/WIF/address codec needs for one
// network.
type Params struct {
	// Name identifies the network for logging and error messages.
	Name string

	// PubKeyHashAddrID is the version byte prepended to a HASH160'd
	// public key before Base58Check-encoding a P2PKH address.
	PubKeyHashAddrID byte

	// PrivateKeyID is the version byte prepended to a private key before
	// Base58Check-encoding a WIF string.
	PrivateKeyID byte
}

// MainNetParams are the Qtum mainnet prefixes (spec §6.2).
var MainNetParams = Params{
	Name:             "mainnet",
	PubKeyHashAddrID: 0x3a,
	PrivateKeyID:     0x80,
}

// TestNetParams are the Qtum testnet prefixes (spec §6.2).
var TestNetParams = Params{
	Name:             "testnet",
	PubKeyHashAddrID: 0x78,
	PrivateKeyID:     0xef,
}

// registered holds every network known at runtime, seeded with the two
// Qtum profiles above. Register adds to it so a caller can support a
// sibling chain without touching the codec packages.
var registered = map[string]Params{
	MainNetParams.Name: MainNetParams,
	TestNetParams.Name: TestNetParams,
}

// Register makes a network profile available via ByName. It is safe to
// call during package init of a consumer that wants to add, e.g., a
// regression-test network.
func Register(p Params) {
	registered[p.Name] = p
}

// ByName looks up a previously registered network profile.
func ByName(name string) (Params, bool) {
	p, ok := registered[name]
	return p, ok
}

// All returns every registered network profile, in no particular order.
func All() []Params {
	out := make([]Params, 0, len(registered))
	for _, p := range registered {
		out = append(out, p)
	}
	return out
}
