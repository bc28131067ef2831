package bip38

import (
	"fmt"

	"github.com/qtumproject/qtum-bip38/bip38errors"
)

func unknownNetworkError(n Network) error {
	return bip38errors.New(bip38errors.NetworkMismatch,
		fmt.Sprintf("unregistered network %q", string(n)))
}
