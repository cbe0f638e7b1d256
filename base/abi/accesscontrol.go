package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var AccessControlABI abi.ABI

var accessControlABI = `[{"type":"function","name":"hasRole","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"bytes32","name":"role"},{"type":"address","name":"account"}],"outputs":[{"type":"bool"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(accessControlABI))
	if err != nil {
		panic("Failed to parse access control abi")
	}
	AccessControlABI = _abi
}
