package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

var CollectionFactoryABI abi.ABI

var collectionFactoryABI = `[{"type":"function","name":"getRoyalty","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"collection"}],"outputs":[{"type":"address","name":"beneficiary"},{"type":"uint256","name":"royalty"}]},{"type":"function","name":"isWhitelisted","constant":true,"stateMutability":"view","payable":false,"inputs":[{"type":"address","name":"collection"}],"outputs":[{"type":"bool"}]}]`

func init() {
	_abi, err := abi.JSON(strings.NewReader(collectionFactoryABI))
	if err != nil {
		panic("Failed to parse collection factory abi")
	}
	CollectionFactoryABI = _abi
}
