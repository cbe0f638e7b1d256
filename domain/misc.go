package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

var (
	Big0 = big.NewInt(0)
	Big1 = big.NewInt(1)

	// BpsDenominator is the basis-point scale for fee arithmetic
	BpsDenominator = big.NewInt(10000)
)

// MaxFeeBps caps market/royalty fees at 100%
const MaxFeeBps = int64(10000)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerPtr() *Address {
	res := a.ToLower()
	return &res
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.ToLower() == EmptyAddress
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is a decimal-encoded uint256 token id
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBig() (*big.Int, error) {
	bn, ok := new(big.Int).SetString(string(i), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid token id %s", i)
	}
	return bn, nil
}

// ToBigInt parses decimal-encoded numbers, all or nothing
func ToBigInt(nums []string) ([]*big.Int, error) {
	var bns []*big.Int
	for _, n := range nums {
		bn, ok := new(big.Int).SetString(n, 10)
		if !ok {
			return nil, ErrInvalidNumberFormat
		}
		bns = append(bns, bn)
	}
	return bns, nil
}
