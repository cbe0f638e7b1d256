package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/hinatamarket/goapi/base/abi"
	bCtx "github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/service/chain"
)

type CollectionFactory struct {
	chainService chain.Client
	abi          ethabi.ABI
	addresses    map[domain.ChainId]domain.Address
}

// NewCollectionFactory returns a domain.CollectionRegistry reading royalty
// configs from the per-chain collection factory contracts.
func NewCollectionFactory(chainService chain.Client, addresses map[domain.ChainId]domain.Address) domain.CollectionRegistry {
	return &CollectionFactory{
		chainService: chainService,
		abi:          baseabi.CollectionFactoryABI,
		addresses:    addresses,
	}
}

func (f *CollectionFactory) RoyaltyOf(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address) (*domain.RoyaltyInfo, error) {
	addr, ok := f.addresses[chainId]
	if !ok {
		return nil, chain.ErrUnsupportedChain
	}
	method := "getRoyalty"
	unpacked, err := f.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr.ToLowerStr()), nil, f.abi, method,
		common.HexToAddress(collection.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	return &domain.RoyaltyInfo{
		Beneficiary: domain.Address(unpacked[0].(common.Address).String()).ToLower(),
		FeeBps:      unpacked[1].(*big.Int).Int64(),
	}, nil
}

func (f *CollectionFactory) IsRegistered(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error) {
	addr, ok := f.addresses[chainId]
	if !ok {
		return false, chain.ErrUnsupportedChain
	}
	method := "isWhitelisted"
	unpacked, err := f.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr.ToLowerStr()), nil, f.abi, method,
		common.HexToAddress(collection.ToLowerStr()))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}
