package contract

import (
	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/hinatamarket/goapi/base/abi"
	bCtx "github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/service/chain"
)

type RoleStore struct {
	chainService chain.Client
	abi          ethabi.ABI
	addresses    map[domain.ChainId]domain.Address
}

// NewRoleStore returns a domain.RoleStore backed by the per-chain role
// storage contracts.
func NewRoleStore(chainService chain.Client, addresses map[domain.ChainId]domain.Address) domain.RoleStore {
	return &RoleStore{
		chainService: chainService,
		abi:          baseabi.AccessControlABI,
		addresses:    addresses,
	}
}

func (r *RoleStore) HasRole(ctx bCtx.Ctx, chainId domain.ChainId, role domain.Role, account domain.Address) (bool, error) {
	addr, ok := r.addresses[chainId]
	if !ok {
		return false, chain.ErrUnsupportedChain
	}
	method := "hasRole"
	unpacked, err := r.chainService.Call(ctx, int32(chainId), common.HexToAddress(addr.ToLowerStr()), nil, r.abi, method,
		common.HexToHash(string(role)), common.HexToAddress(account.ToLowerStr()))
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}
