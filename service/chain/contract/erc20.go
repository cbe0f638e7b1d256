package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	baseabi "github.com/hinatamarket/goapi/base/abi"
	bCtx "github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/service/chain"
)

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

// NewErc20 returns a domain.PaymentToken backed by on-chain ERC-20
// contracts. Outgoing transfers spend the operator account.
func NewErc20(chainService chain.Client) domain.PaymentToken {
	return &Erc20{
		chainService: chainService,
		abi:          baseabi.ERC20ABI,
	}
}

func (e *Erc20) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, token, owner domain.Address) (*big.Int, error) {
	method := "balanceOf"
	unpacked, err := e.chainService.Call(ctx, int32(chainId), common.HexToAddress(token.ToLowerStr()), nil, e.abi, method, common.HexToAddress(owner.ToLowerStr()))
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) TransferFrom(ctx bCtx.Ctx, chainId domain.ChainId, token, from, to domain.Address, amount *big.Int) error {
	method := "transferFrom"
	txHash, err := e.chainService.Transact(ctx, int32(chainId), common.HexToAddress(token.ToLowerStr()), e.abi, method,
		common.HexToAddress(from.ToLowerStr()), common.HexToAddress(to.ToLowerStr()), amount)
	if err != nil {
		return err
	}
	ctx.WithFields(log.Fields{
		"token":  token,
		"from":   from,
		"to":     to,
		"amount": amount.String(),
		"tx":     txHash.Hex(),
	}).Info("erc20 transferFrom sent")
	return nil
}

func (e *Erc20) Transfer(ctx bCtx.Ctx, chainId domain.ChainId, token, to domain.Address, amount *big.Int) error {
	method := "transfer"
	txHash, err := e.chainService.Transact(ctx, int32(chainId), common.HexToAddress(token.ToLowerStr()), e.abi, method,
		common.HexToAddress(to.ToLowerStr()), amount)
	if err != nil {
		return err
	}
	ctx.WithFields(log.Fields{
		"token":  token,
		"to":     to,
		"amount": amount.String(),
		"tx":     txHash.Hex(),
	}).Info("erc20 transfer sent")
	return nil
}
