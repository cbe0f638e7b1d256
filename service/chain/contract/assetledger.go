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

type AssetLedger struct {
	chainService       chain.Client
	erc721Abi          ethabi.ABI
	erc1155Abi         ethabi.ABI
	erc721InterfaceId  [4]byte
	erc1155InterfaceId [4]byte
}

// NewAssetLedger returns a domain.AssetLedger over ERC-721 and ERC-1155
// collections. The token standard is probed per call via supportsInterface.
func NewAssetLedger(chainService chain.Client) domain.AssetLedger {
	var erc721Id, erc1155Id [4]byte
	copy(erc721Id[:], common.Hex2Bytes("80ac58cd"))
	copy(erc1155Id[:], common.Hex2Bytes("d9b67a26"))
	return &AssetLedger{
		chainService:       chainService,
		erc721Abi:          baseabi.ERC721TokenABI,
		erc1155Abi:         baseabi.ERC1155TokenABI,
		erc721InterfaceId:  erc721Id,
		erc1155InterfaceId: erc1155Id,
	}
}

func (a *AssetLedger) supportsInterface(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address, interfaceId [4]byte) (bool, error) {
	method := "supportsInterface"
	unpacked, err := a.chainService.Call(ctx, int32(chainId), common.HexToAddress(collection.ToLowerStr()), nil, a.erc721Abi, method, interfaceId)
	if err != nil {
		return false, err
	}
	return unpacked[0].(bool), nil
}

func (a *AssetLedger) is721(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error) {
	return a.supportsInterface(ctx, chainId, collection, a.erc721InterfaceId)
}

func (a *AssetLedger) IsAsset(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address) (bool, error) {
	if ok, err := a.supportsInterface(ctx, chainId, collection, a.erc721InterfaceId); err == nil && ok {
		return true, nil
	}
	ok, err := a.supportsInterface(ctx, chainId, collection, a.erc1155InterfaceId)
	if err != nil {
		return false, err
	}
	return ok, nil
}

func (a *AssetLedger) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address, assetId domain.TokenId) (domain.Address, error) {
	id, err := assetId.ToBig()
	if err != nil {
		return domain.EmptyAddress, err
	}
	method := "ownerOf"
	unpacked, err := a.chainService.Call(ctx, int32(chainId), common.HexToAddress(collection.ToLowerStr()), nil, a.erc721Abi, method, id)
	if err != nil {
		return domain.EmptyAddress, err
	}
	return domain.Address(unpacked[0].(common.Address).String()).ToLower(), nil
}

func (a *AssetLedger) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address, assetId domain.TokenId, owner domain.Address) (*big.Int, error) {
	is721, err := a.is721(ctx, chainId, collection)
	if err != nil {
		return nil, err
	}
	if is721 {
		holder, err := a.OwnerOf(ctx, chainId, collection, assetId)
		if err != nil {
			return nil, err
		}
		if holder.Equals(owner) {
			return domain.Big1, nil
		}
		return domain.Big0, nil
	}

	id, err := assetId.ToBig()
	if err != nil {
		return nil, err
	}
	method := "balanceOf"
	unpacked, err := a.chainService.Call(ctx, int32(chainId), common.HexToAddress(collection.ToLowerStr()), nil, a.erc1155Abi, method, common.HexToAddress(owner.ToLowerStr()), id)
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (a *AssetLedger) Transfer(ctx bCtx.Ctx, chainId domain.ChainId, collection domain.Address, from, to domain.Address, assetId domain.TokenId, amount *big.Int) error {
	id, err := assetId.ToBig()
	if err != nil {
		return err
	}
	is721, err := a.is721(ctx, chainId, collection)
	if err != nil {
		return err
	}

	method := "safeTransferFrom"
	var txHash common.Hash
	if is721 {
		txHash, err = a.chainService.Transact(ctx, int32(chainId), common.HexToAddress(collection.ToLowerStr()), a.erc721Abi, method,
			common.HexToAddress(from.ToLowerStr()), common.HexToAddress(to.ToLowerStr()), id)
	} else {
		txHash, err = a.chainService.Transact(ctx, int32(chainId), common.HexToAddress(collection.ToLowerStr()), a.erc1155Abi, method,
			common.HexToAddress(from.ToLowerStr()), common.HexToAddress(to.ToLowerStr()), id, amount, []byte{})
	}
	if err != nil {
		return err
	}
	ctx.WithFields(log.Fields{
		"collection": collection,
		"assetId":    assetId,
		"from":       from,
		"to":         to,
		"amount":     amount.String(),
		"tx":         txHash.Hex(),
	}).Info("asset transfer sent")
	return nil
}
