package usecase

import (
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/ethereum"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/order"
	"github.com/hinatamarket/goapi/service/chain/contract"
)

type OrderUseCaseCfg struct {
	NonceRepo order.NonceRepo
	Erc1271   contract.Erc1271Contract
	// MarketplaceAddresses maps each supported chain to the verifying
	// contract of the settlement domain
	MarketplaceAddresses map[domain.ChainId]domain.Address
}

type impl struct {
	nonceRepo            order.NonceRepo
	erc1271              contract.Erc1271Contract
	marketplaceAddresses map[domain.ChainId]domain.Address
}

func NewOrderUseCase(cfg *OrderUseCaseCfg) order.UseCase {
	return &impl{
		nonceRepo:            cfg.NonceRepo,
		erc1271:              cfg.Erc1271,
		marketplaceAddresses: cfg.MarketplaceAddresses,
	}
}

func (im *impl) VerifyListingOrder(c ctx.Ctx, o *order.ListingOrder) error {
	o.LowerCase()
	verifyingContract, ok := im.marketplaceAddresses[o.ChainId]
	if !ok {
		return domain.ErrInvalidChainId
	}

	dataHash, err := o.Hash()
	if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("failed to o.Hash")
		return err
	}
	return im.verifySignature(c, o.ChainId, verifyingContract, dataHash, o.Seller, o.V, o.R, o.S)
}

func (im *impl) VerifyBidOrder(c ctx.Ctx, o *order.BidOrder) error {
	o.LowerCase()
	verifyingContract, ok := im.marketplaceAddresses[o.ChainId]
	if !ok {
		return domain.ErrInvalidChainId
	}

	dataHash, err := o.Hash()
	if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("failed to o.Hash")
		return err
	}
	return im.verifySignature(c, o.ChainId, verifyingContract, dataHash, o.Bidder, o.V, o.R, o.S)
}

func (im *impl) ConsumeNonce(c ctx.Ctx, chainId domain.ChainId, signer domain.Address, nonce string) error {
	used := &order.UsedNonce{
		ChainId: chainId,
		Signer:  signer.ToLower(),
		Nonce:   nonce,
		UsedAt:  time.Now().UTC(),
	}
	if err := im.nonceRepo.Insert(c, used); err == domain.ErrConflict {
		return domain.ErrUsedSignature
	} else if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("nonceRepo.Insert failed")
		return err
	}
	return nil
}

func (im *impl) ReleaseNonce(c ctx.Ctx, chainId domain.ChainId, signer domain.Address, nonce string) error {
	id := order.NonceId{ChainId: chainId, Signer: signer.ToLower(), Nonce: nonce}
	if err := im.nonceRepo.Remove(c, id); err == domain.ErrNotFound {
		return nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("nonceRepo.Remove failed")
		return err
	}
	return nil
}

func (im *impl) IsNonceUsed(c ctx.Ctx, chainId domain.ChainId, signer domain.Address, nonce string) (bool, error) {
	id := order.NonceId{ChainId: chainId, Signer: signer.ToLower(), Nonce: nonce}
	if _, err := im.nonceRepo.FindOne(c, id); err == domain.ErrNotFound {
		return false, nil
	} else if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("nonceRepo.FindOne failed")
		return false, err
	}
	return true, nil
}

func (im *impl) verifySignature(c ctx.Ctx, chainId domain.ChainId, verifyingContract domain.Address, dataHash []byte, signer domain.Address, v int, r, s string) error {
	typedData := apitypes.TypedData{
		Types:  order.OrderTypes,
		Domain: order.GetDomainSeperator(chainId, verifyingContract),
	}
	domainSeperator, err := typedData.HashStruct(order.Eip712DomainName, typedData.Domain.Map())
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
		}).Error("failed to HashStruct")
		return err
	}

	rawData := []byte(fmt.Sprintf("\x19\x01%s%s", string(domainSeperator), string(dataHash)))
	hash := crypto.Keccak256(rawData)
	sig := []byte{}
	sig = append(sig, common.FromHex(r)...)
	sig = append(sig, common.FromHex(s)...)
	sig = append(sig, big.NewInt(int64(v)).Bytes()...)

	valid, err := ethereum.ValidateHashSignature(hash, hexutil.Encode(sig), signer.ToLowerStr())
	if err == nil && valid {
		return nil
	}
	c.WithFields(log.Fields{
		"hash":  hash,
		"sig":   sig,
		"err":   err,
		"valid": valid,
	}).Warn("validating eoa signature failed")

	valid, err = im.erc1271.IsValidSignature(c, int32(chainId), signer.ToLowerStr(), common.BytesToHash(hash), sig)
	if err == nil && valid {
		return nil
	}
	c.WithFields(log.Fields{
		"hash":  hash,
		"sig":   sig,
		"err":   err,
		"valid": valid,
	}).Warn("validating eip1271 signature failed")

	return domain.ErrInvalidSignature
}
