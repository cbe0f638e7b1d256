package usecase

import (
	"math/big"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/hinatamarket/goapi/domain/royalty"
)

type distributorImpl struct {
	registry domain.CollectionRegistry
}

func NewDistributor(registry domain.CollectionRegistry) royalty.Distributor {
	return &distributorImpl{registry}
}

// collectionWeight is a collection's share of the listed assets, counted in
// asset units. Order follows first appearance in the listing.
type collectionWeight struct {
	collection domain.Address
	weight     *big.Int
}

func (im *distributorImpl) Distribute(c ctx.Ctx, l *listing.Listing, price *big.Int, marketFeeBps int64, treasury domain.Address) (*royalty.Distribution, error) {
	if marketFeeBps < 0 || marketFeeBps > domain.MaxFeeBps {
		return nil, domain.ErrInvalidFee
	}
	if price.Sign() < 0 {
		return nil, domain.ErrInvalidNumberFormat
	}

	fee := new(big.Int).Mul(price, big.NewInt(marketFeeBps))
	fee.Div(fee, domain.BpsDenominator)
	remaining := new(big.Int).Sub(price, fee)

	weights, totalWeight := assetWeights(l)

	royaltyTotal := big.NewInt(0)
	recipients := []domain.Address{}
	amounts := map[domain.Address]*big.Int{}
	for _, w := range weights {
		if totalWeight.Sign() == 0 {
			break
		}
		info, err := im.registry.RoyaltyOf(c, l.ChainId, w.collection)
		if err != nil {
			c.WithFields(log.Fields{"err": err, "collection": w.collection}).Error("registry.RoyaltyOf failed")
			return nil, err
		}
		if info.FeeBps <= 0 || info.Beneficiary.IsEmpty() {
			continue
		}
		if info.FeeBps > domain.MaxFeeBps {
			return nil, domain.ErrFeeOverflow
		}

		share := new(big.Int).Mul(remaining, w.weight)
		share.Div(share, totalWeight)
		cut := share.Mul(share, big.NewInt(info.FeeBps))
		cut.Div(cut, domain.BpsDenominator)
		if cut.Sign() == 0 {
			continue
		}

		beneficiary := info.Beneficiary.ToLower()
		if prev, ok := amounts[beneficiary]; ok {
			prev.Add(prev, cut)
		} else {
			recipients = append(recipients, beneficiary)
			amounts[beneficiary] = cut
		}
		royaltyTotal.Add(royaltyTotal, cut)
	}

	royalties := make([]royalty.Payout, 0, len(recipients))
	for _, r := range recipients {
		royalties = append(royalties, royalty.Payout{Recipient: r, Amount: amounts[r]})
	}

	sellerAmount := new(big.Int).Sub(remaining, royaltyTotal)
	return &royalty.Distribution{
		Treasury:  royalty.Payout{Recipient: treasury.ToLower(), Amount: fee},
		Royalties: royalties,
		Seller:    royalty.Payout{Recipient: l.Seller.ToLower(), Amount: sellerAmount},
	}, nil
}

func assetWeights(l *listing.Listing) ([]collectionWeight, *big.Int) {
	order := []domain.Address{}
	byCollection := map[domain.Address]*big.Int{}
	total := big.NewInt(0)
	for i, collection := range l.Collections {
		amount := int64(1)
		if i < len(l.AssetAmounts) && l.AssetAmounts[i] > 0 {
			amount = l.AssetAmounts[i]
		}
		key := collection.ToLower()
		if _, ok := byCollection[key]; !ok {
			order = append(order, key)
			byCollection[key] = big.NewInt(0)
		}
		byCollection[key].Add(byCollection[key], big.NewInt(amount))
		total.Add(total, big.NewInt(amount))
	}

	weights := make([]collectionWeight, 0, len(order))
	for _, collection := range order {
		weights = append(weights, collectionWeight{collection: collection, weight: byCollection[collection]})
	}
	return weights, total
}
