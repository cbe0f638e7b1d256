package order

import (
	"strconv"

	"github.com/ethereum/go-ethereum/common/math"
	"github.com/ethereum/go-ethereum/signer/core/apitypes"
	"github.com/hinatamarket/goapi/domain"
)

const (
	ListingPrimaryType = "ListingOrder"
	BidPrimaryType     = "BidOrder"
	Eip712DomainName   = "EIP712Domain"
)

func GetDomainSeperator(chainId domain.ChainId, address domain.Address) apitypes.TypedDataDomain {
	return apitypes.TypedDataDomain{
		Name:              "HinataMarketplace",
		Version:           "2",
		ChainId:           math.NewHexOrDecimal256(int64(chainId)),
		VerifyingContract: address.ToLowerStr(),
	}
}

var OrderTypes = apitypes.Types{
	"ListingOrder": {
		{Name: "id", Type: "string"},
		{Name: "seller", Type: "address"},
		{Name: "payToken", Type: "address"},
		{Name: "price", Type: "uint256"},
		{Name: "reservePrice", Type: "uint256"},
		{Name: "startTime", Type: "uint256"},
		{Name: "duration", Type: "uint256"},
		{Name: "expireTime", Type: "uint256"},
		{Name: "quantity", Type: "uint256"},
		{Name: "listingType", Type: "uint256"},
		{Name: "collections", Type: "address[]"},
		{Name: "assetIds", Type: "uint256[]"},
		{Name: "assetAmounts", Type: "uint256[]"},
		{Name: "nonce", Type: "uint256"},
	},
	"BidOrder": {
		{Name: "bidder", Type: "address"},
		{Name: "listingNonce", Type: "uint256"},
		{Name: "amount", Type: "uint256"},
		{Name: "nonce", Type: "uint256"},
	},
	"EIP712Domain": {
		{Name: "name", Type: "string"},
		{Name: "version", Type: "string"},
		{Name: "chainId", Type: "uint256"},
		{Name: "verifyingContract", Type: "address"},
	},
}

func (o *ListingOrder) ToMessage() apitypes.TypedDataMessage {
	collections := []interface{}{}
	for _, c := range o.Collections {
		collections = append(collections, c.ToLowerStr())
	}
	assetIds := []interface{}{}
	for _, id := range o.AssetIds {
		assetIds = append(assetIds, id.String())
	}
	assetAmounts := []interface{}{}
	for _, a := range o.AssetAmounts {
		assetAmounts = append(assetAmounts, a)
	}
	return apitypes.TypedDataMessage{
		"id":           o.Id,
		"seller":       o.Seller.ToLowerStr(),
		"payToken":     o.PayToken.ToLowerStr(),
		"price":        o.Price,
		"reservePrice": o.ReservePrice,
		"startTime":    o.StartTime,
		"duration":     o.Duration,
		"expireTime":   o.ExpireTime,
		"quantity":     o.Quantity,
		"listingType":  strconv.FormatInt(int64(o.ListingType), 10),
		"collections":  collections,
		"assetIds":     assetIds,
		"assetAmounts": assetAmounts,
		"nonce":        o.Nonce,
	}
}

func (o *ListingOrder) Hash() ([]byte, error) {
	typedData := apitypes.TypedData{
		Types:       OrderTypes,
		PrimaryType: ListingPrimaryType,
		Domain:      GetDomainSeperator(1, domain.EmptyAddress), // dummy
		Message:     o.ToMessage(),
	}
	return typedData.HashStruct(typedData.PrimaryType, typedData.Message)
}

func (o *BidOrder) ToMessage() apitypes.TypedDataMessage {
	return apitypes.TypedDataMessage{
		"bidder":       o.Bidder.ToLowerStr(),
		"listingNonce": o.ListingNonce,
		"amount":       o.Amount,
		"nonce":        o.Nonce,
	}
}

func (o *BidOrder) Hash() ([]byte, error) {
	typedData := apitypes.TypedData{
		Types:       OrderTypes,
		PrimaryType: BidPrimaryType,
		Domain:      GetDomainSeperator(1, domain.EmptyAddress), // dummy
		Message:     o.ToMessage(),
	}
	return typedData.HashStruct(typedData.PrimaryType, typedData.Message)
}
