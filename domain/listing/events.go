package listing

import (
	"time"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
)

type EventType string

const (
	EventListingCreated   EventType = "listing_created"
	EventListingCancelled EventType = "listing_cancelled"
	EventListingPurchased EventType = "listing_purchased"
	EventBidUpdated       EventType = "bid_updated"
	EventPayTokenAccepted EventType = "pay_token_accepted"
	EventPayTokenRevoked  EventType = "pay_token_revoked"
	EventMarketFeeChanged EventType = "market_fee_changed"
	EventTreasuryChanged  EventType = "treasury_changed"
	EventLimitChanged     EventType = "limit_count_changed"
)

// Event is an observability record of a state transition. External
// observers reconstruct marketplace state from the event stream; the engine
// never reads it back for control flow.
type Event struct {
	Id        string         `json:"id" bson:"id"`
	ChainId   domain.ChainId `json:"chainId" bson:"chainId"`
	Type      EventType      `json:"type" bson:"type"`
	ListingId string         `json:"listingId,omitempty" bson:"listingId,omitempty"`
	Seller    domain.Address `json:"seller,omitempty" bson:"seller,omitempty"`
	// buyer, bidder, or admin actor depending on the event type
	Account  domain.Address `json:"account,omitempty" bson:"account,omitempty"`
	PayToken domain.Address `json:"payToken,omitempty" bson:"payToken,omitempty"`
	// raw amount in the pay token's smallest unit
	Amount string `json:"amount,omitempty" bson:"amount,omitempty"`
	// human-readable amount, scaled by the pay token's decimals
	DisplayAmount string    `json:"displayAmount,omitempty" bson:"displayAmount,omitempty"`
	Quantity      int64     `json:"quantity,omitempty" bson:"quantity,omitempty"`
	Time          time.Time `json:"time" bson:"time"`
}

type EventFindAllOptions struct {
	ChainId   *domain.ChainId
	ListingId *string
	Seller    *domain.Address
	Type      *EventType
	Offset    *int32
	Limit     *int32
}

type EventFindAllOptionsFunc func(*EventFindAllOptions) error

func GetEventFindAllOptions(opts ...EventFindAllOptionsFunc) (EventFindAllOptions, error) {
	res := EventFindAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func EventWithChainId(chainId domain.ChainId) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func EventWithListingId(listingId string) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.ListingId = &listingId
		return nil
	}
}

func EventWithSeller(seller domain.Address) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func EventWithType(typ EventType) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.Type = &typ
		return nil
	}
}

func EventWithPagination(offset, limit int32) EventFindAllOptionsFunc {
	return func(options *EventFindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

type EventRepo interface {
	Insert(ctx.Ctx, *Event) error
	FindAll(c ctx.Ctx, opts ...EventFindAllOptionsFunc) ([]*Event, error)
}
