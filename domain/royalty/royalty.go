package royalty

import (
	"math/big"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
)

// Payout is a single beneficiary share within a distribution.
type Payout struct {
	Recipient domain.Address `json:"recipient"`
	Amount    *big.Int       `json:"amount"`
}

// Distribution is the full split of a sale price. The amounts always sum to
// the input price exactly; rounding dust accrues to the seller.
type Distribution struct {
	Treasury  Payout   `json:"treasury"`
	Royalties []Payout `json:"royalties"`
	Seller    Payout   `json:"seller"`
}

// Total re-adds every payout, used by callers to assert conservation.
func (d *Distribution) Total() *big.Int {
	total := new(big.Int).Set(d.Treasury.Amount)
	for _, p := range d.Royalties {
		total.Add(total, p.Amount)
	}
	return total.Add(total, d.Seller.Amount)
}

// Distributor computes how a sale price splits between the treasury, each
// collection's royalty beneficiary and the seller.
type Distributor interface {
	Distribute(c ctx.Ctx, l *listing.Listing, price *big.Int, marketFeeBps int64, treasury domain.Address) (*Distribution, error)
}
