package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
	mDomain "github.com/hinatamarket/goapi/domain/mocks"
	"github.com/hinatamarket/goapi/domain/royalty"
)

var (
	seller       = domain.Address("0xe8e1f0ea88251723d4425b680124d8daaf26e74f")
	treasury     = domain.Address("0x95b1c5f0e3d4a2b6c7d8e9f0a1b2c3d4e5f6a79f")
	collection1  = domain.Address("0x2b1870752208935fda32ab6a016c01a27877cf12")
	collection2  = domain.Address("0x7f2cb5b17f4e5c6e1f7b3a3c0d4e5f6a7b8c9d0e")
	beneficiary1 = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	beneficiary2 = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
)

func singleCollectionListing() *listing.Listing {
	return &listing.Listing{
		ChainId:      1,
		ListingId:    "listing-1",
		Seller:       seller,
		Collections:  []domain.Address{collection1},
		AssetIds:     []domain.TokenId{"1"},
		AssetAmounts: []int64{1},
	}
}

func findPayout(t *testing.T, payouts []royalty.Payout, recipient domain.Address) *big.Int {
	t.Helper()
	for _, p := range payouts {
		if p.Recipient == recipient {
			return p.Amount
		}
	}
	t.Fatalf("no payout for %s", recipient)
	return nil
}

func TestDistributeSingleCollection(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	registry := mDomain.NewCollectionRegistry(t)
	dist := NewDistributor(registry)

	registry.On("RoyaltyOf", mock.Anything, domain.ChainId(1), collection1).
		Return(&domain.RoyaltyInfo{Beneficiary: beneficiary1, FeeBps: 2000}, nil).Once()

	// 10% market fee and 20% royalty on the remainder
	d, err := dist.Distribute(c, singleCollectionListing(), big.NewInt(100), 1000, treasury)
	req.NoError(err)
	req.Equal(big.NewInt(10), d.Treasury.Amount)
	req.Equal(treasury, d.Treasury.Recipient)
	req.Len(d.Royalties, 1)
	req.Equal(big.NewInt(18), d.Royalties[0].Amount)
	req.Equal(beneficiary1, d.Royalties[0].Recipient)
	req.Equal(big.NewInt(72), d.Seller.Amount)
	req.Equal(seller, d.Seller.Recipient)
	req.Equal(big.NewInt(100), d.Total())
}

func TestDistributeWeightedCollections(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	registry := mDomain.NewCollectionRegistry(t)
	dist := NewDistributor(registry)

	l := singleCollectionListing()
	l.Collections = []domain.Address{collection1, collection1, collection2}
	l.AssetIds = []domain.TokenId{"1", "2", "3"}
	l.AssetAmounts = []int64{1, 1, 1}

	registry.On("RoyaltyOf", mock.Anything, domain.ChainId(1), collection1).
		Return(&domain.RoyaltyInfo{Beneficiary: beneficiary1, FeeBps: 1000}, nil).Once()
	registry.On("RoyaltyOf", mock.Anything, domain.ChainId(1), collection2).
		Return(&domain.RoyaltyInfo{Beneficiary: beneficiary2, FeeBps: 1000}, nil).Once()

	d, err := dist.Distribute(c, l, big.NewInt(3000), 0, treasury)
	req.NoError(err)
	req.Equal(big.NewInt(0), d.Treasury.Amount)
	// collection1 carries two of the three assets
	req.Equal(big.NewInt(200), findPayout(t, d.Royalties, beneficiary1))
	req.Equal(big.NewInt(100), findPayout(t, d.Royalties, beneficiary2))
	req.Equal(big.NewInt(2700), d.Seller.Amount)
	req.Equal(big.NewInt(3000), d.Total())
}

func TestDistributeRoundingDustGoesToSeller(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	registry := mDomain.NewCollectionRegistry(t)
	dist := NewDistributor(registry)

	registry.On("RoyaltyOf", mock.Anything, domain.ChainId(1), collection1).
		Return(&domain.RoyaltyInfo{Beneficiary: beneficiary1, FeeBps: 333}, nil).Once()

	d, err := dist.Distribute(c, singleCollectionListing(), big.NewInt(101), 250, treasury)
	req.NoError(err)
	// 101*250/10000 truncates to 2, remainder 99, 99*333/10000 truncates to 3
	req.Equal(big.NewInt(2), d.Treasury.Amount)
	req.Equal(big.NewInt(3), d.Royalties[0].Amount)
	req.Equal(big.NewInt(96), d.Seller.Amount)
	req.Equal(big.NewInt(101), d.Total())
}

func TestDistributeWithoutRoyaltyConfig(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	registry := mDomain.NewCollectionRegistry(t)
	dist := NewDistributor(registry)

	registry.On("RoyaltyOf", mock.Anything, domain.ChainId(1), collection1).
		Return(&domain.RoyaltyInfo{Beneficiary: domain.EmptyAddress, FeeBps: 0}, nil).Once()

	d, err := dist.Distribute(c, singleCollectionListing(), big.NewInt(100), 500, treasury)
	req.NoError(err)
	req.Len(d.Royalties, 0)
	req.Equal(big.NewInt(95), d.Seller.Amount)
}

func TestDistributeRejectsInvalidFee(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	registry := mDomain.NewCollectionRegistry(t)
	dist := NewDistributor(registry)

	_, err := dist.Distribute(c, singleCollectionListing(), big.NewInt(100), 10001, treasury)
	req.Equal(domain.ErrInvalidFee, err)
}

func TestDistributeRejectsOverflowingRoyalty(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	registry := mDomain.NewCollectionRegistry(t)
	dist := NewDistributor(registry)

	registry.On("RoyaltyOf", mock.Anything, domain.ChainId(1), collection1).
		Return(&domain.RoyaltyInfo{Beneficiary: beneficiary1, FeeBps: 10001}, nil).Once()

	_, err := dist.Distribute(c, singleCollectionListing(), big.NewInt(100), 500, treasury)
	req.Equal(domain.ErrFeeOverflow, err)
}
