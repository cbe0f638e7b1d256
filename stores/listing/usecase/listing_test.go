package usecase

import (
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/escrow"
	mEscrow "github.com/hinatamarket/goapi/domain/escrow/mocks"
	"github.com/hinatamarket/goapi/domain/listing"
	mListing "github.com/hinatamarket/goapi/domain/listing/mocks"
	"github.com/hinatamarket/goapi/domain/marketplace"
	mMarketplace "github.com/hinatamarket/goapi/domain/marketplace/mocks"
	mDomain "github.com/hinatamarket/goapi/domain/mocks"
	"github.com/hinatamarket/goapi/domain/royalty"
	mRoyalty "github.com/hinatamarket/goapi/domain/royalty/mocks"
)

var (
	operator   = domain.Address("0x9f35b1c5f0e3d4a2b6c7d8e9f0a1b2c3d4e5f6a7")
	seller     = domain.Address("0xe8e1f0ea88251723d4425b680124d8daaf26e74f")
	buyer      = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bidder     = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	treasury   = domain.Address("0x95b1c5f0e3d4a2b6c7d8e9f0a1b2c3d4e5f6a79f")
	weth       = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
	collection = domain.Address("0x2b1870752208935fda32ab6a016c01a27877cf12")
)

type testMocks struct {
	listingRepo  *mListing.Repo
	eventRepo    *mListing.EventRepo
	paytokenRepo *mDomain.PayTokenRepo
	configRepo   *mMarketplace.ConfigRepo
	assetLedger  *mDomain.AssetLedger
	registry     *mDomain.CollectionRegistry
	escrow       *mEscrow.Ledger
	payment      *mDomain.PaymentToken
	distributor  *mRoyalty.Distributor
}

func newTestUseCase(t *testing.T) (listing.UseCase, *testMocks) {
	m := &testMocks{
		listingRepo:  mListing.NewRepo(t),
		eventRepo:    mListing.NewEventRepo(t),
		paytokenRepo: mDomain.NewPayTokenRepo(t),
		configRepo:   mMarketplace.NewConfigRepo(t),
		assetLedger:  mDomain.NewAssetLedger(t),
		registry:     mDomain.NewCollectionRegistry(t),
		escrow:       mEscrow.NewLedger(t),
		payment:      mDomain.NewPaymentToken(t),
		distributor:  mRoyalty.NewDistributor(t),
	}
	uc := NewListingUseCase(&ListingUseCaseCfg{
		ListingRepo:  m.listingRepo,
		EventRepo:    m.eventRepo,
		PayTokenRepo: m.paytokenRepo,
		ConfigRepo:   m.configRepo,
		AssetLedger:  m.assetLedger,
		Registry:     m.registry,
		Escrow:       m.escrow,
		Payment:      m.payment,
		Distributor:  m.distributor,
		Operator:     operator,
	})
	return uc, m
}

func (m *testMocks) expectSettings(feeBps int64) {
	m.configRepo.On("FindOne", mock.Anything, domain.ChainId(1)).Return(&marketplace.Settings{
		ChainId:      1,
		MarketFeeBps: feeBps,
		Treasury:     treasury,
		LimitCount:   10,
	}, nil)
}

func (m *testMocks) expectAcceptedPayToken() {
	m.paytokenRepo.On("FindOne", mock.Anything, domain.ChainId(1), weth).Return(&domain.PayToken{
		ChainId:       1,
		Address:       weth,
		Symbol:        "WETH",
		TokenDecimals: 18,
		Accepted:      true,
	}, nil)
}

func (m *testMocks) expectEvent(typ listing.EventType) {
	m.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *listing.Event) bool {
		return e.Type == typ
	})).Return(nil).Once()
}

func fixedPriceListing() *listing.Listing {
	return &listing.Listing{
		ChainId:      1,
		ListingId:    "listing-1",
		Seller:       seller,
		PayToken:     weth,
		Price:        "100",
		ReservePrice: "100",
		Type:         listing.TypeFixedPrice,
		Collections:  []domain.Address{collection},
		AssetIds:     []domain.TokenId{"1"},
		AssetAmounts: []int64{1},
		Status:       listing.StatusActive,
		CreatedAt:    time.Now().Add(-time.Hour),
	}
}

func auctionListing() *listing.Listing {
	l := fixedPriceListing()
	l.Type = listing.TypeTimeLimitedWinnerTakeAllAuction
	l.ReservePrice = "150"
	return l
}

func evenSplit(amount int64) *royalty.Distribution {
	return &royalty.Distribution{
		Treasury:  royalty.Payout{Recipient: treasury, Amount: big.NewInt(amount / 10)},
		Royalties: []royalty.Payout{},
		Seller:    royalty.Payout{Recipient: seller, Amount: big.NewInt(amount - amount/10)},
	}
}

func TestCreateListing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	l := fixedPriceListing()
	m.expectSettings(250)
	m.expectAcceptedPayToken()
	m.assetLedger.On("IsAsset", mock.Anything, domain.ChainId(1), collection).Return(true, nil).Once()
	m.registry.On("IsRegistered", mock.Anything, domain.ChainId(1), collection).Return(true, nil).Once()
	m.assetLedger.On("Transfer", mock.Anything, domain.ChainId(1), collection, seller, operator, domain.TokenId("1"), big.NewInt(1)).Return(nil).Once()
	m.listingRepo.On("Insert", mock.Anything, l).Return(nil).Once()
	m.expectEvent(listing.EventListingCreated)

	req.NoError(uc.CreateListing(c, l))
	req.Equal(listing.StatusActive, l.Status)
	req.False(l.CreatedAt.IsZero())
}

func TestCreateListingUnacceptedPayToken(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	m.expectSettings(250)
	m.paytokenRepo.On("FindOne", mock.Anything, domain.ChainId(1), weth).
		Return(&domain.PayToken{ChainId: 1, Address: weth, Accepted: false}, nil).Once()

	req.Equal(domain.ErrInvalidPayToken, uc.CreateListing(c, fixedPriceListing()))
}

func TestCreateListingUnknownPayToken(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	m.expectSettings(250)
	m.paytokenRepo.On("FindOne", mock.Anything, domain.ChainId(1), weth).
		Return(nil, domain.ErrNotFound).Once()

	req.Equal(domain.ErrInvalidPayToken, uc.CreateListing(c, fixedPriceListing()))
}

func TestCreateListingNotNftCollection(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	m.expectSettings(250)
	m.expectAcceptedPayToken()
	m.assetLedger.On("IsAsset", mock.Anything, domain.ChainId(1), collection).Return(false, nil).Once()

	req.Equal(domain.ErrNotNftCollection, uc.CreateListing(c, fixedPriceListing()))
}

func TestCreateListingUnregisteredCollection(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	m.expectSettings(250)
	m.expectAcceptedPayToken()
	m.assetLedger.On("IsAsset", mock.Anything, domain.ChainId(1), collection).Return(true, nil).Once()
	m.registry.On("IsRegistered", mock.Anything, domain.ChainId(1), collection).Return(false, nil).Once()

	req.Equal(domain.ErrInvalidListing, uc.CreateListing(c, fixedPriceListing()))
}

func TestPurchaseFixedPriceListing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	l := fixedPriceListing()
	m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	m.payment.On("TransferFrom", mock.Anything, domain.ChainId(1), weth, buyer, operator, big.NewInt(100)).Return(nil).Once()
	m.expectSettings(1000)
	m.distributor.On("Distribute", mock.Anything, l, big.NewInt(100), int64(1000), treasury).
		Return(evenSplit(100), nil).Once()
	m.payment.On("Transfer", mock.Anything, domain.ChainId(1), weth, treasury, big.NewInt(10)).Return(nil).Once()
	m.payment.On("Transfer", mock.Anything, domain.ChainId(1), weth, seller, big.NewInt(90)).Return(nil).Once()
	m.assetLedger.On("Transfer", mock.Anything, domain.ChainId(1), collection, operator, buyer, domain.TokenId("1"), big.NewInt(1)).Return(nil).Once()
	m.listingRepo.On("Update", mock.Anything, l.ToId(), mock.MatchedBy(func(p listing.Patchable) bool {
		return p.Status != nil && *p.Status == listing.StatusSettled
	})).Return(nil).Once()
	m.expectAcceptedPayToken()
	m.expectEvent(listing.EventListingPurchased)

	req.NoError(uc.PurchaseListing(c, l.ToId(), buyer, 1))
}

func TestPurchaseInventoriedKeepsRemainingActive(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	l := fixedPriceListing()
	l.Type = listing.TypeInventoriedFixedPrice
	l.Quantity = 5

	m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	m.payment.On("TransferFrom", mock.Anything, domain.ChainId(1), weth, buyer, operator, big.NewInt(200)).Return(nil).Once()
	m.expectSettings(0)
	m.distributor.On("Distribute", mock.Anything, l, big.NewInt(200), int64(0), treasury).
		Return(&royalty.Distribution{
			Treasury:  royalty.Payout{Recipient: treasury, Amount: big.NewInt(0)},
			Royalties: []royalty.Payout{},
			Seller:    royalty.Payout{Recipient: seller, Amount: big.NewInt(200)},
		}, nil).Once()
	m.payment.On("Transfer", mock.Anything, domain.ChainId(1), weth, seller, big.NewInt(200)).Return(nil).Once()
	m.assetLedger.On("Transfer", mock.Anything, domain.ChainId(1), collection, operator, buyer, domain.TokenId("1"), big.NewInt(2)).Return(nil).Once()
	m.listingRepo.On("Update", mock.Anything, l.ToId(), mock.MatchedBy(func(p listing.Patchable) bool {
		return p.Status != nil && *p.Status == listing.StatusActive && p.Quantity != nil && *p.Quantity == 3
	})).Return(nil).Once()
	m.expectAcceptedPayToken()
	m.expectEvent(listing.EventListingPurchased)

	req.NoError(uc.PurchaseListing(c, l.ToId(), buyer, 2))
}

func TestPurchaseGuards(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("seller cannot buy", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := fixedPriceListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrIsSeller, uc.PurchaseListing(c, l.ToId(), seller, 1))
	})

	t.Run("auction is not purchasable", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrNotForAuction, uc.PurchaseListing(c, l.ToId(), buyer, 1))
	})

	t.Run("cancelled listing", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := fixedPriceListing()
		l.Status = listing.StatusCancelled
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrInactiveListing, uc.PurchaseListing(c, l.ToId(), buyer, 1))
	})

	t.Run("oversized purchase", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := fixedPriceListing()
		l.Type = listing.TypeInventoriedFixedPrice
		l.Quantity = 2
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrInvalidQuantity, uc.PurchaseListing(c, l.ToId(), buyer, 3))
	})
}

func TestBid(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	l := auctionListing()
	m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(nil, nil).Once()
	m.escrow.On("Deposit", mock.Anything, l, bidder, big.NewInt(120)).Return(nil).Once()
	m.expectAcceptedPayToken()
	m.expectEvent(listing.EventBidUpdated)

	req.NoError(uc.Bid(c, l.ToId(), bidder, "120"))
}

func TestBidGuards(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("below starting price", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrTooLowBid, uc.Bid(c, l.ToId(), bidder, "99"))
	})

	t.Run("not above highest", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(&escrow.Bid{
			ChainId: 1, Seller: seller, ListingId: l.ListingId, Bidder: buyer, PayToken: weth, Amount: "120",
		}, nil).Once()
		req.Equal(domain.ErrLowerThanHighest, uc.Bid(c, l.ToId(), bidder, "120"))
	})

	t.Run("fixed price rejects bids", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := fixedPriceListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrOnlyForAuction, uc.Bid(c, l.ToId(), bidder, "120"))
	})

	t.Run("seller cannot bid", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrIsSeller, uc.Bid(c, l.ToId(), seller, "120"))
	})
}

func TestCompleteAuction(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	l := auctionListing()
	bid := &escrow.Bid{
		ChainId: 1, Seller: seller, ListingId: l.ListingId, Bidder: bidder, PayToken: weth, Amount: "200",
	}
	m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(bid, nil).Once()
	m.escrow.On("Release", mock.Anything, l.ToId()).Return(bid, nil).Once()
	m.expectSettings(1000)
	m.distributor.On("Distribute", mock.Anything, l, big.NewInt(200), int64(1000), treasury).
		Return(evenSplit(200), nil).Once()
	m.payment.On("Transfer", mock.Anything, domain.ChainId(1), weth, treasury, big.NewInt(20)).Return(nil).Once()
	m.payment.On("Transfer", mock.Anything, domain.ChainId(1), weth, seller, big.NewInt(180)).Return(nil).Once()
	m.assetLedger.On("Transfer", mock.Anything, domain.ChainId(1), collection, operator, bidder, domain.TokenId("1"), big.NewInt(1)).Return(nil).Once()
	m.listingRepo.On("Update", mock.Anything, l.ToId(), mock.MatchedBy(func(p listing.Patchable) bool {
		return p.Status != nil && *p.Status == listing.StatusSettled
	})).Return(nil).Once()
	m.expectAcceptedPayToken()
	m.expectEvent(listing.EventListingPurchased)

	req.NoError(uc.CompleteAuction(c, l.ToId(), seller))
}

func TestCompleteAuctionGuards(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("no active bid", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(nil, nil).Once()
		req.Equal(domain.ErrNoActiveBid, uc.CompleteAuction(c, l.ToId(), seller))
	})

	t.Run("below-reserve bid cannot settle before expiry", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		l.ExpireTime = time.Now().Add(time.Hour).Unix()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(&escrow.Bid{
			ChainId: 1, Seller: seller, ListingId: l.ListingId, Bidder: bidder, PayToken: weth, Amount: "120",
		}, nil).Once()
		req.Equal(domain.ErrTooLowBid, uc.CompleteAuction(c, l.ToId(), seller))
		m.escrow.AssertNotCalled(t, "Release", mock.Anything, l.ToId())
	})

	t.Run("already settled", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		l.Status = listing.StatusSettled
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrListingSettled, uc.CompleteAuction(c, l.ToId(), seller))
	})

	t.Run("outsider before expiry", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		l.ExpireTime = time.Now().Add(time.Hour).Unix()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrNotSeller, uc.CompleteAuction(c, l.ToId(), bidder))
	})

	t.Run("winning bidder cannot settle", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		l.ExpireTime = time.Now().Add(-time.Hour).Unix()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrNotSeller, uc.CompleteAuction(c, l.ToId(), bidder))
	})

	t.Run("seller settles below-reserve bid after expiry", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		l.ExpireTime = time.Now().Add(-time.Hour).Unix()
		bid := &escrow.Bid{
			ChainId: 1, Seller: seller, ListingId: l.ListingId, Bidder: bidder, PayToken: weth, Amount: "120",
		}
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(bid, nil).Once()
		m.escrow.On("Release", mock.Anything, l.ToId()).Return(bid, nil).Once()
		m.expectSettings(0)
		m.distributor.On("Distribute", mock.Anything, l, big.NewInt(120), int64(0), treasury).
			Return(&royalty.Distribution{
				Treasury:  royalty.Payout{Recipient: treasury, Amount: big.NewInt(0)},
				Royalties: []royalty.Payout{},
				Seller:    royalty.Payout{Recipient: seller, Amount: big.NewInt(120)},
			}, nil).Once()
		m.payment.On("Transfer", mock.Anything, domain.ChainId(1), weth, seller, big.NewInt(120)).Return(nil).Once()
		m.assetLedger.On("Transfer", mock.Anything, domain.ChainId(1), collection, operator, bidder, domain.TokenId("1"), big.NewInt(1)).Return(nil).Once()
		m.listingRepo.On("Update", mock.Anything, l.ToId(), mock.Anything).Return(nil).Once()
		m.expectAcceptedPayToken()
		m.expectEvent(listing.EventListingPurchased)

		req.NoError(uc.CompleteAuction(c, l.ToId(), seller))
	})
}

func TestCancelListing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("seller cancels fixed price", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := fixedPriceListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		m.assetLedger.On("Transfer", mock.Anything, domain.ChainId(1), collection, operator, seller, domain.TokenId("1"), big.NewInt(1)).Return(nil).Once()
		m.listingRepo.On("Update", mock.Anything, l.ToId(), mock.MatchedBy(func(p listing.Patchable) bool {
			return p.Status != nil && *p.Status == listing.StatusCancelled
		})).Return(nil).Once()
		m.expectEvent(listing.EventListingCancelled)

		req.NoError(uc.CancelListing(c, l.ToId(), seller))
	})

	t.Run("only seller may cancel", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := fixedPriceListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		req.Equal(domain.ErrNotSeller, uc.CancelListing(c, l.ToId(), buyer))
	})

	t.Run("reserve-meeting bid blocks cancel", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(&escrow.Bid{
			ChainId: 1, Seller: seller, ListingId: l.ListingId, Bidder: bidder, PayToken: weth, Amount: "150",
		}, nil).Once()
		req.Equal(domain.ErrValidBidExists, uc.CancelListing(c, l.ToId(), seller))
	})

	t.Run("low bid is refunded on cancel", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		l := auctionListing()
		m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
		m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(&escrow.Bid{
			ChainId: 1, Seller: seller, ListingId: l.ListingId, Bidder: bidder, PayToken: weth, Amount: "120",
		}, nil).Once()
		m.escrow.On("Refund", mock.Anything, l.ToId()).Return(nil).Once()
		m.assetLedger.On("Transfer", mock.Anything, domain.ChainId(1), collection, operator, seller, domain.TokenId("1"), big.NewInt(1)).Return(nil).Once()
		m.listingRepo.On("Update", mock.Anything, l.ToId(), mock.Anything).Return(nil).Once()
		m.expectEvent(listing.EventListingCancelled)

		req.NoError(uc.CancelListing(c, l.ToId(), seller))
	})
}

func TestRaffleWithoutDrawer(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	l := fixedPriceListing()
	l.Type = listing.TypeTimeLimitedPricePerTicketRaffle
	m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()

	req.Equal(domain.ErrNotImplemented, uc.CompleteAuction(c, l.ToId(), seller))
}

func TestRaffleSettlesThroughDrawer(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)
	drawer := mListing.NewRaffleDrawer(t)
	uc = NewListingUseCase(&ListingUseCaseCfg{
		ListingRepo:  m.listingRepo,
		EventRepo:    m.eventRepo,
		PayTokenRepo: m.paytokenRepo,
		ConfigRepo:   m.configRepo,
		AssetLedger:  m.assetLedger,
		Registry:     m.registry,
		Escrow:       m.escrow,
		Payment:      m.payment,
		Distributor:  m.distributor,
		Drawer:       drawer,
		Operator:     operator,
	})

	l := fixedPriceListing()
	l.Type = listing.TypeTimeLimitedPricePerTicketRaffle
	winner := bidder

	m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()
	drawer.On("DrawWinner", mock.Anything, l).Return(winner, nil).Once()
	m.escrow.On("HighestBid", mock.Anything, l.ToId()).Return(nil, nil).Once()
	m.assetLedger.On("Transfer", mock.Anything, domain.ChainId(1), collection, operator, winner, domain.TokenId("1"), big.NewInt(1)).Return(nil).Once()
	m.listingRepo.On("Update", mock.Anything, l.ToId(), mock.MatchedBy(func(p listing.Patchable) bool {
		return p.Status != nil && *p.Status == listing.StatusSettled
	})).Return(nil).Once()
	m.expectEvent(listing.EventListingPurchased)

	req.NoError(uc.CompleteAuction(c, l.ToId(), seller))
}

func TestRaffleOnlySellerSettles(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	_, m := newTestUseCase(t)
	drawer := mListing.NewRaffleDrawer(t)
	uc := NewListingUseCase(&ListingUseCaseCfg{
		ListingRepo:  m.listingRepo,
		EventRepo:    m.eventRepo,
		PayTokenRepo: m.paytokenRepo,
		ConfigRepo:   m.configRepo,
		AssetLedger:  m.assetLedger,
		Registry:     m.registry,
		Escrow:       m.escrow,
		Payment:      m.payment,
		Distributor:  m.distributor,
		Drawer:       drawer,
		Operator:     operator,
	})

	l := fixedPriceListing()
	l.Type = listing.TypeTimeLimited1OfNWinningTicketsRaffle
	m.listingRepo.On("FindOne", mock.Anything, l.ToId()).Return(l, nil).Once()

	req.Equal(domain.ErrNotSeller, uc.CompleteAuction(c, l.ToId(), bidder))
}
