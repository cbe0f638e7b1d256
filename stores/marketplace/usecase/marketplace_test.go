package usecase

import (
	"testing"

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
	"github.com/hinatamarket/goapi/domain/order"
	mOrder "github.com/hinatamarket/goapi/domain/order/mocks"
)

var (
	seller = domain.Address("0xe8e1f0ea88251723d4425b680124d8daaf26e74f")
	bidder = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	admin  = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	weth   = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
)

type testMocks struct {
	listingUC    *mListing.UseCase
	listingRepo  *mListing.Repo
	eventRepo    *mListing.EventRepo
	configRepo   *mMarketplace.ConfigRepo
	paytokenRepo *mDomain.PayTokenRepo
	roleStore    *mDomain.RoleStore
	orderUC      *mOrder.UseCase
	escrowRepo   *mEscrow.Repo
}

func newTestUseCase(t *testing.T) (marketplace.UseCase, *testMocks) {
	m := &testMocks{
		listingUC:    mListing.NewUseCase(t),
		listingRepo:  mListing.NewRepo(t),
		eventRepo:    mListing.NewEventRepo(t),
		configRepo:   mMarketplace.NewConfigRepo(t),
		paytokenRepo: mDomain.NewPayTokenRepo(t),
		roleStore:    mDomain.NewRoleStore(t),
		orderUC:      mOrder.NewUseCase(t),
		escrowRepo:   mEscrow.NewRepo(t),
	}
	uc := NewMarketplaceUseCase(&MarketplaceUseCaseCfg{
		ListingUseCase: m.listingUC,
		ListingRepo:    m.listingRepo,
		EventRepo:      m.eventRepo,
		ConfigRepo:     m.configRepo,
		PayTokenRepo:   m.paytokenRepo,
		RoleStore:      m.roleStore,
		OrderUseCase:   m.orderUC,
		EscrowRepo:     m.escrowRepo,
	})
	return uc, m
}

func makeListingOrder() *order.ListingOrder {
	return &order.ListingOrder{
		ChainId:      1,
		Id:           "listing-1",
		Seller:       seller,
		PayToken:     weth,
		Price:        "100",
		ReservePrice: "100",
		StartTime:    "0",
		Duration:     "0",
		ExpireTime:   "0",
		Quantity:     "0",
		ListingType:  listing.TypeFixedPrice,
		Collections:  []domain.Address{"0x2b1870752208935fda32ab6a016c01a27877cf12"},
		AssetIds:     []domain.TokenId{"1"},
		AssetAmounts: []string{"1"},
		Nonce:        "1",
	}
}

func TestCreateSignedListing(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)
	o := makeListingOrder()

	m.orderUC.On("VerifyListingOrder", mock.Anything, o).Return(nil).Once()
	m.orderUC.On("IsNonceUsed", mock.Anything, domain.ChainId(1), seller, "1").Return(false, nil).Once()
	m.listingUC.On("CreateListing", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.ListingId == "listing-1" && l.Seller == seller && l.Type == listing.TypeFixedPrice
	})).Return(nil).Once()
	m.orderUC.On("ConsumeNonce", mock.Anything, domain.ChainId(1), seller, "1").Return(nil).Once()

	l, err := uc.CreateSignedListing(c, o)
	req.NoError(err)
	req.Equal("listing-1", l.ListingId)
}

func TestCreateSignedListingUsedNonce(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)
	o := makeListingOrder()

	m.orderUC.On("VerifyListingOrder", mock.Anything, o).Return(nil).Once()
	m.orderUC.On("IsNonceUsed", mock.Anything, domain.ChainId(1), seller, "1").Return(true, nil).Once()

	_, err := uc.CreateSignedListing(c, o)
	req.Equal(domain.ErrUsedSignature, err)
}

func TestCreateSignedListingBadSignature(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)
	o := makeListingOrder()

	m.orderUC.On("VerifyListingOrder", mock.Anything, o).Return(domain.ErrInvalidSignature).Once()

	_, err := uc.CreateSignedListing(c, o)
	req.Equal(domain.ErrInvalidSignature, err)
}

func TestSettleSignedSale(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	lo := makeListingOrder()
	bo := &order.BidOrder{
		ChainId:      1,
		Bidder:       bidder,
		ListingNonce: "1",
		Amount:       "100",
		Nonce:        "9",
	}
	existing := &listing.Listing{
		ChainId:   1,
		ListingId: "listing-1",
		Seller:    seller,
		PayToken:  weth,
		Type:      listing.TypeFixedPrice,
		Status:    listing.StatusActive,
	}

	m.orderUC.On("VerifyListingOrder", mock.Anything, lo).Return(nil).Once()
	m.orderUC.On("VerifyBidOrder", mock.Anything, bo).Return(nil).Once()
	m.listingRepo.On("FindOne", mock.Anything, existing.ToId()).Return(existing, nil).Once()
	m.orderUC.On("ConsumeNonce", mock.Anything, domain.ChainId(1), bidder, "9").Return(nil).Once()
	m.listingUC.On("PurchaseListing", mock.Anything, existing.ToId(), bidder, int64(1)).Return(nil).Once()

	req.NoError(uc.SettleSignedSale(c, lo, bo))
}

func TestSettleSignedSaleReleasesNonceOnGuardFailure(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	lo := makeListingOrder()
	lo.ListingType = listing.TypeTimeLimitedWinnerTakeAllAuction
	bo := &order.BidOrder{ChainId: 1, Bidder: bidder, ListingNonce: "1", Amount: "50", Nonce: "9"}
	existing := &listing.Listing{
		ChainId:   1,
		ListingId: "listing-1",
		Seller:    seller,
		PayToken:  weth,
		Price:     "100",
		Type:      listing.TypeTimeLimitedWinnerTakeAllAuction,
		Status:    listing.StatusActive,
	}

	m.orderUC.On("VerifyListingOrder", mock.Anything, lo).Return(nil).Once()
	m.orderUC.On("VerifyBidOrder", mock.Anything, bo).Return(nil).Once()
	m.listingRepo.On("FindOne", mock.Anything, existing.ToId()).Return(existing, nil).Once()
	m.orderUC.On("ConsumeNonce", mock.Anything, domain.ChainId(1), bidder, "9").Return(nil).Once()
	m.listingUC.On("Bid", mock.Anything, existing.ToId(), bidder, "50").Return(domain.ErrTooLowBid).Once()
	m.orderUC.On("ReleaseNonce", mock.Anything, domain.ChainId(1), bidder, "9").Return(nil).Once()

	req.Equal(domain.ErrTooLowBid, uc.SettleSignedSale(c, lo, bo))
}

func TestSettleSignedSaleNonceMismatch(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	lo := makeListingOrder()
	bo := &order.BidOrder{ChainId: 1, Bidder: bidder, ListingNonce: "2", Amount: "100", Nonce: "9"}

	m.orderUC.On("VerifyListingOrder", mock.Anything, lo).Return(nil).Once()
	m.orderUC.On("VerifyBidOrder", mock.Anything, bo).Return(nil).Once()

	req.Equal(domain.ErrInvalidSignature, uc.SettleSignedSale(c, lo, bo))
}

func TestSettleSignedSaleSellerCannotBuy(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	lo := makeListingOrder()
	bo := &order.BidOrder{ChainId: 1, Bidder: seller, ListingNonce: "1", Amount: "100", Nonce: "9"}

	m.orderUC.On("VerifyListingOrder", mock.Anything, lo).Return(nil).Once()
	m.orderUC.On("VerifyBidOrder", mock.Anything, bo).Return(nil).Once()

	req.Equal(domain.ErrIsSeller, uc.SettleSignedSale(c, lo, bo))
}

func TestSetMarketFee(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleAdmin, admin).Return(true, nil).Once()
	m.configRepo.On("Update", mock.Anything, domain.ChainId(1), mock.MatchedBy(func(p marketplace.SettingsPatchable) bool {
		return p.MarketFeeBps != nil && *p.MarketFeeBps == 250 && p.UpdatedAt != nil
	})).Return(nil).Once()
	m.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *listing.Event) bool {
		return e.Type == listing.EventMarketFeeChanged && e.Amount == "250"
	})).Return(nil).Once()

	req.NoError(uc.SetMarketFee(c, admin, 1, 250))
}

func TestSetMarketFeeSeedsSettings(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleAdmin, admin).Return(true, nil).Once()
	m.configRepo.On("Update", mock.Anything, domain.ChainId(1), mock.Anything).Return(domain.ErrNotFound).Once()
	m.configRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(s *marketplace.Settings) bool {
		return s.ChainId == domain.ChainId(1) && s.MarketFeeBps == 250
	})).Return(nil).Once()
	m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	req.NoError(uc.SetMarketFee(c, admin, 1, 250))
}

func TestSetMarketFeeGuards(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()

	t.Run("not an admin", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleAdmin, bidder).Return(false, nil).Once()
		m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleSuperAdmin, bidder).Return(false, nil).Once()
		req.Equal(domain.ErrNotOwner, uc.SetMarketFee(c, bidder, 1, 250))
	})

	t.Run("super admin falls through", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleAdmin, admin).Return(false, nil).Once()
		m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleSuperAdmin, admin).Return(true, nil).Once()
		m.configRepo.On("Update", mock.Anything, domain.ChainId(1), mock.Anything).Return(nil).Once()
		m.eventRepo.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()
		req.NoError(uc.SetMarketFee(c, admin, 1, 250))
	})

	t.Run("fee above denominator", func(t *testing.T) {
		uc, m := newTestUseCase(t)
		m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleAdmin, admin).Return(true, nil).Once()
		req.Equal(domain.ErrInvalidFee, uc.SetMarketFee(c, admin, 1, 10001))
	})
}

func TestSetAcceptPayToken(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	token := &domain.PayToken{ChainId: 1, Address: weth, Symbol: "WETH", TokenDecimals: 18}
	m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleAdmin, admin).Return(true, nil).Once()
	m.paytokenRepo.On("Upsert", mock.Anything, mock.MatchedBy(func(tk *domain.PayToken) bool {
		return tk.Address == weth && tk.Accepted
	})).Return(nil).Once()
	m.eventRepo.On("Insert", mock.Anything, mock.MatchedBy(func(e *listing.Event) bool {
		return e.Type == listing.EventPayTokenAccepted
	})).Return(nil).Once()

	req.NoError(uc.SetAcceptPayToken(c, admin, token, true))
}

func TestSetTreasuryRejectsEmpty(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	m.roleStore.On("HasRole", mock.Anything, domain.ChainId(1), domain.RoleAdmin, admin).Return(true, nil).Once()
	req.Equal(domain.ErrInvalidTreasury, uc.SetTreasury(c, admin, 1, domain.EmptyAddress))
}

func TestGetListingsAttachesHighestBid(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	fixed := &listing.Listing{
		ChainId:   1,
		ListingId: "fixed-1",
		Seller:    seller,
		Type:      listing.TypeFixedPrice,
		Status:    listing.StatusActive,
	}
	auction := &listing.Listing{
		ChainId:   1,
		ListingId: "auction-1",
		Seller:    seller,
		Type:      listing.TypeTimeLimitedWinnerTakeAllAuction,
		Status:    listing.StatusActive,
	}

	m.listingRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*listing.Listing{fixed, auction}, nil).Once()
	m.escrowRepo.On("FindOne", mock.Anything, auction.ToId()).Return(&escrow.Bid{
		ChainId:   1,
		ListingId: "auction-1",
		Bidder:    bidder,
		Amount:    "150",
	}, nil).Once()

	details, err := uc.GetListings(c, listing.WithChainId(1))
	req.NoError(err)
	req.Len(details, 2)
	for _, d := range details {
		if d.ListingId == "fixed-1" {
			req.Nil(d.HighestBid)
		} else {
			req.NotNil(d.HighestBid)
			req.Equal("150", d.HighestBid.Amount)
		}
	}
	m.escrowRepo.AssertNotCalled(t, "FindOne", mock.Anything, fixed.ToId())
}

func TestGetListingWithoutLiveBid(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	auction := &listing.Listing{
		ChainId:   1,
		ListingId: "auction-1",
		Seller:    seller,
		Type:      listing.TypeTiered1OfNAuction,
		Status:    listing.StatusActive,
	}

	m.listingRepo.On("FindOne", mock.Anything, auction.ToId()).Return(auction, nil).Once()
	m.escrowRepo.On("FindOne", mock.Anything, auction.ToId()).Return(nil, domain.ErrNotFound).Once()

	d, err := uc.GetListing(c, auction.ToId())
	req.NoError(err)
	req.Nil(d.HighestBid)
	req.Equal("auction-1", d.ListingId)
}

func TestGetSettingsWithoutCache(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	uc, m := newTestUseCase(t)

	m.configRepo.On("FindOne", mock.Anything, domain.ChainId(1)).Return(&marketplace.Settings{
		ChainId:      1,
		MarketFeeBps: 250,
	}, nil).Once()

	s, err := uc.GetSettings(c, 1)
	req.NoError(err)
	req.Equal(int64(250), s.MarketFeeBps)
}
