package usecase

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/escrow"
	mEscrow "github.com/hinatamarket/goapi/domain/escrow/mocks"
	"github.com/hinatamarket/goapi/domain/listing"
	mDomain "github.com/hinatamarket/goapi/domain/mocks"
)

var (
	operator = domain.Address("0x9f35b1c5f0e3d4a2b6c7d8e9f0a1b2c3d4e5f6a7")
	seller   = domain.Address("0xe8e1f0ea88251723d4425b680124d8daaf26e74f")
	bidder1  = domain.Address("0xce4468e7ce84aceb74363f4ea64e5a038176f369")
	bidder2  = domain.Address("0xdf8650b0ca1260f7a2f4fdff9082aede554f65ad")
	weth     = domain.Address("0xb4fbf271143f4fbf7b91a5ded31805e42b2208d6")
)

func makeAuctionListing() *listing.Listing {
	return &listing.Listing{
		ChainId:   1,
		ListingId: "listing-1",
		Seller:    seller,
		PayToken:  weth,
		Type:      listing.TypeTimeLimitedWinnerTakeAllAuction,
		Status:    listing.StatusActive,
	}
}

func TestDepositFirstBid(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := mEscrow.NewRepo(t)
	payment := mDomain.NewPaymentToken(t)
	ledger := NewEscrowLedger(repo, payment, operator)

	l := makeAuctionListing()
	amount := big.NewInt(1000)

	repo.On("FindOne", mock.Anything, l.ToId()).Return(nil, domain.ErrNotFound).Once()
	payment.On("TransferFrom", mock.Anything, l.ChainId, weth, bidder1, operator, amount).Return(nil).Once()
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *escrow.Bid) bool {
		return b.Bidder == bidder1 && b.Amount == "1000" && b.ListingId == l.ListingId
	})).Return(nil).Once()

	req.NoError(ledger.Deposit(c, l, bidder1, amount))
}

func TestDepositRefundsOutbidBidder(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := mEscrow.NewRepo(t)
	payment := mDomain.NewPaymentToken(t)
	ledger := NewEscrowLedger(repo, payment, operator)

	l := makeAuctionListing()
	prev := &escrow.Bid{
		ChainId:   l.ChainId,
		Seller:    l.Seller,
		ListingId: l.ListingId,
		Bidder:    bidder1,
		PayToken:  weth,
		Amount:    "1000",
	}
	amount := big.NewInt(1500)

	repo.On("FindOne", mock.Anything, l.ToId()).Return(prev, nil).Once()
	payment.On("TransferFrom", mock.Anything, l.ChainId, weth, bidder2, operator, amount).Return(nil).Once()
	payment.On("Transfer", mock.Anything, l.ChainId, weth, bidder1, big.NewInt(1000)).Return(nil).Once()
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(b *escrow.Bid) bool {
		return b.Bidder == bidder2 && b.Amount == "1500"
	})).Return(nil).Once()

	req.NoError(ledger.Deposit(c, l, bidder2, amount))
}

func TestRefund(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := mEscrow.NewRepo(t)
	payment := mDomain.NewPaymentToken(t)
	ledger := NewEscrowLedger(repo, payment, operator)

	l := makeAuctionListing()
	bid := &escrow.Bid{
		ChainId:   l.ChainId,
		Seller:    l.Seller,
		ListingId: l.ListingId,
		Bidder:    bidder1,
		PayToken:  weth,
		Amount:    "1000",
	}

	repo.On("FindOne", mock.Anything, l.ToId()).Return(bid, nil).Once()
	payment.On("Transfer", mock.Anything, l.ChainId, weth, bidder1, big.NewInt(1000)).Return(nil).Once()
	repo.On("Remove", mock.Anything, l.ToId()).Return(nil).Once()

	req.NoError(ledger.Refund(c, l.ToId()))
}

func TestRefundWithoutLiveBidIsNoop(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := mEscrow.NewRepo(t)
	payment := mDomain.NewPaymentToken(t)
	ledger := NewEscrowLedger(repo, payment, operator)

	l := makeAuctionListing()
	repo.On("FindOne", mock.Anything, l.ToId()).Return(nil, domain.ErrNotFound).Once()

	req.NoError(ledger.Refund(c, l.ToId()))
	payment.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRelease(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := mEscrow.NewRepo(t)
	payment := mDomain.NewPaymentToken(t)
	ledger := NewEscrowLedger(repo, payment, operator)

	l := makeAuctionListing()
	bid := &escrow.Bid{
		ChainId:   l.ChainId,
		Seller:    l.Seller,
		ListingId: l.ListingId,
		Bidder:    bidder1,
		PayToken:  weth,
		Amount:    "1000",
	}

	repo.On("FindOne", mock.Anything, l.ToId()).Return(bid, nil).Once()
	repo.On("Remove", mock.Anything, l.ToId()).Return(nil).Once()

	got, err := ledger.Release(c, l.ToId())
	req.NoError(err)
	req.Equal(bidder1, got.Bidder)

	// escrowed funds stay with the operator on release
	payment.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReleaseWithoutLiveBid(t *testing.T) {
	req := require.New(t)
	c := ctx.Background()
	repo := mEscrow.NewRepo(t)
	payment := mDomain.NewPaymentToken(t)
	ledger := NewEscrowLedger(repo, payment, operator)

	l := makeAuctionListing()
	repo.On("FindOne", mock.Anything, l.ToId()).Return(nil, domain.ErrNotFound).Once()

	_, err := ledger.Release(c, l.ToId())
	req.Equal(domain.ErrNoActiveBid, err)
}
