package usecase

import (
	"math/big"
	"time"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/escrow"
	"github.com/hinatamarket/goapi/domain/listing"
)

type ledgerImpl struct {
	repo     escrow.Repo
	payment  domain.PaymentToken
	operator domain.Address
}

// NewEscrowLedger wires the bid escrow over the payment token mover. The
// operator address receives deposited funds and pays refunds.
func NewEscrowLedger(repo escrow.Repo, payment domain.PaymentToken, operator domain.Address) escrow.Ledger {
	return &ledgerImpl{
		repo:     repo,
		payment:  payment,
		operator: operator,
	}
}

func (im *ledgerImpl) HighestBid(c ctx.Ctx, id listing.Id) (*escrow.Bid, error) {
	bid, err := im.repo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	return bid, nil
}

func (im *ledgerImpl) Deposit(c ctx.Ctx, l *listing.Listing, bidder domain.Address, amount *big.Int) error {
	id := l.ToId()
	prev, err := im.HighestBid(c, id)
	if err != nil {
		return err
	}

	if err := im.payment.TransferFrom(c, l.ChainId, l.PayToken, bidder, im.operator, amount); err != nil {
		c.WithFields(log.Fields{"err": err, "bidder": bidder}).Error("payment.TransferFrom failed")
		return err
	}

	// the outbid funds go back before the new bid becomes the live one
	if prev != nil {
		prevAmount, err := prev.AmountBig()
		if err != nil {
			c.WithField("err", err).Error("prev.AmountBig failed")
			return err
		}
		if err := im.payment.Transfer(c, prev.ChainId, prev.PayToken, prev.Bidder, prevAmount); err != nil {
			c.WithFields(log.Fields{"err": err, "bidder": prev.Bidder}).Error("payment.Transfer failed")
			return err
		}
	}

	bid := &escrow.Bid{
		ChainId:   l.ChainId,
		Seller:    l.Seller,
		ListingId: l.ListingId,
		Bidder:    bidder.ToLower(),
		PayToken:  l.PayToken,
		Amount:    amount.String(),
		CreatedAt: time.Now().UTC(),
	}
	if err := im.repo.Upsert(c, bid); err != nil {
		c.WithField("err", err).Error("repo.Upsert failed")
		return err
	}
	return nil
}

func (im *ledgerImpl) Refund(c ctx.Ctx, id listing.Id) error {
	bid, err := im.repo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return err
	}

	amount, err := bid.AmountBig()
	if err != nil {
		c.WithField("err", err).Error("bid.AmountBig failed")
		return err
	}
	if err := im.payment.Transfer(c, bid.ChainId, bid.PayToken, bid.Bidder, amount); err != nil {
		c.WithFields(log.Fields{"err": err, "bidder": bid.Bidder}).Error("payment.Transfer failed")
		return err
	}
	if err := im.repo.Remove(c, id); err != nil {
		c.WithField("err", err).Error("repo.Remove failed")
		return err
	}
	return nil
}

func (im *ledgerImpl) Release(c ctx.Ctx, id listing.Id) (*escrow.Bid, error) {
	bid, err := im.repo.FindOne(c, id)
	if err == domain.ErrNotFound {
		return nil, domain.ErrNoActiveBid
	} else if err != nil {
		c.WithField("err", err).Error("repo.FindOne failed")
		return nil, err
	}
	if err := im.repo.Remove(c, id); err != nil {
		c.WithField("err", err).Error("repo.Remove failed")
		return nil, err
	}
	return bid, nil
}
