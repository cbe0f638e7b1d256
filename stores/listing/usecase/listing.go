package usecase

import (
	"math/big"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/escrow"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/hinatamarket/goapi/domain/marketplace"
	"github.com/hinatamarket/goapi/domain/royalty"
)

type ListingUseCaseCfg struct {
	ListingRepo  listing.Repo
	EventRepo    listing.EventRepo
	PayTokenRepo domain.PayTokenRepo
	ConfigRepo   marketplace.ConfigRepo
	AssetLedger  domain.AssetLedger
	Registry     domain.CollectionRegistry
	Escrow       escrow.Ledger
	Payment      domain.PaymentToken
	Distributor  royalty.Distributor
	// Drawer may be nil; raffle settlement then returns not implemented
	Drawer   listing.RaffleDrawer
	Operator domain.Address
}

type impl struct {
	listingRepo  listing.Repo
	eventRepo    listing.EventRepo
	paytokenRepo domain.PayTokenRepo
	configRepo   marketplace.ConfigRepo
	assetLedger  domain.AssetLedger
	registry     domain.CollectionRegistry
	escrow       escrow.Ledger
	payment      domain.PaymentToken
	distributor  royalty.Distributor
	drawer       listing.RaffleDrawer
	operator     domain.Address
}

func NewListingUseCase(cfg *ListingUseCaseCfg) listing.UseCase {
	return &impl{
		listingRepo:  cfg.ListingRepo,
		eventRepo:    cfg.EventRepo,
		paytokenRepo: cfg.PayTokenRepo,
		configRepo:   cfg.ConfigRepo,
		assetLedger:  cfg.AssetLedger,
		registry:     cfg.Registry,
		escrow:       cfg.Escrow,
		payment:      cfg.Payment,
		distributor:  cfg.Distributor,
		drawer:       cfg.Drawer,
		operator:     cfg.Operator,
	}
}

func (im *impl) CreateListing(c ctx.Ctx, l *listing.Listing) error {
	l.LowerCase()
	settings := im.getSettings(c, l.ChainId)
	if err := l.Validate(settings.LimitCount); err != nil {
		return err
	}

	payToken, err := im.paytokenRepo.FindOne(c, l.ChainId, l.PayToken)
	if err == domain.ErrNotFound {
		return domain.ErrInvalidPayToken
	} else if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("paytokenRepo.FindOne failed")
		return err
	}
	if !payToken.Accepted {
		return domain.ErrInvalidPayToken
	}

	checked := map[domain.Address]bool{}
	for _, collection := range l.Collections {
		if checked[collection] {
			continue
		}
		checked[collection] = true
		if ok, err := im.assetLedger.IsAsset(c, l.ChainId, collection); err != nil {
			c.WithFields(log.Fields{"err": err, "collection": collection}).Error("assetLedger.IsAsset failed")
			return err
		} else if !ok {
			return domain.ErrNotNftCollection
		}
		if ok, err := im.registry.IsRegistered(c, l.ChainId, collection); err != nil {
			c.WithFields(log.Fields{"err": err, "collection": collection}).Error("registry.IsRegistered failed")
			return err
		} else if !ok {
			return domain.ErrInvalidListing
		}
	}

	// assets move into engine custody for the life of the listing
	for i := range l.Collections {
		amount := im.lockAmount(l, i)
		if err := im.assetLedger.Transfer(c, l.ChainId, l.Collections[i], l.Seller, im.operator, l.AssetIds[i], amount); err != nil {
			c.WithFields(log.Fields{"err": err, "collection": l.Collections[i]}).Error("assetLedger.Transfer failed")
			return err
		}
	}

	now := time.Now().UTC()
	l.Status = listing.StatusActive
	l.CreatedAt = now
	l.UpdatedAt = now
	if err := im.listingRepo.Insert(c, l); err != nil {
		c.WithFields(log.Fields{"err": err}).Error("listingRepo.Insert failed")
		return err
	}

	im.emitEvent(c, &listing.Event{
		ChainId:   l.ChainId,
		Type:      listing.EventListingCreated,
		ListingId: l.ListingId,
		Seller:    l.Seller,
		PayToken:  l.PayToken,
		Amount:    l.Price,
		Quantity:  l.Quantity,
	}, payToken)
	return nil
}

func (im *impl) CancelListing(c ctx.Ctx, id listing.Id, caller domain.Address) error {
	l, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if l.Status != listing.StatusActive {
		return domain.ErrInactiveListing
	}
	if !caller.Equals(l.Seller) {
		return domain.ErrNotSeller
	}

	if l.Type.IsAuction() {
		bid, err := im.escrow.HighestBid(c, id)
		if err != nil {
			return err
		}
		if bid != nil {
			amount, err := bid.AmountBig()
			if err != nil {
				return err
			}
			// a bid meeting the reserve locks the seller in
			if amount.Cmp(l.ReservePriceBig()) >= 0 {
				return domain.ErrValidBidExists
			}
			if err := im.escrow.Refund(c, id); err != nil {
				return err
			}
		}
	}

	if err := im.returnAssets(c, l); err != nil {
		return err
	}
	if err := im.patchStatus(c, id, listing.StatusCancelled, nil); err != nil {
		return err
	}

	im.emitEvent(c, &listing.Event{
		ChainId:   l.ChainId,
		Type:      listing.EventListingCancelled,
		ListingId: l.ListingId,
		Seller:    l.Seller,
		Account:   caller.ToLower(),
	}, nil)
	return nil
}

func (im *impl) PurchaseListing(c ctx.Ctx, id listing.Id, buyer domain.Address, units int64) error {
	l, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if l.Status != listing.StatusActive {
		return domain.ErrInactiveListing
	}
	if !l.Type.IsPurchasable() {
		return domain.ErrNotForAuction
	}
	if buyer.Equals(l.Seller) {
		return domain.ErrIsSeller
	}
	now := time.Now().UTC()
	if !l.IsActiveAt(now) {
		return domain.ErrInactiveListing
	}

	if l.Type == listing.TypeFixedPrice {
		if units != 1 {
			return domain.ErrInvalidQuantity
		}
	} else if units < 1 || units > l.Quantity {
		return domain.ErrInvalidQuantity
	}

	total := new(big.Int).Mul(l.PriceBig(), big.NewInt(units))
	buyer = buyer.ToLower()
	if err := im.payment.TransferFrom(c, l.ChainId, l.PayToken, buyer, im.operator, total); err != nil {
		c.WithFields(log.Fields{"err": err, "buyer": buyer}).Error("payment.TransferFrom failed")
		return err
	}
	if err := im.settleFunds(c, l, total); err != nil {
		return err
	}

	// fixed price transfers the whole bundle, inventoried listings
	// transfer units bundles
	bundles := units
	if l.Type == listing.TypeFixedPrice {
		bundles = 1
	}
	for i := range l.Collections {
		amount := new(big.Int).Mul(big.NewInt(l.AssetAmounts[i]), big.NewInt(bundles))
		if err := im.assetLedger.Transfer(c, l.ChainId, l.Collections[i], im.operator, buyer, l.AssetIds[i], amount); err != nil {
			c.WithFields(log.Fields{"err": err, "collection": l.Collections[i]}).Error("assetLedger.Transfer failed")
			return err
		}
	}

	if l.Type == listing.TypeInventoriedFixedPrice && l.Quantity-units > 0 {
		remaining := l.Quantity - units
		if err := im.patchStatus(c, id, listing.StatusActive, &remaining); err != nil {
			return err
		}
	} else {
		zero := int64(0)
		if err := im.patchStatus(c, id, listing.StatusSettled, &zero); err != nil {
			return err
		}
	}

	payToken, _ := im.paytokenRepo.FindOne(c, l.ChainId, l.PayToken)
	im.emitEvent(c, &listing.Event{
		ChainId:   l.ChainId,
		Type:      listing.EventListingPurchased,
		ListingId: l.ListingId,
		Seller:    l.Seller,
		Account:   buyer,
		PayToken:  l.PayToken,
		Amount:    total.String(),
		Quantity:  units,
	}, payToken)
	return nil
}

func (im *impl) Bid(c ctx.Ctx, id listing.Id, bidder domain.Address, amount string) error {
	l, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if l.Status != listing.StatusActive {
		return domain.ErrInactiveListing
	}
	if !l.Type.IsAuction() {
		return domain.ErrOnlyForAuction
	}
	if bidder.Equals(l.Seller) {
		return domain.ErrIsSeller
	}
	if !l.IsActiveAt(time.Now().UTC()) {
		return domain.ErrInactiveListing
	}

	nums, err := domain.ToBigInt([]string{amount})
	if err != nil {
		return err
	}
	amt := nums[0]
	if amt.Cmp(l.PriceBig()) < 0 {
		return domain.ErrTooLowBid
	}

	highest, err := im.escrow.HighestBid(c, id)
	if err != nil {
		return err
	}
	if highest != nil {
		prev, err := highest.AmountBig()
		if err != nil {
			return err
		}
		if amt.Cmp(prev) <= 0 {
			return domain.ErrLowerThanHighest
		}
	}

	if err := im.escrow.Deposit(c, l, bidder.ToLower(), amt); err != nil {
		return err
	}

	payToken, _ := im.paytokenRepo.FindOne(c, l.ChainId, l.PayToken)
	im.emitEvent(c, &listing.Event{
		ChainId:   l.ChainId,
		Type:      listing.EventBidUpdated,
		ListingId: l.ListingId,
		Seller:    l.Seller,
		Account:   bidder.ToLower(),
		PayToken:  l.PayToken,
		Amount:    amt.String(),
	}, payToken)
	return nil
}

func (im *impl) CompleteAuction(c ctx.Ctx, id listing.Id, caller domain.Address) error {
	l, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return err
	}
	if l.Status == listing.StatusSettled {
		return domain.ErrListingSettled
	}
	if l.Status != listing.StatusActive {
		return domain.ErrInactiveListing
	}
	if l.Type.IsRaffle() {
		return im.settleRaffle(c, l, caller)
	}
	if !l.Type.IsAuction() {
		return domain.ErrOnlyForAuction
	}

	now := time.Now().UTC()
	caller = caller.ToLower()
	if !caller.Equals(l.Seller) {
		return domain.ErrNotSeller
	}

	highest, err := im.escrow.HighestBid(c, id)
	if err != nil {
		return err
	}
	if highest == nil {
		return domain.ErrNoActiveBid
	}
	// before the deadline the seller may only take a bid meeting the reserve
	if !l.IsExpiredAt(now) {
		amt, err := highest.AmountBig()
		if err != nil {
			return err
		}
		if amt.Cmp(l.ReservePriceBig()) < 0 {
			return domain.ErrTooLowBid
		}
	}

	bid, err := im.escrow.Release(c, id)
	if err != nil {
		return err
	}
	amount, err := bid.AmountBig()
	if err != nil {
		return err
	}
	if err := im.settleFunds(c, l, amount); err != nil {
		return err
	}
	if err := im.transferAssets(c, l, bid.Bidder); err != nil {
		return err
	}
	if err := im.patchStatus(c, id, listing.StatusSettled, nil); err != nil {
		return err
	}

	payToken, _ := im.paytokenRepo.FindOne(c, l.ChainId, l.PayToken)
	im.emitEvent(c, &listing.Event{
		ChainId:   l.ChainId,
		Type:      listing.EventListingPurchased,
		ListingId: l.ListingId,
		Seller:    l.Seller,
		Account:   bid.Bidder,
		PayToken:  l.PayToken,
		Amount:    bid.Amount,
	}, payToken)
	return nil
}

func (im *impl) settleRaffle(c ctx.Ctx, l *listing.Listing, caller domain.Address) error {
	if im.drawer == nil {
		return domain.ErrNotImplemented
	}
	if !caller.Equals(l.Seller) {
		return domain.ErrNotSeller
	}

	winner, err := im.drawer.DrawWinner(c, l)
	if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("drawer.DrawWinner failed")
		return err
	}
	// the raffle pot, when one exists, settles like a winning bid
	if bid, err := im.escrow.HighestBid(c, l.ToId()); err != nil {
		return err
	} else if bid != nil {
		if _, err := im.escrow.Release(c, l.ToId()); err != nil {
			return err
		}
		amount, err := bid.AmountBig()
		if err != nil {
			return err
		}
		if err := im.settleFunds(c, l, amount); err != nil {
			return err
		}
	}
	if err := im.transferAssets(c, l, winner.ToLower()); err != nil {
		return err
	}
	if err := im.patchStatus(c, l.ToId(), listing.StatusSettled, nil); err != nil {
		return err
	}

	im.emitEvent(c, &listing.Event{
		ChainId:   l.ChainId,
		Type:      listing.EventListingPurchased,
		ListingId: l.ListingId,
		Seller:    l.Seller,
		Account:   winner.ToLower(),
		PayToken:  l.PayToken,
	}, nil)
	return nil
}

// settleFunds splits amount between treasury, royalties and seller. All
// payouts draw on the operator balance, which already holds the funds.
func (im *impl) settleFunds(c ctx.Ctx, l *listing.Listing, amount *big.Int) error {
	settings := im.getSettings(c, l.ChainId)
	dist, err := im.distributor.Distribute(c, l, amount, settings.MarketFeeBps, settings.Treasury)
	if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("distributor.Distribute failed")
		return err
	}

	payouts := append([]royalty.Payout{dist.Treasury}, dist.Royalties...)
	payouts = append(payouts, dist.Seller)
	for _, p := range payouts {
		if p.Amount.Sign() == 0 || p.Recipient.IsEmpty() {
			continue
		}
		if err := im.payment.Transfer(c, l.ChainId, l.PayToken, p.Recipient, p.Amount); err != nil {
			c.WithFields(log.Fields{"err": err, "recipient": p.Recipient}).Error("payment.Transfer failed")
			return err
		}
	}
	return nil
}

// lockAmount is the custody amount for asset i, covering every inventoried
// bundle up front.
func (im *impl) lockAmount(l *listing.Listing, i int) *big.Int {
	bundles := l.Quantity
	if bundles < 1 {
		bundles = 1
	}
	return new(big.Int).Mul(big.NewInt(l.AssetAmounts[i]), big.NewInt(bundles))
}

func (im *impl) returnAssets(c ctx.Ctx, l *listing.Listing) error {
	for i := range l.Collections {
		amount := im.lockAmount(l, i)
		if err := im.assetLedger.Transfer(c, l.ChainId, l.Collections[i], im.operator, l.Seller, l.AssetIds[i], amount); err != nil {
			c.WithFields(log.Fields{"err": err, "collection": l.Collections[i]}).Error("assetLedger.Transfer failed")
			return err
		}
	}
	return nil
}

func (im *impl) transferAssets(c ctx.Ctx, l *listing.Listing, to domain.Address) error {
	for i := range l.Collections {
		amount := im.lockAmount(l, i)
		if err := im.assetLedger.Transfer(c, l.ChainId, l.Collections[i], im.operator, to, l.AssetIds[i], amount); err != nil {
			c.WithFields(log.Fields{"err": err, "collection": l.Collections[i]}).Error("assetLedger.Transfer failed")
			return err
		}
	}
	return nil
}

func (im *impl) patchStatus(c ctx.Ctx, id listing.Id, status listing.Status, quantity *int64) error {
	now := time.Now().UTC()
	patch := listing.Patchable{Status: &status, UpdatedAt: &now, Quantity: quantity}
	if err := im.listingRepo.Update(c, id, patch); err != nil {
		c.WithFields(log.Fields{"err": err}).Error("listingRepo.Update failed")
		return err
	}
	return nil
}

func (im *impl) getSettings(c ctx.Ctx, chainId domain.ChainId) *marketplace.Settings {
	settings, err := im.configRepo.FindOne(c, chainId)
	if err == domain.ErrNotFound {
		return &marketplace.Settings{ChainId: chainId, Treasury: domain.EmptyAddress}
	} else if err != nil {
		c.WithFields(log.Fields{"err": err}).Warn("configRepo.FindOne failed")
		return &marketplace.Settings{ChainId: chainId, Treasury: domain.EmptyAddress}
	}
	return settings
}

// emitEvent records a state transition. Event persistence is best effort
// and never fails the triggering operation.
func (im *impl) emitEvent(c ctx.Ctx, e *listing.Event, payToken *domain.PayToken) {
	if id, err := uuid.NewRandom(); err != nil {
		c.WithField("err", err).Error("failed to uuid.NewRandom")
	} else {
		e.Id = id.String()
	}
	e.Time = time.Now().UTC()
	if e.Amount != "" && payToken != nil {
		if amt, ok := new(big.Int).SetString(e.Amount, 10); ok {
			e.DisplayAmount = decimal.NewFromBigInt(amt, -payToken.TokenDecimals).String()
		}
	}
	if err := im.eventRepo.Insert(c, e); err != nil {
		c.WithFields(log.Fields{"err": err, "type": e.Type}).Error("eventRepo.Insert failed")
	}
}
