package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/viney-shih/goroutines"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/escrow"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/hinatamarket/goapi/domain/marketplace"
	"github.com/hinatamarket/goapi/domain/order"
	"github.com/hinatamarket/goapi/service/cache"
)

type MarketplaceUseCaseCfg struct {
	ListingUseCase listing.UseCase
	ListingRepo    listing.Repo
	EventRepo      listing.EventRepo
	ConfigRepo     marketplace.ConfigRepo
	PayTokenRepo   domain.PayTokenRepo
	RoleStore      domain.RoleStore
	OrderUseCase   order.UseCase
	EscrowRepo     escrow.Repo
	// SettingsCache may be nil; settings reads then always hit the repo
	SettingsCache cache.Service
}

type impl struct {
	listingUC     listing.UseCase
	listingRepo   listing.Repo
	eventRepo     listing.EventRepo
	configRepo    marketplace.ConfigRepo
	paytokenRepo  domain.PayTokenRepo
	roleStore     domain.RoleStore
	orderUC       order.UseCase
	escrowRepo    escrow.Repo
	settingsCache cache.Service
}

func NewMarketplaceUseCase(cfg *MarketplaceUseCaseCfg) marketplace.UseCase {
	return &impl{
		listingUC:     cfg.ListingUseCase,
		listingRepo:   cfg.ListingRepo,
		eventRepo:     cfg.EventRepo,
		configRepo:    cfg.ConfigRepo,
		paytokenRepo:  cfg.PayTokenRepo,
		roleStore:     cfg.RoleStore,
		orderUC:       cfg.OrderUseCase,
		escrowRepo:    cfg.EscrowRepo,
		settingsCache: cfg.SettingsCache,
	}
}

func (im *impl) CreateListing(c ctx.Ctx, l *listing.Listing) error {
	return im.listingUC.CreateListing(c, l)
}

func (im *impl) CancelListing(c ctx.Ctx, caller domain.Address, id listing.Id) error {
	return im.listingUC.CancelListing(c, id, caller)
}

func (im *impl) PurchaseListing(c ctx.Ctx, buyer domain.Address, id listing.Id, units int64) error {
	return im.listingUC.PurchaseListing(c, id, buyer, units)
}

func (im *impl) Bid(c ctx.Ctx, bidder domain.Address, id listing.Id, amount string) error {
	return im.listingUC.Bid(c, id, bidder, amount)
}

func (im *impl) CompleteAuction(c ctx.Ctx, caller domain.Address, id listing.Id) error {
	return im.listingUC.CompleteAuction(c, id, caller)
}

func (im *impl) CreateSignedListing(c ctx.Ctx, o *order.ListingOrder) (*listing.Listing, error) {
	if err := im.orderUC.VerifyListingOrder(c, o); err != nil {
		c.WithFields(log.Fields{"err": err}).Error("orderUC.VerifyListingOrder failed")
		return nil, err
	}
	if used, err := im.orderUC.IsNonceUsed(c, o.ChainId, o.Seller, o.Nonce); err != nil {
		return nil, err
	} else if used {
		return nil, domain.ErrUsedSignature
	}

	l, err := o.ToListing()
	if err != nil {
		return nil, err
	}
	if err := im.listingUC.CreateListing(c, l); err != nil {
		return nil, err
	}
	if err := im.orderUC.ConsumeNonce(c, o.ChainId, o.Seller, o.Nonce); err != nil {
		c.WithFields(log.Fields{"err": err}).Error("orderUC.ConsumeNonce failed")
		return nil, err
	}
	return l, nil
}

func (im *impl) SettleSignedSale(c ctx.Ctx, lo *order.ListingOrder, bo *order.BidOrder) error {
	if lo.ChainId != bo.ChainId {
		return domain.ErrInvalidChainId
	}
	if err := im.orderUC.VerifyListingOrder(c, lo); err != nil {
		return err
	}
	if err := im.orderUC.VerifyBidOrder(c, bo); err != nil {
		return err
	}
	// the bid must reference exactly the listing order it settles
	if bo.ListingNonce != lo.Nonce {
		return domain.ErrInvalidSignature
	}
	if bo.Bidder.Equals(lo.Seller) {
		return domain.ErrIsSeller
	}

	l, err := im.listingRepo.FindOne(c, listing.Id{ChainId: lo.ChainId, Seller: lo.Seller.ToLower(), ListingId: lo.Id})
	if err == domain.ErrNotFound {
		// off-chain listing never materialized; create it on the fly
		if l, err = im.CreateSignedListing(c, lo); err != nil {
			return err
		}
	} else if err != nil {
		return err
	}

	if err := im.orderUC.ConsumeNonce(c, bo.ChainId, bo.Bidder, bo.Nonce); err != nil {
		return err
	}
	// a nonce authorizes one successful settlement; a guard failure after
	// consumption must hand the signature back
	if err := im.settle(c, l, lo.Seller, bo); err != nil {
		if rerr := im.orderUC.ReleaseNonce(c, bo.ChainId, bo.Bidder, bo.Nonce); rerr != nil {
			c.WithFields(log.Fields{"err": rerr}).Error("orderUC.ReleaseNonce failed")
		}
		return err
	}
	return nil
}

func (im *impl) settle(c ctx.Ctx, l *listing.Listing, seller domain.Address, bo *order.BidOrder) error {
	if l.Type.IsAuction() {
		if err := im.listingUC.Bid(c, l.ToId(), bo.Bidder, bo.Amount); err != nil {
			return err
		}
		return im.listingUC.CompleteAuction(c, l.ToId(), seller)
	}
	return im.listingUC.PurchaseListing(c, l.ToId(), bo.Bidder, 1)
}

func (im *impl) GetListing(c ctx.Ctx, id listing.Id) (*marketplace.ListingDetail, error) {
	l, err := im.listingRepo.FindOne(c, id)
	if err != nil {
		return nil, err
	}
	return im.toDetail(c, l), nil
}

func (im *impl) GetListings(c ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*marketplace.ListingDetail, error) {
	ls, err := im.listingRepo.FindAll(c, opts...)
	if err != nil {
		return nil, err
	}
	details := make([]*marketplace.ListingDetail, len(ls))
	if len(ls) == 0 {
		return details, nil
	}

	// batch get live bids
	b := goroutines.NewBatch(10, goroutines.WithBatchSize(len(ls)))
	defer b.Close()
	for i := 0; i < len(ls); i++ {
		idx := i
		b.Queue(func() (interface{}, error) {
			details[idx] = im.toDetail(c, ls[idx])
			return nil, nil
		})
	}
	b.QueueComplete()
	for ret := range b.Results() {
		if ret.Error() != nil {
			c.WithField("err", ret.Error()).Error("get listing detail error result")
		}
	}
	return details, nil
}

func (im *impl) toDetail(c ctx.Ctx, l *listing.Listing) *marketplace.ListingDetail {
	d := &marketplace.ListingDetail{Listing: *l}
	if !l.Type.IsAuction() {
		return d
	}
	bid, err := im.escrowRepo.FindOne(c, l.ToId())
	if err == domain.ErrNotFound {
		return d
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "listingId": l.ListingId}).Error("escrowRepo.FindOne failed")
		return d
	}
	d.HighestBid = bid
	return d
}

func (im *impl) GetEvents(c ctx.Ctx, opts ...listing.EventFindAllOptionsFunc) ([]*listing.Event, error) {
	return im.eventRepo.FindAll(c, opts...)
}

func (im *impl) GetSettings(c ctx.Ctx, chainId domain.ChainId) (*marketplace.Settings, error) {
	if im.settingsCache == nil {
		return im.configRepo.FindOne(c, chainId)
	}
	settings := &marketplace.Settings{}
	key := fmt.Sprintf("%d", chainId)
	err := im.settingsCache.GetByFunc(c, key, settings, func() (interface{}, error) {
		return im.configRepo.FindOne(c, chainId)
	})
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func (im *impl) SetAcceptPayToken(c ctx.Ctx, caller domain.Address, token *domain.PayToken, accepted bool) error {
	if err := im.requireAdmin(c, token.ChainId, caller); err != nil {
		return err
	}
	if token.Address.IsEmpty() {
		return domain.ErrInvalidPayToken
	}

	token.Address = token.Address.ToLower()
	token.Accepted = accepted
	if err := im.paytokenRepo.Upsert(c, token); err != nil {
		c.WithFields(log.Fields{"err": err}).Error("paytokenRepo.Upsert failed")
		return err
	}

	typ := listing.EventPayTokenAccepted
	if !accepted {
		typ = listing.EventPayTokenRevoked
	}
	im.emitAdminEvent(c, &listing.Event{
		ChainId:  token.ChainId,
		Type:     typ,
		Account:  caller.ToLower(),
		PayToken: token.Address,
	})
	return nil
}

func (im *impl) SetMarketFee(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, feeBps int64) error {
	if err := im.requireAdmin(c, chainId, caller); err != nil {
		return err
	}
	if feeBps < 0 || feeBps > domain.MaxFeeBps {
		return domain.ErrInvalidFee
	}

	if err := im.patchSettings(c, chainId, marketplace.SettingsPatchable{MarketFeeBps: &feeBps}); err != nil {
		return err
	}
	im.emitAdminEvent(c, &listing.Event{
		ChainId: chainId,
		Type:    listing.EventMarketFeeChanged,
		Account: caller.ToLower(),
		Amount:  fmt.Sprintf("%d", feeBps),
	})
	return nil
}

func (im *impl) SetTreasury(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, treasury domain.Address) error {
	if err := im.requireAdmin(c, chainId, caller); err != nil {
		return err
	}
	if treasury.IsEmpty() {
		return domain.ErrInvalidTreasury
	}

	if err := im.patchSettings(c, chainId, marketplace.SettingsPatchable{Treasury: treasury.ToLowerPtr()}); err != nil {
		return err
	}
	im.emitAdminEvent(c, &listing.Event{
		ChainId: chainId,
		Type:    listing.EventTreasuryChanged,
		Account: caller.ToLower(),
	})
	return nil
}

func (im *impl) SetLimitCount(c ctx.Ctx, caller domain.Address, chainId domain.ChainId, limit int32) error {
	if err := im.requireAdmin(c, chainId, caller); err != nil {
		return err
	}
	if limit < 0 {
		return domain.ErrInvalidLimit
	}

	if err := im.patchSettings(c, chainId, marketplace.SettingsPatchable{LimitCount: &limit}); err != nil {
		return err
	}
	im.emitAdminEvent(c, &listing.Event{
		ChainId: chainId,
		Type:    listing.EventLimitChanged,
		Account: caller.ToLower(),
		Amount:  fmt.Sprintf("%d", limit),
	})
	return nil
}

// requireAdmin passes for holders of the admin or the super admin role
func (im *impl) requireAdmin(c ctx.Ctx, chainId domain.ChainId, caller domain.Address) error {
	if ok, err := im.roleStore.HasRole(c, chainId, domain.RoleAdmin, caller); err != nil {
		c.WithFields(log.Fields{"err": err}).Error("roleStore.HasRole failed")
		return err
	} else if ok {
		return nil
	}
	if ok, err := im.roleStore.HasRole(c, chainId, domain.RoleSuperAdmin, caller); err != nil {
		c.WithFields(log.Fields{"err": err}).Error("roleStore.HasRole failed")
		return err
	} else if ok {
		return nil
	}
	return domain.ErrNotOwner
}

func (im *impl) patchSettings(c ctx.Ctx, chainId domain.ChainId, patchable marketplace.SettingsPatchable) error {
	now := time.Now().UTC()
	patchable.UpdatedAt = &now

	err := im.configRepo.Update(c, chainId, patchable)
	if err == domain.ErrNotFound {
		// first admin touch on this chain seeds the settings document
		settings := &marketplace.Settings{ChainId: chainId, UpdatedAt: now}
		applyPatch(settings, patchable)
		err = im.configRepo.Upsert(c, settings)
	}
	if err != nil {
		c.WithFields(log.Fields{"err": err}).Error("configRepo update failed")
		return err
	}

	if im.settingsCache != nil {
		if err := im.settingsCache.Del(c, fmt.Sprintf("%d", chainId)); err != nil && err != cache.ErrNotFound {
			c.WithFields(log.Fields{"err": err}).Warn("settingsCache.Del failed")
		}
	}
	return nil
}

func applyPatch(settings *marketplace.Settings, patchable marketplace.SettingsPatchable) {
	if patchable.MarketFeeBps != nil {
		settings.MarketFeeBps = *patchable.MarketFeeBps
	}
	if patchable.Treasury != nil {
		settings.Treasury = *patchable.Treasury
	}
	if patchable.LimitCount != nil {
		settings.LimitCount = *patchable.LimitCount
	}
}

func (im *impl) emitAdminEvent(c ctx.Ctx, e *listing.Event) {
	if id, err := uuid.NewRandom(); err != nil {
		c.WithField("err", err).Error("failed to uuid.NewRandom")
	} else {
		e.Id = id.String()
	}
	e.Time = time.Now().UTC()
	if err := im.eventRepo.Insert(c, e); err != nil {
		c.WithFields(log.Fields{"err": err, "type": e.Type}).Error("eventRepo.Insert failed")
	}
}
