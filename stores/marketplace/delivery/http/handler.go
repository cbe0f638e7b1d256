package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/delivery"
	"github.com/hinatamarket/goapi/base/metrics"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/hinatamarket/goapi/domain/marketplace"
	"github.com/hinatamarket/goapi/domain/order"
	"github.com/hinatamarket/goapi/middleware"
	authMiddleware "github.com/hinatamarket/goapi/stores/auth/delivery/http/middleware"
)

var met metrics.Service

type handler struct {
	marketplace    marketplace.UseCase
	authMiddleware *authMiddleware.AuthMiddleware
}

func New(
	e *echo.Echo,
	marketplace marketplace.UseCase,
	authMiddleware *authMiddleware.AuthMiddleware) {
	met = metrics.New("marketplace")

	h := &handler{marketplace, authMiddleware}

	gs := e.Group("/listings")

	gs.GET("", h.getListings, middleware.CacheHttp(30*time.Second))

	gs.POST("", h.createListing, authMiddleware.Auth())

	g := e.Group("/listing/:chainId/:seller/:listingId", middleware.IsValidAddress("seller"))

	g.GET("", h.getListing)

	g.DELETE("", h.cancelListing, authMiddleware.Auth())

	g.POST("/purchase", h.purchaseListing, authMiddleware.Auth())

	g.POST("/bid", h.bid, authMiddleware.Auth())

	g.POST("/complete", h.completeAuction, authMiddleware.Auth())

	gOrders := e.Group("/orders")

	gOrders.POST("/listing", h.createSignedListing)

	gOrders.POST("/settle", h.settleSignedSale)

	gm := e.Group("/marketplace/:chainId")

	gm.GET("/settings", h.getSettings, middleware.CacheHttp(30*time.Second))

	gm.GET("/events", h.getEvents)

	gm.POST("/paytokens", h.setAcceptPayToken, authMiddleware.Auth(), authMiddleware.IsAdmin())

	gm.PUT("/fee", h.setMarketFee, authMiddleware.Auth())

	gm.PUT("/treasury", h.setTreasury, authMiddleware.Auth())

	gm.PUT("/limit", h.setLimitCount, authMiddleware.Auth())
}

type listingIdParams struct {
	ChainId   domain.ChainId `param:"chainId"`
	Seller    domain.Address `param:"seller"`
	ListingId string         `param:"listingId"`
}

func (p *listingIdParams) toId() listing.Id {
	return listing.Id{
		ChainId:   p.ChainId,
		Seller:    p.Seller.ToLower(),
		ListingId: p.ListingId,
	}
}

func mapDomainError(c echo.Context, err error) error {
	switch err {
	case domain.ErrNotFound:
		return delivery.MakeJsonResp(c, http.StatusNotFound, err)
	case domain.ErrInvalidListing, domain.ErrInvalidPayToken, domain.ErrInvalidFee,
		domain.ErrInvalidTreasury, domain.ErrInvalidLimit, domain.ErrInvalidNumberFormat,
		domain.ErrInvalidChainId, domain.ErrAlreadyUsedId, domain.ErrInvalidQuantity,
		domain.ErrNotNftCollection:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	case domain.ErrInvalidSignature, domain.ErrUsedSignature:
		return delivery.MakeJsonResp(c, http.StatusUnauthorized, err)
	case domain.ErrNotSeller, domain.ErrIsSeller, domain.ErrNotOwner:
		return delivery.MakeJsonResp(c, http.StatusForbidden, err)
	case domain.ErrInactiveListing, domain.ErrListingSettled, domain.ErrValidBidExists,
		domain.ErrTooLowBid, domain.ErrLowerThanHighest, domain.ErrNoActiveBid,
		domain.ErrNotForAuction, domain.ErrOnlyForAuction:
		return delivery.MakeJsonResp(c, http.StatusConflict, err)
	default:
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
}

func (h *handler) createListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	l := &listing.Listing{}

	if err := c.Bind(l); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	// the listing always belongs to the authenticated caller
	l.Seller = address.ToLower()

	if err := c.Validate(l); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	met.BumpSum("listing.create.count", 1, "chainId", fmt.Sprint(l.ChainId))

	if err := h.marketplace.CreateListing(ctx, l); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, l)
}

func (h *handler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId  *domain.ChainId `query:"chainId"`
		Seller   *domain.Address `query:"seller"`
		PayToken *domain.Address `query:"payToken"`
		Status   *listing.Status `query:"status"`
		Type     *listing.Type   `query:"type"`
		Offset   int32           `query:"offset"`
		Limit    int32           `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.FindAllOptionsFunc{}

	if p.ChainId != nil {
		opts = append(opts, listing.WithChainId(*p.ChainId))
	}

	if p.Seller != nil {
		opts = append(opts, listing.WithSeller(*p.Seller))
	}

	if p.PayToken != nil {
		opts = append(opts, listing.WithPayToken(*p.PayToken))
	}

	if p.Status != nil {
		opts = append(opts, listing.WithStatus(*p.Status))
	}

	if p.Type != nil {
		opts = append(opts, listing.WithType(*p.Type))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.WithPagination(p.Offset, p.Limit))
	}

	if res, err := h.marketplace.GetListings(ctx, opts...); err != nil {
		return mapDomainError(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	p := &listingIdParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.marketplace.GetListing(ctx, p.toId()); err != nil {
		return mapDomainError(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) cancelListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &listingIdParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.CancelListing(ctx, address, p.toId()); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) purchaseListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		listingIdParams
		Units int64 `json:"units"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if p.Units == 0 {
		p.Units = 1
	}

	if err := h.marketplace.PurchaseListing(ctx, address, p.toId(), p.Units); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) bid(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		listingIdParams
		Amount string `json:"amount" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	met.BumpSum("bid.count", 1, "chainId", fmt.Sprint(p.ChainId))

	if err := h.marketplace.Bid(ctx, address, p.toId(), p.Amount); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) completeAuction(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	p := &listingIdParams{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := h.marketplace.CompleteAuction(ctx, address, p.toId()); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) createSignedListing(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	o := &order.ListingOrder{}

	if err := c.Bind(o); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.marketplace.CreateSignedListing(ctx, o); err != nil {
		return mapDomainError(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusCreated, res)
	}
}

func (h *handler) settleSignedSale(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ListingOrder *order.ListingOrder `json:"listingOrder"`
		BidOrder     *order.BidOrder     `json:"bidOrder"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil || p.ListingOrder == nil || p.BidOrder == nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	met.BumpSum("settle.count", 1, "chainId", fmt.Sprint(p.BidOrder.ChainId))

	if err := h.marketplace.SettleSignedSale(ctx, p.ListingOrder, p.BidOrder); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getSettings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId domain.ChainId `param:"chainId"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if res, err := h.marketplace.GetSettings(ctx, p.ChainId); err != nil {
		return mapDomainError(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) getEvents(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		ChainId   domain.ChainId     `param:"chainId"`
		ListingId *string            `query:"listingId"`
		Seller    *domain.Address    `query:"seller"`
		Type      *listing.EventType `query:"type"`
		Offset    int32              `query:"offset"`
		Limit     int32              `query:"limit"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	opts := []listing.EventFindAllOptionsFunc{
		listing.EventWithChainId(p.ChainId),
	}

	if p.ListingId != nil {
		opts = append(opts, listing.EventWithListingId(*p.ListingId))
	}

	if p.Seller != nil {
		opts = append(opts, listing.EventWithSeller(*p.Seller))
	}

	if p.Type != nil {
		opts = append(opts, listing.EventWithType(*p.Type))
	}

	if p.Offset != 0 || p.Limit != 0 {
		opts = append(opts, listing.EventWithPagination(p.Offset, p.Limit))
	}

	if res, err := h.marketplace.GetEvents(ctx, opts...); err != nil {
		return mapDomainError(c, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, res)
	}
}

func (h *handler) setAcceptPayToken(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		ChainId       domain.ChainId `param:"chainId"`
		Address       domain.Address `json:"address" validate:"required"`
		Name          string         `json:"name" validate:"required"`
		Symbol        string         `json:"symbol" validate:"required"`
		TokenDecimals int32          `json:"tokenDecimals"`
		Accepted      bool           `json:"accepted"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	token := &domain.PayToken{
		ChainId:       p.ChainId,
		Address:       p.Address,
		Name:          p.Name,
		Symbol:        p.Symbol,
		TokenDecimals: p.TokenDecimals,
	}

	if err := h.marketplace.SetAcceptPayToken(ctx, address, token, p.Accepted); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setMarketFee(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		ChainId domain.ChainId `param:"chainId"`
		FeeBps  int64          `json:"feeBps" validate:"min=0,max=10000"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.SetMarketFee(ctx, address, p.ChainId, p.FeeBps); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setTreasury(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		ChainId  domain.ChainId `param:"chainId"`
		Treasury domain.Address `json:"treasury" validate:"required"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.SetTreasury(ctx, address, p.ChainId, p.Treasury); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) setLimitCount(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	address := c.Get("address").(domain.Address)

	type params struct {
		ChainId domain.ChainId `param:"chainId"`
		Limit   int32          `json:"limit" validate:"min=0"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, "invalid params")
	}

	if err := c.Validate(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.marketplace.SetLimitCount(ctx, address, p.ChainId, p.Limit); err != nil {
		return mapDomainError(c, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
