package repository

import (
	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/hinatamarket/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type eventRepoImpl struct {
	q query.Mongo
}

func NewEventRepo(q query.Mongo) listing.EventRepo {
	return &eventRepoImpl{q}
}

func (im *eventRepoImpl) makeQuery(opts ...listing.EventFindAllOptionsFunc) (bson.M, *listing.EventFindAllOptions, error) {
	options, err := listing.GetEventFindAllOptions(opts...)
	if err != nil {
		return nil, nil, err
	}
	qry := bson.M{}

	if options.ChainId != nil {
		qry["chainId"] = *options.ChainId
	}

	if options.ListingId != nil {
		qry["listingId"] = *options.ListingId
	}

	if options.Seller != nil {
		qry["seller"] = *options.Seller
	}

	if options.Type != nil {
		qry["type"] = *options.Type
	}

	return qry, &options, nil
}

func (im *eventRepoImpl) Insert(c ctx.Ctx, event *listing.Event) error {
	if err := im.q.Insert(c, domain.TableMarketplaceEvents, event); err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (im *eventRepoImpl) FindAll(c ctx.Ctx, opts ...listing.EventFindAllOptionsFunc) ([]*listing.Event, error) {
	qry, options, err := im.makeQuery(opts...)
	if err != nil {
		c.WithField("err", err).Error("makeQuery failed")
		return nil, err
	}

	offset := 0
	limit := 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}

	res := []*listing.Event{}
	if err := im.q.Search(c, domain.TableMarketplaceEvents, offset, limit, "-time", qry, &res); err != nil {
		c.WithField("err", err).Error("q.Search failed")
		return nil, err
	}
	return res, nil
}
