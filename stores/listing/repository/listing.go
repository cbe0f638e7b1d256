package repository

import (
	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/database/mongoclient"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/hinatamarket/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type listingRepoImpl struct {
	q query.Mongo
}

func NewListingRepo(q query.Mongo) listing.Repo {
	return &listingRepoImpl{q}
}

func (im *listingRepoImpl) makeQuery(opts ...listing.FindAllOptionsFunc) (bson.M, error) {
	options, err := listing.GetFindAllOptions(opts...)
	if err != nil {
		return nil, err
	}
	query := bson.M{}

	if options.ChainId != nil {
		query["chainId"] = *options.ChainId
	}

	if options.Seller != nil {
		query["seller"] = *options.Seller
	}

	if options.PayToken != nil {
		query["payToken"] = *options.PayToken
	}

	if options.Status != nil {
		query["status"] = *options.Status
	}

	if options.Type != nil {
		query["type"] = *options.Type
	}

	return query, nil
}

func (im *listingRepoImpl) FindOne(ctx ctx.Ctx, id listing.Id) (*listing.Listing, error) {
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &listing.Listing{}
	if err := im.q.FindOne(ctx, domain.TableListings, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.FindOne")
		return nil, err
	}
	return res, nil
}

func (im *listingRepoImpl) FindAll(ctx ctx.Ctx, opts ...listing.FindAllOptionsFunc) ([]*listing.Listing, error) {
	qry, err := im.makeQuery(opts...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
		}).Error("im.makeQuery")
		return nil, err
	}

	options, _ := listing.GetFindAllOptions(opts...)
	offset, limit := 0, 0
	if options.Offset != nil {
		offset = int(*options.Offset)
	}
	if options.Limit != nil {
		limit = int(*options.Limit)
	}
	sort := "-createdAt"
	if options.Sort != nil {
		sort = *options.Sort
	}

	res := []*listing.Listing{}
	if err := im.q.Search(ctx, domain.TableListings, offset, limit, sort, qry, &res); err != nil {
		ctx.WithFields(log.Fields{
			"err":   err,
			"query": qry,
		}).Error("failed to q.Search")
		return nil, err
	}

	return res, nil
}

func (im *listingRepoImpl) Insert(ctx ctx.Ctx, l *listing.Listing) error {
	if err := im.q.Insert(ctx, domain.TableListings, l); err == query.ErrDuplicateKey {
		return domain.ErrAlreadyUsedId
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  l.ToId(),
		}).Error("failed to q.Insert")
		return err
	}
	return nil
}

func (im *listingRepoImpl) Update(ctx ctx.Ctx, id listing.Id, patchable listing.Patchable) error {
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	updater, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Patch(ctx, domain.TableListings, selector, updater); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("failed to q.Patch")
		return err
	}
	return nil
}
