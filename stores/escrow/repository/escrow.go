package repository

import (
	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/database/mongoclient"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/escrow"
	"github.com/hinatamarket/goapi/domain/listing"
	"github.com/hinatamarket/goapi/service/query"
)

type escrowRepoImpl struct {
	q query.Mongo
}

func NewEscrowRepo(q query.Mongo) escrow.Repo {
	return &escrowRepoImpl{q}
}

func (im *escrowRepoImpl) FindOne(c ctx.Ctx, id listing.Id) (*escrow.Bid, error) {
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &escrow.Bid{}
	if err := im.q.FindOne(c, domain.TableEscrowedBids, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *escrowRepoImpl) Upsert(c ctx.Ctx, bid *escrow.Bid) error {
	id := bid.ToListingId()
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Upsert(c, domain.TableEscrowedBids, selector, bid); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *escrowRepoImpl) Remove(c ctx.Ctx, id listing.Id) error {
	selector, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Remove(c, domain.TableEscrowedBids, selector); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}
