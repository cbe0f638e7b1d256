package repository

import (
	bCtx "github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/database/mongoclient"
	"github.com/hinatamarket/goapi/base/log"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/service/query"
)

type payTokenMongoRepo struct {
	q query.Mongo
}

func NewPayTokenRepo(q query.Mongo) domain.PayTokenRepo {
	return &payTokenMongoRepo{
		q: q,
	}
}

func (r *payTokenMongoRepo) FindOne(ctx bCtx.Ctx, chainId domain.ChainId, tokenAddress domain.Address) (*domain.PayToken, error) {
	payToken := &domain.PayToken{}
	qry, err := mongoclient.MakeBsonM(&domain.PayToken{ChainId: chainId, Address: tokenAddress.ToLower()})
	if err != nil {
		ctx.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	if err := r.q.FindOne(ctx, domain.TablePayTokens, qry, payToken); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		ctx.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return payToken, nil
}

func (r *payTokenMongoRepo) Create(ctx bCtx.Ctx, payToken *domain.PayToken) error {
	if err := r.q.Insert(ctx, domain.TablePayTokens, payToken); err != nil {
		ctx.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}

func (r *payTokenMongoRepo) Upsert(ctx bCtx.Ctx, payToken *domain.PayToken) error {
	selector, err := mongoclient.MakeBsonM(payToken.ToId())
	if err != nil {
		ctx.WithField("err", err).Error("failed to make bson.M")
		return err
	}
	if err := r.q.Upsert(ctx, domain.TablePayTokens, selector, payToken); err != nil {
		ctx.WithFields(log.Fields{
			"err": err,
			"id":  payToken.ToId(),
		}).Error("failed to upsert")
		return err
	}
	return nil
}
