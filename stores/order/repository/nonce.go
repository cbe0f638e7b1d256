package repository

import (
	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/database/mongoclient"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/order"
	"github.com/hinatamarket/goapi/service/query"
)

type nonceRepoImpl struct {
	q query.Mongo
}

// NewNonceRepo stores consumed order nonces. The table carries a unique
// index over (chainId, signer, nonce) so a double insert is a conflict.
func NewNonceRepo(q query.Mongo) order.NonceRepo {
	return &nonceRepoImpl{q}
}

func (im *nonceRepoImpl) FindOne(c ctx.Ctx, id order.NonceId) (*order.UsedNonce, error) {
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return nil, err
	}
	res := &order.UsedNonce{}
	if err := im.q.FindOne(c, domain.TableUsedNonces, qry, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *nonceRepoImpl) Remove(c ctx.Ctx, id order.NonceId) error {
	qry, err := mongoclient.MakeBsonM(&id)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Remove(c, domain.TableUsedNonces, qry); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Remove failed")
		return err
	}
	return nil
}

func (im *nonceRepoImpl) Insert(c ctx.Ctx, nonce *order.UsedNonce) error {
	if err := im.q.Insert(c, domain.TableUsedNonces, nonce); err == query.ErrDuplicateKey {
		return domain.ErrConflict
	} else if err != nil {
		c.WithField("err", err).Error("q.Insert failed")
		return err
	}
	return nil
}
