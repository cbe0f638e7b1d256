package repository

import (
	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/base/database/mongoclient"
	"github.com/hinatamarket/goapi/domain"
	"github.com/hinatamarket/goapi/domain/marketplace"
	"github.com/hinatamarket/goapi/service/query"
	"go.mongodb.org/mongo-driver/bson"
)

type settingsRepoImpl struct {
	q query.Mongo
}

func NewSettingsRepo(q query.Mongo) marketplace.ConfigRepo {
	return &settingsRepoImpl{q}
}

func (im *settingsRepoImpl) FindOne(c ctx.Ctx, chainId domain.ChainId) (*marketplace.Settings, error) {
	res := &marketplace.Settings{}
	if err := im.q.FindOne(c, domain.TableMarketSettings, bson.M{"chainId": chainId}, res); err == query.ErrNotFound {
		return nil, domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.FindOne failed")
		return nil, err
	}
	return res, nil
}

func (im *settingsRepoImpl) Upsert(c ctx.Ctx, settings *marketplace.Settings) error {
	if err := im.q.Upsert(c, domain.TableMarketSettings, bson.M{"chainId": settings.ChainId}, settings); err != nil {
		c.WithField("err", err).Error("q.Upsert failed")
		return err
	}
	return nil
}

func (im *settingsRepoImpl) Update(c ctx.Ctx, chainId domain.ChainId, patchable marketplace.SettingsPatchable) error {
	update, err := mongoclient.MakeBsonM(&patchable)
	if err != nil {
		c.WithField("err", err).Error("mongoclient.MakeBsonM failed")
		return err
	}
	if err := im.q.Patch(c, domain.TableMarketSettings, bson.M{"chainId": chainId}, update); err == query.ErrNotFound {
		return domain.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).Error("q.Patch failed")
		return err
	}
	return nil
}
