package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hinatamarket/goapi/base/ctx"
	"github.com/hinatamarket/goapi/stores/auth/usecase"
)

func TestSignAndParseToken(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	tkn, err := u.SignToken(ctx, "0xE8E1f0Ea88251723d4425b680124D8DAaf26E74F")
	assert.NoError(t, err)
	assert.NotEmpty(t, tkn)
	ads, err := u.ParseToken(ctx, tkn)
	assert.NoError(t, err)
	assert.Equal(t, "0xe8e1f0ea88251723d4425b680124d8daaf26e74f", ads)
}

func TestParseTokenWithWrongSecret(t *testing.T) {
	ctx := ctx.Background()
	u := usecase.New("jwt-secret")
	tkn, err := u.SignToken(ctx, "0xe8e1f0ea88251723d4425b680124d8daaf26e74f")
	assert.NoError(t, err)

	other := usecase.New("other-secret")
	_, err = other.ParseToken(ctx, tkn)
	assert.Error(t, err)
}
