package domain

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenIdToBig(t *testing.T) {
	req := require.New(t)

	bn, err := TokenId("12345").ToBig()
	req.NoError(err)
	req.Equal(big.NewInt(12345), bn)

	_, err = TokenId("0xabc").ToBig()
	req.Error(err)
}
