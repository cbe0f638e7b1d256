package listing

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"

	"github.com/hinatamarket/goapi/domain"
)

func TestIsActiveAtBoundedByExpireTime(t *testing.T) {
	req := require.New(t)
	start := time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC)

	// the deadline closes an open-ended window
	l := &Listing{
		StartTime:  start.Unix(),
		Duration:   0,
		ExpireTime: start.Add(time.Hour).Unix(),
	}
	req.True(l.IsActiveAt(start.Add(time.Minute)))
	req.False(l.IsActiveAt(start.Add(time.Hour)))
	req.False(l.IsActiveAt(start.Add(2 * time.Hour)))
	req.True(l.IsExpiredAt(start.Add(time.Hour)))

	// without a deadline a duration-0 window stays open
	l.ExpireTime = 0
	req.True(l.IsActiveAt(start.Add(24 * time.Hour)))
}

func TestListingRequestValidation(t *testing.T) {
	req := require.New(t)
	v := validator.New()

	l := &Listing{
		ChainId:      1,
		ListingId:    "listing-1",
		PayToken:     domain.Address("0x1fc9fe77b46c4e69b0f1e54dff1fc0ff7d09e4d6"),
		Price:        "100",
		Collections:  []domain.Address{"0x2b1870752208935fda32ab6a016c01a27877cf12"},
		AssetIds:     []domain.TokenId{"1"},
		AssetAmounts: []int64{1},
	}
	req.NoError(v.Struct(l))

	l.Price = ""
	req.Error(v.Struct(l))
}
