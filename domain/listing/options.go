package listing

import (
	"github.com/hinatamarket/goapi/domain"
)

type FindAllOptions struct {
	ChainId  *domain.ChainId
	Seller   *domain.Address
	PayToken *domain.Address
	Status   *Status
	Type     *Type
	Offset   *int32
	Limit    *int32
	Sort     *string
}

type FindAllOptionsFunc func(*FindAllOptions) error

func GetFindAllOptions(opts ...FindAllOptionsFunc) (FindAllOptions, error) {
	res := FindAllOptions{}

	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}

	return res, nil
}

func WithChainId(chainId domain.ChainId) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.ChainId = &chainId
		return nil
	}
}

func WithSeller(seller domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Seller = seller.ToLowerPtr()
		return nil
	}
}

func WithPayToken(payToken domain.Address) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.PayToken = payToken.ToLowerPtr()
		return nil
	}
}

func WithStatus(status Status) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Status = &status
		return nil
	}
}

func WithType(typ Type) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Type = &typ
		return nil
	}
}

func WithPagination(offset, limit int32) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Offset = &offset
		options.Limit = &limit
		return nil
	}
}

func WithSort(sort string) FindAllOptionsFunc {
	return func(options *FindAllOptions) error {
		options.Sort = &sort
		return nil
	}
}
