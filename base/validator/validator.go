package validator

import (
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// IsValidAddress reports whether address parses as a hex address in lower case
func IsValidAddress(address string) bool {
	checksum := common.HexToAddress(address).Hex()
	return strings.EqualFold(checksum, address)
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
