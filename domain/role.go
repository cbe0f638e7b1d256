package domain

import (
	"github.com/hinatamarket/goapi/base/ctx"
)

// Role is a 32-byte role identifier in the external role store
type Role string

const (
	// RoleSuperAdmin is the default admin role (0x00..00)
	RoleSuperAdmin Role = "0x0000000000000000000000000000000000000000000000000000000000000000"
	// RoleAdmin is keccak256("ADMIN_ROLE")
	RoleAdmin Role = "0xb19546dff01e856fb3f010c267a7b1c60363cf8a4664e21cc89c26224620214e"
)

// RoleStore answers role membership questions against the external
// role/permission storage
type RoleStore interface {
	HasRole(c ctx.Ctx, chainId ChainId, role Role, account Address) (bool, error)
}
