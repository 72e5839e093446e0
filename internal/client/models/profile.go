package models

// Role is the closed set of console roles.
type Role string

const RoleAdmin Role = "ADMIN"

// Capability names an action a role may be granted.
type Capability string

const (
	CapabilityConsole   Capability = "console"
	CapabilityTasks     Capability = "tasks"
	CapabilityRewards   Capability = "rewards"
	CapabilityPools     Capability = "pools"
	CapabilityOrders    Capability = "orders"
	CapabilityMessaging Capability = "messaging"
)

var roleCapabilities = map[Role]map[Capability]bool{
	RoleAdmin: {
		CapabilityConsole:   true,
		CapabilityTasks:     true,
		CapabilityRewards:   true,
		CapabilityPools:     true,
		CapabilityOrders:    true,
		CapabilityMessaging: true,
	},
}

// Can reports whether the role is granted c. Unknown roles are granted nothing.
func (r Role) Can(c Capability) bool {
	return roleCapabilities[r][c]
}

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	_, ok := roleCapabilities[r]
	return ok
}

type AdminProfile struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResult is the payload of a successful admin login. User is optional.
type LoginResult struct {
	Token string        `json:"token"`
	User  *AdminProfile `json:"user,omitempty"`
}
