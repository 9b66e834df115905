package entities

// Role representa o papel de um usuário no sistema
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// Permission representa uma permissão específica
type Permission string

const (
	// Feature request permissions
	PermissionFeatureCreate      Permission = "features.create"
	PermissionFeatureStatusWrite Permission = "features.status.write"

	// Upvote permissions
	PermissionUpvoteToggle Permission = "upvotes.toggle"
)

// RolePermissions mapeia roles para suas permissões
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		PermissionFeatureCreate,
		PermissionFeatureStatusWrite,
		PermissionUpvoteToggle,
	},
	RoleUser: {
		PermissionFeatureCreate,
		PermissionUpvoteToggle,
	},
}

// ParseRole converte uma string em Role, usando RoleUser para valores desconhecidos
func ParseRole(value string) Role {
	if Role(value) == RoleAdmin {
		return RoleAdmin
	}
	return RoleUser
}

// HasPermission verifica se role tem permissão
func (r Role) HasPermission(permission Permission) bool {
	for _, p := range RolePermissions[r] {
		if p == permission {
			return true
		}
	}
	return false
}
