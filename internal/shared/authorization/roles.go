package authorization

type UserRole string

const (
	RoleReporter   UserRole = "reporter"
	RoleTechnician UserRole = "technician"
	RoleAdmin      UserRole = "admin"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

func (r UserRole) IsTechnician() bool {
	return r == RoleTechnician
}

func (r UserRole) IsReporter() bool {
	return r == RoleReporter
}

func (r UserRole) IsValid() bool {
	return r == RoleReporter || r == RoleTechnician || r == RoleAdmin
}

func ParseUserRole(s string) UserRole {
	role := UserRole(s)
	if role.IsValid() {
		return role
	}
	return RoleReporter
}
