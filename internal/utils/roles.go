package utils

// Role names, lowest tier first. Role comparison is a total order over this
// fixed set; unknown roles rank as anonymous.
const (
	RoleAnonymous     = "anonymous"
	RoleSubscriber    = "subscriber"
	RoleContributor   = "contributor"
	RoleAuthor        = "author"
	RoleEditor        = "editor"
	RoleAdministrator = "administrator"
)

var roleLevels = map[string]int{
	RoleAnonymous:     0,
	RoleSubscriber:    1,
	RoleContributor:   2,
	RoleAuthor:        3,
	RoleEditor:        4,
	RoleAdministrator: 5,
}

// AssignableRoles are the roles a user record or the minimum-view setting
// may carry. Anonymous is a caller state, never a stored role.
var AssignableRoles = []string{
	RoleSubscriber, RoleContributor, RoleAuthor, RoleEditor, RoleAdministrator,
}

func RoleLevel(role string) int {
	return roleLevels[role]
}

func IsAssignableRole(role string) bool {
	return Contains(AssignableRoles, role)
}

// CanManage reports whether the role may ingest, list, delete and browse
// uploads through the management surface.
func CanManage(role string) bool {
	return RoleLevel(role) >= roleLevels[RoleAdministrator]
}

// CanView reports whether the role may read embeddable data given the
// configured minimum role. An anonymous caller passes only when the minimum
// is the lowest assignable tier; that is how "public" access is modeled.
func CanView(role, minRole string) bool {
	if !IsAssignableRole(minRole) {
		minRole = RoleSubscriber
	}
	if role == RoleAnonymous || RoleLevel(role) == 0 {
		return minRole == RoleSubscriber
	}
	return RoleLevel(role) >= RoleLevel(minRole)
}
