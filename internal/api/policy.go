package api

import "github.com/edugestion/school-records/internal/core/domain"

// Role policy for every protected resource route. Defined once here instead
// of scattered per-route string checks:
//
//	list/read            → all three roles
//	create/update        → admin, instructor
//	delete               → admin only
//	profile / password   → the authenticated identity itself, any role
var (
	readRoles   = []string{domain.RoleAdmin, domain.RoleInstructor, domain.RoleStudent}
	writeRoles  = []string{domain.RoleAdmin, domain.RoleInstructor}
	deleteRoles = []string{domain.RoleAdmin}
)
