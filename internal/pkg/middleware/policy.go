package middleware

import (
	"net/http"

	"github.com/piresc/loanhub/internal/pkg/models"
)

// Roles is the set of roles allowed on a route
type Roles map[models.Role]struct{}

// Allow builds a role set
func Allow(roles ...models.Role) Roles {
	set := make(Roles, len(roles))
	for _, r := range roles {
		set[r] = struct{}{}
	}
	return set
}

// Has reports whether role is in the set
func (r Roles) Has(role models.Role) bool {
	_, ok := r[role]
	return ok
}

// Policy maps "METHOD /route/template" to the roles allowed on it.
// Admins pass every entry, including routes that are not listed.
type Policy map[string]Roles

// Key builds the lookup key for a method and an echo route template
func Key(method, path string) string {
	return method + " " + path
}

// Permits reports whether role may call the route
func (p Policy) Permits(method, path string, role models.Role) bool {
	if role == models.RoleAdmin {
		return true
	}
	allowed, ok := p[Key(method, path)]
	if !ok {
		return false
	}
	return allowed.Has(role)
}

var (
	applicants = Allow(models.RoleCustomer, models.RoleBusiness)
	staff      = Allow(models.RoleEmployee, models.RoleAdmin)
	everyone   = Allow(models.RoleCustomer, models.RoleBusiness, models.RoleEmployee, models.RoleAdmin)
	adminOnly  = Allow(models.RoleAdmin)
)

// RolePolicy is the authorization table for the loanhub API
var RolePolicy = Policy{
	Key(http.MethodGet, "/api/users/me"): everyone,
	Key(http.MethodGet, "/api/users"):    adminOnly,

	Key(http.MethodPost, "/api/loans/apply"):            applicants,
	Key(http.MethodGet, "/api/loans"):                   adminOnly,
	Key(http.MethodGet, "/api/loans/pending"):           Allow(models.RoleEmployee),
	Key(http.MethodGet, "/api/loans/user/:userId"):      everyone,
	Key(http.MethodPost, "/api/loans/:loanId/decision"): staff,

	Key(http.MethodGet, "/api/transactions"):              adminOnly,
	Key(http.MethodGet, "/api/transactions/user/:userId"): Allow(models.RoleCustomer, models.RoleBusiness, models.RoleAdmin),

	Key(http.MethodPost, "/api/queries"):                  applicants,
	Key(http.MethodGet, "/api/queries"):                   staff,
	Key(http.MethodPost, "/api/queries/respond/:queryId"): staff,
}
