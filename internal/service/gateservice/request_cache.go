package gateservice

import "storefront/internal/domain"

// RequestCache memoriza dados do gate durante uma única requisição.
// É criado pelo middleware de sessão e descartado ao fim da requisição; não é compartilhado
// entre goroutines.
type RequestCache struct {
	roles   *domain.RoleFlags
	fetches int
}

// NewRequestCache cria um cache vazio.
func NewRequestCache() *RequestCache {
	return &RequestCache{}
}

// Roles retorna as flags já resolvidas nesta requisição.
func (c *RequestCache) Roles() (domain.RoleFlags, bool) {
	if c == nil || c.roles == nil {
		return domain.RoleFlags{}, false
	}
	return *c.roles, true
}

// RoleFetches informa quantas buscas remotas de papéis foram feitas nesta requisição.
func (c *RequestCache) RoleFetches() int {
	if c == nil {
		return 0
	}
	return c.fetches
}

func (c *RequestCache) storeRoles(flags domain.RoleFlags) {
	if c == nil {
		return
	}
	c.roles = &flags
}

func (c *RequestCache) countFetch() {
	if c != nil {
		c.fetches++
	}
}
