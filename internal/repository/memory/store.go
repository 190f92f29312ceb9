// Package memory implements the repository contracts against an
// in-process store. It backs the "memory" storage driver: the API stays
// operable without a database, and the service tests run against it.
// Specifications are evaluated in-process over the same types the GORM
// implementation compiles to SQL.
package memory

import (
	"github.com/patrickmn/go-cache"
)

type Store struct {
	users       *cache.Cache
	resetTokens *cache.Cache
	folders     *cache.Cache
	notes       *cache.Cache
	activities  *cache.Cache
}

func NewStore() *Store {
	return &Store{
		users:       cache.New(cache.NoExpiration, 0),
		resetTokens: cache.New(cache.NoExpiration, 0),
		folders:     cache.New(cache.NoExpiration, 0),
		notes:       cache.New(cache.NoExpiration, 0),
		activities:  cache.New(cache.NoExpiration, 0),
	}
}
