package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Sentinel errors returned by the repository layer. The service layer
// translates these into typed API errors; nothing above the repositories
// inspects message text.
var (
	ErrProductNotFound        = errors.New("product not found")
	ErrInventoryNotFound      = errors.New("inventory not found")
	ErrConcurrentModification = errors.New("record was modified by another writer")
	ErrInsufficientStock      = errors.New("insufficient stock")
	ErrDuplicateSKU           = errors.New("duplicate sku")
)

const pqUniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == pqUniqueViolation
	}

	return false
}
