package handlers

import (
	"github.com/01moynul/aguadelivery-golang/internal/catalog"
	"github.com/01moynul/aguadelivery-golang/internal/identity"
	"github.com/01moynul/aguadelivery-golang/internal/orders"
	"github.com/01moynul/aguadelivery-golang/internal/profile"
	"github.com/01moynul/aguadelivery-golang/internal/store"
)

// Handlers struct holds all dependencies for our handlers.
type Handlers struct {
	Users    store.UserRepository // Profile rows, written on registration
	Identity identity.Provider    // Registration, login and token checks
	Catalog  *catalog.Catalog
	Profile  *profile.Service
	Orders   *orders.Service
}
