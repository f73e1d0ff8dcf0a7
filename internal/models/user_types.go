package models

import (
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

var (
	ErrAddressNotFound    = errors.New("address not found")
	ErrCreditCardNotFound = errors.New("credit card not found")
)

// User is a profile row keyed by the identity provider's user id.
// Selected references are nil or point at an entry of the matching slice.
type User struct {
	ID           string `json:"id" db:"id"`
	Name         string `json:"name" db:"name"`
	Email        string `json:"email" db:"email"`
	PasswordHash string `json:"-" db:"password_hash"` // only set by the local identity provider

	Addresses            []Address    `json:"addresses"`
	CreditCards          []CreditCard `json:"creditCards"`
	SelectedAddressID    *string      `json:"selectedAddressId" db:"selected_address_id"`
	SelectedCreditCardID *string      `json:"selectedCreditCardId" db:"selected_credit_card_id"`

	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// Address is a delivery address. Orders keep their own copy.
type Address struct {
	ID           string `json:"id" db:"id"`
	Street       string `json:"street" db:"street"`
	Neighborhood string `json:"neighborhood" db:"neighborhood"`
	City         string `json:"city" db:"city"`
	State        string `json:"state" db:"state"`
	ZipCode      string `json:"zipCode" db:"zip_code"`
}

// CreditCard holds display data only, never a full card number.
type CreditCard struct {
	ID     string `json:"id" db:"id"`
	Brand  string `json:"brand" db:"brand"`
	Last4  string `json:"last4" db:"last4"`
	Expiry string `json:"expiry" db:"expiry"`
}

// Clone returns a deep copy so callers can mutate it without touching shared state.
func (u *User) Clone() *User {
	c := *u
	c.Addresses = append([]Address{}, u.Addresses...)
	c.CreditCards = append([]CreditCard{}, u.CreditCards...)
	if u.SelectedAddressID != nil {
		id := *u.SelectedAddressID
		c.SelectedAddressID = &id
	}
	if u.SelectedCreditCardID != nil {
		id := *u.SelectedCreditCardID
		c.SelectedCreditCardID = &id
	}
	return &c
}

// --- Addresses ---

func (u *User) addressIndex(id string) int {
	for i := range u.Addresses {
		if u.Addresses[i].ID == id {
			return i
		}
	}
	return -1
}

// FindAddress returns the user's address with the given id.
func (u *User) FindAddress(id string) (Address, bool) {
	if i := u.addressIndex(id); i >= 0 {
		return u.Addresses[i], true
	}
	return Address{}, false
}

// AddAddress appends a to the list. The first address becomes the selected one.
func (u *User) AddAddress(a Address) {
	u.Addresses = append(u.Addresses, a)
	if u.SelectedAddressID == nil {
		id := a.ID
		u.SelectedAddressID = &id
	}
}

// UpdateAddress replaces the fields of an existing address, keeping its id.
func (u *User) UpdateAddress(a Address) (Address, error) {
	i := u.addressIndex(a.ID)
	if i < 0 {
		return Address{}, ErrAddressNotFound
	}
	u.Addresses[i] = a
	return a, nil
}

// RemoveAddress deletes an address. If it was selected, the selection moves
// to the first remaining address, or nil when none is left.
func (u *User) RemoveAddress(id string) error {
	i := u.addressIndex(id)
	if i < 0 {
		return ErrAddressNotFound
	}
	u.Addresses = append(u.Addresses[:i], u.Addresses[i+1:]...)

	if u.SelectedAddressID != nil && *u.SelectedAddressID == id {
		u.SelectedAddressID = nil
		if len(u.Addresses) > 0 {
			first := u.Addresses[0].ID
			u.SelectedAddressID = &first
		}
	}
	return nil
}

// SelectAddress points the selection at one of the user's addresses.
func (u *User) SelectAddress(id string) error {
	if u.addressIndex(id) < 0 {
		return ErrAddressNotFound
	}
	u.SelectedAddressID = &id
	return nil
}

// --- Credit cards ---

func (u *User) creditCardIndex(id string) int {
	for i := range u.CreditCards {
		if u.CreditCards[i].ID == id {
			return i
		}
	}
	return -1
}

// AddCreditCard appends card. The first card becomes the selected one.
func (u *User) AddCreditCard(card CreditCard) {
	u.CreditCards = append(u.CreditCards, card)
	if u.SelectedCreditCardID == nil {
		id := card.ID
		u.SelectedCreditCardID = &id
	}
}

// RemoveCreditCard deletes a card, falling back to the first remaining one
// when the deleted card was selected.
func (u *User) RemoveCreditCard(id string) error {
	i := u.creditCardIndex(id)
	if i < 0 {
		return ErrCreditCardNotFound
	}
	u.CreditCards = append(u.CreditCards[:i], u.CreditCards[i+1:]...)

	if u.SelectedCreditCardID != nil && *u.SelectedCreditCardID == id {
		u.SelectedCreditCardID = nil
		if len(u.CreditCards) > 0 {
			first := u.CreditCards[0].ID
			u.SelectedCreditCardID = &first
		}
	}
	return nil
}

// SelectCreditCard points the selection at one of the user's cards.
func (u *User) SelectCreditCard(id string) error {
	if u.creditCardIndex(id) < 0 {
		return ErrCreditCardNotFound
	}
	u.SelectedCreditCardID = &id
	return nil
}

// Password Helper (Standard)
type Password struct {
	Plaintext *string
	Hash      string
}

func (p *Password) Set(plaintextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	p.Hash = string(hash)
	p.Plaintext = &plaintextPassword
	return nil
}

func (p *Password) Matches(plaintextPassword string) (bool, error) {
	err := bcrypt.CompareHashAndPassword([]byte(p.Hash), []byte(plaintextPassword))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
