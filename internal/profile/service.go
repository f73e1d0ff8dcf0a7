// Package profile manages a user's saved addresses and credit cards.
package profile

import (
	"context"
	"errors"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
	"github.com/01moynul/aguadelivery-golang/internal/models"
	"github.com/01moynul/aguadelivery-golang/internal/store"
)

var (
	errAllFieldsRequired = apperror.ValidationError("Todos os campos são obrigatórios")
	errProfileNotFound   = apperror.NotFoundError("Perfil do usuário não encontrado")
	errAddressNotFound   = apperror.NotFoundError("Endereço não encontrado")
	errCardNotFound      = apperror.NotFoundError("Cartão não encontrado")
	errInvalidLast4      = apperror.ValidationError("Os últimos 4 dígitos do cartão são inválidos")
)

// Service applies profile changes. Each change is a load-mutate-save on the
// user's row, serialized by mu so concurrent requests cannot interleave.
type Service struct {
	users store.UserRepository
	mu    sync.Mutex
	newID func() string
}

func NewService(users store.UserRepository) *Service {
	return &Service{users: users, newID: uuid.NewString}
}

// AddressInput carries the editable fields of an address.
type AddressInput struct {
	Street       string
	Neighborhood string
	City         string
	State        string
	ZipCode      string
}

func (in AddressInput) toAddress(id string) (models.Address, error) {
	a := models.Address{
		ID:           id,
		Street:       strings.TrimSpace(in.Street),
		Neighborhood: strings.TrimSpace(in.Neighborhood),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		ZipCode:      strings.TrimSpace(in.ZipCode),
	}
	if a.Street == "" || a.Neighborhood == "" || a.City == "" || a.State == "" || a.ZipCode == "" {
		return models.Address{}, errAllFieldsRequired
	}
	return a, nil
}

// CreditCardInput carries the display data of a card.
type CreditCardInput struct {
	Brand  string
	Last4  string
	Expiry string
}

func (in CreditCardInput) toCreditCard(id string) (models.CreditCard, error) {
	c := models.CreditCard{
		ID:     id,
		Brand:  strings.TrimSpace(in.Brand),
		Last4:  strings.TrimSpace(in.Last4),
		Expiry: strings.TrimSpace(in.Expiry),
	}
	if c.Brand == "" || c.Last4 == "" || c.Expiry == "" {
		return models.CreditCard{}, errAllFieldsRequired
	}
	if len(c.Last4) != 4 || strings.Trim(c.Last4, "0123456789") != "" {
		return models.CreditCard{}, errInvalidLast4
	}
	return c, nil
}

// Profile returns the user's profile row.
func (s *Service) Profile(ctx context.Context, userID string) (*models.User, error) {
	u, err := s.users.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errProfileNotFound
		}
		return nil, err
	}
	return u, nil
}

// mutate loads the user, applies fn and saves the result if fn succeeds.
func (s *Service) mutate(ctx context.Context, userID string, fn func(u *models.User) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	u, err := s.Profile(ctx, userID)
	if err != nil {
		return err
	}
	if err := fn(u); err != nil {
		return err
	}
	return s.users.UpdateUser(ctx, u)
}

// --- Addresses ---

// ListAddresses returns the user's addresses and the selected one's id.
func (s *Service) ListAddresses(ctx context.Context, userID string) ([]models.Address, *string, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	addresses := u.Addresses
	if addresses == nil {
		addresses = []models.Address{}
	}
	return addresses, u.SelectedAddressID, nil
}

// AddAddress saves a new address. The user's first address becomes selected.
func (s *Service) AddAddress(ctx context.Context, userID string, in AddressInput) (models.Address, error) {
	a, err := in.toAddress(s.newID())
	if err != nil {
		return models.Address{}, err
	}
	err = s.mutate(ctx, userID, func(u *models.User) error {
		u.AddAddress(a)
		return nil
	})
	if err != nil {
		return models.Address{}, err
	}
	return a, nil
}

func (s *Service) UpdateAddress(ctx context.Context, userID, addressID string, in AddressInput) (models.Address, error) {
	a, err := in.toAddress(addressID)
	if err != nil {
		return models.Address{}, err
	}
	err = s.mutate(ctx, userID, func(u *models.User) error {
		if _, err := u.UpdateAddress(a); err != nil {
			return errAddressNotFound
		}
		return nil
	})
	if err != nil {
		return models.Address{}, err
	}
	return a, nil
}

func (s *Service) DeleteAddress(ctx context.Context, userID, addressID string) error {
	return s.mutate(ctx, userID, func(u *models.User) error {
		if err := u.RemoveAddress(addressID); err != nil {
			return errAddressNotFound
		}
		return nil
	})
}

func (s *Service) SelectAddress(ctx context.Context, userID, addressID string) error {
	return s.mutate(ctx, userID, func(u *models.User) error {
		if err := u.SelectAddress(addressID); err != nil {
			return errAddressNotFound
		}
		return nil
	})
}

// --- Credit cards ---

// ListCreditCards returns the user's cards and the selected one's id.
func (s *Service) ListCreditCards(ctx context.Context, userID string) ([]models.CreditCard, *string, error) {
	u, err := s.Profile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	cards := u.CreditCards
	if cards == nil {
		cards = []models.CreditCard{}
	}
	return cards, u.SelectedCreditCardID, nil
}

// AddCreditCard saves a new card. The user's first card becomes selected.
func (s *Service) AddCreditCard(ctx context.Context, userID string, in CreditCardInput) (models.CreditCard, error) {
	c, err := in.toCreditCard(s.newID())
	if err != nil {
		return models.CreditCard{}, err
	}
	err = s.mutate(ctx, userID, func(u *models.User) error {
		u.AddCreditCard(c)
		return nil
	})
	if err != nil {
		return models.CreditCard{}, err
	}
	return c, nil
}

// DeleteCreditCard removes a card; a deleted selection falls back to the
// first remaining card.
func (s *Service) DeleteCreditCard(ctx context.Context, userID, cardID string) error {
	return s.mutate(ctx, userID, func(u *models.User) error {
		if err := u.RemoveCreditCard(cardID); err != nil {
			return errCardNotFound
		}
		return nil
	})
}

func (s *Service) SelectCreditCard(ctx context.Context, userID, cardID string) error {
	return s.mutate(ctx, userID, func(u *models.User) error {
		if err := u.SelectCreditCard(cardID); err != nil {
			return errCardNotFound
		}
		return nil
	})
}
