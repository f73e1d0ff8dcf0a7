// Package orders places and tracks orders.
package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/01moynul/aguadelivery-golang/internal/apperror"
	"github.com/01moynul/aguadelivery-golang/internal/catalog"
	"github.com/01moynul/aguadelivery-golang/internal/models"
	"github.com/01moynul/aguadelivery-golang/internal/store"
)

// DeliveryWindow is added to the creation time to estimate delivery.
const DeliveryWindow = 2 * time.Hour

var (
	// Orders with a subtotal above this threshold ship for free.
	freeShippingThreshold = decimal.NewFromInt(100)
	flatShippingFee       = decimal.NewFromInt(2)
)

var (
	errOrderNotFound = apperror.NotFoundError("Pedido não encontrado")
	errUserNotFound  = apperror.NotFoundError("Perfil do usuário não encontrado")
	errInvalidStatus = apperror.ValidationError("Status inválido")
)

// ItemInput is one requested line of an order.
type ItemInput struct {
	ProductID int64
	Quantity  int
}

// CreateInput is a checkout request. PaymentData is accepted for
// compatibility with the storefront but never stored.
type CreateInput struct {
	Items         []ItemInput
	AddressID     string
	PaymentMethod string
	PaymentData   map[string]any
}

type Service struct {
	users   store.UserRepository
	orders  store.OrderRepository
	catalog *catalog.Catalog

	mu    sync.Mutex // serializes status updates
	now   func() time.Time
	newID func() string
}

func NewService(users store.UserRepository, orders store.OrderRepository, c *catalog.Catalog) *Service {
	return &Service{
		users:   users,
		orders:  orders,
		catalog: c,
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// Quote holds the money fields of an order.
type Quote struct {
	Subtotal    decimal.Decimal
	ShippingFee decimal.Decimal
	Total       decimal.Decimal
}

// Price computes subtotal, shipping fee and total for items, rounded to cents.
func Price(items []models.OrderItem) Quote {
	subtotal := decimal.Zero
	for _, it := range items {
		line := decimal.NewFromFloat(it.Price).Mul(decimal.NewFromInt(int64(it.Quantity)))
		subtotal = subtotal.Add(line)
	}
	subtotal = subtotal.Round(2)

	fee := flatShippingFee
	if subtotal.GreaterThan(freeShippingThreshold) {
		fee = decimal.Zero
	}

	return Quote{
		Subtotal:    subtotal,
		ShippingFee: fee,
		Total:       subtotal.Add(fee),
	}
}

// Create validates the request against the user's profile and the catalog,
// prices it and stores a confirmed order.
func (s *Service) Create(ctx context.Context, userID string, in CreateInput) (*models.Order, error) {
	// 1. --- Validate Request ---
	if len(in.Items) == 0 {
		return nil, apperror.ValidationError("Itens são obrigatórios")
	}
	if strings.TrimSpace(in.AddressID) == "" {
		return nil, apperror.ValidationError("Endereço de entrega é obrigatório")
	}

	// 2. --- Resolve Address Snapshot ---
	user, err := s.users.FindUser(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	address, ok := user.FindAddress(in.AddressID)
	if !ok {
		return nil, apperror.ValidationError("Endereço inválido")
	}

	// 3. --- Resolve Items Against Catalog ---
	items := make([]models.OrderItem, 0, len(in.Items))
	for _, req := range in.Items {
		if req.Quantity < 1 {
			return nil, apperror.ValidationError("Quantidade inválida")
		}
		p, ok := s.catalog.Get(req.ProductID)
		if !ok {
			return nil, apperror.ValidationError(fmt.Sprintf("Produto %d não encontrado", req.ProductID))
		}
		if !p.InStock {
			return nil, apperror.ValidationError(fmt.Sprintf("Produto %s fora de estoque", p.Name))
		}
		items = append(items, models.OrderItem{
			ProductID: p.ID,
			Name:      p.Name,
			Price:     p.Price,
			Quantity:  req.Quantity,
			Image:     p.Image,
		})
	}

	// 4. --- Price ---
	q := Price(items)

	// 5. --- Persist ---
	now := s.now().UTC()
	order := &models.Order{
		ID:                s.newID(),
		UserID:            userID,
		Items:             items,
		Address:           address,
		PaymentMethod:     in.PaymentMethod,
		Subtotal:          q.Subtotal.InexactFloat64(),
		ShippingFee:       q.ShippingFee.InexactFloat64(),
		Total:             q.Total.InexactFloat64(),
		Status:            models.OrderStatusConfirmed,
		CreatedAt:         now,
		EstimatedDelivery: now.Add(DeliveryWindow),
	}
	if err := s.orders.InsertOrder(ctx, order); err != nil {
		return nil, fmt.Errorf("insert order: %w", err)
	}
	return order, nil
}

// List returns the user's orders, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*models.Order, error) {
	orders, err := s.orders.ListOrdersByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

// Get returns one of the user's orders. Orders of other users are reported
// as not found.
func (s *Service) Get(ctx context.Context, userID, orderID string) (*models.Order, error) {
	o, err := s.orders.FindOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, errOrderNotFound
		}
		return nil, fmt.Errorf("find order: %w", err)
	}
	if o.UserID != userID {
		return nil, errOrderNotFound
	}
	return o, nil
}

// UpdateStatus moves one of the user's orders to status. Ownership is
// checked before the status value.
func (s *Service) UpdateStatus(ctx context.Context, userID, orderID string, status models.OrderStatus) (*models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, err := s.Get(ctx, userID, orderID)
	if err != nil {
		return nil, err
	}
	if !status.Valid() {
		return nil, errInvalidStatus
	}

	now := s.now().UTC()
	o.Status = status
	o.UpdatedAt = &now
	if err := s.orders.UpdateOrder(ctx, o); err != nil {
		return nil, fmt.Errorf("update order: %w", err)
	}
	return o, nil
}
