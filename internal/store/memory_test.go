package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/aguadelivery-golang/internal/models"
)

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	u := &models.User{ID: "u1", Name: "João Silva", Email: "Joao@Email.com"}
	require.NoError(t, m.InsertUser(ctx, u))

	t.Run("duplicate email is case-insensitive", func(t *testing.T) {
		err := m.InsertUser(ctx, &models.User{ID: "u2", Email: "joao@email.com"})
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("duplicate id", func(t *testing.T) {
		err := m.InsertUser(ctx, &models.User{ID: "u1", Email: "other@email.com"})
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("find by email", func(t *testing.T) {
		got, err := m.FindUserByEmail(ctx, " JOAO@email.com ")
		require.NoError(t, err)
		assert.Equal(t, "u1", got.ID)
	})

	t.Run("returned users are copies", func(t *testing.T) {
		got, err := m.FindUser(ctx, "u1")
		require.NoError(t, err)
		got.AddAddress(models.Address{ID: "a1"})

		again, err := m.FindUser(ctx, "u1")
		require.NoError(t, err)
		assert.Empty(t, again.Addresses)

		require.NoError(t, m.UpdateUser(ctx, got))
		again, err = m.FindUser(ctx, "u1")
		require.NoError(t, err)
		assert.Len(t, again.Addresses, 1)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := m.FindUser(ctx, "nope")
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, m.UpdateUser(ctx, &models.User{ID: "nope"}), ErrNotFound)
	})
}

func TestMemoryUpdateUserEmail(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	require.NoError(t, m.InsertUser(ctx, &models.User{ID: "u1", Email: "a@email.com"}))
	require.NoError(t, m.InsertUser(ctx, &models.User{ID: "u2", Email: "b@email.com"}))

	assert.ErrorIs(t, m.UpdateUser(ctx, &models.User{ID: "u1", Email: "b@email.com"}), ErrDuplicateEmail)

	require.NoError(t, m.UpdateUser(ctx, &models.User{ID: "u1", Email: "c@email.com"}))
	_, err := m.FindUserByEmail(ctx, "a@email.com")
	assert.ErrorIs(t, err, ErrNotFound)
	got, err := m.FindUserByEmail(ctx, "c@email.com")
	require.NoError(t, err)
	assert.Equal(t, "u1", got.ID)
}

func TestMemoryOrders(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	now := time.Now()

	for _, o := range []*models.Order{
		{ID: "o1", UserID: "u1", Status: models.OrderStatusConfirmed, CreatedAt: now},
		{ID: "o2", UserID: "u2", Status: models.OrderStatusConfirmed, CreatedAt: now},
		{ID: "o3", UserID: "u1", Status: models.OrderStatusConfirmed, CreatedAt: now.Add(time.Minute)},
	} {
		require.NoError(t, m.InsertOrder(ctx, o))
	}

	list, err := m.ListOrdersByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "o3", list[0].ID)
	assert.Equal(t, "o1", list[1].ID)

	empty, err := m.ListOrdersByUser(ctx, "u3")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	o, err := m.FindOrder(ctx, "o1")
	require.NoError(t, err)
	o.Status = models.OrderStatusDelivered
	require.NoError(t, m.UpdateOrder(ctx, o))

	o, err = m.FindOrder(ctx, "o1")
	require.NoError(t, err)
	assert.Equal(t, models.OrderStatusDelivered, o.Status)

	assert.ErrorIs(t, m.InsertOrder(ctx, &models.Order{ID: "o1"}), ErrDuplicateID)
	assert.ErrorIs(t, m.UpdateOrder(ctx, &models.Order{ID: "nope"}), ErrNotFound)
}

func TestMemoryConcurrentInserts(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = m.InsertOrder(ctx, &models.Order{ID: string(rune('A' + i)), UserID: "u1"})
		}(i)
	}
	wg.Wait()

	list, err := m.ListOrdersByUser(ctx, "u1")
	require.NoError(t, err)
	assert.Len(t, list, 50)
}
