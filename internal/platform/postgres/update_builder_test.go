package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/stockroom-api/internal/store"
)

func strPtr(s string) *string {
	return &s
}

func TestBuildUserUpdate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("single field", func(t *testing.T) {
		t.Parallel()

		setClause, args := buildUserUpdate(store.UserUpdate{Name: strPtr("New Name")}, now)

		assert.Equal(t, "name = $1, updated_at = $2", setClause)
		require.Len(t, args, 2)
		assert.Equal(t, "New Name", args[0])
		assert.Equal(t, now, args[1])
	})

	t.Run("multiple fields keep placeholder order", func(t *testing.T) {
		t.Parallel()

		setClause, args := buildUserUpdate(store.UserUpdate{
			Email:    strPtr("new@example.com"),
			UserName: strPtr("newname"),
			City:     strPtr("Lisbon"),
		}, now)

		assert.Equal(t, "email = $1, user_name = $2, city = $3, updated_at = $4", setClause)
		require.Len(t, args, 4)
		assert.Equal(t, "new@example.com", args[0])
		assert.Equal(t, "newname", args[1])
	})

	t.Run("empty optional field becomes NULL", func(t *testing.T) {
		t.Parallel()

		setClause, args := buildUserUpdate(store.UserUpdate{Bio: strPtr("")}, now)

		assert.Equal(t, "bio = $1, updated_at = $2", setClause)
		require.Len(t, args, 2)
		assert.Equal(t, sql.NullString{}, args[0])
	})

	t.Run("empty update still touches updated_at", func(t *testing.T) {
		t.Parallel()

		setClause, args := buildUserUpdate(store.UserUpdate{}, now)

		assert.Equal(t, "updated_at = $1", setClause)
		require.Len(t, args, 1)
		assert.Equal(t, now, args[0])
	})
}

func TestBuildProductUpdate(t *testing.T) {
	t.Parallel()

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	t.Run("price gets a numeric cast", func(t *testing.T) {
		t.Parallel()

		setClause, args := buildProductUpdate(store.ProductUpdate{Price: strPtr("19.99")}, now)

		assert.Equal(t, "price = $1::numeric, updated_at = $2", setClause)
		require.Len(t, args, 2)
		assert.Equal(t, "19.99", args[0])
	})

	t.Run("quantity is bound as an integer", func(t *testing.T) {
		t.Parallel()

		setClause, args := buildProductUpdate(store.ProductUpdate{Quantity: strPtr("42")}, now)

		assert.Equal(t, "quantity = $1, updated_at = $2", setClause)
		require.Len(t, args, 2)
		assert.Equal(t, int64(42), args[0])
	})

	t.Run("all fields", func(t *testing.T) {
		t.Parallel()

		setClause, args := buildProductUpdate(store.ProductUpdate{
			ProductName: strPtr("Widget"),
			Description: strPtr("A widget"),
			Price:       strPtr("5.00"),
			Quantity:    strPtr("3"),
			Category:    strPtr("Tools"),
		}, now)

		assert.Equal(t,
			"product_name = $1, description = $2, price = $3::numeric, quantity = $4, category = $5, updated_at = $6",
			setClause)
		require.Len(t, args, 6)
		assert.Equal(t, now, args[5])
	})
}
