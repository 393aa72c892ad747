package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/phrazzld/stockroom-api/internal/domain"
	"github.com/phrazzld/stockroom-api/internal/platform/logger"
	"github.com/phrazzld/stockroom-api/internal/store"
)

// productSortColumns maps the wire-level sort field names from the
// store allow-list to actual column names.
var productSortColumns = map[string]string{
	"product_name": "product_name",
	"category":     "category",
	"price":        "price",
	"quantity":     "quantity",
	"createdAt":    "created_at",
	"updatedAt":    "updated_at",
}

// price is selected as text so the scan target can stay a string; the
// column itself is NUMERIC, which is what makes sort-by-price numeric.
const productColumns = `id, product_name, description, price::text, quantity,
		category, created_at, updated_at`

// ProductStore implements the store.ProductStore interface using a
// PostgreSQL database as the storage backend.
type ProductStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewProductStore creates a new PostgreSQL implementation of the
// ProductStore interface. If logger is nil, a default logger will be used.
func NewProductStore(db store.DBTX, logger *slog.Logger) *ProductStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &ProductStore{
		db:     db,
		logger: logger.With(slog.String("component", "product_store")),
	}
}

// Ensure ProductStore implements store.ProductStore interface
var _ store.ProductStore = (*ProductStore)(nil)

// Create implements store.ProductStore.Create
// It saves a new product to the database, handling domain validation.
func (s *ProductStore) Create(ctx context.Context, product *domain.Product) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := product.Validate(); err != nil {
		log.Warn("product validation failed during create",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return err
	}

	quantity, err := strconv.ParseInt(product.Quantity, 10, 64)
	if err != nil {
		return domain.ErrInvalidQuantity
	}

	query := `
		INSERT INTO products (id, product_name, description, price, quantity,
			category, created_at, updated_at)
		VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
	`
	_, err = s.db.ExecContext(
		ctx,
		query,
		product.ID,
		product.ProductName,
		product.Description,
		product.Price,
		quantity,
		product.Category,
		product.CreatedAt,
		product.UpdatedAt,
	)

	if err != nil {
		log.Error("failed to create product",
			slog.String("error", err.Error()),
			slog.String("product_id", product.ID.String()))
		return store.NewStoreError("product", "create", "failed to insert product", err)
	}

	log.Info("product created successfully",
		slog.String("product_id", product.ID.String()),
		slog.String("product_name", product.ProductName))
	return nil
}

// GetByID implements store.ProductStore.GetByID
// Returns store.ErrProductNotFound if the product does not exist.
func (s *ProductStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Product, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	product, err := scanProduct(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("product not found", slog.String("product_id", id.String()))
			return nil, store.ErrProductNotFound
		}
		log.Error("failed to get product by ID",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return nil, store.NewStoreError("product", "get", "failed to query product", err)
	}

	return product, nil
}

// List implements store.ProductStore.List
// Search matches product_name as a case-insensitive substring.
func (s *ProductStore) List(
	ctx context.Context,
	params store.ListParams,
) ([]*domain.Product, int, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)
	params = params.Normalize()

	column, ok := productSortColumns[params.SortBy]
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", store.ErrInvalidSortField, params.SortBy)
	}

	var where string
	var args []any
	if params.Search != "" {
		where = `WHERE product_name ILIKE $1`
		args = append(args, "%"+params.Search+"%")
	}

	var total int
	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM products %s`, where)
	if err := s.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		log.Error("failed to count products", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("product", "list", "failed to count products", err)
	}

	// The sort column and direction come from fixed allow-lists, never
	// from raw request input, so building the ORDER BY by hand is safe.
	query := fmt.Sprintf(
		`SELECT %s FROM products %s ORDER BY %s %s LIMIT $%d OFFSET $%d`,
		productColumns, where, column, params.SortOrder, len(args)+1, len(args)+2,
	)
	args = append(args, params.Limit, params.Offset())

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to query products", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("product", "list", "failed to query products", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	products := []*domain.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			log.Error("failed to scan product row", slog.String("error", err.Error()))
			return nil, 0, store.NewStoreError("product", "list", "failed to scan product row", err)
		}
		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, 0, store.NewStoreError("product", "list", "row iteration failed", err)
	}

	log.Debug("listed products",
		slog.Int("count", len(products)),
		slog.Int("total", total))
	return products, total, nil
}

// Update implements store.ProductStore.Update
// It applies only the provided fields and always refreshes updated_at.
// Zero affected rows means the product does not exist.
func (s *ProductStore) Update(
	ctx context.Context,
	id uuid.UUID,
	update store.ProductUpdate,
) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if update.IsEmpty() {
		return store.ErrNoFieldsToUpdate
	}

	if update.Price != nil {
		if err := domain.ValidatePrice(*update.Price); err != nil {
			return err
		}
	}
	if update.Quantity != nil {
		if err := domain.ValidateQuantity(*update.Quantity); err != nil {
			return err
		}
	}

	setClause, args := buildProductUpdate(update, time.Now().UTC())
	args = append(args, id)
	query := fmt.Sprintf(`UPDATE products SET %s WHERE id = $%d`, setClause, len(args))

	result, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Error("failed to update product",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return store.NewStoreError("product", "update", "failed to update product", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("product not found for update", slog.String("product_id", id.String()))
		return store.ErrProductNotFound
	}

	log.Info("product updated successfully", slog.String("product_id", id.String()))
	return nil
}

// Delete implements store.ProductStore.Delete
// Returns store.ErrProductNotFound if the product does not exist.
func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return store.NewStoreError("product", "delete", "failed to delete product", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("product_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("product not found for delete", slog.String("product_id", id.String()))
		return store.ErrProductNotFound
	}

	log.Info("product deleted successfully", slog.String("product_id", id.String()))
	return nil
}

// buildProductUpdate assembles the SET clause for a partial product update.
// Placeholders are numbered from $1; updated_at is always included last.
func buildProductUpdate(update store.ProductUpdate, updatedAt time.Time) (string, []any) {
	var clauses []string
	var args []any

	add := func(expr string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf(expr, len(args)))
	}

	if update.ProductName != nil {
		add("product_name = $%d", *update.ProductName)
	}
	if update.Description != nil {
		add("description = $%d", *update.Description)
	}
	if update.Price != nil {
		add("price = $%d::numeric", *update.Price)
	}
	if update.Quantity != nil {
		// Validated upstream; ignore the error to keep the builder total.
		quantity, _ := strconv.ParseInt(*update.Quantity, 10, 64)
		add("quantity = $%d", quantity)
	}
	if update.Category != nil {
		add("category = $%d", *update.Category)
	}

	add("updated_at = $%d", updatedAt)

	return strings.Join(clauses, ", "), args
}

// scanProduct reads one product row into a domain.Product.
func scanProduct(row rowScanner) (*domain.Product, error) {
	var product domain.Product
	var quantity int64

	err := row.Scan(
		&product.ID,
		&product.ProductName,
		&product.Description,
		&product.Price,
		&quantity,
		&product.Category,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	product.Quantity = strconv.FormatInt(quantity, 10)

	return &product, nil
}
