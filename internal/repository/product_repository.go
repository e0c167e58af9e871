package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"

	"github.com/Karim-Abdelkareem/techmarket/internal/model"
)

// ProductRepo persists catalog products. One table holds every category;
// the productType discriminator plus the attrs JSON column carry the
// subtype shape, and the images list is stored as JSON as well.
type ProductRepo struct{ DB *sql.DB }

func NewProductRepo(db *sql.DB) *ProductRepo { return &ProductRepo{DB: db} }

// ProductListFields is the allowed filter/sort/projection set for product
// listings. Keys are the API names, values the SQL columns they map to.
var ProductListFields = map[string]string{
	"id":                 "id",
	"name":               "name",
	"slug":               "slug",
	"category":           "category",
	"productType":        "product_type",
	"dealerId":           "dealer_id",
	"brand":              "brand",
	"companyId":          "company_id",
	"price":              "price",
	"quantity":           "quantity",
	"productCode":        "product_code",
	"discount":           "discount",
	"priceAfterDiscount": "price_after_discount",
	"isExclusive":        "is_exclusive",
	"views":              "views",
	"createdAt":          "created_at",
}

const productCols = `id, name, slug, category, product_type, dealer_id, brand, company_id,
	price, description, quantity, image, images, product_code, referral_code,
	discount, price_after_discount, is_exclusive, views, attrs, created_at, updated_at`

// Create inserts a product. Derived fields (slug, pricing) must already be
// applied by the caller. Duplicate product or referral codes surface as
// ErrDuplicate.
func (r *ProductRepo) Create(ctx context.Context, p *model.Product) (uint64, error) {
	images, attrs, err := encodeProductJSON(p)
	if err != nil {
		return 0, err
	}
	res, err := r.DB.ExecContext(ctx,
		`INSERT INTO products
		(name, slug, category, product_type, dealer_id, brand, company_id, price, description,
		 quantity, image, images, product_code, referral_code, discount, price_after_discount,
		 is_exclusive, views, attrs)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,0,?)`,
		p.Name, p.Slug, p.Category, p.ProductType, p.DealerID, p.Brand, p.CompanyID, p.Price,
		p.Description, p.Quantity, p.Image, images, p.ProductCode, p.ReferralCode,
		p.Discount, p.PriceAfterDiscount, p.IsExclusive, attrs)
	if err != nil {
		if isDuplicateErr(err) {
			return 0, ErrDuplicate
		}
		return 0, err
	}
	id, err := res.LastInsertId()
	return uint64(id), err
}

// GetByID fetches a product by id.
func (r *ProductRepo) GetByID(ctx context.Context, id uint64) (model.Product, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM products WHERE id=? LIMIT 1", id)
	return scanProduct(row)
}

// GetByReferralCode fetches a product by its referral code.
func (r *ProductRepo) GetByReferralCode(ctx context.Context, code string) (model.Product, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+productCols+" FROM products WHERE referral_code=? LIMIT 1", code)
	return scanProduct(row)
}

// List returns products matching the composed query plus the unpaginated
// match count. Keyword search runs over the name column.
func (r *ProductRepo) List(ctx context.Context, q ListQuery) ([]model.Product, int64, error) {
	where, args := q.WhereClause("name")
	cond := ""
	if where != "" {
		cond = " WHERE " + where
	}

	var total int64
	if err := r.DB.QueryRowContext(ctx, "SELECT COUNT(*) FROM products"+cond, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := "SELECT " + productCols + " FROM products" + cond + q.OrderClause("id ASC") + " LIMIT ? OFFSET ?"
	argsData := append(append([]any{}, args...), q.Limit, q.Skip())

	rows, err := r.DB.QueryContext(ctx, query, argsData...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]model.Product, 0, q.Limit)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, p)
	}
	return out, total, rows.Err()
}

// Update rewrites all mutable columns of a product.
func (r *ProductRepo) Update(ctx context.Context, p *model.Product) error {
	images, attrs, err := encodeProductJSON(p)
	if err != nil {
		return err
	}
	res, err := r.DB.ExecContext(ctx,
		`UPDATE products SET
		 name=?, slug=?, category=?, product_type=?, brand=?, company_id=?, price=?,
		 description=?, quantity=?, image=?, images=?, product_code=?, referral_code=?,
		 discount=?, price_after_discount=?, is_exclusive=?, attrs=?
		 WHERE id=?`,
		p.Name, p.Slug, p.Category, p.ProductType, p.Brand, p.CompanyID, p.Price,
		p.Description, p.Quantity, p.Image, images, p.ProductCode, p.ReferralCode,
		p.Discount, p.PriceAfterDiscount, p.IsExclusive, attrs, p.ID)
	if err != nil {
		if isDuplicateErr(err) {
			return ErrDuplicate
		}
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes a product permanently.
func (r *ProductRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM products WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// IncrementViews bumps the view counter for a product read. A single
// UPDATE keeps the increment atomic inside the database engine.
func (r *ProductRepo) IncrementViews(ctx context.Context, id uint64) error {
	_, err := r.DB.ExecContext(ctx, "UPDATE products SET views = views + 1 WHERE id=?", id)
	return err
}

type rowScanner interface{ Scan(dest ...any) error }

func scanProduct(row rowScanner) (model.Product, error) {
	var p model.Product
	var images, attrs []byte
	err := row.Scan(
		&p.ID, &p.Name, &p.Slug, &p.Category, &p.ProductType, &p.DealerID, &p.Brand,
		&p.CompanyID, &p.Price, &p.Description, &p.Quantity, &p.Image, &images,
		&p.ProductCode, &p.ReferralCode, &p.Discount, &p.PriceAfterDiscount,
		&p.IsExclusive, &p.Views, &attrs, &p.CreatedAt, &p.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return p, ErrNotFound
	}
	if err != nil {
		return p, err
	}
	if len(images) > 0 {
		if err := json.Unmarshal(images, &p.Images); err != nil {
			return p, err
		}
	}
	if p.Images == nil {
		p.Images = []string{}
	}
	if len(attrs) > 0 {
		if err := json.Unmarshal(attrs, &p.Attrs); err != nil {
			return p, err
		}
	}
	return p, nil
}

func encodeProductJSON(p *model.Product) (images, attrs []byte, err error) {
	if p.Images == nil {
		p.Images = []string{}
	}
	images, err = json.Marshal(p.Images)
	if err != nil {
		return nil, nil, err
	}
	if p.Attrs == nil {
		p.Attrs = map[string]any{}
	}
	attrs, err = json.Marshal(p.Attrs)
	if err != nil {
		return nil, nil, err
	}
	return images, attrs, nil
}
