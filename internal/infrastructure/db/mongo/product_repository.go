package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bankcore/client-registry/internal/core/domain"
)

const collectionProducts = "bank_products"

// ProductRepository persists the bank product catalog. Rows are written only
// by the startup seeder; everything else is reads.
type ProductRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewProductRepository(db *mongo.Database) *ProductRepository {
	return &ProductRepository{db: db, col: db.Collection(collectionProducts)}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.BankProduct) (*domain.BankProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionProducts)
	if err != nil {
		return nil, err
	}
	p.ID = id

	if _, err := r.col.InsertOne(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) ExistsByType(ctx context.Context, t domain.ProductType) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	n, err := r.col.CountDocuments(ctx, bson.M{"product_type": t})
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *ProductRepository) FindByType(ctx context.Context, t domain.ProductType) (*domain.BankProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.BankProduct
	err := r.col.FindOne(ctx, bson.M{"product_type": t}).Decode(&p)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			// the type passed enum validation, so a missing row is a
			// seeding defect
			return nil, domain.ErrProductCatalogEmpty
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProductRepository) FindByTypes(ctx context.Context, types []domain.ProductType) ([]*domain.BankProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if len(types) == 0 {
		return []*domain.BankProduct{}, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"product_type": bson.M{"$in": types}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	return decodeProducts(ctx, cursor)
}

// FindByIDs returns the catalog rows for the given ids, in the input order.
func (r *ProductRepository) FindByIDs(ctx context.Context, ids []int64) ([]*domain.BankProduct, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if len(ids) == 0 {
		return []*domain.BankProduct{}, nil
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows, err := decodeProducts(ctx, cursor)
	if err != nil {
		return nil, err
	}

	byID := make(map[int64]*domain.BankProduct, len(rows))
	for _, row := range rows {
		byID[row.ID] = row
	}
	ordered := make([]*domain.BankProduct, 0, len(ids))
	for _, id := range ids {
		if row, ok := byID[id]; ok {
			ordered = append(ordered, row)
		}
	}
	return ordered, nil
}

func decodeProducts(ctx context.Context, cursor *mongo.Cursor) ([]*domain.BankProduct, error) {
	products := []*domain.BankProduct{}
	for cursor.Next(ctx) {
		var p domain.BankProduct
		if err := cursor.Decode(&p); err != nil {
			return nil, err
		}
		products = append(products, &p)
	}
	return products, cursor.Err()
}
