package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/bankcore/client-registry/internal/core/domain"
)

const collectionClients = "clients"

// ClientRepository persists clients in MongoDB. The Client↔BankProduct join
// set is stored as the product_ids array on the client document: replacing
// the association is a $set of the whole array, and the by-product query is
// an array membership filter.
type ClientRepository struct {
	db  *mongo.Database
	col *mongo.Collection
}

func NewClientRepository(db *mongo.Database) *ClientRepository {
	return &ClientRepository{db: db, col: db.Collection(collectionClients)}
}

// Create inserts a new client document with a freshly allocated integer id.
func (r *ClientRepository) Create(ctx context.Context, c *domain.Client) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	id, err := nextSequence(ctx, r.db, collectionClients)
	if err != nil {
		return nil, err
	}
	c.ID = id

	if _, err := r.col.InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *ClientRepository) FindAll(ctx context.Context) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []*domain.Client{}
	for cursor.Next(ctx) {
		var c domain.Client
		if err := cursor.Decode(&c); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, cursor.Err()
}

func (r *ClientRepository) FindByID(ctx context.Context, id int64) (*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c domain.Client
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return &c, nil
}

// FindByProductID returns every client whose product_ids array contains the
// given catalog id.
func (r *ClientRepository) FindByProductID(ctx context.Context, productID int64) ([]*domain.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, bson.M{"product_ids": productID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	clients := []*domain.Client{}
	for cursor.Next(ctx) {
		var c domain.Client
		if err := cursor.Decode(&c); err != nil {
			return nil, err
		}
		clients = append(clients, &c)
	}
	return clients, cursor.Err()
}

// Update replaces the whole document, product_ids array included.
func (r *ClientRepository) Update(ctx context.Context, c *domain.Client) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.ReplaceOne(ctx, bson.M{"_id": c.ID}, c)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

func (r *ClientRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}

// EnsureIndexes creates the indexes the by-product query relies on.
func (r *ClientRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "product_ids", Value: 1}}},
		{Keys: bson.D{{Key: "document", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
