package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

type FarmRepository struct {
	store *Store
}

func NewFarmRepository(store *Store) *FarmRepository {
	return &FarmRepository{store: store}
}

type farmDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Name        string             `bson:"name"`
	Description string             `bson:"description"`
	Location    string             `bson:"location"`
	Products    []string           `bson:"products"`
	// Owner is a weak User reference kept as the raw string the client sent.
	Owner string `bson:"owner,omitempty"`
}

func (d *farmDoc) toDomain() *domain.Farm {
	return &domain.Farm{
		ID:          d.ID.Hex(),
		Name:        d.Name,
		Description: d.Description,
		Location:    d.Location,
		Products:    d.Products,
		Owner:       d.Owner,
	}
}

func (r *FarmRepository) Create(ctx context.Context, f *domain.Farm) (*domain.Farm, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := farmDoc{
		Name:        f.Name,
		Description: f.Description,
		Location:    f.Location,
		Products:    f.Products,
		Owner:       f.Owner,
	}
	res, err := db.Collection(collectionFarms).InsertOne(ctx, doc)
	if err != nil {
		return nil, wrapErr("insert farm", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *FarmRepository) FindByID(ctx context.Context, id string) (*domain.Farm, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrFarmNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc farmDoc
	if err := db.Collection(collectionFarms).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrFarmNotFound
		}
		return nil, wrapErr("find farm", err)
	}
	return doc.toDomain(), nil
}

// ListByName returns every farm, name ascending, case-sensitive as stored.
func (r *FarmRepository) ListByName(ctx context.Context) ([]*domain.Farm, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cur, err := db.Collection(collectionFarms).Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, wrapErr("list farms", err)
	}
	defer cur.Close(ctx)

	farms := []*domain.Farm{}
	for cur.Next(ctx) {
		var doc farmDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, wrapErr("decode farm", err)
		}
		farms = append(farms, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("iterate farms", err)
	}
	return farms, nil
}

// FindByIDs resolves farm references for joins. Malformed and unknown ids
// are silently absent from the result.
func (r *FarmRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Farm, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}
	farms := make(map[string]*domain.Farm, len(oids))
	if len(oids) == 0 {
		return farms, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := db.Collection(collectionFarms).Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, wrapErr("find farms", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc farmDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, wrapErr("decode farm", err)
		}
		farms[doc.ID.Hex()] = doc.toDomain()
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("iterate farms", err)
	}
	return farms, nil
}
