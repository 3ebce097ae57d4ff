package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

type ReviewRepository struct {
	store *Store
}

func NewReviewRepository(store *Store) *ReviewRepository {
	return &ReviewRepository{store: store}
}

type reviewDoc struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`
	// Farm and User are weak references stored as the raw strings the
	// client sent; they are resolved (or not) at query time.
	Farm    string    `bson:"farm,omitempty"`
	User    string    `bson:"user,omitempty"`
	Rating  float64   `bson:"rating"`
	Comment string    `bson:"comment,omitempty"`
	Date    time.Time `bson:"date"`
}

func (d *reviewDoc) toDomain() *domain.Review {
	return &domain.Review{
		ID:      d.ID.Hex(),
		FarmID:  d.Farm,
		UserID:  d.User,
		Rating:  d.Rating,
		Comment: d.Comment,
		Date:    d.Date,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, rv *domain.Review) (*domain.Review, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := reviewDoc{
		Farm:    rv.FarmID,
		User:    rv.UserID,
		Rating:  rv.Rating,
		Comment: rv.Comment,
		Date:    rv.Date,
	}
	res, err := db.Collection(collectionReviews).InsertOne(ctx, doc)
	if err != nil {
		return nil, wrapErr("insert review", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// List returns reviews ordered by date descending, scoped to one farm when
// farmID is non-empty.
func (r *ReviewRepository) List(ctx context.Context, farmID string) ([]*domain.Review, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{}
	if farmID != "" {
		filter["farm"] = farmID
	}

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := db.Collection(collectionReviews).Find(ctx, filter, opts)
	if err != nil {
		return nil, wrapErr("list reviews", err)
	}
	defer cur.Close(ctx)

	reviews := []*domain.Review{}
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, wrapErr("decode review", err)
		}
		reviews = append(reviews, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("iterate reviews", err)
	}
	return reviews, nil
}
