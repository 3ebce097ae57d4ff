package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

type UserRepository struct {
	store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{store: store}
}

type userDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Name      string             `bson:"name"`
	Email     string             `bson:"email"`
	Password  string             `bson:"password"`
	CreatedAt time.Time          `bson:"created_at"`
}

func (d *userDoc) toDomain() *domain.User {
	return &domain.User{
		ID:        d.ID.Hex(),
		Name:      d.Name,
		Email:     d.Email,
		Password:  d.Password,
		CreatedAt: d.CreatedAt,
	}
}

// Create inserts a user document. The unique index on email turns duplicate
// registrations into domain.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := userDoc{
		Name:      u.Name,
		Email:     u.Email,
		Password:  u.Password,
		CreatedAt: u.CreatedAt,
	}
	res, err := db.Collection(collectionUsers).InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrEmailTaken
		}
		return nil, wrapErr("insert user", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (*domain.User, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrUserNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc userDoc
	if err := db.Collection(collectionUsers).FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrUserNotFound
		}
		return nil, wrapErr("find user", err)
	}
	return doc.toDomain(), nil
}

// FindByIDs resolves user references for joins. Malformed and unknown ids
// are silently absent from the result.
func (r *UserRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error) {
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
	users := make(map[string]*domain.User, len(oids))
	if len(oids) == 0 {
		return users, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := db.Collection(collectionUsers).Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, wrapErr("find users", err)
	}
	defer cur.Close(ctx)

	for cur.Next(ctx) {
		var doc userDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, wrapErr("decode user", err)
		}
		users[doc.ID.Hex()] = doc.toDomain()
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("iterate users", err)
	}
	return users, nil
}
