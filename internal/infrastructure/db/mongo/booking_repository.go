package mongo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/harvestly/farmbook-api/internal/core/domain"
)

type BookingRepository struct {
	store *Store
}

func NewBookingRepository(store *Store) *BookingRepository {
	return &BookingRepository{store: store}
}

type bookingDoc struct {
	ID primitive.ObjectID `bson:"_id,omitempty"`
	// Farm and User are weak references stored as the raw strings the
	// client sent; they are resolved (or not) at query time.
	Farm string `bson:"farm,omitempty"`
	User string `bson:"user,omitempty"`
	// Date keeps the client's string as-is. The descending sort in
	// ListByUser is lexical, which matches chronological order only for
	// ISO yyyy-mm-dd values.
	Date   string `bson:"date"`
	Time   string `bson:"time"`
	Status string `bson:"status"`
}

func (d *bookingDoc) toDomain() *domain.Booking {
	return &domain.Booking{
		ID:     d.ID.Hex(),
		FarmID: d.Farm,
		UserID: d.User,
		Date:   d.Date,
		Time:   d.Time,
		Status: domain.BookingStatus(d.Status),
	}
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := bookingDoc{
		Farm:   b.FarmID,
		User:   b.UserID,
		Date:   b.Date,
		Time:   b.Time,
		Status: string(b.Status),
	}
	res, err := db.Collection(collectionBookings).InsertOne(ctx, doc)
	if err != nil {
		return nil, wrapErr("insert booking", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

// ListByUser returns the user's bookings ordered by date descending.
func (r *BookingRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	db, err := r.store.Database(ctx)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "date", Value: -1}})
	cur, err := db.Collection(collectionBookings).Find(ctx, bson.M{"user": userID}, opts)
	if err != nil {
		return nil, wrapErr("list bookings", err)
	}
	defer cur.Close(ctx)

	bookings := []*domain.Booking{}
	for cur.Next(ctx) {
		var doc bookingDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, wrapErr("decode booking", err)
		}
		bookings = append(bookings, doc.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, wrapErr("iterate bookings", err)
	}
	return bookings, nil
}
