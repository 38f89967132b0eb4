package temple

import (
	"context"
	"time"

	"bbt-connect/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TempleRepository interface {
	Create(ctx context.Context, temple *Temple) error
	Get(ctx context.Context, id string) (*Temple, error)
	List(ctx context.Context) ([]Temple, error)
	Update(ctx context.Context, id string, temple *Temple) error
	Delete(ctx context.Context, id string) error
}

type TempleRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewTempleRepository(db *database.MongodbDB) TempleRepository {
	return &TempleRepositoryImpl{
		Collection: db.DB.Collection("temples"),
	}
}

func (r *TempleRepositoryImpl) Create(ctx context.Context, temple *Temple) error {
	if temple.ID.IsZero() {
		temple.ID = primitive.NewObjectID()
	}
	temple.CreatedAt = time.Now()
	temple.UpdatedAt = time.Now()
	_, err := r.Collection.InsertOne(ctx, temple)
	return err
}

func (r *TempleRepositoryImpl) Get(ctx context.Context, id string) (*Temple, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var temple Temple
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&temple)
	if err != nil {
		return nil, err
	}
	return &temple, nil
}

func (r *TempleRepositoryImpl) List(ctx context.Context) ([]Temple, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var temples []Temple
	if err := cursor.All(ctx, &temples); err != nil {
		return nil, err
	}
	return temples, nil
}

func (r *TempleRepositoryImpl) Update(ctx context.Context, id string, temple *Temple) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	temple.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":       temple.Name,
			"city":       temple.City,
			"country":    temple.Country,
			"address":    temple.Address,
			"phone":      temple.Phone,
			"website":    temple.Website,
			"updated_at": temple.UpdatedAt,
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *TempleRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
