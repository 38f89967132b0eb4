package club

import (
	"context"
	"time"

	"bbt-connect/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ClubRepository interface {
	Create(ctx context.Context, club *ReadingClub) error
	Get(ctx context.Context, id string) (*ReadingClub, error)
	List(ctx context.Context) ([]ReadingClub, error)
	ListByRegion(ctx context.Context, regionID string) ([]ReadingClub, error)
	Update(ctx context.Context, id string, club *ReadingClub) error
	Delete(ctx context.Context, id string) error
}

type ClubRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewClubRepository(db *database.MongodbDB) ClubRepository {
	return &ClubRepositoryImpl{
		Collection: db.DB.Collection("reading_clubs"),
	}
}

func (r *ClubRepositoryImpl) Create(ctx context.Context, club *ReadingClub) error {
	if club.ID.IsZero() {
		club.ID = primitive.NewObjectID()
	}
	club.CreatedAt = time.Now()
	club.UpdatedAt = time.Now()
	_, err := r.Collection.InsertOne(ctx, club)
	return err
}

func (r *ClubRepositoryImpl) Get(ctx context.Context, id string) (*ReadingClub, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var club ReadingClub
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&club)
	if err != nil {
		return nil, err
	}
	return &club, nil
}

func (r *ClubRepositoryImpl) List(ctx context.Context) ([]ReadingClub, error) {
	return r.find(ctx, bson.M{})
}

func (r *ClubRepositoryImpl) ListByRegion(ctx context.Context, regionID string) ([]ReadingClub, error) {
	return r.find(ctx, bson.M{"region_id": regionID})
}

func (r *ClubRepositoryImpl) find(ctx context.Context, filter bson.M) ([]ReadingClub, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var clubs []ReadingClub
	if err := cursor.All(ctx, &clubs); err != nil {
		return nil, err
	}
	return clubs, nil
}

func (r *ClubRepositoryImpl) Update(ctx context.Context, id string, club *ReadingClub) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	club.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":              club.Name,
			"description":       club.Description,
			"region_id":         club.RegionID,
			"whatsapp_group_id": club.WhatsappGroupID,
			"meeting_day":       club.MeetingDay,
			"meeting_time":      club.MeetingTime,
			"updated_at":        club.UpdatedAt,
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *ClubRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
