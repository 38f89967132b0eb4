package region

import (
	"context"
	"time"

	"bbt-connect/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type RegionRepository interface {
	Create(ctx context.Context, region *Region) error
	Get(ctx context.Context, id string) (*Region, error)
	List(ctx context.Context) ([]Region, error)
	Update(ctx context.Context, id string, region *Region) error
	Delete(ctx context.Context, id string) error
	AddChildID(ctx context.Context, regionID, field, childID string) error
	RemoveChildID(ctx context.Context, regionID, field, childID string) error
}

// Array fields maintained through AddChildID/RemoveChildID
const (
	FieldReadingClubs   = "reading_club_ids"
	FieldWhatsappGroups = "whatsapp_group_ids"
)

type RegionRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewRegionRepository(db *database.MongodbDB) RegionRepository {
	return &RegionRepositoryImpl{
		Collection: db.DB.Collection("regions"),
	}
}

func (r *RegionRepositoryImpl) Create(ctx context.Context, region *Region) error {
	if region.ID.IsZero() {
		region.ID = primitive.NewObjectID()
	}
	if region.ReadingClubIDs == nil {
		region.ReadingClubIDs = []string{}
	}
	if region.WhatsappGroupIDs == nil {
		region.WhatsappGroupIDs = []string{}
	}
	region.CreatedAt = time.Now()
	region.UpdatedAt = time.Now()
	_, err := r.Collection.InsertOne(ctx, region)
	return err
}

func (r *RegionRepositoryImpl) Get(ctx context.Context, id string) (*Region, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var region Region
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&region)
	if err != nil {
		return nil, err
	}
	return &region, nil
}

func (r *RegionRepositoryImpl) List(ctx context.Context) ([]Region, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var regions []Region
	if err := cursor.All(ctx, &regions); err != nil {
		return nil, err
	}
	return regions, nil
}

func (r *RegionRepositoryImpl) Update(ctx context.Context, id string, region *Region) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	region.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":        region.Name,
			"slug":        region.Slug,
			"country":     region.Country,
			"description": region.Description,
			"updated_at":  region.UpdatedAt,
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *RegionRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}

func (r *RegionRepositoryImpl) AddChildID(ctx context.Context, regionID, field, childID string) error {
	oid, err := primitive.ObjectIDFromHex(regionID)
	if err != nil {
		return err
	}
	update := bson.M{
		"$addToSet": bson.M{field: childID},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *RegionRepositoryImpl) RemoveChildID(ctx context.Context, regionID, field, childID string) error {
	oid, err := primitive.ObjectIDFromHex(regionID)
	if err != nil {
		return err
	}
	update := bson.M{
		"$pull": bson.M{field: childID},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}
