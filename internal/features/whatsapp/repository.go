package whatsapp

import (
	"context"
	"time"

	"bbt-connect/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type GroupRepository interface {
	Create(ctx context.Context, group *Group) error
	Get(ctx context.Context, id string) (*Group, error)
	List(ctx context.Context) ([]Group, error)
	ListByRegion(ctx context.Context, regionID string) ([]Group, error)
	Update(ctx context.Context, id string, group *Group) error
	Delete(ctx context.Context, id string) error
}

type GroupRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewGroupRepository(db *database.MongodbDB) GroupRepository {
	return &GroupRepositoryImpl{
		Collection: db.DB.Collection("whatsapp_groups"),
	}
}

func (r *GroupRepositoryImpl) Create(ctx context.Context, group *Group) error {
	if group.ID.IsZero() {
		group.ID = primitive.NewObjectID()
	}
	group.CreatedAt = time.Now()
	group.UpdatedAt = time.Now()
	_, err := r.Collection.InsertOne(ctx, group)
	return err
}

func (r *GroupRepositoryImpl) Get(ctx context.Context, id string) (*Group, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var group Group
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&group)
	if err != nil {
		return nil, err
	}
	return &group, nil
}

func (r *GroupRepositoryImpl) List(ctx context.Context) ([]Group, error) {
	return r.find(ctx, bson.M{})
}

func (r *GroupRepositoryImpl) ListByRegion(ctx context.Context, regionID string) ([]Group, error) {
	return r.find(ctx, bson.M{"region_id": regionID})
}

func (r *GroupRepositoryImpl) find(ctx context.Context, filter bson.M) ([]Group, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var groups []Group
	if err := cursor.All(ctx, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

func (r *GroupRepositoryImpl) Update(ctx context.Context, id string, group *Group) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	group.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"name":        group.Name,
			"invite_link": group.InviteLink,
			"region_id":   group.RegionID,
			"description": group.Description,
			"language":    group.Language,
			"updated_at":  group.UpdatedAt,
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *GroupRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
