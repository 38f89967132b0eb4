package book

import (
	"context"
	"time"

	"bbt-connect/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type BookRepository interface {
	Create(ctx context.Context, book *Book) error
	Get(ctx context.Context, id string) (*Book, error)
	List(ctx context.Context) ([]Book, error)
	Update(ctx context.Context, id string, book *Book) error
	Delete(ctx context.Context, id string) error
}

type BookRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewBookRepository(db *database.MongodbDB) BookRepository {
	return &BookRepositoryImpl{
		Collection: db.DB.Collection("books"),
	}
}

func (r *BookRepositoryImpl) Create(ctx context.Context, book *Book) error {
	if book.ID.IsZero() {
		book.ID = primitive.NewObjectID()
	}
	book.CreatedAt = time.Now()
	book.UpdatedAt = time.Now()
	_, err := r.Collection.InsertOne(ctx, book)
	return err
}

func (r *BookRepositoryImpl) Get(ctx context.Context, id string) (*Book, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var book Book
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&book)
	if err != nil {
		return nil, err
	}
	return &book, nil
}

func (r *BookRepositoryImpl) List(ctx context.Context) ([]Book, error) {
	opts := options.Find().SetSort(bson.D{{Key: "title", Value: 1}})
	cursor, err := r.Collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var books []Book
	if err := cursor.All(ctx, &books); err != nil {
		return nil, err
	}
	return books, nil
}

func (r *BookRepositoryImpl) Update(ctx context.Context, id string, book *Book) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	book.UpdatedAt = time.Now()
	update := bson.M{
		"$set": bson.M{
			"title":       book.Title,
			"publisher":   book.Publisher,
			"points":      book.Points,
			"is_bbt_book": book.IsBBTBook,
			"category":    book.Category,
			"language":    book.Language,
			"updated_at":  book.UpdatedAt,
		},
	}
	_, err = r.Collection.UpdateOne(ctx, bson.M{"_id": oid}, update)
	return err
}

func (r *BookRepositoryImpl) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return err
	}
	_, err = r.Collection.DeleteOne(ctx, bson.M{"_id": oid})
	return err
}
