package report

import (
	"context"
	"time"

	"bbt-connect/internal/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ReportRepository interface {
	Create(ctx context.Context, report *MonthlyReport) error
	Get(ctx context.Context, id string) (*MonthlyReport, error)
	List(ctx context.Context) ([]MonthlyReport, error)
	ListByYear(ctx context.Context, year int) ([]MonthlyReport, error)
}

type ReportRepositoryImpl struct {
	Collection *mongo.Collection
}

func NewReportRepository(db *database.MongodbDB) ReportRepository {
	return &ReportRepositoryImpl{
		Collection: db.DB.Collection("monthly_reports"),
	}
}

func (r *ReportRepositoryImpl) Create(ctx context.Context, report *MonthlyReport) error {
	if report.ID.IsZero() {
		report.ID = primitive.NewObjectID()
	}
	report.UploadedAt = time.Now()
	_, err := r.Collection.InsertOne(ctx, report)
	return err
}

func (r *ReportRepositoryImpl) Get(ctx context.Context, id string) (*MonthlyReport, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, err
	}
	var report MonthlyReport
	err = r.Collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&report)
	if err != nil {
		return nil, err
	}
	return &report, nil
}

func (r *ReportRepositoryImpl) List(ctx context.Context) ([]MonthlyReport, error) {
	return r.find(ctx, bson.M{})
}

func (r *ReportRepositoryImpl) ListByYear(ctx context.Context, year int) ([]MonthlyReport, error) {
	return r.find(ctx, bson.M{"year": year})
}

func (r *ReportRepositoryImpl) find(ctx context.Context, filter bson.M) ([]MonthlyReport, error) {
	opts := options.Find().SetSort(bson.D{{Key: "uploaded_at", Value: -1}})
	cursor, err := r.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var reports []MonthlyReport
	if err := cursor.All(ctx, &reports); err != nil {
		return nil, err
	}
	return reports, nil
}
