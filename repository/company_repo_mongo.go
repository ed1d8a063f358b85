package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"incargo/models"
)

type MongoCompanyRepo struct {
	DB *mongo.Client
}

func NewMongoCompanyRepo(db *mongo.Client) *MongoCompanyRepo {
	return &MongoCompanyRepo{DB: db}
}

func (r *MongoCompanyRepo) collection() *mongo.Collection {
	return r.DB.Database("incargo").Collection("configuracion")
}

func (r *MongoCompanyRepo) Save(profile *models.CompanyProfile) error {
	profile.ID = 1
	if profile.CreatedAt.IsZero() {
		profile.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection().ReplaceOne(context.Background(),
		bson.M{"_id": profile.ID}, profile,
		options.Replace().SetUpsert(true))
	return err
}

func (r *MongoCompanyRepo) Get() (*models.CompanyProfile, error) {
	var p models.CompanyProfile
	err := r.collection().FindOne(context.Background(), bson.M{"_id": int64(1)}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
