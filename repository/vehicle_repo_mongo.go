package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"incargo/models"
)

type MongoVehicleRepo struct {
	DB *mongo.Client
}

func NewMongoVehicleRepo(db *mongo.Client) *MongoVehicleRepo {
	return &MongoVehicleRepo{DB: db}
}

func (r *MongoVehicleRepo) collection() *mongo.Collection {
	return r.DB.Database("incargo").Collection("vehiculos")
}

func (r *MongoVehicleRepo) find(filter bson.M) ([]*models.Vehicle, error) {
	ctx := context.Background()
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cur, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Vehicle
	for cur.Next(ctx) {
		var v models.Vehicle
		if err := cur.Decode(&v); err != nil {
			return nil, err
		}
		out = append(out, &v)
	}
	return out, cur.Err()
}

func (r *MongoVehicleRepo) GetAll() ([]*models.Vehicle, error) {
	return r.find(bson.M{})
}

func (r *MongoVehicleRepo) GetByID(id string) (*models.Vehicle, error) {
	var v models.Vehicle
	err := r.collection().FindOne(context.Background(), bson.M{"_id": id}).Decode(&v)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *MongoVehicleRepo) Create(data *models.CreateVehicle) (*models.Vehicle, error) {
	now := time.Now().UTC()
	status := data.Status
	if status == "" {
		status = models.VehicleAvailable
	}
	v := &models.Vehicle{
		ID:           uuid.NewString(),
		Plate:        data.Plate,
		Type:         data.Type,
		Model:        data.Model,
		Make:         data.Make,
		Year:         data.Year,
		Driver:       data.Driver,
		Status:       status,
		SoatExpiry:   data.SoatExpiry,
		TechExpiry:   data.TechExpiry,
		Location:     data.Location,
		Kilometers:   data.Kilometers,
		CapacityTons: data.CapacityTons,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	_, err := r.collection().InsertOne(context.Background(), v)
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (r *MongoVehicleRepo) Update(data *models.UpdateVehicle) (*models.Vehicle, error) {
	set := bson.M{}
	if data.Plate != nil {
		set["placa"] = *data.Plate
	}
	if data.Type != nil {
		set["tipo"] = *data.Type
	}
	if data.Model != nil {
		set["modelo"] = *data.Model
	}
	if data.Make != nil {
		set["marca"] = *data.Make
	}
	if data.Year != nil {
		set["anio"] = *data.Year
	}
	if data.Driver != nil {
		set["conductor"] = *data.Driver
	}
	if data.Status != nil {
		set["estado"] = *data.Status
	}
	if data.SoatExpiry != nil {
		set["soat_vence"] = *data.SoatExpiry
	}
	if data.TechExpiry != nil {
		set["tecno_vence"] = *data.TechExpiry
	}
	if data.Location != nil {
		set["ubicacion_actual"] = *data.Location
	}
	if data.Kilometers != nil {
		set["kilometraje"] = *data.Kilometers
	}
	if data.CapacityTons != nil {
		set["capacidad_toneladas"] = *data.CapacityTons
	}
	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	set["updated_at"] = time.Now().UTC()

	res, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": data.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(data.ID)
}

func (r *MongoVehicleRepo) Delete(id string) (bool, error) {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoVehicleRepo) GetByStatus(status string) ([]*models.Vehicle, error) {
	return r.find(bson.M{"estado": status})
}

func (r *MongoVehicleRepo) GetNearExpiry(days int) ([]*models.Vehicle, error) {
	cutoff := dateIn(days)
	return r.find(bson.M{"$or": []bson.M{
		{"soat_vence": bson.M{"$lte": cutoff}},
		{"tecno_vence": bson.M{"$lte": cutoff}},
	}})
}

func (r *MongoVehicleRepo) UpdateLocation(id, location string) (bool, error) {
	res, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"ubicacion_actual": location, "updated_at": time.Now().UTC()}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoVehicleRepo) UpdateKilometers(id string, km int) (bool, error) {
	res, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"kilometraje": km, "updated_at": time.Now().UTC()}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}
