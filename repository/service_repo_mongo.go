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

type MongoServiceRepo struct {
	DB *mongo.Client
}

func NewMongoServiceRepo(db *mongo.Client) *MongoServiceRepo {
	return &MongoServiceRepo{DB: db}
}

func (r *MongoServiceRepo) database() *mongo.Database {
	return r.DB.Database("incargo")
}

// populateRefs loads the denormalized client and vehicle slices from their
// own collections. Missing references are simply left nil.
func (r *MongoServiceRepo) populateRefs(ctx context.Context, s *models.Service) *models.Service {
	db := r.database()
	var c models.Client
	if err := db.Collection("clientes").FindOne(ctx, bson.M{"_id": s.ClientID}).Decode(&c); err == nil {
		s.Client = &models.ClientRef{CompanyName: c.CompanyName, Contact: c.Contact}
	}
	if s.VehicleID != nil {
		var v models.Vehicle
		if err := db.Collection("vehiculos").FindOne(ctx, bson.M{"_id": *s.VehicleID}).Decode(&v); err == nil {
			s.Vehicle = &models.VehicleRef{Plate: v.Plate, Type: v.Type}
		}
	}
	return s
}

func (r *MongoServiceRepo) find(filter bson.M, sort bson.D) ([]*models.Service, error) {
	ctx := context.Background()
	if sort == nil {
		sort = bson.D{{Key: "created_at", Value: -1}}
	}
	cur, err := r.database().Collection("servicios").Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Service
	for cur.Next(ctx) {
		var s models.Service
		if err := cur.Decode(&s); err != nil {
			return nil, err
		}
		out = append(out, r.populateRefs(ctx, &s))
	}
	return out, cur.Err()
}

func (r *MongoServiceRepo) GetAll() ([]*models.Service, error) {
	return r.find(bson.M{}, nil)
}

func (r *MongoServiceRepo) GetByID(id string) (*models.Service, error) {
	ctx := context.Background()
	var s models.Service
	err := r.database().Collection("servicios").FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.populateRefs(ctx, &s), nil
}

func (r *MongoServiceRepo) Create(data *models.CreateService) (*models.Service, error) {
	now := time.Now().UTC()
	s := &models.Service{
		ID:          uuid.NewString(),
		ClientID:    data.ClientID,
		Type:        data.Type,
		Description: data.Description,
		Origin:      data.Origin,
		Destination: data.Destination,
		StartDate:   data.StartDate,
		DueDate:     data.DueDate,
		Status:      models.ServicePending,
		VehicleID:   data.VehicleID,
		Driver:      data.Driver,
		CargoType:   data.CargoType,
		WeightKG:    data.WeightKG,
		TotalValue:  data.TotalValue,
		Notes:       data.Notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ctx := context.Background()
	if _, err := r.database().Collection("servicios").InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return r.populateRefs(ctx, s), nil
}

func (r *MongoServiceRepo) Update(data *models.UpdateService) (*models.Service, error) {
	set := bson.M{}
	if data.ClientID != nil {
		set["cliente_id"] = *data.ClientID
	}
	if data.Type != nil {
		set["tipo_servicio"] = *data.Type
	}
	if data.Description != nil {
		set["descripcion"] = *data.Description
	}
	if data.Origin != nil {
		set["origen"] = *data.Origin
	}
	if data.Destination != nil {
		set["destino"] = *data.Destination
	}
	if data.StartDate != nil {
		set["fecha_inicio"] = *data.StartDate
	}
	if data.DueDate != nil {
		set["fecha_estimada"] = *data.DueDate
	}
	if data.CompletedAt != nil {
		set["fecha_completado"] = *data.CompletedAt
	}
	if data.Status != nil {
		set["estado"] = *data.Status
	}
	if data.VehicleID != nil {
		set["vehiculo_id"] = *data.VehicleID
	}
	if data.Driver != nil {
		set["conductor"] = *data.Driver
	}
	if data.CargoType != nil {
		set["carga_tipo"] = *data.CargoType
	}
	if data.WeightKG != nil {
		set["peso_kg"] = *data.WeightKG
	}
	if data.TotalValue != nil {
		set["valor_total"] = *data.TotalValue
	}
	if data.Notes != nil {
		set["observaciones"] = *data.Notes
	}
	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	set["updated_at"] = time.Now().UTC()

	res, err := r.database().Collection("servicios").UpdateOne(context.Background(),
		bson.M{"_id": data.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(data.ID)
}

func (r *MongoServiceRepo) Delete(id string) (bool, error) {
	res, err := r.database().Collection("servicios").DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoServiceRepo) GetByStatus(status string) ([]*models.Service, error) {
	return r.find(bson.M{"estado": status}, nil)
}

func (r *MongoServiceRepo) GetByClient(clientID string) ([]*models.Service, error) {
	return r.find(bson.M{"cliente_id": clientID}, nil)
}

func (r *MongoServiceRepo) GetByVehicle(vehicleID string) ([]*models.Service, error) {
	return r.find(bson.M{"vehiculo_id": vehicleID}, nil)
}

func (r *MongoServiceRepo) GetByDateRange(startDate, endDate string) ([]*models.Service, error) {
	return r.find(bson.M{"fecha_inicio": bson.M{"$gte": startDate, "$lte": endDate}},
		bson.D{{Key: "fecha_inicio", Value: -1}})
}

func (r *MongoServiceRepo) GetActive() ([]*models.Service, error) {
	return r.find(bson.M{"estado": bson.M{"$in": []string{models.ServicePending, models.ServiceInProgress}}}, nil)
}

func (r *MongoServiceRepo) GetOverdue() ([]*models.Service, error) {
	return r.find(bson.M{
		"estado":         bson.M{"$in": []string{models.ServicePending, models.ServiceInProgress}},
		"fecha_estimada": bson.M{"$lt": today()},
	}, bson.D{{Key: "fecha_estimada", Value: 1}})
}

func (r *MongoServiceRepo) UpdateStatus(id, status string) (bool, error) {
	now := time.Now().UTC()
	set := bson.M{"estado": status, "updated_at": now}
	if status == models.ServiceCompleted {
		set["fecha_completado"] = now.Format(time.RFC3339)
	}
	res, err := r.database().Collection("servicios").UpdateOne(context.Background(),
		bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoServiceRepo) Cancel(id, reason string) (bool, error) {
	set := bson.M{"estado": models.ServiceCancelled, "updated_at": time.Now().UTC()}
	if reason != "" {
		set["observaciones"] = reason
	}
	res, err := r.database().Collection("servicios").UpdateOne(context.Background(),
		bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoServiceRepo) AssignVehicle(serviceID, vehicleID string) (bool, error) {
	res, err := r.database().Collection("servicios").UpdateOne(context.Background(),
		bson.M{"_id": serviceID},
		bson.M{"$set": bson.M{"vehiculo_id": vehicleID, "updated_at": time.Now().UTC()}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoServiceRepo) RevenueByPeriod(startDate, endDate string) (float64, error) {
	ctx := context.Background()
	cur, err := r.database().Collection("servicios").Aggregate(ctx, mongo.Pipeline{
		{{Key: "$match", Value: bson.M{
			"estado":       models.ServiceCompleted,
			"fecha_inicio": bson.M{"$gte": startDate, "$lte": endDate},
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":   nil,
			"total": bson.M{"$sum": "$valor_total"},
		}}},
	})
	if err != nil {
		return 0, err
	}
	defer cur.Close(ctx)

	var row struct {
		Total float64 `bson:"total"`
	}
	if cur.Next(ctx) {
		if err := cur.Decode(&row); err != nil {
			return 0, err
		}
	}
	return row.Total, cur.Err()
}
