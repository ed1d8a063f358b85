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

type MongoClientRepo struct {
	DB *mongo.Client
}

func NewMongoClientRepo(db *mongo.Client) *MongoClientRepo {
	return &MongoClientRepo{DB: db}
}

func (r *MongoClientRepo) collection() *mongo.Collection {
	return r.DB.Database("incargo").Collection("clientes")
}

func (r *MongoClientRepo) find(filter bson.M, sort bson.D) ([]*models.Client, error) {
	ctx := context.Background()
	if sort == nil {
		sort = bson.D{{Key: "created_at", Value: -1}}
	}
	cur, err := r.collection().Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Client
	for cur.Next(ctx) {
		var c models.Client
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, &c)
	}
	return out, cur.Err()
}

func (r *MongoClientRepo) GetAll() ([]*models.Client, error) {
	return r.find(bson.M{}, nil)
}

func (r *MongoClientRepo) GetByID(id string) (*models.Client, error) {
	var c models.Client
	err := r.collection().FindOne(context.Background(), bson.M{"_id": id}).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *MongoClientRepo) Create(data *models.CreateClient) (*models.Client, error) {
	now := time.Now().UTC()
	status := data.Status
	if status == "" {
		status = models.ClientActive
	}
	c := &models.Client{
		ID:                 uuid.NewString(),
		CompanyName:        data.CompanyName,
		NIT:                data.NIT,
		Contact:            data.Contact,
		Phone:              data.Phone,
		Email:              data.Email,
		Address:            data.Address,
		City:               data.City,
		Type:               data.Type,
		Status:             status,
		RegisteredAt:       now.Format(dateLayout),
		ContractedServices: append([]string{}, data.ContractedServices...),
		CreditLimit:        data.CreditLimit,
		PendingBalance:     data.PendingBalance,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	_, err := r.collection().InsertOne(context.Background(), c)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *MongoClientRepo) Update(data *models.UpdateClient) (*models.Client, error) {
	set := bson.M{}
	if data.CompanyName != nil {
		set["nombre_empresa"] = *data.CompanyName
	}
	if data.NIT != nil {
		set["nit"] = *data.NIT
	}
	if data.Contact != nil {
		set["contacto_principal"] = *data.Contact
	}
	if data.Phone != nil {
		set["telefono"] = *data.Phone
	}
	if data.Email != nil {
		set["email"] = *data.Email
	}
	if data.Address != nil {
		set["direccion"] = *data.Address
	}
	if data.City != nil {
		set["ciudad"] = *data.City
	}
	if data.Type != nil {
		set["tipo_cliente"] = *data.Type
	}
	if data.Status != nil {
		set["estado"] = *data.Status
	}
	if data.ContractedServices != nil {
		set["servicios_contratados"] = *data.ContractedServices
	}
	if data.CreditLimit != nil {
		set["limite_credito"] = *data.CreditLimit
	}
	if data.PendingBalance != nil {
		set["saldo_pendiente"] = *data.PendingBalance
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

func (r *MongoClientRepo) Delete(id string) (bool, error) {
	res, err := r.collection().DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoClientRepo) GetByType(clientType string) ([]*models.Client, error) {
	return r.find(bson.M{"tipo_cliente": clientType}, nil)
}

func (r *MongoClientRepo) GetActive() ([]*models.Client, error) {
	return r.find(bson.M{"estado": models.ClientActive},
		bson.D{{Key: "nombre_empresa", Value: 1}})
}

func (r *MongoClientRepo) Search(term string) ([]*models.Client, error) {
	pattern := bson.M{"$regex": term, "$options": "i"}
	return r.find(bson.M{"$or": []bson.M{
		{"nombre_empresa": pattern},
		{"nit": bson.M{"$regex": term}},
		{"contacto_principal": pattern},
	}}, nil)
}

func (r *MongoClientRepo) UpdateBalance(id string, balance float64) (bool, error) {
	res, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"saldo_pendiente": balance, "updated_at": time.Now().UTC()}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoClientRepo) AddContractedService(id, serviceType string) (bool, error) {
	// Filtering on $ne makes the call a no-op when the label is already there.
	res, err := r.collection().UpdateOne(context.Background(),
		bson.M{"_id": id, "servicios_contratados": bson.M{"$ne": serviceType}},
		bson.M{
			"$push": bson.M{"servicios_contratados": serviceType},
			"$set":  bson.M{"updated_at": time.Now().UTC()},
		})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoClientRepo) GetWithPendingBalance() ([]*models.Client, error) {
	return r.find(bson.M{"saldo_pendiente": bson.M{"$gt": 0}},
		bson.D{{Key: "saldo_pendiente", Value: -1}})
}
