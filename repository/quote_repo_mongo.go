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

type MongoQuoteRepo struct {
	DB *mongo.Client
}

func NewMongoQuoteRepo(db *mongo.Client) *MongoQuoteRepo {
	return &MongoQuoteRepo{DB: db}
}

func (r *MongoQuoteRepo) database() *mongo.Database {
	return r.DB.Database("incargo")
}

func (r *MongoQuoteRepo) populateClient(ctx context.Context, q *models.Quote) *models.Quote {
	var c models.Client
	err := r.database().Collection("clientes").FindOne(ctx, bson.M{"_id": q.ClientID}).Decode(&c)
	if err == nil {
		q.Client = &models.ClientRef{CompanyName: c.CompanyName, Contact: c.Contact, Email: c.Email}
	}
	return q
}

func (r *MongoQuoteRepo) find(filter bson.M, sort bson.D) ([]*models.Quote, error) {
	ctx := context.Background()
	if sort == nil {
		sort = bson.D{{Key: "created_at", Value: -1}}
	}
	cur, err := r.database().Collection("cotizaciones").Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Quote
	for cur.Next(ctx) {
		var q models.Quote
		if err := cur.Decode(&q); err != nil {
			return nil, err
		}
		out = append(out, r.populateClient(ctx, &q))
	}
	return out, cur.Err()
}

func (r *MongoQuoteRepo) GetAll() ([]*models.Quote, error) {
	return r.find(bson.M{}, nil)
}

func (r *MongoQuoteRepo) GetByID(id string) (*models.Quote, error) {
	ctx := context.Background()
	var q models.Quote
	err := r.database().Collection("cotizaciones").FindOne(ctx, bson.M{"_id": id}).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.populateClient(ctx, &q), nil
}

func (r *MongoQuoteRepo) Create(data *models.CreateQuote, number string) (*models.Quote, error) {
	now := time.Now().UTC()
	q := &models.Quote{
		ID:          uuid.NewString(),
		ClientID:    data.ClientID,
		Number:      number,
		ServiceType: data.ServiceType,
		Description: data.Description,
		Origin:      data.Origin,
		Destination: data.Destination,
		RequestedAt: now.Format(dateLayout),
		ValidUntil:  data.ValidUntil,
		Status:      models.QuoteDraft,
		CargoType:   data.CargoType,
		EstWeight:   data.EstWeight,
		EstVolume:   data.EstVolume,
		EstValue:    data.EstValue,
		DiscountPct: data.DiscountPct,
		FinalValue:  models.FinalValueFor(data.EstValue, data.DiscountPct),
		Notes:       data.Notes,
		Terms:       data.Terms,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	ctx := context.Background()
	if _, err := r.database().Collection("cotizaciones").InsertOne(ctx, q); err != nil {
		return nil, err
	}
	return r.populateClient(ctx, q), nil
}

func (r *MongoQuoteRepo) Update(data *models.UpdateQuote) (*models.Quote, error) {
	set := bson.M{}
	if data.ClientID != nil {
		set["cliente_id"] = *data.ClientID
	}
	if data.ServiceType != nil {
		set["tipo_servicio"] = *data.ServiceType
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
	if data.ValidUntil != nil {
		set["fecha_vencimiento"] = *data.ValidUntil
	}
	if data.Status != nil {
		set["estado"] = *data.Status
	}
	if data.CargoType != nil {
		set["tipo_carga"] = *data.CargoType
	}
	if data.EstWeight != nil {
		set["peso_estimado"] = *data.EstWeight
	}
	if data.EstVolume != nil {
		set["volumen_estimado"] = *data.EstVolume
	}
	if data.Notes != nil {
		set["observaciones"] = *data.Notes
	}
	if data.Terms != nil {
		set["terminos_condiciones"] = *data.Terms
	}

	if data.EstValue != nil || data.DiscountPct != nil {
		current, err := r.GetByID(data.ID)
		if err != nil {
			return nil, err
		}
		if current == nil {
			return nil, nil
		}
		estValue := current.EstValue
		discount := current.DiscountPct
		if data.EstValue != nil {
			estValue = *data.EstValue
			set["valor_estimado"] = estValue
		}
		if data.DiscountPct != nil {
			discount = *data.DiscountPct
			set["descuento_porcentaje"] = discount
		}
		set["valor_final"] = models.FinalValueFor(estValue, discount)
	}

	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	set["updated_at"] = time.Now().UTC()

	res, err := r.database().Collection("cotizaciones").UpdateOne(context.Background(),
		bson.M{"_id": data.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(data.ID)
}

func (r *MongoQuoteRepo) Delete(id string) (bool, error) {
	res, err := r.database().Collection("cotizaciones").DeleteOne(context.Background(), bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *MongoQuoteRepo) GetByStatus(status string) ([]*models.Quote, error) {
	return r.find(bson.M{"estado": status}, nil)
}

func (r *MongoQuoteRepo) GetByClient(clientID string) ([]*models.Quote, error) {
	return r.find(bson.M{"cliente_id": clientID}, nil)
}

func (r *MongoQuoteRepo) GetByDateRange(startDate, endDate string) ([]*models.Quote, error) {
	return r.find(bson.M{"fecha_solicitud": bson.M{"$gte": startDate, "$lte": endDate}},
		bson.D{{Key: "fecha_solicitud", Value: -1}})
}

func (r *MongoQuoteRepo) GetExpired(todayDate string) ([]*models.Quote, error) {
	return r.find(bson.M{
		"fecha_vencimiento": bson.M{"$lt": todayDate},
		"estado":            bson.M{"$in": []string{models.QuoteDraft, models.QuoteSent}},
	}, bson.D{{Key: "fecha_vencimiento", Value: 1}})
}

func (r *MongoQuoteRepo) MarkExpired(todayDate string) (int, error) {
	res, err := r.database().Collection("cotizaciones").UpdateMany(context.Background(),
		bson.M{
			"fecha_vencimiento": bson.M{"$lt": todayDate},
			"estado":            bson.M{"$in": []string{models.QuoteDraft, models.QuoteSent}},
		},
		bson.M{"$set": bson.M{"estado": models.QuoteExpired, "updated_at": time.Now().UTC()}})
	if err != nil {
		return 0, err
	}
	return int(res.ModifiedCount), nil
}

func (r *MongoQuoteRepo) UpdateStatus(id, status string, from ...string) (bool, error) {
	filter := bson.M{"_id": id}
	if len(from) > 0 {
		filter["estado"] = bson.M{"$in": from}
	}
	res, err := r.database().Collection("cotizaciones").UpdateOne(context.Background(),
		filter,
		bson.M{"$set": bson.M{"estado": status, "updated_at": time.Now().UTC()}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoQuoteRepo) LatestNumber(prefix string) (string, error) {
	ctx := context.Background()
	var q models.Quote
	err := r.database().Collection("cotizaciones").FindOne(ctx,
		bson.M{"numero_cotizacion": bson.M{"$regex": "^" + prefix}},
		options.FindOne().SetSort(bson.D{{Key: "numero_cotizacion", Value: -1}}),
	).Decode(&q)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return q.Number, nil
}

func (r *MongoQuoteRepo) UpdatePDFInfo(id, path string, createdAt time.Time) error {
	_, err := r.database().Collection("cotizaciones").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"pdf_path": path, "pdf_created_at": createdAt}})
	return err
}
