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

type MongoContainerRepo struct {
	DB *mongo.Client
}

func NewMongoContainerRepo(db *mongo.Client) *MongoContainerRepo {
	return &MongoContainerRepo{DB: db}
}

func (r *MongoContainerRepo) database() *mongo.Database {
	return r.DB.Database("incargo")
}

func (r *MongoContainerRepo) populateClient(ctx context.Context, c *models.Container) *models.Container {
	var cl models.Client
	err := r.database().Collection("clientes").FindOne(ctx, bson.M{"_id": c.ClientID}).Decode(&cl)
	if err == nil {
		c.Client = &models.ClientRef{CompanyName: cl.CompanyName, Contact: cl.Contact}
	}
	return c
}

func (r *MongoContainerRepo) find(filter bson.M, sort bson.D) ([]*models.Container, error) {
	ctx := context.Background()
	if sort == nil {
		sort = bson.D{{Key: "created_at", Value: -1}}
	}
	cur, err := r.database().Collection("contenedores").Find(ctx, filter, options.Find().SetSort(sort))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.Container
	for cur.Next(ctx) {
		var c models.Container
		if err := cur.Decode(&c); err != nil {
			return nil, err
		}
		out = append(out, r.populateClient(ctx, &c))
	}
	return out, cur.Err()
}

func (r *MongoContainerRepo) GetAll() ([]*models.Container, error) {
	return r.find(bson.M{}, nil)
}

func (r *MongoContainerRepo) getOne(filter bson.M) (*models.Container, error) {
	ctx := context.Background()
	var c models.Container
	err := r.database().Collection("contenedores").FindOne(ctx, filter).Decode(&c)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return r.populateClient(ctx, &c), nil
}

func (r *MongoContainerRepo) GetByID(id string) (*models.Container, error) {
	return r.getOne(bson.M{"_id": id})
}

func (r *MongoContainerRepo) GetByNumber(number string) (*models.Container, error) {
	return r.getOne(bson.M{"numero_contenedor": number})
}

func (r *MongoContainerRepo) Create(data *models.CreateContainer) (*models.Container, error) {
	now := time.Now().UTC()
	c := &models.Container{
		ID:           uuid.NewString(),
		Number:       data.Number,
		Type:         data.Type,
		Size:         data.Size,
		ClientID:     data.ClientID,
		Origin:       data.Origin,
		Destination:  data.Destination,
		ArrivalDate:  data.ArrivalDate,
		EstDelivery:  data.EstDelivery,
		Status:       models.ContainerInTransit,
		Location:     data.Location,
		TargetTemp:   data.TargetTemp,
		GrossWeight:  data.GrossWeight,
		NetWeight:    data.NetWeight,
		Goods:        data.Goods,
		Notes:        data.Notes,
		BillOfLading: data.BillOfLading,
		Carrier:      data.Carrier,
		Vessel:       data.Vessel,
		Voyage:       data.Voyage,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	ctx := context.Background()
	if _, err := r.database().Collection("contenedores").InsertOne(ctx, c); err != nil {
		return nil, err
	}
	return r.populateClient(ctx, c), nil
}

func (r *MongoContainerRepo) Update(data *models.UpdateContainer) (*models.Container, error) {
	set := bson.M{}
	if data.Number != nil {
		set["numero_contenedor"] = *data.Number
	}
	if data.Type != nil {
		set["tipo"] = *data.Type
	}
	if data.Size != nil {
		set["tamano"] = *data.Size
	}
	if data.ClientID != nil {
		set["cliente_id"] = *data.ClientID
	}
	if data.Origin != nil {
		set["origen"] = *data.Origin
	}
	if data.Destination != nil {
		set["destino"] = *data.Destination
	}
	if data.ArrivalDate != nil {
		set["fecha_llegada"] = *data.ArrivalDate
	}
	if data.EstDelivery != nil {
		set["fecha_entrega_estimada"] = *data.EstDelivery
	}
	if data.ActDelivery != nil {
		set["fecha_entrega_real"] = *data.ActDelivery
	}
	if data.Status != nil {
		set["estado"] = *data.Status
	}
	if data.Location != nil {
		set["ubicacion_actual"] = *data.Location
	}
	if data.CurrentTemp != nil {
		set["temperatura_actual"] = *data.CurrentTemp
	}
	if data.TargetTemp != nil {
		set["temperatura_objetivo"] = *data.TargetTemp
	}
	if data.GrossWeight != nil {
		set["peso_bruto"] = *data.GrossWeight
	}
	if data.NetWeight != nil {
		set["peso_neto"] = *data.NetWeight
	}
	if data.Goods != nil {
		set["mercancia"] = *data.Goods
	}
	if data.Notes != nil {
		set["observaciones"] = *data.Notes
	}
	if data.BillOfLading != nil {
		set["numero_bl"] = *data.BillOfLading
	}
	if data.Carrier != nil {
		set["naviera"] = *data.Carrier
	}
	if data.Vessel != nil {
		set["buque"] = *data.Vessel
	}
	if data.Voyage != nil {
		set["viaje"] = *data.Voyage
	}
	if len(set) == 0 {
		return r.GetByID(data.ID)
	}
	set["updated_at"] = time.Now().UTC()

	res, err := r.database().Collection("contenedores").UpdateOne(context.Background(),
		bson.M{"_id": data.ID}, bson.M{"$set": set})
	if err != nil {
		return nil, err
	}
	if res.MatchedCount == 0 {
		return nil, nil
	}
	return r.GetByID(data.ID)
}

func (r *MongoContainerRepo) Delete(id string) (bool, error) {
	ctx := context.Background()
	res, err := r.database().Collection("contenedores").DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, err
	}
	if res.DeletedCount == 0 {
		return false, nil
	}
	_, _ = r.database().Collection("contenedor_tracking").DeleteMany(ctx, bson.M{"contenedor_id": id})
	return true, nil
}

func (r *MongoContainerRepo) GetByStatus(status string) ([]*models.Container, error) {
	return r.find(bson.M{"estado": status}, nil)
}

func (r *MongoContainerRepo) GetByClient(clientID string) ([]*models.Container, error) {
	return r.find(bson.M{"cliente_id": clientID}, nil)
}

func (r *MongoContainerRepo) GetByType(containerType string) ([]*models.Container, error) {
	return r.find(bson.M{"tipo": containerType}, nil)
}

func (r *MongoContainerRepo) GetReefer() ([]*models.Container, error) {
	return r.GetByType(models.ContainerReefer)
}

func (r *MongoContainerRepo) GetNearDelivery(days int) ([]*models.Container, error) {
	return r.find(bson.M{
		"estado":                 bson.M{"$nin": []string{models.ContainerDelivered, models.ContainerReturned}},
		"fecha_entrega_estimada": bson.M{"$lte": dateIn(days)},
	}, bson.D{{Key: "fecha_entrega_estimada", Value: 1}})
}

func (r *MongoContainerRepo) GetOverdue() ([]*models.Container, error) {
	return r.find(bson.M{
		"estado":                 bson.M{"$nin": []string{models.ContainerDelivered, models.ContainerReturned}},
		"fecha_entrega_estimada": bson.M{"$lt": today()},
	}, bson.D{{Key: "fecha_entrega_estimada", Value: 1}})
}

func (r *MongoContainerRepo) Search(term string) ([]*models.Container, error) {
	pattern := bson.M{"$regex": term, "$options": "i"}
	return r.find(bson.M{"$or": []bson.M{
		{"numero_contenedor": pattern},
		{"numero_bl": pattern},
		{"naviera": pattern},
		{"mercancia": pattern},
	}}, nil)
}

func (r *MongoContainerRepo) UpdateLocation(id, location, description, user string) (bool, error) {
	ctx := context.Background()
	now := time.Now().UTC()
	res, err := r.database().Collection("contenedores").UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"ubicacion_actual": location, "updated_at": now}})
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, nil
	}

	if description == "" {
		description = "Ubicación actualizada: " + location
	}
	_, err = r.AddTrackingEvent(&models.ContainerTracking{
		ContainerID: id,
		EventDate:   now.Format(time.RFC3339),
		Location:    location,
		Description: description,
		User:        user,
	})
	return true, err
}

func (r *MongoContainerRepo) UpdateTemperature(id string, temperature float64) (bool, error) {
	res, err := r.database().Collection("contenedores").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"temperatura_actual": temperature, "updated_at": time.Now().UTC()}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoContainerRepo) Deliver(id, deliveryDate string) (bool, error) {
	if deliveryDate == "" {
		deliveryDate = today()
	}
	res, err := r.database().Collection("contenedores").UpdateOne(context.Background(),
		bson.M{"_id": id},
		bson.M{"$set": bson.M{
			"estado":             models.ContainerDelivered,
			"fecha_entrega_real": deliveryDate,
			"updated_at":         time.Now().UTC(),
		}})
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

func (r *MongoContainerRepo) AddTrackingEvent(event *models.ContainerTracking) (*models.ContainerTracking, error) {
	ev := *event
	ev.ID = uuid.NewString()
	ev.CreatedAt = time.Now().UTC()
	if ev.EventDate == "" {
		ev.EventDate = ev.CreatedAt.Format(time.RFC3339)
	}
	_, err := r.database().Collection("contenedor_tracking").InsertOne(context.Background(), &ev)
	if err != nil {
		return nil, err
	}
	return &ev, nil
}

func (r *MongoContainerRepo) GetTracking(containerID string) ([]*models.ContainerTracking, error) {
	ctx := context.Background()
	cur, err := r.database().Collection("contenedor_tracking").Find(ctx,
		bson.M{"contenedor_id": containerID},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.ContainerTracking
	for cur.Next(ctx) {
		var ev models.ContainerTracking
		if err := cur.Decode(&ev); err != nil {
			return nil, err
		}
		out = append(out, &ev)
	}
	return out, cur.Err()
}
