package mongo

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const opTimeout = 10 * time.Second

// MongoDB wraps the driver client behind the same Connect/Disconnect shape
// as the Postgres backend. Timeouts are scoped per call; a stored context
// would expire and poison every operation after it.
type MongoDB struct {
	Client *mongo.Client
	URL    string
}

func NewMongoDB(url string) *MongoDB {
	return &MongoDB{URL: url}
}

func (m *MongoDB) Connect() error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().
		ApplyURI(m.URL).
		SetServerSelectionTimeout(opTimeout))
	if err != nil {
		return err
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		return err
	}
	m.Client = client
	return nil
}

func (m *MongoDB) Disconnect() error {
	if m.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	return m.Client.Disconnect(ctx)
}
