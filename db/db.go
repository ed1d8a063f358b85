package db

type DBType string

const (
	Postgres DBType = "postgres"
	Mongo    DBType = "mongo"
	// Demo selects the seeded in-memory store; no connection is opened.
	Demo DBType = "demo"
)

// DB is the lifecycle every connected backend exposes to main. The demo
// store opens nothing and stays outside this interface.
type DB interface {
	Connect() error
	Disconnect() error
}
