package repository

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection      = "users"
	ProductsCollection   = "products"
	RatingsCollection    = "ratings"
	CategoriesCollection = "categories"
	CartsCollection      = "carts"
	// StoresCollection is provisioned but no route reads or writes it.
	StoresCollection = "stores"
)

func ConnectMongoDB(ctx context.Context, uri, database string) (*mongo.Database, error) {
	clientOpts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(10 * time.Second).
		SetServerSelectionTimeout(5 * time.Second).
		SetMaxPoolSize(100).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	// Ping to verify connection
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(database), nil
}

// Collections holds the named handles of the single logical database.
type Collections struct {
	Users      *mongo.Collection
	Products   *mongo.Collection
	Ratings    *mongo.Collection
	Categories *mongo.Collection
	Carts      *mongo.Collection
	Stores     *mongo.Collection
}

type connectFunc func(ctx context.Context, uri, database string) (*mongo.Database, error)

// Connector opens the MongoDB connection on first use and shares it for the
// life of the process. Concurrent first callers wait on the same attempt; a
// failed attempt is not cached.
type Connector struct {
	uri      string
	database string
	connect  connectFunc

	mu   sync.Mutex
	db   *mongo.Database
	cols *Collections
}

func NewConnector(uri, database string) *Connector {
	return &Connector{
		uri:      uri,
		database: database,
		connect:  ConnectMongoDB,
	}
}

func (c *Connector) Database(ctx context.Context) (*mongo.Database, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db != nil {
		return c.db, nil
	}

	db, err := c.connect(ctx, c.uri, c.database)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnection, err)
	}

	c.db = db
	c.cols = &Collections{
		Users:      db.Collection(UsersCollection),
		Products:   db.Collection(ProductsCollection),
		Ratings:    db.Collection(RatingsCollection),
		Categories: db.Collection(CategoriesCollection),
		Carts:      db.Collection(CartsCollection),
		Stores:     db.Collection(StoresCollection),
	}
	return db, nil
}

func (c *Connector) Collections(ctx context.Context) (*Collections, error) {
	if _, err := c.Database(ctx); err != nil {
		return nil, err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.cols, nil
}

// Ping connects if needed and checks the primary is reachable.
func (c *Connector) Ping(ctx context.Context) error {
	db, err := c.Database(ctx)
	if err != nil {
		return err
	}
	if err := db.Client().Ping(ctx, nil); err != nil {
		return fmt.Errorf("%w: %v", ErrConnection, err)
	}
	return nil
}

func (c *Connector) Close(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.db == nil {
		return nil
	}
	err := c.db.Client().Disconnect(ctx)
	c.db = nil
	c.cols = nil
	return err
}
