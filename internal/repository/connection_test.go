package repository

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/mongodb"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// setupTestDB starts a MongoDB container and returns a connector bound to it.
func setupTestDB(t *testing.T) (*Connector, func()) {
	testcontainers.SkipIfProviderIsNotHealthy(t)
	ctx := context.Background()

	mongoContainer, err := mongodb.Run(ctx, "mongo:7")
	require.NoError(t, err)

	uri, err := mongoContainer.ConnectionString(ctx)
	require.NoError(t, err)

	conn := NewConnector(uri, "testdb")

	cleanup := func() {
		if err := conn.Close(ctx); err != nil {
			t.Logf("failed to disconnect: %s", err)
		}
		if err := mongoContainer.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	}

	return conn, cleanup
}

// unconnectedDatabase returns a database handle whose client never dials.
func unconnectedDatabase(t *testing.T) *mongo.Database {
	client, err := mongo.NewClient(options.Client().ApplyURI("mongodb://127.0.0.1:1"))
	require.NoError(t, err)
	return client.Database("testdb")
}

func TestConnector_ConcurrentFirstUseConnectsOnce(t *testing.T) {
	db := unconnectedDatabase(t)
	var calls int32

	conn := NewConnector("mongodb://unused", "testdb")
	conn.connect = func(context.Context, string, string) (*mongo.Database, error) {
		atomic.AddInt32(&calls, 1)
		return db, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := conn.Database(context.Background())
			assert.NoError(t, err)
			assert.Same(t, db, got)
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestConnector_CollectionsExposeNamedHandles(t *testing.T) {
	conn := NewConnector("mongodb://unused", "testdb")
	conn.connect = func(context.Context, string, string) (*mongo.Database, error) {
		return unconnectedDatabase(t), nil
	}

	cols, err := conn.Collections(context.Background())
	require.NoError(t, err)

	assert.Equal(t, UsersCollection, cols.Users.Name())
	assert.Equal(t, ProductsCollection, cols.Products.Name())
	assert.Equal(t, RatingsCollection, cols.Ratings.Name())
	assert.Equal(t, CategoriesCollection, cols.Categories.Name())
	assert.Equal(t, CartsCollection, cols.Carts.Name())
	assert.Equal(t, StoresCollection, cols.Stores.Name())
}

func TestConnector_FailedConnectIsRetried(t *testing.T) {
	db := unconnectedDatabase(t)
	attempts := 0

	conn := NewConnector("mongodb://unused", "testdb")
	conn.connect = func(context.Context, string, string) (*mongo.Database, error) {
		attempts++
		if attempts == 1 {
			return nil, errors.New("dial tcp: connection refused")
		}
		return db, nil
	}

	_, err := conn.Database(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrConnection)
	assert.Equal(t, KindConnection, KindOf(err))

	got, err := conn.Database(context.Background())
	require.NoError(t, err)
	assert.Same(t, db, got)
	assert.Equal(t, 2, attempts)
}

func TestConnector_CloseWithoutConnect(t *testing.T) {
	conn := NewConnector("mongodb://unused", "testdb")
	assert.NoError(t, conn.Close(context.Background()))
}

func TestKindOf(t *testing.T) {
	_, parseErr := ParseID("not-an-id")

	tests := []struct {
		name string
		err  error
		want ErrorKind
	}{
		{"nil", nil, KindNone},
		{"invalid id", parseErr, KindInvalidID},
		{"cart not found", ErrCartNotFound, KindNotFound},
		{"connection", ErrConnection, KindConnection},
		{"other", errors.New("boom"), KindStore},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, KindOf(tt.err))
		})
	}
}

func TestParseID(t *testing.T) {
	oid, err := ParseID("507f1f77bcf86cd799439011")
	require.NoError(t, err)
	assert.Equal(t, "507f1f77bcf86cd799439011", oid.Hex())

	_, err = ParseID("xyz")
	assert.ErrorIs(t, err, ErrInvalidID)
}
