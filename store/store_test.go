package store_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junioryono/beca/fault"
	"github.com/junioryono/beca/store"
)

func TestConnect(t *testing.T) {
	ctx := context.Background()

	t.Run("empty uri", func(t *testing.T) {
		client, err := store.Connect(ctx, "")
		assert.ErrorIs(t, err, store.ErrEmptyURI)
		assert.Nil(t, client)
	})

	t.Run("malformed uri", func(t *testing.T) {
		client, err := store.Connect(ctx, "not-a-mongodb-uri")
		require.Error(t, err)
		assert.Nil(t, client)
		_, tagged := fault.KindOf(err)
		assert.False(t, tagged, "construction errors are returned raw")
	})

	t.Run("connect does not require a reachable server", func(t *testing.T) {
		client, err := store.Connect(ctx, "mongodb://127.0.0.1:1")
		require.NoError(t, err)
		require.NotNil(t, client)
		assert.NoError(t, client.Disconnect(ctx))
	})
}

func TestDatabase(t *testing.T) {
	ctx := context.Background()

	_, err := store.Database(nil, "beca")
	assert.ErrorIs(t, err, store.ErrNilClient)

	client, err := store.Connect(ctx, "mongodb://127.0.0.1:1")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Disconnect(ctx) })

	_, err = store.Database(client, "")
	assert.ErrorIs(t, err, store.ErrEmptyDatabaseName)

	db, err := store.Database(client, "beca-test")
	require.NoError(t, err)
	assert.Equal(t, "beca-test", db.Name())
	assert.Same(t, client, db.Client())
}

func TestPingNilClient(t *testing.T) {
	err := store.Ping(context.Background(), nil)
	assert.True(t, fault.TypeOf(err, fault.Database))
	assert.ErrorIs(t, err, store.ErrNilClient)
}

func TestID(t *testing.T) {
	generated := primitive.NewObjectID()

	tests := []struct {
		name    string
		input   string
		want    primitive.ObjectID
		wantErr bool
	}{
		{name: "hex", input: generated.Hex(), want: generated},
		{name: "twelve bytes", input: "123456789098", want: primitive.ObjectID{'1', '2', '3', '4', '5', '6', '7', '8', '9', '0', '9', '8'}},
		{name: "too short", input: "invalidsourceid", wantErr: true},
		{name: "bad hex", input: "zzzzzzzzzzzzzzzzzzzzzzzz", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := store.ID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, fault.TypeOf(err, fault.Database))
				assert.Equal(t, primitive.NilObjectID, id)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}
