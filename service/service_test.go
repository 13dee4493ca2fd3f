package service_test

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/junioryono/beca/fault"
	"github.com/junioryono/beca/internal/testutil"
	"github.com/junioryono/beca/record"
	"github.com/junioryono/beca/service"
	"github.com/junioryono/beca/store"
)

func TestGetAll(t *testing.T) {
	ctx := context.Background()

	t.Run("empty collection", func(t *testing.T) {
		svc := service.NewTargets(testutil.NewMemoryCollection(testutil.TargetID))

		targets, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.NotNil(t, targets)
		assert.Empty(t, targets)
	})

	t.Run("returns stored records unchanged", func(t *testing.T) {
		seed := testutil.Responses()
		svc := service.NewResponses(testutil.NewMemoryCollection(testutil.ResponseID, seed...))

		responses, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, seed, responses)
	})

	t.Run("mappings", func(t *testing.T) {
		seed := testutil.Mappings()
		svc := service.NewMappings(testutil.NewMemoryCollection(testutil.MappingID, seed...))

		mappings, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, seed, mappings)
	})

	t.Run("nil slice from collection becomes empty", func(t *testing.T) {
		svc := service.NewSources(nilFinder{})

		sources, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []record.Source{}, sources)
	})
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	seed := testutil.Sources()
	svc := service.NewSources(testutil.NewMemoryCollection(testutil.SourceID, seed...))

	t.Run("empty id returns nil", func(t *testing.T) {
		source, err := svc.GetByID(ctx, "")
		require.NoError(t, err)
		assert.Nil(t, source)
	})

	t.Run("malformed id is a database error", func(t *testing.T) {
		source, err := svc.GetByID(ctx, "invalidsourceid")
		testutil.AssertKind(t, err, fault.Database)
		assert.Nil(t, source)
	})

	t.Run("well formed but absent id returns nil", func(t *testing.T) {
		source, err := svc.GetByID(ctx, "123456789098")
		require.NoError(t, err)
		assert.Nil(t, source)

		source, err = svc.GetByID(ctx, primitive.NewObjectID().Hex())
		require.NoError(t, err)
		assert.Nil(t, source)
	})

	t.Run("existing id returns the stored record", func(t *testing.T) {
		source, err := svc.GetByID(ctx, seed[1].ID.Hex())
		require.NoError(t, err)
		require.NotNil(t, source)
		assert.Equal(t, seed[1], *source)
	})
}

func TestInsert(t *testing.T) {
	ctx := context.Background()

	t.Run("nil record is a format error per entity", func(t *testing.T) {
		_, err := service.NewTargets(testutil.NewMemoryCollection(testutil.TargetID)).Insert(ctx, nil)
		testutil.AssertKind(t, err, fault.TargetFormat)

		_, err = service.NewResponses(testutil.NewMemoryCollection(testutil.ResponseID)).Insert(ctx, nil)
		testutil.AssertKind(t, err, fault.ResponseFormat)

		_, err = service.NewSources(testutil.NewMemoryCollection(testutil.SourceID)).Insert(ctx, nil)
		testutil.AssertKind(t, err, fault.SourceFormat)
	})

	t.Run("format check runs before the collection is touched", func(t *testing.T) {
		_, err := service.NewTargets(testutil.PanickingCollection[record.Target]{}).Insert(ctx, nil)
		testutil.AssertKind(t, err, fault.TargetFormat)
	})

	t.Run("returns the record with a generated id", func(t *testing.T) {
		coll := testutil.NewMemoryCollection(testutil.TargetID)
		svc := service.NewTargets(coll)
		input := testutil.NewTarget()

		stored, err := svc.Insert(ctx, input)
		require.NoError(t, err)
		require.NotNil(t, stored)

		assert.False(t, stored.ID.IsZero())
		expected := *input
		expected.ID = stored.ID
		assert.Equal(t, expected, *stored)
		assert.True(t, input.ID.IsZero(), "input must not be mutated")

		found, err := svc.GetByID(ctx, stored.ID.Hex())
		require.NoError(t, err)
		assert.Equal(t, stored, found)
	})

	t.Run("inserted records are all returned", func(t *testing.T) {
		svc := service.NewResponses(testutil.NewMemoryCollection(testutil.ResponseID))

		var want []record.Response
		for i := 0; i < 3; i++ {
			stored, err := svc.Insert(ctx, testutil.NewResponse())
			require.NoError(t, err)
			want = append(want, *stored)
		}

		got, err := svc.GetAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}

func TestDatabaseFailures(t *testing.T) {
	ctx := context.Background()
	validID := primitive.NewObjectID().Hex()

	collections := map[string]service.Store[record.Target]{
		"failing":    service.NewTargets(testutil.FailingCollection[record.Target]{Err: testutil.ErrTest}),
		"panicking":  service.NewTargets(testutil.PanickingCollection[record.Target]{}),
		"nil":        service.NewTargets(nil),
		"unattached": service.NewTargets(store.NewCollection[record.Target](nil)),
	}

	for name, svc := range collections {
		t.Run(name, func(t *testing.T) {
			_, err := svc.GetAll(ctx)
			testutil.AssertKind(t, err, fault.Database, "GetAll")

			_, err = svc.GetByID(ctx, validID)
			testutil.AssertKind(t, err, fault.Database, "GetByID")

			_, err = svc.Insert(ctx, testutil.NewTarget())
			testutil.AssertKind(t, err, fault.Database, "Insert")
		})
	}

	t.Run("cause is preserved", func(t *testing.T) {
		_, err := collections["failing"].GetAll(ctx)
		assert.ErrorIs(t, err, testutil.ErrTest)
		assert.True(t, fault.Transient(err))
	})

	t.Run("duplicate insert", func(t *testing.T) {
		coll := testutil.NewMemoryCollection(testutil.SourceID, testutil.Sources()...)
		svc := service.NewSources(dupInserter{coll})

		_, err := svc.Insert(ctx, testutil.NewSource())
		testutil.AssertKind(t, err, fault.Database)
		assert.ErrorIs(t, err, testutil.ErrDuplicateKey)
	})
}

func TestConcurrentUse(t *testing.T) {
	ctx := context.Background()
	coll := testutil.NewMemoryCollection(testutil.ResponseID)
	svc := service.NewResponses(coll)

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			stored, err := svc.Insert(ctx, testutil.NewResponse())
			assert.NoError(t, err)
			_, err = svc.GetByID(ctx, stored.ID.Hex())
			assert.NoError(t, err)
			_, err = svc.GetAll(ctx)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 32, coll.Len())
}

// nilFinder returns a nil slice from Find.
type nilFinder struct {
	testutil.FailingCollection[record.Source]
}

func (nilFinder) Find(context.Context) ([]record.Source, error) { return nil, nil }

// dupInserter re-inserts an existing id to trigger a duplicate key error.
type dupInserter struct {
	*testutil.MemoryCollection[record.Source]
}

func (d dupInserter) Insert(ctx context.Context, doc record.Source) error {
	existing, _ := d.Find(ctx)
	return d.MemoryCollection.Insert(ctx, existing[0])
}
