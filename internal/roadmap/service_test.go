package roadmap

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillvize/skillvize/internal/db"
	"github.com/skillvize/skillvize/internal/types"
)

// fakeStore implements Store in memory.
type fakeStore struct {
	records   []db.RoadmapRecord
	insertErr error
	listErr   error
	deleteErr error
	inserts   int
}

func (f *fakeStore) LatestRoadmapByOwner(_ context.Context, ownerID uuid.UUID) (*db.RoadmapRecord, error) {
	for i := range f.records {
		if f.records[i].OwnerID == ownerID {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

func (f *fakeStore) InsertRoadmap(_ context.Context, ownerID uuid.UUID, entries []types.RoadmapEntry) (uuid.UUID, error) {
	if f.insertErr != nil {
		return uuid.Nil, f.insertErr
	}
	f.inserts++
	encoded, _ := json.Marshal(entries)
	record := db.RoadmapRecord{
		ID:        uuid.New(),
		OwnerID:   ownerID,
		Entries:   encoded,
		CreatedAt: time.Now(),
	}
	// Newest first, like the real store's queries.
	f.records = append([]db.RoadmapRecord{record}, f.records...)
	return record.ID, nil
}

func (f *fakeStore) ListRoadmapsByOwner(_ context.Context, ownerID uuid.UUID) ([]db.RoadmapRecord, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []db.RoadmapRecord
	for _, r := range f.records {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeStore) DeleteRoadmapByIDAndOwner(_ context.Context, id, ownerID uuid.UUID) (int64, error) {
	if f.deleteErr != nil {
		return 0, f.deleteErr
	}
	for i, r := range f.records {
		if r.ID == id && r.OwnerID == ownerID {
			f.records = append(f.records[:i], f.records[i+1:]...)
			return 1, nil
		}
	}
	return 0, nil
}

func newTestService(oracle *fakeOracle, store *fakeStore) *Service {
	return NewService(NewSynthesizer(oracle), NewGuard(store, time.Minute), store)
}

func TestGenerateSynthesizesAndPersists(t *testing.T) {
	oracle := &fakeOracle{completion: twoSkillCompletion}
	store := &fakeStore{}
	service := newTestService(oracle, store)
	owner := uuid.New()

	entries, err := service.Generate(context.Background(), owner, []string{"go", "rust"})
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	assert.Equal(t, 1, oracle.calls)
	assert.Equal(t, 1, store.inserts)
}

// A repeated identical request inside the window is served from the
// persisted result: no second oracle call, no second row.
func TestGenerateDuplicateServedFromWindow(t *testing.T) {
	oracle := &fakeOracle{completion: twoSkillCompletion}
	store := &fakeStore{}
	service := newTestService(oracle, store)
	owner := uuid.New()

	first, err := service.Generate(context.Background(), owner, []string{"Go", "Rust"})
	require.NoError(t, err)

	second, err := service.Generate(context.Background(), owner, []string{"rust", "go"})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, oracle.calls, "second call must not reach the oracle")
	assert.Equal(t, 1, store.inserts, "second call must not persist a new row")
}

func TestGenerateDifferentSkillSetSynthesizesFresh(t *testing.T) {
	oracle := &fakeOracle{completion: twoSkillCompletion}
	store := &fakeStore{}
	service := newTestService(oracle, store)
	owner := uuid.New()

	_, err := service.Generate(context.Background(), owner, []string{"go", "rust"})
	require.NoError(t, err)

	_, err = service.Generate(context.Background(), owner, []string{"go", "kafka"})
	require.NoError(t, err)

	assert.Equal(t, 2, oracle.calls)
	assert.Equal(t, 2, store.inserts)
}

func TestGenerateBeyondWindowSynthesizesFresh(t *testing.T) {
	oracle := &fakeOracle{completion: twoSkillCompletion}
	store := &fakeStore{}
	service := newTestService(oracle, store)
	owner := uuid.New()

	_, err := service.Generate(context.Background(), owner, []string{"go", "rust"})
	require.NoError(t, err)

	// Age the stored row past the window.
	store.records[0].CreatedAt = time.Now().Add(-2 * time.Minute)

	_, err = service.Generate(context.Background(), owner, []string{"go", "rust"})
	require.NoError(t, err)

	assert.Equal(t, 2, oracle.calls)
	assert.Equal(t, 2, store.inserts)
}

func TestGenerateEmptySkills(t *testing.T) {
	oracle := &fakeOracle{completion: twoSkillCompletion}
	service := newTestService(oracle, &fakeStore{})

	entries, err := service.Generate(context.Background(), uuid.New(), nil)
	assert.Nil(t, entries)
	assert.ErrorIs(t, err, ErrEmptySkillSet)
	assert.Zero(t, oracle.calls)
}

func TestGenerateStoreFailure(t *testing.T) {
	oracle := &fakeOracle{completion: twoSkillCompletion}
	store := &fakeStore{insertErr: errors.New("disk full")}
	service := newTestService(oracle, store)

	entries, err := service.Generate(context.Background(), uuid.New(), []string{"go", "rust"})
	assert.Nil(t, entries, "nothing is reported saved unless the store confirmed")

	var storeErr *StoreError
	assert.ErrorAs(t, err, &storeErr)
}

func TestListNewestFirstAndSkipsCorruptRows(t *testing.T) {
	owner := uuid.New()
	store := &fakeStore{}
	oracle := &fakeOracle{completion: twoSkillCompletion}
	service := newTestService(oracle, store)

	_, err := service.Generate(context.Background(), owner, []string{"go", "rust"})
	require.NoError(t, err)

	// Inject a corrupt row; the listing should skip it, not fail.
	store.records = append(store.records, db.RoadmapRecord{
		ID:        uuid.New(),
		OwnerID:   owner,
		Entries:   []byte("{corrupt"),
		CreatedAt: time.Now().Add(-time.Hour),
	})

	items, err := service.List(context.Background(), owner)
	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Len(t, items[0].Entries, 2)
}

func TestDelete(t *testing.T) {
	owner := uuid.New()
	stranger := uuid.New()
	store := &fakeStore{}
	oracle := &fakeOracle{completion: twoSkillCompletion}
	service := newTestService(oracle, store)

	_, err := service.Generate(context.Background(), owner, []string{"go", "rust"})
	require.NoError(t, err)
	roadmapID := store.records[0].ID

	// Another owner deleting this row: zero changes, row intact,
	// indistinguishable from not-found.
	err = service.Delete(context.Background(), roadmapID, stranger)
	assert.ErrorIs(t, err, ErrRoadmapNotFound)
	assert.Len(t, store.records, 1)

	err = service.Delete(context.Background(), roadmapID, owner)
	require.NoError(t, err)
	assert.Empty(t, store.records)

	err = service.Delete(context.Background(), roadmapID, owner)
	assert.ErrorIs(t, err, ErrRoadmapNotFound)
}
