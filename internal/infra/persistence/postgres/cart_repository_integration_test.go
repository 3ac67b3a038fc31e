package postgres

import (
	"context"
	"sync"
	"testing"

	"faranah/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCartLine(owner entity.OwnerKey, productID uuid.UUID, quantity int) *entity.CartLine {
	return &entity.CartLine{
		OwnerKey:    owner,
		ProductID:   productID,
		ProductName: "Robe wax",
		Size:        entity.SizeM,
		Quantity:    quantity,
		UnitPrice:   50,
		Total:       50 * float64(quantity),
	}
}

func TestCartRepository_Upsert_AccumulatesOntoOneRow(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewCartRepository(db)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-" + uuid.NewString())
	productID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, newTestCartLine(owner, productID, 2)))
	require.NoError(t, repo.Upsert(ctx, newTestCartLine(owner, productID, 3)))

	lines, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 5, lines[0].Quantity)
	assert.InDelta(t, 50, lines[0].UnitPrice, 0.001)
	assert.InDelta(t, 250, lines[0].Total, 0.001)
}

func TestCartRepository_Upsert_ConcurrentFirstInsertsCollapse(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewCartRepository(db)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-" + uuid.NewString())
	productID := uuid.New()

	const writers = 8

	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := range writers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs[i] = repo.Upsert(ctx, newTestCartLine(owner, productID, 1))
		}()
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}

	lines, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, writers, lines[0].Quantity)
	assert.InDelta(t, 50*writers, lines[0].Total, 0.001)
}

func TestCartRepository_Upsert_KeepsSizesSeparate(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewCartRepository(db)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-" + uuid.NewString())
	productID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, newTestCartLine(owner, productID, 1)))

	other := newTestCartLine(owner, productID, 1)
	other.Size = entity.SizeXL
	require.NoError(t, repo.Upsert(ctx, other))

	lines, err := repo.ListByOwner(ctx, owner)
	require.NoError(t, err)
	assert.Len(t, lines, 2)
}

func TestCartRepository_UpdateQuantity_RecomputesTotal(t *testing.T) {
	db := openIntegrationDB(t)
	repo := NewCartRepository(db)

	ctx := context.Background()
	owner := entity.OwnerKey("guest-" + uuid.NewString())
	productID := uuid.New()

	require.NoError(t, repo.Upsert(ctx, newTestCartLine(owner, productID, 2)))
	require.NoError(t, repo.UpdateQuantity(ctx, owner, productID, entity.SizeM, 7))

	line, err := repo.FindLine(ctx, owner, productID, entity.SizeM)
	require.NoError(t, err)
	assert.Equal(t, 7, line.Quantity)
	assert.InDelta(t, 350, line.Total, 0.001)
}
