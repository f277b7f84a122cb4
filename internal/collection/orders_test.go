package collection

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pizzahouse/menu-client/internal/models"
	"github.com/pizzahouse/menu-client/internal/override"
)

type fakeOrderGateway struct {
	orders []models.Order
	err    error
}

func (f *fakeOrderGateway) FetchOrders(ctx context.Context) ([]models.Order, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.orders, nil
}

type countingStore struct {
	override.Store
	writes int
}

func (s *countingStore) WriteOne(id string, o models.OrderOverride) error {
	s.writes++
	return s.Store.WriteOne(id, o)
}

func order(id string, status models.OrderStatus) models.Order {
	return models.Order{ID: id, Name: "customer " + id, Status: status}
}

func ids(orders []models.Order) []string {
	out := make([]string, len(orders))
	for i, o := range orders {
		out[i] = o.ID
	}
	return out
}

func TestOrderCollection_Load_SortsDeliveredLast(t *testing.T) {
	t.Parallel()

	gw := &fakeOrderGateway{orders: []models.Order{
		order("a", models.StatusPlaced),
		order("b", models.StatusDelivered),
		order("c", models.StatusPlaced),
		order("d", models.StatusDelivered),
	}}
	col := NewOrders(gw, override.NewMemoryStore())

	require.NoError(t, col.Load(context.Background()))
	assert.Equal(t, Ready, col.State())
	assert.Equal(t, []string{"a", "c", "b", "d"}, ids(col.Orders()))
}

func TestOrderCollection_Load_KeepsFetchOrderWithoutOverrides(t *testing.T) {
	t.Parallel()

	gw := &fakeOrderGateway{orders: []models.Order{
		order("1", models.StatusPlaced),
		order("2", models.StatusDelivered),
	}}
	col := NewOrders(gw, override.NewMemoryStore())

	require.NoError(t, col.Load(context.Background()))
	assert.Equal(t, []string{"1", "2"}, ids(col.Orders()))
}

func TestOrderCollection_Load_OverrideTakesPrecedence(t *testing.T) {
	t.Parallel()

	store := override.NewMemoryStore()
	delivered := models.StatusDelivered
	require.NoError(t, store.WriteOne("1", models.OrderOverride{Status: &delivered}))

	gw := &fakeOrderGateway{orders: []models.Order{
		order("1", models.StatusPlaced),
		order("2", models.StatusPlaced),
	}}
	col := NewOrders(gw, store)

	require.NoError(t, col.Load(context.Background()))

	got := col.Orders()
	require.Equal(t, []string{"2", "1"}, ids(got))
	assert.Equal(t, models.StatusDelivered, got[1].Status)
	assert.Equal(t, models.StatusPlaced, got[0].Status)
}

func TestOrderCollection_Load_FaultYieldsEmptyReadyCollection(t *testing.T) {
	t.Parallel()

	wantErr := errors.New("remote down")
	col := NewOrders(&fakeOrderGateway{err: wantErr}, override.NewMemoryStore())

	err := col.Load(context.Background())
	require.ErrorIs(t, err, wantErr)
	assert.Equal(t, Ready, col.State())
	assert.Empty(t, col.Orders())
}

func TestOrderCollection_Load_OnlyOnce(t *testing.T) {
	t.Parallel()

	col := NewOrders(&fakeOrderGateway{}, override.NewMemoryStore())
	require.NoError(t, col.Load(context.Background()))
	require.ErrorIs(t, col.Load(context.Background()), ErrAlreadyLoaded)
}

func TestOrderCollection_MarkDelivered_PersistsAndResorts(t *testing.T) {
	t.Parallel()

	store := override.NewMemoryStore()
	gw := &fakeOrderGateway{orders: []models.Order{
		order("1", models.StatusPlaced),
		order("2", models.StatusPlaced),
	}}
	col := NewOrders(gw, store)
	require.NoError(t, col.Load(context.Background()))

	require.NoError(t, col.MarkDelivered("1"))

	got := col.Orders()
	assert.Equal(t, []string{"2", "1"}, ids(got))
	assert.Equal(t, models.StatusDelivered, got[1].Status)

	saved := store.ReadAll()
	require.Contains(t, saved, "1")
	require.NotNil(t, saved["1"].Status)
	assert.Equal(t, models.StatusDelivered, *saved["1"].Status)
}

func TestOrderCollection_MarkDelivered_Idempotent(t *testing.T) {
	t.Parallel()

	store := &countingStore{Store: override.NewMemoryStore()}
	gw := &fakeOrderGateway{orders: []models.Order{order("1", models.StatusPlaced)}}
	col := NewOrders(gw, store)
	require.NoError(t, col.Load(context.Background()))

	require.NoError(t, col.MarkDelivered("1"))
	after := col.Orders()
	savedAfter := store.ReadAll()

	require.NoError(t, col.MarkDelivered("1"))
	assert.Equal(t, after, col.Orders())
	assert.Equal(t, savedAfter, store.ReadAll())
	assert.Equal(t, 1, store.writes)
}

func TestOrderCollection_MarkDelivered_UnknownID(t *testing.T) {
	t.Parallel()

	col := NewOrders(&fakeOrderGateway{}, override.NewMemoryStore())
	require.NoError(t, col.Load(context.Background()))
	require.ErrorIs(t, col.MarkDelivered("missing"), ErrNotFound)
}

func TestOrderCollection_StaleOverrideIsInert(t *testing.T) {
	t.Parallel()

	store := override.NewMemoryStore()
	delivered := models.StatusDelivered
	require.NoError(t, store.WriteOne("gone", models.OrderOverride{Status: &delivered}))

	gw := &fakeOrderGateway{orders: []models.Order{order("kept", models.StatusPlaced)}}
	col := NewOrders(gw, store)
	require.NoError(t, col.Load(context.Background()))

	got := col.Orders()
	require.Len(t, got, 1)
	assert.Equal(t, models.StatusPlaced, got[0].Status)

	// the stale entry is ignored on merge but stays persisted
	assert.Contains(t, store.ReadAll(), "gone")
}

func TestMergeOverrides_Idempotent(t *testing.T) {
	t.Parallel()

	delivered := models.StatusDelivered
	saved := map[string]models.OrderOverride{"1": {Status: &delivered}}
	orders := []models.Order{
		order("1", models.StatusPlaced),
		order("2", models.StatusPlaced),
	}

	once := mergeOverrides(orders, saved)
	twice := mergeOverrides(once, saved)
	assert.Equal(t, once, twice)
}
