package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadAssignsContinuousIDs(t *testing.T) {
	store := NewStore()

	loaded := store.Load([]RawRow{
		{"ürün": "Elma", "miktar": "2 kg"},
		{"ürün": "", "miktar": "1 kg"}, // elenir, ID tüketmez
		{"ürün": "Armut", "miktar": "1 adet"},
	}, "2025-12-09")
	assert.Equal(t, 2, loaded)

	// İkinci parti ID'leri kaldığı yerden alır
	store.Load([]RawRow{
		{"ürün": "Kiraz", "miktar": "1 kasa"},
	}, "2025-12-10")

	records := store.Snapshot()
	require.Len(t, records, 3)
	assert.Equal(t, 1, records[0].ID)
	assert.Equal(t, 2, records[1].ID)
	assert.Equal(t, 3, records[2].ID)
	assert.Equal(t, "2025-12-10", records[2].Date)
}

func TestStoreSnapshotIsolation(t *testing.T) {
	store := NewStore()
	store.Load([]RawRow{{"ürün": "Elma", "miktar": "2 kg"}}, "2025-12-09")

	snap := store.Snapshot()
	snap[0].Name = "Değişti"

	assert.Equal(t, "Elma", store.Snapshot()[0].Name)
}

func TestStoreView(t *testing.T) {
	store := NewStore()
	store.Load([]RawRow{
		{"ürün": "Elma", "miktar": "2 kg"},
		{"ürün": "Elma", "miktar": "3 kg"},
	}, "2025-12-09")

	result := store.View(ViewParams{})
	require.Len(t, result.Records, 1)
	assert.Equal(t, "5 kg", result.Records[0].QuantityText)
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 1, result.FilteredCount)
}

func TestStoreClear(t *testing.T) {
	store := NewStore()
	store.Load([]RawRow{{"ürün": "Elma", "miktar": "2 kg"}}, "2025-12-09")
	require.Equal(t, 1, store.Count())

	store.Clear()
	assert.Equal(t, 0, store.Count())
	assert.Empty(t, store.Snapshot())

	// ID sayacı başa döner
	store.Load([]RawRow{{"ürün": "Armut", "miktar": "1 adet"}}, "2025-12-09")
	assert.Equal(t, 1, store.Snapshot()[0].ID)
}
