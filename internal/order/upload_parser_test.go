package order

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCSVWithHeader(t *testing.T) {
	csv := "ürün,miktar\nElma,2 kg\nArmut,1 adet\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, "Elma", rows[0]["ürün"])
	assert.Equal(t, "2 kg", rows[0]["miktar"])
	assert.Equal(t, "Armut", rows[1]["ürün"])
}

func TestParseCSVCapitalizedHeader(t *testing.T) {
	csv := "Ürün,Miktar\nDomates,3 kasa\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Başlık yazımı ne olursa olsun kanonik anahtarlara indirgenir
	assert.Equal(t, "Domates", rows[0]["ürün"])
	assert.Equal(t, "3 kasa", rows[0]["miktar"])

	records := Normalize(rows, "2025-12-09", 1)
	require.Len(t, records, 1)
	assert.Equal(t, "Domates", records[0].Name)
}

func TestParseCSVUppercaseHeader(t *testing.T) {
	// Tamamı büyük harfli başlık kanonik anahtarlara indirgenir; satırlar
	// normalize aşamasında kaybolmadan yüklenir
	csv := "ÜRÜN,MİKTAR\nElma,2 kg\nArmut,1 adet\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Elma", rows[0]["ürün"])
	assert.Equal(t, "2 kg", rows[0]["miktar"])

	records := Normalize(rows, "2025-12-09", 1)
	require.Len(t, records, 2)
	assert.Equal(t, "Elma", records[0].Name)
	assert.Equal(t, "Armut", records[1].Name)
}

func TestParseCSVHeaderSynonyms(t *testing.T) {
	tests := []struct {
		name string
		csv  string
	}{
		{"ingilizce başlık", "PRODUCT,QTY\nElma,2 kg\n"},
		{"ascii büyük i", "URUN ADI,MIKTAR\nElma,2 kg\n"},
		{"uzun türkçe başlık", "ÜRÜN ADI,MİKTARI\nElma,2 kg\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := ParseCSV(strings.NewReader(tt.csv))
			require.NoError(t, err)

			records := Normalize(rows, "2025-12-09", 1)
			require.Len(t, records, 1)
			assert.Equal(t, "Elma", records[0].Name)
			assert.Equal(t, "2 kg", records[0].QuantityText)
		})
	}
}

func TestCanonicalHeaderCell(t *testing.T) {
	assert.Equal(t, "ürün", canonicalHeaderCell("ÜRÜN"))
	assert.Equal(t, "ürün", canonicalHeaderCell(" ÜRÜN ADI "))
	assert.Equal(t, "ürün", canonicalHeaderCell("Product Name"))
	assert.Equal(t, "miktar", canonicalHeaderCell("MİKTAR"))
	assert.Equal(t, "miktar", canonicalHeaderCell("MIKTAR")) // ASCII I
	assert.Equal(t, "miktar", canonicalHeaderCell("Quantity"))
	// Tanınmayan başlık kırpılmış haliyle kalır
	assert.Equal(t, "Fiyat", canonicalHeaderCell(" Fiyat "))
}

func TestParseCSVWithoutHeader(t *testing.T) {
	// Başlık satırı yoksa ilk kolon ürün, ikinci miktar sayılır
	csv := "Elma,2 kg\nArmut,1 adet\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Elma", rows[0]["ürün"])
	assert.Equal(t, "2 kg", rows[0]["miktar"])
}

func TestParseCSVShortRows(t *testing.T) {
	// Eksik hücreli satırlar hatasız okunur, normalize aşamasında elenir
	csv := "ürün,miktar\nElma\nArmut,1 adet\n"

	rows, err := ParseCSV(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	records := Normalize(rows, "2025-12-09", 1)
	require.Len(t, records, 1)
	assert.Equal(t, "Armut", records[0].Name)
}

func TestParseCSVEmpty(t *testing.T) {
	rows, err := ParseCSV(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestIsHeaderRow(t *testing.T) {
	assert.True(t, isHeaderRow([]string{"ürün", "miktar"}))
	assert.True(t, isHeaderRow([]string{"ÜRÜN ADI", "MİKTAR"}))
	assert.True(t, isHeaderRow([]string{"PRODUCT", "QTY"}))
	assert.False(t, isHeaderRow([]string{"Elma", "2 kg"}))
	assert.False(t, isHeaderRow(nil))
}
