package order

import "strings"

// RawRow: tablo kaynağından gelen tek bir ham satır (kolon adı -> değer).
// Kolon adları tutarsız büyük/küçük harfle gelebilir ("ürün" veya "Ürün").
type RawRow map[string]string

// Mantıksal alan başına kabul edilen kolon adları, öncelik sırasıyla.
// İlk boş olmayan değer kazanır.
var (
	nameAliases     = []string{"ürün", "Ürün"}
	quantityAliases = []string{"miktar", "Miktar"}
)

// NormalizedRecord: geçerliliği doğrulanmış tek bir sipariş kaydı.
// Name ve QuantityText hiçbir zaman boş olamaz; boş satırlar normalize
// aşamasında elenir.
type NormalizedRecord struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	QuantityText string `json:"quantity_text"`
	Date         string `json:"date"` // yükleme partisinin sabit tarihi, "2006-01-02"
}

func resolveField(row RawRow, aliases []string) string {
	for _, key := range aliases {
		if v := strings.TrimSpace(row[key]); v != "" {
			return v
		}
	}
	return ""
}

// Normalize: ham satırları kayıtlara çevirir. ID'ler firstID'den başlayarak
// girdi sırasıyla atanır; adı veya miktarı boş satırlar tamamen atlanır.
// Çıktı sırası girdi sırasını korur.
func Normalize(rows []RawRow, date string, firstID int) []NormalizedRecord {
	records := make([]NormalizedRecord, 0, len(rows))
	id := firstID
	for _, row := range rows {
		name := resolveField(row, nameAliases)
		qty := resolveField(row, quantityAliases)
		if name == "" || qty == "" {
			continue
		}
		records = append(records, NormalizedRecord{
			ID:           id,
			Name:         name,
			QuantityText: qty,
			Date:         date,
		})
		id++
	}
	return records
}
