package order

import "time"

// ExportRow: CSV dışa aktarma sözleşmesi. Satır başına tam dört alan,
// bu sırayla: tarih (görüntü formatında), ürün adı, birim, miktar.
type ExportRow struct {
	Date      string `json:"date"`
	Name      string `json:"name"`
	Unit      string `json:"unit"`
	Magnitude int    `json:"magnitude"`
}

// FormatDate: "2006-01-02" tarihini görüntü formatına ("02.01.2006") çevirir.
// Çözümlenemeyen tarih olduğu gibi döner.
func FormatDate(date string) string {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return date
	}
	return t.Format("02.01.2006")
}

// ExportRows: mevcut görünümü dışa aktarma satırlarına çevirir.
// Birim ve miktar, kaydın birleştirme sonrası miktar metninden çözülür.
func ExportRows(records []AggregatedRecord) []ExportRow {
	rows := make([]ExportRow, len(records))
	for i, rec := range records {
		rows[i] = ExportRow{
			Date:      FormatDate(rec.Date),
			Name:      rec.Name,
			Unit:      ParseUnit(rec.QuantityText),
			Magnitude: ParseMagnitude(rec.QuantityText),
		}
	}
	return rows
}
