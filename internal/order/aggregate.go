package order

import "fmt"

// AggregatedRecord: birleştirme sonrası, mükerrer işaretli kayıt.
type AggregatedRecord struct {
	NormalizedRecord
	GroupKey       string `json:"-"`
	DuplicateCount int    `json:"duplicate_count"`
	IsDuplicate    bool   `json:"is_duplicate"`
}

// groupKey: kayıtları birleştirme kararında kullanılan anahtar.
// Miktar metninin rakamları ayıklanmış hali kullanılır; böylece "2 kg" ile
// "3 kg" aynı gruba düşer ama "3kg" ile "3 kg" (boşluk farkı) asla
// birleşmez. Bu, kaynağın gözlenen davranışıdır ve bilinçli olarak korunur.
func groupKey(name, quantityText string) string {
	return name + "\x00" + digitRunRe.ReplaceAllString(quantityText, "")
}

// Aggregate: aynı anahtarı taşıyan kayıtları soldan katlayarak birleştirir.
// İlk görülen kayıt akümülatördür; her birleşmede miktarlar ParseMagnitude
// ile toplanır ve metin "<toplam> <birim>" olarak yeniden yazılır. Birim,
// son birleşen üyenin kendi metninden çözülür. ID, ad ve tarih ilk görülen
// kayıttan korunur; gruplar ilk görülme sırasıyla çıkar.
func Aggregate(records []NormalizedRecord) []AggregatedRecord {
	out := make([]AggregatedRecord, 0, len(records))
	index := make(map[string]int, len(records))

	for _, rec := range records {
		key := groupKey(rec.Name, rec.QuantityText)
		if i, ok := index[key]; ok {
			acc := &out[i]
			total := ParseMagnitude(acc.QuantityText) + ParseMagnitude(rec.QuantityText)
			unit := ParseUnit(rec.QuantityText)
			acc.QuantityText = fmt.Sprintf("%d %s", total, unit)
			continue
		}
		index[key] = len(out)
		out = append(out, AggregatedRecord{
			NormalizedRecord: rec,
			GroupKey:         key,
		})
	}
	return out
}

// AnnotateDuplicates: aynı ürün adının kaç ayrı grupta göründüğünü sayar ve
// her kayda işler. Birden fazla grupta görünen ad mükerrer sayılır.
func AnnotateDuplicates(records []AggregatedRecord) []AggregatedRecord {
	counts := make(map[string]int, len(records))
	for _, rec := range records {
		counts[rec.Name]++
	}

	out := make([]AggregatedRecord, len(records))
	for i, rec := range records {
		rec.DuplicateCount = counts[rec.Name]
		rec.IsDuplicate = rec.DuplicateCount > 1
		out[i] = rec
	}
	return out
}
