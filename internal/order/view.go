package order

import (
	"sort"
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator kurmak pahalı, ama Compare çağrıları iç tamponları değiştirdiği
// için tek bir örnek eşzamanlı handler'lar arasında paylaşılamaz; havuzdan
// alınıp geri verilir.
var collatorPool = sync.Pool{
	New: func() interface{} {
		return collate.New(language.Turkish)
	},
}

type SortColumn string

type SortDirection string

const (
	SortByName     SortColumn = "name"
	SortByQuantity SortColumn = "quantity"

	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
	SortNone SortDirection = "none"
)

// ViewParams: görünümü belirleyen tüm parametreler. Arayüz durumu yerine
// açık bir değer olarak taşınır; aynı parametrelerle ComputeView her zaman
// aynı sonucu üretir.
type ViewParams struct {
	Date          string        `json:"date"`
	SearchText    string        `json:"search_text"`
	SortColumn    SortColumn    `json:"sort_column"`
	SortDirection SortDirection `json:"sort_direction"`
}

// ViewResult: birleştirilmiş görünüm ve arayüzün gösterdiği iki özet sayı.
type ViewResult struct {
	Records       []AggregatedRecord `json:"records"`
	TotalCount    int                `json:"total_count"`
	FilteredCount int                `json:"filtered_count"`
}

// turkishLower: Türkçe büyük/küçük harf kurallarıyla küçültür ("İ" -> "i", "I" -> "ı").
func turkishLower(s string) string {
	return strings.ToLowerSpecial(unicode.TurkishCase, s)
}

// FilterByDate: tarihi birebir eşleşmeyen kayıtları eler. Boş tarih filtre yok demektir.
func FilterByDate(records []NormalizedRecord, date string) []NormalizedRecord {
	if date == "" {
		return records
	}
	out := make([]NormalizedRecord, 0, len(records))
	for _, rec := range records {
		if rec.Date == date {
			out = append(out, rec)
		}
	}
	return out
}

// FilterBySearch: ürün adında (Türkçe küçük harfe indirgenmiş) arama metnini
// içermeyen kayıtları eler. Boş arama metni filtre yok demektir.
func FilterBySearch(records []AggregatedRecord, searchText string) []AggregatedRecord {
	if searchText == "" {
		return records
	}
	needle := turkishLower(searchText)
	out := make([]AggregatedRecord, 0, len(records))
	for _, rec := range records {
		if strings.Contains(turkishLower(rec.Name), needle) {
			out = append(out, rec)
		}
	}
	return out
}

// Sort: kayıtları istenen kolona göre sıralar ve yeni bir dilim döndürür.
// "none" yönü girdiyi olduğu gibi bırakır. Ad sıralaması Türk alfabesine
// göre (collation) yapılır; miktar sıralaması sayısaldır ve eşitlikte
// önceki sıra korunur (kararlı sıralama).
func Sort(records []AggregatedRecord, column SortColumn, direction SortDirection) []AggregatedRecord {
	out := make([]AggregatedRecord, len(records))
	copy(out, records)

	if direction == SortNone || direction == "" {
		return out
	}

	var less func(i, j int) bool
	switch column {
	case SortByName:
		cl := collatorPool.Get().(*collate.Collator)
		defer collatorPool.Put(cl)
		less = func(i, j int) bool {
			return cl.CompareString(turkishLower(out[i].Name), turkishLower(out[j].Name)) < 0
		}
	case SortByQuantity:
		less = func(i, j int) bool {
			return ParseMagnitude(out[i].QuantityText) < ParseMagnitude(out[j].QuantityText)
		}
	default:
		return out
	}

	if direction == SortDesc {
		asc := less
		less = func(i, j int) bool { return asc(j, i) }
	}

	sort.SliceStable(out, less)
	return out
}

// ComputeView: tam boru hattı. Tarih filtresi birleştirmeden ÖNCE uygulanır
// ki farklı günlerin miktarları asla birbirine karışmasın; metin filtresi
// grupları bütün halinde elediği için birleştirmeden sonra uygulanabilir.
func ComputeView(records []NormalizedRecord, params ViewParams) ViewResult {
	dated := FilterByDate(records, params.Date)
	aggregated := AnnotateDuplicates(Aggregate(dated))
	searched := FilterBySearch(aggregated, params.SearchText)
	sorted := Sort(searched, params.SortColumn, params.SortDirection)

	return ViewResult{
		Records:       sorted,
		TotalCount:    len(records),
		FilteredCount: len(sorted),
	}
}

// NextSortState: kolon başlığına tıklamanın üç durumlu döngüsü.
// Aynı kolon: asc -> desc -> none -> asc. Farklı kolon: yeni kolonda asc.
func NextSortState(column SortColumn, direction SortDirection, clicked SortColumn) (SortColumn, SortDirection) {
	if clicked != column {
		return clicked, SortAsc
	}
	switch direction {
	case SortAsc:
		return column, SortDesc
	case SortDesc:
		return column, SortNone
	default:
		return column, SortAsc
	}
}
