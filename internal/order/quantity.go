package order

import (
	"regexp"
	"strconv"
)

// Tanınan birim kelimeleri. Sıralama önemli: metin içinde İLK geçen birim kazanır,
// bulunamazsa varsayılan "adet" kullanılır.
var unitVocabulary = []string{"kg", "kasa", "adet", "paket", "demet", "bağ", "çubuk", "tane", "çuval", "salkım"}

// DefaultUnit: miktar metninde tanınan birim yoksa kullanılan birim
const DefaultUnit = "adet"

var (
	digitRunRe = regexp.MustCompile(`[0-9]+`)
	unitRe     *regexp.Regexp
)

func init() {
	pattern := "(?i)("
	for i, u := range unitVocabulary {
		if i > 0 {
			pattern += "|"
		}
		pattern += regexp.QuoteMeta(u)
	}
	pattern += ")"
	unitRe = regexp.MustCompile(pattern)
}

// ParseMagnitude: metindeki tüm rakam dizilerini toplar.
// "3 kg 2 adet" -> 5, "kasa" -> 0, "" -> 0.
// Ondalık ayracı desteklenmez: "2.5" iki ayrı sayı olarak toplanır (2+5=7).
func ParseMagnitude(text string) int {
	total := 0
	for _, run := range digitRunRe.FindAllString(text, -1) {
		n, err := strconv.Atoi(run)
		if err != nil {
			// int sınırını aşan rakam dizisi, atla
			continue
		}
		total += n
	}
	return total
}

// ParseUnit: metinde ilk geçen tanınan birimi eşleşen yazımıyla döndürür.
// "12 Kasa" -> "Kasa", "7" -> "adet".
func ParseUnit(text string) string {
	if m := unitRe.FindString(text); m != "" {
		return m
	}
	return DefaultUnit
}
