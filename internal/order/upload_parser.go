package order

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Başlıksız dosyalarda varsayılan kolon adları (ilk kolon ürün, ikinci miktar).
var defaultHeader = []string{"ürün", "miktar"}

// Başlık hücrelerinin başında aranan kolon adları. Önek eşleşmesi kullanılır
// ki "ÜRÜN ADI" başlık sayılsın ama "Turunç" gibi ürün adları sayılmasın.
var (
	nameHeaderTokens = []string{"ürün", "urun", "product"}
	// "mıktar"/"quantıty": ASCII büyük I Türkçe küçültmede ı olur
	quantityHeaderTokens = []string{"miktar", "mıktar", "quantity", "quantıty", "qty"}
)

func hasHeaderToken(cell string, tokens []string) bool {
	lower := turkishLower(strings.TrimSpace(cell))
	for _, tok := range tokens {
		if strings.HasPrefix(lower, tok) {
			return true
		}
	}
	return false
}

// isHeaderRow: ilk satırın başlık satırı olup olmadığını kontrol eder.
// Tanınan kolon adlarından biriyle başlayan hücre içeren satır başlıktır.
func isHeaderRow(row []string) bool {
	for _, cell := range row {
		if hasHeaderToken(cell, nameHeaderTokens) || hasHeaderToken(cell, quantityHeaderTokens) {
			return true
		}
	}
	return false
}

// canonicalHeaderCell: başlık hücresini normalize aşamasının tanıdığı kolon
// adına indirger. "ÜRÜN", "ÜRÜN ADI", "PRODUCT" gibi yazımların hepsi "ürün"
// anahtarına düşer; tanınmayan başlıklar kırpılmış halleriyle taşınır.
func canonicalHeaderCell(cell string) string {
	switch {
	case hasHeaderToken(cell, nameHeaderTokens):
		return "ürün"
	case hasHeaderToken(cell, quantityHeaderTokens):
		return "miktar"
	}
	return strings.TrimSpace(cell)
}

// cellsToRows: satır matrisini RawRow eşlemelerine çevirir. İlk satır başlıksa
// kolon adları kanonik anahtarlara indirgenerek kullanılır, değilse varsayılan
// başlık uygulanır ve ilk satır da veri sayılır.
func cellsToRows(cells [][]string) []RawRow {
	if len(cells) == 0 {
		return nil
	}

	header := defaultHeader
	start := 0
	if isHeaderRow(cells[0]) {
		header = make([]string, len(cells[0]))
		for i, h := range cells[0] {
			header[i] = canonicalHeaderCell(h)
		}
		start = 1
	}

	rows := make([]RawRow, 0, len(cells)-start)
	for _, line := range cells[start:] {
		if len(line) == 0 {
			continue
		}
		row := make(RawRow, len(header))
		for i, cell := range line {
			if i >= len(header) || header[i] == "" {
				continue
			}
			row[header[i]] = cell
		}
		rows = append(rows, row)
	}
	return rows
}

// ParseXLSX: yüklenen Excel dosyasının ilk sayfasını ham satırlara çevirir.
func ParseXLSX(r io.Reader) ([]RawRow, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("excel dosyası okunamadı: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("excel dosyasında sheet bulunamadı")
	}

	cells, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("sheet okunamadı: %w", err)
	}
	return cellsToRows(cells), nil
}

// ParseCSV: yüklenen CSV dosyasını ham satırlara çevirir. Değişken alan
// sayısına izin verilir; eksik hücreler boş sayılır.
func ParseCSV(r io.Reader) ([]RawRow, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	cells, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("csv dosyası okunamadı: %w", err)
	}
	return cellsToRows(cells), nil
}
