package order

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
)

// -------------------------
// Request/Response Types
// -------------------------

type UploadResponse struct {
	Date     string `json:"date"`
	Received int    `json:"received"`
	Loaded   int    `json:"loaded"`
	Dropped  int    `json:"dropped"`
	Total    int    `json:"total"`
}

type SortStateResponse struct {
	Column    SortColumn    `json:"column"`
	Direction SortDirection `json:"direction"`
}

// -------------------------
// Yardımcı Fonksiyonlar
// -------------------------

func parseViewParams(c *fiber.Ctx) (ViewParams, error) {
	params := ViewParams{
		Date:          strings.TrimSpace(c.Query("date")),
		SearchText:    strings.TrimSpace(c.Query("search")),
		SortColumn:    SortColumn(c.Query("sort_column", string(SortByName))),
		SortDirection: SortDirection(c.Query("sort_direction", string(SortNone))),
	}

	switch params.SortColumn {
	case SortByName, SortByQuantity:
	default:
		return params, fiber.NewError(fiber.StatusBadRequest, "sort_column 'name' veya 'quantity' olmalı")
	}
	switch params.SortDirection {
	case SortAsc, SortDesc, SortNone:
	default:
		return params, fiber.NewError(fiber.StatusBadRequest, "sort_direction 'asc', 'desc' veya 'none' olmalı")
	}
	return params, nil
}

// -------------------------
// Handler'lar
// -------------------------

// POST /api/orders/upload
// Sipariş listesini (.xlsx veya .csv) yükler ve bellekteki depoya ekler.
func UploadOrdersHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		date := strings.TrimSpace(c.FormValue("date"))
		if date == "" {
			return fiber.NewError(fiber.StatusBadRequest, "date alanı zorunlu (2006-01-02 formatında)")
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "date formatı geçersiz, beklenen: 2006-01-02")
		}

		fileHeader, err := c.FormFile("file")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Dosya yüklenemedi: "+err.Error())
		}

		file, err := fileHeader.Open()
		if err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Dosya açılamadı: "+err.Error())
		}
		defer file.Close()

		var rows []RawRow
		filename := strings.ToLower(fileHeader.Filename)
		switch {
		case strings.HasSuffix(filename, ".xlsx"):
			rows, err = ParseXLSX(file)
		case strings.HasSuffix(filename, ".csv"):
			rows, err = ParseCSV(file)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "Sadece .xlsx ve .csv dosyaları yüklenebilir")
		}
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}

		loaded := store.Load(rows, date)

		return c.Status(fiber.StatusCreated).JSON(UploadResponse{
			Date:     date,
			Received: len(rows),
			Loaded:   loaded,
			Dropped:  len(rows) - loaded,
			Total:    store.Count(),
		})
	}
}

// GET /api/orders
// Birleştirilmiş, filtrelenmiş ve sıralanmış sipariş görünümünü döndürür.
func ListOrdersHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := parseViewParams(c)
		if err != nil {
			return err
		}
		return c.JSON(store.View(params))
	}
}

// GET /api/orders/sort-state
// Kolon başlığı tıklamasının üç durumlu döngüsünü ilerletir. Arayüz mevcut
// (column, direction) çiftini ve tıklanan kolonu gönderir, yenisini alır.
func SortStateHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		clicked := SortColumn(c.Query("clicked"))
		if clicked != SortByName && clicked != SortByQuantity {
			return fiber.NewError(fiber.StatusBadRequest, "clicked 'name' veya 'quantity' olmalı")
		}

		column := SortColumn(c.Query("column", string(SortByName)))
		direction := SortDirection(c.Query("direction", string(SortNone)))

		nextCol, nextDir := NextSortState(column, direction, clicked)
		return c.JSON(SortStateResponse{Column: nextCol, Direction: nextDir})
	}
}

// GET /api/orders/export
// Mevcut görünümü dört kolonlu CSV olarak indirir: Tarih, Ürün, Birim, Miktar.
func ExportOrdersHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		params, err := parseViewParams(c)
		if err != nil {
			return err
		}

		view := store.View(params)
		exportRows := ExportRows(view.Records)

		var buf bytes.Buffer
		w := csv.NewWriter(&buf)
		if err := w.Write([]string{"Tarih", "Ürün", "Birim", "Miktar"}); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "CSV yazılamadı")
		}
		for _, row := range exportRows {
			if err := w.Write([]string{row.Date, row.Name, row.Unit, strconv.Itoa(row.Magnitude)}); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "CSV yazılamadı")
			}
		}
		w.Flush()
		if err := w.Error(); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "CSV yazılamadı")
		}

		filename := "siparisler"
		if params.Date != "" {
			filename += "-" + params.Date
		}
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
		c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s.csv"`, filename))
		return c.Send(buf.Bytes())
	}
}

// DELETE /api/orders
// Bellekteki tüm kayıtları siler (yeni oturum başlangıcı).
func ClearOrdersHandler(store *Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		store.Clear()
		return c.JSON(fiber.Map{"message": "Tüm kayıtlar silindi"})
	}
}
