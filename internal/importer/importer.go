package importer

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/service/catalog"
)

type ProductWriter interface {
	Create(ctx context.Context, p domain.Product) (*domain.Product, error)
}

// CSVImporter bulk-loads catalog rows from a CSV export with the header
// name,category,price,description,image,stock. Prices are decimal strings.
type CSVImporter struct {
	reader      *csv.Reader
	productRepo ProductWriter
}

func NewCSVImporter(r io.Reader, repo ProductWriter) *CSVImporter {
	csvr := csv.NewReader(r)
	csvr.FieldsPerRecord = -1 // rows may have trailing commas
	return &CSVImporter{reader: csvr, productRepo: repo}
}

// Run parses rows and inserts products, returning the number imported.
func (i *CSVImporter) Run(ctx context.Context) (int, error) {
	headers, err := i.reader.Read()
	if err != nil {
		return 0, fmt.Errorf("read headers: %w", err)
	}
	index := headerIndex(headers)
	for _, required := range []string{"name", "category", "price", "description"} {
		if _, ok := index[required]; !ok {
			return 0, fmt.Errorf("missing column %q", required)
		}
	}

	var imported int
	for {
		record, err := i.reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return imported, fmt.Errorf("read row: %w", err)
		}

		p, ok, err := parseRow(record, index)
		if err != nil {
			return imported, fmt.Errorf("row %d: %w", imported+1, err)
		}
		if !ok {
			continue
		}

		if _, err := i.productRepo.Create(ctx, p); err != nil {
			return imported, fmt.Errorf("insert %q: %w", p.Name, err)
		}
		imported++
	}

	return imported, nil
}

func headerIndex(headers []string) map[string]int {
	index := make(map[string]int, len(headers))
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	return index
}

func parseRow(record []string, index map[string]int) (domain.Product, bool, error) {
	field := func(name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	name := field("name")
	if name == "" {
		return domain.Product{}, false, nil
	}

	priceCents, err := catalog.ParsePriceCents(field("price"))
	if err != nil {
		return domain.Product{}, false, err
	}

	stock := 0
	if raw := field("stock"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err == nil && n > 0 {
			stock = n
		}
	}

	image := field("image")
	if image == "" {
		image = catalog.FallbackImage(field("category"))
	}

	return domain.Product{
		Name:        name,
		Category:    field("category"),
		PriceCents:  priceCents,
		Description: field("description"),
		Image:       image,
		Stock:       stock,
	}, true, nil
}
