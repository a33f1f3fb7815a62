package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"gorm.io/gorm"

	entity "companion.GO/model/entity/catalog"
	catalogRepo "companion.GO/model/repository/catalog"
)

// ImportOptions configures a catalog import run.
type ImportOptions struct {
	BatchSize int
	// DefaultGroup receives rows with an empty group column; empty means no membership.
	DefaultGroup string
}

// ImportResult holds counters and timing from an import run.
type ImportResult struct {
	TotalRows   int
	Created     int
	Updated     int
	Skipped     int
	Memberships int
	Warnings    []string
	ProcessTime time.Duration
	DBTime      time.Duration
	TotalTime   time.Duration
}

// importRow is one decoded CSV line. Weak typing turns "75.00" into a float.
type importRow struct {
	ID          string  `mapstructure:"id"`
	Name        string  `mapstructure:"name"`
	Category    string  `mapstructure:"category"`
	Price       float64 `mapstructure:"price"`
	Description string  `mapstructure:"description"`
	Image       string  `mapstructure:"image"`
	Group       string  `mapstructure:"group"`
	Position    int     `mapstructure:"position"`
}

var knownColumns = map[string]bool{
	"id": true, "name": true, "category": true, "price": true,
	"description": true, "image": true, "group": true, "position": true,
}

func decodeRow(record map[string]interface{}) (importRow, error) {
	var row importRow
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &row,
		TagName:          "mapstructure",
	})
	if err != nil {
		return row, err
	}
	return row, dec.Decode(record)
}

// ImportCSV reads id,name,category,price,description,image,group,position rows
// and upserts products and group memberships.
func ImportCSV(db *gorm.DB, r io.Reader, opts ImportOptions) (*ImportResult, error) {
	startTotal := time.Now()
	if opts.BatchSize <= 0 {
		opts.BatchSize = 500
	}

	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read CSV header: %w", err)
	}
	hasID := false
	for i := range headers {
		headers[i] = strings.ToLower(strings.TrimSpace(headers[i]))
		if headers[i] == "id" {
			hasID = true
		}
	}
	if !hasID {
		return nil, fmt.Errorf("CSV must contain an 'id' column")
	}

	result := &ImportResult{}
	for _, h := range headers {
		if !knownColumns[h] {
			result.Warnings = append(result.Warnings, fmt.Sprintf("column %q: unknown, skipping", h))
		}
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read CSV rows: %w", err)
	}
	result.TotalRows = len(records)

	startProcess := time.Now()
	products := make(map[string]entity.Product, len(records))
	order := make([]string, 0, len(records))
	var links []entity.GroupProduct
	groupKeys := make(map[string]bool)

	for i, rec := range records {
		line := i + 2
		m := make(map[string]interface{}, len(headers))
		for ci, h := range headers {
			if ci < len(rec) && knownColumns[h] {
				m[h] = strings.TrimSpace(rec[ci])
			}
		}
		row, err := decodeRow(m)
		if err != nil {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: %v", line, err))
			continue
		}
		if row.ID == "" {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: empty id, skipping", line))
			continue
		}
		if row.Price < 0 {
			result.Skipped++
			result.Warnings = append(result.Warnings, fmt.Sprintf("line %d: negative price for %s, skipping", line, row.ID))
			continue
		}
		if _, dup := products[row.ID]; !dup {
			order = append(order, row.ID)
		}
		products[row.ID] = entity.Product{
			ID:          row.ID,
			Name:        row.Name,
			Category:    row.Category,
			Price:       row.Price,
			Description: row.Description,
			Image:       row.Image,
		}
		group := row.Group
		if group == "" {
			group = opts.DefaultGroup
		}
		if group != "" {
			groupKeys[group] = true
			links = append(links, entity.GroupProduct{GroupKey: group, ProductID: row.ID, Position: row.Position})
		}
	}

	repo := catalogRepo.NewCatalogRepository(db)
	if err := repo.AutoMigrate(); err != nil {
		return nil, fmt.Errorf("migrate catalog: %w", err)
	}
	existing, err := repo.FindProductsByIDs(order)
	if err != nil {
		return nil, fmt.Errorf("lookup products: %w", err)
	}
	rows := make([]entity.Product, 0, len(order))
	for _, id := range order {
		if _, ok := existing[id]; ok {
			result.Updated++
		} else {
			result.Created++
		}
		rows = append(rows, products[id])
	}
	keys := make([]string, 0, len(groupKeys))
	for k := range groupKeys {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	result.ProcessTime = time.Since(startProcess)

	startDB := time.Now()
	err = db.Transaction(func(tx *gorm.DB) error {
		r := catalogRepo.NewCatalogRepository(tx)
		if err := r.UpsertProducts(rows, opts.BatchSize); err != nil {
			return fmt.Errorf("upsert products: %w", err)
		}
		if err := r.EnsureGroups(keys); err != nil {
			return fmt.Errorf("ensure groups: %w", err)
		}
		if err := r.UpsertMemberships(links, opts.BatchSize); err != nil {
			return fmt.Errorf("upsert memberships: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	result.Memberships = len(links)
	result.DBTime = time.Since(startDB)
	result.TotalTime = time.Since(startTotal)
	return result, nil
}
