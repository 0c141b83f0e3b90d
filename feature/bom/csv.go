package bom

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	apperrors "team-inventory/core/errors"
	"team-inventory/core/reconcile"
	"team-inventory/core/utils"
)

var (
	partNumberHeaders = []string{"part_number", "part number"}
	quantityHeaders   = []string{"quantity", "qty"}
	nameHeaders       = []string{"name", "part name", "part_name"}
)

// ParseCSV reads BOM lines from a CSV export. Headers are matched case-insensitively;
// rows without a part number or with a non-positive quantity are dropped.
func ParseCSV(r io.Reader) ([]reconcile.Line, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, apperrors.New(apperrors.CodeValidation, "CSV file is empty")
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeValidation, err, "invalid CSV")
	}

	partIdx, qtyIdx, nameIdx := -1, -1, -1
	for i, h := range header {
		h = utils.NormalizeHeader(h)
		switch {
		case partIdx < 0 && contains(partNumberHeaders, h):
			partIdx = i
		case qtyIdx < 0 && contains(quantityHeaders, h):
			qtyIdx = i
		case nameIdx < 0 && contains(nameHeaders, h):
			nameIdx = i
		}
	}
	if partIdx < 0 || qtyIdx < 0 {
		return nil, apperrors.New(apperrors.CodeValidation, "CSV must include part_number and quantity columns")
	}

	var lines []reconcile.Line
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperrors.Wrap(apperrors.CodeValidation, err, "invalid CSV")
		}
		qty, _ := utils.ParseLeadingInt(field(record, qtyIdx))
		lines = append(lines, reconcile.Line{
			PartNumber: field(record, partIdx),
			Quantity:   qty,
			Name:       field(record, nameIdx),
		})
	}
	return CleanLines(lines), nil
}

// CleanLines trims fields and drops lines without a part number or with quantity <= 0.
func CleanLines(lines []reconcile.Line) []reconcile.Line {
	cleaned := make([]reconcile.Line, 0, len(lines))
	for _, l := range lines {
		l.PartNumber = strings.TrimSpace(l.PartNumber)
		l.Name = strings.TrimSpace(l.Name)
		if l.PartNumber == "" || l.Quantity <= 0 {
			continue
		}
		cleaned = append(cleaned, l)
	}
	return cleaned
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
