// internal/adapters/spreadsheet/inventory.go
package spreadsheet

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tealeg/xlsx/v3"

	"github.com/ammerola/canteen-be/internal/core/domain"
	"github.com/ammerola/canteen-be/internal/core/ports"
)

const (
	inventorySheet = "Inventory"
	summarySheet   = "Summary"
	dateLayout     = "2006-01-02"
)

var inventoryHeaders = []string{
	"Name", "Category", "Supplier", "Unit", "Current Stock", "Min Stock", "Max Stock",
	"Stock %", "Unit Cost", "Retail Price", "Total Value", "Expiry Date", "Status",
	"On Clearance", "Clearance Price", "Discount %",
}

// Encoder renders inventory exports as xlsx or JSON
type Encoder struct{}

var _ ports.ExportEncoder = Encoder{}

// Encode writes wb to w in the given format
func (Encoder) Encode(w io.Writer, format domain.ExportFormat, wb *ports.InventoryExport) error {
	return Encode(w, format, wb)
}

// Encode writes wb to w in the given format
func Encode(w io.Writer, format domain.ExportFormat, wb *ports.InventoryExport) error {
	switch format {
	case domain.ExportJSON:
		return WriteJSON(w, wb)
	case domain.ExportXLSX, "":
		return WriteXLSX(w, wb)
	default:
		return fmt.Errorf("unsupported export format %q", format)
	}
}

// WriteJSON writes wb as an indented JSON document
func WriteJSON(w io.Writer, wb *ports.InventoryExport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(wb); err != nil {
		return fmt.Errorf("failed to encode inventory export: %w", err)
	}
	return nil
}

// WriteXLSX writes wb as a workbook with an item sheet and a summary sheet
func WriteXLSX(w io.Writer, wb *ports.InventoryExport) error {
	file := xlsx.NewFile()

	sheet, err := file.AddSheet(inventorySheet)
	if err != nil {
		return fmt.Errorf("failed to add worksheet: %w", err)
	}

	headerRow := sheet.AddRow()
	for _, header := range inventoryHeaders {
		cell := headerRow.AddCell()
		cell.Value = header
		cell.GetStyle().Font.Bold = true
		cell.GetStyle().Fill.PatternType = "solid"
		cell.GetStyle().Fill.FgColor = "CCCCCC"
	}

	for idx := range wb.Items {
		writeItemRow(sheet.AddRow(), &wb.Items[idx])
	}
	sheet.SetColWidth(1, len(inventoryHeaders), 15)

	summary, err := file.AddSheet(summarySheet)
	if err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}
	writeSummary(summary, wb)

	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func writeItemRow(row *xlsx.Row, it *domain.ClassifiedItem) {
	row.AddCell().SetString(it.Name)
	row.AddCell().SetString(it.Category)
	row.AddCell().SetString(it.Supplier)
	row.AddCell().SetString(it.Unit)
	addDecimal(row, it.CurrentStock)
	addDecimal(row, it.MinStock)
	addDecimal(row, it.MaxStock)
	row.AddCell().SetFloat(it.StockPercent)
	addDecimal(row, it.UnitCost)
	addDecimal(row, it.RetailPrice)
	addDecimal(row, it.TotalValue)

	expiry := ""
	if it.ExpiryDate != nil && !it.ExpiryDate.IsZero() {
		expiry = it.ExpiryDate.Format(dateLayout)
	}
	row.AddCell().SetString(expiry)
	row.AddCell().SetString(string(it.Status))

	if it.IsOnClearance {
		row.AddCell().SetString("yes")
		addDecimal(row, it.ClearancePrice)
		addDecimal(row, it.DiscountPercent)
		return
	}
	row.AddCell().SetString("no")
	row.AddCell().SetString("")
	row.AddCell().SetString("")
}

func addDecimal(row *xlsx.Row, d decimal.Decimal) {
	row.AddCell().SetFloat(d.InexactFloat64())
}

func writeSummary(sheet *xlsx.Sheet, wb *ports.InventoryExport) {
	s := wb.Summary
	pairs := []struct {
		label string
		value any
	}{
		{"Canteen", wb.CanteenName},
		{"Generated At", wb.GeneratedAt.Format(time.RFC3339)},
		{"Total Items", s.TotalItems},
		{"Good", s.Good},
		{"Low Stock", s.LowStock},
		{"Critical", s.Critical},
		{"Out of Stock", s.OutOfStock},
		{"Expiring Soon", s.ExpiringSoon},
		{"Expired", s.Expired},
		{"Needs Attention", s.Attention},
		{"On Clearance", s.OnClearance},
		{"Total Value", s.TotalValue},
	}

	for _, p := range pairs {
		row := sheet.AddRow()
		label := row.AddCell()
		label.SetString(p.label)
		label.GetStyle().Font.Bold = true

		switch v := p.value.(type) {
		case int:
			row.AddCell().SetInt(v)
		case decimal.Decimal:
			row.AddCell().SetFloat(v.InexactFloat64())
		default:
			row.AddCell().SetString(fmt.Sprint(v))
		}
	}
	sheet.SetColWidth(1, 1, 20)
	sheet.SetColWidth(2, 2, 28)
}
