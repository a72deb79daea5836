package services

import (
	"fmt"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
	"github.com/yeremiapane/restaurant-dashboard/store"
)

const (
	OrdersSheet = "Orders"
	WasteSheet  = "Waste"
)

// ExportWorkbook writes the restaurant's orders and waste logs into a workbook.
// The caller closes it.
func ExportWorkbook(snap store.Snapshot, restaurantID string) (*excelize.File, error) {
	f := excelize.NewFile()

	// NewFile starts with "Sheet1"
	if err := f.SetSheetName("Sheet1", OrdersSheet); err != nil {
		f.Close()
		return nil, err
	}
	if _, err := f.NewSheet(WasteSheet); err != nil {
		f.Close()
		return nil, err
	}

	orderRows := [][]interface{}{{"ID", "Customer", "Items", "Total", "Status", "Created At"}}
	for _, o := range RestaurantOrders(snap, restaurantID) {
		items := make([]string, 0, len(o.Items))
		for _, it := range o.Items {
			items = append(items, fmt.Sprintf("%dx %s", it.Quantity, it.Name))
		}
		orderRows = append(orderRows, []interface{}{
			o.ID, o.CustomerName, strings.Join(items, ", "), o.Total, string(o.Status), o.CreatedAt.Format(time.RFC3339),
		})
	}
	if err := writeRows(f, OrdersSheet, orderRows); err != nil {
		f.Close()
		return nil, err
	}

	wasteRows := [][]interface{}{{"ID", "Item", "Quantity", "Unit", "Cost", "Reason", "Date"}}
	for _, w := range RestaurantWaste(snap, restaurantID) {
		wasteRows = append(wasteRows, []interface{}{
			w.ID, w.ItemName, w.Quantity, w.Unit, w.Cost, w.Reason, w.Date.Format("2006-01-02"),
		})
	}
	if err := writeRows(f, WasteSheet, wasteRows); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return fmt.Errorf("write %s row %d: %w", sheet, i+1, err)
		}
	}
	return nil
}
