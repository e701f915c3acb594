package export

import (
	"fmt"
	"io"

	"manuparts/internal/models"

	"github.com/xuri/excelize/v2"
)

const bookingsSheet = "Bookings"

var bookingHeaders = []string{
	"ID", "Product ID", "Product", "Quantity", "Client Email",
	"Client Name", "Address", "Phone", "Unit Price", "Status", "Created At",
}

// WriteBookingsXLSX streams all bookings as a single-sheet workbook.
func WriteBookingsXLSX(w io.Writer, bookings []models.Booking) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(bookingsSheet)
	if err != nil {
		return fmt.Errorf("error creating sheet: %v", err)
	}
	f.SetActiveSheet(index)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#DDEBF7"}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	for col, header := range bookingHeaders {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		_ = f.SetCellValue(bookingsSheet, cell, header)
		_ = f.SetCellStyle(bookingsSheet, cell, cell, headerStyle)
	}

	for row, b := range bookings {
		values := []interface{}{
			b.ID.Hex(), b.ProductID, b.ProductName, b.Quantity, b.ClientEmail,
			b.ClientName, b.Address, b.Phone, b.UnitPrice, b.Status,
			b.CreatedAt.Format("2006-01-02 15:04:05"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			_ = f.SetCellValue(bookingsSheet, cell, v)
		}
	}

	_ = f.SetColWidth(bookingsSheet, "A", "K", 20)
	_ = f.DeleteSheet("Sheet1")

	if err := f.Write(w); err != nil {
		return fmt.Errorf("error writing workbook: %v", err)
	}
	return nil
}
