package export

import (
	"bytes"
	"strconv"
	"strings"
	"time"

	"overcooked-console/console-svc/internal/domain"
)

const (
	FileName    = "orders.csv"
	ContentType = "text/csv; charset=utf-8"

	// DateLayout mirrors the en-US date-time the order table shows.
	DateLayout = "1/2/2006, 03:04:05 PM"

	notAvailable = "N/A"
)

var Header = []string{"Order ID", "Status", "User", "Restaurant", "Date", "Address", "Total Price", "Details"}

// CSV flattens the joined rows exactly as they are rendered. Every cell is
// quoted; rows are separated by a bare newline with none after the last.
// A nil loc formats dates in UTC.
func CSV(rows []domain.JoinedRow, loc *time.Location) []byte {
	if loc == nil {
		loc = time.UTC
	}

	var buf bytes.Buffer
	writeRecord(&buf, Header)
	for _, row := range rows {
		buf.WriteByte('\n')
		writeRecord(&buf, Record(row, loc))
	}
	return buf.Bytes()
}

// Record returns the eight cells of one order row.
func Record(row domain.JoinedRow, loc *time.Location) []string {
	status := string(row.Order.Status)
	if status == "" {
		status = notAvailable
	}

	date := notAvailable
	if row.Order.OrderDate != nil && !row.Order.OrderDate.IsZero() {
		date = row.Order.OrderDate.Display(loc).Format(DateLayout)
	}

	return []string{
		strconv.Itoa(row.Order.ID),
		status,
		row.UserName,
		row.RestaurantName,
		date,
		row.Order.DeliveryAddress,
		"$" + row.TotalPrice.StringFixed(2),
		strings.Join(row.Details, "; "),
	}
}

func writeRecord(buf *bytes.Buffer, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteByte('"')
		buf.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		buf.WriteByte('"')
	}
}
