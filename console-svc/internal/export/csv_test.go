package export_test

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"overcooked-console/console-svc/internal/domain"
	"overcooked-console/console-svc/internal/export"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoRows() []domain.JoinedRow {
	return []domain.JoinedRow{
		{
			Order: domain.Order{
				ID:              1,
				Status:          domain.StatusPending,
				OrderDate:       domain.NewTimestamp(time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)),
				DeliveryAddress: "12 Elm St, Apt 4",
			},
			UserName:       "Ann Lee",
			RestaurantName: "Trattoria",
			TotalPrice:     decimal.RequireFromString("15"),
			Details:        []string{"Pizza x 3"},
		},
		{
			Order: domain.Order{
				ID:              2,
				DeliveryAddress: `The "Loft"`,
			},
			UserName:       "N/A",
			RestaurantName: "N/A",
			TotalPrice:     decimal.Zero,
			Details:        []string{"N/A x 1", "Soup x 2"},
		},
	}
}

func TestCSV_TwoOrders(t *testing.T) {
	out := string(export.CSV(twoRows(), time.UTC))

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, `"Order ID","Status","User","Restaurant","Date","Address","Total Price","Details"`, lines[0])
	assert.Equal(t, `"1","Pending","Ann Lee","Trattoria","3/5/2024, 02:07:09 PM","12 Elm St, Apt 4","$15.00","Pizza x 3"`, lines[1])
	assert.Equal(t, `"2","N/A","N/A","N/A","N/A","The ""Loft""","$0.00","N/A x 1; Soup x 2"`, lines[2])

	for _, line := range lines {
		for _, cell := range strings.Split(line, `","`) {
			assert.NotEmpty(t, cell)
		}
		assert.True(t, strings.HasPrefix(line, `"`))
		assert.True(t, strings.HasSuffix(line, `"`))
	}
}

func TestCSV_ParsesAsEightColumns(t *testing.T) {
	records, err := csv.NewReader(strings.NewReader(string(export.CSV(twoRows(), nil)))).ReadAll()

	require.NoError(t, err)
	require.Len(t, records, 3)
	for _, record := range records {
		assert.Len(t, record, 8)
	}
	assert.Equal(t, "12 Elm St, Apt 4", records[1][5])
	assert.Equal(t, `The "Loft"`, records[2][5])
}

func TestCSV_EmptyView(t *testing.T) {
	out := string(export.CSV(nil, time.UTC))

	assert.Equal(t, `"Order ID","Status","User","Restaurant","Date","Address","Total Price","Details"`, out)
}

func TestRecord_UsesLocation(t *testing.T) {
	loc := time.FixedZone("EST", -5*3600)

	record := export.Record(twoRows()[0], loc)

	assert.Equal(t, "3/5/2024, 09:07:09 AM", record[4])
}

func TestRecord_ZonelessDateKeepsWallClock(t *testing.T) {
	ts, err := domain.ParseTimestamp("2024-03-05T14:07:09.123")
	require.NoError(t, err)
	row := twoRows()[0]
	row.Order.OrderDate = &ts

	record := export.Record(row, time.FixedZone("EST", -5*3600))

	assert.Equal(t, "3/5/2024, 02:07:09 PM", record[4])
}
