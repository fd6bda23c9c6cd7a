package pages

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dmitrijs2005/vidmarkt/internal/client/models"
)

const InvalidDate = "Invalid Date"

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05",
	time.DateOnly,
}

// FormatDate renders an ISO timestamp as "03 Sept 2024": two-digit day,
// abbreviated month (September is "Sept") and four-digit year, in the
// timestamp's own offset. Unparseable input gives InvalidDate.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return fmt.Sprintf("%02d %s %d", t.Day(), shortMonth(t.Month()), t.Year())
		}
	}
	return InvalidDate
}

func shortMonth(m time.Month) string {
	if m == time.September {
		return "Sept"
	}
	return m.String()[:3]
}

// FormatPrice renders a price the way the catalog lists it: "$12.5", "$4".
func FormatPrice(p models.Price) string {
	return "$" + strconv.FormatFloat(p.Float64(), 'f', -1, 64)
}
