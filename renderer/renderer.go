// Package renderer produces markdown reports for fleet data.
//
// Functions here are pure: they take domain values and return markdown
// strings. The cmd layer decides how to put them on a terminal.
package renderer

import (
	"fmt"
	"strings"

	"github.com/seaward/marina"
)

// Fleet renders the fleet inventory as a markdown table, in name order.
func Fleet(f *marina.Fleet) string {
	var b strings.Builder
	b.WriteString("# Fleet Inventory\n\n")
	if f.Len() == 0 {
		b.WriteString("The fleet is empty.\n")
		return b.String()
	}

	b.WriteString("| Name | Length | Location | Spot | Owed |\n")
	b.WriteString("|:-----|-------:|:---------|:-----|-----:|\n")
	for v := range f.All() {
		fmt.Fprintf(&b, "| %s | %s ft | %s | %s | %s |\n",
			v.Name, v.Length, v.Location.Category(), v.Location.Detail(), v.Fees)
	}
	fmt.Fprintf(&b, "\n%d of %d vessels on record.\n", f.Len(), marina.MaxVessels)
	return b.String()
}

// Receipt renders the confirmation of a recorded payment.
func Receipt(v marina.Vessel, amount marina.Money) string {
	return fmt.Sprintf("Received %s for %q; the outstanding balance is now %s.\n", amount, v.Name, v.Fees)
}

// BillingSummary renders the result of a monthly billing run.
func BillingSummary(count int, total marina.Money) string {
	return fmt.Sprintf("Charged %d vessels a total of %s for the month.\n", count, total)
}
