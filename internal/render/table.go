package render

import (
	"github.com/mmynk/moneysplitter/internal/calculator"
	"github.com/mmynk/moneysplitter/internal/models"
)

// Transfer is one outgoing payment listed on a table row.
type Transfer struct {
	To     string
	Amount float64
}

// TableRow is one person's line in the quick split summary table.
type TableRow struct {
	ID        int
	Name      string
	Paid      float64
	AmountDue float64 // Positive = still owes, negative = is owed
	Transfers []Transfer
}

// SplitTable builds one row per person of split with the payments they make.
//
// AmountDue uses the exact even share in simple mode, not the rounded
// average the calculator settles with. Payments are attributed by name.
func SplitTable(split models.QuickSplit, payments []calculator.Payment) []TableRow {
	rows := make([]TableRow, len(split.People))
	for i, p := range split.People {
		row := TableRow{ID: p.ID, Name: p.Name, Paid: p.Paid}
		switch {
		case split.Mode == models.ModeAdvanced:
			row.AmountDue = p.Cost - p.Paid
		case split.TotalNoOfPeople > 0:
			row.AmountDue = split.TotalAmount/float64(split.TotalNoOfPeople) - p.Paid
		default:
			row.AmountDue = -p.Paid
		}
		for _, pay := range payments {
			if pay.From == p.Name {
				row.Transfers = append(row.Transfers, Transfer{To: pay.To, Amount: pay.Amount})
			}
		}
		rows[i] = row
	}
	return rows
}
