package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/moneysplitter/internal/calculator"
	"github.com/mmynk/moneysplitter/internal/models"
)

func TestSplitTable(t *testing.T) {
	payments := []calculator.Payment{
		{From: "c", To: "a", Amount: 4},
		{From: "c", To: "b", Amount: 1},
		{From: calculator.OverpaymentPool, To: "a", Amount: 2},
	}

	t.Run("simple mode uses exact even share", func(t *testing.T) {
		split := models.QuickSplit{
			TotalAmount:     10,
			TotalNoOfPeople: 3,
			Mode:            models.ModeSimple,
			People: []models.SplitEntry{
				{ID: 1, Name: "a", Paid: 8},
				{ID: 2, Name: "b", Paid: 2},
				{ID: 3, Name: "c", Paid: 0},
			},
		}

		rows := SplitTable(split, payments)

		require.Len(t, rows, 3)
		assert.InDelta(t, 10.0/3-8, rows[0].AmountDue, 1e-9)
		assert.Empty(t, rows[0].Transfers)
		assert.Equal(t, []Transfer{{To: "a", Amount: 4}, {To: "b", Amount: 1}}, rows[2].Transfers)
		assert.Equal(t, 3, rows[2].ID)
	})

	t.Run("advanced mode uses cost", func(t *testing.T) {
		split := models.QuickSplit{
			TotalNoOfPeople: 1,
			Mode:            models.ModeAdvanced,
			People:          []models.SplitEntry{{ID: 1, Name: "a", Paid: 8, Cost: 5}},
		}

		rows := SplitTable(split, nil)

		require.Len(t, rows, 1)
		assert.InDelta(t, -3, rows[0].AmountDue, 1e-9)
	})
}
