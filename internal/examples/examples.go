// Package examples provides ready-made datasets for trying the calculators.
package examples

import (
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/moneysplitter/internal/models"
)

// QuickSplitExample returns ten people sharing a total of 100 evenly.
func QuickSplitExample() models.QuickSplit {
	paid := []float64{12, 14, 6, 9, 18, 7, 3, 13, 5, 13}
	names := []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j"}

	people := make([]models.SplitEntry, len(names))
	for i, name := range names {
		people[i] = models.SplitEntry{ID: i + 1, Name: name, Paid: paid[i], Cost: 10}
	}

	return models.QuickSplit{
		TotalAmount:     100,
		TotalNoOfPeople: len(people),
		Mode:            models.ModeSimple,
		People:          people,
	}
}

// LedgerExample returns a four-person trip group and its expense ledger.
// IDs are freshly generated on every call.
func LedgerExample() (models.Group, models.Ledger) {
	alice := newPerson("Alice")
	bob := newPerson("Bob")
	charlie := newPerson("Charlie")
	dave := newPerson("Dave")
	everyone := []models.Person{alice, bob, charlie, dave}

	now := time.Now().Unix()
	group := models.Group{
		ID:        uuid.New().String(),
		Name:      "🗾 Japan Trip 2024",
		Members:   everyone,
		CreatedAt: now,
	}

	ledger := models.Ledger{
		ID:        uuid.New().String(),
		Name:      "🗼 Tokyo Expenses",
		GroupID:   group.ID,
		CreatedAt: now,
		Transactions: []models.Transaction{
			newTransaction("✈️ Flight Tickets",
				[]models.Payer{{Person: alice, Amount: 1200}, {Person: bob, Amount: 1200}},
				everyone),
			newTransaction("🏨 Hotel Booking (3 nights)",
				[]models.Payer{{Person: charlie, Amount: 900}},
				everyone),
			newTransaction("🍣 Sushi Dinner at Tsukiji",
				[]models.Payer{{Person: bob, Amount: 180}},
				everyone),
			newTransaction("🚄 Bullet Train to Kyoto",
				[]models.Payer{{Person: dave, Amount: 280}},
				[]models.Person{alice, bob, dave}),
			newTransaction("🎭 Kabuki Theater Tickets",
				[]models.Payer{{Person: alice, Amount: 240}},
				[]models.Person{alice, charlie}),
			newTransaction("🍜 Ramen Street Food",
				[]models.Payer{{Person: bob, Amount: 25}, {Person: charlie, Amount: 20}},
				everyone),
		},
	}

	return group, ledger
}

func newPerson(name string) models.Person {
	return models.Person{ID: uuid.New().String(), Name: name}
}

func newTransaction(description string, payers []models.Payer, beneficiaries []models.Person) models.Transaction {
	return models.Transaction{
		ID:            uuid.New().String(),
		Description:   description,
		Payers:        payers,
		Beneficiaries: append([]models.Person(nil), beneficiaries...),
	}
}
