package service

import (
	"math"
	"strings"

	"github.com/mmynk/moneysplitter/internal/models"
)

// validateGroup checks a group before it is stored.
func validateGroup(group *models.Group) error {
	if strings.TrimSpace(group.Name) == "" {
		return invalidf("group name required")
	}
	seen := make(map[string]bool, len(group.Members))
	for i, m := range group.Members {
		if strings.TrimSpace(m.Name) == "" {
			return invalidf("member %d: name required", i+1)
		}
		if m.ID == "" {
			continue
		}
		if seen[m.ID] {
			return invalidf("member %q listed twice", m.ID)
		}
		seen[m.ID] = true
	}
	return nil
}

// validateTransaction checks a transaction against the group it is recorded in.
// Stored ledgers only accept group members, unlike the calculator, which
// silently ignores strangers.
func validateTransaction(group *models.Group, tx *models.Transaction) error {
	if len(tx.Payers) == 0 {
		return invalidf("transaction %q: at least one payer required", tx.Description)
	}
	for _, p := range tx.Payers {
		if !validAmount(p.Amount) {
			return invalidf("transaction %q: invalid amount %v for payer %q", tx.Description, p.Amount, p.Name)
		}
		if !group.HasMember(p.ID) {
			return invalidf("transaction %q: payer %q is not a member of group %s", tx.Description, p.ID, group.ID)
		}
	}
	for _, b := range tx.Beneficiaries {
		if !group.HasMember(b.ID) {
			return invalidf("transaction %q: beneficiary %q is not a member of group %s", tx.Description, b.ID, group.ID)
		}
	}
	return nil
}

// validateQuickSplit rejects amounts the form never produces.
func validateQuickSplit(split *models.QuickSplit) error {
	if split.TotalNoOfPeople < 1 {
		return invalidf("number of people must be at least 1")
	}
	if !split.Mode.Valid() {
		return invalidf("unknown mode %q", split.Mode)
	}
	if !validAmount(split.TotalAmount) {
		return invalidf("invalid total amount %v", split.TotalAmount)
	}
	if len(split.People) != split.TotalNoOfPeople {
		return invalidf("got %d people, expected %d", len(split.People), split.TotalNoOfPeople)
	}
	for _, p := range split.People {
		if strings.TrimSpace(p.Name) == "" {
			return invalidf("person %d: name required", p.ID)
		}
		if !validAmount(p.Paid) || !validAmount(p.Cost) {
			return invalidf("person %q: amounts must be finite and non-negative", p.Name)
		}
	}
	return nil
}

func validAmount(v float64) bool {
	return v >= 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}
