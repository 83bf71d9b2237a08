package service

import (
	"github.com/mmynk/moneysplitter/internal/calculator"
	"github.com/mmynk/moneysplitter/internal/models"
	"github.com/mmynk/moneysplitter/internal/render"
	"github.com/mmynk/moneysplitter/pkg/api"
)

func toPeople(in []*api.Person) []models.Person {
	out := make([]models.Person, 0, len(in))
	for _, p := range in {
		if p == nil {
			continue
		}
		out = append(out, models.Person{ID: p.ID, Name: p.Name})
	}
	return out
}

func fromPeople(in []models.Person) []*api.Person {
	out := make([]*api.Person, len(in))
	for i, p := range in {
		out[i] = &api.Person{ID: p.ID, Name: p.Name}
	}
	return out
}

func toGroup(in *api.Group) models.Group {
	if in == nil {
		return models.Group{}
	}
	return models.Group{
		ID:        in.ID,
		Name:      in.Name,
		Members:   toPeople(in.Members),
		CreatedAt: in.CreatedAt,
	}
}

func fromGroup(in *models.Group) *api.Group {
	return &api.Group{
		ID:        in.ID,
		Name:      in.Name,
		Members:   fromPeople(in.Members),
		CreatedAt: in.CreatedAt,
	}
}

func toTransaction(in *api.Transaction) models.Transaction {
	tx := models.Transaction{
		ID:            in.ID,
		Description:   in.Description,
		Beneficiaries: toPeople(in.Beneficiaries),
	}
	for _, p := range in.Payers {
		if p == nil {
			continue
		}
		tx.Payers = append(tx.Payers, models.Payer{
			Person: models.Person{ID: p.ID, Name: p.Name},
			Amount: p.Amount,
		})
	}
	return tx
}

func toTransactions(in []*api.Transaction) []models.Transaction {
	out := make([]models.Transaction, 0, len(in))
	for _, t := range in {
		if t == nil {
			continue
		}
		out = append(out, toTransaction(t))
	}
	return out
}

func fromTransaction(in models.Transaction) *api.Transaction {
	payers := make([]*api.Payer, len(in.Payers))
	for i, p := range in.Payers {
		payers[i] = &api.Payer{ID: p.ID, Name: p.Name, Amount: p.Amount}
	}
	return &api.Transaction{
		ID:            in.ID,
		Description:   in.Description,
		Payers:        payers,
		Beneficiaries: fromPeople(in.Beneficiaries),
	}
}

func toLedger(in *api.Ledger) models.Ledger {
	if in == nil {
		return models.Ledger{}
	}
	return models.Ledger{
		ID:           in.ID,
		Name:         in.Name,
		GroupID:      in.GroupID,
		Transactions: toTransactions(in.Transactions),
		CreatedAt:    in.CreatedAt,
	}
}

func fromLedger(in *models.Ledger) *api.Ledger {
	txs := make([]*api.Transaction, len(in.Transactions))
	for i, t := range in.Transactions {
		txs[i] = fromTransaction(t)
	}
	return &api.Ledger{
		ID:           in.ID,
		Name:         in.Name,
		GroupID:      in.GroupID,
		Transactions: txs,
		CreatedAt:    in.CreatedAt,
	}
}

func toQuickSplit(in *api.QuickSplit) models.QuickSplit {
	if in == nil {
		return models.QuickSplit{}
	}
	split := models.QuickSplit{
		ID:              in.ID,
		TotalAmount:     in.TotalAmount,
		TotalNoOfPeople: in.TotalNoOfPeople,
		Mode:            models.SplitMode(in.Mode),
		UpdatedAt:       in.UpdatedAt,
	}
	if split.Mode == "" {
		split.Mode = models.ModeSimple
	}
	for _, p := range in.People {
		if p == nil {
			continue
		}
		split.People = append(split.People, models.SplitEntry{
			ID:     p.ID,
			Name:   p.Name,
			Paid:   p.Paid,
			Cost:   p.Cost,
			Locked: p.Locked,
		})
	}
	return split
}

func fromQuickSplit(in *models.QuickSplit) *api.QuickSplit {
	people := make([]*api.SplitEntry, len(in.People))
	for i, p := range in.People {
		people[i] = &api.SplitEntry{ID: p.ID, Name: p.Name, Paid: p.Paid, Cost: p.Cost, Locked: p.Locked}
	}
	return &api.QuickSplit{
		ID:              in.ID,
		TotalAmount:     in.TotalAmount,
		TotalNoOfPeople: in.TotalNoOfPeople,
		Mode:            string(in.Mode),
		People:          people,
		UpdatedAt:       in.UpdatedAt,
	}
}

func fromPayments(in []calculator.Payment) []*api.Payment {
	out := make([]*api.Payment, len(in))
	for i, p := range in {
		out[i] = &api.Payment{From: p.From, To: p.To, Amount: p.Amount}
	}
	return out
}

func fromSplitPeople(in []calculator.SplitPerson) []*api.SplitPerson {
	out := make([]*api.SplitPerson, len(in))
	for i, p := range in {
		out[i] = &api.SplitPerson{
			ID:     p.ID,
			Name:   p.Name,
			Paid:   p.Paid,
			Cost:   p.Cost,
			ToPay:  p.ToPay,
			Solved: p.Solved,
		}
	}
	return out
}

func fromTableRows(in []render.TableRow) []*api.TableRow {
	out := make([]*api.TableRow, len(in))
	for i, r := range in {
		transfers := make([]*api.Transfer, len(r.Transfers))
		for j, t := range r.Transfers {
			transfers[j] = &api.Transfer{To: t.To, Amount: t.Amount}
		}
		out[i] = &api.TableRow{
			ID:        r.ID,
			Name:      r.Name,
			Paid:      r.Paid,
			AmountDue: r.AmountDue,
			Transfers: transfers,
		}
	}
	return out
}

func fromLedgerSettlement(ledgerID string, in calculator.LedgerSettlement) *api.LedgerSettlement {
	balances := make([]*api.MemberBalance, len(in.Members))
	for i, m := range in.Members {
		balances[i] = &api.MemberBalance{
			PersonID:   m.Person.ID,
			Name:       m.Person.Name,
			TotalPaid:  m.TotalPaid,
			TotalShare: m.TotalShare,
			NetBalance: m.NetBalance,
		}
	}
	unsettled := make([]*api.Balance, len(in.Unsettled))
	for i, b := range in.Unsettled {
		unsettled[i] = &api.Balance{ID: b.ID, Name: b.Name, Amount: b.Amount}
	}
	return &api.LedgerSettlement{
		LedgerID:              ledgerID,
		Balances:              balances,
		Settlements:           fromPayments(in.Settlements),
		Unsettled:             unsettled,
		SkippedTransactionIDs: in.Skipped,
		Diagram:               render.Mermaid(in.Settlements),
	}
}
