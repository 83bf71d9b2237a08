// Package models defines the domain records shared by the calculator,
// the storage layer and the RPC services.
//
// # Ledger Models
//
// A Group is the universe of people considered when balances are computed.
// A Ledger belongs to one Group and holds an ordered list of Transactions,
// each with any number of payers and beneficiaries:
//   - Person: identity by ID, Name is display-only and may repeat
//   - Payer: a Person plus the amount they contributed
//   - Transaction: cost is the sum of payer amounts, split evenly among beneficiaries
//
// # Quick Split Models
//
// A QuickSplit is the flat form: one total shared by a list of people who
// each paid something. In simple mode the total is divided evenly, in
// advanced mode every entry carries its own Cost.
//
// # Design Principles
//
//  1. Records are plain values. The calculator never mutates them.
//  2. Relationships use ID strings instead of pointers.
//  3. Ordering of transactions is for display only.
package models
