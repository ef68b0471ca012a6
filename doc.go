// Package wealthflow implements the core of a personal-finance tracker:
// bank accounts, an append-mostly ledger of income and expense transactions,
// and a stock portfolio, all held in a single in-memory AppState per user.
//
// The package is deliberately split in two halves:
//
//   - aggregation: pure, side-effect free derived views over an AppState
//     snapshot (net worth, expense breakdowns, recent activity). These never
//     fail; empty collections yield zero values.
//   - mutation: pure state transitions (record a transaction, add or remove
//     an account, refresh stock prices). A mutation returns a brand new
//     AppState together with a Delta naming the collections it touched, so
//     persistence can mirror exactly what changed.
//
// Persistence, identity and the AI advisory are external collaborators,
// found in the store, identity and advisor packages respectively.
package wealthflow
