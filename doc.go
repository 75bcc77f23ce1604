// Package finboard is the data core of a personal-finance dashboard.
//
// It holds an immutable, snapshot-based store of financial records
// (transactions, bills, savings goals, subscriptions, investments and
// budget categories), a composable filter engine over those records,
// and a pure aggregator computing the derived metrics a dashboard
// displays: totals per kind, monthly series, budget usage, days until
// due dates, compound projections and loan payments.
//
// All aggregation is pure: every function takes the record subset and
// parameters it needs and never reads hidden state. Mutation goes
// through the Store, which replaces the whole snapshot on every write,
// so readers always observe a fully formed, consistent view.
package finboard
