package cashflow

import (
	"sort"
	"time"
)

// TimelineEntry is a transaction placed on the merged chronological ledger.
type TimelineEntry struct {
	Transaction
	Direction Direction
}

// BuildTimeline merges the extracted transaction lists into one sequence
// sorted by date ascending. The sort is stable: same-date entries keep
// category order (receivables, product payables, general expenses) and
// their appearance order within a category. Nothing is deduplicated.
func BuildTimeline(receivables, productPayables, generalExpenses []Transaction) []TimelineEntry {
	entries := make([]TimelineEntry, 0, len(receivables)+len(productPayables)+len(generalExpenses))
	for _, list := range [][]Transaction{receivables, productPayables, generalExpenses} {
		for _, tx := range list {
			entries = append(entries, TimelineEntry{Transaction: tx, Direction: tx.Category.Direction()})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if !entries[i].Date.Equal(entries[j].Date) {
			return entries[i].Date.Before(entries[j].Date)
		}
		return entries[i].Category.rank() < entries[j].Category.rank()
	})
	return entries
}

// GroupByDate sums transactions sharing a calendar day into one transaction
// per day, ordered by date ascending. The order id and counterparty of the
// first transaction seen for a day are kept.
func GroupByDate(txs []Transaction) []Transaction {
	if len(txs) == 0 {
		return nil
	}
	grouped := make(map[time.Time]Transaction, len(txs))
	for _, tx := range txs {
		day := truncateToDay(tx.Date)
		agg, ok := grouped[day]
		if !ok {
			agg = tx
			agg.Date = day
			grouped[day] = agg
			continue
		}
		agg.Amount = agg.Amount.Add(tx.Amount)
		grouped[day] = agg
	}
	days := make([]Transaction, 0, len(grouped))
	for _, tx := range grouped {
		days = append(days, tx)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Date.Before(days[j].Date) })
	return days
}
