package view

import (
	"sort"

	"tikang-admin/internal/models"
)

// SortTransactionsByNewest orders a copy descending by creation time.
func SortTransactionsByNewest(transactions []models.Transaction) []models.Transaction {
	sorted := append([]models.Transaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	return sorted
}

// SplitTransactions separates booking payments from the rest of the ledger.
func SplitTransactions(transactions []models.Transaction) (booking, other []models.Transaction) {
	for _, tx := range transactions {
		if tx.IsBookingPayment() {
			booking = append(booking, tx)
		} else {
			other = append(other, tx)
		}
	}
	return booking, other
}

// SortWalletByNewest orders a copy descending by creation time.
func SortWalletByNewest(transactions []models.WalletTransaction) []models.WalletTransaction {
	sorted := append([]models.WalletTransaction(nil), transactions...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt.Time)
	})
	return sorted
}

// PendingWallet is the filtered sub-view of wallet transactions awaiting an
// admin decision.
func PendingWallet(transactions []models.WalletTransaction) []models.WalletTransaction {
	var pending []models.WalletTransaction
	for _, tx := range transactions {
		if tx.IsPending() {
			pending = append(pending, tx)
		}
	}
	return pending
}

// TransactionTotals sums the ledger for the dashboard cards.
func TransactionTotals(transactions []models.Transaction) (gross, serviceCharges float64) {
	for _, tx := range transactions {
		gross += tx.TotalPayment.Float64()
		serviceCharges += tx.ServiceCharge.Float64()
	}
	return gross, serviceCharges
}
