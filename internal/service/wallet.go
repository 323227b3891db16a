package service

import (
	"context"

	"tikang-admin/internal/events"
	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

type WalletAPI interface {
	ListWalletTransactions(ctx context.Context) ([]models.WalletTransaction, error)
	AcceptWalletTransaction(ctx context.Context, txID int64, amount float64, userID int64, txType string) error
	CancelWalletTransaction(ctx context.Context, txID int64) error
}

// WalletService confirms or cancels pending Tikang cash requests.
type WalletService struct {
	api  WalletAPI
	core *Core
}

func NewWalletService(api WalletAPI, core *Core) *WalletService {
	return &WalletService{api: api, core: core}
}

func (s *WalletService) List(ctx context.Context) ([]models.WalletTransaction, error) {
	transactions, err := s.api.ListWalletTransactions(ctx)
	if err != nil {
		return nil, err
	}
	return view.SortWalletByNewest(transactions), nil
}

// Pending lists only requests still waiting on an admin decision.
func (s *WalletService) Pending(ctx context.Context) ([]models.WalletTransaction, error) {
	transactions, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return view.PendingWallet(transactions), nil
}

// Accept credits or debits the user's balance for the pending request. The
// amount, user and direction are taken from the request row itself so the
// gateway applies exactly what was asked for.
func (s *WalletService) Accept(ctx context.Context, tx models.WalletTransaction) ([]models.WalletTransaction, error) {
	m := mutation{
		action:  "accept_wallet",
		target:  "wallet_transaction",
		id:      tx.TransactionID,
		prompt:  "Confirm this wallet transaction?",
		success: "Transaction confirmed.",
		event:   events.EventWalletAccepted,
		payload: events.MutationPayload{Amount: float64(tx.Amount), Detail: tx.Type},
	}
	err := s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.AcceptWalletTransaction(ctx, tx.TransactionID, float64(tx.Amount), tx.UserID, tx.Type)
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}

// Cancel rejects the pending request without touching the balance.
func (s *WalletService) Cancel(ctx context.Context, txID int64) ([]models.WalletTransaction, error) {
	m := mutation{
		action:  "cancel_wallet",
		target:  "wallet_transaction",
		id:      txID,
		prompt:  "Cancel this wallet transaction?",
		success: "Transaction cancelled.",
		event:   events.EventWalletCancelled,
	}
	err := s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.CancelWalletTransaction(ctx, txID)
	})
	if err != nil {
		return nil, err
	}
	return s.List(ctx)
}
