package api

import (
	"context"
	"fmt"
	"net/http"

	"tikang-admin/internal/models"
)

const (
	cacheKeyBookings     = "tikang:bookings"
	cacheKeyProperties   = "tikang:properties"
	cacheKeyTransactions = "tikang:transactions"
	cacheKeyWallet       = "tikang:wallet_transactions"
	cacheKeyUsers        = "tikang:users"
)

// Login exchanges credentials for a bearer token. Unauthenticated.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	body := map[string]string{"email": email, "password": password}
	var resp struct {
		Token string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, c.baseURL+"/login", body, &resp); err != nil {
		return "", err
	}
	if resp.Token == "" {
		return "", fmt.Errorf("login response carried no token")
	}
	return resp.Token, nil
}

// CurrentAdmin fetches the profile behind the stored token.
func (c *Client) CurrentAdmin(ctx context.Context) (*models.Admin, error) {
	var resp struct {
		Admin models.Admin `json:"admin"`
	}
	if err := c.doGet(ctx, c.baseURL+"/admin/me", &resp); err != nil {
		return nil, err
	}
	return &resp.Admin, nil
}

// DashboardStats fetches the aggregate last-7-days slices.
func (c *Client) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var stats models.DashboardStats
	if err := c.doGet(ctx, c.baseURL+"/dashboard-stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

func (c *Client) ListBookings(ctx context.Context) ([]models.Booking, error) {
	var wrap struct {
		Bookings []models.Booking `json:"bookings"`
	}
	if c.readCache(ctx, cacheKeyBookings, &wrap) {
		return wrap.Bookings, nil
	}
	if err := c.doGet(ctx, c.adminBaseURL+"/bookings", &wrap); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKeyBookings, wrap)
	return wrap.Bookings, nil
}

func (c *Client) AcceptPayment(ctx context.Context, bookingID int64) error {
	body := map[string]int64{"booking_id": bookingID}
	if err := c.doJSON(ctx, http.MethodPost, c.adminBaseURL+"/accept-payment", body, nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, cacheKeyBookings, cacheKeyTransactions)
	return nil
}

func (c *Client) DeclinePayment(ctx context.Context, bookingID int64, reason string) error {
	body := map[string]any{"booking_id": bookingID, "reason": reason}
	if err := c.doJSON(ctx, http.MethodPost, c.adminBaseURL+"/decline-payment", body, nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, cacheKeyBookings, cacheKeyTransactions)
	return nil
}

func (c *Client) ListProperties(ctx context.Context) ([]models.Property, error) {
	var wrap struct {
		Properties []models.Property `json:"properties"`
	}
	if c.readCache(ctx, cacheKeyProperties, &wrap) {
		return wrap.Properties, nil
	}
	if err := c.doGet(ctx, c.adminBaseURL+"/properties", &wrap); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKeyProperties, wrap)
	return wrap.Properties, nil
}

func (c *Client) VerifyProperty(ctx context.Context, propertyID int64) error {
	endpoint := fmt.Sprintf("%s/verify-property/%d", c.adminBaseURL, propertyID)
	if err := c.doJSON(ctx, http.MethodPost, endpoint, nil, nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, cacheKeyProperties)
	return nil
}

func (c *Client) DeleteProperty(ctx context.Context, propertyID int64) error {
	endpoint := fmt.Sprintf("%s/delete-property/%d", c.adminBaseURL, propertyID)
	if err := c.doJSON(ctx, http.MethodDelete, endpoint, nil, nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, cacheKeyProperties)
	return nil
}

func (c *Client) ListTransactions(ctx context.Context) ([]models.Transaction, error) {
	var wrap struct {
		Transactions []models.Transaction `json:"transactions"`
	}
	if c.readCache(ctx, cacheKeyTransactions, &wrap) {
		return wrap.Transactions, nil
	}
	if err := c.doGet(ctx, c.adminBaseURL+"/transactions", &wrap); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKeyTransactions, wrap)
	return wrap.Transactions, nil
}

func (c *Client) ListWalletTransactions(ctx context.Context) ([]models.WalletTransaction, error) {
	var wrap struct {
		Transactions []models.WalletTransaction `json:"transactions"`
	}
	if c.readCache(ctx, cacheKeyWallet, &wrap) {
		return wrap.Transactions, nil
	}
	if err := c.doGet(ctx, c.adminBaseURL+"/wallet-transactions", &wrap); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKeyWallet, wrap)
	return wrap.Transactions, nil
}

func (c *Client) AcceptWalletTransaction(ctx context.Context, txID int64, amount float64, userID int64, txType string) error {
	body := map[string]any{
		"transaction_id": txID,
		"amount":         amount,
		"user_id":        userID,
		"type":           txType,
	}
	if err := c.doJSON(ctx, http.MethodPost, c.adminBaseURL+"/accept-wallet-transaction", body, nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, cacheKeyWallet, cacheKeyTransactions)
	return nil
}

func (c *Client) CancelWalletTransaction(ctx context.Context, txID int64) error {
	body := map[string]int64{"transaction_id": txID}
	if err := c.doJSON(ctx, http.MethodPost, c.adminBaseURL+"/cancel-wallet-transaction", body, nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, cacheKeyWallet, cacheKeyTransactions)
	return nil
}

func (c *Client) ListAllUsers(ctx context.Context) ([]models.User, error) {
	var wrap struct {
		Users []models.User `json:"users"`
	}
	if c.readCache(ctx, cacheKeyUsers, &wrap) {
		return wrap.Users, nil
	}
	if err := c.doGet(ctx, c.adminBaseURL+"/all-users", &wrap); err != nil {
		return nil, err
	}
	c.writeCache(ctx, cacheKeyUsers, wrap)
	return wrap.Users, nil
}

func (c *Client) ListActiveUsers(ctx context.Context) ([]models.User, error) {
	var wrap struct {
		Users []models.User `json:"users"`
	}
	if err := c.doGet(ctx, c.adminBaseURL+"/active-users", &wrap); err != nil {
		return nil, err
	}
	return wrap.Users, nil
}

func (c *Client) ListReportedUsers(ctx context.Context) ([]models.UserReport, error) {
	var wrap struct {
		Reports []models.UserReport `json:"reports"`
	}
	if err := c.doGet(ctx, c.adminBaseURL+"/reported-users", &wrap); err != nil {
		return nil, err
	}
	return wrap.Reports, nil
}

func (c *Client) userAction(ctx context.Context, method, path string, userID int64) error {
	body := map[string]int64{"user_id": userID}
	if err := c.doJSON(ctx, method, c.adminBaseURL+path, body, nil); err != nil {
		return err
	}
	c.invalidateCache(ctx, cacheKeyUsers)
	return nil
}

func (c *Client) VerifyEmail(ctx context.Context, userID int64) error {
	return c.userAction(ctx, http.MethodPost, "/verify-email", userID)
}

func (c *Client) VerifyPhone(ctx context.Context, userID int64) error {
	return c.userAction(ctx, http.MethodPost, "/verify-phone", userID)
}

func (c *Client) BlockUser(ctx context.Context, userID int64) error {
	return c.userAction(ctx, http.MethodPost, "/block-user", userID)
}

func (c *Client) UnblockUser(ctx context.Context, userID int64) error {
	return c.userAction(ctx, http.MethodPost, "/unblock-user", userID)
}

func (c *Client) DeleteUser(ctx context.Context, userID int64) error {
	return c.userAction(ctx, http.MethodDelete, "/delete-user", userID)
}

func (c *Client) ChangePassword(ctx context.Context, newPassword string) error {
	body := map[string]string{"new_password": newPassword}
	return c.doJSON(ctx, http.MethodPost, c.adminBaseURL+"/admin-change-password", body, nil)
}

func (c *Client) ChangeLogo(ctx context.Context, logo FilePart) error {
	logo.Field = "logo"
	return c.doMultipart(ctx, c.adminBaseURL+"/admin/change-logo", nil, []FilePart{logo}, nil)
}

// ChangeBanners uploads the populated banner slots. Slot numbering is
// 1-based and preserved even when earlier slots are empty.
func (c *Client) ChangeBanners(ctx context.Context, banners map[int]FilePart) error {
	files := make([]FilePart, 0, len(banners))
	for slot, banner := range banners {
		banner.Field = fmt.Sprintf("banner%d", slot)
		files = append(files, banner)
	}
	return c.doMultipart(ctx, c.adminBaseURL+"/admin/change-banners", nil, files, nil)
}

func (c *Client) ChangeGCashQR(ctx context.Context, qr FilePart, userID int64) error {
	qr.Field = "gcash_qr"
	fields := map[string]string{"user_id": fmt.Sprintf("%d", userID)}
	return c.doMultipart(ctx, c.adminBaseURL+"/admin/change-gcash-qr", fields, []FilePart{qr}, nil)
}
