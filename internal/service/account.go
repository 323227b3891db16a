package service

import (
	"context"
	"strings"

	"tikang-admin/internal/api"
	"tikang-admin/internal/events"
	"tikang-admin/internal/models"
)

type AccountAPI interface {
	CurrentAdmin(ctx context.Context) (*models.Admin, error)
	ChangePassword(ctx context.Context, newPassword string) error
	ChangeLogo(ctx context.Context, logo api.FilePart) error
	ChangeBanners(ctx context.Context, banners map[int]api.FilePart) error
	ChangeGCashQR(ctx context.Context, qr api.FilePart, userID int64) error
}

// AccountService manages the operator's own profile and the platform
// branding assets.
type AccountService struct {
	api  AccountAPI
	core *Core
}

func NewAccountService(api AccountAPI, core *Core) *AccountService {
	return &AccountService{api: api, core: core}
}

func (s *AccountService) Profile(ctx context.Context) (*models.Admin, error) {
	return s.api.CurrentAdmin(ctx)
}

// ChangePassword sets a new password. Both fields must be filled and match
// before anything leaves the process.
func (s *AccountService) ChangePassword(ctx context.Context, newPassword, confirmPassword string) error {
	m := mutation{
		action:  "change_password",
		target:  "account",
		prompt:  "Change your password?",
		success: "Password changed successfully.",
		event:   events.EventAccountUpdated,
		payload: events.MutationPayload{Detail: "password"},
	}
	if strings.TrimSpace(newPassword) == "" {
		return s.core.reject(ctx, m, "Please fill in all fields.")
	}
	if newPassword != confirmPassword {
		return s.core.reject(ctx, m, "Passwords do not match.")
	}
	return s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.ChangePassword(ctx, newPassword)
	})
}

// ChangeLogo replaces the platform logo. Only PNG uploads are accepted.
func (s *AccountService) ChangeLogo(ctx context.Context, logo api.FilePart) error {
	m := mutation{
		action:  "change_logo",
		target:  "account",
		prompt:  "Replace the platform logo?",
		success: "Logo updated successfully.",
		event:   events.EventAccountUpdated,
		payload: events.MutationPayload{Detail: "logo"},
	}
	if logo.ContentType != "image/png" {
		return s.core.reject(ctx, m, "Only PNG files are allowed.")
	}
	return s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.ChangeLogo(ctx, logo)
	})
}

// ChangeBanners replaces the landing page banners. Slots are numbered 1
// through 5; at least one must be provided and every provided file must be
// a PNG. Untouched slots keep their current image.
func (s *AccountService) ChangeBanners(ctx context.Context, banners map[int]api.FilePart) error {
	m := mutation{
		action:  "change_banners",
		target:  "account",
		prompt:  "Replace the selected banners?",
		success: "Banners updated successfully.",
		event:   events.EventAccountUpdated,
		payload: events.MutationPayload{Detail: "banners"},
	}
	if len(banners) == 0 {
		return s.core.reject(ctx, m, "Please select at least one banner image.")
	}
	for slot, banner := range banners {
		if slot < 1 || slot > models.BannerSlots {
			return s.core.reject(ctx, m, "Banner slots run from 1 to 5.")
		}
		if banner.ContentType != "image/png" {
			return s.core.reject(ctx, m, "Only PNG files are allowed.")
		}
	}
	return s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.ChangeBanners(ctx, banners)
	})
}

// ChangeGCashQR uploads a new payment QR code for the admin account.
func (s *AccountService) ChangeGCashQR(ctx context.Context, qr api.FilePart, adminID int64) error {
	m := mutation{
		action:  "change_gcash_qr",
		target:  "account",
		id:      adminID,
		prompt:  "Replace the GCash QR code?",
		success: "GCash QR updated successfully.",
		event:   events.EventAccountUpdated,
		payload: events.MutationPayload{Detail: "gcash_qr"},
	}
	if len(qr.Data) == 0 {
		return s.core.reject(ctx, m, "Please select a QR image.")
	}
	return s.core.run(ctx, m, func(ctx context.Context) error {
		return s.api.ChangeGCashQR(ctx, qr, adminID)
	})
}
