package service

import (
	"context"
	"sync"

	"tikang-admin/internal/events"
	"tikang-admin/internal/models"
	"tikang-admin/internal/view"
)

type UserAPI interface {
	ListAllUsers(ctx context.Context) ([]models.User, error)
	ListActiveUsers(ctx context.Context) ([]models.User, error)
	ListReportedUsers(ctx context.Context) ([]models.UserReport, error)
	VerifyEmail(ctx context.Context, userID int64) error
	VerifyPhone(ctx context.Context, userID int64) error
	BlockUser(ctx context.Context, userID int64) error
	UnblockUser(ctx context.Context, userID int64) error
	DeleteUser(ctx context.Context, userID int64) error
}

type UserService struct {
	api  UserAPI
	core *Core
}

func NewUserService(api UserAPI, core *Core) *UserService {
	return &UserService{api: api, core: core}
}

// UserPage holds the three independently fetched collections of the users
// screen.
type UserPage struct {
	All     []models.User
	Active  []models.User
	Reports []models.UserReport
}

// LoadPage issues the three list fetches concurrently and waits for all of
// them. A failed fetch logs and leaves its collection empty; the page still
// renders with what arrived.
func (s *UserService) LoadPage(ctx context.Context) UserPage {
	var page UserPage
	var wg sync.WaitGroup
	wg.Add(3)

	go func() {
		defer wg.Done()
		users, err := s.api.ListAllUsers(ctx)
		if err != nil {
			s.core.Logger.Error().Err(err).Msg("failed to load all users")
			return
		}
		page.All = users
	}()
	go func() {
		defer wg.Done()
		users, err := s.api.ListActiveUsers(ctx)
		if err != nil {
			s.core.Logger.Error().Err(err).Msg("failed to load active users")
			return
		}
		page.Active = view.SortUsersByLastLogin(users)
	}()
	go func() {
		defer wg.Done()
		reports, err := s.api.ListReportedUsers(ctx)
		if err != nil {
			s.core.Logger.Error().Err(err).Msg("failed to load reported users")
			return
		}
		page.Reports = view.SortReportsByNewest(reports)
	}()

	wg.Wait()
	return page
}

func (s *UserService) ListAll(ctx context.Context) ([]models.User, error) {
	return s.api.ListAllUsers(ctx)
}

func (s *UserService) mutate(ctx context.Context, m mutation, call func(context.Context) error) ([]models.User, error) {
	if err := s.core.run(ctx, m, call); err != nil {
		return nil, err
	}
	return s.api.ListAllUsers(ctx)
}

func (s *UserService) VerifyEmail(ctx context.Context, userID int64) ([]models.User, error) {
	return s.mutate(ctx, mutation{
		action:  "verify_email",
		target:  "user",
		id:      userID,
		prompt:  "Clicking this will label the email as verified, continue?",
		success: "Email marked as verified.",
		event:   events.EventUserVerified,
	}, func(ctx context.Context) error {
		return s.api.VerifyEmail(ctx, userID)
	})
}

func (s *UserService) VerifyPhone(ctx context.Context, userID int64) ([]models.User, error) {
	return s.mutate(ctx, mutation{
		action:  "verify_phone",
		target:  "user",
		id:      userID,
		prompt:  "Clicking this will label the phone number as verified, continue?",
		success: "Phone number marked as verified.",
		event:   events.EventUserVerified,
	}, func(ctx context.Context) error {
		return s.api.VerifyPhone(ctx, userID)
	})
}

func (s *UserService) Block(ctx context.Context, userID int64) ([]models.User, error) {
	return s.mutate(ctx, mutation{
		action:  "block_user",
		target:  "user",
		id:      userID,
		prompt:  "This will block the user from logging in. Continue?",
		success: "User blocked successfully.",
		event:   events.EventUserBlocked,
	}, func(ctx context.Context) error {
		return s.api.BlockUser(ctx, userID)
	})
}

func (s *UserService) Unblock(ctx context.Context, userID int64) ([]models.User, error) {
	return s.mutate(ctx, mutation{
		action:  "unblock_user",
		target:  "user",
		id:      userID,
		prompt:  "This will unblock the user. Continue?",
		success: "User unblocked successfully.",
		event:   events.EventUserUnblocked,
	}, func(ctx context.Context) error {
		return s.api.UnblockUser(ctx, userID)
	})
}

func (s *UserService) Delete(ctx context.Context, userID int64) ([]models.User, error) {
	return s.mutate(ctx, mutation{
		action:  "delete_user",
		target:  "user",
		id:      userID,
		prompt:  "This will permanently delete the user. Continue?",
		success: "User deleted successfully.",
		event:   events.EventUserDeleted,
	}, func(ctx context.Context) error {
		return s.api.DeleteUser(ctx, userID)
	})
}
