package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tikang-admin/internal/api"
	"tikang-admin/internal/models"
)

type fakeAccountAPI struct {
	passwords []string
	logo      *api.FilePart
	banners   map[int]api.FilePart
	qrUserID  int64
}

func (f *fakeAccountAPI) CurrentAdmin(ctx context.Context) (*models.Admin, error) {
	return &models.Admin{UserID: 1, Email: "admin@tikang.ph"}, nil
}

func (f *fakeAccountAPI) ChangePassword(ctx context.Context, newPassword string) error {
	f.passwords = append(f.passwords, newPassword)
	return nil
}

func (f *fakeAccountAPI) ChangeLogo(ctx context.Context, logo api.FilePart) error {
	f.logo = &logo
	return nil
}

func (f *fakeAccountAPI) ChangeBanners(ctx context.Context, banners map[int]api.FilePart) error {
	f.banners = banners
	return nil
}

func (f *fakeAccountAPI) ChangeGCashQR(ctx context.Context, qr api.FilePart, userID int64) error {
	f.qrUserID = userID
	return nil
}

func pngPart(name string) api.FilePart {
	return api.FilePart{Field: name, FileName: name + ".png", ContentType: "image/png", Data: []byte("png")}
}

func TestChangePasswordValidation(t *testing.T) {
	backend := &fakeAccountAPI{}
	svc := NewAccountService(backend, testCore(t, AutoConfirm))
	ctx := context.Background()

	err := svc.ChangePassword(ctx, "", "")
	assert.True(t, IsValidationError(err))

	err = svc.ChangePassword(ctx, "secret", "different")
	assert.True(t, IsValidationError(err))
	assert.Empty(t, backend.passwords)

	require.NoError(t, svc.ChangePassword(ctx, "secret", "secret"))
	assert.Equal(t, []string{"secret"}, backend.passwords)
}

func TestChangeLogoRequiresPNG(t *testing.T) {
	backend := &fakeAccountAPI{}
	svc := NewAccountService(backend, testCore(t, AutoConfirm))
	ctx := context.Background()

	jpeg := api.FilePart{Field: "logo", FileName: "logo.jpg", ContentType: "image/jpeg", Data: []byte("x")}
	err := svc.ChangeLogo(ctx, jpeg)
	assert.True(t, IsValidationError(err))
	assert.Nil(t, backend.logo)

	require.NoError(t, svc.ChangeLogo(ctx, pngPart("logo")))
	require.NotNil(t, backend.logo)
	assert.Equal(t, "logo.png", backend.logo.FileName)
}

func TestChangeBannersValidation(t *testing.T) {
	backend := &fakeAccountAPI{}
	svc := NewAccountService(backend, testCore(t, AutoConfirm))
	ctx := context.Background()

	err := svc.ChangeBanners(ctx, nil)
	assert.True(t, IsValidationError(err))

	err = svc.ChangeBanners(ctx, map[int]api.FilePart{6: pngPart("banner6")})
	assert.True(t, IsValidationError(err))

	err = svc.ChangeBanners(ctx, map[int]api.FilePart{
		1: pngPart("banner1"),
		2: {Field: "banner2", FileName: "banner2.gif", ContentType: "image/gif", Data: []byte("x")},
	})
	assert.True(t, IsValidationError(err))
	assert.Nil(t, backend.banners)

	// A partial selection is fine; untouched slots stay as they are.
	require.NoError(t, svc.ChangeBanners(ctx, map[int]api.FilePart{3: pngPart("banner3")}))
	require.Len(t, backend.banners, 1)
}

func TestChangeGCashQR(t *testing.T) {
	backend := &fakeAccountAPI{}
	svc := NewAccountService(backend, testCore(t, AutoConfirm))
	ctx := context.Background()

	err := svc.ChangeGCashQR(ctx, api.FilePart{}, 9)
	assert.True(t, IsValidationError(err))

	// Any image type is accepted for the QR upload.
	qr := api.FilePart{Field: "gcash_qr", FileName: "qr.jpg", ContentType: "image/jpeg", Data: []byte("x")}
	require.NoError(t, svc.ChangeGCashQR(ctx, qr, 9))
	assert.Equal(t, int64(9), backend.qrUserID)
}
