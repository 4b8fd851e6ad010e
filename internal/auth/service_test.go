package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/aurora-studio/site-api/internal/apperr"
	"github.com/aurora-studio/site-api/internal/models"
)

type fakeUserStore struct {
	byEmail  map[string]*models.User
	nextID   int64
	failWith error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{byEmail: map[string]*models.User{}}
}

func (f *fakeUserStore) CreateUser(_ context.Context, u *models.User) error {
	if f.failWith != nil {
		return f.failWith
	}
	if _, ok := f.byEmail[u.Email]; ok {
		return ErrDuplicateEmail
	}
	f.nextID++
	u.ID = f.nextID
	u.CreatedAt = time.Now()
	cp := *u
	f.byEmail[u.Email] = &cp
	return nil
}

func (f *fakeUserStore) UserByEmail(_ context.Context, email string) (*models.User, error) {
	if f.failWith != nil {
		return nil, f.failWith
	}
	u, ok := f.byEmail[email]
	if !ok {
		return nil, ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func TestRegister(t *testing.T) {
	svc := NewService(newFakeUserStore())

	u, err := svc.Register(context.Background(), "Jane Doe", "jane@site.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, int64(1), u.ID)
	assert.Equal(t, "Jane Doe", u.FullName)
	assert.Equal(t, "jane@site.com", u.Email)
	assert.Equal(t, models.RoleUser, u.Role)

	// The password must never be stored verbatim.
	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))
}

func TestRegisterValidation(t *testing.T) {
	svc := NewService(newFakeUserStore())
	ctx := context.Background()

	cases := []struct {
		name                      string
		fullName, email, password string
	}{
		{"missing name", "", "a@b.com", "pw"},
		{"missing email", "Jane", "", "pw"},
		{"missing password", "Jane", "a@b.com", ""},
		{"bad email shape", "Jane", "bad-email", "pw"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := svc.Register(ctx, c.fullName, c.email, c.password)
			require.Error(t, err)
			assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newFakeUserStore()
	svc := NewService(store)
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane", "jane@site.com", "pw-one")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "Other Jane", "jane@site.com", "pw-two")
	require.Error(t, err)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))

	// Still exactly one row for that email.
	assert.Len(t, store.byEmail, 1)
	assert.Equal(t, "Jane", store.byEmail["jane@site.com"].FullName)
}

func TestLogin(t *testing.T) {
	svc := NewService(newFakeUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane", "jane@site.com", "hunter22")
	require.NoError(t, err)

	u, err := svc.Login(ctx, "jane@site.com", "hunter22")
	require.NoError(t, err)
	assert.Equal(t, "jane@site.com", u.Email)
	assert.Equal(t, models.RoleUser, u.Role)
}

// Unknown email and wrong password must be indistinguishable to the caller.
func TestLoginFailuresIdentical(t *testing.T) {
	svc := NewService(newFakeUserStore())
	ctx := context.Background()

	_, err := svc.Register(ctx, "Jane", "jane@site.com", "hunter22")
	require.NoError(t, err)

	_, wrongPw := svc.Login(ctx, "jane@site.com", "wrong")
	_, unknown := svc.Login(ctx, "nobody@site.com", "hunter22")

	require.Error(t, wrongPw)
	require.Error(t, unknown)
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(wrongPw))
	assert.Equal(t, apperr.KindUnauthorized, apperr.KindOf(unknown))
	assert.Equal(t, wrongPw.Error(), unknown.Error())
}

func TestLoginValidation(t *testing.T) {
	svc := NewService(newFakeUserStore())
	ctx := context.Background()

	_, err := svc.Login(ctx, "", "pw")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = svc.Login(ctx, "a@b.com", "")
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestStoreFailureIsInternal(t *testing.T) {
	store := newFakeUserStore()
	store.failWith = errors.New("connection refused")
	svc := NewService(store)

	_, err := svc.Register(context.Background(), "Jane", "jane@site.com", "pw")
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))

	_, err = svc.Login(context.Background(), "jane@site.com", "pw")
	assert.Equal(t, apperr.KindInternal, apperr.KindOf(err))
}
