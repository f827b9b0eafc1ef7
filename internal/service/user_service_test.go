package service_test

import (
	"context"
	"testing"

	errorvalues "github.com/limbo/lifeboard/internal/error_values"
	"github.com/limbo/lifeboard/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestUserService(t *testing.T) {
	mock := &usersRepoMock{state: stateSuccess}
	us := service.NewUserService(mock)
	ctx := context.Background()
	username := "test_user"
	password := "test_password"

	t.Run("registered user", func(t *testing.T) {
		user, err := us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		require.NoError(t, err)
		assert.Equal(t, username, user.Name)
		assert.Equal(t, userID, user.ID)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)))
	})
	t.Run("invalid registration", func(t *testing.T) {
		for _, req := range []service.RegisterRequest{
			{Name: "_bad", Password: password},
			{Name: "1bad", Password: password},
			{Name: "ok_name", Password: "short"},
		} {
			_, err := us.Register(ctx, &req)
			assert.ErrorIs(t, err, errorvalues.ErrValidation)
		}
	})
	t.Run("login", func(t *testing.T) {
		res, err := us.Login(ctx, username, password)
		require.NoError(t, err)
		assert.Equal(t, mock.user, *res)
	})
	t.Run("login with wrong password", func(t *testing.T) {
		_, err := us.Login(ctx, username, "wrong_password")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("failed to delete w/ wrong password", func(t *testing.T) {
		err := us.DeleteAccount(ctx, userID, "dasdasd")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		assert.NoError(t, us.DeleteAccount(ctx, userID, password))
	})
	t.Run("error registering already existed user", func(t *testing.T) {
		mock.state = stateHabitExistsError
		_, err := us.Register(ctx, &service.RegisterRequest{
			Name:     username,
			Password: password,
		})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})
	t.Run("unknown user", func(t *testing.T) {
		mock.state = stateOwnerNotFoundError
		_, err := us.Login(ctx, "aaaaaaa", "bbbbbbbb")
		assert.ErrorIs(t, err, errorvalues.ErrWrongCredentials)
		_, err = us.GetByID(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrUserNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.state = stateDBError
		_, err := us.GetByID(ctx, userID)
		assert.ErrorIs(t, err, errDB)
	})
}
