package usecase

import (
	"context"
	"testing"
	"time"

	"offbeat-travels/internal/infrastructure/session"
	"offbeat-travels/internal/infrastructure/sharding"
	"offbeat-travels/pkg/apperrors"
	"offbeat-travels/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/crypto/bcrypt"
)

func newAuthService(users *fakeUserRepo) (*AuthService, *session.Store) {
	sessions := session.NewStore(time.Minute)
	return NewAuthService(users, sessions, logger.NewNop(), nil, bcrypt.MinCost), sessions
}

func TestRegisterThenLoginResolveSameShard(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	wantShard := sharding.Route("alice")
	assert.Equal(t, wantShard.String(), user.HomeShard)

	// The row must be visible on the computed shard and only there.
	_, err = users.GetByUsername(ctx, wantShard, "alice")
	assert.NoError(t, err)
	other := sharding.ShardID(1 - int(wantShard))
	_, err = users.GetByUsername(ctx, other, "alice")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	sess, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, wantShard, sess.Shard)
	assert.Equal(t, user.ID, sess.UserID)
}

func TestRegisterDuplicateUsernameConflict(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "alice", "different")
	assert.ErrorIs(t, err, apperrors.ErrConflict)
}

func TestRegisterValidation(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "pw")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	_, err = svc.Register(ctx, "alice", "")
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	// Validation failures never reach a shard.
	assert.Empty(t, users.users[sharding.Shard0])
	assert.Empty(t, users.users[sharding.Shard1])
}

func TestRegisterStoresHashedPassword(t *testing.T) {
	users := newFakeUserRepo()
	svc, _ := newAuthService(users)
	ctx := context.Background()

	user, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("s3cret")))
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)

	_, err = svc.Login(ctx, "alice", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginUnknownUser(t *testing.T) {
	svc, _ := newAuthService(newFakeUserRepo())

	_, err := svc.Login(context.Background(), "nobody", "pw")
	// Indistinguishable from a wrong password.
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLoginShardUnavailable(t *testing.T) {
	users := newFakeUserRepo()
	users.failWith = apperrors.ErrShardUnavailable
	svc, _ := newAuthService(users)

	_, err := svc.Login(context.Background(), "alice", "pw")
	// Shard down is a service failure, not bad credentials.
	assert.ErrorIs(t, err, apperrors.ErrShardUnavailable)
	assert.NotErrorIs(t, err, apperrors.ErrUnauthorized)
}

func TestLogout(t *testing.T) {
	svc, sessions := newAuthService(newFakeUserRepo())
	ctx := context.Background()

	_, err := svc.Register(ctx, "alice", "s3cret")
	require.NoError(t, err)
	sess, err := svc.Login(ctx, "alice", "s3cret")
	require.NoError(t, err)

	svc.Logout(sess.Token)
	assert.Nil(t, sessions.Get(sess.Token))
}
