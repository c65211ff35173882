package sessionrepo_test

import (
	"testing"
	"time"

	postgres_adapter "swiftdrop/internal/adapters/out/postgres"
	"swiftdrop/internal/adapters/out/postgres/sessionrepo"
	"swiftdrop/internal/adapters/out/postgres/userrepo"
	"swiftdrop/internal/core/domain/model/kernel"
	"swiftdrop/internal/core/domain/model/session"
	"swiftdrop/internal/core/domain/model/user"
	"swiftdrop/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.ID, aggregate any) {
	m.Called(id, aggregate)
}

type fixture struct {
	db    *gorm.DB
	repo  *sessionrepo.GormSessionRepository
	owner *user.User
	now   time.Time
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	db, err := postgres_adapter.Open(postgres_adapter.Options{
		Driver:     postgres_adapter.DriverSQLite,
		SQLitePath: "file:" + t.Name() + "?mode=memory&cache=shared",
	})
	require.NoError(t, err)
	require.NoError(t, postgres_adapter.Migrate(db))
	t.Cleanup(func() { _ = postgres_adapter.Close(db) })

	tracker := new(MockAggregateTracker)
	tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	owner, err := user.NewUser(kernel.NewID(), "Test User", "owner@example.com", "hash", "", now)
	require.NoError(t, err)
	require.NoError(t, userrepo.NewGormUserRepository(db, tracker).Add(t.Context(), owner))

	return fixture{
		db:    db,
		repo:  sessionrepo.NewGormSessionRepository(db, tracker),
		owner: owner,
		now:   now,
	}
}

func (f fixture) session(t *testing.T, ttl time.Duration) *session.Session {
	t.Helper()

	s, err := session.NewSession(uuid.New(), f.owner.ID(), f.now.Add(ttl), f.now)
	require.NoError(t, err)
	require.NoError(t, f.repo.Add(t.Context(), s))
	return s
}

func TestGormSessionRepository_AddAndGet(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, 7*24*time.Hour)

	got, err := f.repo.Get(t.Context(), s.ID())
	require.NoError(t, err)
	assert.Equal(t, s.ID(), got.ID())
	assert.Equal(t, f.owner.ID(), got.UserID())
	assert.True(t, got.ExpiresAt().Equal(s.ExpiresAt()))
	assert.Nil(t, got.RevokedAt())
	assert.True(t, got.IsActive(f.now))
}

func TestGormSessionRepository_Get_Unknown(t *testing.T) {
	f := newFixture(t)

	_, err := f.repo.Get(t.Context(), uuid.New())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = f.repo.Get(t.Context(), uuid.Nil)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestGormSessionRepository_Update_PersistsRevocation(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, time.Hour)

	s.Revoke(f.now.Add(time.Minute))
	require.NoError(t, f.repo.Update(t.Context(), s))

	got, err := f.repo.Get(t.Context(), s.ID())
	require.NoError(t, err)
	require.NotNil(t, got.RevokedAt())
	assert.False(t, got.IsActive(f.now.Add(2*time.Minute)))
}

func TestGormSessionRepository_Update_UnknownSession(t *testing.T) {
	f := newFixture(t)
	s, err := session.NewSession(uuid.New(), f.owner.ID(), f.now.Add(time.Hour), f.now)
	require.NoError(t, err)

	require.ErrorIs(t, f.repo.Update(t.Context(), s), errs.ErrObjectNotFound)
}

func TestGormSessionRepository_Update_StaleCopyOfRevokedSession(t *testing.T) {
	f := newFixture(t)
	s := f.session(t, time.Hour)

	first, err := f.repo.Get(t.Context(), s.ID())
	require.NoError(t, err)
	second, err := f.repo.Get(t.Context(), s.ID())
	require.NoError(t, err)

	first.Revoke(f.now.Add(time.Minute))
	require.NoError(t, f.repo.Update(t.Context(), first))

	second.Revoke(f.now.Add(2 * time.Minute))
	err = f.repo.Update(t.Context(), second)

	require.ErrorIs(t, err, session.ErrSessionIsNotActive)
	require.ErrorIs(t, err, errs.ErrUnauthorized)

	got, err := f.repo.Get(t.Context(), s.ID())
	require.NoError(t, err)
	require.NotNil(t, got.RevokedAt())
	assert.True(t, got.RevokedAt().Equal(*first.RevokedAt()))
}

func TestGormSessionRepository_DeleteInactive(t *testing.T) {
	f := newFixture(t)
	active := f.session(t, 48*time.Hour)
	expiring := f.session(t, time.Hour)
	revoked := f.session(t, 48*time.Hour)

	revoked.Revoke(f.now.Add(time.Minute))
	require.NoError(t, f.repo.Update(t.Context(), revoked))

	deleted, err := f.repo.DeleteInactive(t.Context(), f.now.Add(2*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	_, err = f.repo.Get(t.Context(), active.ID())
	require.NoError(t, err)

	_, err = f.repo.Get(t.Context(), expiring.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)

	_, err = f.repo.Get(t.Context(), revoked.ID())
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}
