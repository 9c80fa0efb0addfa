package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gramin-samriddhi/backend/internal/models"
	"github.com/gramin-samriddhi/backend/internal/testhelpers"
	"github.com/gramin-samriddhi/backend/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const testSecret = "test-secret"

func setupAuthService(t *testing.T) *AuthService {
	t.Helper()
	db := testhelpers.SetupSQLiteDatabase(t)
	return NewAuthService(db, testSecret, 24*time.Hour, NewMemoryRevoker(), zap.NewNop())
}

func TestRegisterAndLogin(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "  Asha@Example.com ", "password123")
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", user.Email)
	assert.NotEqual(t, uuid.Nil, user.ID)
	assert.NotEqual(t, "password123", user.PasswordHash)

	_, err = svc.Register(ctx, "asha@example.com", "another")
	assert.ErrorIs(t, err, ErrUserExists)

	loggedIn, err := svc.Login(ctx, "ASHA@example.com", "password123")
	require.NoError(t, err)
	assert.Equal(t, user.ID, loggedIn.ID)

	_, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "nobody@example.com", "password123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestRegisterLosingRaceReturnsUserExists(t *testing.T) {
	db := testhelpers.SetupSQLiteDatabase(t)
	svc := NewAuthService(db, testSecret, 24*time.Hour, NewMemoryRevoker(), zap.NewNop())

	// another registration lands between the existence check and the insert
	inserted := false
	require.NoError(t, db.Callback().Create().Before("gorm:create").Register("test:concurrent_register", func(tx *gorm.DB) {
		if inserted || tx.Statement.Table != "users" {
			return
		}
		inserted = true
		err := tx.Session(&gorm.Session{NewDB: true}).Exec(
			"INSERT INTO users (id, email, password_hash, created_at, updated_at) VALUES (?, ?, ?, ?, ?)",
			uuid.NewString(), "race@example.com", "hash", time.Now(), time.Now(),
		).Error
		if err != nil {
			_ = tx.AddError(err)
		}
	}))

	_, err := svc.Register(context.Background(), "race@example.com", "password123")
	assert.True(t, inserted)
	assert.ErrorIs(t, err, ErrUserExists)

	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "race@example.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "farmer@example.com", "password123")
	require.NoError(t, err)

	token, claims, err := svc.GenerateToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt.Time, time.Minute)

	got, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.UserID)
	assert.Equal(t, "farmer@example.com", got.Email)
	assert.Equal(t, claims.ID, got.ID)

	fetched, err := svc.GetUserByID(ctx, got.UserID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, fetched.Email)
}

func TestValidateTokenRejectsBadTokens(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	_, err := svc.ValidateToken(ctx, "invalid.token")
	assert.ErrorIs(t, err, ErrInvalidToken)

	// signed with another secret
	other := NewAuthService(nil, "other-secret", time.Hour, nil, zap.NewNop())
	token, _, err := other.GenerateToken(&models.User{ID: uuid.New(), Email: "x@example.com"})
	require.NoError(t, err)
	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// expired
	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
		UserID: uuid.New(),
	})
	signed, err := expired.SignedString([]byte(testSecret))
	require.NoError(t, err)
	_, err = svc.ValidateToken(ctx, signed)
	assert.ErrorIs(t, err, ErrInvalidToken)

	// wrong algorithm
	none := jwt.NewWithClaims(jwt.SigningMethodNone, &types.TokenClaims{
		RegisteredClaims: jwt.RegisteredClaims{ID: uuid.NewString()},
		UserID:           uuid.New(),
	})
	unsigned, err := none.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = svc.ValidateToken(ctx, unsigned)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestSignOutRevokesToken(t *testing.T) {
	svc := setupAuthService(t)
	ctx := context.Background()

	user, err := svc.Register(ctx, "farmer@example.com", "password123")
	require.NoError(t, err)
	token, _, err := svc.GenerateToken(user)
	require.NoError(t, err)
	second, _, err := svc.GenerateToken(user)
	require.NoError(t, err)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)
	require.NoError(t, svc.SignOut(ctx, claims))

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrTokenRevoked)

	// other sessions of the same user stay valid
	_, err = svc.ValidateToken(ctx, second)
	assert.NoError(t, err)

	assert.ErrorIs(t, svc.SignOut(ctx, nil), ErrInvalidToken)
}
