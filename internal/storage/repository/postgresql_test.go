package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magabrotheeeer/pill-reminder/internal/models"
)

func TestStorage_CreateUser(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	verification := NewTestVerification(storage)
	userData := GetTestUserData()

	uid, err := storage.CreateUser(context.Background(), models.User{
		Username:     userData.Username,
		Fullname:     userData.Fullname,
		Phone:        userData.Phone,
		PasswordHash: userData.PasswordHash,
		IsAdmin:      false,
	})
	require.NoError(t, err)
	require.NotEmpty(t, uid)

	verification.VerifyUserExists(t, uid)

	// повторная регистрация того же username упирается в уникальный индекс
	_, err = storage.CreateUser(context.Background(), models.User{
		Username:     userData.Username,
		Fullname:     "Another Person",
		Phone:        "0999999",
		PasswordHash: "otherhash",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unique")
}

func TestStorage_GetUserByUsername(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	userData := GetTestUserData()
	factory.CreateUser(t, userData.UID, userData.Username, userData.Fullname, userData.Phone, userData.PasswordHash)

	tests := []struct {
		name      string
		username  string
		wantErr   bool
		wantNoRow bool
	}{
		{
			name:     "existing user",
			username: userData.Username,
		},
		{
			name:      "unknown user",
			username:  "nobody",
			wantErr:   true,
			wantNoRow: true,
		},
		{
			name:      "lookup is case sensitive",
			username:  "JDOE",
			wantErr:   true,
			wantNoRow: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			user, err := storage.GetUserByUsername(context.Background(), tt.username)
			if tt.wantErr {
				require.Error(t, err)
				if tt.wantNoRow {
					assert.True(t, errors.Is(err, sql.ErrNoRows))
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userData.UID, user.UID)
			assert.Equal(t, userData.Username, user.Username)
			assert.Equal(t, userData.Fullname, user.Fullname)
			assert.Equal(t, userData.Phone, user.Phone)
			assert.Equal(t, userData.PasswordHash, user.PasswordHash)
			assert.False(t, user.IsAdmin)
			assert.False(t, user.CreatedAt.IsZero())
		})
	}
}

func TestStorage_CreateDrug(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)
	verification := NewTestVerification(storage)

	userData := GetTestUserData()
	factory.CreateUser(t, userData.UID, userData.Username, userData.Fullname, userData.Phone, userData.PasswordHash)

	drugData := GetTestDrugData()

	stored, err := storage.CreateDrug(context.Background(), models.Drug{
		UserUID:         userData.UID,
		Name:            drugData.Name,
		Form:            drugData.Form,
		TimingCondition: drugData.TimingCondition,
		TimesPerDay:     drugData.TimesPerDay,
		UnitsPerDose:    drugData.UnitsPerDose,
		TotalUnits:      drugData.TotalUnits,
		ReminderTime:    models.DefaultReminderTime,
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	// id и created_at назначила база, остальные поля вернулись как вставлены
	assert.Greater(t, stored.ID, 0)
	assert.WithinDuration(t, time.Now(), stored.CreatedAt, time.Minute)
	assert.Equal(t, userData.UID, stored.UserUID)
	assert.Equal(t, drugData.Name, stored.Name)
	assert.Equal(t, drugData.Form, stored.Form)
	assert.Equal(t, drugData.TimingCondition, stored.TimingCondition)
	assert.Equal(t, drugData.TimesPerDay, stored.TimesPerDay)
	assert.Equal(t, drugData.UnitsPerDose, stored.UnitsPerDose)
	assert.Equal(t, drugData.TotalUnits, stored.TotalUnits)
	assert.Equal(t, models.DefaultReminderTime, stored.ReminderTime)

	verification.VerifyDrugExists(t, stored.ID)
	verification.VerifyDrugOwner(t, stored.ID, userData.UID)
}

func TestStorage_ListDrugs(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	factory := NewTestDataFactory(storage)

	owner := GetTestUserData()
	factory.CreateUser(t, owner.UID, owner.Username, owner.Fullname, owner.Phone, owner.PasswordHash)

	other := GetTestUserData()
	other.Username = "msmith"
	factory.CreateUser(t, other.UID, other.Username, "Mary Smith", "0867890", other.PasswordHash)

	firstID := factory.CreateDrug(t, owner.UID, "Paracetamol", models.FormTablet, models.TimingAfterMeal, 3, 1, 30)
	secondID := factory.CreateDrug(t, owner.UID, "Vitamin C", models.FormCapsule, models.TimingBeforeMeal, 1, 2, 60)
	factory.CreateDrug(t, other.UID, "Ibuprofen", models.FormTablet, models.TimingOneHourAfterMeal, 2, 1, 20)

	t.Run("returns only drugs of requested user in insertion order", func(t *testing.T) {
		drugs, err := storage.ListDrugs(context.Background(), owner.UID)
		require.NoError(t, err)
		require.Len(t, drugs, 2)

		assert.Equal(t, firstID, drugs[0].ID)
		assert.Equal(t, "Paracetamol", drugs[0].Name)
		assert.Equal(t, secondID, drugs[1].ID)
		assert.Equal(t, "Vitamin C", drugs[1].Name)
		for _, d := range drugs {
			assert.Equal(t, owner.UID, d.UserUID)
		}
	})

	t.Run("user without drugs gets empty result", func(t *testing.T) {
		fresh := GetTestUserData()
		fresh.Username = "empty"
		factory.CreateUser(t, fresh.UID, fresh.Username, "Empty User", "0800000", fresh.PasswordHash)

		drugs, err := storage.ListDrugs(context.Background(), fresh.UID)
		require.NoError(t, err)
		assert.Empty(t, drugs)
	})
}

func TestStorage_ContextCancelled(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := storage.ListDrugs(ctx, GetTestUserData().UID)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestCheckDatabaseReady(t *testing.T) {
	storage, cleanup := setupTestDatabase(t)
	defer cleanup()

	require.NoError(t, CheckDatabaseReady(storage))

	_, err := storage.DB.Exec("DROP TABLE drugs CASCADE")
	require.NoError(t, err)

	require.Error(t, CheckDatabaseReady(storage))
}
