package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"financas/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates a user with a hashed password and unique email.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	email := fmt.Sprintf("user%d@test.com", nextID())
	return CreateTestUserWithEmail(t, db, email)
}

// CreateTestUserWithEmail creates a user with the given email. The password
// is always "senha123".
func CreateTestUserWithEmail(t *testing.T, db *gorm.DB, email string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte("senha123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hash),
		IsActive: true,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestRecord creates a record of the given kind owned by ownerID.
// Pass an empty ownerID for an unowned record.
func CreateTestRecord(t *testing.T, db *gorm.DB, ownerID string, kind models.RecordKind) *models.Record {
	t.Helper()

	record := &models.Record{
		Kind:        kind,
		Description: fmt.Sprintf("Registro %d", nextID()),
		Amount:      100.50,
		Date:        "01/09/2026",
		Category:    models.CategoriesForKind(kind)[0],
	}
	if ownerID != "" {
		record.OwnerID = &ownerID
	}
	if err := db.Create(record).Error; err != nil {
		t.Fatalf("failed to create test record: %v", err)
	}
	return record
}
