package backend

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"financas/internal/models"
)

// minPasswordLen mirrors the hosted auth service's weak-password rule.
const minPasswordLen = 6

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// gormBackend implements Backend on top of a GORM database.
type gormBackend struct {
	db *gorm.DB
}

// NewGorm creates a database-backed client facade.
func NewGorm(db *gorm.DB) Backend {
	return &gormBackend{db: db}
}

// Authenticate verifies credentials against the users table.
func (b *gormBackend) Authenticate(email, password string) (*models.User, error) {
	if !emailRegex.MatchString(email) {
		return nil, NewError(CodeInvalidEmail, nil)
	}

	var user models.User
	err := b.db.Where("email = ? AND is_active = ?", strings.ToLower(email), true).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, NewError(CodeUserNotFound, nil)
		}
		return nil, NewError(CodeWriteFailed, err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, NewError(CodeWrongPassword, nil)
	}

	return &user, nil
}

// Register creates a new user with a hashed password.
func (b *gormBackend) Register(email, password string) (*models.User, error) {
	if !emailRegex.MatchString(email) {
		return nil, NewError(CodeInvalidEmail, nil)
	}
	if len(password) < minPasswordLen {
		return nil, NewError(CodeWeakPassword, nil)
	}

	email = strings.ToLower(email)
	var count int64
	b.db.Model(&models.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		return nil, NewError(CodeEmailInUse, nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, NewError(CodeWriteFailed, err)
	}

	user := &models.User{
		Email:    email,
		Password: string(hashed),
		IsActive: true,
	}
	if err := b.db.Create(user).Error; err != nil {
		return nil, NewError(CodeWriteFailed, err)
	}

	return user, nil
}

// UpdateDisplayName attaches a display name to an existing user.
func (b *gormBackend) UpdateDisplayName(userID, displayName string) error {
	result := b.db.Model(&models.User{}).Where("id = ?", userID).Update("display_name", displayName)
	if result.Error != nil {
		return NewError(CodeWriteFailed, result.Error)
	}
	if result.RowsAffected == 0 {
		return NewError(CodeUserNotFound, nil)
	}
	return nil
}

// SignOut tears down backend-side session state. Tokens are stateless
// here, so there is nothing to revoke.
func (b *gormBackend) SignOut() error {
	return nil
}

// Add inserts a record into a collection. The creation timestamp is
// assigned by the store on insert.
func (b *gormBackend) Add(collection string, record *models.Record) (string, error) {
	kind, ok := models.KindForCollection(collection)
	if !ok {
		return "", NewError(CodeWriteFailed, errors.New("unknown collection: "+collection))
	}

	record.Kind = kind
	if err := b.db.Create(record).Error; err != nil {
		return "", NewError(CodeWriteFailed, err)
	}
	return record.ID, nil
}

// Update overwrites the mutable fields of an existing record. The creation
// timestamp and owner are never part of the update set. Records belonging
// to another owner are treated as not found.
func (b *gormBackend) Update(collection, id string, fields RecordFields, ownerID *string) error {
	kind, ok := models.KindForCollection(collection)
	if !ok {
		return NewError(CodeWriteFailed, errors.New("unknown collection: "+collection))
	}

	q := b.db.Model(&models.Record{}).Where("id = ? AND kind = ?", id, kind)
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}

	result := q.
		Updates(map[string]interface{}{
			"description": fields.Description,
			"amount":      fields.Amount,
			"date":        fields.Date,
			"category":    fields.Category,
		})
	if result.Error != nil {
		return NewError(CodeWriteFailed, result.Error)
	}
	if result.RowsAffected == 0 {
		return NewError(CodeRecordNotFound, nil)
	}
	return nil
}

// Query returns the records of a collection, optionally scoped to an owner.
func (b *gormBackend) Query(collection string, ownerID *string) ([]models.Record, error) {
	kind, ok := models.KindForCollection(collection)
	if !ok {
		return nil, NewError(CodeWriteFailed, errors.New("unknown collection: "+collection))
	}

	q := b.db.Where("kind = ?", kind)
	if ownerID != nil {
		q = q.Where("owner_id = ?", *ownerID)
	}

	var records []models.Record
	if err := q.Find(&records).Error; err != nil {
		return nil, NewError(CodeWriteFailed, err)
	}
	return records, nil
}
