// Package adapters provides the repository implementations for the users feature.
package adapters

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"userhub_backend/internal/feature/users/domain/entity"
	"userhub_backend/internal/feature/users/usecase"
)

// userGorm is the relational implementation of the UserRepository interface.
// It relies on gorm's error translation (TranslateError) so that unique-key
// violations surface as gorm.ErrDuplicatedKey on every supported driver.
type userGorm struct {
	db *gorm.DB
}

// Compile-time check that userGorm implements UserRepository.
var _ usecase.UserRepository = (*userGorm)(nil)

// NewUserRepository creates a new userGorm instance with the given gorm.DB
// connection. Constructor for dependency injection.
func NewUserRepository(db *gorm.DB) *userGorm {
	return &userGorm{db: db}
}

// Create inserts the user, assigning a fresh UUID when none is set.
// Returns usecase.ErrEmailAlreadyExists when the email is already taken.
func (r *userGorm) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("user must not be nil")
	}
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return usecase.ErrEmailAlreadyExists
		}
		return err
	}
	return nil
}

// List returns all users in creation order, or only the users whose email
// exactly matches the filter when it is non-empty.
func (r *userGorm) List(ctx context.Context, email string) ([]entity.User, error) {
	q := r.db.WithContext(ctx)
	if email != "" {
		q = q.Where("email = ?", email)
	}
	var users []entity.User
	if err := q.Order("created_at ASC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update loads the user, applies the provided fields and saves the result.
// Returns usecase.ErrUserNotFound when the ID does not exist and
// usecase.ErrEmailAlreadyExists when the patched email belongs to another user.
func (r *userGorm) Update(ctx context.Context, id string, patch usecase.UserPatch) (*entity.User, error) {
	var u entity.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrUserNotFound
		}
		return nil, err
	}

	if patch.Name != nil {
		u.Name = *patch.Name
	}
	if patch.Email != nil {
		u.Email = *patch.Email
	}
	if patch.Phone != nil {
		u.Phone = patch.Phone
	}

	// A concurrent insert can still win the race between the read above and
	// this write; the unique index has the final word.
	if err := r.db.WithContext(ctx).Save(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, usecase.ErrEmailAlreadyExists
		}
		return nil, err
	}
	return &u, nil
}

// Delete removes the user row permanently.
// Returns usecase.ErrUserNotFound when no row matched the ID.
func (r *userGorm) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entity.User{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return usecase.ErrUserNotFound
	}
	return nil
}
