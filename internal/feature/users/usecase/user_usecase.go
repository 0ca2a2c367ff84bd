package usecase

import (
	"context"

	"userhub_backend/internal/feature/users/domain/entity"
)

// UserPatch carries the fields of a partial update.
// A nil field means "leave the stored value unchanged".
type UserPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// UserRepository abstracts the persistence layer for user entities.
// Following Go convention: interfaces are defined by the consumer (usecase), not the provider (adapters).
type UserRepository interface {
	// Create persists a new user and assigns its ID.
	// It returns ErrEmailAlreadyExists if a user with the same email exists.
	Create(ctx context.Context, user *entity.User) error

	// List returns all users, or only those matching the exact email when
	// email is non-empty.
	List(ctx context.Context, email string) ([]entity.User, error)

	// Update applies the patch to the user with the given ID and returns the
	// updated record. It returns ErrUserNotFound if no user matches the ID and
	// ErrEmailAlreadyExists if the patched email is already taken.
	Update(ctx context.Context, id string, patch UserPatch) (*entity.User, error)

	// Delete removes the user with the given ID permanently.
	// It returns ErrUserNotFound if no user matches the ID.
	Delete(ctx context.Context, id string) error
}

// UserUsecase provides the directory operations on top of a UserRepository.
type UserUsecase struct {
	repo UserRepository
}

// NewUserUsecase creates a new UserUsecase with the given repository.
func NewUserUsecase(r UserRepository) *UserUsecase {
	return &UserUsecase{repo: r}
}

// CreateUser registers a new user and returns the stored record.
// The payload is assumed syntactically valid; the transport layer runs the
// validation gate before calling this.
func (u *UserUsecase) CreateUser(ctx context.Context, name, email string, phone *string) (*entity.User, error) {
	user := &entity.User{Name: name, Email: email, Phone: phone}
	if err := u.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// ListUsers returns all users, narrowed to an exact email match when the
// filter is non-empty.
func (u *UserUsecase) ListUsers(ctx context.Context, email string) ([]entity.User, error) {
	return u.repo.List(ctx, email)
}

// UpdateUser applies a partial update to an existing user.
func (u *UserUsecase) UpdateUser(ctx context.Context, id string, patch UserPatch) (*entity.User, error) {
	return u.repo.Update(ctx, id, patch)
}

// DeleteUser removes a user permanently. There is no soft delete.
func (u *UserUsecase) DeleteUser(ctx context.Context, id string) error {
	return u.repo.Delete(ctx, id)
}
