package store

import (
	"context"
	"errors"

	"erp-service/internal/model"
	"erp-service/pkg/apperr"

	"gorm.io/gorm"
)

// UserStore provides account lookup, tenant signup and the super-admin seed.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	// RegisterTenant creates the tenant and its admin user in one
	// transaction; a duplicate email leaves no partial pair behind.
	RegisterTenant(ctx context.Context, companyName, email, passwordHash string) (*model.Tenant, *model.User, error)
	// SeedSuperAdmin ensures the privileged account exists. Idempotent.
	SeedSuperAdmin(ctx context.Context, email, passwordHash string) error
}

type userStore struct {
	*baseStore
}

func (s *userStore) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var user model.User
	res := s.db.WithContext(ctx).Where("email = ?", email).First(&user)
	if res.Error != nil {
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("user not found")
		}
		return nil, storeErr("finding user", res.Error)
	}
	return &user, nil
}

func (s *userStore) RegisterTenant(ctx context.Context, companyName, email, passwordHash string) (*model.Tenant, *model.User, error) {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	tenant := model.Tenant{
		CompanyName: companyName,
		Email:       email,
		Plan:        model.TenantStatusTrial,
		Status:      model.TenantStatusTrial,
	}
	user := model.User{
		Email: email,
		Role:  model.RoleAdmin,
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&model.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return apperr.Conflict("email already registered")
		}

		if err := tx.Create(&tenant).Error; err != nil {
			return err
		}

		user.TenantID = &tenant.ID
		user.PasswordHash = passwordHash
		return tx.Create(&user).Error
	})
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			return nil, nil, err
		}
		// The unique index backstops the in-transaction check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, nil, apperr.Conflict("email already registered")
		}
		return nil, nil, storeErr("registering tenant", err)
	}
	return &tenant, &user, nil
}

func (s *userStore) SeedSuperAdmin(ctx context.Context, email, passwordHash string) error {
	ctx, cancel := s.bound(ctx)
	defer cancel()

	var existing model.User
	res := s.db.WithContext(ctx).Where("role = ?", model.RoleSuperAdmin).First(&existing)
	if res.Error == nil {
		return nil
	}
	if !errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return storeErr("checking super-admin", res.Error)
	}

	admin := model.User{
		Email:        email,
		PasswordHash: passwordHash,
		Role:         model.RoleSuperAdmin,
	}
	if err := s.db.WithContext(ctx).Create(&admin).Error; err != nil {
		return storeErr("seeding super-admin", err)
	}
	return nil
}
