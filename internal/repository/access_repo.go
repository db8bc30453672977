package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"eldercare-mis/internal/model"
)

// AccessRepository users, roles and permissions. Only the seeder writes
// through it; no route reads it.
type AccessRepository interface {
	CreateUser(ctx context.Context, user *model.User) error
	GetUserByName(ctx context.Context, name string) (*model.User, error)
	// EnsureRole returns the named role, creating it when absent
	EnsureRole(ctx context.Context, name string) (*model.Role, error)
	// EnsurePermission returns the named permission, creating it when absent
	EnsurePermission(ctx context.Context, name string) (*model.Permission, error)
	AssignRole(ctx context.Context, userID, roleID uint) error
	GrantPermission(ctx context.Context, roleID, permissionID uint) error
	CountUsers(ctx context.Context) (int64, error)
}

type accessRepo struct {
	db *gorm.DB
}

// NewAccessRepo creates an AccessRepository
func NewAccessRepo(db *gorm.DB) AccessRepository {
	return &accessRepo{db: db}
}

func (r *accessRepo) CreateUser(ctx context.Context, user *model.User) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(user).Error
}

func (r *accessRepo) GetUserByName(ctx context.Context, name string) (*model.User, error) {
	var user model.User
	err := r.db.WithContext(ctx).
		Preload("Roles").
		Where("user_name = ?", name).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *accessRepo) EnsureRole(ctx context.Context, name string) (*model.Role, error) {
	role := model.Role{RoleName: name}
	err := r.db.WithContext(ctx).
		Where(model.Role{RoleName: name}).
		FirstOrCreate(&role).Error
	if err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *accessRepo) EnsurePermission(ctx context.Context, name string) (*model.Permission, error) {
	perm := model.Permission{PermissionName: name}
	err := r.db.WithContext(ctx).
		Where(model.Permission{PermissionName: name}).
		FirstOrCreate(&perm).Error
	if err != nil {
		return nil, err
	}
	return &perm, nil
}

func (r *accessRepo) AssignRole(ctx context.Context, userID, roleID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.UserRole{UserID: userID, RoleID: roleID}).Error
}

func (r *accessRepo) GrantPermission(ctx context.Context, roleID, permissionID uint) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&model.RolePermission{RoleID: roleID, PermissionID: permissionID}).Error
}

func (r *accessRepo) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.User{}).Count(&n).Error
	return n, err
}
