package model

// User login account, optionally bound to a staff member (table user)
// Access models are migrated and seeded but not consulted by any route.
type User struct {
	UserID       uint   `gorm:"primaryKey"                        json:"id"`
	UserName     string `gorm:"type:varchar(100);not null;unique" json:"user_name"`
	PasswordHash string `gorm:"type:varchar(255);not null"        json:"-"`
	StaffID      *uint  `json:"staff_id"`

	Staff *Staff     `gorm:"foreignKey:StaffID;references:StaffID" json:"-"`
	Roles []UserRole `gorm:"foreignKey:UserID;references:UserID"   json:"-"`
}

// TableName table name
func (User) TableName() string { return "user" }

// Role (table role)
type Role struct {
	RoleID   uint   `gorm:"primaryKey"                        json:"id"`
	RoleName string `gorm:"type:varchar(100);not null;unique" json:"role_name"`

	Permissions []RolePermission `gorm:"foreignKey:RoleID;references:RoleID" json:"-"`
}

// TableName table name
func (Role) TableName() string { return "role" }

// Permission (table permission)
type Permission struct {
	PermissionID   uint   `gorm:"primaryKey"                        json:"id"`
	PermissionName string `gorm:"type:varchar(100);not null;unique" json:"permission_name"`
}

// TableName table name
func (Permission) TableName() string { return "permission" }

// UserRole user ↔ role assignment
type UserRole struct {
	UserID uint `gorm:"primaryKey;autoIncrement:false"`
	RoleID uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName table name
func (UserRole) TableName() string { return "user_role" }

// RolePermission role ↔ permission grant
type RolePermission struct {
	RoleID       uint `gorm:"primaryKey;autoIncrement:false"`
	PermissionID uint `gorm:"primaryKey;autoIncrement:false"`
}

// TableName table name
func (RolePermission) TableName() string { return "role_permission" }
