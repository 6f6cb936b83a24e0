package models

import "time"

type UserType string
type Role string

const (
	// User types. Anonymous users are guest sessions that can later be
	// converted in place to EMAIL or SOCIAL without changing their id.
	UserTypeAnonymous UserType = "ANONYMOUS"
	UserTypeSocial    UserType = "SOCIAL"
	UserTypeEmail     UserType = "EMAIL"
	UserTypePhone     UserType = "PHONE"

	RoleUser       Role = "USER"
	RoleAdmin      Role = "ADMIN"
	RoleSuperAdmin Role = "SUPERADMIN"
)

type User struct {
	ID             string   `gorm:"type:char(36);primaryKey" json:"id"`
	Email          string   `gorm:"size:255;unique;not null" json:"email"`
	PasswordHash   string   `gorm:"size:255" json:"-"`
	Phone          string   `gorm:"size:20" json:"phone,omitempty"`
	DisplayPicture string   `gorm:"size:500" json:"display_picture,omitempty"`
	UserType       UserType `gorm:"type:varchar(20);not null;default:'ANONYMOUS';index" json:"user_type"`
	Role           Role     `gorm:"type:varchar(20);not null;default:'USER'" json:"role"`
	IsActive       bool     `gorm:"not null;default:true" json:"is_active"`
	EmailVerified  bool     `gorm:"not null;default:false" json:"email_verified"`
	LastLogin      *time.Time `json:"last_login,omitempty"`

	SocialAccounts []SocialAccount `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Addresses      []Address       `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	CartItems      []Cart          `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	WishlistItems  []WishlistItem  `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders         []Order         `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) IsAnonymous() bool {
	return u.UserType == UserTypeAnonymous
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperAdmin
}

// CanLoginWithPassword reports whether email/password login is possible
// for this account. Social-only accounts carry no usable password hash.
func (u *User) CanLoginWithPassword() bool {
	return u.IsActive && u.PasswordHash != ""
}

type SocialAccount struct {
	ID                string `gorm:"type:char(36);primaryKey" json:"id"`
	UserID            string `gorm:"type:char(36);not null;uniqueIndex:idx_social_user_provider" json:"user_id"`
	Provider          string `gorm:"size:50;not null;uniqueIndex:idx_social_user_provider;uniqueIndex:idx_social_provider_account" json:"provider"`
	ProviderAccountID string `gorm:"size:255;not null;uniqueIndex:idx_social_provider_account" json:"provider_account_id"`
	AccessToken       string `gorm:"type:text" json:"-"`
	RefreshToken      string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
