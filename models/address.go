package models

import "time"

type AddressType string

const (
	AddressTypeHome   AddressType = "home"
	AddressTypeOffice AddressType = "office"
	AddressTypeCustom AddressType = "custom"
)

// Address is a per-user shipping address. AddressHash is a SHA-256 digest
// of the normalized fields used only for duplicate detection; the unique
// index below backstops the application-level check against races.
type Address struct {
	ID            string      `gorm:"type:char(36);primaryKey" json:"id"`
	UserID        string      `gorm:"type:char(36);not null;index;uniqueIndex:idx_address_hash_user_type" json:"user_id"`
	AddressType   AddressType `gorm:"type:varchar(20);not null;default:'home';uniqueIndex:idx_address_hash_user_type" json:"address_type"`
	FirstName     string      `gorm:"size:100;not null" json:"first_name"`
	LastName      string      `gorm:"size:100;not null" json:"last_name"`
	Country       string      `gorm:"size:100;not null" json:"country"`
	State         string      `gorm:"size:100;not null" json:"state"`
	City          string      `gorm:"size:100;not null" json:"city"`
	Pincode       string      `gorm:"size:20;not null" json:"pincode"`
	Street1       string      `gorm:"size:255;not null" json:"street1"`
	Street2       string      `gorm:"size:255" json:"street2,omitempty"`
	Landmark      string      `gorm:"size:255" json:"landmark,omitempty"`
	PhoneNumber   string      `gorm:"size:20;not null" json:"phone_number"`
	WhatsappOptIn bool        `gorm:"not null;default:false" json:"whatsapp_opt_in"`
	AddressHash   string      `gorm:"type:char(64);not null;uniqueIndex:idx_address_hash_user_type" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
