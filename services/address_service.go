package services

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"github.com/scentara/perfume-api/models"
	"go.uber.org/zap"
)

type AddressService struct {
	addresses AddressRepository
	log       *zap.Logger
}

func NewAddressService(addresses AddressRepository, log *zap.Logger) *AddressService {
	return &AddressService{addresses: addresses, log: log}
}

// AddressInput carries the writable address fields.
type AddressInput struct {
	AddressType   models.AddressType `json:"address_type" binding:"required,oneof=home office custom"`
	FirstName     string             `json:"first_name" binding:"required"`
	LastName      string             `json:"last_name" binding:"required"`
	Country       string             `json:"country" binding:"required"`
	State         string             `json:"state" binding:"required"`
	City          string             `json:"city" binding:"required"`
	Pincode       string             `json:"pincode" binding:"required"`
	Street1       string             `json:"street1" binding:"required"`
	Street2       string             `json:"street2"`
	Landmark      string             `json:"landmark"`
	PhoneNumber   string             `json:"phone_number" binding:"required"`
	WhatsappOptIn bool               `json:"whatsapp_opt_in"`
}

// HashAddress builds the dedup digest: each field lowercased and trimmed,
// joined with "|" in a fixed order, then SHA-256 hex. Two addresses that
// differ only in casing or surrounding whitespace collide on purpose.
func HashAddress(in AddressInput) string {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

	fields := []string{
		norm(in.FirstName),
		norm(in.LastName),
		norm(in.Country),
		norm(in.State),
		norm(in.City),
		norm(in.Pincode),
		norm(in.Street1),
		norm(in.Street2),
		norm(in.Landmark),
		norm(in.PhoneNumber),
		strconv.FormatBool(in.WhatsappOptIn),
		norm(string(in.AddressType)),
	}

	sum := sha256.Sum256([]byte(strings.Join(fields, "|")))
	return hex.EncodeToString(sum[:])
}

func (s *AddressService) Create(ctx context.Context, userID string, in AddressInput) (*models.Address, error) {
	hash := HashAddress(in)

	dup, err := s.addresses.GetByUserAndHash(ctx, userID, hash, "")
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, ErrDuplicateAddress
	}

	a := &models.Address{
		ID:            models.NewID(),
		UserID:        userID,
		AddressType:   in.AddressType,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Country:       in.Country,
		State:         in.State,
		City:          in.City,
		Pincode:       in.Pincode,
		Street1:       in.Street1,
		Street2:       in.Street2,
		Landmark:      in.Landmark,
		PhoneNumber:   in.PhoneNumber,
		WhatsappOptIn: in.WhatsappOptIn,
		AddressHash:   hash,
	}
	if err := s.addresses.Create(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Get(ctx context.Context, userID, addressID string) (*models.Address, error) {
	a, err := s.addresses.GetByUserAndID(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}
	return a, nil
}

func (s *AddressService) List(ctx context.Context, userID string) ([]models.Address, error) {
	return s.addresses.ListByUser(ctx, userID)
}

// AddressPatch carries a partial update; nil fields keep their current
// values.
type AddressPatch struct {
	AddressType   *models.AddressType `json:"address_type" binding:"omitempty,oneof=home office custom"`
	FirstName     *string             `json:"first_name"`
	LastName      *string             `json:"last_name"`
	Country       *string             `json:"country"`
	State         *string             `json:"state"`
	City          *string             `json:"city"`
	Pincode       *string             `json:"pincode"`
	Street1       *string             `json:"street1"`
	Street2       *string             `json:"street2"`
	Landmark      *string             `json:"landmark"`
	PhoneNumber   *string             `json:"phone_number"`
	WhatsappOptIn *bool               `json:"whatsapp_opt_in"`
}

func mergePatch(a *models.Address, p AddressPatch) AddressInput {
	merged := AddressInput{
		AddressType:   a.AddressType,
		FirstName:     a.FirstName,
		LastName:      a.LastName,
		Country:       a.Country,
		State:         a.State,
		City:          a.City,
		Pincode:       a.Pincode,
		Street1:       a.Street1,
		Street2:       a.Street2,
		Landmark:      a.Landmark,
		PhoneNumber:   a.PhoneNumber,
		WhatsappOptIn: a.WhatsappOptIn,
	}
	if p.AddressType != nil {
		merged.AddressType = *p.AddressType
	}
	if p.FirstName != nil {
		merged.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		merged.LastName = *p.LastName
	}
	if p.Country != nil {
		merged.Country = *p.Country
	}
	if p.State != nil {
		merged.State = *p.State
	}
	if p.City != nil {
		merged.City = *p.City
	}
	if p.Pincode != nil {
		merged.Pincode = *p.Pincode
	}
	if p.Street1 != nil {
		merged.Street1 = *p.Street1
	}
	if p.Street2 != nil {
		merged.Street2 = *p.Street2
	}
	if p.Landmark != nil {
		merged.Landmark = *p.Landmark
	}
	if p.PhoneNumber != nil {
		merged.PhoneNumber = *p.PhoneNumber
	}
	if p.WhatsappOptIn != nil {
		merged.WhatsappOptIn = *p.WhatsappOptIn
	}
	return merged
}

// Update merges the patch over the stored fields, recomputes the hash on
// the merged record, and rejects the update if a different row of this
// user already matches it.
func (s *AddressService) Update(ctx context.Context, userID, addressID string, patch AddressPatch) (*models.Address, error) {
	a, err := s.addresses.GetByUserAndID(ctx, userID, addressID)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, ErrNotFound
	}

	merged := mergePatch(a, patch)
	hash := HashAddress(merged)
	dup, err := s.addresses.GetByUserAndHash(ctx, userID, hash, addressID)
	if err != nil {
		return nil, err
	}
	if dup != nil {
		return nil, ErrDuplicateAddress
	}

	a.AddressType = merged.AddressType
	a.FirstName = merged.FirstName
	a.LastName = merged.LastName
	a.Country = merged.Country
	a.State = merged.State
	a.City = merged.City
	a.Pincode = merged.Pincode
	a.Street1 = merged.Street1
	a.Street2 = merged.Street2
	a.Landmark = merged.Landmark
	a.PhoneNumber = merged.PhoneNumber
	a.WhatsappOptIn = merged.WhatsappOptIn
	a.AddressHash = hash

	if err := s.addresses.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *AddressService) Delete(ctx context.Context, userID, addressID string) error {
	a, err := s.addresses.GetByUserAndID(ctx, userID, addressID)
	if err != nil {
		return err
	}
	if a == nil {
		return ErrNotFound
	}
	return s.addresses.Delete(ctx, a)
}
