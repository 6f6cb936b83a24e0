package services

import (
	"context"
	"testing"

	"github.com/scentara/perfume-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sampleAddress() AddressInput {
	return AddressInput{
		AddressType:   models.AddressTypeHome,
		FirstName:     "Asha",
		LastName:      "Nair",
		Country:       "India",
		State:         "Kerala",
		City:          "Kochi",
		Pincode:       "682001",
		Street1:       "12 Marine Drive",
		PhoneNumber:   "+919876543210",
		WhatsappOptIn: true,
	}
}

func TestHashAddressNormalization(t *testing.T) {
	base := sampleAddress()

	shouted := base
	shouted.FirstName = "  ASHA  "
	shouted.City = "KOCHI"
	assert.Equal(t, HashAddress(base), HashAddress(shouted),
		"case and whitespace variants must collide")

	moved := base
	moved.Street1 = "14 Marine Drive"
	assert.NotEqual(t, HashAddress(base), HashAddress(moved))

	office := base
	office.AddressType = models.AddressTypeOffice
	assert.NotEqual(t, HashAddress(base), HashAddress(office),
		"same fields under a different type are distinct addresses")

	optedOut := base
	optedOut.WhatsappOptIn = false
	assert.NotEqual(t, HashAddress(base), HashAddress(optedOut))
}

func TestCreateAddressDeduplicates(t *testing.T) {
	stored := map[string]*models.Address{}
	repo := &fakeAddressRepo{
		GetByUserAndHashFn: func(ctx context.Context, userID, hash, excludeID string) (*models.Address, error) {
			a := stored[hash]
			if a != nil && a.ID == excludeID {
				return nil, nil
			}
			return a, nil
		},
		CreateFn: func(ctx context.Context, a *models.Address) error {
			stored[a.AddressHash] = a
			return nil
		},
	}
	svc := NewAddressService(repo, zap.NewNop())

	in := sampleAddress()
	a, err := svc.Create(context.Background(), "u1", in)
	require.NoError(t, err)
	assert.Len(t, a.AddressHash, 64)

	// Same address with cosmetic differences is rejected.
	in.FirstName = " asha "
	_, err = svc.Create(context.Background(), "u1", in)
	assert.ErrorIs(t, err, ErrDuplicateAddress)

	// A different type of the same address is fine.
	in.AddressType = models.AddressTypeOffice
	_, err = svc.Create(context.Background(), "u1", in)
	assert.NoError(t, err)
}

func TestUpdateAddressExcludesSelf(t *testing.T) {
	in := sampleAddress()
	existing := &models.Address{
		ID:            "a1",
		UserID:        "u1",
		AddressType:   in.AddressType,
		FirstName:     in.FirstName,
		LastName:      in.LastName,
		Country:       in.Country,
		State:         in.State,
		City:          in.City,
		Pincode:       in.Pincode,
		Street1:       in.Street1,
		PhoneNumber:   in.PhoneNumber,
		WhatsappOptIn: in.WhatsappOptIn,
		AddressHash:   HashAddress(in),
	}

	var saved *models.Address
	repo := &fakeAddressRepo{
		GetByUserAndIDFn: func(ctx context.Context, userID, addressID string) (*models.Address, error) {
			if addressID == existing.ID {
				return existing, nil
			}
			return nil, nil
		},
		GetByUserAndHashFn: func(ctx context.Context, userID, hash, excludeID string) (*models.Address, error) {
			// The only matching row is the one being updated.
			if hash == existing.AddressHash && excludeID != existing.ID {
				return existing, nil
			}
			return nil, nil
		},
		UpdateFn: func(ctx context.Context, a *models.Address) error {
			saved = a
			return nil
		},
	}
	svc := NewAddressService(repo, zap.NewNop())

	// An empty patch re-hashes to the same value and must not trip the
	// dedup check against the row itself.
	a, err := svc.Update(context.Background(), "u1", "a1", AddressPatch{})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Equal(t, existing.AddressHash, a.AddressHash)

	landmark := "near lighthouse"
	a, err = svc.Update(context.Background(), "u1", "a1", AddressPatch{Landmark: &landmark})
	require.NoError(t, err)
	assert.Equal(t, "near lighthouse", a.Landmark)
	assert.NotEqual(t, HashAddress(in), a.AddressHash)
}

func TestDeleteAddressNotFound(t *testing.T) {
	repo := &fakeAddressRepo{
		GetByUserAndIDFn: func(ctx context.Context, userID, addressID string) (*models.Address, error) {
			return nil, nil
		},
	}
	svc := NewAddressService(repo, zap.NewNop())

	err := svc.Delete(context.Background(), "u1", "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}
