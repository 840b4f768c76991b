package services_test

import (
	"testing"

	"mountainstore/internal/models"
	"mountainstore/internal/repositories"
	"mountainstore/internal/services"

	"github.com/stretchr/testify/assert"
)

func newDeliveryService(zones ...models.DeliveryAddress) *services.DeliveryService {
	repo := repositories.NewMockDeliveryAddressRepository()
	for i := range zones {
		_ = repo.Create(&zones[i])
	}
	return services.NewDeliveryService(repo)
}

func TestDeliveryService_FindZoneForAddress(t *testing.T) {
	service := newDeliveryService(
		models.DeliveryAddress{Address: "Mountain View", Zone: "Downtown", DeliveryFee: 2.99, IsActive: true},
	)

	// Case-insensitive substring match, regardless of surrounding text
	zone, err := service.FindZoneForAddress("742 MOUNTAIN view Avenue, Apt 3")
	assert.NoError(t, err)
	assert.NotNil(t, zone)
	assert.Equal(t, "Downtown", zone.Zone)
	assert.Equal(t, 2.99, zone.DeliveryFee)

	// Non-matching address
	zone, err = service.FindZoneForAddress("1 Ocean Drive")
	assert.NoError(t, err)
	assert.Nil(t, zone)
}

func TestDeliveryService_InactiveZonesIgnored(t *testing.T) {
	service := newDeliveryService(
		models.DeliveryAddress{Address: "Mountain View", Zone: "Downtown", DeliveryFee: 2.99, IsActive: false},
	)

	zone, err := service.FindZoneForAddress("742 Mountain View Avenue")
	assert.NoError(t, err)
	assert.Nil(t, zone)
}

func TestDeliveryService_FirstMatchByInsertionOrderWins(t *testing.T) {
	service := newDeliveryService(
		models.DeliveryAddress{Address: "Mountain", Zone: "Wide", DeliveryFee: 5.00, IsActive: true},
		models.DeliveryAddress{Address: "Mountain View", Zone: "Narrow", DeliveryFee: 2.99, IsActive: true},
	)

	zone, err := service.FindZoneForAddress("742 Mountain View Avenue")
	assert.NoError(t, err)
	assert.NotNil(t, zone)
	assert.Equal(t, "Wide", zone.Zone)
}

func TestDeliveryService_CheckAvailability(t *testing.T) {
	service := newDeliveryService(
		models.DeliveryAddress{Address: "Mountain View", Zone: "Downtown", DeliveryFee: 2.99, IsActive: true},
	)

	check, err := service.CheckAvailability("742 Mountain View Avenue")
	assert.NoError(t, err)
	assert.True(t, check.Available)
	assert.Equal(t, 2.99, check.DeliveryFee)
	assert.Equal(t, "Downtown", check.Zone)
	assert.NotEmpty(t, check.Message)

	check, err = service.CheckAvailability("1 Ocean Drive")
	assert.NoError(t, err)
	assert.False(t, check.Available)
	assert.Equal(t, 0.0, check.DeliveryFee)
	assert.Empty(t, check.Zone)
	assert.NotEmpty(t, check.Message)
}

func TestDeliveryService_CreateAndListAddresses(t *testing.T) {
	repo := repositories.NewMockDeliveryAddressRepository()
	service := services.NewDeliveryService(repo)

	created, err := service.CreateAddress("Shoreline", "North Side", 4.99, true)
	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.True(t, created.IsActive)

	_, err = service.CreateAddress("Old Quarry", "Retired", 0, false)
	assert.NoError(t, err)

	// ListAddresses includes inactive records
	addresses, err := service.ListAddresses()
	assert.NoError(t, err)
	assert.Len(t, addresses, 2)
}
