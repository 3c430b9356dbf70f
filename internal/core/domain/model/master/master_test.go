package master_test

import (
	"testing"

	"fieldservice/internal/core/domain/model/kernel"
	"fieldservice/internal/core/domain/model/master"
	"fieldservice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMaster(t *testing.T) {
	validID := kernel.NewUUID()
	validLocation := kernel.NewGeoPoint(55.7558, 37.6173)

	t.Run("should create valid master", func(t *testing.T) {
		m, err := master.NewMaster(validID, "Alice", 4.5, true, validLocation)

		require.NoError(t, err)
		require.NoError(t, m.Validate())
		assert.True(t, m.ID().IsEqual(validID))
		assert.Equal(t, "Alice", m.Name())
		assert.InEpsilon(t, 4.5, m.Rating(), 1e-9)
		assert.True(t, m.IsAvailable())
	})

	t.Run("should create unavailable master", func(t *testing.T) {
		m, err := master.NewMaster(validID, "Bob", 3.0, false, validLocation)

		require.NoError(t, err)
		assert.False(t, m.IsAvailable())
	})

	t.Run("should accept boundary ratings", func(t *testing.T) {
		_, err := master.NewMaster(validID, "Min", master.RatingMin, true, validLocation)
		require.NoError(t, err)

		_, err = master.NewMaster(validID, "Max", master.RatingMax, true, validLocation)
		require.NoError(t, err)
	})

	t.Run("should fail with rating above maximum", func(t *testing.T) {
		m, err := master.NewMaster(validID, "Alice", 5.5, true, validLocation)

		require.Error(t, err)
		assert.Nil(t, m)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with negative rating", func(t *testing.T) {
		_, err := master.NewMaster(validID, "Alice", -0.1, true, validLocation)

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("should fail with empty name", func(t *testing.T) {
		_, err := master.NewMaster(validID, "", 4.0, true, validLocation)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with invalid UUID", func(t *testing.T) {
		var invalidID kernel.UUID

		_, err := master.NewMaster(invalidID, "Alice", 4.0, true, validLocation)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
	})

	t.Run("should fail with invalid location", func(t *testing.T) {
		var invalidLocation kernel.GeoPoint

		_, err := master.NewMaster(validID, "Alice", 4.0, true, invalidLocation)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "geo point must be created")
	})

	t.Run("should aggregate multiple validation errors", func(t *testing.T) {
		var invalidID kernel.UUID
		var invalidLocation kernel.GeoPoint

		_, err := master.NewMaster(invalidID, "", 6.0, true, invalidLocation)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "UUID must be created")
		assert.Contains(t, err.Error(), "value is required: name")
		assert.Contains(t, err.Error(), "geo point must be created")
	})
}

func TestMaster_Validate(t *testing.T) {
	t.Run("nil and zero value masters fail validation", func(t *testing.T) {
		var nilMaster *master.Master
		var zeroMaster master.Master

		assert.Equal(t, master.ErrMasterIsNotConstructed, nilMaster.Validate())
		assert.Equal(t, master.ErrMasterIsNotConstructed, zeroMaster.Validate())
	})
}

func TestMaster_SetAvailability(t *testing.T) {
	m, _ := master.NewMaster(kernel.NewUUID(), "Alice", 4.5, true, kernel.NewGeoPoint(1, 2))

	m.SetAvailability(false)
	assert.False(t, m.IsAvailable())

	m.SetAvailability(true)
	assert.True(t, m.IsAvailable())
}

func TestMaster_MoveTo(t *testing.T) {
	m, _ := master.NewMaster(kernel.NewUUID(), "Alice", 4.5, true, kernel.NewGeoPoint(1, 2))

	t.Run("should move to valid location", func(t *testing.T) {
		target := kernel.NewGeoPoint(55.7558, 37.6173)

		require.NoError(t, m.MoveTo(target))

		equal, err := m.Location().IsEqual(target)
		require.NoError(t, err)
		assert.True(t, equal)
	})

	t.Run("should reject unconstructed location", func(t *testing.T) {
		var invalid kernel.GeoPoint

		require.Error(t, m.MoveTo(invalid))
	})
}

func TestMaster_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	location := kernel.NewGeoPoint(1, 2)

	m1, _ := master.NewMaster(id, "Alice", 4.5, true, location)
	m2, _ := master.NewMaster(id, "Bob", 2.0, false, location)
	m3, _ := master.NewMaster(kernel.NewUUID(), "Alice", 4.5, true, location)

	assert.True(t, m1.IsEqual(m2))
	assert.False(t, m1.IsEqual(m3))
	assert.False(t, m1.IsEqual(nil))
}
