package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rttm-inventory-service/internal/domain/models"
)

// The creator stamp must survive later updates by other users; only
// updated_by moves.
func TestAuditStampingCreatorPreserved(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuildingService(db, testConfig())

	alice := seedUser(t, db, "alice", models.RoleAdmin)
	bob := seedUser(t, db, "bob", models.RoleStaff)

	b := &models.Building{Name: "Block A"}
	require.NoError(t, svc.CreateBuilding(asActor(alice), b))

	require.NotNil(t, b.CreatedByID)
	assert.Equal(t, alice.ID, *b.CreatedByID)
	require.NotNil(t, b.UpdatedByID)
	assert.Equal(t, alice.ID, *b.UpdatedByID)

	createdAt := b.CreatedAt

	updated, err := svc.UpdateBuilding(asActor(bob), b.ID, map[string]interface{}{
		"description": "renovated",
	})
	require.NoError(t, err)

	require.NotNil(t, updated.CreatedByID)
	assert.Equal(t, alice.ID, *updated.CreatedByID, "creator must not change on update")
	require.NotNil(t, updated.UpdatedByID)
	assert.Equal(t, bob.ID, *updated.UpdatedByID)
	assert.WithinDuration(t, createdAt, updated.CreatedAt, time.Second, "created_at must not change on update")
}

// Saves without an authenticated actor leave the stamps untouched instead
// of failing.
func TestAuditStampingNoActor(t *testing.T) {
	db := newTestDB(t)
	svc := NewBuildingService(db, testConfig())

	b := &models.Building{Name: "Block B"}
	require.NoError(t, svc.CreateBuilding(context.Background(), b))

	assert.Nil(t, b.CreatedByID)
	assert.Nil(t, b.UpdatedByID)
}
