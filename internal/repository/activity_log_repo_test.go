package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/lyfjs/gomis-go-api/internal/models"
)

func TestActivityLogRepositoryListByAction(t *testing.T) {
	db := setupTestDB(t)
	repo := NewActivityLogRepository(db)

	incidentID := uint(5)
	entries := []models.ActivityLog{
		{Action: "violation_status_propagated", EntityType: "incident", EntityID: &incidentID, Metadata: datatypes.JSONMap{"matched": 2}},
		{Action: "violation_status_propagated", EntityType: "session"},
		{Action: "violation_status_propagation_failed", EntityType: "session"},
	}
	for i := range entries {
		require.NoError(t, repo.Create(context.Background(), &entries[i]))
	}

	propagated, err := repo.ListByAction(context.Background(), "violation_status_propagated", 0)
	require.NoError(t, err)
	require.Len(t, propagated, 2)

	all, err := repo.ListByAction(context.Background(), "", 2)
	require.NoError(t, err)
	require.Len(t, all, 2, "limit caps the result set")
}
