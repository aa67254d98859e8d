package service_test

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerrors "github.com/heritageapp/heritage-server/internal/errors"
	"github.com/heritageapp/heritage-server/internal/logger"
	"github.com/heritageapp/heritage-server/internal/service"
	"github.com/heritageapp/heritage-server/internal/store"
)

func setupTestStore(t *testing.T) *store.Store {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "service-test-*")
	require.NoError(t, err)

	s, err := store.New(filepath.Join(tmpDir, "test.db"), nil)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = s.Close()
		_ = os.RemoveAll(tmpDir)
	})
	return s
}

func TestProfileGenerate(t *testing.T) {
	svc := service.NewProfileService(setupTestStore(t), logger.Discard())

	profile, err := svc.Generate(context.Background(), service.GenerateProfileRequest{
		Hometown:  "西安市",
		Age:       45,
		Interests: []string{"美术"},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(profile.ID, "gene-"))
	assert.Equal(t, "守望者", profile.GeneMap.DominantTrait)
	assert.Equal(t, []string{"heritage_001", "heritage_002"}, profile.Recommendations)
	assert.False(t, profile.CreatedAt.IsZero())
}

func TestProfileGeneratePersists(t *testing.T) {
	svc := service.NewProfileService(setupTestStore(t), logger.Discard())

	profile, err := svc.Generate(context.Background(), service.GenerateProfileRequest{
		Hometown: "上海",
		Age:      25,
	})
	require.NoError(t, err)

	got, err := svc.Get(context.Background(), profile.ID)
	require.NoError(t, err)
	assert.Equal(t, profile.ID, got.ID)
	assert.Equal(t, profile.GeneMap, got.GeneMap)
}

func TestProfileGenerateValidation(t *testing.T) {
	svc := service.NewProfileService(setupTestStore(t), logger.Discard())

	tests := []struct {
		name string
		req  service.GenerateProfileRequest
	}{
		{"missing hometown", service.GenerateProfileRequest{Age: 30}},
		{"missing age", service.GenerateProfileRequest{Hometown: "北京"}},
		{"age out of range", service.GenerateProfileRequest{Hometown: "北京", Age: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Generate(context.Background(), tt.req)
			require.Error(t, err)
			assert.ErrorIs(t, err, domainerrors.ErrValidation)
		})
	}
}

func TestProfileGetNotFound(t *testing.T) {
	svc := service.NewProfileService(setupTestStore(t), logger.Discard())

	_, err := svc.Get(context.Background(), "gene-missing")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
