package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/supporthub/supporthub/internal/application/testutil"
	"github.com/supporthub/supporthub/internal/infrastructure/persistence/models"
)

func TestApply_IsIdempotent(t *testing.T) {
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{Logger: gormlogger.Discard})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gdb.AutoMigrate(models.All()...))

	ctx := context.Background()
	log := testutil.NewDiscardLogger()

	applied, err := Apply(ctx, gdb, "", log)
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = Apply(ctx, gdb, "", log)
	require.NoError(t, err)
	assert.False(t, applied)
}

func TestApply_MissingFile(t *testing.T) {
	_, err := Apply(context.Background(), nil, t.TempDir()+"/missing.yaml", testutil.NewDiscardLogger())

	assert.Error(t, err)
}
