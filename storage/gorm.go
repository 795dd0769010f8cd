package storage

import (
	"context"

	"github.com/Aram-az/ESSDev-Lifeyears/models"

	"github.com/pkg/errors"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Gorm stores each slot as a row of storage_entries. The table must already
// be migrated (config.OpenDB does this).
type Gorm struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *Gorm {
	return &Gorm{db: db}
}

func (g *Gorm) Get(ctx context.Context, key string) ([]byte, bool, error) {
	var entry models.StorageEntry
	err := g.db.WithContext(ctx).Where("slot_key = ?", key).Take(&entry).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrapf(err, "db error reading slot %s", key)
	}
	return []byte(entry.Value), true, nil
}

func (g *Gorm) Set(ctx context.Context, key string, value []byte) error {
	entry := models.StorageEntry{Key: key, Value: datatypes.JSON(value)}
	err := g.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "slot_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&entry).Error
	if err != nil {
		return errors.Wrapf(err, "db error writing slot %s", key)
	}
	return nil
}

func (g *Gorm) Delete(ctx context.Context, key string) error {
	err := g.db.WithContext(ctx).Where("slot_key = ?", key).Delete(&models.StorageEntry{}).Error
	if err != nil {
		return errors.Wrapf(err, "db error deleting slot %s", key)
	}
	return nil
}

func (g *Gorm) Close() error {
	sqlDB, err := g.db.DB()
	if err != nil {
		return errors.Wrap(err, "failed to get sql.DB")
	}
	return sqlDB.Close()
}
