package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"outfitapi/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("record not found")

const (
	ProcessingIdle      = "idle"
	ProcessingPending   = "pending"
	ProcessingCompleted = "completed"
	ProcessingFailed    = "failed"
)

// Item columns grouped by the writer that owns them. Each writer updates only
// its own group so concurrent writers never undo each other.
var (
	ItemUserColumns       = []string{"name", "formality", "season", "favorite", "notes"}
	ItemProcessingColumns = []string{"primary_color", "processing_status", "process_retry_times", "process_error_message"}
)

// ClosetStore is the persistence boundary for users, closet items and saved looks.
type ClosetStore interface {
	FindUser(ctx context.Context, id uint) (models.UserAccount, error)
	ActivePushTokens(ctx context.Context, userID uint) ([]models.UserPushToken, error)
	// SavePushToken activates the device token for its user, moving it over
	// when another account registered it before.
	SavePushToken(ctx context.Context, token *models.UserPushToken) error

	ListItems(ctx context.Context, ownerID uint) ([]models.ClothingItem, error)
	GetItem(ctx context.Context, id uint) (models.ClothingItem, error)
	CreateItem(ctx context.Context, item *models.ClothingItem) error
	// UpdateItem writes only the named columns of the item, plus updated_at.
	UpdateItem(ctx context.Context, item *models.ClothingItem, columns ...string) error
	// TouchPendingItem bumps updated_at of an item still pending processing.
	// It reports false when the item has left the pending state.
	TouchPendingItem(ctx context.Context, id uint) (bool, error)
	// StalePendingItems returns items stuck in processing since before the cutoff
	// that still have retries left.
	StalePendingItems(ctx context.Context, before time.Time, maxRetries int) ([]models.ClothingItem, error)

	ListLooks(ctx context.Context, ownerID uint) ([]models.OutfitLook, error)
	CreateLook(ctx context.Context, look *models.OutfitLook) error
}

type GormClosetStore struct {
	db *gorm.DB
}

func NewGormClosetStore(db *gorm.DB) *GormClosetStore {
	return &GormClosetStore{db: db}
}

func (s *GormClosetStore) FindUser(ctx context.Context, id uint) (models.UserAccount, error) {
	var user models.UserAccount
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error
	return user, wrapNotFound(err)
}

func (s *GormClosetStore) ActivePushTokens(ctx context.Context, userID uint) ([]models.UserPushToken, error) {
	var tokens []models.UserPushToken
	err := s.db.WithContext(ctx).Where("user_account_id = ? AND active = ?", userID, true).Find(&tokens).Error
	return tokens, err
}

func (s *GormClosetStore) SavePushToken(ctx context.Context, token *models.UserPushToken) error {
	token.Active = true
	return s.db.WithContext(ctx).
		Omit("UserAccount").
		Where(models.UserPushToken{Token: token.Token}).
		Assign(models.UserPushToken{UserAccountID: token.UserAccountID, Platform: token.Platform, Active: true}).
		FirstOrCreate(token).Error
}

func (s *GormClosetStore) ListItems(ctx context.Context, ownerID uint) ([]models.ClothingItem, error) {
	var items []models.ClothingItem
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&items).Error
	return items, err
}

func (s *GormClosetStore) GetItem(ctx context.Context, id uint) (models.ClothingItem, error) {
	var item models.ClothingItem
	err := s.db.WithContext(ctx).Where("id = ?", id).Take(&item).Error
	return item, wrapNotFound(err)
}

func (s *GormClosetStore) CreateItem(ctx context.Context, item *models.ClothingItem) error {
	return s.db.WithContext(ctx).Omit("Owner").Create(item).Error
}

func (s *GormClosetStore) UpdateItem(ctx context.Context, item *models.ClothingItem, columns ...string) error {
	if len(columns) == 0 {
		return errors.New("no columns to update")
	}
	return s.db.WithContext(ctx).Model(item).Select(columns).Updates(item).Error
}

func (s *GormClosetStore) TouchPendingItem(ctx context.Context, id uint) (bool, error) {
	result := s.db.WithContext(ctx).
		Model(&models.ClothingItem{}).
		Where("id = ? AND processing_status = ?", id, ProcessingPending).
		UpdateColumn("updated_at", time.Now())
	return result.RowsAffected > 0, result.Error
}

func (s *GormClosetStore) StalePendingItems(ctx context.Context, before time.Time, maxRetries int) ([]models.ClothingItem, error) {
	var items []models.ClothingItem
	err := s.db.WithContext(ctx).
		Where("processing_status = ? AND updated_at < ? AND process_retry_times < ?", ProcessingPending, before, maxRetries).
		Order("id").
		Find(&items).Error
	return items, err
}

func (s *GormClosetStore) ListLooks(ctx context.Context, ownerID uint) ([]models.OutfitLook, error) {
	var looks []models.OutfitLook
	err := s.db.WithContext(ctx).Where("owner_id = ?", ownerID).Order("id").Find(&looks).Error
	return looks, err
}

func (s *GormClosetStore) CreateLook(ctx context.Context, look *models.OutfitLook) error {
	return s.db.WithContext(ctx).Omit("Owner").Create(look).Error
}

func wrapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	}
	return err
}
