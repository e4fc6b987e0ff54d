package test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"outfitapi/models"
	"outfitapi/services"
)

// MemoryClosetStore is an in-memory services.ClosetStore for handler and task tests.
type MemoryClosetStore struct {
	mu     sync.Mutex
	nextID uint
	users  map[uint]models.UserAccount
	tokens []models.UserPushToken
	items  map[uint]models.ClothingItem
	looks  []models.OutfitLook

	// Err, when set, is returned by every read
	Err error
}

func NewMemoryClosetStore() *MemoryClosetStore {
	return &MemoryClosetStore{
		users: map[uint]models.UserAccount{},
		items: map[uint]models.ClothingItem{},
	}
}

func (s *MemoryClosetStore) id() uint {
	s.nextID++
	return s.nextID
}

func (s *MemoryClosetStore) AddUser(user models.UserAccount) models.UserAccount {
	s.mu.Lock()
	defer s.mu.Unlock()
	if user.ID == 0 {
		user.ID = s.id()
	}
	user.CreatedAt, user.UpdatedAt = time.Now(), time.Now()
	s.users[user.ID] = user
	return user
}

func (s *MemoryClosetStore) AddPushToken(token models.UserPushToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	token.ID = s.id()
	s.tokens = append(s.tokens, token)
}

func (s *MemoryClosetStore) FindUser(_ context.Context, id uint) (models.UserAccount, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return models.UserAccount{}, s.Err
	}
	user, ok := s.users[id]
	if !ok {
		return models.UserAccount{}, services.ErrNotFound
	}
	return user, nil
}

func (s *MemoryClosetStore) ActivePushTokens(_ context.Context, userID uint) ([]models.UserPushToken, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.UserPushToken
	for _, token := range s.tokens {
		if token.UserAccountID == userID && token.Active {
			out = append(out, token)
		}
	}
	return out, s.Err
}

func (s *MemoryClosetStore) SavePushToken(_ context.Context, token *models.UserPushToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	token.Active = true
	for i, existing := range s.tokens {
		if existing.Token == token.Token {
			token.ID = existing.ID
			s.tokens[i] = *token
			return nil
		}
	}
	token.ID = s.id()
	s.tokens = append(s.tokens, *token)
	return nil
}

func (s *MemoryClosetStore) ListItems(_ context.Context, ownerID uint) ([]models.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.ClothingItem
	for id := uint(1); id <= s.nextID; id++ {
		if item, ok := s.items[id]; ok && item.OwnerID == ownerID {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *MemoryClosetStore) GetItem(_ context.Context, id uint) (models.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return models.ClothingItem{}, s.Err
	}
	item, ok := s.items[id]
	if !ok {
		return models.ClothingItem{}, services.ErrNotFound
	}
	return item, nil
}

func (s *MemoryClosetStore) CreateItem(_ context.Context, item *models.ClothingItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	item.ID = s.id()
	item.CreatedAt, item.UpdatedAt = time.Now(), time.Now()
	s.items[item.ID] = *item
	return nil
}

func (s *MemoryClosetStore) UpdateItem(_ context.Context, item *models.ClothingItem, columns ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(columns) == 0 {
		return errors.New("no columns to update")
	}
	stored, ok := s.items[item.ID]
	if !ok {
		return services.ErrNotFound
	}
	for _, column := range columns {
		switch column {
		case "name":
			stored.Name = item.Name
		case "formality":
			stored.Formality = item.Formality
		case "season":
			stored.Season = item.Season
		case "favorite":
			stored.Favorite = item.Favorite
		case "notes":
			stored.Notes = item.Notes
		case "primary_color":
			stored.PrimaryColor = item.PrimaryColor
		case "processing_status":
			stored.ProcessingStatus = item.ProcessingStatus
		case "process_retry_times":
			stored.ProcessRetryTimes = item.ProcessRetryTimes
		case "process_error_message":
			stored.ProcessErrorMessage = item.ProcessErrorMessage
		default:
			return fmt.Errorf("unknown item column %q", column)
		}
	}
	stored.UpdatedAt = time.Now()
	item.UpdatedAt = stored.UpdatedAt
	s.items[item.ID] = stored
	return nil
}

func (s *MemoryClosetStore) TouchPendingItem(_ context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok || item.ProcessingStatus != services.ProcessingPending {
		return false, nil
	}
	item.UpdatedAt = time.Now()
	s.items[id] = item
	return true, nil
}

// Backdate moves an item's last update into the past.
func (s *MemoryClosetStore) Backdate(id uint, by time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item := s.items[id]
	item.UpdatedAt = item.UpdatedAt.Add(-by)
	s.items[id] = item
}

func (s *MemoryClosetStore) StalePendingItems(_ context.Context, before time.Time, maxRetries int) ([]models.ClothingItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.ClothingItem
	for id := uint(1); id <= s.nextID; id++ {
		item, ok := s.items[id]
		if ok && item.ProcessingStatus == services.ProcessingPending && item.UpdatedAt.Before(before) && item.ProcessRetryTimes < maxRetries {
			out = append(out, item)
		}
	}
	return out, nil
}

func (s *MemoryClosetStore) ListLooks(_ context.Context, ownerID uint) ([]models.OutfitLook, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	var out []models.OutfitLook
	for _, look := range s.looks {
		if look.OwnerID == ownerID {
			out = append(out, look)
		}
	}
	return out, nil
}

func (s *MemoryClosetStore) CreateLook(_ context.Context, look *models.OutfitLook) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	look.ID = s.id()
	look.CreatedAt, look.UpdatedAt = time.Now(), time.Now()
	s.looks = append(s.looks, *look)
	return nil
}
