// store/devotionals.go - Devotional lifecycle over a single table
package store

import (
	"errors"
	"fmt"
	"time"

	"devotional/models"

	"gorm.io/gorm"
)

// DevotionalStore owns every read and write against the devotionals table.
// Each mutation is a single conditional statement, so concurrent callers
// race safely without external locking: whoever the predicate still matches
// wins, everyone else observes zero rows affected.
type DevotionalStore struct {
	db *gorm.DB
}

func NewDevotionalStore(db *gorm.DB) *DevotionalStore {
	return &DevotionalStore{db: db}
}

// DevotionalPatch carries the fields of a partial update. A nil field was
// not supplied and the stored value is left untouched; a non-nil field
// overwrites it. This keeps "absent" and "present but empty" distinct.
type DevotionalPatch struct {
	Verse   *string
	Content *string
}

// Create inserts a new devotional. The engine assigns the id and created_at;
// updated_at and deleted_at start absent.
func (s *DevotionalStore) Create(verse, content string) (*models.Devotional, error) {
	if verse == "" {
		return nil, &ValidationError{Message: "verse is required"}
	}
	if content == "" {
		return nil, &ValidationError{Message: "content is required"}
	}

	d := &models.Devotional{
		Verse:   verse,
		Content: content,
	}
	if err := s.db.Create(d).Error; err != nil {
		return nil, fmt.Errorf("insert devotional: %w", err)
	}
	return d, nil
}

// GetByID returns the active devotional with the given id. Soft-deleted
// rows are filtered out and reported as ErrNotFound.
func (s *DevotionalStore) GetByID(id uint) (*models.Devotional, error) {
	var d models.Devotional
	err := s.db.Where("id = ? AND deleted_at IS NULL", id).First(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("select devotional %d: %w", id, err)
	}
	return &d, nil
}

// ListActive returns all non-deleted devotionals, newest first. The id
// tiebreak keeps the order deterministic when created_at collides.
func (s *DevotionalStore) ListActive() ([]models.Devotional, error) {
	devotionals := make([]models.Devotional, 0)
	err := s.db.
		Where("deleted_at IS NULL").
		Order("created_at DESC, id DESC").
		Find(&devotionals).Error
	if err != nil {
		return nil, fmt.Errorf("list devotionals: %w", err)
	}
	return devotionals, nil
}

// UpdatePartial overwrites the supplied fields and refreshes updated_at in
// one conditional UPDATE. Rows that are absent or already deleted match
// nothing and come back as ErrNotFound.
func (s *DevotionalStore) UpdatePartial(id uint, patch DevotionalPatch) error {
	if patch.Verse == nil && patch.Content == nil {
		return &ValidationError{Message: "at least one of verse or content is required"}
	}

	updates := map[string]interface{}{
		"updated_at": time.Now().UTC(),
	}
	if patch.Verse != nil {
		if *patch.Verse == "" {
			return &ValidationError{Message: "verse must not be empty"}
		}
		updates["verse"] = *patch.Verse
	}
	if patch.Content != nil {
		if *patch.Content == "" {
			return &ValidationError{Message: "content must not be empty"}
		}
		updates["content"] = *patch.Content
	}

	result := s.db.Model(&models.Devotional{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("update devotional %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SoftDelete stamps deleted_at on the active row with the given id. The
// deleted_at IS NULL predicate makes concurrent deletes race safely: exactly
// one caller updates the row, the rest get ErrNotFound. There is no restore
// and no hard delete; the row stays for audit.
func (s *DevotionalStore) SoftDelete(id uint) error {
	result := s.db.Model(&models.Devotional{}).
		Where("id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now().UTC())
	if result.Error != nil {
		return fmt.Errorf("delete devotional %d: %w", id, result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
