package batch

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/curate-labs/imagemeta/internal/models"
)

// Batch is the session-scoped collection of images loaded for processing
// and export. A batch has a single writer: the orchestrator and direct edit
// calls must not overlap with another orchestrator run on the same batch.
type Batch struct {
	ID        string
	Settings  models.Settings
	CreatedAt time.Time

	items []*models.ImageItem
	index map[string]*models.ImageItem
}

// New creates an empty batch with the given settings.
func New(settings models.Settings) *Batch {
	return &Batch{
		ID:        uuid.NewString(),
		Settings:  settings,
		CreatedAt: time.Now(),
		index:     make(map[string]*models.ImageItem),
	}
}

// Add appends an item, preserving insertion order. Ids are unique for the
// lifetime of the batch.
func (b *Batch) Add(item *models.ImageItem) error {
	if _, exists := b.index[item.ID]; exists {
		return fmt.Errorf("duplicate item id: %s", item.ID)
	}
	b.items = append(b.items, item)
	b.index[item.ID] = item
	return nil
}

// Get returns the item with the given id.
func (b *Batch) Get(id string) (*models.ImageItem, bool) {
	item, exists := b.index[id]
	return item, exists
}

// Remove drops the item with the given id. Removal is terminal: the id is
// never reused and no component may reference it afterwards.
func (b *Batch) Remove(id string) bool {
	if _, exists := b.index[id]; !exists {
		return false
	}
	delete(b.index, id)
	for i, item := range b.items {
		if item.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			break
		}
	}
	return true
}

// Reset drops every item from the batch.
func (b *Batch) Reset() {
	b.items = nil
	b.index = make(map[string]*models.ImageItem)
}

// Items returns the items in insertion order. The slice is a copy; the
// items themselves are shared.
func (b *Batch) Items() []*models.ImageItem {
	out := make([]*models.ImageItem, len(b.items))
	copy(out, b.items)
	return out
}

// Len returns the number of items in the batch.
func (b *Batch) Len() int {
	return len(b.items)
}
