package datastore

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/arc-labs/arcevents/pkg/arcevents/v1/events"
	"github.com/arc-labs/arcevents/pkg/arcevents/v1/types"
	"github.com/google/uuid"
)

var (
	// ErrNotFound is returned for reads and deletes of unknown documents.
	ErrNotFound = errors.New("document not found")
	// ErrConflict is returned when a write names a revision that is no
	// longer current.
	ErrConflict = errors.New("document update conflict")
)

// document is a pointer to a stored entity type.
type document[T any] interface {
	*T
	Meta() *types.Entity
}

// collection is a revisioned table of one entity type. Documents keep
// their insertion order for listing. Deleted documents are kept as
// tombstones until they are restored, overwritten or cleared.
type collection[T any, P document[T]] struct {
	mu         sync.RWMutex
	docs       map[string]P
	order      []string
	tombstones map[string]P
}

func newCollection[T any, P document[T]]() *collection[T, P] {
	return &collection[T, P]{
		docs:       make(map[string]P),
		tombstones: make(map[string]P),
	}
}

// get returns a copy of document id. A non-empty rev must be the current
// revision.
func (c *collection[T, P]) get(id, rev string) (*T, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	doc, ok := c.docs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if rev != "" && doc.Meta().Rev != rev {
		return nil, fmt.Errorf("%w: %s at revision %s", ErrNotFound, id, rev)
	}
	return deepCopy((*T)(doc)), nil
}

// put stores a copy of item under a new revision. Items without an id get
// a random one. An item carrying a revision must match the stored one; a
// new item continues the generation of the revision it carries.
func (c *collection[T, P]) put(item *T) (events.ChangeRecord[T], error) {
	doc := P(deepCopy(item))
	meta := doc.Meta()

	c.mu.Lock()
	defer c.mu.Unlock()
	if meta.ID == "" {
		meta.ID = uuid.NewString()
	}
	var oldRev string
	if current, ok := c.docs[meta.ID]; ok {
		oldRev = current.Meta().Rev
		if meta.Rev != "" && meta.Rev != oldRev {
			return events.ChangeRecord[T]{}, fmt.Errorf("%w: %s is at revision %s, not %s", ErrConflict, meta.ID, oldRev, meta.Rev)
		}
		meta.Rev = nextRev(oldRev)
	} else {
		c.order = append(c.order, meta.ID)
		meta.Rev = nextRev(meta.Rev)
	}
	c.docs[meta.ID] = doc
	delete(c.tombstones, meta.ID)
	return events.ChangeRecord[T]{ID: meta.ID, Rev: meta.Rev, OldRev: oldRev, Item: deepCopy((*T)(doc))}, nil
}

// putAll stores items in order and stops at the first failure.
func (c *collection[T, P]) putAll(items []*T) ([]events.ChangeRecord[T], error) {
	records := make([]events.ChangeRecord[T], 0, len(items))
	for _, item := range items {
		rec, err := c.put(item)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	return records, nil
}

// remove deletes document id and returns the deletion revision.
func (c *collection[T, P]) remove(id, rev string) (events.DeletedRecord, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	doc, ok := c.docs[id]
	if !ok {
		return events.DeletedRecord{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	meta := doc.Meta()
	if rev != "" && rev != meta.Rev {
		return events.DeletedRecord{}, fmt.Errorf("%w: %s is at revision %s, not %s", ErrConflict, id, meta.Rev, rev)
	}
	delete(c.docs, id)
	c.order = without(c.order, id)
	meta.Rev = nextRev(meta.Rev)
	c.tombstones[id] = doc
	return events.DeletedRecord{ID: id, Rev: meta.Rev}, nil
}

// restore brings a deleted document back under the revision following its
// deletion. A non-empty rec.Rev must be the deletion revision.
func (c *collection[T, P]) restore(rec events.DeletedRecord) (events.ChangeRecord[T], error) {
	c.mu.Lock()
	doc, ok := c.tombstones[rec.ID]
	if !ok {
		c.mu.Unlock()
		return events.ChangeRecord[T]{}, fmt.Errorf("%w: no deleted document %s", ErrNotFound, rec.ID)
	}
	if rec.Rev != "" && rec.Rev != doc.Meta().Rev {
		c.mu.Unlock()
		return events.ChangeRecord[T]{}, fmt.Errorf("%w: %s was deleted at revision %s, not %s", ErrConflict, rec.ID, doc.Meta().Rev, rec.Rev)
	}
	delete(c.tombstones, rec.ID)
	c.mu.Unlock()

	return c.put((*T)(doc))
}

// filter returns copies of the documents matching keep, in insertion order.
func (c *collection[T, P]) filter(keep func(*T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0)
	for _, id := range c.order {
		doc := (*T)(c.docs[id])
		if keep == nil || keep(doc) {
			out = append(out, deepCopy(doc))
		}
	}
	return out
}

// list returns one page of every document.
func (c *collection[T, P]) list(opts events.ListOptions) events.ListResult[T] {
	return page(c.filter(nil), opts)
}

// clear removes every document and returns their deletion records.
func (c *collection[T, P]) clear() []events.DeletedRecord {
	c.mu.Lock()
	defer c.mu.Unlock()
	records := make([]events.DeletedRecord, 0, len(c.order))
	for _, id := range c.order {
		records = append(records, events.DeletedRecord{ID: id, Rev: nextRev(c.docs[id].Meta().Rev)})
	}
	c.docs = make(map[string]P)
	c.tombstones = make(map[string]P)
	c.order = nil
	return records
}

func (c *collection[T, P]) len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}

// page cuts items according to opts. The page token is the offset of the
// next page.
func page[T any](items []*T, opts events.ListOptions) events.ListResult[T] {
	start, err := strconv.Atoi(opts.NextPageToken)
	if err != nil || start < 0 || start > len(items) {
		start = 0
	}
	end := len(items)
	if opts.Limit > 0 && start+opts.Limit < end {
		end = start + opts.Limit
	}
	result := events.ListResult[T]{Items: items[start:end]}
	if end < len(items) {
		result.NextPageToken = strconv.Itoa(end)
	}
	return result
}

// nextRev returns the revision following rev: "<generation>-<random hex>".
func nextRev(rev string) string {
	gen := 0
	if i := strings.IndexByte(rev, '-'); i > 0 {
		gen, _ = strconv.Atoi(rev[:i])
	}
	return fmt.Sprintf("%d-%s", gen+1, strings.ReplaceAll(uuid.NewString(), "-", ""))
}

func without(ids []string, id string) []string {
	for i, v := range ids {
		if v == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}
