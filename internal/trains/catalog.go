package trains

import "errors"

var (
	ErrCatalogFull    = errors.New("train catalog is full")
	ErrDuplicateTrain = errors.New("train id already exists")
)

// Catalog is the in-memory collection of trains, in insertion order
type Catalog struct {
	trains []*Train
	max    int
}

// NewCatalog creates a catalog with the given capacity ceiling
func NewCatalog(maxTrains int) *Catalog {
	return &Catalog{
		trains: make([]*Train, 0, maxTrains),
		max:    maxTrains,
	}
}

// Add appends a train with zero booked seats
func (c *Catalog) Add(t *Train) error {
	if len(c.trains) >= c.max {
		return ErrCatalogFull
	}
	if c.FindByID(t.ID) != nil {
		return ErrDuplicateTrain
	}
	t.BookedSeats = 0
	c.trains = append(c.trains, t)
	return nil
}

// Restore appends a train preserving its booked-seat count, used when
// rebuilding the catalog from persisted state
func (c *Catalog) Restore(t *Train) error {
	if len(c.trains) >= c.max {
		return ErrCatalogFull
	}
	c.trains = append(c.trains, t)
	return nil
}

// FindByID returns the train with the given id, or nil if absent
func (c *Catalog) FindByID(id int) *Train {
	for _, t := range c.trains {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// List returns a snapshot of the catalog in insertion order
func (c *Catalog) List() []Train {
	out := make([]Train, 0, len(c.trains))
	for _, t := range c.trains {
		out = append(out, *t)
	}
	return out
}

// Len returns the number of trains in the catalog
func (c *Catalog) Len() int {
	return len(c.trains)
}
