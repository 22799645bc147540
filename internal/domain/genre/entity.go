package genre

import (
	"time"

	"github.com/google/uuid"
)

type Genre struct {
	id        uuid.UUID
	name      Name
	createdAt time.Time
	updatedAt time.Time
}

func NewGenre(name string, now time.Time) (*Genre, error) {
	n, err := NewName(name)
	if err != nil {
		return nil, err
	}
	return &Genre{
		id:        uuid.New(),
		name:      n,
		createdAt: now,
		updatedAt: now,
	}, nil
}

// ReconstructGenre rebuilds a persisted genre without re-running validation.
func ReconstructGenre(id uuid.UUID, name string, createdAt, updatedAt time.Time) *Genre {
	return &Genre{
		id:        id,
		name:      Name{value: name},
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (g *Genre) Rename(name string, now time.Time) error {
	n, err := NewName(name)
	if err != nil {
		return err
	}
	g.name = n
	g.updatedAt = now
	return nil
}

// Snapshot is the copy embedded into movie documents.
func (g *Genre) Snapshot() Snapshot {
	return Snapshot{ID: g.id, Name: g.name.String()}
}

func (g *Genre) ID() uuid.UUID        { return g.id }
func (g *Genre) Name() Name           { return g.name }
func (g *Genre) CreatedAt() time.Time { return g.createdAt }
func (g *Genre) UpdatedAt() time.Time { return g.updatedAt }

type Snapshot struct {
	ID   uuid.UUID
	Name string
}
