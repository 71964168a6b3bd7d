package analysis

import "vantage/pkg/dataset"

// Position is one row of the position relation: a subject holding a
// position at an entity. The subject id space is shared across entity
// types — investor firms and other organizations hold positions under
// the same identifier scheme as people.
type Position struct {
	PersonID   string
	EntityID   string
	EntityType string
}

// PositionIndex provides lookups over the position relation by subject
// and by target entity.
type PositionIndex struct {
	byPerson map[string][]Position
	byEntity map[string][]Position
}

// NewPositionIndex builds the index from the loaded position relation.
// A missing table yields an empty index.
func NewPositionIndex(data *dataset.Store) *PositionIndex {
	index := &PositionIndex{
		byPerson: make(map[string][]Position),
		byEntity: make(map[string][]Position),
	}

	t := data.Table(TablePersonPosition)
	if t == nil {
		return index
	}

	for row := 0; row < t.Len(); row++ {
		position := Position{
			PersonID:   t.Value(row, "PersonID"),
			EntityID:   t.Value(row, "EntityID"),
			EntityType: t.Value(row, "EntityType"),
		}
		if position.PersonID == "" || position.EntityID == "" {
			continue
		}
		index.byPerson[position.PersonID] = append(index.byPerson[position.PersonID], position)
		index.byEntity[position.EntityID] = append(index.byEntity[position.EntityID], position)
	}

	return index
}

// ByPerson returns the positions held by the given subject id.
func (x *PositionIndex) ByPerson(id string) []Position {
	return x.byPerson[id]
}

// ByEntity returns the positions held at the given entity id.
func (x *PositionIndex) ByEntity(id string) []Position {
	return x.byEntity[id]
}
