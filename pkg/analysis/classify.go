package analysis

import "vantage/pkg/dataset"

// PersonCategories partitions the people linked to one company into
// three disjoint sets. A person is linked by holding a position whose
// target is the company, by holding a board seat there, or both.
type PersonCategories struct {
	OnlyEmployees    Set
	EmployeeAndBoard Set
	OnlyBoard        Set
}

// Linked returns the number of distinct people across the partition.
func (c PersonCategories) Linked() int {
	return c.OnlyEmployees.Len() + c.EmployeeAndBoard.Len() + c.OnlyBoard.Len()
}

// Classifier assigns people to employee/board categories. The three
// partitions are computed once over the global person universe; the
// per-company categories are intersections of a company's local
// membership with those partitions. A person linked to several
// companies is counted independently in each.
type Classifier struct {
	positionsAt map[string]Set
	boardAt     map[string]Set

	onlyEmployee     Set
	employeeAndBoard Set
	onlyBoard        Set
}

// NewClassifier builds the classifier from the position and board seat
// relations. Rows referencing ids outside the company universe are
// dropped.
func NewClassifier(data *dataset.Store, companies Set) *Classifier {
	positionsAt := make(map[string]Set)
	positionPersons := make(Set)
	if t := data.Table(TablePersonPosition); t != nil {
		for row := 0; row < t.Len(); row++ {
			person := t.Value(row, "PersonID")
			entity := t.Value(row, "EntityID")
			if person == "" || !companies.Has(entity) {
				continue
			}
			addMember(positionsAt, entity, person)
			positionPersons.Add(person)
		}
	}

	boardAt := make(map[string]Set)
	boardPersons := make(Set)
	if t := data.Table(TablePersonBoardSeat); t != nil {
		for row := 0; row < t.Len(); row++ {
			person := t.Value(row, "PersonID")
			company := t.Value(row, "CompanyID")
			if person == "" || !companies.Has(company) {
				continue
			}
			addMember(boardAt, company, person)
			boardPersons.Add(person)
		}
	}

	return &Classifier{
		positionsAt:      positionsAt,
		boardAt:          boardAt,
		onlyEmployee:     Diff(positionPersons, boardPersons),
		employeeAndBoard: Intersect(positionPersons, boardPersons),
		onlyBoard:        Diff(boardPersons, positionPersons),
	}
}

func addMember(membership map[string]Set, key, value string) {
	set, ok := membership[key]
	if !ok {
		set = make(Set)
		membership[key] = set
	}
	set.Add(value)
}

// Categories returns the person category partition for one company.
func (c *Classifier) Categories(companyID string) PersonCategories {
	linked := Union(c.positionsAt[companyID], c.boardAt[companyID])
	return PersonCategories{
		OnlyEmployees:    Intersect(linked, c.onlyEmployee),
		EmployeeAndBoard: Intersect(linked, c.employeeAndBoard),
		OnlyBoard:        Intersect(linked, c.onlyBoard),
	}
}

// PositionsAt returns the people holding a position at the company.
func (c *Classifier) PositionsAt(companyID string) Set {
	return c.positionsAt[companyID]
}

// BoardAt returns the people holding a board seat at the company.
func (c *Classifier) BoardAt(companyID string) Set {
	return c.boardAt[companyID]
}
