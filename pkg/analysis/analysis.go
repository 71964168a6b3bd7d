package analysis

import (
	"vantage/internal/util"
	"vantage/pkg/dataset"
	"vantage/pkg/logger"
)

// Analyzer computes per-company relationship metrics over one loaded
// dataset snapshot. The snapshot is read-only; every index is built at
// most once and shared across lookups.
type Analyzer struct {
	data       *dataset.Store
	companies  Set
	classifier *Classifier
	positions  *PositionIndex

	connCache    map[string]map[string]Set
	countryCache map[string]map[string]string
}

// NewAnalyzer builds the company universe, the person category
// classifier and the position index for the given dataset. Company ids
// not matching the export's identifier format are dropped from the
// universe, so no downstream metric or summary row is built for them.
func NewAnalyzer(data *dataset.Store) *Analyzer {
	companies := make(Set)
	malformed := 0
	for id := range ColumnSet(data, TableCompany, "CompanyID") {
		if !util.ValidEntityID(id) {
			malformed++
			continue
		}
		companies.Add(id)
	}
	if malformed > 0 {
		logger.Warn("Ignoring companies with malformed ids", "count", malformed)
	}
	return &Analyzer{
		data:         data,
		companies:    companies,
		classifier:   NewClassifier(data, companies),
		positions:    NewPositionIndex(data),
		connCache:    make(map[string]map[string]Set),
		countryCache: make(map[string]map[string]string),
	}
}

// Companies returns the set of known company ids.
func (a *Analyzer) Companies() Set {
	return a.companies
}

// Classifier exposes the person category classifier.
func (a *Analyzer) Classifier() *Classifier {
	return a.classifier
}

// Connected returns the set of entities connected to id through the
// given relation kind.
func (a *Analyzer) Connected(id string, kind RelationKind) Set {
	set := a.grouped(kind.Table, kind.SubjectColumn, kind.ObjectColumn)[id]
	if set == nil {
		return Set{}
	}
	return set
}

func (a *Analyzer) grouped(table, subjectColumn, objectColumn string) map[string]Set {
	key := table + "/" + subjectColumn + "/" + objectColumn
	if cached, ok := a.connCache[key]; ok {
		return cached
	}
	grouped := groupSets(a.data, table, subjectColumn, objectColumn)
	a.connCache[key] = grouped
	return grouped
}

func (a *Analyzer) countries(table, idColumn, countryColumn string) map[string]string {
	key := table + "/" + idColumn + "/" + countryColumn
	if cached, ok := a.countryCache[key]; ok {
		return cached
	}
	countries := countryIndex(a.data, table, idColumn, countryColumn)
	a.countryCache[key] = countries
	return countries
}
