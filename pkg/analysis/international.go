package analysis

import (
	"sort"

	"vantage/pkg/dataset"
)

// Two notions of "international" coexist in the dataset and are kept
// apart on purpose. Positions carry an entity type but no country, so
// affiliation sub-counts go by a fixed entity-type allow-list. Entity
// tables carry an HQ country, so entity-level sub-counts compare it
// against the domestic value. Call sites pick one; they are never
// interchangeable.

var foreignEntityTypes = map[string]struct{}{
	"University (Non-Endowment)": {},
	"Venture Capital":            {},
	"Foundation":                 {},
}

// IsForeignByEntityType reports whether an entity type is in the
// international allow-list.
func IsForeignByEntityType(entityType string) bool {
	_, ok := foreignEntityTypes[entityType]
	return ok
}

// IsForeignByCountry reports whether a country value differs from the
// domestic one. An empty country satisfies this check; call sites that
// want to exclude unknown countries test IsNullCountry first.
func IsForeignByCountry(country string) bool {
	return country != "United States"
}

// IsNullCountry reports whether the country value is missing.
func IsNullCountry(country string) bool {
	return country == ""
}

// countByCountry splits a set of entity ids by their country. An entity
// missing from the country index is not counted on either side. An
// empty country counts as both foreign and null, matching how the
// entity-level reports have always read the HQ column.
func countByCountry(entities Set, countries map[string]string) (international, null int) {
	for id := range entities {
		country, ok := countries[id]
		if !ok {
			continue
		}
		if IsForeignByCountry(country) {
			international++
		}
		if IsNullCountry(country) {
			null++
		}
	}
	return international, null
}

// personCountrySplit splits a set of people by their country. It reads
// the country column the same way countByCountry does: an empty country
// counts as both foreign and null.
func (a *Analyzer) personCountrySplit(people Set) (international, null int) {
	return countByCountry(people, a.countries(TablePerson, "PersonID", "Country"))
}

// investorCountrySplit resolves a set of investor ids against the
// investor table. Lead partners share the investor id space.
func (a *Analyzer) investorCountrySplit(ids Set) (international, null int) {
	return countByCountry(ids, a.countries(TableInvestor, "InvestorID", "HQCountry"))
}

// serviceProviderCountrySplit resolves service provider ids against
// the service provider table.
func (a *Analyzer) serviceProviderCountrySplit(ids Set) (international, null int) {
	return countByCountry(ids, a.countries(TableServiceProvider, "ServiceProviderID", "HQCountry"))
}

// foreignAffiliates counts a company's affiliates with a foreign,
// non-empty HQ country. The country lives on the affiliate relation
// itself, not in a separate entity table.
func (a *Analyzer) foreignAffiliates(companyID string) int {
	affiliates := a.Connected(companyID, KindAffiliate)
	countries := a.countries(TableCompanyAffiliate, "AffiliateID", "HQCountry")

	count := 0
	for id := range affiliates {
		country := countries[id]
		if !IsNullCountry(country) && IsForeignByCountry(country) {
			count++
		}
	}
	return count
}

// EntityKind describes one entity table for the HQ-country reports.
type EntityKind struct {
	Name           string
	Table          string
	IDColumn       string
	NameColumn     string
	CountryColumn  string
	LocationColumn string
	WebsiteColumn  string
}

// EntityKinds are the entity tables partitioned by HQ country.
var EntityKinds = []EntityKind{
	{
		Name:           "Investor",
		Table:          TableInvestor,
		IDColumn:       "InvestorID",
		NameColumn:     "InvestorName",
		CountryColumn:  "HQCountry",
		LocationColumn: "HQLocation",
		WebsiteColumn:  "Website",
	},
	{
		Name:           "ServiceProvider",
		Table:          TableServiceProvider,
		IDColumn:       "ServiceProviderID",
		NameColumn:     "ServiceProviderName",
		CountryColumn:  "HQCountry",
		LocationColumn: "HQLocation",
		WebsiteColumn:  "Website",
	},
	{
		Name:           "LimitedPartner",
		Table:          TableLimitedPartner,
		IDColumn:       "LimitedPartnerID",
		NameColumn:     "LimitedPartnerName",
		CountryColumn:  "HQCountry",
		LocationColumn: "HQLocation",
		WebsiteColumn:  "Website",
	},
}

// CountryPartition is the HQ-country breakdown of one entity table.
type CountryPartition struct {
	Kind          string
	Total         int
	International int
	NullCountry   int
}

// PartitionByCountry splits an entity table into international (foreign
// and known) and null-country rows.
func PartitionByCountry(data *dataset.Store, kind EntityKind) CountryPartition {
	partition := CountryPartition{Kind: kind.Name}
	t := data.Table(kind.Table)
	if t == nil {
		return partition
	}
	for row := 0; row < t.Len(); row++ {
		if t.Value(row, kind.IDColumn) == "" {
			continue
		}
		partition.Total++
		country := t.Value(row, kind.CountryColumn)
		if IsNullCountry(country) {
			partition.NullCountry++
			continue
		}
		if IsForeignByCountry(country) {
			partition.International++
		}
	}
	return partition
}

// EntityRecord is one row of the compliance and null-country extracts.
type EntityRecord struct {
	EntityType string
	EntityID   string
	EntityName string
	HQCountry  string
	HQLocation string
	Website    string
}

// InternationalEntities lists the entities of one kind with a foreign,
// non-empty HQ country, in table order.
func InternationalEntities(data *dataset.Store, kind EntityKind) []EntityRecord {
	return entityRecords(data, kind, func(country string) bool {
		return !IsNullCountry(country) && IsForeignByCountry(country)
	})
}

// NullCountryEntities lists the entities of one kind with no HQ country.
func NullCountryEntities(data *dataset.Store, kind EntityKind) []EntityRecord {
	return entityRecords(data, kind, IsNullCountry)
}

func entityRecords(data *dataset.Store, kind EntityKind, match func(country string) bool) []EntityRecord {
	var records []EntityRecord
	t := data.Table(kind.Table)
	if t == nil {
		return records
	}
	for row := 0; row < t.Len(); row++ {
		id := t.Value(row, kind.IDColumn)
		country := t.Value(row, kind.CountryColumn)
		if id == "" || !match(country) {
			continue
		}
		records = append(records, EntityRecord{
			EntityType: kind.Name,
			EntityID:   id,
			EntityName: t.Value(row, kind.NameColumn),
			HQCountry:  country,
			HQLocation: t.Value(row, kind.LocationColumn),
			Website:    t.Value(row, kind.WebsiteColumn),
		})
	}
	return records
}

// CountryCount is one entry of a country frequency table.
type CountryCount struct {
	Country string
	Count   int
}

// CountryStats counts entities per non-empty HQ country across all
// entity kinds, sorted by descending count, ties by country name.
func CountryStats(data *dataset.Store) []CountryCount {
	counts := make(map[string]int)
	for _, kind := range EntityKinds {
		t := data.Table(kind.Table)
		if t == nil {
			continue
		}
		for row := 0; row < t.Len(); row++ {
			if t.Value(row, kind.IDColumn) == "" {
				continue
			}
			if country := t.Value(row, kind.CountryColumn); country != "" {
				counts[country]++
			}
		}
	}

	stats := make([]CountryCount, 0, len(counts))
	for country, count := range counts {
		stats = append(stats, CountryCount{Country: country, Count: count})
	}
	sort.Slice(stats, func(i, j int) bool {
		if stats[i].Count != stats[j].Count {
			return stats[i].Count > stats[j].Count
		}
		return stats[i].Country < stats[j].Country
	})
	return stats
}

// InternationalConnectionCount counts the rows of a company relation
// whose object entity is in the given set. Used to report how many
// company links involve international entities.
func InternationalConnectionCount(data *dataset.Store, kind RelationKind, international Set) int {
	t := data.Table(kind.Table)
	if t == nil {
		return 0
	}
	count := 0
	for row := 0; row < t.Len(); row++ {
		if international.Has(t.Value(row, kind.ObjectColumn)) {
			count++
		}
	}
	return count
}

// EntityIDSet projects an entity record list to its id set.
func EntityIDSet(records []EntityRecord) Set {
	set := make(Set, len(records))
	for _, record := range records {
		set.Add(record.EntityID)
	}
	return set
}
