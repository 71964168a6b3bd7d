package analysis

import "vantage/pkg/dataset"

// Table names of the dataset export.
const (
	TableCompany         = "Company"
	TablePerson          = "Person"
	TableInvestor        = "Investor"
	TableServiceProvider = "ServiceProvider"
	TableLimitedPartner  = "LimitedPartner"
	TableDeal            = "Deal"

	TableCompanyInvestor        = "CompanyInvestorRelation"
	TableCompanyServiceProvider = "CompanyServiceProviderRelation"
	TableCompanyAffiliate       = "CompanyAffiliateRelation"
	TableCompanyLeadPartner     = "CompanyInvLeadPartnerRelation"
	TableCompanyPatent          = "CompanyPatentRelation"
	TablePersonPosition         = "PersonPositionRelation"
	TablePersonBoardSeat        = "PersonBoardSeatRelation"
	TableDealInvestor           = "DealInvestorRelation"
	TableDealServiceProvider    = "DealServiceProviderRelation"
	TableFundLimitedPartner     = "FundLimitedPartnerRelation"
)

// ConnectedEntities returns the set of objectColumn values of relation
// rows whose subjectColumn equals id. Fails closed: a missing table
// yields an empty set, so downstream aggregation treats "no data" and
// "no relationships" identically.
func ConnectedEntities(data *dataset.Store, table, subjectColumn, objectColumn, id string) Set {
	set := make(Set)
	t := data.Table(table)
	if t == nil {
		return set
	}
	for row := 0; row < t.Len(); row++ {
		if t.Value(row, subjectColumn) != id {
			continue
		}
		if value := t.Value(row, objectColumn); value != "" {
			set.Add(value)
		}
	}
	return set
}

// ColumnSet returns the distinct non-empty values of a column, or an
// empty set if the table was not loaded.
func ColumnSet(data *dataset.Store, table, column string) Set {
	set := make(Set)
	t := data.Table(table)
	if t == nil {
		return set
	}
	for row := 0; row < t.Len(); row++ {
		if value := t.Value(row, column); value != "" {
			set.Add(value)
		}
	}
	return set
}

// groupSets groups the distinct valueColumn values of a relation table
// by keyColumn. Rows with an empty key or value are dropped.
func groupSets(data *dataset.Store, table, keyColumn, valueColumn string) map[string]Set {
	grouped := make(map[string]Set)
	t := data.Table(table)
	if t == nil {
		return grouped
	}
	for row := 0; row < t.Len(); row++ {
		key := t.Value(row, keyColumn)
		value := t.Value(row, valueColumn)
		if key == "" || value == "" {
			continue
		}
		set, ok := grouped[key]
		if !ok {
			set = make(Set)
			grouped[key] = set
		}
		set.Add(value)
	}
	return grouped
}

// countryIndex maps entity ids to the country value of the same row.
// First occurrence wins on duplicate ids.
func countryIndex(data *dataset.Store, table, idColumn, countryColumn string) map[string]string {
	countries := make(map[string]string)
	t := data.Table(table)
	if t == nil {
		return countries
	}
	for row := 0; row < t.Len(); row++ {
		id := t.Value(row, idColumn)
		if id == "" {
			continue
		}
		if _, ok := countries[id]; ok {
			continue
		}
		countries[id] = t.Value(row, countryColumn)
	}
	return countries
}
