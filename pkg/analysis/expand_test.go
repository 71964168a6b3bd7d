package analysis

import (
	"testing"

	"vantage/pkg/dataset"
)

func TestSecondLevelPeople(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableCompany,
			[]string{"CompanyID"},
			[][]string{{"1-1"}},
		),
		dataset.NewTable(TableCompanyInvestor,
			[]string{"CompanyID", "InvestorID"},
			[][]string{{"1-1", "20-1"}},
		),
		dataset.NewTable(TableCompanyAffiliate,
			[]string{"CompanyID", "AffiliateID", "HQCountry"},
			[][]string{{"1-1", "40-1", "Germany"}},
		),
		dataset.NewTable(TablePersonPosition,
			[]string{"PersonID", "EntityID", "EntityType"},
			[][]string{
				{"50-1", "20-1", "Venture Capital"},
				{"50-2", "20-1", "Company"},
				{"50-2", "40-1", "Company"},
				{"50-3", "9-9", "Company"},
			},
		),
	)

	analyzer := NewAnalyzer(store)
	got := analyzer.SecondLevelPeople("1-1")

	// 50-2 appears at two connected entities but counts once.
	if got.People.Value() != 2 {
		t.Errorf("People = %s, want 2", got.People)
	}
	if got.International.Value() != 1 {
		t.Errorf("International = %s, want 1", got.International)
	}
	if got.NullCountry.Computable() {
		t.Error("NullCountry.Computable() = true, want false")
	}
}

func TestDealLevelPeople(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableCompany,
			[]string{"CompanyID"},
			[][]string{{"1-1"}},
		),
		dataset.NewTable(TableDeal,
			[]string{"DealID", "CompanyID", "CompanyName"},
			[][]string{{"60-1", "1-1", "C1"}},
		),
		dataset.NewTable(TableDealInvestor,
			[]string{"DealID", "InvestorID"},
			[][]string{{"60-1", "20-9"}},
		),
		dataset.NewTable(TableDealServiceProvider,
			[]string{"DealID", "ServiceProviderID"},
			[][]string{{"60-1", "70-1"}},
		),
		dataset.NewTable(TablePersonPosition,
			[]string{"PersonID", "EntityID", "EntityType"},
			[][]string{
				{"50-3", "20-9", "Venture Capital"},
				{"50-4", "70-1", "Company"},
			},
		),
	)

	analyzer := NewAnalyzer(store)
	got := analyzer.DealLevelPeople("1-1")

	if got.People.Value() != 2 {
		t.Errorf("People = %s, want 2", got.People)
	}
	if got.International.Value() != 1 {
		t.Errorf("International = %s, want 1", got.International)
	}
}

func TestDealLevelPeopleNoDeals(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableCompany, []string{"CompanyID"}, [][]string{{"1-1"}}),
	)

	analyzer := NewAnalyzer(store)
	got := analyzer.DealLevelPeople("1-1")

	if got.People.Value() != 0 {
		t.Errorf("People = %s, want 0", got.People)
	}
}
