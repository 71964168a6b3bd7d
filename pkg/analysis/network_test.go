package analysis

import (
	"reflect"
	"testing"

	"vantage/pkg/dataset"
)

func networkFixture() *dataset.Store {
	return dataset.NewStore(
		dataset.NewTable(TableCompany,
			[]string{"CompanyID", "CompanyName", "Employees", "CompanyFinancingStatus"},
			[][]string{
				{"1-1", "Acme", "40", "Venture Backed"},
				{"1-2", "Zenith", "120", "Venture Backed"},
				{"1-3", "Alpha Capital", "", "Corporate Backed"},
			},
		),
		dataset.NewTable(TableInvestor,
			[]string{"InvestorID", "InvestorName", "HQCountry"},
			[][]string{
				{"20-1", "Alpha Capital", "Japan"},
				{"20-2", "Beta Partners", "United States"},
			},
		),
		dataset.NewTable(TableCompanyInvestor,
			[]string{"CompanyID", "InvestorID", "CompanyName", "InvestorName"},
			[][]string{
				{"1-1", "20-1", "Acme", "Alpha Capital"},
				{"1-1", "20-2", "Acme", "Beta Partners"},
				{"1-2", "20-1", "Zenith", "Alpha Capital"},
			},
		),
	)
}

func TestTopInvestors(t *testing.T) {
	got := TopInvestors(networkFixture(), 10)

	want := []EntityCount{
		{ID: "20-1", Name: "Alpha Capital", Count: 2},
		{ID: "20-2", Name: "Beta Partners", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("TopInvestors() = %+v, want %+v", got, want)
	}
}

func TestTopCompaniesLimit(t *testing.T) {
	got := TopCompanies(networkFixture(), 1)

	if len(got) != 1 {
		t.Fatalf("TopCompanies(1) returned %d entries, want 1", len(got))
	}
	if got[0].ID != "1-1" || got[0].Count != 2 {
		t.Errorf("TopCompanies(1)[0] = %+v, want 1-1 with count 2", got[0])
	}
}

func TestTopByColumnTieBreak(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableCompanyInvestor,
			[]string{"CompanyID", "InvestorID", "InvestorName"},
			[][]string{
				{"1-1", "20-2", "Beta Partners"},
				{"1-1", "20-1", "Alpha Capital"},
			},
		),
	)

	got := TopInvestors(store, 10)
	if len(got) != 2 || got[0].ID != "20-1" {
		t.Errorf("TopInvestors() = %+v, want 20-1 first on tied counts", got)
	}
}

func TestValueCounts(t *testing.T) {
	got := ValueCounts(networkFixture(), TableCompany, "CompanyFinancingStatus")

	want := []ValueCount{
		{Value: "Venture Backed", Count: 2},
		{Value: "Corporate Backed", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ValueCounts() = %+v, want %+v", got, want)
	}
}

func TestComputeNetworkStats(t *testing.T) {
	got := ComputeNetworkStats(networkFixture())

	if got.Relations != 3 {
		t.Errorf("Relations = %d, want 3", got.Relations)
	}
	if got.Companies != 2 {
		t.Errorf("Companies = %d, want 2", got.Companies)
	}
	if got.Investors != 2 {
		t.Errorf("Investors = %d, want 2", got.Investors)
	}
	if got.MaxInvestorsPerCompany != 2 {
		t.Errorf("MaxInvestorsPerCompany = %d, want 2", got.MaxInvestorsPerCompany)
	}
	if got.AvgInvestorsPerCompany != 1.5 {
		t.Errorf("AvgInvestorsPerCompany = %v, want 1.5", got.AvgInvestorsPerCompany)
	}
}

func TestComputeEmployeeStats(t *testing.T) {
	got := ComputeEmployeeStats(networkFixture())

	if got.Known != 2 {
		t.Errorf("Known = %d, want 2", got.Known)
	}
	if got.Min != 40 || got.Max != 120 {
		t.Errorf("Min, Max = %d, %d, want 40, 120", got.Min, got.Max)
	}
	if got.Mean != 80 {
		t.Errorf("Mean = %v, want 80", got.Mean)
	}
}

func TestNameOverlap(t *testing.T) {
	got := NameOverlap(networkFixture())
	if got != 1 {
		t.Errorf("NameOverlap() = %d, want 1", got)
	}
}
