package analysis

import (
	"reflect"
	"testing"

	"vantage/pkg/dataset"
)

func summaryFixture() *dataset.Store {
	return dataset.NewStore(
		dataset.NewTable(TableCompany,
			[]string{"CompanyID", "CompanyName", "Website", "Employees"},
			[][]string{
				{"1-2", "Zenith", "zenith.example", "120"},
				{"1-1", "Acme", "acme.example", "40"},
				{"1-3", "Vacant Holdings", "", ""},
			},
		),
		dataset.NewTable(TablePerson,
			[]string{"PersonID", "FullName", "Country"},
			[][]string{
				{"10-1", "Ada", "United States"},
				{"10-2", "Grace", "Germany"},
				{"10-3", "Linus", ""},
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
			[]string{"CompanyID", "InvestorID"},
			[][]string{
				{"1-1", "20-1"},
				{"1-1", "20-2"},
				{"1-2", "20-1"},
			},
		),
		dataset.NewTable(TablePersonPosition,
			[]string{"PersonID", "EntityID", "EntityType"},
			[][]string{
				{"10-1", "1-1", "Company"},
				{"10-2", "1-1", "Company"},
				{"20-1", "30-1", "Venture Capital"},
			},
		),
		dataset.NewTable(TablePersonBoardSeat,
			[]string{"PersonID", "CompanyID"},
			[][]string{
				{"10-2", "1-1"},
				{"10-3", "1-1"},
			},
		),
		dataset.NewTable(TableDeal,
			[]string{"DealID", "CompanyID", "CompanyName"},
			[][]string{{"60-1", "1-1", "Acme"}},
		),
		dataset.NewTable(TableCompanyPatent,
			[]string{"CompanyID", "PatentID"},
			[][]string{
				{"1-1", "80-1"},
				{"1-1", "80-2"},
			},
		),
	)
}

func TestBuildSummarySortsByName(t *testing.T) {
	rows := NewAnalyzer(summaryFixture()).BuildSummary()

	if len(rows) != 3 {
		t.Fatalf("BuildSummary() returned %d rows, want 3", len(rows))
	}

	names := []string{rows[0].CompanyName, rows[1].CompanyName, rows[2].CompanyName}
	want := []string{"Acme", "Vacant Holdings", "Zenith"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("row order = %v, want %v", names, want)
	}
}

func TestBuildSummaryMetrics(t *testing.T) {
	rows := NewAnalyzer(summaryFixture()).BuildSummary()

	var acme SummaryRow
	for _, row := range rows {
		if row.CompanyID == "1-1" {
			acme = row
		}
	}

	// 10-1 is the only person with a position but no board seat at Acme.
	if acme.Employees != 1 {
		t.Errorf("Employees = %d, want 1", acme.Employees)
	}
	if acme.Investors != 2 {
		t.Errorf("Investors = %d, want 2", acme.Investors)
	}
	if acme.InternationalInvestors != 1 {
		t.Errorf("InternationalInvestors = %d, want 1", acme.InternationalInvestors)
	}
	if acme.EmployeeBoardMembers != 1 {
		t.Errorf("EmployeeBoardMembers = %d, want 1", acme.EmployeeBoardMembers)
	}
	if acme.OtherBoardMembers != 1 {
		t.Errorf("OtherBoardMembers = %d, want 1", acme.OtherBoardMembers)
	}
	// 10-2 is in Germany and 10-3 has no country, which counts as both
	// international and null.
	if acme.InternationalBoardMembers != 2 {
		t.Errorf("InternationalBoardMembers = %d, want 2", acme.InternationalBoardMembers)
	}
	if acme.NullCountryBoardMembers != 1 {
		t.Errorf("NullCountryBoardMembers = %d, want 1", acme.NullCountryBoardMembers)
	}
	if acme.InvestorAffiliations != 1 {
		t.Errorf("InvestorAffiliations = %d, want 1", acme.InvestorAffiliations)
	}
	if acme.Deals != 1 {
		t.Errorf("Deals = %d, want 1", acme.Deals)
	}
	if acme.Patents != 2 {
		t.Errorf("Patents = %d, want 2", acme.Patents)
	}
	if acme.LimitedPartnerAffiliations.Computable() {
		t.Error("LimitedPartnerAffiliations.Computable() = true, want false")
	}
}

func TestBuildSummaryEmployeesIsCategoryCount(t *testing.T) {
	analyzer := NewAnalyzer(summaryFixture())
	rows := analyzer.BuildSummary()

	for _, row := range rows {
		categories := analyzer.Classifier().Categories(row.CompanyID)
		if row.Employees != categories.OnlyEmployees.Len() {
			t.Errorf("company %s: Employees = %d, want only-employee count %d",
				row.CompanyID, row.Employees, categories.OnlyEmployees.Len())
		}
		linked := row.Employees + row.EmployeeBoardMembers + row.OtherBoardMembers
		if linked != categories.Linked() {
			t.Errorf("company %s: category columns sum to %d, want %d linked people",
				row.CompanyID, linked, categories.Linked())
		}
	}
}

func TestBuildSummarySkipsMalformedIDs(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableCompany,
			[]string{"CompanyID", "CompanyName"},
			[][]string{
				{"1-1", "Acme"},
				{"not-an-id", "Mangled Row"},
				{"", ""},
			},
		),
	)

	rows := NewAnalyzer(store).BuildSummary()

	if len(rows) != 1 {
		t.Fatalf("BuildSummary() returned %d rows, want 1", len(rows))
	}
	if rows[0].CompanyID != "1-1" {
		t.Errorf("CompanyID = %q, want %q", rows[0].CompanyID, "1-1")
	}
}

func TestBuildSummaryZeroRelationCompany(t *testing.T) {
	rows := NewAnalyzer(summaryFixture()).BuildSummary()

	var vacant SummaryRow
	found := false
	for _, row := range rows {
		if row.CompanyID == "1-3" {
			vacant = row
			found = true
		}
	}
	if !found {
		t.Fatal("company 1-3 missing from summary")
	}

	if vacant.Investors != 0 || vacant.InternationalInvestors != 0 {
		t.Errorf("Investors = %d, InternationalInvestors = %d, want 0, 0",
			vacant.Investors, vacant.InternationalInvestors)
	}
	if vacant.SecondLevelPeople != 0 || vacant.Deals != 0 {
		t.Errorf("SecondLevelPeople = %d, Deals = %d, want 0, 0",
			vacant.SecondLevelPeople, vacant.Deals)
	}
}

func TestBuildSummaryDeterministic(t *testing.T) {
	store := summaryFixture()

	first := NewAnalyzer(store).BuildSummary()
	second := NewAnalyzer(store).BuildSummary()

	if !reflect.DeepEqual(first, second) {
		t.Error("BuildSummary() output differs between runs on identical input")
	}
}

func TestBuildSummaryOneRowPerCompany(t *testing.T) {
	rows := NewAnalyzer(summaryFixture()).BuildSummary()

	seen := make(map[string]int)
	for _, row := range rows {
		seen[row.CompanyID]++
	}
	for _, id := range []string{"1-1", "1-2", "1-3"} {
		if seen[id] != 1 {
			t.Errorf("company %s appears %d times, want 1", id, seen[id])
		}
	}
}

func TestSummaryRecordWidth(t *testing.T) {
	rows := NewAnalyzer(summaryFixture()).BuildSummary()

	for _, row := range rows {
		record := row.Record()
		if len(record) != len(SummaryHeader) {
			t.Errorf("Record() has %d fields, want %d", len(record), len(SummaryHeader))
		}
	}
}

func TestSummarize(t *testing.T) {
	rows := NewAnalyzer(summaryFixture()).BuildSummary()
	stats := Summarize(rows)

	if stats.Companies != 3 {
		t.Errorf("Companies = %d, want 3", stats.Companies)
	}
	if stats.WithInvestors != 2 {
		t.Errorf("WithInvestors = %d, want 2", stats.WithInvestors)
	}
	if stats.Investors != 3 {
		t.Errorf("Investors = %d, want 3", stats.Investors)
	}
	if stats.BoardMembers != 2 {
		t.Errorf("BoardMembers = %d, want 2", stats.BoardMembers)
	}
	if stats.NullCountryBoardMembers != 1 {
		t.Errorf("NullCountryBoardMembers = %d, want 1", stats.NullCountryBoardMembers)
	}
}
