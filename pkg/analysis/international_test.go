package analysis

import (
	"testing"

	"vantage/pkg/dataset"
)

func TestForeignPredicates(t *testing.T) {
	tests := []struct {
		name       string
		entityType string
		country    string
		byType     bool
		byCountry  bool
		nullC      bool
	}{
		{
			name:       "venture capital in germany",
			entityType: "Venture Capital",
			country:    "Germany",
			byType:     true,
			byCountry:  true,
		},
		{
			name:       "domestic company",
			entityType: "Company",
			country:    "United States",
		},
		{
			name:       "university abroad",
			entityType: "University (Non-Endowment)",
			country:    "Japan",
			byType:     true,
			byCountry:  true,
		},
		{
			name:       "foundation without country",
			entityType: "Foundation",
			country:    "",
			byType:     true,
			byCountry:  true,
			nullC:      true,
		},
		{
			name:       "corporation at home",
			entityType: "Corporation",
			country:    "United States",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsForeignByEntityType(tt.entityType); got != tt.byType {
				t.Errorf("IsForeignByEntityType(%q) = %v, want %v", tt.entityType, got, tt.byType)
			}
			if got := IsForeignByCountry(tt.country); got != tt.byCountry {
				t.Errorf("IsForeignByCountry(%q) = %v, want %v", tt.country, got, tt.byCountry)
			}
			if got := IsNullCountry(tt.country); got != tt.nullC {
				t.Errorf("IsNullCountry(%q) = %v, want %v", tt.country, got, tt.nullC)
			}
		})
	}
}

func TestCountByCountry(t *testing.T) {
	countries := map[string]string{
		"20-1": "Germany",
		"20-2": "United States",
		"20-3": "",
	}
	entities := NewSet("20-1", "20-2", "20-3", "20-4")

	international, null := countByCountry(entities, countries)

	// The blank country counts on both sides; 20-4 is unknown and
	// counts on neither.
	if international != 2 {
		t.Errorf("international = %d, want 2", international)
	}
	if null != 1 {
		t.Errorf("null = %d, want 1", null)
	}
}

func TestPersonCountrySplit(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TablePerson,
			[]string{"PersonID", "Country"},
			[][]string{
				{"10-1", "Germany"},
				{"10-2", "United States"},
				{"10-3", ""},
			},
		),
	)

	international, null := NewAnalyzer(store).personCountrySplit(NewSet("10-1", "10-2", "10-3", "10-4"))

	// Same reading as the entity split: the blank country lands on both
	// sides, the unknown id 10-4 on neither.
	if international != 2 {
		t.Errorf("international = %d, want 2", international)
	}
	if null != 1 {
		t.Errorf("null = %d, want 1", null)
	}
}

func TestPartitionByCountry(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableInvestor,
			[]string{"InvestorID", "InvestorName", "HQCountry"},
			[][]string{
				{"20-1", "Alpha Capital", "Germany"},
				{"20-2", "Beta Partners", "United States"},
				{"20-3", "Gamma Fund", ""},
			},
		),
	)

	got := PartitionByCountry(store, EntityKinds[0])

	if got.Total != 3 {
		t.Errorf("Total = %d, want 3", got.Total)
	}
	if got.International != 1 {
		t.Errorf("International = %d, want 1", got.International)
	}
	if got.NullCountry != 1 {
		t.Errorf("NullCountry = %d, want 1", got.NullCountry)
	}
}

func TestEntityExtracts(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableInvestor,
			[]string{"InvestorID", "InvestorName", "HQCountry", "HQLocation", "Website"},
			[][]string{
				{"20-1", "Alpha Capital", "Germany", "Berlin", "alpha.example"},
				{"20-2", "Beta Partners", "United States", "Boston", ""},
				{"20-3", "Gamma Fund", "", "", ""},
			},
		),
	)

	international := InternationalEntities(store, EntityKinds[0])
	if len(international) != 1 || international[0].EntityID != "20-1" {
		t.Fatalf("InternationalEntities = %+v, want one record for 20-1", international)
	}
	if international[0].HQLocation != "Berlin" {
		t.Errorf("HQLocation = %q, want %q", international[0].HQLocation, "Berlin")
	}

	null := NullCountryEntities(store, EntityKinds[0])
	if len(null) != 1 || null[0].EntityID != "20-3" {
		t.Fatalf("NullCountryEntities = %+v, want one record for 20-3", null)
	}
}

func TestCountryStats(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableInvestor,
			[]string{"InvestorID", "HQCountry"},
			[][]string{
				{"20-1", "Germany"},
				{"20-2", "Germany"},
				{"20-3", "Japan"},
			},
		),
		dataset.NewTable(TableServiceProvider,
			[]string{"ServiceProviderID", "HQCountry"},
			[][]string{
				{"70-1", "Japan"},
				{"70-2", "Canada"},
				{"70-3", ""},
			},
		),
	)

	got := CountryStats(store)

	want := []CountryCount{
		{Country: "Germany", Count: 2},
		{Country: "Japan", Count: 2},
		{Country: "Canada", Count: 1},
	}
	if len(got) != len(want) {
		t.Fatalf("CountryStats() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("CountryStats()[%d] = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestInternationalConnectionCount(t *testing.T) {
	store := dataset.NewStore(
		dataset.NewTable(TableCompanyInvestor,
			[]string{"CompanyID", "InvestorID"},
			[][]string{
				{"1-1", "20-1"},
				{"1-2", "20-1"},
				{"1-1", "20-2"},
			},
		),
	)

	got := InternationalConnectionCount(store, KindInvestor, NewSet("20-1"))
	if got != 2 {
		t.Errorf("InternationalConnectionCount() = %d, want 2", got)
	}
}
