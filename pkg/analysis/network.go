package analysis

import (
	"sort"
	"strconv"

	"vantage/pkg/dataset"
)

// EntityCount is one entry of a top-N ranking.
type EntityCount struct {
	ID    string
	Name  string
	Count int
}

// TopByColumn groups a relation table by idColumn and returns the n
// largest groups, descending by count, ties by id. The display name is
// taken from the first occurrence of each id.
func TopByColumn(data *dataset.Store, table, idColumn, nameColumn string, n int) []EntityCount {
	t := data.Table(table)
	if t == nil {
		return nil
	}

	counts := make(map[string]int)
	names := make(map[string]string)
	for row := 0; row < t.Len(); row++ {
		id := t.Value(row, idColumn)
		if id == "" {
			continue
		}
		counts[id]++
		if _, ok := names[id]; !ok {
			names[id] = t.Value(row, nameColumn)
		}
	}

	ranking := make([]EntityCount, 0, len(counts))
	for id, count := range counts {
		ranking = append(ranking, EntityCount{ID: id, Name: names[id], Count: count})
	}
	sort.Slice(ranking, func(i, j int) bool {
		if ranking[i].Count != ranking[j].Count {
			return ranking[i].Count > ranking[j].Count
		}
		return ranking[i].ID < ranking[j].ID
	})

	if n > 0 && len(ranking) > n {
		ranking = ranking[:n]
	}
	return ranking
}

// TopInvestors ranks investors by the number of companies they back.
func TopInvestors(data *dataset.Store, n int) []EntityCount {
	return TopByColumn(data, TableCompanyInvestor, "InvestorID", "InvestorName", n)
}

// TopCompanies ranks companies by the number of investors backing them.
func TopCompanies(data *dataset.Store, n int) []EntityCount {
	return TopByColumn(data, TableCompanyInvestor, "CompanyID", "CompanyName", n)
}

// ValueCount is one entry of a column frequency table.
type ValueCount struct {
	Value string
	Count int
}

// ValueCounts tabulates the non-empty values of a column, descending by
// count, ties by value.
func ValueCounts(data *dataset.Store, table, column string) []ValueCount {
	t := data.Table(table)
	if t == nil {
		return nil
	}

	counts := make(map[string]int)
	for row := 0; row < t.Len(); row++ {
		if value := t.Value(row, column); value != "" {
			counts[value]++
		}
	}

	tabulated := make([]ValueCount, 0, len(counts))
	for value, count := range counts {
		tabulated = append(tabulated, ValueCount{Value: value, Count: count})
	}
	sort.Slice(tabulated, func(i, j int) bool {
		if tabulated[i].Count != tabulated[j].Count {
			return tabulated[i].Count > tabulated[j].Count
		}
		return tabulated[i].Value < tabulated[j].Value
	})
	return tabulated
}

// NetworkStats describe the company-investor relation as a whole.
type NetworkStats struct {
	Relations              int
	Companies              int
	Investors              int
	AvgInvestorsPerCompany float64
	MaxInvestorsPerCompany int
}

// ComputeNetworkStats summarizes the company-investor network.
func ComputeNetworkStats(data *dataset.Store) NetworkStats {
	var stats NetworkStats
	t := data.Table(TableCompanyInvestor)
	if t == nil {
		return stats
	}

	perCompany := groupSets(data, TableCompanyInvestor, "CompanyID", "InvestorID")
	investors := make(Set)
	for _, connected := range perCompany {
		for id := range connected {
			investors.Add(id)
		}
		if connected.Len() > stats.MaxInvestorsPerCompany {
			stats.MaxInvestorsPerCompany = connected.Len()
		}
		stats.Relations += connected.Len()
	}

	stats.Companies = len(perCompany)
	stats.Investors = investors.Len()
	if stats.Companies > 0 {
		stats.AvgInvestorsPerCompany = float64(stats.Relations) / float64(stats.Companies)
	}
	return stats
}

// EmployeeStats are numeric statistics over the company employee
// counts. Rows with a non-numeric or empty value are excluded.
type EmployeeStats struct {
	Known int
	Min   int
	Max   int
	Mean  float64
}

// ComputeEmployeeStats parses the Employees column of the company table.
func ComputeEmployeeStats(data *dataset.Store) EmployeeStats {
	var stats EmployeeStats
	t := data.Table(TableCompany)
	if t == nil {
		return stats
	}

	sum := 0
	for row := 0; row < t.Len(); row++ {
		value, err := strconv.Atoi(t.Value(row, "Employees"))
		if err != nil {
			continue
		}
		if stats.Known == 0 || value < stats.Min {
			stats.Min = value
		}
		if value > stats.Max {
			stats.Max = value
		}
		sum += value
		stats.Known++
	}
	if stats.Known > 0 {
		stats.Mean = float64(sum) / float64(stats.Known)
	}
	return stats
}

// EmployeeBuckets tabulates companies by employee count range, in
// ascending bucket order. Companies with no numeric count are omitted.
func EmployeeBuckets(data *dataset.Store) []ValueCount {
	buckets := []ValueCount{
		{Value: "1-10"},
		{Value: "11-50"},
		{Value: "51-200"},
		{Value: "201-1000"},
		{Value: "1000+"},
	}

	t := data.Table(TableCompany)
	if t == nil {
		return buckets
	}
	for row := 0; row < t.Len(); row++ {
		value, err := strconv.Atoi(t.Value(row, "Employees"))
		if err != nil || value < 1 {
			continue
		}
		switch {
		case value <= 10:
			buckets[0].Count++
		case value <= 50:
			buckets[1].Count++
		case value <= 200:
			buckets[2].Count++
		case value <= 1000:
			buckets[3].Count++
		default:
			buckets[4].Count++
		}
	}
	return buckets
}

// NameOverlap counts the names appearing both as a company and as an
// investor, a rough signal of corporate investors in the universe.
func NameOverlap(data *dataset.Store) int {
	companies := ColumnSet(data, TableCompany, "CompanyName")
	investors := ColumnSet(data, TableInvestor, "InvestorName")
	return Intersect(companies, investors).Len()
}
