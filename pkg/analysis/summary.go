package analysis

import (
	"sort"
	"strconv"
)

// SummaryRow is one company's row of the wide summary table. Field
// order mirrors SummaryHeader. Counts with no loadable join path are
// Metric values marked not computable; they render as 0 in the CSV.
type SummaryRow struct {
	CompanyID   string
	CompanyName string
	Website     string

	// Employees is the only-employees category count, not the raw
	// headcount field of the company table.
	Employees int

	EmployeeBoardMembers              int
	OtherBoardMembers                 int
	EmployeeAffiliations              int
	InternationalEmployeeAffiliations int
	NullCountryEmployeeAffiliations   Metric
	InternationalBoardMembers         int
	NullCountryBoardMembers           int

	Affiliates                         int
	AffiliateAffiliations              int
	InternationalAffiliateAffiliations int
	NullCountryAffiliateAffiliations   Metric
	InternationalAffiliates            int

	LeadPartners                         int
	LeadPartnerAffiliations              int
	InternationalLeadPartnerAffiliations int
	NullCountryLeadPartnerAffiliations   Metric
	InternationalLeadPartners            int

	Investors                         int
	InvestorAffiliations              int
	InternationalInvestorAffiliations int
	NullCountryInvestorAffiliations   Metric
	InternationalInvestors            int
	NullCountryInvestors              int

	ServiceProviders                         int
	ServiceProviderAffiliations              int
	InternationalServiceProviderAffiliations int
	NullCountryServiceProviderAffiliations   Metric
	InternationalServiceProviders            int
	NullCountryServiceProviders              int

	LimitedPartnerAffiliations              Metric
	InternationalLimitedPartnerAffiliations Metric
	NullCountryLimitedPartnerAffiliations   Metric

	SecondLevelPeople              int
	InternationalSecondLevelPeople int
	NullCountrySecondLevelPeople   Metric

	DealLevelPeople              int
	InternationalDealLevelPeople int
	NullCountryDealLevelPeople   Metric

	Deals   int
	Patents int
}

// SummaryHeader is the fixed column order of the company summary table.
var SummaryHeader = []string{
	"CompanyID",
	"CompanyName",
	"Website",
	"Employees",
	"EmployeeBoardMembers",
	"OtherBoardMembers",
	"EmployeeAffiliations",
	"InternationalEmployeeAffiliations",
	"NullCountryEmployeeAffiliations",
	"InternationalBoardMembers",
	"NullCountryBoardMembers",
	"Affiliates",
	"AffiliateAffiliations",
	"InternationalAffiliateAffiliations",
	"NullCountryAffiliateAffiliations",
	"InternationalAffiliates",
	"LeadPartners",
	"LeadPartnerAffiliations",
	"InternationalLeadPartnerAffiliations",
	"NullCountryLeadPartnerAffiliations",
	"InternationalLeadPartners",
	"Investors",
	"InvestorAffiliations",
	"InternationalInvestorAffiliations",
	"NullCountryInvestorAffiliations",
	"InternationalInvestors",
	"NullCountryInvestors",
	"ServiceProviders",
	"ServiceProviderAffiliations",
	"InternationalServiceProviderAffiliations",
	"NullCountryServiceProviderAffiliations",
	"InternationalServiceProviders",
	"NullCountryServiceProviders",
	"LimitedPartnerAffiliations",
	"InternationalLimitedPartnerAffiliations",
	"NullCountryLimitedPartnerAffiliations",
	"SecondLevelPeople",
	"InternationalSecondLevelPeople",
	"NullCountrySecondLevelPeople",
	"DealLevelPeople",
	"InternationalDealLevelPeople",
	"NullCountryDealLevelPeople",
	"Deals",
	"Patents",
}

// Record renders the row for CSV export, in SummaryHeader order.
func (r SummaryRow) Record() []string {
	itoa := strconv.Itoa
	metric := func(m Metric) string { return itoa(m.Value()) }
	return []string{
		r.CompanyID,
		r.CompanyName,
		r.Website,
		itoa(r.Employees),
		itoa(r.EmployeeBoardMembers),
		itoa(r.OtherBoardMembers),
		itoa(r.EmployeeAffiliations),
		itoa(r.InternationalEmployeeAffiliations),
		metric(r.NullCountryEmployeeAffiliations),
		itoa(r.InternationalBoardMembers),
		itoa(r.NullCountryBoardMembers),
		itoa(r.Affiliates),
		itoa(r.AffiliateAffiliations),
		itoa(r.InternationalAffiliateAffiliations),
		metric(r.NullCountryAffiliateAffiliations),
		itoa(r.InternationalAffiliates),
		itoa(r.LeadPartners),
		itoa(r.LeadPartnerAffiliations),
		itoa(r.InternationalLeadPartnerAffiliations),
		metric(r.NullCountryLeadPartnerAffiliations),
		itoa(r.InternationalLeadPartners),
		itoa(r.Investors),
		itoa(r.InvestorAffiliations),
		itoa(r.InternationalInvestorAffiliations),
		metric(r.NullCountryInvestorAffiliations),
		itoa(r.InternationalInvestors),
		itoa(r.NullCountryInvestors),
		itoa(r.ServiceProviders),
		itoa(r.ServiceProviderAffiliations),
		itoa(r.InternationalServiceProviderAffiliations),
		metric(r.NullCountryServiceProviderAffiliations),
		itoa(r.InternationalServiceProviders),
		itoa(r.NullCountryServiceProviders),
		metric(r.LimitedPartnerAffiliations),
		metric(r.InternationalLimitedPartnerAffiliations),
		metric(r.NullCountryLimitedPartnerAffiliations),
		itoa(r.SecondLevelPeople),
		itoa(r.InternationalSecondLevelPeople),
		metric(r.NullCountrySecondLevelPeople),
		itoa(r.DealLevelPeople),
		itoa(r.InternationalDealLevelPeople),
		metric(r.NullCountryDealLevelPeople),
		itoa(r.Deals),
		itoa(r.Patents),
	}
}

// BuildSummary assembles one row per company. Rows sort by company name
// ascending; names are not unique in the export, so ties fall back to
// the company id to keep the ordering stable across runs. Every company
// of the root table with a well-formed id is emitted, zero-valued
// metrics included. The builder is a pure function of the loaded
// tables, so repeated runs over unchanged input produce identical
// output.
func (a *Analyzer) BuildSummary() []SummaryRow {
	company := a.data.Table(TableCompany)
	if company == nil {
		return nil
	}

	seen := make(Set, company.Len())
	rows := make([]SummaryRow, 0, company.Len())
	for i := 0; i < company.Len(); i++ {
		id := company.Value(i, "CompanyID")
		if !a.companies.Has(id) || seen.Has(id) {
			continue
		}
		seen.Add(id)

		row := SummaryRow{
			CompanyID:   id,
			CompanyName: company.Value(i, "CompanyName"),
			Website:     company.Value(i, "Website"),
		}
		a.fillCategories(&row)
		a.fillAffiliations(&row)
		a.fillExpansions(&row)
		row.Deals = a.Connected(id, KindDeal).Len()
		row.Patents = a.Connected(id, KindPatent).Len()

		rows = append(rows, row)
	}

	sort.SliceStable(rows, func(i, j int) bool {
		if rows[i].CompanyName != rows[j].CompanyName {
			return rows[i].CompanyName < rows[j].CompanyName
		}
		return rows[i].CompanyID < rows[j].CompanyID
	})

	return rows
}

func (a *Analyzer) fillCategories(row *SummaryRow) {
	categories := a.classifier.Categories(row.CompanyID)
	row.Employees = categories.OnlyEmployees.Len()
	row.EmployeeBoardMembers = categories.EmployeeAndBoard.Len()
	row.OtherBoardMembers = categories.OnlyBoard.Len()

	board := a.classifier.BoardAt(row.CompanyID)
	row.InternationalBoardMembers, row.NullCountryBoardMembers = a.personCountrySplit(board)
}

func (a *Analyzer) fillAffiliations(row *SummaryRow) {
	id := row.CompanyID

	employee := a.EmployeeAffiliations(id)
	row.EmployeeAffiliations = employee.Total.Value()
	row.InternationalEmployeeAffiliations = employee.International.Value()
	row.NullCountryEmployeeAffiliations = employee.NullCountry

	affiliates := a.Connected(id, KindAffiliate)
	affiliate := a.Affiliations(id, KindAffiliate)
	row.Affiliates = affiliates.Len()
	row.AffiliateAffiliations = affiliate.Total.Value()
	row.InternationalAffiliateAffiliations = affiliate.International.Value()
	row.NullCountryAffiliateAffiliations = affiliate.NullCountry
	row.InternationalAffiliates = a.foreignAffiliates(id)

	leadPartners := a.Connected(id, KindLeadPartner)
	leadPartner := a.Affiliations(id, KindLeadPartner)
	row.LeadPartners = leadPartners.Len()
	row.LeadPartnerAffiliations = leadPartner.Total.Value()
	row.InternationalLeadPartnerAffiliations = leadPartner.International.Value()
	row.NullCountryLeadPartnerAffiliations = leadPartner.NullCountry
	row.InternationalLeadPartners, _ = a.investorCountrySplit(leadPartners)

	investors := a.Connected(id, KindInvestor)
	investor := a.Affiliations(id, KindInvestor)
	row.Investors = investors.Len()
	row.InvestorAffiliations = investor.Total.Value()
	row.InternationalInvestorAffiliations = investor.International.Value()
	row.NullCountryInvestorAffiliations = investor.NullCountry
	row.InternationalInvestors, row.NullCountryInvestors = a.investorCountrySplit(investors)

	providers := a.Connected(id, KindServiceProvider)
	provider := a.Affiliations(id, KindServiceProvider)
	row.ServiceProviders = providers.Len()
	row.ServiceProviderAffiliations = provider.Total.Value()
	row.InternationalServiceProviderAffiliations = provider.International.Value()
	row.NullCountryServiceProviderAffiliations = provider.NullCountry
	row.InternationalServiceProviders, row.NullCountryServiceProviders = a.serviceProviderCountrySplit(providers)

	limited := a.LimitedPartnerAffiliations(id)
	row.LimitedPartnerAffiliations = limited.Total
	row.InternationalLimitedPartnerAffiliations = limited.International
	row.NullCountryLimitedPartnerAffiliations = limited.NullCountry
}

func (a *Analyzer) fillExpansions(row *SummaryRow) {
	second := a.SecondLevelPeople(row.CompanyID)
	row.SecondLevelPeople = second.People.Value()
	row.InternationalSecondLevelPeople = second.International.Value()
	row.NullCountrySecondLevelPeople = second.NullCountry

	deal := a.DealLevelPeople(row.CompanyID)
	row.DealLevelPeople = deal.People.Value()
	row.InternationalDealLevelPeople = deal.International.Value()
	row.NullCountryDealLevelPeople = deal.NullCountry
}

// SummaryStats aggregates the summary rows for the console report.
type SummaryStats struct {
	Companies        int
	WithInvestors    int
	WithBoardMembers int
	WithDeals        int

	Investors         int
	BoardMembers      int
	SecondLevelPeople int
	DealLevelPeople   int
	Deals             int
	Patents           int

	NullCountryBoardMembers     int
	NullCountryInvestors        int
	NullCountryServiceProviders int
}

// Summarize computes column totals and coverage counts over the rows.
func Summarize(rows []SummaryRow) SummaryStats {
	var stats SummaryStats
	stats.Companies = len(rows)
	for _, row := range rows {
		if row.Investors > 0 {
			stats.WithInvestors++
		}
		boardMembers := row.EmployeeBoardMembers + row.OtherBoardMembers
		if boardMembers > 0 {
			stats.WithBoardMembers++
		}
		if row.Deals > 0 {
			stats.WithDeals++
		}

		stats.Investors += row.Investors
		stats.BoardMembers += boardMembers
		stats.SecondLevelPeople += row.SecondLevelPeople
		stats.DealLevelPeople += row.DealLevelPeople
		stats.Deals += row.Deals
		stats.Patents += row.Patents

		stats.NullCountryBoardMembers += row.NullCountryBoardMembers
		stats.NullCountryInvestors += row.NullCountryInvestors
		stats.NullCountryServiceProviders += row.NullCountryServiceProviders
	}
	return stats
}
