package analysis

// RelationKind parameterizes the per-kind aggregation: which relation
// table connects companies to the kind's entities, and which columns
// carry the two ids. One routine serves investors, service providers,
// lead partners and affiliates.
type RelationKind struct {
	Name          string
	Table         string
	SubjectColumn string
	ObjectColumn  string
}

var (
	KindInvestor = RelationKind{
		Name:          "investor",
		Table:         TableCompanyInvestor,
		SubjectColumn: "CompanyID",
		ObjectColumn:  "InvestorID",
	}
	KindServiceProvider = RelationKind{
		Name:          "service provider",
		Table:         TableCompanyServiceProvider,
		SubjectColumn: "CompanyID",
		ObjectColumn:  "ServiceProviderID",
	}
	KindLeadPartner = RelationKind{
		Name:          "lead partner",
		Table:         TableCompanyLeadPartner,
		SubjectColumn: "CompanyID",
		ObjectColumn:  "LeadPartnerID",
	}
	KindAffiliate = RelationKind{
		Name:          "affiliate",
		Table:         TableCompanyAffiliate,
		SubjectColumn: "CompanyID",
		ObjectColumn:  "AffiliateID",
	}
	KindDeal = RelationKind{
		Name:          "deal",
		Table:         TableDeal,
		SubjectColumn: "CompanyID",
		ObjectColumn:  "DealID",
	}
	KindPatent = RelationKind{
		Name:          "patent",
		Table:         TableCompanyPatent,
		SubjectColumn: "CompanyID",
		ObjectColumn:  "PatentID",
	}
)

// AffiliationCounts are the outside positions held by a company's
// connected entities of one kind.
type AffiliationCounts struct {
	Total         Metric
	International Metric
	NullCountry   Metric
}

// Affiliations counts the positions that the entities connected to
// companyID through the given kind hold at other entities. Positions
// pointing back at the originating company are excluded. The connected
// entities' own ids are looked up in the position relation's subject
// space: the export assigns positions to any entity id regardless of
// type, so investor firms appear there alongside people.
//
// The international sub-count uses the entity-type allow-list, not HQ
// country. The null-country sub-count has no join path in the export
// and is marked not computable.
func (a *Analyzer) Affiliations(companyID string, kind RelationKind) AffiliationCounts {
	entities := a.Connected(companyID, kind)

	total := 0
	international := 0
	for id := range entities {
		for _, position := range a.positions.ByPerson(id) {
			if position.EntityID == companyID {
				continue
			}
			total++
			if IsForeignByEntityType(position.EntityType) {
				international++
			}
		}
	}

	return AffiliationCounts{
		Total:         Count(total),
		International: Count(international),
		NullCountry:   NotComputable(),
	}
}

// EmployeeAffiliations counts the positions that people linked to the
// company also hold elsewhere. Linked means holding a position or a
// board seat there, so board-only members contribute their outside
// positions too.
func (a *Analyzer) EmployeeAffiliations(companyID string) AffiliationCounts {
	total := 0
	international := 0
	linked := Union(a.classifier.PositionsAt(companyID), a.classifier.BoardAt(companyID))
	for person := range linked {
		for _, position := range a.positions.ByPerson(person) {
			if position.EntityID == companyID {
				continue
			}
			total++
			if IsForeignByEntityType(position.EntityType) {
				international++
			}
		}
	}

	return AffiliationCounts{
		Total:         Count(total),
		International: Count(international),
		NullCountry:   NotComputable(),
	}
}

// LimitedPartnerAffiliations is not computable: the export has no
// loadable fund-to-company path, so limited partners cannot be tied to
// a company at all.
func (a *Analyzer) LimitedPartnerAffiliations(companyID string) AffiliationCounts {
	return AffiliationCounts{
		Total:         NotComputable(),
		International: NotComputable(),
		NullCountry:   NotComputable(),
	}
}
