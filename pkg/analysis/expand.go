package analysis

// ExpansionCounts are distinct people reached one hop beyond a
// company's direct relations.
type ExpansionCounts struct {
	People        Metric
	International Metric
	NullCountry   Metric
}

// SecondLevelPeople counts the distinct people holding positions at any
// entity connected to the company through its investor, service
// provider, lead partner and affiliate relations.
func (a *Analyzer) SecondLevelPeople(companyID string) ExpansionCounts {
	entities := make(Set)
	for _, kind := range []RelationKind{KindInvestor, KindServiceProvider, KindLeadPartner, KindAffiliate} {
		for id := range a.Connected(companyID, kind) {
			entities.Add(id)
		}
	}
	return a.peopleAt(entities)
}

// DealLevelPeople is the deal-seeded analogue of SecondLevelPeople: the
// connected-entity set is the investors and service providers that
// participated in the company's deals.
func (a *Analyzer) DealLevelPeople(companyID string) ExpansionCounts {
	deals := a.Connected(companyID, KindDeal)

	entities := make(Set)
	dealInvestors := a.grouped(TableDealInvestor, "DealID", "InvestorID")
	dealProviders := a.grouped(TableDealServiceProvider, "DealID", "ServiceProviderID")
	for deal := range deals {
		for id := range dealInvestors[deal] {
			entities.Add(id)
		}
		for id := range dealProviders[deal] {
			entities.Add(id)
		}
	}

	return a.peopleAt(entities)
}

// peopleAt counts distinct position holders across a set of entities.
// The international subset is people with at least one such position at
// an allow-listed entity type; per-person countries are not part of the
// position relation, so the null-country sub-count stays not computable.
func (a *Analyzer) peopleAt(entities Set) ExpansionCounts {
	people := make(Set)
	international := make(Set)
	for entity := range entities {
		for _, position := range a.positions.ByEntity(entity) {
			people.Add(position.PersonID)
			if IsForeignByEntityType(position.EntityType) {
				international.Add(position.PersonID)
			}
		}
	}

	return ExpansionCounts{
		People:        Count(people.Len()),
		International: Count(international.Len()),
		NullCountry:   NotComputable(),
	}
}
