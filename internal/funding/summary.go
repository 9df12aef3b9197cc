// Package funding aggregates contributions into per-company totals and
// derives campaign progress from them. Every function is pure: callers pass
// the snapshot they fetched and get a freshly computed value back.
package funding

import (
	"sort"

	"github.com/samber/lo"

	"crowdfund/internal/domain"
)

// Summary maps a company name to the total raised for it. Companies without
// contributions are absent.
type Summary map[string]int64

// Entry is one company total in a Summary.
type Entry struct {
	Company string `json:"company"`
	Total   int64  `json:"total_invested"`
}

// Raised returns the total for company, zero when it has no contributions.
func (s Summary) Raised(company string) int64 {
	return s[company]
}

// Entries returns the summary sorted by company name.
func (s Summary) Entries() []Entry {
	entries := make([]Entry, 0, len(s))
	for company, total := range s {
		entries = append(entries, Entry{Company: company, Total: total})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Company < entries[j].Company })
	return entries
}

// CompanySet is a set of company names, typically the ones a creator owns.
type CompanySet map[string]struct{}

// NewCompanySet builds a set from names.
func NewCompanySet(names ...string) CompanySet {
	set := make(CompanySet, len(names))
	for _, name := range names {
		set[name] = struct{}{}
	}
	return set
}

// CompaniesOf returns the company names of campaigns.
func CompaniesOf(campaigns []domain.Campaign) CompanySet {
	return NewCompanySet(lo.Map(campaigns, func(c domain.Campaign, _ int) string { return c.Company })...)
}

// Has reports whether company is in the set.
func (s CompanySet) Has(company string) bool {
	_, ok := s[company]
	return ok
}

// SummarizeAll groups contributions by exact company name and sums their
// amounts. Amounts are summed as given, negative values included.
func SummarizeAll(contributions []domain.Contribution) Summary {
	summary := make(Summary)
	for _, c := range contributions {
		summary[c.Company] += c.Amount
	}
	return summary
}

// SummarizeForOwner is SummarizeAll restricted to contributions whose company
// is in owned. An empty owned set yields an empty summary without scanning.
func SummarizeForOwner(contributions []domain.Contribution, owned CompanySet) Summary {
	if len(owned) == 0 {
		return Summary{}
	}
	return SummarizeAll(lo.Filter(contributions, func(c domain.Contribution, _ int) bool {
		return owned.Has(c.Company)
	}))
}

// TotalRaised sums every total in s.
func TotalRaised(s Summary) int64 {
	return lo.Sum(lo.Values(s))
}
