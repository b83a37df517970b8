package domain

// ResourceKind identifies one independently fetched remote resource class.
type ResourceKind string

const (
	ResourceAccounts     ResourceKind = "accounts"
	ResourceCategories   ResourceKind = "categories"
	ResourceAnalytics    ResourceKind = "analytics"
	ResourceTransactions ResourceKind = "transactions"
	ResourceSavings      ResourceKind = "savings"
)

// AllResourceKinds lists every kind, in fetch order for the initial load.
var AllResourceKinds = []ResourceKind{
	ResourceAccounts,
	ResourceCategories,
	ResourceAnalytics,
	ResourceTransactions,
	ResourceSavings,
}

// PeriodScopedKinds are re-fetched on every period change.
var PeriodScopedKinds = []ResourceKind{
	ResourceAnalytics,
	ResourceTransactions,
}

// PeriodScoped reports whether snapshots of this kind are keyed by period.
func (k ResourceKind) PeriodScoped() bool {
	return k == ResourceAnalytics || k == ResourceTransactions
}

// Known reports whether k names a real resource kind.
func (k ResourceKind) Known() bool {
	switch k {
	case ResourceAccounts, ResourceCategories, ResourceAnalytics, ResourceTransactions, ResourceSavings:
		return true
	}
	return false
}
