// FILE: lixenwraith/promconf/policy.go
package promconf

// IndicesOptions is the fully-specified index resolution policy derived from
// the selected IndexFilterOption. It tells the metrics collector how index
// names, aliases, and wildcard expressions are matched against the cluster.
// The struct is a plain comparable value; it carries no state of its own.
type IndicesOptions struct {
	// IgnoreUnavailable skips named indices that are missing or closed
	// instead of failing the whole resolution.
	IgnoreUnavailable bool

	// AllowNoIndices accepts wildcard expressions that resolve to nothing.
	AllowNoIndices bool

	// ExpandOpen, ExpandClosed and ExpandHidden control which index states
	// wildcard expressions expand to. All false means no expansion at all.
	ExpandOpen   bool
	ExpandClosed bool
	ExpandHidden bool

	// ForbidClosedIndices rejects resolutions that include a closed index.
	ForbidClosedIndices bool

	// IgnoreThrottled silently drops throttled indices from the resolution.
	IgnoreThrottled bool

	// AllowAliasesToMultipleIndices permits an alias to resolve to more than
	// one index. Only the single-index option forbids it.
	AllowAliasesToMultipleIndices bool
}

// indexResolutionPolicies maps every IndexFilterOption to its policy. The
// array is sized by the enum, so declaring a new option grows the table; the
// coverage test fails on any slot left at the zero value.
var indexResolutionPolicies = [numIndexFilterOptions]IndicesOptions{
	StrictExpandOpen: {
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		AllowAliasesToMultipleIndices: true,
	},
	StrictExpandOpenHidden: {
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		ExpandHidden:                  true,
		AllowAliasesToMultipleIndices: true,
	},
	StrictExpandOpenForbidClosed: {
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		ForbidClosedIndices:           true,
		AllowAliasesToMultipleIndices: true,
	},
	StrictExpandOpenForbidClosedIgnoreThrottled: {
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		ForbidClosedIndices:           true,
		IgnoreThrottled:               true,
		AllowAliasesToMultipleIndices: true,
	},
	StrictExpandOpenClosed: {
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		ExpandClosed:                  true,
		AllowAliasesToMultipleIndices: true,
	},
	StrictExpandOpenClosedHidden: {
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		ExpandClosed:                  true,
		ExpandHidden:                  true,
		AllowAliasesToMultipleIndices: true,
	},
	StrictSingleIndexNoExpandForbidClosed: {
		ForbidClosedIndices: true,
	},
	LenientExpandOpen: {
		IgnoreUnavailable:             true,
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		AllowAliasesToMultipleIndices: true,
	},
	LenientExpandOpenHidden: {
		IgnoreUnavailable:             true,
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		ExpandHidden:                  true,
		AllowAliasesToMultipleIndices: true,
	},
	LenientExpandOpenClosed: {
		IgnoreUnavailable:             true,
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		ExpandClosed:                  true,
		AllowAliasesToMultipleIndices: true,
	},
	LenientExpandOpenClosedHidden: {
		IgnoreUnavailable:             true,
		AllowNoIndices:                true,
		ExpandOpen:                    true,
		ExpandClosed:                  true,
		ExpandHidden:                  true,
		AllowAliasesToMultipleIndices: true,
	},
}

// IndicesOptions resolves the option to its index resolution policy. The
// mapping is total over the declared options; there is no default branch.
func (o IndexFilterOption) IndicesOptions() IndicesOptions {
	return indexResolutionPolicies[o]
}
