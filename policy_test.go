// FILE: lixenwraith/promconf/policy_test.go
package promconf

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestIndexResolutionPolicyTable pins every option to its expected policy.
// The expectations are written out independently of the production table so
// an accidental edit to either side fails here.
func TestIndexResolutionPolicyTable(t *testing.T) {
	expected := map[IndexFilterOption]IndicesOptions{
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

	require.Len(t, expected, len(Options()), "expectation table out of sync with declared options")

	for opt, want := range expected {
		assert.Equal(t, want, opt.IndicesOptions(), "policy for %s", opt)
	}
}

// TestPolicyCoverage checks that the mapping is total: every declared option
// resolves to a policy that was deliberately filled in.
func TestPolicyCoverage(t *testing.T) {
	for _, opt := range Options() {
		assert.NotEqual(t, IndicesOptions{}, opt.IndicesOptions(),
			"option %s maps to a zero policy, table slot left unfilled", opt)
	}
}

// TestPolicyDistinctness checks that no two options share a policy.
func TestPolicyDistinctness(t *testing.T) {
	byPolicy := make(map[IndicesOptions]IndexFilterOption)
	for _, opt := range Options() {
		policy := opt.IndicesOptions()
		if prev, dup := byPolicy[policy]; dup {
			t.Errorf("options %s and %s share policy %+v", prev, opt, policy)
		}
		byPolicy[policy] = opt
	}
	assert.Len(t, byPolicy, len(Options()))
}

// TestPolicyMatchesOptionName cross-checks each policy against the flags the
// option name promises.
func TestPolicyMatchesOptionName(t *testing.T) {
	for _, opt := range Options() {
		name := opt.String()
		policy := opt.IndicesOptions()

		assert.Equal(t, strings.HasPrefix(name, "LENIENT"), policy.IgnoreUnavailable,
			"%s: lenient options and only lenient options ignore unavailable indices", name)
		assert.Equal(t, strings.Contains(name, "HIDDEN"), policy.ExpandHidden,
			"%s: hidden flag", name)
		assert.Equal(t, strings.Contains(name, "FORBID_CLOSED"), policy.ForbidClosedIndices,
			"%s: forbid closed flag", name)
		assert.Equal(t, strings.Contains(name, "OPEN_CLOSED"), policy.ExpandClosed,
			"%s: closed expansion flag", name)
		assert.Equal(t, strings.Contains(name, "IGNORE_THROTTLED"), policy.IgnoreThrottled,
			"%s: throttled flag", name)
		assert.Equal(t, !strings.Contains(name, "SINGLE_INDEX"), policy.AllowAliasesToMultipleIndices,
			"%s: only the single index option pins aliases to one index", name)
		assert.Equal(t, strings.Contains(name, "NO_EXPAND"), !policy.ExpandOpen,
			"%s: open expansion flag", name)
	}
}
