package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/finbooks/fin_statements_app/internal/core/domain"
)

func TestGroupFor_MappedCategories(t *testing.T) {
	tests := []struct {
		category string
		expected domain.Group
	}{
		{"Revenue", domain.GroupRevenue},
		{"Other income", domain.GroupRevenue},
		{"Discounts received", domain.GroupRevenue},
		{"COGS", domain.GroupCOGS},
		{"Opening inventory", domain.GroupCOGS},
		{"Purchases", domain.GroupCOGS},
		{"Operating Expenses", domain.GroupOpEx},
		{"Selling expenses", domain.GroupOpEx},
		{"Administrative expenses", domain.GroupOpEx},
		{"Other operating expenses", domain.GroupOpEx},
		{"Interest income", domain.GroupOther},
		{"Interest expense", domain.GroupOther},
		{"Other income/expenses", domain.GroupOther},
		{"Tax", domain.GroupTax},
	}
	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.GroupFor(tc.category, domain.Expense))
		})
	}
}

func TestGroupFor_FallbackByKind(t *testing.T) {
	assert.Equal(t, domain.GroupRevenue, domain.GroupFor("Consulting fees", domain.Revenue))
	assert.Equal(t, domain.GroupOpEx, domain.GroupFor("Consulting fees", domain.Expense))
	assert.Equal(t, domain.GroupOpEx, domain.GroupFor("", domain.Expense))
}

func TestAssetBucketFor(t *testing.T) {
	tests := []struct {
		category string
		expected domain.AssetBucket
	}{
		{"Inventories", domain.BucketInventories},
		{"Opening stock", domain.BucketInventories},
		{"Trade receivables", domain.BucketReceivables},
		{"Cash at bank", domain.BucketCash},
		{"Bank account", domain.BucketCash},
		{"Petty cash", domain.BucketCash},
		{"Prepaid insurance", domain.BucketReceivables},
		{"", domain.BucketReceivables},
	}
	for _, tc := range tests {
		t.Run(tc.category, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.AssetBucketFor(tc.category))
		})
	}
}

func TestLiabilityBucketFor(t *testing.T) {
	assert.Equal(t, domain.BucketEquity, domain.LiabilityBucketFor("Share capital", domain.Equity))
	assert.Equal(t, domain.BucketEquity, domain.LiabilityBucketFor("Owner equity", domain.Liability))
	assert.Equal(t, domain.BucketShortTermDebts, domain.LiabilityBucketFor("Trade payables", domain.Liability))
	assert.Equal(t, domain.BucketShortTermDebts, domain.LiabilityBucketFor("VAT payable", domain.Liability))
}
