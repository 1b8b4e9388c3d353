package validator

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

type priced struct {
	Name  string          `validate:"required"`
	Price decimal.Decimal `validate:"gte=0"`
}

func TestValidateStructPassesValidInput(t *testing.T) {
	errs := ValidateStruct(priced{Name: "Apple", Price: decimal.NewFromFloat(12.5)})
	assert.Empty(t, errs)
}

func TestValidateStructReportsMissingRequired(t *testing.T) {
	errs := ValidateStruct(priced{Price: decimal.NewFromInt(1)})
	assert.Len(t, errs, 1)
	assert.Equal(t, "required", errs[0].Tag)
}

func TestDecimalFieldsHonorNumericTags(t *testing.T) {
	errs := ValidateStruct(priced{Name: "Apple", Price: decimal.NewFromFloat(-0.01)})
	assert.Len(t, errs, 1)
	assert.Equal(t, "gte", errs[0].Tag)

	errs = ValidateStruct(priced{Name: "Apple", Price: decimal.Zero})
	assert.Empty(t, errs)
}
