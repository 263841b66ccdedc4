package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/fault"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/statement"
)

func f(v float64) *float64 { return &v }

func validStatement(activity string) *statement.Statement {
	return &statement.Statement{
		InternalReferenceNumber: "REF-001",
		ActivityType:            activity,
		CountryOfActivity:       "HR",
		Commodities: []statement.Commodity{
			{
				DescriptionOfGoods: "Sawn oak boards",
				HsHeading:          "4407",
				GoodsMeasure: statement.GoodsMeasure{
					NetWeight:                  f(1200),
					SupplementaryUnit:          f(4.5),
					SupplementaryUnitQualifier: "MTQ",
				},
			},
		},
	}
}

func TestValidate_PassingImport(t *testing.T) {
	assert.Nil(t, Validate(validStatement(statement.ActivityImport)))
}

func TestValidate_NilStatement(t *testing.T) {
	se := Validate(nil)
	require.NotNil(t, se)
	assert.Equal(t, fault.CodeValidation, se.Code)
}

func TestValidate_StructuralViolation(t *testing.T) {
	stmt := validStatement(statement.ActivityImport)
	stmt.InternalReferenceNumber = ""

	se := Validate(stmt)
	require.NotNil(t, se)
	assert.Equal(t, fault.CodeValidation, se.Code)
	assert.Contains(t, se.Field, "InternalReferenceNumber")
}

func TestValidate_ImportExportRules(t *testing.T) {
	t.Run("missing net mass", func(t *testing.T) {
		stmt := validStatement(statement.ActivityImport)
		stmt.Commodities[0].GoodsMeasure.NetWeight = nil

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodeNetMassEmpty, se.Code)
	})

	t.Run("supplementary unit missing for mandatory heading", func(t *testing.T) {
		stmt := validStatement(statement.ActivityImport)
		stmt.Commodities[0].HsHeading = "4701"
		stmt.Commodities[0].GoodsMeasure.SupplementaryUnit = nil
		stmt.Commodities[0].GoodsMeasure.SupplementaryUnitQualifier = ""

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodeSupplementaryUnitMissing, se.Code)
	})

	t.Run("wrong qualifier for mandatory heading", func(t *testing.T) {
		stmt := validStatement(statement.ActivityExport)
		stmt.Commodities[0].GoodsMeasure.SupplementaryUnitQualifier = "NAR"

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodeSupplementaryQualifierValue, se.Code)
	})

	t.Run("supplementary unit forbidden outside mandatory set", func(t *testing.T) {
		stmt := validStatement(statement.ActivityImport)
		stmt.Commodities[0].HsHeading = "4401"

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodeSupplementaryUnitForbidden, se.Code)
	})

	t.Run("estimation percentage forbidden", func(t *testing.T) {
		stmt := validStatement(statement.ActivityExport)
		stmt.Commodities[0].GoodsMeasure.PercentageEstimationOrDeviation = f(10)

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodePercentageEstimationIllegal, se.Code)
	})
}

func TestValidate_DomesticTradeRules(t *testing.T) {
	base := func() *statement.Statement {
		stmt := validStatement(statement.ActivityDomestic)
		stmt.Commodities[0].GoodsMeasure = statement.GoodsMeasure{NetWeight: f(500)}
		return stmt
	}

	t.Run("passing with net mass only", func(t *testing.T) {
		assert.Nil(t, Validate(base()))
	})

	t.Run("no quantity at all", func(t *testing.T) {
		stmt := base()
		stmt.Commodities[0].GoodsMeasure.NetWeight = nil

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodeNetMassOrSupplementaryUnit, se.Code)
	})

	t.Run("unit without qualifier", func(t *testing.T) {
		stmt := base()
		stmt.Commodities[0].GoodsMeasure.SupplementaryUnit = f(3)

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodeSupplementaryQualifierPaired, se.Code)
	})

	t.Run("qualifier without unit", func(t *testing.T) {
		stmt := base()
		stmt.Commodities[0].GoodsMeasure.SupplementaryUnitQualifier = "MTQ"

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodeSupplementaryQualifierPaired, se.Code)
	})

	t.Run("unknown qualifier", func(t *testing.T) {
		stmt := base()
		stmt.Commodities[0].GoodsMeasure.SupplementaryUnit = f(3)
		stmt.Commodities[0].GoodsMeasure.SupplementaryUnitQualifier = "XYZ"

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodeSupplementaryQualifierValue, se.Code)
	})

	t.Run("estimation percentage above bound", func(t *testing.T) {
		stmt := base()
		stmt.Commodities[0].GoodsMeasure.PercentageEstimationOrDeviation = f(30)

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodePercentageEstimationInvalid, se.Code)
	})

	t.Run("estimation percentage at upper bound", func(t *testing.T) {
		stmt := base()
		stmt.Commodities[0].GoodsMeasure.PercentageEstimationOrDeviation = f(25)
		assert.Nil(t, Validate(stmt))
	})

	t.Run("negative estimation percentage", func(t *testing.T) {
		stmt := base()
		stmt.Commodities[0].GoodsMeasure.PercentageEstimationOrDeviation = f(-1)

		se := Validate(stmt)
		require.NotNil(t, se)
		assert.Equal(t, fault.CodePercentageEstimationInvalid, se.Code)
	})
}

func TestValidate_FirstViolationWins(t *testing.T) {
	stmt := validStatement(statement.ActivityImport)
	// Second commodity violates too, but the first one is reported.
	stmt.Commodities = append(stmt.Commodities, stmt.Commodities[0])
	stmt.Commodities[0].GoodsMeasure.NetWeight = nil
	stmt.Commodities[1].GoodsMeasure.PercentageEstimationOrDeviation = f(99)

	se := Validate(stmt)
	require.NotNil(t, se)
	assert.Equal(t, fault.CodeNetMassEmpty, se.Code)
	assert.Contains(t, se.Field, "commodities[0]")
}
