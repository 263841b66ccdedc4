// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

// Package validation evaluates the TRACES business rules for Due Diligence
// Statements before any network call is made.
//
// Validation is a pure function of the statement: commodities are walked in
// declaration order and the first rule violation is reported as a
// *fault.StructuredError with a stable symbolic code. A passing statement
// yields nil and serialization proceeds. Invalid statements therefore never
// reach the network.
//
// Structural checks (required fields, enumerations, formats) run through
// go-playground/validator struct tags; the conditional unit-of-measure
// rules, which cross-reference activity type, HS heading and several
// GoodsMeasure fields at once, are evaluated by the rule table in this
// file.
package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/fault"
	"github.com/mfrntic/eudr-api-client-sub000/pkg/statement"
)

// percentageEstimationMax caps percentageEstimationOrDeviation for
// Domestic/Trade statements. The enforcing TRACES rule rejects anything
// above 25 even though older message text still mentions 50.
const (
	percentageEstimationMin = 0.0
	percentageEstimationMax = 25.0
)

var structural = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a statement against the structural schema and the
// activity-type rule table. It returns the first violation found, or nil.
func Validate(stmt *statement.Statement) *fault.StructuredError {
	if stmt == nil {
		return fault.Validation(fault.CodeValidation, "statement", "statement is required")
	}

	if err := structural.Struct(stmt); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			first := errs[0]
			return fault.Validation(fault.CodeValidation, first.Namespace(),
				fmt.Sprintf("field fails %q constraint", first.Tag()))
		}
		return fault.Validation(fault.CodeValidation, "statement", err.Error())
	}

	switch stmt.ActivityType {
	case statement.ActivityImport, statement.ActivityExport:
		return validateImportExport(stmt)
	case statement.ActivityDomestic, statement.ActivityTrade:
		return validateDomesticTrade(stmt)
	default:
		return fault.Validation(fault.CodeActivityTypeInvalid, "activityType",
			fmt.Sprintf("unknown activity type %q", stmt.ActivityType))
	}
}

// validateImportExport enforces the Import/Export column of the rule
// table: net mass mandatory, supplementary unit mandatory exactly when the
// HS heading demands one, estimation percentage forbidden.
func validateImportExport(stmt *statement.Statement) *fault.StructuredError {
	for i := range stmt.Commodities {
		c := &stmt.Commodities[i]
		gm := &c.GoodsMeasure

		if gm.NetWeight == nil {
			return fault.Validation(fault.CodeNetMassEmpty,
				commodityField(i, "netWeight"),
				"net mass is mandatory for Import/Export statements")
		}

		unit, required := RequiredSupplementaryUnit(c.HsHeading)
		if required {
			if gm.SupplementaryUnit == nil || gm.SupplementaryUnitQualifier == "" {
				return fault.Validation(fault.CodeSupplementaryUnitMissing,
					commodityField(i, "supplementaryUnit"),
					fmt.Sprintf("HS heading %s requires a supplementary unit in %s", c.HsHeading, unit))
			}
			if gm.SupplementaryUnitQualifier != unit {
				return fault.Validation(fault.CodeSupplementaryQualifierValue,
					commodityField(i, "supplementaryUnitQualifier"),
					fmt.Sprintf("HS heading %s requires qualifier %s, got %s", c.HsHeading, unit, gm.SupplementaryUnitQualifier))
			}
		} else if gm.SupplementaryUnit != nil || gm.SupplementaryUnitQualifier != "" {
			return fault.Validation(fault.CodeSupplementaryUnitForbidden,
				commodityField(i, "supplementaryUnit"),
				fmt.Sprintf("HS heading %s does not admit a supplementary unit", c.HsHeading))
		}

		if gm.PercentageEstimationOrDeviation != nil {
			return fault.Validation(fault.CodePercentageEstimationIllegal,
				commodityField(i, "percentageEstimationOrDeviation"),
				"estimation percentage is not allowed for Import/Export statements")
		}
	}
	return nil
}

// validateDomesticTrade enforces the Domestic/Trade column: at least one
// quantity, qualifier paired with the unit, bounded estimation percentage.
func validateDomesticTrade(stmt *statement.Statement) *fault.StructuredError {
	for i := range stmt.Commodities {
		c := &stmt.Commodities[i]
		gm := &c.GoodsMeasure

		if gm.NetWeight == nil && gm.SupplementaryUnit == nil {
			return fault.Validation(fault.CodeNetMassOrSupplementaryUnit,
				commodityField(i, "goodsMeasure"),
				"either net mass or supplementary unit must be declared")
		}

		hasUnit := gm.SupplementaryUnit != nil
		hasQualifier := gm.SupplementaryUnitQualifier != ""
		if hasUnit != hasQualifier {
			return fault.Validation(fault.CodeSupplementaryQualifierPaired,
				commodityField(i, "supplementaryUnitQualifier"),
				"supplementary unit and qualifier must be declared together")
		}
		if hasQualifier && !IsValidQualifier(gm.SupplementaryUnitQualifier) {
			return fault.Validation(fault.CodeSupplementaryQualifierValue,
				commodityField(i, "supplementaryUnitQualifier"),
				fmt.Sprintf("%q is not an accepted supplementary unit qualifier", gm.SupplementaryUnitQualifier))
		}

		if p := gm.PercentageEstimationOrDeviation; p != nil {
			if *p < percentageEstimationMin || *p > percentageEstimationMax {
				return fault.Validation(fault.CodePercentageEstimationInvalid,
					commodityField(i, "percentageEstimationOrDeviation"),
					fmt.Sprintf("estimation percentage must lie within %g-%g, got %g",
						percentageEstimationMin, percentageEstimationMax, *p))
			}
		}
	}
	return nil
}

func commodityField(i int, name string) string {
	return fmt.Sprintf("commodities[%d].goodsMeasure.%s", i, name)
}
