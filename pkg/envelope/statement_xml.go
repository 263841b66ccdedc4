// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package envelope

import (
	"fmt"
	"strconv"

	"github.com/beevik/etree"

	"github.com/mfrntic/eudr-api-client-sub000/pkg/statement"
)

// writeStatement serializes a statement under parent using the model
// namespace prefix. The element order matches the schema sequence for
// the statement complex type and must not be rearranged. Repeatable
// fields are emitted as repeated siblings, never wrapped in a synthetic
// list element.
func writeStatement(parent *etree.Element, stmt *statement.Statement, w *warnings) {
	parent.CreateElement("v11:internalReferenceNumber").SetText(stmt.InternalReferenceNumber)
	parent.CreateElement("v11:activityType").SetText(stmt.ActivityType)

	if stmt.Operator != nil {
		writeOperator(parent.CreateElement("v11:operator"), stmt.Operator)
	}

	parent.CreateElement("v11:countryOfActivity").SetText(stmt.CountryOfActivity)
	if stmt.BorderCrossCountry != "" {
		parent.CreateElement("v11:borderCrossCountry").SetText(stmt.BorderCrossCountry)
	}
	if stmt.Comment != "" {
		parent.CreateElement("v11:comment").SetText(stmt.Comment)
	}

	for i := range stmt.Commodities {
		writeCommodity(parent.CreateElement("v11:commodities"), i, &stmt.Commodities[i], w)
	}

	parent.CreateElement("v11:geoLocationConfidential").SetText(strconv.FormatBool(stmt.GeoLocationConfidential))

	for _, as := range stmt.AssociatedStatements {
		elem := parent.CreateElement("v11:associatedStatements")
		elem.CreateElement("v11:referenceNumber").SetText(as.ReferenceNumber)
		elem.CreateElement("v11:verificationNumber").SetText(as.VerificationNumber)
	}
}

func writeOperator(parent *etree.Element, op *statement.Operator) {
	for _, id := range op.Identifier {
		elem := parent.CreateElement("v11:identifier")
		elem.CreateElement("v11:identifierType").SetText(id.Type)
		elem.CreateElement("v11:identifierValue").SetText(id.Value)
	}
	parent.CreateElement("v11:name").SetText(op.Name)
	parent.CreateElement("v11:country").SetText(op.Country)
	if op.Address != "" {
		parent.CreateElement("v11:address").SetText(op.Address)
	}
	if op.Email != "" {
		parent.CreateElement("v11:email").SetText(op.Email)
	}
	if op.Phone != "" {
		parent.CreateElement("v11:phone").SetText(op.Phone)
	}
}

func writeCommodity(parent *etree.Element, index int, c *statement.Commodity, w *warnings) {
	parent.CreateElement("v11:descriptionOfGoods").SetText(c.DescriptionOfGoods)
	writeGoodsMeasure(parent.CreateElement("v11:goodsMeasure"), &c.GoodsMeasure)
	parent.CreateElement("v11:hsHeading").SetText(c.HsHeading)

	for _, sp := range c.SpeciesInfo {
		elem := parent.CreateElement("v11:speciesInfo")
		elem.CreateElement("v11:scientificName").SetText(sp.ScientificName)
		elem.CreateElement("v11:commonName").SetText(sp.CommonName)
	}

	for j, pr := range c.Producers {
		elem := parent.CreateElement("v11:producers")
		elem.CreateElement("v11:country").SetText(pr.Country)
		elem.CreateElement("v11:name").SetText(pr.Name)
		if pr.Geometry != nil {
			value, ok := pr.Geometry.Encode()
			if !ok {
				w.add(fmt.Sprintf("commodities[%d].producers[%d].geometryGeojson", index, j),
					"geometry is not recognizable JSON; value sent unchanged")
			}
			elem.CreateElement("v11:geometryGeojson").SetText(value)
		}
	}
}

// writeGoodsMeasure emits the unit-of-measure block in schema order:
// volume, netWeight, supplementaryUnit, supplementaryUnitQualifier,
// percentageEstimationOrDeviation. Absent optionals are omitted.
func writeGoodsMeasure(parent *etree.Element, gm *statement.GoodsMeasure) {
	if gm.Volume != nil {
		parent.CreateElement("v11:volume").SetText(formatDecimal(*gm.Volume))
	}
	if gm.NetWeight != nil {
		parent.CreateElement("v11:netWeight").SetText(formatDecimal(*gm.NetWeight))
	}
	if gm.SupplementaryUnit != nil {
		parent.CreateElement("v11:supplementaryUnit").SetText(formatDecimal(*gm.SupplementaryUnit))
	}
	if gm.SupplementaryUnitQualifier != "" {
		parent.CreateElement("v11:supplementaryUnitQualifier").SetText(gm.SupplementaryUnitQualifier)
	}
	if gm.PercentageEstimationOrDeviation != nil {
		parent.CreateElement("v11:percentageEstimationOrDeviation").SetText(formatDecimal(*gm.PercentageEstimationOrDeviation))
	}
}

func formatDecimal(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
