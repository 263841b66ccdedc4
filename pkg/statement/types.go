// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

// Package statement defines the Due Diligence Statement domain model
// exchanged with the TRACES EUDR services.
//
// The model mirrors the remote XML Schema only to the depth needed for
// validation and serialization; it is not a general-purpose data store.
// Fields the schema marks as repeatable (commodities, producers, species
// info, associated statements, operator identifiers) are plain slices and
// are emitted as repeated sibling elements on the wire.
package statement

// Activity types accepted by the submission services.
const (
	ActivityImport   = "IMPORT"
	ActivityExport   = "EXPORT"
	ActivityDomestic = "DOMESTIC"
	ActivityTrade    = "TRADE"
)

// Operator type tags for submitDds.
const (
	OperatorTypeOperator = "OPERATOR"
	OperatorTypeTrader   = "TRADER"
)

// Statement is one Due Diligence Statement declaration payload. Instances
// are constructed by the caller per request and are not retained by the
// client after the call returns.
type Statement struct {
	InternalReferenceNumber string `validate:"required,max=50"`
	ActivityType            string `validate:"required,oneof=IMPORT EXPORT DOMESTIC TRADE"`
	Operator                *Operator
	CountryOfActivity       string `validate:"required,len=2"`
	BorderCrossCountry      string `validate:"omitempty,len=2"`
	Comment                 string

	Commodities []Commodity `validate:"required,min=1,dive"`

	// GeoLocationConfidential marks producer geolocation data as
	// commercially sensitive.
	GeoLocationConfidential bool

	// AssociatedStatements reference previously submitted statements
	// whose due diligence this one relies on.
	AssociatedStatements []AssociatedStatement
}

// Operator is the operator identity block of a statement.
type Operator struct {
	// Identifier entries are repeatable in the schema (EORI, VAT, ...).
	Identifier []OperatorIdentifier
	Name       string `validate:"required"`
	Country    string `validate:"required,len=2"`
	Address    string
	Email      string `validate:"omitempty,email"`
	Phone      string
}

// OperatorIdentifier is one registered identifier of the operator.
type OperatorIdentifier struct {
	Type  string // e.g. "eori", "vat"
	Value string
}

// Commodity is one declared commodity line.
type Commodity struct {
	DescriptionOfGoods string `validate:"required"`
	GoodsMeasure       GoodsMeasure
	HsHeading          string `validate:"required,min=4,max=8,numeric"`
	SpeciesInfo        []SpeciesInfo
	Producers          []Producer
}

// GoodsMeasure carries the unit-of-measure fields whose presence rules
// depend on the statement's activity type and the commodity's HS heading.
// Pointer fields distinguish absent from zero.
type GoodsMeasure struct {
	NetWeight                       *float64
	Volume                          *float64
	SupplementaryUnit               *float64
	SupplementaryUnitQualifier      string
	PercentageEstimationOrDeviation *float64
}

// SpeciesInfo names one species contained in a commodity.
type SpeciesInfo struct {
	ScientificName string
	CommonName     string
}

// Producer is one production place with its geolocation.
type Producer struct {
	Country  string
	Name     string
	Geometry *GeoJSON
}

// AssociatedStatement references a previously submitted statement.
type AssociatedStatement struct {
	ReferenceNumber    string
	VerificationNumber string
}
