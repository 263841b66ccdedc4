// Copyright (c) 2025 the eudr-api-client authors
// SPDX-License-Identifier: BSD-2-Clause

package client

import "github.com/mfrntic/eudr-api-client-sub000/pkg/response"

// SubmitResult is the outcome of a successful submission.
type SubmitResult struct {
	// DdsIdentifier is the service-assigned UUID of the statement. It is
	// the handle for amendment, retraction and info retrieval.
	DdsIdentifier string
}

// DdsInfo is the registration info of one submitted statement.
type DdsInfo struct {
	Identifier              string
	InternalReferenceNumber string

	// ReferenceNumber and VerificationNumber are assigned once the
	// statement reaches AVAILABLE status and are empty before that.
	ReferenceNumber    string
	VerificationNumber string
	Status             string
	Date               string
	UpdatedBy          string
}

func decodeDdsInfoList(node any) []DdsInfo {
	items := response.List(node, "statementInfo")
	infos := make([]DdsInfo, 0, len(items))
	for _, item := range items {
		infos = append(infos, DdsInfo{
			Identifier:              firstText(item, "identifier"),
			InternalReferenceNumber: response.Text(item, "internalReferenceNumber"),
			ReferenceNumber:         response.Text(item, "referenceNumber"),
			VerificationNumber:      response.Text(item, "verificationNumber"),
			Status:                  response.Text(item, "status"),
			Date:                    response.Text(item, "date"),
			UpdatedBy:               response.Text(item, "updatedBy"),
		})
	}
	return infos
}

// firstText reads a scalar that array normalization may have coerced to a
// single-element list. The identifier field is repeatable in operator
// blocks but scalar inside statementInfo.
func firstText(node any, key string) string {
	if s := response.Text(node, key); s != "" {
		return s
	}
	if list := response.List(node, key); len(list) > 0 {
		s, _ := list[0].(string)
		return s
	}
	return ""
}
