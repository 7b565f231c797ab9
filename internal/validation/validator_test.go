// Capital Recommender - UK Business Funding Recommendation Engine
// Copyright 2026 Sotiris Spyrou (sotirisspyrou-uk)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/sotirisspyrou-uk/capital-recommender

package validation

import (
	"strings"
	"testing"

	"github.com/sotirisspyrou-uk/capital-recommender/internal/recommend"
)

func TestValidateStructPasses(t *testing.T) {
	p := recommend.BusinessProfile{
		CompanyName:   "Acme Ltd",
		Sector:        "technology",
		Location:      "london",
		AnnualRevenue: 100_000,
		BusinessAge:   3,
		FundingAmount: 50_000,
	}
	if err := ValidateStruct(&p); err != nil {
		t.Fatalf("ValidateStruct() = %v, want nil", err)
	}
}

func TestValidateStructReportsJSONFieldNames(t *testing.T) {
	p := recommend.BusinessProfile{
		CompanyName: "Acme Ltd",
		Sector:      "technology",
		Location:    "london",
	}
	// FundingAmount zero violates gt=0.
	err := ValidateStruct(&p)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want error for zero funding amount")
	}

	errs := err.Errors()
	if len(errs) != 1 {
		t.Fatalf("Errors() = %d entries, want 1", len(errs))
	}
	if errs[0].Field() != "funding_amount" {
		t.Errorf("Field() = %q, want json tag name %q", errs[0].Field(), "funding_amount")
	}
	if errs[0].Tag() != "gt" {
		t.Errorf("Tag() = %q, want %q", errs[0].Tag(), "gt")
	}
	if !strings.Contains(errs[0].Error(), "funding_amount must be greater than 0") {
		t.Errorf("message = %q", errs[0].Error())
	}
}

func TestValidateStructMultipleErrors(t *testing.T) {
	p := recommend.BusinessProfile{
		AnnualRevenue: -5,
	}
	err := ValidateStruct(&p)
	if err == nil {
		t.Fatal("ValidateStruct() = nil, want errors")
	}
	if len(err.Errors()) < 4 {
		t.Errorf("Errors() = %d entries, want at least 4", len(err.Errors()))
	}
	if !strings.Contains(err.Error(), ";") {
		t.Errorf("combined Error() should join messages: %q", err.Error())
	}
}

func TestToAPIErrorSingle(t *testing.T) {
	p := recommend.BusinessProfile{
		CompanyName: "Acme Ltd",
		Sector:      "technology",
		Location:    "london",
	}
	apiErr := ValidateStruct(&p).ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	if apiErr.Details["field"] != "funding_amount" {
		t.Errorf("Details[field] = %v, want funding_amount", apiErr.Details["field"])
	}
}

func TestToAPIErrorMultiple(t *testing.T) {
	p := recommend.BusinessProfile{}
	apiErr := ValidateStruct(&p).ToAPIError()

	if apiErr.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q, want VALIDATION_ERROR", apiErr.Code)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok {
		t.Fatalf("Details[fields] has type %T", apiErr.Details["fields"])
	}
	if len(fields) < 4 {
		t.Errorf("fields = %d entries, want at least 4", len(fields))
	}
}

func TestValidatorSingleton(t *testing.T) {
	if GetValidator() != GetValidator() {
		t.Error("GetValidator() returned different instances")
	}
}
