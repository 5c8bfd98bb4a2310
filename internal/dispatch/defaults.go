// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package dispatch

import (
	"time"

	"certscan/internal/config"
	"certscan/internal/rulesets/alternatename"
	"certscan/internal/rulesets/authority"
	"certscan/internal/rulesets/bylaws"
	"certscan/internal/rulesets/formation"
	"certscan/internal/rulesets/goodstanding"
	"certscan/internal/rulesets/incorporation"
	"certscan/internal/rulesets/irsdetermination"
	"certscan/internal/rulesets/operatingagreement"
	"certscan/internal/rulesets/taxclearance"
	"certscan/internal/rulesets/tradename"
)

// DefaultRegistry builds a registry with every supported document type,
// applying the configured checklist options.
func DefaultRegistry(cfg *config.Config) *Registry {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	formationOpts := formation.Options{
		RequireEntityID:        cfg.Rulesets.Formation.RequireEntityID,
		RequireRegisteredAgent: cfg.Rulesets.Formation.RequireRegisteredAgent,
	}

	window := cfg.Defaults.WindowMonths
	if window <= 0 {
		window = config.DefaultConfig().Defaults.WindowMonths
	}

	r := NewRegistry()
	r.Register(TaxClearanceOnline, taxclearance.NewValidator(taxclearance.Online).WithWindowMonths(window))
	r.Register(TaxClearanceManual, taxclearance.NewValidator(taxclearance.Manual).WithWindowMonths(window))
	r.Register(CertAlternativeName, alternatename.NewValidator())
	r.Register(CertTradeName, tradename.NewValidator())
	r.Register(CertFormation, formation.NewValidator(formation.Standard, formationOpts))
	r.Register(CertFormationIndependent, formation.NewValidator(formation.Independent, formationOpts))
	r.Register(CertGoodStandingLong, goodstanding.NewValidator(goodstanding.Long).WithWindowMonths(window))
	r.Register(CertGoodStandingShort, goodstanding.NewValidator(goodstanding.Short).WithWindowMonths(window))
	r.Register(OperatingAgreement, operatingagreement.NewValidator())
	r.Register(CertIncorporation, incorporation.NewValidator())
	r.Register(IRSDetermination, irsdetermination.NewValidator())
	r.Register(Bylaws, bylaws.NewValidator())
	r.Register(CertAuthority, authority.NewValidator(authority.Manual))
	r.Register(CertAuthorityAuto, authority.NewValidator(authority.Auto))
	return r
}

// WithClock fixes "now" on every registered rule set that performs a
// recency check. Used by tests.
func (r *Registry) WithClock(now func() time.Time) *Registry {
	for _, rs := range r.rulesets {
		switch v := rs.(type) {
		case *taxclearance.Validator:
			v.WithClock(now)
		case *goodstanding.Validator:
			v.WithClock(now)
		}
	}
	return r
}
