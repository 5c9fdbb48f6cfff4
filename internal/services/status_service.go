package services

import (
	"context"
	"fmt"

	"portfolio_api/internal/database"
	"portfolio_api/internal/utils"
)

const (
	maxListedCollections = 10
	maxErrorText         = 50
)

// StatusReport describes whether the backend and its database are reachable.
type StatusReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}

// StatusService builds the connectivity diagnostic. The configuration checks
// (is a URL / name set) are reported separately from whether the store works.
type StatusService struct {
	store          database.DocumentStore
	urlConfigured  bool
	nameConfigured bool
}

func NewStatusService(store database.DocumentStore, urlConfigured, nameConfigured bool) *StatusService {
	return &StatusService{
		store:          store,
		urlConfigured:  urlConfigured,
		nameConfigured: nameConfigured,
	}
}

// Report never fails; store errors become text in the Database field.
func (s *StatusService) Report(ctx context.Context) (report StatusReport) {
	report = StatusReport{
		Backend:          "✅ Running",
		Database:         "❌ Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	defer func() {
		if r := recover(); r != nil {
			report.Database = "❌ Error: " + utils.Truncate(fmt.Sprint(r), maxErrorText)
		}
		report.DatabaseURL = setOrNot(s.urlConfigured)
		report.DatabaseName = setOrNot(s.nameConfigured)
	}()

	if s.store == nil {
		report.Database = "⚠️  Available but not initialized"
		return report
	}

	report.Database = "✅ Available"
	report.ConnectionStatus = "Connected"

	names, err := s.store.ListCollectionNames(ctx)
	if err != nil {
		report.Database = "⚠️  Connected but Error: " + utils.Truncate(err.Error(), maxErrorText)
		return report
	}
	if len(names) > maxListedCollections {
		names = names[:maxListedCollections]
	}
	if names != nil {
		report.Collections = names
	}
	report.Database = "✅ Connected & Working"

	return report
}

func setOrNot(ok bool) string {
	if ok {
		return "✅ Set"
	}
	return "❌ Not Set"
}
