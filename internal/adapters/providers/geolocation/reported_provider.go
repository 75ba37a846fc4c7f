package geolocation

import (
	"context"

	"github.com/zatekoja/hospital-locator/backend/internal/domain/entities"
	"github.com/zatekoja/hospital-locator/backend/internal/domain/providers"
)

// Report is a position reading forwarded by a client device. Lat and Lng are
// nil when the device sent no reading; ErrorCode carries the device's failure
// classification, if any.
type Report struct {
	Lat       *float64
	Lng       *float64
	ErrorCode string
}

// ReportedPositionProvider serves a single device-reported reading
type ReportedPositionProvider struct {
	report Report
}

// NewReportedPositionProvider creates a position provider for a device report
func NewReportedPositionProvider(report Report) providers.PositionProvider {
	return &ReportedPositionProvider{report: report}
}

// CurrentPosition returns the reported reading or its classified failure
func (p *ReportedPositionProvider) CurrentPosition(ctx context.Context) (*entities.Coordinates, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if p.report.ErrorCode != "" {
		return nil, providers.NewPositionError(entities.ParseLocationErrorKind(p.report.ErrorCode))
	}

	// A device that could not run geolocation at all sends nothing
	if p.report.Lat == nil && p.report.Lng == nil {
		return nil, providers.NewPositionError(entities.LocationUnsupported)
	}
	if p.report.Lat == nil || p.report.Lng == nil {
		return nil, providers.NewPositionError(entities.LocationPositionUnavailable)
	}

	return &entities.Coordinates{Lat: *p.report.Lat, Lng: *p.report.Lng}, nil
}
