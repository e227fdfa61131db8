package eticket

//go:generate go run go.uber.org/mock/mockgen -source=./eticket.go -destination=./mocks/eticket_mock.go -package=mocks

import (
	"bytes"
	"context"
	"fmt"

	"chukchukgo/config"
	"chukchukgo/infras/otel"
	"chukchukgo/infras/s3"
	"chukchukgo/internal/domains/booking/model"
	"chukchukgo/shared/constant"

	"github.com/phpdave11/gofpdf"
	"github.com/rs/zerolog/log"
)

const archiveDirectory = "etickets"

// Service renders booking e-tickets and archives them to object storage.
type Service interface {
	Render(booking model.Booking) ([]byte, error)
	Archive(ctx context.Context, booking model.Booking) (url string, err error)
}

type serviceImpl struct {
	cfg  *config.Config
	s3   s3.S3
	otel otel.Otel
}

func New(cfg *config.Config, s3 s3.S3, otel otel.Otel) Service {
	return &serviceImpl{
		cfg:  cfg,
		s3:   s3,
		otel: otel,
	}
}

func (s *serviceImpl) Render(booking model.Booking) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 10, "E-TICKET")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)

	lines := []string{
		fmt.Sprintf("PNR           : %s", booking.PNR),
		fmt.Sprintf("Train         : %s - %s", booking.TrainNumber, booking.TrainName),
		fmt.Sprintf("From / To     : %s -> %s", booking.FromStation, booking.ToStation),
		fmt.Sprintf("Journey Date  : %s", booking.JourneyDate.Format(constant.JourneyDateFormat)),
		fmt.Sprintf("Departure     : %s", booking.DepartureTime),
		fmt.Sprintf("Arrival       : %s", booking.ArrivalTime),
		fmt.Sprintf("Class / Quota : %s / %s", booking.TravelClass, booking.Quota),
		fmt.Sprintf("Status        : %s", booking.BookingStatus),
		fmt.Sprintf("Total Fare    : %.2f", booking.TotalFare),
	}

	for _, line := range lines {
		pdf.Cell(0, 7, line)
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 7, "Passengers:")
	pdf.Ln(7)

	pdf.SetFont("Helvetica", "", 12)

	for _, p := range booking.Passengers {
		pdf.Cell(0, 7, fmt.Sprintf("%d. %s (%d/%s) - %s", p.Index+1, p.Name, p.Age, p.Gender, p.CurrentStatus))
		pdf.Ln(7)
	}

	pdf.Ln(6)
	pdf.SetFont("Helvetica", "I", 10)
	pdf.MultiCell(0, 6, "Please carry the original ID proof of each passenger during the journey.", "", "", false)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to render e-ticket pdf: %w", err)
	}

	return buf.Bytes(), nil
}

func (s *serviceImpl) Archive(ctx context.Context, booking model.Booking) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".eticket.Archive")
	defer scope.End()
	defer scope.TraceIfError(err)

	data, err := s.Render(booking)
	if err != nil {
		log.Error().Err(err).Str("pnr", booking.PNR).Msg("failed to render e-ticket")

		return constant.Empty, err
	}

	fileName := fmt.Sprintf("%s.pdf", booking.PNR)

	url, err = s.s3.UploadFileBytes(ctx, s.cfg.External.S3.BucketName, archiveDirectory, fileName, constant.ContentTypePDF, data)
	if err != nil {
		log.Error().Err(err).Str("pnr", booking.PNR).Msg("failed to archive e-ticket")

		return constant.Empty, fmt.Errorf("failed to archive e-ticket: %w", err)
	}

	return url, nil
}
