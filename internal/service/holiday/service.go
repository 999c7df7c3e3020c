package holiday

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/pontolabs/ponto-backend-go/internal/domain/holiday"
	"github.com/pontolabs/ponto-backend-go/internal/pkg/validator"
)

type HolidayServiceImpl struct {
	holiday.HolidayRepository
}

func NewHolidayService(holidayRepository holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{
		HolidayRepository: holidayRepository,
	}
}

// CreateHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) CreateHoliday(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, err := time.Parse("2006-01-02", req.Date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to parse holiday date: %w", err)
	}

	exists, err := h.HolidayRepository.IsHoliday(ctx, date)
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to check holiday date: %w", err)
	}
	if exists {
		return holiday.HolidayResponse{}, holiday.ErrHolidayExists
	}

	created, err := h.HolidayRepository.Create(ctx, holiday.Holiday{
		ID:   uuid.NewString(),
		Date: date,
		Name: req.Name,
	})
	if err != nil {
		return holiday.HolidayResponse{}, fmt.Errorf("failed to create holiday: %w", err)
	}

	return mapHolidayToResponse(created), nil
}

// DeleteHoliday implements holiday.HolidayService.
func (h *HolidayServiceImpl) DeleteHoliday(ctx context.Context, id string) error {
	if err := h.HolidayRepository.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, holiday.ErrHolidayNotFound) {
			return holiday.ErrHolidayNotFound
		}
		return fmt.Errorf("failed to delete holiday: %w", err)
	}

	return nil
}

// ListHolidays implements holiday.HolidayService.
func (h *HolidayServiceImpl) ListHolidays(ctx context.Context, year int) (holiday.ListHolidaysResponse, error) {
	if !validator.IsValidYear(year) {
		return holiday.ListHolidaysResponse{}, validator.ValidationErrors{
			{Field: "year", Message: "year must be between 2000 and 2100"},
		}
	}

	holidays, err := h.HolidayRepository.ListByYear(ctx, year)
	if err != nil {
		return holiday.ListHolidaysResponse{}, fmt.Errorf("failed to list holidays: %w", err)
	}

	responses := make([]holiday.HolidayResponse, 0, len(holidays))
	for _, hol := range holidays {
		responses = append(responses, mapHolidayToResponse(hol))
	}

	return holiday.ListHolidaysResponse{
		Year:     year,
		Holidays: responses,
	}, nil
}

func mapHolidayToResponse(hol holiday.Holiday) holiday.HolidayResponse {
	return holiday.HolidayResponse{
		ID:   hol.ID,
		Date: hol.Date.Format("2006-01-02"),
		Name: hol.Name,
	}
}
