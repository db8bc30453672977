package service

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"

	"eldercare-mis/internal/dto"
	"eldercare-mis/internal/model"
	"eldercare-mis/internal/repository"
	pkgerrors "eldercare-mis/pkg/errors"
)

const timeLayout = "15:04:05"

// dateOrDefault parses an optional payload date; absent or empty falls back to def
func dateOrDefault(s *string, def model.Date) (model.Date, error) {
	if s == nil || *s == "" {
		return def, nil
	}
	return parseDate(*s)
}

// parseDate parses a payload date, reporting a client error on bad input
func parseDate(s string) (model.Date, error) {
	d, err := model.ParseDate(s)
	if err != nil {
		return model.Date{}, pkgerrors.ClientInput("Invalid date format. Use YYYY-MM-DD")
	}
	return d, nil
}

// optionalDate parses a nullable payload date
func optionalDate(s *string) (*model.Date, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	d, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// optionalTime parses a nullable HH:MM:SS payload time
func optionalTime(s *string) (*datatypes.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.Parse(timeLayout, *s)
	if err != nil {
		return nil, pkgerrors.ClientInput("Invalid time format. Use HH:MM:SS")
	}
	dt := datatypes.NewTime(t.Hour(), t.Minute(), t.Second(), 0)
	return &dt, nil
}

// queryRange converts start_date/end_date query parameters
func queryRange(q dto.DateRangeQuery) (repository.DateRange, error) {
	var r repository.DateRange
	if q.StartDate != "" {
		d, err := model.ParseDate(q.StartDate)
		if err != nil {
			return r, pkgerrors.ClientInput("Invalid start_date format. Use YYYY-MM-DD")
		}
		r.From = &d
	}
	if q.EndDate != "" {
		d, err := model.ParseDate(q.EndDate)
		if err != nil {
			return r, pkgerrors.ClientInput("Invalid end_date format. Use YYYY-MM-DD")
		}
		r.To = &d
	}
	return r, nil
}

func stringOr(s *string, def string) string {
	if s == nil || *s == "" {
		return def
	}
	return *s
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

// moneyScale fractional digits kept by every decimal column
const moneyScale = 2

// cents rounds a payload amount to the column scale, half away from zero
func cents(d decimal.Decimal) decimal.Decimal {
	return d.Round(moneyScale)
}

func decimalOrZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return cents(*d)
}

// nonZero drops absent or zero decimals, matching how optional numeric
// columns are stored
func nonZero(d *decimal.Decimal) *decimal.Decimal {
	if d == nil {
		return nil
	}
	v := cents(*d)
	if v.IsZero() {
		return nil
	}
	return &v
}

func money(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}

func optionalFloat(d *decimal.Decimal) *float64 {
	if d == nil {
		return nil
	}
	f := d.InexactFloat64()
	return &f
}

func optionalClock(t *datatypes.Time) *string {
	if t == nil {
		return nil
	}
	s := t.String()
	return &s
}

func staffName(s *model.Staff) *string {
	if s == nil {
		return nil
	}
	name := s.Name
	return &name
}
