package usecase

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"afclean/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// scheduledAtLayouts are the accepted scheduled_at formats. The short forms are
// what the scheduling form submits ("2024-06-01T10:00").
var scheduledAtLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseScheduledAt parses a scheduling timestamp. Values without a zone are
// interpreted in UTC.
func ParseScheduledAt(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range scheduledAtLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: scheduled_at %q", ErrInvalidFieldValue, raw)
}

func coerceJobFields(fields map[string]any) (entities.JobChanges, error) {
	changes := make(entities.JobChanges, len(fields))
	for key, raw := range fields {
		if key == "id" || raw == nil {
			continue
		}
		f := entities.JobField(key)
		if !f.IsMutable() {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
		v, err := coerceJobValue(f, raw)
		if err != nil {
			return nil, err
		}
		changes[f] = v
	}
	return changes, nil
}

func coerceJobValue(f entities.JobField, raw any) (any, error) {
	switch f {
	case entities.JobFieldCustomerName, entities.JobFieldAddress, entities.JobFieldPhone:
		s, ok := raw.(string)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, invalidField(f, raw)
		}
		return strings.TrimSpace(s), nil
	case entities.JobFieldServiceType, entities.JobFieldSignature, entities.JobFieldPaymentMethod:
		s, ok := raw.(string)
		if !ok {
			return nil, invalidField(f, raw)
		}
		return s, nil
	case entities.JobFieldBeforePhotos, entities.JobFieldAfterPhotos:
		// Already encoded by the caller; contents are opaque here.
		s, ok := raw.(string)
		if !ok {
			return nil, invalidField(f, raw)
		}
		return s, nil
	case entities.JobFieldScheduledAt:
		switch v := raw.(type) {
		case time.Time:
			if v.IsZero() {
				return nil, invalidField(f, raw)
			}
			return v.UTC(), nil
		case string:
			return ParseScheduledAt(v)
		}
		return nil, invalidField(f, raw)
	case entities.JobFieldStatus:
		var s entities.JobStatus
		switch v := raw.(type) {
		case string:
			s = entities.JobStatus(v)
		case entities.JobStatus:
			s = v
		}
		if !s.Valid() {
			return nil, invalidField(f, raw)
		}
		return s, nil
	case entities.JobFieldPrice:
		d, ok := toDecimal(raw)
		if !ok || d.IsNegative() {
			return nil, invalidField(f, raw)
		}
		return d, nil
	case entities.JobFieldInstallments:
		n, ok := toInt(raw)
		if !ok || n < 1 {
			return nil, invalidField(f, raw)
		}
		return n, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownField, f)
}

func coerceLedgerFields(fields map[string]any) (entities.LedgerChanges, error) {
	changes := make(entities.LedgerChanges, len(fields))
	for key, raw := range fields {
		if key == "id" || raw == nil {
			continue
		}
		switch f := entities.LedgerField(key); f {
		case entities.LedgerFieldKind:
			var k entities.LedgerKind
			switch v := raw.(type) {
			case string:
				k = entities.LedgerKind(v)
			case entities.LedgerKind:
				k = v
			}
			if !k.Valid() {
				return nil, fmt.Errorf("%w: %s=%v", ErrInvalidFieldValue, f, raw)
			}
			changes[f] = k
		case entities.LedgerFieldDescription:
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s=%v", ErrInvalidFieldValue, f, raw)
			}
			changes[f] = s
		case entities.LedgerFieldAmount:
			d, ok := toDecimal(raw)
			if !ok || d.IsNegative() {
				return nil, fmt.Errorf("%w: %s=%v", ErrInvalidFieldValue, f, raw)
			}
			changes[f] = d
		case entities.LedgerFieldDate:
			s, ok := raw.(string)
			if !ok {
				return nil, fmt.Errorf("%w: %s=%v", ErrInvalidFieldValue, f, raw)
			}
			date, err := normalizeLedgerDate(s)
			if err != nil {
				return nil, err
			}
			changes[f] = date
		default:
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}
	}
	return changes, nil
}

func invalidField(f entities.JobField, raw any) error {
	return fmt.Errorf("%w: %s=%v", ErrInvalidFieldValue, f, raw)
}

func toDecimal(raw any) (decimal.Decimal, bool) {
	switch v := raw.(type) {
	case decimal.Decimal:
		return v, true
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, false
		}
		return decimal.NewFromFloat(v), true
	case float32:
		return decimal.NewFromFloat32(v), true
	case int:
		return decimal.NewFromInt(int64(v)), true
	case int64:
		return decimal.NewFromInt(v), true
	case json.Number:
		d, err := decimal.NewFromString(v.String())
		return d, err == nil
	case string:
		d, err := decimal.NewFromString(strings.TrimSpace(v))
		return d, err == nil
	}
	return decimal.Decimal{}, false
}

func toInt(raw any) (int, bool) {
	switch v := raw.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int(v), true
	case json.Number:
		n, err := v.Int64()
		return int(n), err == nil
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		return n, err == nil
	}
	return 0, false
}
