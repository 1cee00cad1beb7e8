// Package fields convierte el body JSON crudo (map sin tipos) en valores tipados.
//
// Reglas de presencia: un campo requerido ausente, null o "" se reporta como
// MissingField. En updates, Present distingue "no enviado" de "enviado vacío".
package fields

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"shelter-records/internal/platform/apperrors"
	"shelter-records/internal/platform/civil"
)

const (
	expectInteger = "integer"
	expectString  = "string"
	expectDate    = "date (YYYY-MM-DD)"
)

// maxAmount corresponde a NUMERIC(10,2).
var maxAmount = decimal.New(1, 8)

// Límites del texto de un monto antes de parsear. Round con exponentes
// enormes ("1e-99999999") arma potencias de diez de millones de dígitos.
const (
	maxAmountLen      = 32
	minAmountExponent = -20
	maxAmountExponent = 8
)

var ErrNotObject = errors.New("body must be a JSON object")

type Map map[string]any

// Decode lee un objeto JSON preservando números como json.Number.
func Decode(r io.Reader) (Map, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, err
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Map(obj), nil
}

// Present: la key existe en el body (aunque sea null).
func (m Map) Present(key string) bool {
	_, ok := m[key]
	return ok
}

// filled: existe, no es null y no es string vacío.
func (m Map) filled(key string) (any, bool) {
	v, ok := m[key]
	if !ok || v == nil {
		return nil, false
	}
	if s, isStr := v.(string); isStr && strings.TrimSpace(s) == "" {
		return nil, false
	}
	return v, true
}

func (m Map) RequiredString(key string) (string, error) {
	v, ok := m.filled(key)
	if !ok {
		return "", apperrors.MissingField(key)
	}
	t, err := toText(key, v)
	return strings.TrimSpace(t), err
}

// RequiredSecret es como RequiredString pero no recorta: los espacios de una contraseña cuentan.
func (m Map) RequiredSecret(key string) (string, error) {
	v, ok := m.filled(key)
	if !ok {
		return "", apperrors.MissingField(key)
	}
	return toText(key, v)
}

// Secret devuelve el texto sin recortar; ausente o null => "".
func (m Map) Secret(key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	return toText(key, v)
}

// Text es para campos opcionales en altas: ausente o null => "".
func (m Map) Text(key string) (string, error) {
	v, ok := m[key]
	if !ok || v == nil {
		return "", nil
	}
	t, err := toText(key, v)
	return strings.TrimSpace(t), err
}

// NonEmptyString devuelve el valor sólo si vino con contenido (nil si no).
// Es la semántica "truthy" que se usa para campos requeridos en updates.
func (m Map) NonEmptyString(key string) (*string, error) {
	v, ok := m.filled(key)
	if !ok {
		return nil, nil
	}
	t, err := toText(key, v)
	if err != nil {
		return nil, err
	}
	t = strings.TrimSpace(t)
	return &t, nil
}

// OptionalString: nil si la key no vino; "" para null.
func (m Map) OptionalString(key string) (*string, error) {
	if !m.Present(key) {
		return nil, nil
	}
	t, err := m.Text(key)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (m Map) RequiredInt(key string) (int64, error) {
	v, ok := m.filled(key)
	if !ok {
		return 0, apperrors.MissingField(key)
	}
	return toInt(key, v)
}

// Int devuelve (valor, presente-con-contenido, error de tipo).
func (m Map) Int(key string) (int64, bool, error) {
	v, ok := m.filled(key)
	if !ok {
		return 0, false, nil
	}
	n, err := toInt(key, v)
	if err != nil {
		return 0, true, err
	}
	return n, true, nil
}

// NullableInt: presente con null o "" => (nil, true). Se usa para Age.
func (m Map) NullableInt(key string) (*int64, bool, error) {
	if !m.Present(key) {
		return nil, false, nil
	}
	v, ok := m.filled(key)
	if !ok {
		return nil, true, nil
	}
	n, err := toInt(key, v)
	if err != nil {
		return nil, true, err
	}
	return &n, true, nil
}

func (m Map) RequiredDate(key string) (civil.Date, error) {
	v, ok := m.filled(key)
	if !ok {
		return civil.Date{}, apperrors.MissingField(key)
	}
	return toDate(key, v)
}

// Date devuelve la fecha sólo si vino con contenido; vacío/null se ignora.
func (m Map) Date(key string) (civil.Date, bool, error) {
	v, ok := m.filled(key)
	if !ok {
		return civil.Date{}, false, nil
	}
	d, err := toDate(key, v)
	if err != nil {
		return civil.Date{}, true, err
	}
	return d, true, nil
}

func (m Map) RequiredAmount(key string) (decimal.Decimal, error) {
	v, ok := m.filled(key)
	if !ok {
		return decimal.Decimal{}, apperrors.MissingField(key)
	}
	return ParseAmount(key, v)
}

func (m Map) Amount(key string) (decimal.Decimal, bool, error) {
	v, ok := m.filled(key)
	if !ok {
		return decimal.Decimal{}, false, nil
	}
	d, err := ParseAmount(key, v)
	if err != nil {
		return decimal.Decimal{}, true, err
	}
	return d, true, nil
}

// ParseAmount acepta string o número y devuelve un decimal exacto con 2 decimales.
func ParseAmount(key string, v any) (decimal.Decimal, error) {
	var s string
	switch x := v.(type) {
	case string:
		s = strings.TrimSpace(x)
	case json.Number:
		s = x.String()
	case float64:
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return decimal.Decimal{}, apperrors.InvalidAmount(key)
		}
		s = strconv.FormatFloat(x, 'f', -1, 64)
	case int, int64:
		s = fmt.Sprint(x)
	default:
		return decimal.Decimal{}, apperrors.InvalidAmount(key)
	}

	if s == "" || len(s) > maxAmountLen {
		return decimal.Decimal{}, apperrors.InvalidAmount(key)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, apperrors.InvalidAmount(key)
	}
	if exp := d.Exponent(); exp < minAmountExponent || exp > maxAmountExponent {
		return decimal.Decimal{}, apperrors.InvalidAmount(key)
	}
	d = d.Round(2)
	if d.IsNegative() || d.GreaterThanOrEqual(maxAmount) {
		return decimal.Decimal{}, apperrors.InvalidAmount(key)
	}
	return d, nil
}

func toInt(key string, v any) (int64, error) {
	switch x := v.(type) {
	case json.Number:
		n, err := x.Int64()
		if err == nil {
			return n, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, apperrors.InvalidType(key, expectInteger)
		}
		// 5.0 es un entero válido; 5.5 no.
		f, err := x.Float64()
		// float64(MaxInt64) redondea a 2^63, que ya no entra en int64
		if err != nil || f != math.Trunc(f) || f >= math.MaxInt64 || f < math.MinInt64 {
			return 0, apperrors.InvalidType(key, expectInteger)
		}
		return int64(f), nil
	case float64:
		if x != math.Trunc(x) || x >= math.MaxInt64 || x < math.MinInt64 {
			return 0, apperrors.InvalidType(key, expectInteger)
		}
		return int64(x), nil
	case int:
		return int64(x), nil
	case int64:
		return x, nil
	case string:
		n, err := strconv.ParseInt(strings.TrimSpace(x), 10, 64)
		if err != nil {
			return 0, apperrors.InvalidType(key, expectInteger)
		}
		return n, nil
	default:
		return 0, apperrors.InvalidType(key, expectInteger)
	}
}

func toDate(key string, v any) (civil.Date, error) {
	s, ok := v.(string)
	if !ok {
		return civil.Date{}, apperrors.InvalidType(key, expectDate)
	}
	d, err := civil.Parse(s)
	if err != nil {
		return civil.Date{}, apperrors.InvalidType(key, expectDate)
	}
	return d, nil
}

// toText acepta escalares; objetos y arrays no son texto.
func toText(key string, v any) (string, error) {
	switch x := v.(type) {
	case string:
		return x, nil
	case json.Number:
		return x.String(), nil
	case bool, float64, int, int64:
		return fmt.Sprint(x), nil
	default:
		return "", apperrors.InvalidType(key, expectString)
	}
}
