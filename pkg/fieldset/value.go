package fieldset

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	KindText Kind = iota
	KindNumber
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	default:
		return "text"
	}
}

// Value is either Text or Number. Numbers keep their source literal so
// re-encoding does not reformat what the author wrote.
type Value struct {
	kind    Kind
	text    string
	number  float64
	literal string
}

// Text constructs a text value.
func Text(s string) Value {
	return Value{kind: KindText, text: s}
}

// Number constructs a numeric value.
func Number(f float64) Value {
	return Value{kind: KindNumber, number: f, literal: strconv.FormatFloat(f, 'f', -1, 64)}
}

// NumberLiteral constructs a numeric value from its textual form. Non-finite
// values are rejected. The literal is kept only when it is already a JSON
// number; other accepted forms (+1, .5, 0x1p4) are stored canonically.
func NumberLiteral(lit string) (Value, error) {
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil {
		return Value{}, err
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return Value{}, fmt.Errorf("fieldset: %q is not a finite number", lit)
	}
	if !isJSONNumber(lit) {
		return Number(f), nil
	}
	return Value{kind: KindNumber, number: f, literal: lit}, nil
}

func isJSONNumber(lit string) bool {
	if lit == "" || (lit[0] != '-' && (lit[0] < '0' || lit[0] > '9')) {
		return false
	}
	return json.Valid([]byte(lit))
}

func (v Value) Kind() Kind {
	return v.kind
}

func (v Value) IsNumber() bool {
	return v.kind == KindNumber
}

// String returns the text, or the number literal.
func (v Value) String() string {
	if v.kind == KindNumber {
		return v.literal
	}
	return v.text
}

// Float returns the numeric value; zero for Text.
func (v Value) Float() float64 {
	return v.number
}

// Equal reports whether both values hold the same variant and content.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	if v.kind == KindNumber {
		return v.number == other.number
	}
	return v.text == other.text
}
