package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/bjaus/braces"
)

// ErrBadValue is returned for a command line value that cannot be parsed.
var ErrBadValue = errors.New("bad value")

// valueTypes lists the accepted type prefixes in help order.
var valueTypes = []string{
	"bool", "char", "i8", "i16", "i32", "i64", "int",
	"u8", "u16", "u32", "u64", "uint", "f32", "f64",
	"str", "ptr", "json", "yaml",
}

// parseValue turns "type:value" into a Format argument of that type.
// Integers accept the 0x, 0o and 0b prefixes.
func parseValue(s string) (any, error) {
	typ, raw, ok := strings.Cut(s, ":")
	if !ok {
		return nil, fmt.Errorf("%w: %q has no type prefix, want one of %s", ErrBadValue, s, strings.Join(valueTypes, ", "))
	}

	var (
		v   any
		err error
	)
	switch typ {
	case "bool":
		v, err = strconv.ParseBool(raw)
	case "char":
		if len(raw) != 1 {
			return nil, fmt.Errorf("%w: char %q must be a single byte", ErrBadValue, raw)
		}
		v = braces.Char(raw[0])
	case "i8":
		v, err = parseSigned[int8](raw, 8)
	case "i16":
		v, err = parseSigned[int16](raw, 16)
	case "i32":
		v, err = parseSigned[int32](raw, 32)
	case "i64":
		v, err = parseSigned[int64](raw, 64)
	case "int":
		v, err = parseSigned[int](raw, strconv.IntSize)
	case "u8":
		v, err = parseUnsigned[uint8](raw, 8)
	case "u16":
		v, err = parseUnsigned[uint16](raw, 16)
	case "u32":
		v, err = parseUnsigned[uint32](raw, 32)
	case "u64":
		v, err = parseUnsigned[uint64](raw, 64)
	case "uint":
		v, err = parseUnsigned[uint](raw, strconv.IntSize)
	case "ptr":
		v, err = parseUnsigned[uintptr](raw, strconv.IntSize)
	case "f32":
		var f float64
		f, err = strconv.ParseFloat(raw, 32)
		v = float32(f)
	case "f64":
		v, err = strconv.ParseFloat(raw, 64)
	case "str":
		v = raw
	case "json":
		var doc any
		err = json.Unmarshal([]byte(raw), &doc)
		v = braces.JSON(doc)
	case "yaml":
		var doc any
		err = yaml.Unmarshal([]byte(raw), &doc)
		v = braces.YAML(doc)
	default:
		return nil, fmt.Errorf("%w: unknown type %q, want one of %s", ErrBadValue, typ, strings.Join(valueTypes, ", "))
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s value %q: %w", ErrBadValue, typ, raw, err)
	}
	return v, nil
}

func parseSigned[T ~int | ~int8 | ~int16 | ~int32 | ~int64](s string, bits int) (T, error) {
	n, err := strconv.ParseInt(s, 0, bits)
	return T(n), err
}

func parseUnsigned[T ~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr](s string, bits int) (T, error) {
	n, err := strconv.ParseUint(s, 0, bits)
	return T(n), err
}

// parseValues parses every "type:value" argument in order.
func parseValues(args []string) ([]any, error) {
	values := make([]any, len(args))
	for i, arg := range args {
		v, err := parseValue(arg)
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i, err)
		}
		values[i] = v
	}
	return values, nil
}
