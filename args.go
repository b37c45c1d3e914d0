package braces

import (
	"fmt"
	"reflect"
	"unsafe"
)

// argument resolves a Format argument to the Formatter for its type.
// Formatters pass through untouched; builtin types go to their renderer.
// A rune is an int32 and prints as a number; wrap bytes in [Char] to print
// them as characters.
func argument(v any) (Formatter, error) {
	switch x := v.(type) {
	case nil:
		return nil, fmt.Errorf("%w: nil", ErrUnsupportedArgument)
	case Formatter:
		return x, nil
	case bool:
		return Bool(x), nil
	case int:
		return Int(x), nil
	case int8:
		return Int(x), nil
	case int16:
		return Int(x), nil
	case int32:
		return Int(x), nil
	case int64:
		return Int(x), nil
	case uint:
		return Uint(x), nil
	case uint8:
		return Uint(x), nil
	case uint16:
		return Uint(x), nil
	case uint32:
		return Uint(x), nil
	case uint64:
		return Uint(x), nil
	case uintptr:
		return Pointer(x), nil
	case unsafe.Pointer:
		return PointerOf(x), nil
	case float32:
		return Float(x), nil
	case float64:
		return Float(x), nil
	case string:
		return String(x), nil
	case []byte:
		return String(string(x)), nil
	case *Buffer:
		return String(x.String()), nil
	case error:
		return String(x.Error()), nil
	case fmt.Stringer:
		return String(x.String()), nil
	}
	return reflectArgument(reflect.ValueOf(v))
}

// reflectArgument handles named types whose underlying type is a builtin,
// and pointers of any type.
func reflectArgument(rv reflect.Value) (Formatter, error) {
	switch rv.Kind() {
	case reflect.Bool:
		return Bool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return newSigned(rv.Int(), rv.Type().Size()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return newUnsigned(rv.Uint(), rv.Type().Size()), nil
	case reflect.Float32, reflect.Float64:
		return floatValue(rv.Float()), nil
	case reflect.String:
		return String(rv.String()), nil
	case reflect.Uintptr:
		return Pointer(uintptr(rv.Uint())), nil
	case reflect.Pointer, reflect.UnsafePointer:
		return Pointer(rv.Pointer()), nil
	}
	return nil, fmt.Errorf("%w: %s", ErrUnsupportedArgument, rv.Type())
}
