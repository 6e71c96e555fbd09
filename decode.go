// Package yscl parses YSCL documents: a minimal, human-authored
// configuration language made of quoted atoms, ordered maps, lists and line
// comments.
//
//	name = "demo"
//	deps = {
//	    a = "1.0"
//	}
//	tags = [
//	    "x"
//	    "y"
//	]
//
// Parse returns the document as an ordered Map. Unmarshal and Decoder map a
// document onto Go values.
package yscl

import (
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// Decoder reads and decodes a YSCL document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r. The whole input is
// read before parsing starts.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the YSCL document from the input stream and stores the result
// in the pointer v.
func (dec *Decoder) Decode(v any) error {
	data, err := io.ReadAll(dec.r)
	if err != nil {
		return fmt.Errorf("read document: %w", err)
	}

	doc, err := ParseBytes(data, dec.opts...)
	if err != nil {
		return err
	}

	return setValue(v, doc)
}

// Unmarshal parses YSCL data and stores the result in the value pointed to
// by v. If v is nil or not a pointer, it returns an error.
//
// The document is mapped onto v as follows:
//   - Map, List, Atom and Node targets receive the tree itself.
//   - An interface{} target receives plain values: string for atoms, []any
//     for lists and map[string]any for maps.
//   - Structs are filled from maps by key, using the `yscl:"name"` tag when
//     present and the field name otherwise. A tag of "-" skips the field.
//   - Maps with string keys, slices, arrays and pointers are filled
//     recursively.
//   - Atoms convert to string, bool, integer and float kinds with strconv.
//
// Parse errors are returned unchanged; conversion errors name the path of
// the offending value.
func Unmarshal(data []byte, v any, opts ...Option) error {
	doc, err := ParseBytes(data, opts...)
	if err != nil {
		return err
	}

	return setValue(v, doc)
}

// setValue sets the destination value from the parsed document.
func setValue(dst any, doc Map) error {
	if dst == nil {
		return errors.New("cannot unmarshal into a nil value")
	}

	val := reflect.ValueOf(dst)
	if val.Kind() != reflect.Ptr {
		return errors.New("destination is not a pointer")
	}
	if val.IsNil() {
		return errors.New("destination pointer is nil")
	}

	return setValueReflect(val.Elem(), doc)
}

// setValueReflect recursively sets values to dst from src using reflection.
func setValueReflect(dst reflect.Value, src Node) error {
	// An empty interface receives plain Go values.
	if dst.Kind() == reflect.Interface && dst.NumMethod() == 0 {
		dst.Set(reflect.ValueOf(ToAny(src)))
		return nil
	}

	// Tree types are assigned as-is.
	if s := reflect.ValueOf(src); s.Type().AssignableTo(dst.Type()) {
		dst.Set(s)
		return nil
	}

	switch dst.Kind() {
	case reflect.Struct:
		return setStruct(dst, src)
	case reflect.Slice:
		return setSlice(dst, src)
	case reflect.Array:
		return setArray(dst, src)
	case reflect.Map:
		return setMap(dst, src)
	case reflect.Ptr:
		return setPtr(dst, src)
	case reflect.String:
		return setString(dst, src)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, src)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(dst, src)
	case reflect.Float32, reflect.Float64:
		return setFloat(dst, src)
	case reflect.Bool:
		return setBool(dst, src)
	default:
		return fmt.Errorf("cannot unmarshal %s into %s", src.Kind(), dst.Type())
	}
}

// setStruct unmarshals a map into a struct.
func setStruct(dst reflect.Value, src Node) error {
	srcMap, ok := src.(Map)
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into struct", src.Kind())
	}

	structType := dst.Type()
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		fieldValue := dst.Field(i)

		// Skip unexported fields.
		if !fieldValue.CanSet() {
			continue
		}

		fieldName := getFieldName(field)
		if fieldName == "-" {
			continue
		}

		if srcValue, exists := srcMap.Get(fieldName); exists {
			if err := setValueReflect(fieldValue, srcValue); err != nil {
				return fmt.Errorf("error setting field %s: %w", field.Name, err)
			}
		}
	}

	return nil
}

// getFieldName returns the key a struct field is read from.
func getFieldName(field reflect.StructField) string {
	tag := field.Tag.Get("yscl")
	if tag == "" {
		return field.Name
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return field.Name
	}
	return name
}

// setSlice unmarshals a list into a slice.
func setSlice(dst reflect.Value, src Node) error {
	srcList, ok := src.(List)
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into slice", src.Kind())
	}

	newSlice := reflect.MakeSlice(dst.Type(), len(srcList.Elements), len(srcList.Elements))
	for i, srcElem := range srcList.Elements {
		if err := setValueReflect(newSlice.Index(i), srcElem); err != nil {
			return fmt.Errorf("error setting slice element %d: %w", i, err)
		}
	}

	dst.Set(newSlice)
	return nil
}

// setArray unmarshals a list into a fixed-size array of the same length.
func setArray(dst reflect.Value, src Node) error {
	srcList, ok := src.(List)
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into array", src.Kind())
	}
	if srcList.Len() != dst.Len() {
		return fmt.Errorf("cannot unmarshal list of %d elements into %s", srcList.Len(), dst.Type())
	}

	for i, srcElem := range srcList.Elements {
		if err := setValueReflect(dst.Index(i), srcElem); err != nil {
			return fmt.Errorf("error setting array element %d: %w", i, err)
		}
	}
	return nil
}

// setMap unmarshals a src map into a Go map.
func setMap(dst reflect.Value, src Node) error {
	srcMap, ok := src.(Map)
	if !ok {
		return fmt.Errorf("cannot unmarshal %s into map", src.Kind())
	}

	mapType := dst.Type()
	if mapType.Key().Kind() != reflect.String {
		return fmt.Errorf("maps with non-string keys are not supported")
	}

	newMap := reflect.MakeMapWithSize(mapType, srcMap.Len())
	for _, e := range srcMap.Entries {
		keyValue := reflect.ValueOf(string(e.Key)).Convert(mapType.Key())
		valueValue := reflect.New(mapType.Elem()).Elem()

		if err := setValueReflect(valueValue, e.Value); err != nil {
			return fmt.Errorf("error setting map value for key %s: %w", e.Key, err)
		}

		newMap.SetMapIndex(keyValue, valueValue)
	}

	dst.Set(newMap)
	return nil
}

// setPtr unmarshals into a pointer, allocating when nil.
func setPtr(dst reflect.Value, src Node) error {
	if dst.IsNil() {
		dst.Set(reflect.New(dst.Type().Elem()))
	}
	return setValueReflect(dst.Elem(), src)
}

// atomValue returns the text of src if it is an atom.
func atomValue(src Node, target string) (string, error) {
	a, ok := src.(Atom)
	if !ok {
		return "", fmt.Errorf("cannot unmarshal %s into %s", src.Kind(), target)
	}
	return a.Value, nil
}

func setString(dst reflect.Value, src Node) error {
	s, err := atomValue(src, "string")
	if err != nil {
		return err
	}
	dst.SetString(s)
	return nil
}

// setInt parses an atom as a signed integer. Base prefixes (0x, 0o, 0b) and
// underscores are accepted.
func setInt(dst reflect.Value, src Node) error {
	s, err := atomValue(src, "integer")
	if err != nil {
		return err
	}
	v, err := strconv.ParseInt(s, 0, dst.Type().Bits())
	if err != nil {
		return fmt.Errorf("cannot unmarshal %q into %s: %w", s, dst.Type(), err)
	}
	dst.SetInt(v)
	return nil
}

// setUint parses an atom as an unsigned integer.
func setUint(dst reflect.Value, src Node) error {
	s, err := atomValue(src, "unsigned integer")
	if err != nil {
		return err
	}
	v, err := strconv.ParseUint(s, 0, dst.Type().Bits())
	if err != nil {
		return fmt.Errorf("cannot unmarshal %q into %s: %w", s, dst.Type(), err)
	}
	dst.SetUint(v)
	return nil
}

// setFloat parses an atom as a floating point number.
func setFloat(dst reflect.Value, src Node) error {
	s, err := atomValue(src, "float")
	if err != nil {
		return err
	}
	v, err := strconv.ParseFloat(s, dst.Type().Bits())
	if err != nil {
		return fmt.Errorf("cannot unmarshal %q into %s: %w", s, dst.Type(), err)
	}
	dst.SetFloat(v)
	return nil
}

// setBool parses an atom with strconv.ParseBool.
func setBool(dst reflect.Value, src Node) error {
	s, err := atomValue(src, "bool")
	if err != nil {
		return err
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("cannot unmarshal %q into %s: %w", s, dst.Type(), err)
	}
	dst.SetBool(v)
	return nil
}
