// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"encoding"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// SetFromDefaultTags sets the values of fields in the given struct based on
// `default:` default value struct field tags, recursing into embedded
// and nested structs.
func SetFromDefaultTags(obj any) error {
	if obj == nil {
		return nil
	}
	ov := reflect.ValueOf(obj)
	if ov.Kind() == reflect.Pointer && ov.IsNil() {
		return nil
	}
	val := NonPointerValue(ov)
	if val.Kind() != reflect.Struct {
		return fmt.Errorf("reflectx.SetFromDefaultTags: expected a struct, not %v", val.Type())
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		if NonPointerType(f.Type).Kind() == reflect.Struct && !isTextValue(fv) {
			if err := SetFromDefaultTags(PointerValue(fv).Interface()); err != nil {
				errs = append(errs, err)
			}
			continue
		}
		def, ok := f.Tag.Lookup("default")
		if !ok {
			continue
		}
		if err := SetFromString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("reflectx.SetFromDefaultTags: error setting field %q in object of type %q from val %q: %w", f.Name, typ.Name(), def, err))
		}
	}
	return errors.Join(errs...)
}

func isTextValue(v reflect.Value) bool {
	_, ok := PointerValue(v).Interface().(encoding.TextUnmarshaler)
	return ok
}

// SetFromString sets the given settable value from the given string,
// using its [encoding.TextUnmarshaler] method if it has one.
// Slices of strings are set from comma-separated lists.
func SetFromString(v reflect.Value, str string) error {
	if tu, ok := PointerValue(v).Interface().(encoding.TextUnmarshaler); ok {
		return tu.UnmarshalText([]byte(str))
	}
	v = NonPointerValue(v)
	if !v.CanSet() {
		return fmt.Errorf("value of type %v is not settable", v.Type())
	}
	if v.Type() == reflect.TypeFor[time.Duration]() {
		d, err := time.ParseDuration(str)
		if err != nil {
			return err
		}
		v.SetInt(int64(d))
		return nil
	}
	switch v.Kind() {
	case reflect.String:
		v.SetString(str)
	case reflect.Bool:
		b, err := strconv.ParseBool(str)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(str, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(str, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(str, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	case reflect.Slice:
		if v.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("unsupported slice type %v", v.Type())
		}
		var strs []string
		for _, s := range strings.Split(str, ",") {
			if s = strings.TrimSpace(s); s != "" {
				strs = append(strs, s)
			}
		}
		v.Set(reflect.ValueOf(strs).Convert(v.Type()))
	default:
		return fmt.Errorf("unsupported type %v", v.Type())
	}
	return nil
}
