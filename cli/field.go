// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"encoding"
	"reflect"
	"slices"
	"strconv"
	"strings"

	"github.com/iancoleman/strcase"
	"github.com/latexformula/latexformula/base/reflectx"
)

// Field represents a struct field in a configuration object.
// It is passed around in flag parsing functions, but it should
// not typically be used by end-user code going through the
// standard Run/Config API.
type Field struct {

	// Field is the reflect struct field object for this field
	Field reflect.StructField

	// Value is the reflect value of the settable pointer to this field
	Value reflect.Value

	// Name is the fully qualified, nested name of this field (eg: A.B.C).
	// It is as it appears in code, and is NOT transformed something like kebab-case.
	Name string

	// Names contains all of the possible end-user names for this field as a flag.
	// It defaults to the name of the field in kebab-case, but custom names
	// can be specified via the flag struct tag.
	Names []string

	// PosArg is the position of the field among the positional
	// arguments, or -1 if it is only set by flags.
	PosArg int
}

// IsBool returns whether the field is a bool, which can be set by
// a flag without a value.
func (f *Field) IsBool() bool {
	return reflectx.NonPointerType(f.Field.Type).Kind() == reflect.Bool
}

// valueName returns the name of the kind of value the field takes,
// for usage information.
func (f *Field) valueName() string {
	if _, ok := f.Value.Interface().(encoding.TextUnmarshaler); ok {
		return "string"
	}
	switch k := reflectx.NonPointerType(f.Field.Type).Kind(); k {
	case reflect.Slice:
		return "list"
	case reflect.Float32, reflect.Float64:
		return "number"
	default:
		return k.String()
	}
}

// Doc returns the description of the field from its desc tag.
func (f *Field) Doc() string {
	return f.Field.Tag.Get("desc")
}

// AddAllFields, when passed as the command to [AddFields], indicates
// to add all fields, regardless of their command association.
const AddAllFields = "*"

// AddFields returns all of the fields of the given object, in order,
// in the context of the given command name. Fields of nested structs
// are included with their unqualified names. A value of [AddAllFields]
// for cmd indicates to add all fields, regardless of their command association.
func AddFields(obj any, cmd string) []*Field {
	var fields []*Field
	addFieldsImpl(obj, "", &fields, cmd)
	return fields
}

func addFieldsImpl(obj any, path string, fields *[]*Field, cmd string) {
	ov := reflect.ValueOf(obj)
	if obj == nil || (ov.Kind() == reflect.Pointer && ov.IsNil()) {
		return
	}
	val := reflectx.NonPointerValue(ov)
	typ := val.Type()

	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		pval := reflectx.PointerValue(fv)
		cmdtag, ok := f.Tag.Lookup("cmd")
		if ok && cmd != AddAllFields && !slices.Contains(strings.Split(cmdtag, ","), cmd) {
			continue // associated with a different command
		}
		if reflectx.NonPointerType(f.Type).Kind() == reflect.Struct {
			nwPath := f.Name
			if path != "" {
				nwPath = path + "." + nwPath
			}
			addFieldsImpl(pval.Interface(), nwPath, fields, cmd)
			continue
		}
		name := f.Name
		if path != "" {
			name = path + "." + name
		}
		names := []string{strcase.ToKebab(f.Name)}
		if flagtag, ok := f.Tag.Lookup("flag"); ok {
			names = strings.Split(flagtag, ",")
		}
		pos := -1
		if ptag, ok := f.Tag.Lookup("posarg"); ok {
			if p, err := strconv.Atoi(ptag); err == nil {
				pos = p
			}
		}
		*fields = append(*fields, &Field{
			Field:  f,
			Value:  pval,
			Name:   name,
			Names:  names,
			PosArg: pos,
		})
	}
}

// normalizeName returns the canonical form of the given flag name,
// so that camelCase, snake_case and kebab-case spellings are equivalent.
func normalizeName(name string) string {
	return strcase.ToKebab(name)
}

// findField returns the field with the given flag name, or nil.
// Exact names are matched first, so that short names such as
// "v" and "vv" do not collide.
func findField(fields []*Field, name string) *Field {
	for _, f := range fields {
		if slices.Contains(f.Names, name) {
			return f
		}
	}
	norm := normalizeName(name)
	for _, f := range fields {
		for _, nm := range f.Names {
			if normalizeName(nm) == norm {
				return f
			}
		}
	}
	return nil
}

// posArgFields returns the fields that take positional arguments,
// sorted by position.
func posArgFields(fields []*Field) []*Field {
	var res []*Field
	for _, f := range fields {
		if f.PosArg >= 0 {
			res = append(res, f)
		}
	}
	slices.SortStableFunc(res, func(a, b *Field) int {
		return a.PosArg - b.PosArg
	})
	return res
}
