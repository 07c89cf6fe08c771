// Copyright (c) 2023, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package reflectx

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNonPointerType(t *testing.T) {
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[*int]()))
	assert.Equal(t, reflect.TypeFor[int](), NonPointerType(reflect.TypeFor[**int]()))

	assert.Equal(t, reflect.TypeFor[any](), NonPointerType(reflect.TypeFor[*any]()))

	assert.Equal(t, nil, NonPointerType(reflect.TypeOf(nil)))
}

func TestNonPointerValue(t *testing.T) {
	v := 1
	rv := reflect.ValueOf(v)
	assert.True(t, NonPointerValue(reflect.ValueOf(v)).Equal(rv))
	assert.True(t, NonPointerValue(reflect.ValueOf(&v)).Equal(rv))

	p := &v
	assert.True(t, NonPointerValue(reflect.ValueOf(&p)).Equal(rv))
}

func TestPointerValue(t *testing.T) {
	v := 1
	pv := PointerValue(reflect.ValueOf(&v).Elem())
	assert.Equal(t, reflect.Pointer, pv.Kind())
	assert.Same(t, &v, pv.Interface())

	pv = PointerValue(reflect.ValueOf(v))
	assert.Equal(t, 1, *pv.Interface().(*int))

	pp := &v
	assert.Same(t, pp, PointerValue(reflect.ValueOf(pp)).Interface())
}
