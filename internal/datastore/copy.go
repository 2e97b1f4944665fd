package datastore

import "reflect"

// visit identifies a map, slice or pointer that was already copied. The
// type is part of the key because distinct zero-size values can share an
// address.
type visit struct {
	typ reflect.Type
	ptr uintptr
}

// deepCopy returns a copy of v that shares no maps, slices or pointers
// with it. Documents are copied on the way in and on the way out, so a
// listener holding a result can never change what is stored. Unexported
// struct fields are left zero. Cycles are preserved.
func deepCopy[T any](v T) T {
	src := reflect.ValueOf(&v).Elem()
	out, _ := copyValue(src, make(map[visit]reflect.Value)).Interface().(T)
	return out
}

func copyValue(src reflect.Value, seen map[visit]reflect.Value) reflect.Value {
	dst := reflect.New(src.Type()).Elem()

	switch src.Kind() {
	case reflect.Ptr:
		if src.IsNil() {
			return dst
		}
		key := visit{src.Type(), src.Pointer()}
		if done, ok := seen[key]; ok {
			return done
		}
		p := reflect.New(src.Type().Elem())
		seen[key] = p
		p.Elem().Set(copyValue(src.Elem(), seen))
		return p

	case reflect.Interface:
		if !src.IsNil() {
			dst.Set(copyValue(src.Elem(), seen))
		}
		return dst

	case reflect.Slice:
		if src.IsNil() {
			return dst
		}
		s := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		if src.Len() > 0 {
			key := visit{src.Type(), src.Pointer()}
			if done, ok := seen[key]; ok {
				return done
			}
			seen[key] = s
		}
		for i := 0; i < src.Len(); i++ {
			s.Index(i).Set(copyValue(src.Index(i), seen))
		}
		return s

	case reflect.Map:
		if src.IsNil() {
			return dst
		}
		key := visit{src.Type(), src.Pointer()}
		if done, ok := seen[key]; ok {
			return done
		}
		m := reflect.MakeMapWithSize(src.Type(), src.Len())
		seen[key] = m
		iter := src.MapRange()
		for iter.Next() {
			m.SetMapIndex(copyValue(iter.Key(), seen), copyValue(iter.Value(), seen))
		}
		return m

	case reflect.Struct:
		for i := 0; i < src.NumField(); i++ {
			if dst.Field(i).CanSet() {
				dst.Field(i).Set(copyValue(src.Field(i), seen))
			}
		}
		return dst

	case reflect.Array:
		for i := 0; i < src.Len(); i++ {
			dst.Index(i).Set(copyValue(src.Index(i), seen))
		}
		return dst

	default:
		dst.Set(src)
		return dst
	}
}
