package cmd

import "reflect"

func newTarget(t reflect.Type) interface{} {
	return reflect.New(t).Interface()
}

func targetValue(ptr interface{}) interface{} {
	return reflect.ValueOf(ptr).Elem().Interface()
}
