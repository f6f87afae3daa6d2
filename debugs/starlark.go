package debugs

import (
	"fmt"
	"reflect"

	"github.com/reusee/lox/loxlang"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

func toStarlarkValue(v any) starlark.Value {
	switch v := v.(type) {

	case nil:
		return starlark.None

	case loxlang.Token:
		d := starlark.NewDict(6)
		d.SetKey(starlark.String("type"), starlark.String(v.Type.String()))
		d.SetKey(starlark.String("lexeme"), starlark.String(v.Lexeme))
		d.SetKey(starlark.String("line"), starlark.MakeInt(v.Line))
		d.SetKey(starlark.String("start"), starlark.MakeInt(v.Start))
		d.SetKey(starlark.String("end"), starlark.MakeInt(v.End))
		d.SetKey(starlark.String("literal"), toStarlarkValue(v.Literal))
		return d

	case loxlang.TokenType:
		return starlark.String(v.String())

	case loxlang.NumberLiteral:
		return starlark.Float(v)

	case loxlang.StringLiteral:
		return starlark.String(v)

	case *loxlang.LexicalError:
		if v == nil {
			return starlark.None
		}
		d := starlark.NewDict(4)
		d.SetKey(starlark.String("kind"), starlark.String(v.Kind.String()))
		d.SetKey(starlark.String("message"), starlark.String(v.Message))
		d.SetKey(starlark.String("line"), starlark.MakeInt(v.Line))
		d.SetKey(starlark.String("position"), starlark.MakeInt(v.Position))
		return d

	case error:
		return starlark.String(v.Error())

	case bool:
		return starlark.Bool(v)
	case []byte:
		return starlark.Bytes(v)
	case string:
		return starlark.String(v)
	case int:
		return starlark.MakeInt(v)
	case int64:
		return starlark.MakeInt64(v)
	case uint64:
		return starlark.MakeUint64(v)
	case float64:
		return starlark.Float(v)

	}

	value := reflect.ValueOf(v)
	switch value.Kind() {

	case reflect.Bool:
		return starlark.Bool(value.Bool())

	case reflect.String:
		return starlark.String(value.String())

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return starlark.MakeInt64(value.Int())

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return starlark.MakeUint64(value.Uint())

	case reflect.Float32, reflect.Float64:
		return starlark.Float(value.Float())

	case reflect.Slice, reflect.Array:
		elems := make([]starlark.Value, value.Len())
		for i := range elems {
			elems[i] = toStarlarkValue(value.Index(i).Interface())
		}
		return starlark.NewList(elems)

	case reflect.Map:
		d := starlark.NewDict(value.Len())
		iter := value.MapRange()
		for iter.Next() {
			d.SetKey(
				toStarlarkValue(iter.Key().Interface()),
				toStarlarkValue(iter.Value().Interface()),
			)
		}
		return d

	case reflect.Struct:
		typ := value.Type()
		d := starlark.NewDict(value.NumField())
		for i := range value.NumField() {
			field := typ.Field(i)
			if !field.IsExported() {
				continue
			}
			d.SetKey(
				starlark.String(field.Name),
				toStarlarkValue(value.Field(i).Interface()),
			)
		}
		return d

	case reflect.Pointer, reflect.Interface:
		elem := value.Elem()
		if !elem.IsValid() {
			return starlark.None
		}
		return toStarlarkValue(elem.Interface())

	case reflect.Func:
		return starlarkutil.MakeFunc("", value.Interface())

	}

	panic(fmt.Errorf("unsupported type for starlark: %T", v))
}
