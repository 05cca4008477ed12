package witlayout

import (
	"fmt"
	"strings"

	"go.bytecodealliance.org/wit"
)

// TypeName renders a WIT type as a display string. Best-effort, for humans;
// never parse the result.
func TypeName(t wit.Type) string {
	switch v := t.(type) {
	case wit.Bool:
		return "bool"
	case wit.U8:
		return "u8"
	case wit.S8:
		return "s8"
	case wit.U16:
		return "u16"
	case wit.S16:
		return "s16"
	case wit.U32:
		return "u32"
	case wit.S32:
		return "s32"
	case wit.U64:
		return "u64"
	case wit.S64:
		return "s64"
	case wit.F32:
		return "f32"
	case wit.F64:
		return "f64"
	case wit.Char:
		return "char"
	case wit.String:
		return "string"
	case *wit.TypeDef:
		if v.Name != nil {
			return *v.Name
		}
		return kindName(v.Kind)
	default:
		return fmt.Sprintf("%T", t)
	}
}

func kindName(k wit.TypeDefKind) string {
	switch kind := k.(type) {
	case *wit.Record:
		return "record"
	case *wit.Variant:
		return "variant"
	case *wit.Enum:
		return "enum"
	case *wit.Flags:
		return "flags"
	case *wit.Tuple:
		names := make([]string, len(kind.Types))
		for i, typ := range kind.Types {
			names[i] = TypeName(typ)
		}
		return "tuple<" + strings.Join(names, ", ") + ">"
	case *wit.List:
		return "list<" + TypeName(kind.Type) + ">"
	case *wit.Option:
		return "option<" + TypeName(kind.Type) + ">"
	case *wit.Result:
		return resultName(kind)
	case wit.Type:
		return TypeName(kind)
	default:
		return fmt.Sprintf("%T", k)
	}
}

func resultName(r *wit.Result) string {
	switch {
	case r.OK == nil && r.Err == nil:
		return "result"
	case r.Err == nil:
		return "result<" + TypeName(r.OK) + ">"
	case r.OK == nil:
		return "result<_, " + TypeName(r.Err) + ">"
	default:
		return "result<" + TypeName(r.OK) + ", " + TypeName(r.Err) + ">"
	}
}
