package render

import (
	"encoding/hex"
	"fmt"
	"reflect"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Literal renders v as an inline CQL literal.
// Values of unknown types are rendered as quoted strings of their fmt.Sprint form.
func Literal(v any) string {
	var sb strings.Builder
	appendLiteral(&sb, v)
	return sb.String()
}

func appendLiteral(sb *strings.Builder, v any) {
	switch val := v.(type) {
	case nil:
		sb.WriteString("null")
	case string:
		sb.WriteString(Quote(val))
	case bool:
		sb.WriteString(strconv.FormatBool(val))
	case int:
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	case int8:
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	case int16:
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	case int32:
		sb.WriteString(strconv.FormatInt(int64(val), 10))
	case int64:
		sb.WriteString(strconv.FormatInt(val, 10))
	case uint:
		sb.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint8:
		sb.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint16:
		sb.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint32:
		sb.WriteString(strconv.FormatUint(uint64(val), 10))
	case uint64:
		sb.WriteString(strconv.FormatUint(val, 10))
	case float32:
		sb.WriteString(strconv.FormatFloat(float64(val), 'g', -1, 32))
	case float64:
		sb.WriteString(strconv.FormatFloat(val, 'g', -1, 64))
	case []byte:
		sb.WriteString("0x")
		sb.WriteString(hex.EncodeToString(val))
	case time.Time:
		sb.WriteString(strconv.FormatInt(val.UnixMilli(), 10))
	case uuid.UUID:
		sb.WriteString(val.String())
	default:
		appendReflected(sb, v)
	}
}

// appendReflected renders slices as CQL lists and maps as CQL maps.
// Map entries are sorted by their rendered key so output is stable.
func appendReflected(sb *strings.Builder, v any) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Slice, reflect.Array:
		sb.WriteString("[")
		for i := 0; i < rv.Len(); i++ {
			if i > 0 {
				sb.WriteString(",")
			}
			appendLiteral(sb, rv.Index(i).Interface())
		}
		sb.WriteString("]")
	case reflect.Map:
		entries := make([][2]string, 0, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			entries = append(entries, [2]string{
				Literal(iter.Key().Interface()),
				Literal(iter.Value().Interface()),
			})
		}
		sort.Slice(entries, func(i, j int) bool { return entries[i][0] < entries[j][0] })
		sb.WriteString("{")
		for i, e := range entries {
			if i > 0 {
				sb.WriteString(",")
			}
			sb.WriteString(e[0])
			sb.WriteString(":")
			sb.WriteString(e[1])
		}
		sb.WriteString("}")
	case reflect.Pointer:
		if rv.IsNil() {
			sb.WriteString("null")
			return
		}
		appendLiteral(sb, rv.Elem().Interface())
	default:
		sb.WriteString(Quote(fmt.Sprint(v)))
	}
}

// Quote returns s as a single-quoted CQL string literal.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteString("'")
	sb.WriteString(strings.ReplaceAll(s, "'", "''"))
	sb.WriteString("'")
	return sb.String()
}
