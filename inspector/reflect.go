// Package inspector describes a selected creature as a list of display fields
// built by reflecting over `inspect` struct tags.
package inspector

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/pthm-cable/linelife/creature"
)

// Widget selects how a field is drawn.
type Widget int

const (
	WidgetAuto Widget = iota
	WidgetLabel
	WidgetBar      // [0, max]
	WidgetCentered // [-max, +max]
	WidgetBool
	WidgetVec
	WidgetSkip
)

var widgetNames = map[string]Widget{
	"label":    WidgetLabel,
	"bar":      WidgetBar,
	"centered": WidgetCentered,
	"bool":     WidgetBool,
	"vec":      WidgetVec,
	"skip":     WidgetSkip,
}

// Tag is a parsed `inspect` struct tag.
type Tag struct {
	Widget Widget
	Format string
	Max    float32
	Name   string // display name override
}

// ParseTag parses an inspect struct tag.
// Format: `inspect:"widget[,option:value...]"`, options fmt, max and name.
//
//	`inspect:"bar,max:200"`
//	`inspect:"label,fmt:%.1f s"`
//	`inspect:"skip"`
func ParseTag(tag string) Tag {
	t := Tag{Max: 1}
	if tag == "" {
		return t
	}

	parts := strings.Split(tag, ",")
	t.Widget = widgetNames[strings.TrimSpace(parts[0])]

	for _, part := range parts[1:] {
		key, value, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			continue
		}
		switch key {
		case "fmt":
			t.Format = value
		case "name":
			t.Name = value
		case "max":
			if m, err := strconv.ParseFloat(value, 32); err == nil && m > 0 {
				t.Max = float32(m)
			}
		}
	}
	return t
}

// Field is one displayable value.
type Field struct {
	Name   string
	Value  any
	Widget Widget
	Format string
	Max    float32
}

var vecType = reflect.TypeOf(creature.Vec2{})

// ExtractFields reflects over the exported fields of a struct (or pointer to one).
func ExtractFields(v any) []Field {
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return nil
	}

	rt := rv.Type()
	fields := make([]Field, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}

		tag := ParseTag(sf.Tag.Get("inspect"))
		if tag.Widget == WidgetSkip {
			continue
		}

		fv := rv.Field(i)
		if tag.Widget == WidgetAuto {
			tag.Widget = autoWidget(fv)
		}
		name := sf.Name
		if tag.Name != "" {
			name = tag.Name
		}

		fields = append(fields, Field{
			Name:   name,
			Value:  fv.Interface(),
			Widget: tag.Widget,
			Format: tag.Format,
			Max:    tag.Max,
		})
	}
	return fields
}

func autoWidget(v reflect.Value) Widget {
	if v.Type() == vecType {
		return WidgetVec
	}
	if v.Kind() == reflect.Bool {
		return WidgetBool
	}
	return WidgetLabel
}

// Text formats the field value for display.
func (f Field) Text() string {
	if vec, ok := f.Value.(creature.Vec2); ok {
		format := f.Format
		if format == "" {
			format = "%.1f"
		}
		return fmt.Sprintf("("+format+", "+format+")", vec.X, vec.Y)
	}
	if f.Format != "" {
		return fmt.Sprintf(f.Format, f.Value)
	}
	switch v := f.Value.(type) {
	case float32, float64:
		return fmt.Sprintf("%.2f", v)
	case bool:
		if v {
			return "yes"
		}
		return "no"
	default:
		return fmt.Sprint(v)
	}
}

// Float returns the field value as a float32 for bar widgets.
func (f Field) Float() (float32, bool) {
	switch v := f.Value.(type) {
	case float32:
		return v, true
	case float64:
		return float32(v), true
	case int:
		return float32(v), true
	case int32:
		return float32(v), true
	case uint32:
		return float32(v), true
	case creature.Vec2:
		return v.Length(), true
	default:
		return 0, false
	}
}
