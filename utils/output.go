package utils

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// PrintStructured prints data in JSON, YAML, or plain table format.
func PrintStructured(name string, data interface{}, format string, columns string) error {
	return FprintStructured(os.Stdout, name, data, format, columns)
}

// FprintStructured is PrintStructured writing to w.
func FprintStructured(w io.Writer, name string, data interface{}, format string, columns string) error {
	switch strings.ToLower(format) {
	case "json":
		out := map[string]interface{}{name: data}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case "yaml", "yml":
		out := map[string]interface{}{name: data}
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(out)

	case "plain":
		return printPlain(w, data, columns)

	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

// printPlain renders tabular plain text output using reflection
func printPlain(w io.Writer, data interface{}, columns string) error {
	val := reflect.ValueOf(data)

	// Single structs render as a one-row table
	if val.Kind() == reflect.Ptr {
		val = val.Elem()
	}
	if val.Kind() == reflect.Struct {
		slice := reflect.MakeSlice(reflect.SliceOf(val.Type()), 0, 1)
		val = reflect.Append(slice, val)
	}

	if val.Kind() != reflect.Slice {
		return fmt.Errorf("plain output requires a struct or slice, got %T", data)
	}

	cols := ParseColumns(columns)
	if len(cols) == 0 {
		cols = []string{"Name"} // fallback
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	titleCaser := cases.Title(language.English)

	// Header
	for i, col := range cols {
		if i > 0 {
			fmt.Fprint(tw, "\t")
		}
		fmt.Fprint(tw, titleCaser.String(col))
	}
	fmt.Fprintln(tw)

	// Rows
	for i := 0; i < val.Len(); i++ {
		elem := val.Index(i)
		if elem.Kind() == reflect.Ptr {
			elem = elem.Elem()
		}

		for j, col := range cols {
			if j > 0 {
				fmt.Fprint(tw, "\t")
			}

			field := elem.FieldByNameFunc(func(s string) bool {
				return strings.EqualFold(s, col)
			})

			if !field.IsValid() || !field.CanInterface() {
				fmt.Fprint(tw, "")
				continue
			}

			rv := reflect.ValueOf(field.Interface())
			if rv.Kind() == reflect.Ptr {
				if rv.IsNil() {
					fmt.Fprint(tw, "")
				} else {
					fmt.Fprint(tw, rv.Elem().Interface())
				}
			} else {
				fmt.Fprint(tw, field.Interface())
			}
		}
		fmt.Fprintln(tw)
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush writer: %w", err)
	}
	return nil
}
