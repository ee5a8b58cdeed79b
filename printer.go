package main

import (
	"fmt"
	"strings"
)

// Print renders a value for display. Lists are parenthesized, strings are
// shown exactly as they were read, and Unspecified renders as nothing.
func Print(val Value) string {
	switch t := val.(type) {
	case Number:
		return t.String()
	case String:
		return string(t)
	case Symbol:
		return string(t)
	case Boolean:
		if t {
			return "#t"
		}
		return "#f"
	case List:
		arr := make([]string, len(t))
		for i, v := range t {
			arr[i] = Print(v)
		}
		return fmt.Sprintf("(%s)", strings.Join(arr, " "))
	case Unspecified:
		return ""
	case *Procedure:
		return fmt.Sprintf("#<procedure %s>", procName(t))
	case *Native:
		return fmt.Sprintf("#<procedure %s>", t.Name)
	case nil:
		return "nil"
	default:
		return fmt.Sprintf("%v", val)
	}
}
