/*
Package coerce converts loosely-typed values into concrete Go types.

# Overview

Property bags built from parsed configuration, request parameters, or
decoded payloads hold values whose types are not known statically. coerce
defines one explicit, documented conversion table per target type so that
reads are reproducible regardless of where the value came from.

# Emptiness

IsEmpty is the single emptiness predicate used across propbag:

  - nil, including typed nil pointers, slices, maps, funcs, and channels
  - false
  - numeric zero of any integer, unsigned, float, or complex kind
  - "" and "0" (also as json.Number or []byte)
  - slices, arrays, and maps of length zero

Everything else is non-empty. In particular "0.0", "false", " ", and NaN
are non-empty. ToBool is the negation of IsEmpty.

# Numbers

ToInt and ToFloat read the longest numeric prefix of a string, so
"42abc" is 42 and "abc" is 0:

	coerce.ToInt("  12.9kg") // 12
	coerce.ToFloat("1e3")    // 1000
	coerce.ToInt(true)       // 1
	coerce.ToInt([]any{})    // 0

# Strings and Slices

	coerce.ToString(3.0)   // "3"
	coerce.ToString(false) // ""
	coerce.ToSlice("a")    // []any{"a"}
	coerce.ToSlice(nil)    // []any{}

ToSlice always returns a fresh slice, so writing to the result never
changes the value it was read from.
*/
package coerce
