/*
Package propbag provides safe access to loosely-typed property bags.

# Overview

A property bag is a flat map[string]any assembled from untrusted or
semi-structured input: parsed configuration, request parameters, decoded
payloads. Keys may be missing and value types are not guaranteed. propbag
offers one uniform protocol for reading, writing and validating such bags:

  - Lookup: Has, Get, GetInt, GetFloat, GetBool, GetString, GetArray,
    GetBag, IsEmpty, GetDefaultIfEmpty
  - Mutation: Set (returns a new bag), Remove and GetAndRemove (in place)
  - Assertions: Accessor.AssertHas, AssertNotHas, AssertNotEmpty,
    GetRequired, GetAndRemoveRequired

# Basic Usage

Lookups are plain functions:

	bag := propbag.Bag{"name": "x", "count": 0}

	propbag.Has(bag, "count")          // true
	propbag.IsEmpty(bag, "count")      // true
	propbag.GetInt(bag, "count", 99)   // 0
	propbag.GetString(bag, "nope", "") // ""

Typed getters coerce stored values with the tables documented in the
coerce subpackage. The default is only used when the key is absent.

# Mutation

Set never modifies its input:

	updated := propbag.Set(bag, "name", "y") // bag["name"] is still "x"

Remove and GetAndRemove modify the caller's bag:

	name := propbag.GetAndRemove(bag, "name", nil) // "x"
	propbag.Has(bag, "name")                       // false

Callers sharing a bag across goroutines must synchronize the in-place
operations themselves.

# Assertions

Assertions live on an Accessor, which carries the bootstrap settings.
Build one during startup:

	acc := propbag.Configure(false, 2)

	// or with options
	acc = propbag.New(
	    propbag.WithSettings(settings),
	    propbag.WithLogger(logger),
	    propbag.WithMetrics(observability.NewMetricsRecorder()),
	)

Each assertion returns an error instead of panicking:

	id, err := acc.GetRequired(params, "id", "load user")
	if err != nil {
	    return err
	}

	if err := acc.AssertNotHas(params, "admin", nil); err != nil {
	    return err
	}

The last argument is optional context for diagnostics. Its Go type and a
depth-limited JSON dump are appended to the failure message. Values that
implement Describer render their own dump. If the dump fails, or nests
deeper than the configured depth, it is left out and the message is kept.

# Errors

Failures are *MissingPropertyError or *IllegalPropertyError. Both wrap
ErrProperty:

	_, err := acc.GetRequired(bag, "missing", nil)
	errors.Is(err, propbag.ErrMissingProperty) // true
	errors.Is(err, propbag.ErrProperty)        // true

	var missing *propbag.MissingPropertyError
	if errors.As(err, &missing) {
	    log.Printf("key %s failed (%s)", missing.Key, missing.FailureID)
	}

AssertNotEmpty reports an absent key and an empty value with the same
error kind.

# Debug Diagnostics

With debug enabled, every failure first writes a block with the message,
key, failure ID and a full dump of the bag to os.Stderr (see WithOutput).
The error is returned afterwards in every case.

# Observability

WithLogger logs every failure at warn level. WithMetrics counts checks
and failures as propbag.assertion.checks and propbag.assertion.failures.
An accessor bound with WithContext adds a propbag.assertion_failed event
to the recording span in that context.

# Thread Safety

  - Accessor IS safe for concurrent use (immutable after New)
  - Bag is NOT synchronized; Remove, GetAndRemove and
    GetAndRemoveRequired need exclusive access to the bag

# Subpackages

  - coerce: Conversion tables for typed getters
  - config: Bootstrap settings and file loading
  - observability: Logging, metrics, and span event helpers
*/
package propbag
