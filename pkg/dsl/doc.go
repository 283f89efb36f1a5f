// Package dsl provides fluent builders for assembling spaces and items in
// code. Builders accumulate fields without validating them; unset strings
// stay empty, unset markers stay false, unset lists stay empty. All checking
// is deferred to the call sites that use the built values.
package dsl
