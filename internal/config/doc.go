// Package config loads, normalizes, and validates the site configuration of
// the blog: identity fields, pagination, logo options, locale preferences,
// and the ordered list of social links.
//
// A configuration is read from exactly one TOML or YAML file (or built from a
// Go literal), checked eagerly, and then treated as immutable. Every invalid
// value surfaces as a *ValidationError naming the offending key; there is no
// partially valid mode. Link titles are interpolated once during load so the
// site generator only ever reads finished strings.
//
// Always obtain a Config through Load, Parse, Build, or Sample so downstream
// code never sees an unvalidated value.
package config
